package sink

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/matzehuels/chartbridge/pkg/chart"
	"github.com/matzehuels/chartbridge/pkg/errors"
)

// DataSheet is the name of the worksheet holding chart data.
const DataSheet = "Data"

// Native chart types per chart type, unstacked and stacked.
var xlsxTypes = map[chart.Type][2]excelize.ChartType{
	chart.Line:    {excelize.Line, excelize.Line},
	chart.Mixed:   {excelize.Line, excelize.Line},
	chart.Bar:     {excelize.Col, excelize.ColStacked},
	chart.Area:    {excelize.Area, excelize.AreaStacked},
	chart.Pie:     {excelize.Pie, excelize.Pie},
	chart.Donut:   {excelize.Doughnut, excelize.Doughnut},
	chart.Scatter: {excelize.Scatter, excelize.Scatter},
	chart.Radar:   {excelize.Radar, excelize.Radar},
}

var xlsxLegend = map[chart.LegendPosition]string{
	chart.LegendTop:    "top",
	chart.LegendBottom: "bottom",
	chart.LegendLeft:   "left",
	chart.LegendRight:  "right",
}

// RenderXLSX writes cfg into a workbook: a data table with categories in
// the first column and one column per series, plus a native chart. Heatmaps
// get a color scale on the table instead of a chart.
func RenderXLSX(cfg chart.Config, colors []string, typ chart.Type) ([]byte, error) {
	if len(cfg.Series) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "chart has no series")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", DataSheet); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create data sheet")
	}

	rows := maxLen(cfg)
	if typ == chart.Pie || typ == chart.Donut {
		if err := writePieTable(f, cfg); err != nil {
			return nil, err
		}
	} else if err := writeTable(f, cfg, rows); err != nil {
		return nil, err
	}

	var err error
	switch typ {
	case chart.Heatmap:
		err = addColorScale(f, cfg, colors, rows)
	case chart.Pie, chart.Donut:
		err = addPieChart(f, cfg, colors, typ)
	default:
		err = addSeriesChart(f, cfg, colors, typ, rows)
	}
	if err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "write workbook")
	}
	return buf.Bytes(), nil
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

// absRange returns an absolute sheet reference such as Data!$B$2:$B$5.
func absRange(col, fromRow, toRow int) string {
	c, _ := excelize.ColumnNumberToName(col)
	return fmt.Sprintf("%s!$%s$%d:$%s$%d", DataSheet, c, fromRow, c, toRow)
}

func absCell(col, row int) string {
	c, _ := excelize.ColumnNumberToName(col)
	return fmt.Sprintf("%s!$%s$%d", DataSheet, c, row)
}

func writeTable(f *excelize.File, cfg chart.Config, rows int) error {
	header := "Category"
	if cfg.XAxis != nil && cfg.XAxis.Title != "" {
		header = cfg.XAxis.Title
	}
	if err := f.SetCellValue(DataSheet, cell(1, 1), header); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write header")
	}
	for j := 0; j < rows; j++ {
		if err := f.SetCellValue(DataSheet, cell(1, j+2), categoryLabel(cfg, j)); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write category")
		}
	}
	for i, s := range cfg.Series {
		col := i + 2
		if err := f.SetCellValue(DataSheet, cell(col, 1), s.Name); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write series name")
		}
		for j, d := range s.Data {
			if d.Kind == chart.DatumNull {
				continue
			}
			if err := f.SetCellValue(DataSheet, cell(col, j+2), d.Number()); err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "write value")
			}
		}
	}
	return nil
}

func writePieTable(f *excelize.File, cfg chart.Config) error {
	values := [][]any{{"Slice", "Value"}}
	for _, s := range cfg.Series {
		v := s.Data.Sum()
		if len(s.Data) == 1 {
			v = s.Data[0].Number()
		}
		values = append(values, []any{s.Name, v})
	}
	for r, row := range values {
		if err := f.SetSheetRow(DataSheet, cell(1, r+1), &row); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write slice")
		}
	}
	return nil
}

func fill(c string) excelize.Fill {
	if c == "" {
		return excelize.Fill{}
	}
	return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{strings.TrimPrefix(c, "#")}}
}

func legend(cfg chart.Config) excelize.ChartLegend {
	if !cfg.Legend.Visible() {
		return excelize.ChartLegend{Position: "none"}
	}
	return excelize.ChartLegend{Position: xlsxLegend[cfg.Legend.Anchor()]}
}

func title(cfg chart.Config) []excelize.RichTextRun {
	if cfg.Title == "" {
		return nil
	}
	return []excelize.RichTextRun{{Text: cfg.Title}}
}

func addSeriesChart(f *excelize.File, cfg chart.Config, colors []string, typ chart.Type, rows int) error {
	types, ok := xlsxTypes[typ]
	if !ok {
		return errors.New(errors.ErrCodeUnsupported, "%s charts have no spreadsheet equivalent", typ)
	}
	kind := types[0]
	if cfg.Stacked {
		kind = types[1]
	}
	if typ == chart.Bar && cfg.Horizontal {
		kind = excelize.Bar
		if cfg.Stacked {
			kind = excelize.BarStacked
		}
	}

	series := make([]excelize.ChartSeries, len(cfg.Series))
	for i, s := range cfg.Series {
		series[i] = excelize.ChartSeries{
			Name:       absCell(i+2, 1),
			Categories: absRange(1, 2, rows+1),
			Values:     absRange(i+2, 2, rows+1),
			Fill:       fill(seriesColor(s.Color, colors, i)),
		}
	}

	return addChart(f, cfg, &excelize.Chart{
		Type:   kind,
		Series: series,
		Title:  title(cfg),
		Legend: legend(cfg),
	}, len(cfg.Series)+3)
}

func addPieChart(f *excelize.File, cfg chart.Config, colors []string, typ chart.Type) error {
	kind := excelize.Pie
	if typ == chart.Donut {
		kind = excelize.Doughnut
	}
	n := len(cfg.Series)
	return addChart(f, cfg, &excelize.Chart{
		Type: kind,
		Series: []excelize.ChartSeries{{
			Name:       absCell(2, 1),
			Categories: absRange(1, 2, n+1),
			Values:     absRange(2, 2, n+1),
		}},
		Title:  title(cfg),
		Legend: legend(cfg),
	}, 4)
}

func addChart(f *excelize.File, cfg chart.Config, c *excelize.Chart, col int) error {
	c.Dimension = excelize.ChartDimension{Width: DefaultWidth, Height: DefaultHeight / 3 * 2}
	if err := f.AddChart(DataSheet, cell(col, 2), c); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "add %s chart", cfg.Title)
	}
	return nil
}

// addColorScale shades the value cells from the first to the last color.
func addColorScale(f *excelize.File, cfg chart.Config, colors []string, rows int) error {
	lo, hi := "#f7fbff", "#08306b"
	if len(colors) > 0 {
		lo, hi = colors[0], colors[len(colors)-1]
	}
	if len(colors) == 1 {
		lo = "#ffffff"
	}
	ref := fmt.Sprintf("%s:%s", cell(2, 2), cell(len(cfg.Series)+1, rows+1))
	err := f.SetConditionalFormat(DataSheet, ref, []excelize.ConditionalFormatOptions{{
		Type:     "2_color_scale",
		Criteria: "=",
		MinType:  "min",
		MaxType:  "max",
		MinColor: lo,
		MaxColor: hi,
	}})
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "add color scale")
	}
	return nil
}
