package sink

import (
	"bytes"
	"fmt"
	"io"

	gochart "github.com/wcharczuk/go-chart"

	"github.com/matzehuels/chartbridge/pkg/chart"
	"github.com/matzehuels/chartbridge/pkg/errors"
)

// Default snapshot size in pixels.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// SnapshotOption configures snapshot rendering.
type SnapshotOption func(*snapshot)

type snapshot struct {
	width, height int
}

// WithSize sets the image size. Non-positive values keep the default.
func WithSize(width, height int) SnapshotOption {
	return func(s *snapshot) {
		if width > 0 {
			s.width = width
		}
		if height > 0 {
			s.height = height
		}
	}
}

type renderable interface {
	Render(rp gochart.RendererProvider, w io.Writer) error
}

// RenderSnapshot draws cfg as a static image. format is "svg" or "png".
// Line, area, bar, mixed, scatter, pie and donut charts are supported;
// radar and heatmap charts return an UNSUPPORTED error.
func RenderSnapshot(cfg chart.Config, colors []string, typ chart.Type, format string, opts ...SnapshotOption) ([]byte, error) {
	s := snapshot{width: DefaultWidth, height: DefaultHeight}
	for _, opt := range opts {
		opt(&s)
	}

	var provider gochart.RendererProvider
	switch format {
	case errors.FormatSVG:
		provider = gochart.SVG
	case errors.FormatPNG:
		provider = gochart.PNG
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "snapshot format must be svg or png, got %q", format)
	}
	if len(cfg.Series) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "chart has no series")
	}

	var r renderable
	switch typ {
	case chart.Pie, chart.Donut:
		r = s.pie(cfg, colors)
	case chart.Bar:
		if cfg.Stacked {
			r = s.stackedBar(cfg, colors)
		} else {
			r = s.bar(cfg, colors)
		}
	case chart.Line, chart.Area, chart.Mixed, chart.Scatter:
		r = s.continuous(cfg, colors, typ)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "%s charts cannot be rendered as static images", typ)
	}

	var buf bytes.Buffer
	if err := r.Render(provider, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s snapshot", format)
	}
	return buf.Bytes(), nil
}

func categoryLabel(cfg chart.Config, i int) string {
	if cfg.XAxis != nil && i < len(cfg.XAxis.Categories) {
		return cfg.XAxis.Categories[i]
	}
	return fmt.Sprintf("%d", i+1)
}

func (s snapshot) pie(cfg chart.Config, colors []string) renderable {
	values := make([]gochart.Value, len(cfg.Series))
	for i, series := range cfg.Series {
		v := series.Data.Sum()
		if len(series.Data) == 1 {
			v = series.Data[0].Number()
		}
		c := drawingColor(seriesColor(series.Color, colors, i))
		values[i] = gochart.Value{
			Label: series.Name,
			Value: v,
			Style: gochart.Style{Show: true, FillColor: c, StrokeColor: c},
		}
	}
	return gochart.PieChart{
		Title:      cfg.Title,
		TitleStyle: gochart.Style{Show: cfg.Title != ""},
		Width:      s.width,
		Height:     s.height,
		Values:     values,
	}
}

// bar flattens every series into one bar per category and series.
func (s snapshot) bar(cfg chart.Config, colors []string) renderable {
	var bars []gochart.Value
	multi := len(cfg.Series) > 1
	for j := 0; j < maxLen(cfg); j++ {
		for i, series := range cfg.Series {
			if j >= len(series.Data) {
				continue
			}
			label := categoryLabel(cfg, j)
			if multi {
				label += " " + series.Name
			}
			c := drawingColor(seriesColor(series.Color, colors, i))
			bars = append(bars, gochart.Value{
				Label: label,
				Value: series.Data[j].Number(),
				Style: gochart.Style{Show: true, FillColor: c, StrokeColor: c},
			})
		}
	}
	return gochart.BarChart{
		Title:      cfg.Title,
		TitleStyle: gochart.Style{Show: cfg.Title != ""},
		Width:      s.width,
		Height:     s.height,
		BarWidth:   max(s.width/(2*max(len(bars), 1)), 4),
		XAxis:      gochart.StyleShow(),
		YAxis:      gochart.YAxis{Style: gochart.StyleShow()},
		Bars:       bars,
	}
}

// stackedBar draws one stacked column per category.
func (s snapshot) stackedBar(cfg chart.Config, colors []string) renderable {
	n := maxLen(cfg)
	bars := make([]gochart.StackedBar, n)
	for j := range bars {
		values := make([]gochart.Value, 0, len(cfg.Series))
		for i, series := range cfg.Series {
			if j >= len(series.Data) {
				continue
			}
			c := drawingColor(seriesColor(series.Color, colors, i))
			values = append(values, gochart.Value{
				Label: series.Name,
				Value: series.Data[j].Number(),
				Style: gochart.Style{Show: true, FillColor: c, StrokeColor: c},
			})
		}
		bars[j] = gochart.StackedBar{Name: categoryLabel(cfg, j), Values: values}
	}
	return gochart.StackedBarChart{
		Title:      cfg.Title,
		TitleStyle: gochart.Style{Show: cfg.Title != ""},
		Width:      s.width,
		Height:     s.height,
		XAxis:      gochart.StyleShow(),
		YAxis:      gochart.StyleShow(),
		Bars:       bars,
	}
}

// continuous draws line, area and scatter series on a shared x axis. Gaps
// are skipped; points use their own x.
func (s snapshot) continuous(cfg chart.Config, colors []string, typ chart.Type) renderable {
	c := gochart.Chart{
		Title:      cfg.Title,
		TitleStyle: gochart.Style{Show: cfg.Title != ""},
		Width:      s.width,
		Height:     s.height,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20}},
		XAxis:      gochart.XAxis{Style: gochart.StyleShow()},
		YAxis:      gochart.YAxis{Style: gochart.StyleShow()},
	}
	if cfg.XAxis != nil && len(cfg.XAxis.Categories) > 0 && typ != chart.Scatter {
		ticks := make([]gochart.Tick, len(cfg.XAxis.Categories))
		for i, cat := range cfg.XAxis.Categories {
			ticks[i] = gochart.Tick{Value: float64(i), Label: cat}
		}
		c.XAxis.Ticks = ticks
	}

	for i, series := range cfg.Series {
		kind := typ
		if series.Type != "" && typ == chart.Mixed {
			kind = series.Type
		}
		col := drawingColor(seriesColor(series.Color, colors, i))
		style := gochart.Style{Show: true, StrokeColor: col, StrokeWidth: 2}
		switch kind {
		case chart.Area:
			style.FillColor = col.WithAlpha(76)
		case chart.Scatter:
			style.StrokeWidth = gochart.Disabled
			style.DotWidth = 4
			style.DotColor = col
		}
		if cfg.Stroke != nil && cfg.Stroke.Width > 0 && kind != chart.Scatter {
			style.StrokeWidth = cfg.Stroke.Width
		}

		xs, ys := make([]float64, 0, len(series.Data)), make([]float64, 0, len(series.Data))
		for j, d := range series.Data {
			switch d.Kind {
			case chart.DatumNull:
				continue
			case chart.DatumPoint:
				xs, ys = append(xs, d.X), append(ys, d.Y)
			case chart.DatumTuple:
				if len(d.Tuple) >= 2 {
					xs, ys = append(xs, d.Tuple[0]), append(ys, d.Tuple[1])
				}
			default:
				xs, ys = append(xs, float64(j)), append(ys, d.Value)
			}
		}
		c.Series = append(c.Series, gochart.ContinuousSeries{
			Name:    series.Name,
			Style:   style,
			XValues: xs,
			YValues: ys,
		})
	}
	if len(cfg.Series) > 1 && cfg.Legend.Visible() {
		c.Elements = []gochart.Renderable{gochart.Legend(&c)}
	}
	return c
}

func maxLen(cfg chart.Config) int {
	n := 0
	for _, s := range cfg.Series {
		n = max(n, len(s.Data))
	}
	return n
}
