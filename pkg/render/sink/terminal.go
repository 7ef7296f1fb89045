package sink

import (
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/chartbridge/pkg/chart"
)

// RenderTerminal draws a horizontal bar preview of cfg: one bar group per
// category, one colored segment per series, followed by a legend.
func RenderTerminal(cfg chart.Config, colors []string, width int) string {
	if width <= 0 {
		width = 80
	}
	if len(cfg.Series) == 0 {
		return "(no data)\n"
	}

	n := maxLen(cfg)

	styles := make([]lipgloss.Style, len(cfg.Series))
	for i, s := range cfg.Series {
		styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(seriesColor(s.Color, colors, i)))
	}

	data := make([]barchart.BarData, 0, n)
	for j := 0; j < n; j++ {
		label := categoryLabel(cfg, j)
		values := make([]barchart.BarValue, 0, len(cfg.Series))
		for i, s := range cfg.Series {
			if j >= len(s.Data) || s.Data[j].Kind == chart.DatumNull {
				continue
			}
			v := s.Data[j].Number()
			if v < 0 {
				v = 0
			}
			values = append(values, barchart.BarValue{Name: s.Name, Value: v, Style: styles[i]})
		}
		data = append(data, barchart.BarData{Label: label, Values: values})
	}

	bc := barchart.New(width, max(len(data)*2, 2), barchart.WithDataSet(data), barchart.WithHorizontalBars())
	bc.Draw()

	var b strings.Builder
	if cfg.Title != "" {
		b.WriteString(lipgloss.NewStyle().Bold(true).Render(cfg.Title))
		b.WriteString("\n")
	}
	b.WriteString(bc.View())
	b.WriteString("\n")
	for i, s := range cfg.Series {
		b.WriteString(styles[i].Render("█ " + s.Name))
		b.WriteString("\n")
	}
	return b.String()
}
