package echarts

import (
	"github.com/matzehuels/chartbridge/pkg/chart"
	"github.com/matzehuels/chartbridge/pkg/palette"
)

// resolveColors picks the series colors: an explicit list verbatim, then a
// recognized palette name, then the theme's ambient colors or palette.
func (t *Transformer) resolveColors(b *build) []string {
	c := b.cfg.Colors
	n := len(b.cfg.Series)

	if c.IsExplicit() {
		return append([]string(nil), c.List...)
	}
	if !c.IsAuto() {
		if palette.IsName(c.Palette) {
			return t.palettes.Generate(palette.Name(c.Palette), n, b.theme.Dark)
		}
		b.warn(WarnUnknownPalette, "unknown palette %q, using theme colors", c.Palette)
	}
	return t.themeColors(b.theme, n)
}

func (t *Transformer) themeColors(theme chart.Theme, n int) []string {
	if len(theme.Colors) > 0 {
		return append([]string(nil), theme.Colors...)
	}
	name := theme.Palette
	if name == "" {
		name = chart.DefaultPalette
	}
	return t.palettes.Generate(palette.Name(name), n, theme.Dark)
}

// seriesColor returns the color for series i: its own override, or the
// resolved list cycled by index.
func (b *build) seriesColor(i int, s chart.Series) string {
	if s.Color != "" {
		return s.Color
	}
	if len(b.colors) == 0 {
		return ""
	}
	return b.colors[i%len(b.colors)]
}
