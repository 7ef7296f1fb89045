package sink

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/wcharczuk/go-chart/drawing"
)

// fallbackColor is used when a color string cannot be parsed.
var fallbackColor = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}

// parseColor reads "#rgb" and "#rrggbb" strings.
func parseColor(s string) color.NRGBA {
	s = strings.TrimSpace(s)
	if len(s) == 4 && s[0] == '#' {
		s = "#" + strings.Repeat(s[1:2], 2) + strings.Repeat(s[2:3], 2) + strings.Repeat(s[3:4], 2)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return fallbackColor
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

func drawingColor(s string) drawing.Color {
	c := parseColor(s)
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// pick cycles through colors by index.
func pick(colors []string, i int) string {
	if len(colors) == 0 {
		return ""
	}
	return colors[i%len(colors)]
}

// seriesColor returns a series' own color or the cycled palette entry.
func seriesColor(override string, colors []string, i int) string {
	if override != "" {
		return override
	}
	return pick(colors, i)
}
