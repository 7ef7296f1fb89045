package palette

import (
	"io"

	"github.com/charmbracelet/log"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Generator produces palette colors and reports fallbacks to its logger.
type Generator struct {
	logger *log.Logger
}

// NewGenerator creates a generator. A nil logger discards diagnostics.
func NewGenerator(logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Generator{logger: logger}
}

var std = &Generator{logger: log.Default()}

// Generate returns count colors from the named palette using the default
// logger. See [Generator.Generate].
func Generate(name Name, count int, dark bool) []string {
	return std.Generate(name, count, dark)
}

// Generate returns count lowercase "#rrggbb" colors from the named palette.
//
// The result depends only on the arguments. count <= 0 yields an empty
// list; a single color sits at the midpoint of the hue range; otherwise hues
// step evenly across the range. Unknown names log a warning and use
// [Default].
func (g *Generator) Generate(name Name, count int, dark bool) []string {
	p, ok := palettes[name]
	if !ok {
		g.logger.Warn("unknown palette, falling back", "palette", string(name), "fallback", string(Default))
		return g.Generate(Default, count, dark)
	}
	if count <= 0 {
		return []string{}
	}

	sat, light := p.Saturation, p.Lightness
	if dark {
		sat, light = adjustForDark(sat, light)
	}

	colors := make([]string, count)
	if name == Accessible {
		for i := range colors {
			colors[i] = hslHex(accessibleHues[i%len(accessibleHues)], sat, light)
		}
		return colors
	}
	if count == 1 {
		colors[0] = hslHex(p.Midpoint(), sat, light)
		return colors
	}

	step := p.Span() / float64(count)
	for i := range colors {
		colors[i] = hslHex(wrapHue(p.HueRange[0]+step*float64(i)), sat, light)
	}
	return colors
}

// adjustForDark lifts a palette for dark backgrounds based on its base
// saturation/lightness class.
func adjustForDark(sat, light float64) (float64, float64) {
	switch {
	case sat >= 85:
		return sat - 15, min(light+15, 70)
	case light >= 70:
		return sat, min(light+5, 75)
	case sat <= 30:
		return sat, min(light+20, 65)
	default:
		return sat, min(light+12, 65)
	}
}

// hslHex converts hue (degrees) and saturation/lightness (0-100) to hex.
func hslHex(h, s, l float64) string {
	return colorful.Hsl(h, s/100, l/100).Hex()
}
