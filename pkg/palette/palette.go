package palette

import "sort"

// Name identifies a built-in palette.
type Name string

// Built-in palette names.
const (
	Default    Name = "default"
	Vibrant    Name = "vibrant"
	Pastel     Name = "pastel"
	Monochrome Name = "monochrome"
	Earth      Name = "earth"
	Ocean      Name = "ocean"
	Sunset     Name = "sunset"
	Corporate  Name = "corporate"
	Neon       Name = "neon"
	Accessible Name = "accessible"
)

// Palette is a hue-range recipe for deriving colors.
type Palette struct {
	Name        Name       `json:"name"`
	HueRange    [2]float64 `json:"hue_range"`  // [start, end] degrees; end < start wraps past 360
	Saturation  float64    `json:"saturation"` // 0-100
	Lightness   float64    `json:"lightness"`  // 0-100
	Description string     `json:"description"`
}

// accessibleHues are colorblind-distinguishable hues cycled by the
// accessible palette. The first entry is the midpoint of its hue range.
var accessibleHues = [12]float64{210, 30, 160, 55, 195, 5, 320, 120, 270, 180, 345, 90}

var palettes = map[Name]Palette{
	Default: {
		Name: Default, HueRange: [2]float64{0, 360}, Saturation: 70, Lightness: 50,
		Description: "Balanced hues around the full color wheel",
	},
	Vibrant: {
		Name: Vibrant, HueRange: [2]float64{0, 360}, Saturation: 90, Lightness: 55,
		Description: "Highly saturated colors for emphasis",
	},
	Pastel: {
		Name: Pastel, HueRange: [2]float64{0, 360}, Saturation: 60, Lightness: 80,
		Description: "Soft, light tones",
	},
	Monochrome: {
		Name: Monochrome, HueRange: [2]float64{210, 230}, Saturation: 20, Lightness: 50,
		Description: "Muted slate blues",
	},
	Earth: {
		Name: Earth, HueRange: [2]float64{20, 100}, Saturation: 45, Lightness: 45,
		Description: "Browns, ochres and olives",
	},
	Ocean: {
		Name: Ocean, HueRange: [2]float64{170, 250}, Saturation: 65, Lightness: 50,
		Description: "Teals through deep blues",
	},
	Sunset: {
		Name: Sunset, HueRange: [2]float64{340, 40}, Saturation: 80, Lightness: 55,
		Description: "Magentas, reds and oranges",
	},
	Corporate: {
		Name: Corporate, HueRange: [2]float64{200, 260}, Saturation: 40, Lightness: 45,
		Description: "Restrained blues for business dashboards",
	},
	Neon: {
		Name: Neon, HueRange: [2]float64{280, 120}, Saturation: 100, Lightness: 55,
		Description: "Electric purples, pinks and greens",
	},
	Accessible: {
		Name: Accessible, HueRange: [2]float64{180, 240}, Saturation: 70, Lightness: 50,
		Description: "Twelve colorblind-distinguishable hues",
	},
}

// Lookup returns the palette registered under name.
func Lookup(name Name) (Palette, bool) {
	p, ok := palettes[name]
	return p, ok
}

// IsName reports whether s names a built-in palette.
func IsName(s string) bool {
	_, ok := palettes[Name(s)]
	return ok
}

// Names returns all palette names sorted alphabetically.
func Names() []Name {
	names := make([]Name, 0, len(palettes))
	for n := range palettes {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// All returns every palette sorted by name.
func All() []Palette {
	names := Names()
	out := make([]Palette, len(names))
	for i, n := range names {
		out[i] = palettes[n]
	}
	return out
}

// Span returns the width of the hue range in degrees, accounting for
// wraparound past 360.
func (p Palette) Span() float64 {
	start, end := p.HueRange[0], p.HueRange[1]
	if end < start {
		return 360 - start + end
	}
	return end - start
}

// Midpoint returns the hue halfway along the range.
func (p Palette) Midpoint() float64 {
	return wrapHue(p.HueRange[0] + p.Span()/2)
}

func wrapHue(h float64) float64 {
	for h >= 360 {
		h -= 360
	}
	return h
}
