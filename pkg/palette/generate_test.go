package palette

import (
	"bytes"
	"reflect"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func quiet() *Generator { return NewGenerator(nil) }

func TestGenerateCountAndFormat(t *testing.T) {
	g := quiet()
	for _, name := range Names() {
		for _, dark := range []bool{false, true} {
			for n := 0; n <= 30; n++ {
				colors := g.Generate(name, n, dark)
				if len(colors) != n {
					t.Fatalf("Generate(%s, %d, %v) returned %d colors", name, n, dark, len(colors))
				}
				for _, c := range colors {
					if !hexColorRegex.MatchString(c) {
						t.Errorf("Generate(%s, %d, %v) produced invalid color %q", name, n, dark, c)
					}
				}
			}
		}
	}
}

func TestGenerateEmpty(t *testing.T) {
	g := quiet()
	for _, name := range Names() {
		for _, n := range []int{0, -1, -50} {
			got := g.Generate(name, n, false)
			if got == nil || len(got) != 0 {
				t.Errorf("Generate(%s, %d) = %#v, want empty non-nil slice", name, n, got)
			}
		}
	}
}

func TestGenerateSingleUsesMidpoint(t *testing.T) {
	g := quiet()
	for _, p := range All() {
		for _, dark := range []bool{false, true} {
			sat, light := p.Saturation, p.Lightness
			if dark {
				sat, light = adjustForDark(sat, light)
			}
			want := hslHex(p.Midpoint(), sat, light)
			got := g.Generate(p.Name, 1, dark)
			if len(got) != 1 || got[0] != want {
				t.Errorf("Generate(%s, 1, %v) = %v, want [%s]", p.Name, dark, got, want)
			}
		}
	}
}

func TestGenerateKnownValues(t *testing.T) {
	g := quiet()
	tests := []struct {
		name  Name
		count int
		dark  bool
		want  []string
	}{
		{Default, 1, false, []string{"#26d9d9"}},
		{Default, 1, true, []string{"#5ae2e2"}},
		{Default, 3, false, []string{"#d92626", "#26d926", "#2626d9"}},
		{Sunset, 1, false, []string{"#e84f30"}},
	}
	for _, tt := range tests {
		got := g.Generate(tt.name, tt.count, tt.dark)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Generate(%s, %d, %v) = %v, want %v", tt.name, tt.count, tt.dark, got, tt.want)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	g := quiet()
	for _, name := range Names() {
		a := g.Generate(name, 9, true)
		b := g.Generate(name, 9, true)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("Generate(%s) not deterministic: %v vs %v", name, a, b)
		}
	}
}

func TestGenerateUnknownFallsBackToDefault(t *testing.T) {
	var buf bytes.Buffer
	g := NewGenerator(log.NewWithOptions(&buf, log.Options{Level: log.WarnLevel}))

	for _, dark := range []bool{false, true} {
		got := g.Generate("unknown-name", 6, dark)
		want := g.Generate(Default, 6, dark)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Generate(unknown-name) = %v, want %v", got, want)
		}
	}
	if !strings.Contains(buf.String(), "unknown-name") {
		t.Errorf("fallback should be logged, got %q", buf.String())
	}
}

func TestSpanWraparound(t *testing.T) {
	tests := []struct {
		rng      [2]float64
		span     float64
		midpoint float64
	}{
		{[2]float64{0, 360}, 360, 180},
		{[2]float64{170, 250}, 80, 210},
		{[2]float64{340, 40}, 60, 10},
		{[2]float64{280, 120}, 200, 20},
	}
	for _, tt := range tests {
		p := Palette{HueRange: tt.rng}
		if got := p.Span(); got != tt.span {
			t.Errorf("Span(%v) = %v, want %v", tt.rng, got, tt.span)
		}
		if got := p.Midpoint(); got != tt.midpoint {
			t.Errorf("Midpoint(%v) = %v, want %v", tt.rng, got, tt.midpoint)
		}
	}
}

func TestGenerateWrapsHues(t *testing.T) {
	g := quiet()
	p, _ := Lookup(Sunset)
	// 340 + 20*1 = 360 wraps to 0, 340 + 20*2 = 380 wraps to 20.
	got := g.Generate(Sunset, 3, false)
	want := []string{
		hslHex(340, p.Saturation, p.Lightness),
		hslHex(0, p.Saturation, p.Lightness),
		hslHex(20, p.Saturation, p.Lightness),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Generate(sunset, 3) = %v, want %v", got, want)
	}
}

func TestAccessibleCycles(t *testing.T) {
	g := quiet()
	colors := g.Generate(Accessible, 30, false)
	for i := 12; i < len(colors); i++ {
		if colors[i] != colors[i-12] {
			t.Errorf("accessible color %d = %s, want %s (cycle of 12)", i, colors[i], colors[i-12])
		}
	}
	seen := make(map[string]bool)
	for _, c := range colors[:12] {
		if seen[c] {
			t.Errorf("accessible palette repeats %s within the first 12", c)
		}
		seen[c] = true
	}
}

func TestAdjustForDark(t *testing.T) {
	tests := []struct {
		name               string
		sat, light         float64
		wantSat, wantLight float64
	}{
		{"saturated", 90, 55, 75, 70},
		{"saturated capped", 100, 60, 85, 70},
		{"light", 60, 70, 60, 75},
		{"light capped", 60, 72, 60, 75},
		{"muted", 20, 50, 20, 65},
		{"muted low", 20, 30, 20, 50},
		{"otherwise", 70, 50, 70, 62},
		{"otherwise capped", 50, 60, 50, 65},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, l := adjustForDark(tt.sat, tt.light)
			if s != tt.wantSat || l != tt.wantLight {
				t.Errorf("adjustForDark(%v, %v) = (%v, %v), want (%v, %v)",
					tt.sat, tt.light, s, l, tt.wantSat, tt.wantLight)
			}
		})
	}
}

func TestNamesAreClosedSet(t *testing.T) {
	want := []Name{Accessible, Corporate, Default, Earth, Monochrome, Neon, Ocean, Pastel, Sunset, Vibrant}
	if got := Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	if !IsName("ocean") || IsName("auto") {
		t.Error("IsName mismatch")
	}
}
