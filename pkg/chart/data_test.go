package chart

import (
	"encoding/json"
	"testing"
)

func TestDataUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Data
	}{
		{"numbers", `[1, 2.5, 3]`, Values(1, 2.5, 3)},
		{"scalar", `42`, Scalar(42)},
		{"points", `[{"x": 1, "y": 2}, {"x": 3, "y": 4}]`, Points(1, 2, 3, 4)},
		{"tuples", `[[1, 2], [3, 4, 5]]`, Data{Tup(1, 2), Tup(3, 4, 5)}},
		{"gaps", `[1, null, 3]`, Data{Num(1), Null(), Num(3)}},
		{"null", `null`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Data
			if err := json.Unmarshal([]byte(tt.input), &got); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.input, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i].Kind != tt.want[i].Kind || got[i].Number() != tt.want[i].Number() {
					t.Errorf("entry %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDataUnmarshalJSONErrors(t *testing.T) {
	inputs := []string{
		`"text"`,
		`[{"x": 1}]`,
		`[[1, "a"]]`,
	}
	for _, in := range inputs {
		var d Data
		if err := json.Unmarshal([]byte(in), &d); err == nil {
			t.Errorf("Unmarshal(%s) should fail", in)
		}
	}
}

func TestDatumNumber(t *testing.T) {
	tests := []struct {
		d    Datum
		want float64
	}{
		{Num(3), 3},
		{Pt(1, 7), 7},
		{Tup(1, 2, 9), 9},
		{Tup(), 0},
		{Null(), 0},
	}
	for _, tt := range tests {
		if got := tt.d.Number(); got != tt.want {
			t.Errorf("%+v.Number() = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestDataMarshalRoundTrip(t *testing.T) {
	in := Data{Num(1), Null(), Pt(2, 3), Tup(4, 5, 6)}
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	want := `[1,null,{"x":2,"y":3},[4,5,6]]`
	if string(b) != want {
		t.Errorf("Marshal = %s, want %s", b, want)
	}
}

func TestColorsJSON(t *testing.T) {
	var cfg Config
	if err := json.Unmarshal([]byte(`{"series": [], "colors": "vibrant"}`), &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Colors.Palette != "vibrant" || cfg.Colors.IsExplicit() {
		t.Errorf("Colors = %+v, want palette vibrant", cfg.Colors)
	}

	if err := json.Unmarshal([]byte(`{"series": [], "colors": ["#111111", "#222222"]}`), &cfg); err != nil {
		t.Fatal(err)
	}
	if !cfg.Colors.IsExplicit() || len(cfg.Colors.List) != 2 {
		t.Errorf("Colors = %+v, want explicit list", cfg.Colors)
	}

	if err := json.Unmarshal([]byte(`{"series": [], "colors": 5}`), &cfg); err == nil {
		t.Error("numeric colors should fail")
	}
}

func TestColorsIsAuto(t *testing.T) {
	tests := []struct {
		c    Colors
		want bool
	}{
		{Colors{}, true},
		{PaletteColors("auto"), true},
		{PaletteColors("AUTO"), true},
		{PaletteColors("ocean"), false},
		{ColorList("#000000"), false},
	}
	for _, tt := range tests {
		if got := tt.c.IsAuto(); got != tt.want {
			t.Errorf("%+v.IsAuto() = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestParseType(t *testing.T) {
	for _, ct := range Types() {
		got, ok := ParseType(string(ct))
		if !ok || got != ct {
			t.Errorf("ParseType(%q) = %q, %v", ct, got, ok)
		}
	}
	if got, ok := ParseType(" Donut "); !ok || got != Donut {
		t.Errorf("ParseType should trim and lowercase, got %q, %v", got, ok)
	}
	if _, ok := ParseType("gantt"); ok {
		t.Error("ParseType(gantt) should fail")
	}
}

func TestDefaults(t *testing.T) {
	var cfg Config
	if !cfg.AnimationsEnabled() {
		t.Error("animations should default to on")
	}
	var l *Legend
	if !l.Visible() || l.Anchor() != LegendTop {
		t.Error("nil legend should be visible at top")
	}
	hidden := &Legend{Show: Bool(false)}
	if hidden.Visible() {
		t.Error("legend with show=false should be hidden")
	}
}
