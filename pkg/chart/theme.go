package chart

// DefaultPalette is the ambient palette used when a theme names none.
const DefaultPalette = "default"

// Theme is the resolved theme context a chart is rendered in.
type Theme struct {
	Name           string   `json:"name,omitempty"`
	Dark           bool     `json:"dark"`
	Palette        string   `json:"palette,omitempty"` // ambient palette name
	Colors         []string `json:"colors,omitempty"`  // ambient explicit colors, win over Palette
	TextColor      string   `json:"textColor,omitempty"`
	AxisColor      string   `json:"axisColor,omitempty"`
	SplitLineColor string   `json:"splitLineColor,omitempty"`
	Background     string   `json:"background,omitempty"`
	FontFamily     string   `json:"fontFamily,omitempty"`
}

// LightTheme returns the default light theme.
func LightTheme() Theme {
	return Theme{
		Name:           "light",
		Palette:        DefaultPalette,
		TextColor:      "#1f2937",
		AxisColor:      "#9ca3af",
		SplitLineColor: "#e5e7eb",
		Background:     "transparent",
		FontFamily:     "Inter, system-ui, sans-serif",
	}
}

// DarkTheme returns the default dark theme.
func DarkTheme() Theme {
	return Theme{
		Name:           "dark",
		Dark:           true,
		Palette:        DefaultPalette,
		TextColor:      "#e5e7eb",
		AxisColor:      "#6b7280",
		SplitLineColor: "#374151",
		Background:     "transparent",
		FontFamily:     "Inter, system-ui, sans-serif",
	}
}

// ThemeFor returns the default theme for the dark flag.
func ThemeFor(dark bool) Theme {
	if dark {
		return DarkTheme()
	}
	return LightTheme()
}
