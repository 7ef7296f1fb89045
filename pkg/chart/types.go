package chart

import "strings"

// Type identifies the kind of chart to render.
type Type string

// Supported chart types.
const (
	Line    Type = "line"
	Bar     Type = "bar"
	Area    Type = "area"
	Pie     Type = "pie"
	Donut   Type = "donut"
	Scatter Type = "scatter"
	Radar   Type = "radar"
	Heatmap Type = "heatmap"
	Mixed   Type = "mixed"
)

// Types returns every supported chart type in a stable order.
func Types() []Type {
	return []Type{Line, Bar, Area, Pie, Donut, Scatter, Radar, Heatmap, Mixed}
}

// Valid reports whether t is a supported chart type.
func (t Type) Valid() bool {
	for _, v := range Types() {
		if v == t {
			return true
		}
	}
	return false
}

// String returns the type name.
func (t Type) String() string { return string(t) }

// ParseType converts s (case-insensitive) into a Type.
func ParseType(s string) (Type, bool) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	return t, t.Valid()
}

// AxisType is the declared kind of an axis.
type AxisType string

// Axis kinds.
const (
	AxisCategory AxisType = "category"
	AxisNumeric  AxisType = "numeric"
	AxisDatetime AxisType = "datetime"
)

// LegendPosition is the edge a legend is anchored to.
type LegendPosition string

// Legend positions.
const (
	LegendTop    LegendPosition = "top"
	LegendBottom LegendPosition = "bottom"
	LegendLeft   LegendPosition = "left"
	LegendRight  LegendPosition = "right"
)

// Curve controls how line segments are drawn between points.
type Curve string

// Line curves.
const (
	CurveStraight Curve = "straight"
	CurveSmooth   Curve = "smooth"
	CurveStepline Curve = "stepline"
)

// Config is the renderer-agnostic description of a chart.
//
// All fields except Series are optional; every transformer must supply a
// default for anything left unset.
type Config struct {
	Title      string         `json:"title,omitempty"`
	Series     []Series       `json:"series"`
	XAxis      *Axis          `json:"xAxis,omitempty"`
	YAxis      *Axis          `json:"yAxis,omitempty"`
	Legend     *Legend        `json:"legend,omitempty"`
	Tooltip    *Tooltip       `json:"tooltip,omitempty"`
	Grid       *Grid          `json:"grid,omitempty"`
	Stroke     *Stroke        `json:"stroke,omitempty"`
	Colors     Colors         `json:"colors"`
	Animations *bool          `json:"animations,omitempty"`
	Toolbar    bool           `json:"toolbar,omitempty"`
	Zoom       bool           `json:"zoom,omitempty"`
	Stacked    bool           `json:"stacked,omitempty"`
	Horizontal bool           `json:"horizontal,omitempty"`
	Advanced   map[string]any `json:"advanced,omitempty"` // raw option overrides, merged last
}

// AnimationsEnabled reports whether animations are on (default true).
func (c Config) AnimationsEnabled() bool {
	return c.Animations == nil || *c.Animations
}

// Series is one named data series.
type Series struct {
	Name  string `json:"name"`
	Data  Data   `json:"data"`
	Type  Type   `json:"type,omitempty"`  // overrides the chart type for this series
	Color string `json:"color,omitempty"` // overrides the resolved palette color
}

// Axis describes a coordinate axis.
type Axis struct {
	Type       AxisType `json:"type,omitempty"`
	Categories []string `json:"categories,omitempty"`
	Title      string   `json:"title,omitempty"`
	Min        *float64 `json:"min,omitempty"`
	Max        *float64 `json:"max,omitempty"`
	Show       *bool    `json:"show,omitempty"`
	Format     string   `json:"format,omitempty"` // label template, e.g. "{value} ms"
}

// Visible reports whether the axis should be drawn (default true).
func (a *Axis) Visible() bool {
	return a == nil || a.Show == nil || *a.Show
}

// Legend describes the series legend.
type Legend struct {
	Show     *bool          `json:"show,omitempty"`
	Position LegendPosition `json:"position,omitempty"`
}

// Visible reports whether the legend is shown (default true).
func (l *Legend) Visible() bool {
	return l == nil || l.Show == nil || *l.Show
}

// Anchor returns the legend position, defaulting to top.
func (l *Legend) Anchor() LegendPosition {
	if l == nil || l.Position == "" {
		return LegendTop
	}
	return l.Position
}

// Tooltip describes hover tooltips.
type Tooltip struct {
	Show   *bool  `json:"show,omitempty"`
	Format string `json:"format,omitempty"` // template, e.g. "{b}: {c}"
}

// Visible reports whether tooltips are enabled (default true).
func (t *Tooltip) Visible() bool {
	return t == nil || t.Show == nil || *t.Show
}

// Grid holds explicit plot-area margins in pixels. Nil margins are computed.
type Grid struct {
	Top       *int `json:"top,omitempty"`
	Right     *int `json:"right,omitempty"`
	Bottom    *int `json:"bottom,omitempty"`
	Left      *int `json:"left,omitempty"`
	ShowLines bool `json:"showLines,omitempty"`
}

// Stroke describes line drawing.
type Stroke struct {
	Width float64 `json:"width,omitempty"`
	Curve Curve   `json:"curve,omitempty"`
	Dash  []int   `json:"dash,omitempty"`
}

// Bool returns a pointer to b, for optional config fields.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to n, for optional config fields.
func Int(n int) *int { return &n }

// Float returns a pointer to f, for optional config fields.
func Float(f float64) *float64 { return &f }
