package echarts

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartbridge/pkg/chart"
	"github.com/matzehuels/chartbridge/pkg/palette"
)

// DefaultMaxSeries is the recommended maximum number of series per chart.
const DefaultMaxSeries = 12

// StackID is the stack identifier shared by every stackable series.
const StackID = "total"

// Options is the renderer-native option tree.
type Options map[string]any

// Object is a nested option object.
type Object = map[string]any

// WarningCode classifies a non-fatal transform diagnostic.
type WarningCode string

// Warning codes.
const (
	WarnSeriesOverflow    WarningCode = "series_overflow"
	WarnUnknownPalette    WarningCode = "unknown_palette"
	WarnUnknownChartType  WarningCode = "unknown_chart_type"
	WarnIgnoredSeriesType WarningCode = "ignored_series_type"
)

// Warning is a non-fatal diagnostic produced while transforming.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}

// Result is the output of a transform.
type Result struct {
	Options  Options   `json:"options"`
	Warnings []Warning `json:"warnings,omitempty"`
}

// HasWarning reports whether a warning with the given code was produced.
func (r Result) HasWarning(code WarningCode) bool {
	for _, w := range r.Warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}

// Transformer converts chart configs into option trees.
// It holds no per-call state and is safe for concurrent use.
type Transformer struct {
	logger    *log.Logger
	palettes  *palette.Generator
	maxSeries int
}

// Option configures a [Transformer].
type Option func(*Transformer)

// WithLogger routes diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(t *Transformer) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithMaxSeries changes the series count above which a warning is emitted.
func WithMaxSeries(n int) Option {
	return func(t *Transformer) {
		if n > 0 {
			t.maxSeries = n
		}
	}
}

// New creates a transformer. Without [WithLogger], diagnostics are only
// returned in [Result.Warnings].
func New(opts ...Option) *Transformer {
	t := &Transformer{
		logger:    log.NewWithOptions(io.Discard, log.Options{}),
		maxSeries: DefaultMaxSeries,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.palettes = palette.NewGenerator(t.logger)
	return t
}

var std = New()

// Transform converts cfg with the default transformer and returns only the
// option tree.
func Transform(cfg chart.Config, theme chart.Theme, typ chart.Type) Options {
	return std.Transform(cfg, theme, typ).Options
}

// build carries the inputs of one transform through the builders.
type build struct {
	cfg      chart.Config
	theme    chart.Theme
	typ      chart.Type
	shape    *shape
	colors   []string
	warnings []Warning
	logger   *log.Logger
}

func (b *build) warn(code WarningCode, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	b.warnings = append(b.warnings, Warning{Code: code, Message: msg})
	b.logger.Warn(msg, "code", string(code))
}

// Transform converts cfg into the option tree for chart type typ.
func (t *Transformer) Transform(cfg chart.Config, theme chart.Theme, typ chart.Type) Result {
	b := &build{cfg: cfg, theme: theme, typ: typ, logger: t.logger}

	sh, ok := shapeFor(typ)
	if !ok {
		b.warn(WarnUnknownChartType, "unknown chart type %q, rendering as %s", typ, chart.Line)
		b.typ = chart.Line
		sh, _ = shapeFor(chart.Line)
	}
	b.shape = sh

	if n := len(cfg.Series); n > t.maxSeries {
		b.warn(WarnSeriesOverflow, "chart has %d series, more than the recommended maximum of %d", n, t.maxSeries)
	}

	b.colors = t.resolveColors(b)

	o := Options{
		"color":           b.colors,
		"animation":       cfg.AnimationsEnabled(),
		"backgroundColor": theme.Background,
		"textStyle":       Object{"color": theme.TextColor, "fontFamily": theme.FontFamily},
		"tooltip":         buildTooltip(b),
		"legend":          buildLegend(b),
		"series":          sh.series(b),
	}
	if cfg.Title != "" {
		o["title"] = Object{
			"text":      cfg.Title,
			"left":      "center",
			"textStyle": Object{"color": theme.TextColor},
		}
	}

	if sh.coordinates {
		o["grid"] = buildGrid(b)
		x, y := sh.axes(b)
		o["xAxis"], o["yAxis"] = x, y
	} else {
		o["xAxis"] = Object{"show": false}
		o["yAxis"] = Object{"show": false}
	}

	if cfg.Toolbar {
		o["toolbox"] = buildToolbox(b)
		if sh.coordinates {
			o["brush"] = Object{"toolbox": []string{"rect", "polygon", "clear"}, "xAxisIndex": "all"}
		}
	}
	if cfg.Zoom && sh.coordinates {
		o["dataZoom"] = buildDataZoom(b)
	}
	if sh.extras != nil {
		sh.extras(b, o)
	}

	if len(cfg.Advanced) > 0 {
		mergeAdvanced(o, cfg.Advanced)
	}

	t.logger.Debug("transformed chart config",
		"type", string(b.typ),
		"series", len(cfg.Series),
		"warnings", len(b.warnings))

	return Result{Options: o, Warnings: b.warnings}
}

// itemTrigger reports whether tooltips for typ attach to individual items
// rather than to an axis position. It is the single source of truth for the
// tooltip trigger.
func itemTrigger(typ chart.Type) bool {
	switch typ {
	case chart.Pie, chart.Donut, chart.Scatter, chart.Radar, chart.Heatmap:
		return true
	}
	return false
}
