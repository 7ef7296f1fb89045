// Package echarts turns renderer-agnostic chart descriptions into the option
// tree consumed by an ECharts-compatible rendering engine.
//
// # Transform
//
// [Transformer.Transform] takes a [chart.Config], the resolved [chart.Theme]
// and a [chart.Type] and returns a freshly allocated [Options] tree plus any
// [Warning] diagnostics:
//
//	tr := echarts.New(echarts.WithLogger(logger))
//	res := tr.Transform(cfg, chart.LightTheme(), chart.Bar)
//	data, _ := json.Marshal(res.Options)
//
// The transform is pure and synchronous: identical inputs produce deep-equal
// trees, and every optional config field has a default.
//
// # Chart Shapes
//
// Chart types are dispatched once to a shaper that owns the series layout,
// axes and any auxiliary components for that family:
//
//   - cartesian (line, bar, area, mixed): pass-through series, per-series
//     type overrides, shared stack identifier
//   - pie and donut: one renderer series with one slice per input series
//   - scatter: {x, y} points flattened to [x, y] tuples
//   - radar: each series becomes one aligned value tuple
//   - heatmap: categorical axes, [x, y, value] cells and a value-scale legend
//
// # Colors
//
// Series colors resolve in order: an explicit color list, a recognized
// palette name expanded for the series count, then the theme's ambient
// colors or palette.
//
// # Escape Hatch
//
// [chart.Config.Advanced] is deep-merged onto the finished tree as the very
// last step. Objects merge recursively; arrays and scalars replace the
// computed value wholesale.
package echarts
