// Package render groups the chart renderers.
//
// Rendering happens in two stages. [echarts] builds the option tree an
// ECharts-compatible engine draws from a [chart.Config]. [sink] takes the
// same config, or the finished option tree, and writes static artifacts:
// pretty or compact JSON, SVG and PNG snapshots, XLSX workbooks, palette
// swatches and plain-text terminal previews.
//
//	res := echarts.New().Transform(cfg, chart.LightTheme(), chart.Bar)
//	data, err := sink.RenderJSON(res.Options, true)
//	svg, err := sink.RenderSnapshot(cfg, colors, chart.Bar, errors.FormatSVG)
//
// [chart.Config]: github.com/matzehuels/chartbridge/pkg/chart#Config
// [echarts]: github.com/matzehuels/chartbridge/pkg/render/echarts
// [sink]: github.com/matzehuels/chartbridge/pkg/render/sink
package render
