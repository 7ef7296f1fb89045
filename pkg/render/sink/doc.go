// Package sink renders charts into static artifacts.
//
// The option tree produced by [echarts] is meant for an interactive engine;
// the sinks here cover the places that engine cannot reach:
//
//   - [RenderJSON]: the option tree itself, for embedding in a page
//   - [RenderSnapshot]: a static SVG or PNG image of cartesian and pie charts
//   - [RenderXLSX]: a workbook with the data and a native spreadsheet chart
//   - [RenderTerminal]: a bar preview for terminals
//   - [RenderSwatch]: a PNG strip showing a palette
//
// Snapshot, workbook and terminal sinks read the chart config directly
// together with the colors the transformer resolved, so every artifact of
// one render uses the same colors.
//
// [echarts]: github.com/matzehuels/chartbridge/pkg/render/echarts
package sink
