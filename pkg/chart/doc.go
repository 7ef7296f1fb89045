// Package chart defines the renderer-agnostic chart description accepted by
// chartbridge.
//
// # Overview
//
// A [Config] describes what to chart: a list of [Series] plus optional axis,
// legend, tooltip, grid and stroke descriptors. It never mentions a rendering
// engine. Engine-specific packages (such as render/echarts) turn a Config
// into the option tree their engine consumes, so callers can swap engines
// without touching their chart descriptions.
//
// # Series Data
//
// A series carries its values as [Data], an ordered list of [Datum] entries.
// Each entry is one of:
//
//   - a plain number (line, bar, area, radar, heatmap rows)
//   - an {x, y} point (scatter)
//   - a positional tuple such as [x, y] or [x, y, value]
//   - null, a gap in the series
//
// Pie and donut charts read a single scalar per series; a JSON number in the
// "data" field decodes to a one-entry Data.
//
// # Colors
//
// [Colors] is a union: an explicit color list, a palette name, or "auto".
// Explicit lists always win over palette names.
//
// # Theme
//
// [Theme] is the resolved theme context (dark flag, ambient palette, text and
// axis colors). Use [LightTheme] or [DarkTheme] for defaults.
package chart
