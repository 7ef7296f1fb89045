// Package pkg holds the public chartbridge libraries.
//
// chartbridge turns a renderer-agnostic chart description into the option
// tree of an ECharts-compatible engine, generates the color palettes those
// charts use, and normalizes the engine's interaction events into one
// payload shape.
//
// # Layout
//
//   - [chart] - the chart description ([chart.Config], series data, themes)
//   - [palette] - HCL palette generation and the named palette catalog
//   - [render/echarts] - config to option tree transformation
//   - [render/sink] - JSON, SVG, PNG, XLSX, swatch and terminal outputs
//   - [events] - engine event normalization and handler binding
//   - [io] - config import from JSON, TOML, YAML and export
//   - [pipeline] - cached transform and render orchestration
//   - [cache] - file, Redis and null caches with scoped keys
//   - [observability] - hooks, with a Prometheus adapter in observability/prom
//   - [errors] - coded errors and input validation
//
// # Data Flow
//
//	chart.Config (JSON / TOML / YAML)
//	         ↓
//	    [io] import
//	         ↓
//	    [render/echarts] transform (colors from [palette])
//	         ↓
//	    [render/sink] artifacts
//
// The [pipeline] package runs these steps with caching; the CLI and the HTTP
// server are thin layers over it.
//
// [chart]: github.com/matzehuels/chartbridge/pkg/chart
// [chart.Config]: github.com/matzehuels/chartbridge/pkg/chart#Config
// [palette]: github.com/matzehuels/chartbridge/pkg/palette
// [render/echarts]: github.com/matzehuels/chartbridge/pkg/render/echarts
// [render/sink]: github.com/matzehuels/chartbridge/pkg/render/sink
// [events]: github.com/matzehuels/chartbridge/pkg/events
// [io]: github.com/matzehuels/chartbridge/pkg/io
// [pipeline]: github.com/matzehuels/chartbridge/pkg/pipeline
// [cache]: github.com/matzehuels/chartbridge/pkg/cache
// [observability]: github.com/matzehuels/chartbridge/pkg/observability
// [errors]: github.com/matzehuels/chartbridge/pkg/errors
package pkg
