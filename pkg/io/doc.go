// Package io loads chart configs from JSON, TOML and YAML files and writes
// option trees back out.
//
// # Formats
//
// The JSON form is canonical and mirrors [chart.Config] field for field:
//
//	{
//	  "title": "Revenue",
//	  "series": [
//	    {"name": "2024", "data": [3, 5, 2]},
//	    {"name": "2025", "data": [4, 6, 3], "type": "line"}
//	  ],
//	  "xAxis": {"categories": ["Q1", "Q2", "Q3"]},
//	  "legend": {"position": "bottom"},
//	  "colors": "ocean",
//	  "stacked": true
//	}
//
// TOML and YAML documents use the same keys. They are decoded generically
// and re-encoded as JSON, so every format accepts exactly the same shapes,
// including the number, {x, y} point and tuple forms of series data.
//
// # Import
//
// Use [ImportConfig] to read a file, picking the format from its
// extension, or [ReadConfig] to read from any io.Reader:
//
//	cfg, err := io.ImportConfig("revenue.yaml")
//
// Decoding failures are reported as errors with code INVALID_CONFIG; a
// missing file has code FILE_NOT_FOUND.
//
// # Export
//
// [WriteOptions] and [ExportOptions] encode an option tree as JSON.
//
// [chart.Config]: github.com/matzehuels/chartbridge/pkg/chart.Config
package io
