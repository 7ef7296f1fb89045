package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matzehuels/chartbridge/pkg/chart"
	"github.com/matzehuels/chartbridge/pkg/errors"
)

const jsonConfig = `{
  "title": "Revenue",
  "series": [
    {"name": "2024", "data": [3, 5, null]},
    {"name": "pts", "data": [{"x": 1, "y": 2}, [3, 4]], "type": "scatter"}
  ],
  "xAxis": {"categories": ["Q1", "Q2", "Q3"]},
  "legend": {"position": "bottom"},
  "colors": "ocean",
  "stacked": true,
  "advanced": {"grid": {"top": 5}}
}`

const tomlConfig = `
title = "Revenue"
colors = "ocean"
stacked = true

[xAxis]
categories = ["Q1", "Q2", "Q3"]

[legend]
position = "bottom"

[advanced.grid]
top = 5

[[series]]
name = "2024"
data = [3, 5]

[[series]]
name = "pts"
type = "scatter"
data = [{x = 1, y = 2}, [3, 4]]
`

const yamlConfig = `
title: Revenue
colors: ocean
stacked: true
xAxis:
  categories: [Q1, Q2, Q3]
legend:
  position: bottom
advanced:
  grid:
    top: 5
series:
  - name: "2024"
    data: [3, 5]
  - name: pts
    type: scatter
    data:
      - {x: 1, y: 2}
      - [3, 4]
`

func TestParseConfigFormats(t *testing.T) {
	tests := []struct {
		format Format
		data   string
	}{
		{FormatJSON, jsonConfig},
		{FormatTOML, tomlConfig},
		{FormatYAML, yamlConfig},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			cfg, err := ParseConfig([]byte(tt.data), tt.format)
			require.NoError(t, err)

			require.Equal(t, "Revenue", cfg.Title)
			require.Equal(t, chart.PaletteColors("ocean"), cfg.Colors)
			require.True(t, cfg.Stacked)
			require.Equal(t, []string{"Q1", "Q2", "Q3"}, cfg.XAxis.Categories)
			require.Equal(t, chart.LegendBottom, cfg.Legend.Anchor())

			require.Len(t, cfg.Series, 2)
			require.Equal(t, "2024", cfg.Series[0].Name)
			require.Equal(t, 3.0, cfg.Series[0].Data[0].Number())
			require.Equal(t, chart.Scatter, cfg.Series[1].Type)
			require.Equal(t, chart.Pt(1, 2), cfg.Series[1].Data[0])
			require.Equal(t, chart.Tup(3, 4), cfg.Series[1].Data[1])

			grid := cfg.Advanced["grid"].(map[string]any)
			require.EqualValues(t, 5, grid["top"])
		})
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		data   string
		code   errors.Code
	}{
		{"malformed json", FormatJSON, `{"series": [`, errors.ErrCodeInvalidConfig},
		{"unknown field", FormatJSON, `{"serie": []}`, errors.ErrCodeInvalidConfig},
		{"bad colors", FormatJSON, `{"colors": 3}`, errors.ErrCodeInvalidConfig},
		{"bad point", FormatJSON, `{"series": [{"name": "a", "data": [{"x": 1}]}]}`, errors.ErrCodeInvalidConfig},
		{"bad series type", FormatJSON, `{"series": [{"name": "a", "type": "gantt"}]}`, errors.ErrCodeInvalidConfig},
		{"bad legend", FormatYAML, "legend:\n  position: middle\n", errors.ErrCodeInvalidConfig},
		{"bad axis", FormatYAML, "yAxis:\n  type: log\n", errors.ErrCodeInvalidConfig},
		{"malformed toml", FormatTOML, `title = `, errors.ErrCodeInvalidConfig},
		{"malformed yaml", FormatYAML, "series: [\n", errors.ErrCodeInvalidConfig},
		{"unknown format", Format("xml"), `<x/>`, errors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data), tt.format)
			require.Error(t, err)
			require.Equal(t, tt.code, errors.GetCode(err), err.Error())
		})
	}
}

func TestScalarSeriesData(t *testing.T) {
	cfg, err := ParseConfig([]byte(`{"series": [{"name": "slice", "data": 42}]}`), FormatJSON)
	require.NoError(t, err)
	require.Equal(t, chart.Scalar(42), cfg.Series[0].Data)
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"chart.json", FormatJSON},
		{"dir/chart.TOML", FormatTOML},
		{"chart.yaml", FormatYAML},
		{"chart.yml", FormatYAML},
	}
	for _, tt := range tests {
		got, err := DetectFormat(tt.path)
		require.NoError(t, err, tt.path)
		require.Equal(t, tt.want, got, tt.path)
	}

	_, err := DetectFormat("chart.csv")
	require.True(t, errors.Is(err, errors.ErrCodeInvalidFormat))

	f, err := ParseFormat("YML")
	require.NoError(t, err)
	require.Equal(t, FormatYAML, f)
	_, err = ParseFormat("ini")
	require.Error(t, err)
}

func TestImportConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "revenue.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlConfig), 0644))

	cfg, err := ImportConfig(path)
	require.NoError(t, err)
	require.Equal(t, "Revenue", cfg.Title)

	_, err = ImportConfig(filepath.Join(dir, "missing.json"))
	require.True(t, errors.Is(err, errors.ErrCodeFileNotFound), err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{`), 0644))
	_, err = ImportConfig(bad)
	require.True(t, errors.Is(err, errors.ErrCodeInvalidConfig))
	require.Contains(t, err.Error(), bad)

	_, err = ImportConfig("")
	require.True(t, errors.Is(err, errors.ErrCodeInvalidPath))
}

func TestReadConfig(t *testing.T) {
	cfg, err := ReadConfig(strings.NewReader(jsonConfig), FormatJSON)
	require.NoError(t, err)
	require.Len(t, cfg.Series, 2)
}

func TestWriteOptions(t *testing.T) {
	opts := map[string]any{"b": 1, "a": []string{"x"}}

	var compact bytes.Buffer
	require.NoError(t, WriteOptions(&compact, opts, false))
	require.Equal(t, "{\"a\":[\"x\"],\"b\":1}\n", compact.String())

	var pretty bytes.Buffer
	require.NoError(t, WriteOptions(&pretty, opts, true))
	require.Contains(t, pretty.String(), "\n  \"a\": [")

	path := filepath.Join(t.TempDir(), "options.json")
	require.NoError(t, ExportOptions(path, opts))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.JSONEq(t, `{"a":["x"],"b":1}`, string(data))

	require.Error(t, WriteOptions(&compact, map[string]any{"f": func() {}}, false))
}
