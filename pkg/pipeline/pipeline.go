// Package pipeline runs a chart config through the transform → render
// pipeline that the CLI and the HTTP service share.
//
// # Architecture
//
// The pipeline has two stages:
//
//  1. Transform: convert the config into the renderer option tree
//  2. Render: produce artifacts in the requested formats (JSON, SVG, PNG, XLSX)
//
// Both stages are cached. Option trees are keyed by a hash of the config and
// the theme; artifacts are keyed by a hash of the option tree and the render
// settings. Chart data is never stored on its own.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, cfg, pipeline.Options{
//	    ChartType: "bar",
//	    Formats:   []string{"json", "svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"time"

	"github.com/matzehuels/chartbridge/pkg/cache"
	"github.com/matzehuels/chartbridge/pkg/chart"
	"github.com/matzehuels/chartbridge/pkg/errors"
	"github.com/matzehuels/chartbridge/pkg/render/echarts"
	"github.com/matzehuels/chartbridge/pkg/render/sink"
)

// Defaults shared by the CLI and the HTTP service.
const (
	DefaultChartType = chart.Line
	DefaultTheme     = "light"
	DefaultWidth     = sink.DefaultWidth
	DefaultHeight    = sink.DefaultHeight
)

// Theme names.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Options configures one pipeline run. It supports JSON for API requests.
type Options struct {
	ChartType string   `json:"chart_type,omitempty"`
	Theme     string   `json:"theme,omitempty"`
	Formats   []string `json:"formats,omitempty"`
	Width     int      `json:"width,omitempty"`
	Height    int      `json:"height,omitempty"`
	Pretty    bool     `json:"pretty,omitempty"`

	// Refresh skips cache reads. Fresh results are still written back.
	Refresh bool `json:"refresh,omitempty"`
}

// SetDefaults fills unset fields.
func (o *Options) SetDefaults() {
	if o.ChartType == "" {
		o.ChartType = string(DefaultChartType)
	}
	if o.Theme == "" {
		o.Theme = DefaultTheme
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{errors.FormatJSON}
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
}

// Validate applies defaults and checks every field.
func (o *Options) Validate() error {
	o.SetDefaults()
	if _, err := errors.ValidateChartType(o.ChartType); err != nil {
		return err
	}
	if o.Theme != ThemeLight && o.Theme != ThemeDark {
		return errors.New(errors.ErrCodeInvalidInput, "theme must be %s or %s, got %q", ThemeLight, ThemeDark, o.Theme)
	}
	for _, f := range o.Formats {
		if err := errors.ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Type returns the chart type. Call after [Options.Validate].
func (o Options) Type() chart.Type {
	t, _ := chart.ParseType(o.ChartType)
	return t
}

// Dark reports whether the dark theme is selected.
func (o Options) Dark() bool { return o.Theme == ThemeDark }

// ChartTheme returns the theme context for the transformer.
func (o Options) ChartTheme() chart.Theme { return chart.ThemeFor(o.Dark()) }

// OptionsKeyOpts returns cache key inputs for the transform stage.
func (o Options) OptionsKeyOpts() cache.OptionsKeyOpts {
	return cache.OptionsKeyOpts{ChartType: o.ChartType, Theme: o.Theme, Dark: o.Dark()}
}

// ArtifactKeyOpts returns cache key inputs for one rendered format.
// Settings that do not affect the format are left zero so they do not split
// the cache. SVG, PNG and XLSX are drawn from the config, not the option
// tree, so their keys also carry configHash and the chart type.
func (o Options) ArtifactKeyOpts(format, configHash string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case errors.FormatJSON:
		k.Pretty = o.Pretty
	case errors.FormatSVG, errors.FormatPNG:
		k.Width, k.Height = o.Width, o.Height
		k.ConfigHash, k.ChartType = configHash, o.ChartType
	case errors.FormatXLSX:
		k.ConfigHash, k.ChartType = configHash, o.ChartType
	}
	return k
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Options is the renderer option tree.
	Options echarts.Options `json:"options"`

	// Warnings are the transformer's non-fatal diagnostics.
	Warnings []echarts.Warning `json:"warnings,omitempty"`

	// Colors is the resolved series color list.
	Colors []string `json:"colors"`

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte `json:"-"`

	Stats     Stats     `json:"stats"`
	CacheInfo CacheInfo `json:"cache"`
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Series        int           `json:"series"`
	TransformTime time.Duration `json:"transform_ns"`
	RenderTime    time.Duration `json:"render_ns"`
}

// CacheInfo tracks cache hits for each stage.
type CacheInfo struct {
	TransformHit bool `json:"transform_hit"` // option tree came from cache
	RenderHit    bool `json:"render_hit"`    // every artifact came from cache
}
