package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartbridge/pkg/cache"
	"github.com/matzehuels/chartbridge/pkg/chart"
	"github.com/matzehuels/chartbridge/pkg/observability"
	"github.com/matzehuels/chartbridge/pkg/render/echarts"
)

// Cache key types reported to the cache hooks.
const (
	keyTypeOptions  = "options"
	keyTypeArtifact = "artifact"
)

// Runner executes the pipeline with caching. The CLI and the HTTP service
// both use it so that caching behaves the same everywhere.
//
// A Runner holds no per-run state; multiple goroutines can share one.
type Runner struct {
	Cache       cache.Cache
	Keyer       cache.Keyer
	Transformer *echarts.Transformer
	Logger      *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
// If logger is nil, output is discarded.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{
		Cache:       c,
		Keyer:       keyer,
		Transformer: echarts.New(echarts.WithLogger(logger)),
		Logger:      logger,
	}
}

// transformed is the cached form of a transform.
type transformed struct {
	Options  echarts.Options   `json:"options"`
	Warnings []echarts.Warning `json:"warnings,omitempty"`
	Colors   []string          `json:"colors"`
}

// Execute runs transform then render for every requested format.
func (r *Runner) Execute(ctx context.Context, cfg chart.Config, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	result := &Result{Stats: Stats{Series: len(cfg.Series)}}

	start := time.Now()
	t, h, hit, err := r.transform(ctx, cfg, opts)
	if err != nil {
		return nil, fmt.Errorf("transform: %w", err)
	}
	result.Options = t.Options
	result.Warnings = t.Warnings
	result.Colors = t.Colors
	result.Stats.TransformTime = time.Since(start)
	result.CacheInfo.TransformHit = hit

	r.Logger.Info("transformed chart",
		"type", opts.ChartType,
		"series", len(cfg.Series),
		"warnings", len(t.Warnings),
		"cached", hit,
		"duration", result.Stats.TransformTime)

	start = time.Now()
	artifacts, hit, err := r.render(ctx, cfg, t, h, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(start)
	result.CacheInfo.RenderHit = hit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Transform runs only the transform stage.
func (r *Runner) Transform(ctx context.Context, cfg chart.Config, opts Options) (echarts.Result, bool, error) {
	if err := opts.Validate(); err != nil {
		return echarts.Result{}, false, err
	}
	t, _, hit, err := r.transform(ctx, cfg, opts)
	if err != nil {
		return echarts.Result{}, false, err
	}
	return echarts.Result{Options: t.Options, Warnings: t.Warnings}, hit, nil
}

// hashes identifies one transform: the config it read and the option tree
// it produced.
type hashes struct {
	config  string
	options string
}

// transform returns the option tree for cfg and its hashes.
// Fresh trees pass through the same JSON encoding as cached ones, so hits
// and misses produce identical values.
func (r *Runner) transform(ctx context.Context, cfg chart.Config, opts Options) (transformed, hashes, bool, error) {
	configHash, err := cache.HashJSON(cfg)
	if err != nil {
		return transformed{}, hashes{}, false, err
	}
	key := r.Keyer.OptionsKey(configHash, opts.OptionsKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var t transformed
			if err := json.Unmarshal(data, &t); err == nil {
				observability.Cache().OnCacheHit(ctx, keyTypeOptions)
				return t, hashes{configHash, cache.Hash(data)}, true, nil
			}
		} else if err != nil {
			r.Logger.Warn("cache read failed", "key", key, "err", err)
		}
		observability.Cache().OnCacheMiss(ctx, keyTypeOptions)
	}

	hooks := observability.Pipeline()
	hooks.OnTransformStart(ctx, opts.ChartType, len(cfg.Series))
	start := time.Now()
	res := r.Transformer.Transform(cfg, opts.ChartTheme(), opts.Type())
	hooks.OnTransformComplete(ctx, opts.ChartType, len(res.Warnings), time.Since(start))

	data, err := json.Marshal(transformed{
		Options:  res.Options,
		Warnings: res.Warnings,
		Colors:   ColorsOf(res.Options),
	})
	if err != nil {
		return transformed{}, hashes{}, false, fmt.Errorf("encode option tree: %w", err)
	}
	var t transformed
	if err := json.Unmarshal(data, &t); err != nil {
		return transformed{}, hashes{}, false, fmt.Errorf("decode option tree: %w", err)
	}

	r.store(ctx, key, keyTypeOptions, data, cache.OptionsTTL)
	return t, hashes{configHash, cache.Hash(data)}, false, nil
}

// render returns every requested artifact. Formats found in the cache are
// reused; the rest are rendered and stored.
func (r *Runner) render(ctx context.Context, cfg chart.Config, t transformed, h hashes, opts Options) (map[string][]byte, bool, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	seen := make(map[string]bool, len(opts.Formats))
	var missing []string

	for _, format := range opts.Formats {
		if seen[format] {
			continue
		}
		seen[format] = true
		key := r.Keyer.ArtifactKey(h.options, opts.ArtifactKeyOpts(format, h.config))
		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, keyTypeArtifact)
				artifacts[format] = data
				continue
			}
			observability.Cache().OnCacheMiss(ctx, keyTypeArtifact)
		}
		missing = append(missing, format)
	}
	if len(missing) == 0 {
		return artifacts, true, nil
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, missing)
	start := time.Now()
	rendered, err := Render(cfg, t.Options, t.Colors, opts, missing)
	hooks.OnRenderComplete(ctx, missing, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(h.options, opts.ArtifactKeyOpts(format, h.config))
		r.store(ctx, key, keyTypeArtifact, data, cache.ArtifactTTL)
		artifacts[format] = data
	}
	return artifacts, false, nil
}

func (r *Runner) store(ctx context.Context, key, keyType string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "key", key, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
