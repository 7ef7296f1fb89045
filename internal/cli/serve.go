package cli

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartbridge/internal/server"
	"github.com/matzehuels/chartbridge/pkg/cache"
	"github.com/matzehuels/chartbridge/pkg/observability"
	"github.com/matzehuels/chartbridge/pkg/observability/prom"
	"github.com/matzehuels/chartbridge/pkg/pipeline"
)

// redisKeyPrefix namespaces shared cache entries.
const redisKeyPrefix = appName + ":"

func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		redisURL string
		metrics  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the transform and render pipeline over HTTP",
		Long: fmt.Sprintf(`Serve the pipeline over HTTP.

Without --redis, results are not cached. With --redis, replicas share one
cache. Flags fall back to $%s and $%s.`, envAddr, envRedisURL),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, redisURL, metrics)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", envOr(envAddr, server.DefaultAddr), "listen address")
	cmd.Flags().StringVar(&redisURL, "redis", envOr(envRedisURL, ""), "redis URL for the shared cache, e.g. redis://localhost:6379/0")
	cmd.Flags().BoolVar(&metrics, "metrics", true, "expose Prometheus metrics on /metrics")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, redisURL string, metrics bool) error {
	logger := loggerFromContext(ctx)

	store := cache.NewNullCache()
	if redisURL != "" {
		rc, err := cache.NewRedisCache(ctx, redisURL, redisKeyPrefix)
		if err != nil {
			return err
		}
		store = rc
		logger.Info("using redis cache")
	}

	cfg := server.Config{
		Addr:   addr,
		Logger: logger,
		Runner: pipeline.NewRunner(store, versionKeyer(), logger),
	}
	defer cfg.Runner.Close()

	if metrics {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		hooks := prom.New(reg)
		observability.SetPipelineHooks(hooks)
		observability.SetCacheHooks(hooks)
		observability.SetEventHooks(hooks)
		observability.SetHTTPHooks(hooks)
		defer observability.Reset()
		cfg.Gatherer = reg
	}

	return server.New(cfg).ListenAndServe(ctx)
}
