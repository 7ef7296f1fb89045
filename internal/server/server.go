// Package server exposes the chart pipeline over HTTP.
//
// Routes:
//
//	GET  /healthz                  liveness probe
//	GET  /palettes                 built-in palette recipes
//	GET  /palettes/{name}          generated colors (?count=8&dark=true)
//	POST /transform                config → option tree and warnings (?type=bar&dark=true)
//	POST /render/{format}          config → rendered artifact (?type=bar&dark=true&width=&height=)
//	POST /events/normalize         native event payload → record (?channel=click)
//	GET  /metrics                  Prometheus metrics, when a gatherer is set
//
// Configs are JSON by default; send Content-Type application/toml or
// application/yaml for the other encodings.
package server

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matzehuels/chartbridge/pkg/palette"
	"github.com/matzehuels/chartbridge/pkg/pipeline"
)

// Defaults.
const (
	DefaultAddr     = ":8080"
	MaxBodyBytes    = 4 << 20
	shutdownTimeout = 10 * time.Second
)

// Config configures a [Server].
type Config struct {
	Addr   string
	Runner *pipeline.Runner
	Logger *log.Logger

	// Gatherer backs /metrics. Nil disables the route.
	Gatherer prometheus.Gatherer
}

// Server is the HTTP front end of the pipeline.
type Server struct {
	addr     string
	runner   *pipeline.Runner
	palettes *palette.Generator
	logger   *log.Logger
	router   chi.Router
}

// New builds a server and its routes.
func New(cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if cfg.Runner == nil {
		cfg.Runner = pipeline.NewRunner(nil, nil, cfg.Logger)
	}

	s := &Server{
		addr:     cfg.Addr,
		runner:   cfg.Runner,
		palettes: palette.NewGenerator(cfg.Logger),
		logger:   cfg.Logger,
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/palettes", s.handlePalettes)
	r.Get("/palettes/{name}", s.handlePalette)
	r.Post("/transform", s.handleTransform)
	r.Post("/render/{format}", s.handleRender)
	r.Post("/events/normalize", s.handleNormalize)
	if cfg.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	s.router = r
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

// Addr returns the listen address.
func (s *Server) Addr() string { return s.addr }

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	s.logger.Info("listening", "addr", ln.Addr().String())

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
