// Package prom implements the observability hooks with Prometheus collectors.
package prom

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "chartbridge"

// Hooks records every observability hook as a Prometheus metric. It
// implements all hook interfaces of the parent package.
type Hooks struct {
	transforms        *prometheus.CounterVec
	transformWarnings *prometheus.CounterVec
	transformDuration *prometheus.HistogramVec
	renders           *prometheus.CounterVec
	renderDuration    prometheus.Histogram
	cacheOps          *prometheus.CounterVec
	cacheBytes        *prometheus.CounterVec
	subscriptions     prometheus.Gauge
	events            *prometheus.CounterVec
	requests          *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
// A nil reg skips registration.
func New(reg prometheus.Registerer) *Hooks {
	h := &Hooks{
		transforms: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transforms_total",
			Help:      "Chart configs transformed into option trees.",
		}, []string{"type"}),
		transformWarnings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transform_warnings_total",
			Help:      "Non-fatal diagnostics produced while transforming.",
		}, []string{"type"}),
		transformDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "transform_duration_seconds",
			Help:      "Time spent transforming chart configs.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"type"}),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Render runs by outcome.",
		}, []string{"result"}),
		renderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Time spent rendering output artifacts.",
			Buckets:   prometheus.DefBuckets,
		}),
		cacheOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_operations_total",
			Help:      "Cache lookups and writes.",
		}, []string{"key_type", "op"}),
		cacheBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_written_bytes_total",
			Help:      "Bytes written to the cache.",
		}, []string{"key_type"}),
		subscriptions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "event_subscriptions",
			Help:      "Live renderer event subscriptions.",
		}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_forwarded_total",
			Help:      "Normalized renderer events delivered to handlers.",
		}, []string{"channel"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status.",
		}, []string{"method", "route", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	if reg != nil {
		reg.MustRegister(h.Collectors()...)
	}
	return h
}

// Collectors returns every collector owned by h.
func (h *Hooks) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		h.transforms, h.transformWarnings, h.transformDuration,
		h.renders, h.renderDuration,
		h.cacheOps, h.cacheBytes,
		h.subscriptions, h.events,
		h.requests, h.requestDuration,
	}
}

func (h *Hooks) OnTransformStart(_ context.Context, chartType string, _ int) {
	h.transforms.WithLabelValues(chartType).Inc()
}

func (h *Hooks) OnTransformComplete(_ context.Context, chartType string, warnings int, d time.Duration) {
	h.transformWarnings.WithLabelValues(chartType).Add(float64(warnings))
	h.transformDuration.WithLabelValues(chartType).Observe(d.Seconds())
}

func (h *Hooks) OnRenderStart(context.Context, []string) {}

func (h *Hooks) OnRenderComplete(_ context.Context, _ []string, d time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	h.renders.WithLabelValues(result).Inc()
	h.renderDuration.Observe(d.Seconds())
}

func (h *Hooks) OnCacheHit(_ context.Context, keyType string) {
	h.cacheOps.WithLabelValues(keyType, "hit").Inc()
}

func (h *Hooks) OnCacheMiss(_ context.Context, keyType string) {
	h.cacheOps.WithLabelValues(keyType, "miss").Inc()
}

func (h *Hooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.cacheOps.WithLabelValues(keyType, "set").Inc()
	h.cacheBytes.WithLabelValues(keyType).Add(float64(size))
}

func (h *Hooks) OnAttach(string) { h.subscriptions.Inc() }

func (h *Hooks) OnDetach(string) { h.subscriptions.Dec() }

func (h *Hooks) OnEventForwarded(channel string) {
	h.events.WithLabelValues(channel).Inc()
}

func (h *Hooks) OnRequest(context.Context, string, string) {}

func (h *Hooks) OnResponse(_ context.Context, method, route string, code int, d time.Duration) {
	h.requests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	h.requestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
