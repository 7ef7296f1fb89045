package prom

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/chartbridge/pkg/observability"
)

var (
	_ observability.PipelineHooks = (*Hooks)(nil)
	_ observability.CacheHooks    = (*Hooks)(nil)
	_ observability.EventHooks    = (*Hooks)(nil)
	_ observability.HTTPHooks     = (*Hooks)(nil)
)

func TestHooksRecord(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := New(reg)
	ctx := context.Background()

	h.OnTransformStart(ctx, "bar", 3)
	h.OnTransformComplete(ctx, "bar", 2, time.Millisecond)
	h.OnRenderComplete(ctx, []string{"svg"}, time.Millisecond, nil)
	h.OnRenderComplete(ctx, []string{"png"}, time.Millisecond, errors.New("boom"))
	h.OnCacheHit(ctx, "options")
	h.OnCacheSet(ctx, "artifact", 512)
	h.OnAttach("a")
	h.OnAttach("b")
	h.OnDetach("a")
	h.OnEventForwarded("click")
	h.OnEventForwarded("click")
	h.OnResponse(ctx, "GET", "/healthz", 200, time.Millisecond)

	require.Equal(t, 1.0, testutil.ToFloat64(h.transforms.WithLabelValues("bar")))
	require.Equal(t, 2.0, testutil.ToFloat64(h.transformWarnings.WithLabelValues("bar")))
	require.Equal(t, 1.0, testutil.ToFloat64(h.renders.WithLabelValues("ok")))
	require.Equal(t, 1.0, testutil.ToFloat64(h.renders.WithLabelValues("error")))
	require.Equal(t, 1.0, testutil.ToFloat64(h.cacheOps.WithLabelValues("options", "hit")))
	require.Equal(t, 512.0, testutil.ToFloat64(h.cacheBytes.WithLabelValues("artifact")))
	require.Equal(t, 1.0, testutil.ToFloat64(h.subscriptions))
	require.Equal(t, 2.0, testutil.ToFloat64(h.events.WithLabelValues("click")))
	require.Equal(t, 1.0, testutil.ToFloat64(h.requests.WithLabelValues("GET", "/healthz", "200")))

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	require.Greater(t, n, 0)
}

func TestNewWithoutRegistry(t *testing.T) {
	h := New(nil)
	require.Len(t, h.Collectors(), 11)
}
