package server

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/chartbridge/pkg/observability"
	"github.com/matzehuels/chartbridge/pkg/observability/prom"
)

const barConfig = `{
  "title": "Sales",
  "series": [
    {"name": "2024", "data": [1, 2, 3]},
    {"name": "2025", "data": [2, 3, 4]}
  ],
  "xAxis": {"categories": ["a", "b", "c"]}
}`

func do(t *testing.T, h http.Handler, method, target, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHealth(t *testing.T) {
	rec := do(t, New(Config{}).Handler(), http.MethodGet, "/healthz", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", decode[map[string]string](t, rec)["status"])
	require.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestRequestIDPropagates(t *testing.T) {
	h := New(Config{}).Handler()
	id := "9b2f7d0e-4c1a-4a4b-9c6e-0f1e2d3c4b5a"

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, id)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, id, rec.Header().Get(RequestIDHeader))

	req.Header.Set(RequestIDHeader, "not-a-uuid")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.NotEqual(t, "not-a-uuid", rec.Header().Get(RequestIDHeader))
}

func TestPalettes(t *testing.T) {
	h := New(Config{}).Handler()

	rec := do(t, h, http.MethodGet, "/palettes", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decode[[]map[string]any](t, rec), 10)

	rec = do(t, h, http.MethodGet, "/palettes/ocean?count=3&dark=true", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[paletteResponse](t, rec)
	require.Len(t, got.Colors, 3)
	require.True(t, got.Dark)

	rec = do(t, h, http.MethodGet, "/palettes/ocean", "", "")
	require.Len(t, decode[paletteResponse](t, rec).Colors, DefaultPaletteCount)
}

func TestPaletteErrors(t *testing.T) {
	h := New(Config{}).Handler()
	tests := []struct {
		target string
		code   string
	}{
		{"/palettes/plaid", "INVALID_PALETTE"},
		{"/palettes/ocean?count=x", "INVALID_INPUT"},
		{"/palettes/ocean?count=9999", "INVALID_INPUT"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, tt.target, "", "")
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Equal(t, tt.code, string(decode[errorResponse](t, rec).Code))
		})
	}
}

func TestTransform(t *testing.T) {
	h := New(Config{}).Handler()
	rec := do(t, h, http.MethodPost, "/transform?type=bar", "application/json", barConfig)
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[transformResponse](t, rec)
	series := got.Options["series"].([]any)
	require.Len(t, series, 2)
	require.Equal(t, "bar", series[0].(map[string]any)["type"])
	require.Empty(t, got.Warnings)
}

func TestTransformYAML(t *testing.T) {
	cfg := "series:\n  - name: only\n    data: [1, 2]\ncolors: plaid\n"
	rec := do(t, New(Config{}).Handler(), http.MethodPost, "/transform?type=line&dark=1", "application/yaml; charset=utf-8", cfg)
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[transformResponse](t, rec)
	require.Len(t, got.Warnings, 1)
	require.Equal(t, "unknown_palette", string(got.Warnings[0].Code))
}

func TestTransformErrors(t *testing.T) {
	h := New(Config{}).Handler()
	tests := []struct {
		name   string
		target string
		body   string
		status int
	}{
		{"bad json", "/transform", "{", http.StatusBadRequest},
		{"unknown field", "/transform", `{"series": [], "bogus": 1}`, http.StatusBadRequest},
		{"bad type", "/transform?type=gantt", barConfig, http.StatusBadRequest},
		{"bad width", "/transform?width=wide", barConfig, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, tt.target, "application/json", tt.body)
			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			require.NotEmpty(t, decode[errorResponse](t, rec).RequestID)
		})
	}
}

func TestRender(t *testing.T) {
	h := New(Config{}).Handler()

	rec := do(t, h, http.MethodPost, "/render/svg?type=bar", "", barConfig)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	require.True(t, strings.HasPrefix(rec.Body.String(), "<svg"))

	rec = do(t, h, http.MethodPost, "/render/png?type=line&width=300&height=200", "", barConfig)
	require.Equal(t, http.StatusOK, rec.Code)
	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	require.Equal(t, 300, img.Bounds().Dx())

	rec = do(t, h, http.MethodPost, "/render/json?pretty=true", "", barConfig)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "\n  \"")
}

func TestRenderErrors(t *testing.T) {
	h := New(Config{}).Handler()

	rec := do(t, h, http.MethodPost, "/render/gif", "", barConfig)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/render/svg?type=radar", "", barConfig)
	require.Equal(t, http.StatusNotImplemented, rec.Code)
	require.Equal(t, "UNSUPPORTED", string(decode[errorResponse](t, rec).Code))
}

func TestNormalize(t *testing.T) {
	h := New(Config{}).Handler()
	body := `{"componentType":"series","seriesName":"2024","seriesIndex":0,"dataIndex":2,"name":"c","value":3}`

	rec := do(t, h, http.MethodPost, "/events/normalize?channel=click", "application/json", body)
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[struct {
		Channel string         `json:"channel"`
		Event   map[string]any `json:"event"`
	}](t, rec)
	require.Equal(t, "click", got.Channel)
	require.Equal(t, "2024", got.Event["seriesName"])
	require.Equal(t, float64(2), got.Event["dataIndex"])
	require.Equal(t, float64(3), got.Event["value"])
}

func TestNormalizeErrors(t *testing.T) {
	h := New(Config{}).Handler()

	rec := do(t, h, http.MethodPost, "/events/normalize?channel=dblclick", "", "{}")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "INVALID_CHANNEL", string(decode[errorResponse](t, rec).Code))

	rec = do(t, h, http.MethodPost, "/events/normalize?channel=click", "", "[1]")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBodyLimit(t *testing.T) {
	big := `{"title":"` + strings.Repeat("x", MaxBodyBytes) + `","series":[]}`
	rec := do(t, New(Config{}).Handler(), http.MethodPost, "/transform", "", big)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	hooks := prom.New(reg)
	observability.SetHTTPHooks(hooks)
	t.Cleanup(observability.Reset)

	h := New(Config{Gatherer: reg}).Handler()
	do(t, h, http.MethodGet, "/healthz", "", "")
	do(t, h, http.MethodGet, "/nowhere", "", "")

	rec := do(t, h, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, `route="/healthz"`)
	require.Contains(t, body, `route="unmatched"`)
	require.NotContains(t, body, "/nowhere")
}

func TestMetricsDisabled(t *testing.T) {
	rec := do(t, New(Config{}).Handler(), http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

type routeRecorder struct {
	observability.NoopHTTPHooks
	mu     sync.Mutex
	routes []string
}

func (r *routeRecorder) OnResponse(_ context.Context, _, route string, _ int, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, route)
}

func TestHTTPHooksUseRoutePattern(t *testing.T) {
	rec := &routeRecorder{}
	observability.SetHTTPHooks(rec)
	t.Cleanup(observability.Reset)

	h := New(Config{}).Handler()
	do(t, h, http.MethodGet, "/palettes/earth?count=2", "", "")
	require.Equal(t, []string{"/palettes/{name}"}, rec.routes)
}

func TestServeShutsDown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	s := New(Config{})
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
