package cli

import (
	"context"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartbridge/pkg/pipeline"
	"github.com/matzehuels/chartbridge/pkg/render/echarts"
)

// newLogger creates a logger with "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// chartRun logs one pipeline run over a chart config file. Every line carries
// the config's base name. Not safe for concurrent use.
type chartRun struct {
	logger *log.Logger
	start  time.Time
}

func newChartRun(l *log.Logger, path string) *chartRun {
	return &chartRun{logger: l.With("config", filepath.Base(path)), start: time.Now()}
}

// warnings logs transformer diagnostics with their codes at debug level.
// The user-facing text goes through printWarning.
func (r *chartRun) warnings(ws []echarts.Warning) {
	for _, w := range ws {
		r.logger.Debug("transform warning", "code", w.Code, "detail", w.Message)
	}
}

// done logs a summary such as
// "rendered chart config=sales.toml type=bar series=3 files=2 cached=false elapsed=12ms".
func (r *chartRun) done(opts pipeline.Options, res *pipeline.Result, files int) {
	r.logger.Info("rendered chart",
		"type", opts.ChartType,
		"series", res.Stats.Series,
		"files", files,
		"warnings", len(res.Warnings),
		"cached", res.CacheInfo.TransformHit && res.CacheInfo.RenderHit,
		"elapsed", time.Since(r.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the attached logger or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
			return l
		}
	}
	return log.Default()
}
