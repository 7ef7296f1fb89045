package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartbridge/pkg/pipeline"
	"github.com/matzehuels/chartbridge/pkg/render/echarts"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{
			name:    "info at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Info("transformed chart") },
			wantLog: true,
		},
		{
			name:    "debug at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Debug("loaded config") },
			wantLog: false,
		},
		{
			name:    "debug at debug level",
			level:   log.DebugLevel,
			logFunc: func(l *log.Logger) { l.Debug("loaded config") },
			wantLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)
			tt.logFunc(logger)

			gotLog := buf.Len() > 0
			if gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestChartRunDone(t *testing.T) {
	var buf bytes.Buffer
	run := newChartRun(newLogger(&buf, log.InfoLevel), "charts/sales.toml")

	res := &pipeline.Result{
		Stats:     pipeline.Stats{Series: 3},
		Warnings:  []echarts.Warning{{Code: echarts.WarnUnknownPalette, Message: "unknown palette"}},
		CacheInfo: pipeline.CacheInfo{TransformHit: true, RenderHit: true},
	}
	run.done(pipeline.Options{ChartType: "bar"}, res, 2)

	out := buf.String()
	for _, want := range []string{"rendered chart", "config=sales.toml", "type=bar", "series=3", "files=2", "warnings=1", "cached=true", "elapsed="} {
		if !strings.Contains(out, want) {
			t.Errorf("done() output %q missing %q", out, want)
		}
	}
}

func TestChartRunWarnings(t *testing.T) {
	warnings := []echarts.Warning{
		{Code: echarts.WarnSeriesOverflow, Message: "14 series"},
		{Code: echarts.WarnUnknownPalette, Message: "plaid"},
	}

	var info bytes.Buffer
	newChartRun(newLogger(&info, log.InfoLevel), "c.json").warnings(warnings)
	if info.Len() != 0 {
		t.Errorf("warnings() logged at info level: %q", info.String())
	}

	var debug bytes.Buffer
	newChartRun(newLogger(&debug, log.DebugLevel), "c.json").warnings(warnings)
	out := debug.String()
	if n := strings.Count(out, "transform warning"); n != 2 {
		t.Errorf("warnings() logged %d lines, want 2: %q", n, out)
	}
	for _, want := range []string{"code=series_overflow", "code=unknown_palette", "config=c.json"} {
		if !strings.Contains(out, want) {
			t.Errorf("warnings() output missing %q", want)
		}
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext should fall back to log.Default()")
	}

	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)
	ctx := withLogger(context.Background(), custom)
	if loggerFromContext(ctx) != custom {
		t.Fatal("loggerFromContext should return the attached logger")
	}

	loggerFromContext(ctx).Info("palette generated")
	if !strings.Contains(buf.String(), "palette generated") {
		t.Error("attached logger should write to its buffer")
	}
}

func TestNewCLI(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug output at info level: %q", buf.String())
	}

	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")
	if !bytes.Contains(buf.Bytes(), []byte("shown")) {
		t.Error("debug output missing after SetLogLevel(LogDebug)")
	}
}
