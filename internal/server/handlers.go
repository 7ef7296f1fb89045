package server

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/chartbridge/pkg/buildinfo"
	"github.com/matzehuels/chartbridge/pkg/chart"
	"github.com/matzehuels/chartbridge/pkg/errors"
	"github.com/matzehuels/chartbridge/pkg/events"
	cbio "github.com/matzehuels/chartbridge/pkg/io"
	"github.com/matzehuels/chartbridge/pkg/palette"
	"github.com/matzehuels/chartbridge/pkg/pipeline"
	"github.com/matzehuels/chartbridge/pkg/render/echarts"
)

// DefaultPaletteCount is the number of colors returned when none is asked for.
const DefaultPaletteCount = 8

var contentTypes = map[string]string{
	errors.FormatJSON: "application/json",
	errors.FormatSVG:  "image/svg+xml",
	errors.FormatPNG:  "image/png",
	errors.FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

var configTypes = map[string]cbio.Format{
	"application/json":   cbio.FormatJSON,
	"application/toml":   cbio.FormatTOML,
	"application/yaml":   cbio.FormatYAML,
	"application/x-yaml": cbio.FormatYAML,
	"text/yaml":          cbio.FormatYAML,
}

type errorResponse struct {
	Error     string      `json:"error"`
	Code      errors.Code `json:"code,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

type paletteResponse struct {
	Name   palette.Name `json:"name"`
	Dark   bool         `json:"dark"`
	Colors []string     `json:"colors"`
}

type transformResponse struct {
	Options  echarts.Options   `json:"options"`
	Warnings []echarts.Warning `json:"warnings,omitempty"`
	Cached   bool              `json:"cached"`
}

type normalizeResponse struct {
	Channel events.Channel `json:"channel"`
	Event   any            `json:"event"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": buildinfo.Version})
}

func (s *Server) handlePalettes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, palette.All())
}

func (s *Server) handlePalette(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := errors.ValidatePalette(name); err != nil {
		s.writeError(w, r, err)
		return
	}
	count, err := intParam(r, "count", DefaultPaletteCount)
	if err == nil {
		err = errors.ValidateCount(count)
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	dark := boolParam(r, "dark")

	writeJSON(w, http.StatusOK, paletteResponse{
		Name:   palette.Name(name),
		Dark:   dark,
		Colors: s.palettes.Generate(palette.Name(name), count, dark),
	})
}

func (s *Server) handleTransform(w http.ResponseWriter, r *http.Request) {
	cfg, err := readConfig(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts, err := pipelineOptions(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	res, hit, err := s.runner.Transform(r.Context(), cfg, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, transformResponse{Options: res.Options, Warnings: res.Warnings, Cached: hit})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := errors.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}
	cfg, err := readConfig(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts, err := pipelineOptions(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Formats = []string{format}

	res, err := s.runner.Execute(r.Context(), cfg, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	for _, warn := range res.Warnings {
		w.Header().Add("X-Chart-Warning", string(warn.Code))
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

func (s *Server) handleNormalize(w http.ResponseWriter, r *http.Request) {
	channel, ok := events.ParseChannel(r.URL.Query().Get("channel"))
	if !ok {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidChannel, "unknown event channel %q", r.URL.Query().Get("channel")))
		return
	}

	var payload events.Payload
	body := http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode event payload"))
		return
	}

	record, err := events.Normalize(channel, payload)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, normalizeResponse{Channel: channel, Event: record})
}

// readConfig decodes the request body in the encoding its Content-Type names.
func readConfig(w http.ResponseWriter, r *http.Request) (chart.Config, error) {
	format := cbio.FormatJSON
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mt, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return chart.Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "bad content type")
		}
		if f, ok := configTypes[mt]; ok {
			format = f
		}
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return chart.Config{}, errors.New(errors.ErrCodeInvalidInput, "request body exceeds %d bytes", MaxBodyBytes)
		}
		return chart.Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body")
	}
	return cbio.ParseConfig(data, format)
}

func pipelineOptions(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{
		ChartType: q.Get("type"),
		Theme:     pipeline.ThemeLight,
		Pretty:    boolParam(r, "pretty"),
	}
	if boolParam(r, "dark") {
		opts.Theme = pipeline.ThemeDark
	}
	var err error
	if opts.Width, err = intParam(r, "width", 0); err != nil {
		return opts, err
	}
	if opts.Height, err = intParam(r, "height", 0); err != nil {
		return opts, err
	}
	return opts, nil
}

func intParam(r *http.Request, key string, def int) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "%s must be an integer, got %q", key, v)
	}
	return n, nil
}

func boolParam(r *http.Request, key string) bool {
	b, _ := strconv.ParseBool(r.URL.Query().Get(key))
	return b
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "id", RequestID(r.Context()), "err", err)
	}
	writeJSON(w, status, errorResponse{
		Error:     errors.UserMessage(err),
		Code:      errors.GetCode(err),
		RequestID: RequestID(r.Context()),
	})
}
