package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/chartbridge/pkg/chart"
	"github.com/matzehuels/chartbridge/pkg/errors"
)

// Format is a config file encoding.
type Format string

// Supported config formats.
const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

var extensions = map[string]Format{
	".json": FormatJSON,
	".toml": FormatTOML,
	".yaml": FormatYAML,
	".yml":  FormatYAML,
}

// DetectFormat picks the format from the file extension.
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "cannot infer config format from %q (use .json, .toml, .yaml or .yml)", path)
}

// ParseFormat converts a format name such as "yml" into a Format.
func ParseFormat(s string) (Format, error) {
	if f, ok := extensions["."+strings.ToLower(strings.TrimSpace(s))]; ok {
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown config format %q", s)
}

// ReadConfig decodes a chart config in format from r. ReadConfig does not
// close r.
func ReadConfig(r io.Reader, format Format) (chart.Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return chart.Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data, format)
}

// ParseConfig decodes a chart config in format from data.
func ParseConfig(data []byte, format Format) (chart.Config, error) {
	var cfg chart.Config

	jsonData, err := toJSON(data, format)
	if err != nil {
		return cfg, err
	}

	dec := json.NewDecoder(bytes.NewReader(jsonData))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s config", format)
	}
	if err := validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// toJSON re-encodes TOML and YAML documents as JSON.
func toJSON(data []byte, format Format) ([]byte, error) {
	var doc map[string]any
	switch format {
	case FormatJSON:
		return data, nil
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse toml")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse yaml")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown config format %q", format)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "convert %s to json", format)
	}
	return out, nil
}

// validate rejects configs the transformer could render but that are almost
// certainly mistakes in a hand-written file.
func validate(cfg chart.Config) error {
	for i, s := range cfg.Series {
		if s.Type != "" && !s.Type.Valid() {
			return errors.New(errors.ErrCodeInvalidConfig, "series %d (%q): unknown type %q", i, s.Name, s.Type)
		}
	}
	if l := cfg.Legend; l != nil {
		switch l.Position {
		case "", chart.LegendTop, chart.LegendBottom, chart.LegendLeft, chart.LegendRight:
		default:
			return errors.New(errors.ErrCodeInvalidConfig, "unknown legend position %q", l.Position)
		}
	}
	for _, a := range []*chart.Axis{cfg.XAxis, cfg.YAxis} {
		if a == nil {
			continue
		}
		switch a.Type {
		case "", chart.AxisCategory, chart.AxisNumeric, chart.AxisDatetime:
		default:
			return errors.New(errors.ErrCodeInvalidConfig, "unknown axis type %q", a.Type)
		}
	}
	return nil
}

// ImportConfig reads the config file at path, detecting the format from
// its extension.
func ImportConfig(path string) (chart.Config, error) {
	if err := errors.ValidatePath(path); err != nil {
		return chart.Config{}, err
	}
	format, err := DetectFormat(path)
	if err != nil {
		return chart.Config{}, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return chart.Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s not found", path)
	}
	if err != nil {
		return chart.Config{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := ReadConfig(f, format)
	if err != nil {
		return chart.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
