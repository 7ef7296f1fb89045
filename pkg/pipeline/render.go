package pipeline

import (
	"fmt"

	"github.com/matzehuels/chartbridge/pkg/chart"
	"github.com/matzehuels/chartbridge/pkg/errors"
	"github.com/matzehuels/chartbridge/pkg/render/echarts"
	"github.com/matzehuels/chartbridge/pkg/render/sink"
)

// Render produces the given formats. JSON encodes the option tree; the
// other formats draw cfg directly with the resolved colors.
func Render(cfg chart.Config, options echarts.Options, colors []string, opts Options, formats []string) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(formats))
	typ := opts.Type()

	for _, format := range formats {
		var data []byte
		var err error

		switch format {
		case errors.FormatJSON:
			data, err = sink.RenderJSON(options, opts.Pretty)
		case errors.FormatSVG, errors.FormatPNG:
			data, err = sink.RenderSnapshot(cfg, colors, typ, format, sink.WithSize(opts.Width, opts.Height))
		case errors.FormatXLSX:
			data, err = sink.RenderXLSX(cfg, colors, typ)
		default:
			err = errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// ColorsOf extracts the series color list from an option tree.
func ColorsOf(o echarts.Options) []string {
	switch cs := o["color"].(type) {
	case []string:
		return append([]string(nil), cs...)
	case []any:
		out := make([]string, 0, len(cs))
		for _, c := range cs {
			if s, ok := c.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
