package errors

import (
	"strings"
	"unicode"

	"github.com/matzehuels/chartbridge/pkg/chart"
	"github.com/matzehuels/chartbridge/pkg/palette"
)

// Output formats accepted by the render pipeline.
const (
	FormatJSON = "json"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatXLSX = "xlsx"
)

// Formats lists every supported output format.
var Formats = []string{FormatJSON, FormatSVG, FormatPNG, FormatXLSX}

// MaxPaletteCount caps palette sizes requested from the outer surfaces.
const MaxPaletteCount = 256

// ValidateChartType parses s into a chart type.
func ValidateChartType(s string) (chart.Type, error) {
	if strings.TrimSpace(s) == "" {
		return "", New(ErrCodeInvalidChartType, "chart type cannot be empty")
	}
	t, ok := chart.ParseType(s)
	if !ok {
		return "", New(ErrCodeInvalidChartType, "unknown chart type %q (valid: %s)", s, joinTypes(chart.Types()))
	}
	return t, nil
}

func joinTypes(ts []chart.Type) string {
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

// ValidatePalette checks that name is a known palette.
// Config-level palette names are lenient; this is for explicit requests
// such as the palette command and endpoint.
func ValidatePalette(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPalette, "palette name cannot be empty")
	}
	if !palette.IsName(name) {
		return New(ErrCodeInvalidPalette, "unknown palette %q", name)
	}
	return nil
}

// ValidateFormat checks a single output format.
func ValidateFormat(format string) error {
	for _, f := range Formats {
		if format == f {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unsupported format %q (valid: %s)", format, strings.Join(Formats, ", "))
}

// ValidateCount checks a requested palette size.
func ValidateCount(n int) error {
	if n < 0 || n > MaxPaletteCount {
		return New(ErrCodeInvalidInput, "count must be between 0 and %d", MaxPaletteCount)
	}
	return nil
}

// ValidatePath validates a user-supplied file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}
