package chart

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// AutoColors is the palette name meaning "use the theme's ambient palette".
const AutoColors = "auto"

// Colors selects series colors: either an explicit list or a palette name.
// The zero value behaves like "auto".
type Colors struct {
	List    []string
	Palette string
}

// ColorList returns explicit colors, used verbatim.
func ColorList(colors ...string) Colors {
	return Colors{List: append([]string(nil), colors...)}
}

// PaletteColors selects a named palette.
func PaletteColors(name string) Colors {
	return Colors{Palette: name}
}

// IsExplicit reports whether an explicit color list was given.
func (c Colors) IsExplicit() bool { return len(c.List) > 0 }

// IsAuto reports whether the theme's ambient colors should be used.
func (c Colors) IsAuto() bool {
	if c.IsExplicit() {
		return false
	}
	p := strings.TrimSpace(c.Palette)
	return p == "" || strings.EqualFold(p, AutoColors)
}

// MarshalJSON encodes the list, the palette name, or null.
func (c Colors) MarshalJSON() ([]byte, error) {
	switch {
	case c.IsExplicit():
		return json.Marshal(c.List)
	case c.Palette != "":
		return json.Marshal(c.Palette)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts a string palette name or an array of colors.
func (c *Colors) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*c = Colors{}
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	switch b[0] {
	case '"':
		return json.Unmarshal(b, &c.Palette)
	case '[':
		return json.Unmarshal(b, &c.List)
	default:
		return fmt.Errorf("colors: expected palette name or color list, got %s", b)
	}
}
