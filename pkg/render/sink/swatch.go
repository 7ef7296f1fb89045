package sink

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/chartbridge/pkg/errors"
)

// RenderSwatch draws colors as a horizontal strip of size×size squares and
// encodes it as PNG.
func RenderSwatch(colors []string, size int) ([]byte, error) {
	if len(colors) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "swatch needs at least one color")
	}
	if size <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "swatch size must be positive")
	}

	strip := imaging.New(size*len(colors), size, fallbackColor)
	for i, c := range colors {
		tile := imaging.New(size, size, parseColor(c))
		strip = imaging.Paste(strip, tile, image.Pt(i*size, 0))
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, strip, imaging.PNG); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode swatch")
	}
	return buf.Bytes(), nil
}
