package sink

import (
	"bytes"

	cbio "github.com/matzehuels/chartbridge/pkg/io"
)

// RenderJSON encodes an option tree. Output is deterministic for equal trees.
func RenderJSON(options any, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	if err := cbio.WriteOptions(&buf, options, pretty); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
