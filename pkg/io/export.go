package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// WriteOptions encodes an option tree as JSON to w. Map keys are sorted,
// so equal trees produce identical bytes.
func WriteOptions(w io.Writer, options any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(options); err != nil {
		return fmt.Errorf("encode options: %w", err)
	}
	return nil
}

// ExportOptions writes an option tree as indented JSON to path.
func ExportOptions(path string, options any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteOptions(f, options, true); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
