package render

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// WriteJSON writes v as a single line of JSON.
func WriteJSON(v any, w io.Writer) error {
	return writeJSON(v, w, false)
}

// WriteJSONPretty writes indented JSON.
func WriteJSONPretty(v any, w io.Writer) error {
	return writeJSON(v, w, true)
}

func writeJSON(v any, w io.Writer, pretty bool) error {
	bw := bufio.NewWriterSize(w, writerBufferSize)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteJSONFile writes v as indented JSON to path.
func WriteJSONFile(v any, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return WriteJSONPretty(v, f)
}

// WriteYAML writes v as a YAML document.
func WriteYAML(v any, w io.Writer) error {
	bw := bufio.NewWriterSize(w, writerBufferSize)
	enc := yaml.NewEncoder(bw)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return bw.Flush()
}
