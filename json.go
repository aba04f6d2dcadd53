package csvconv

import (
	"bytes"
	"io"

	"github.com/segmentio/encoding/json"
)

// RenderStructured drains a fresh pass over src into nested string slices
// ready for a JSON or YAML encoder. The result is never nil, so an empty
// source encodes as an empty array. src is expected to yield UTF-8 text;
// see Normalize.
func RenderStructured(src Source) ([][]string, error) {
	rows := [][]string{}
	for row, err := range All(src) {
		if err != nil {
			return nil, err
		}
		rows = append(rows, []string(row))
	}
	return rows, nil
}

func writeJSON(w io.Writer, rows [][]string, indent string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(rows); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

func writeJSONL(w io.Writer, rows [][]string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	_, err := buf.WriteTo(w)
	return err
}
