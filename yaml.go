package csvconv

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, rows [][]string, indent string) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	if indent != "" {
		enc.SetIndent(len(indent))
	}
	if err := enc.Encode(rows); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}
