package csvconv

import (
	"fmt"
	"io"
	"strings"
)

// Format represents an output format.
type Format string

const (
	CSV   Format = "csv"
	HTML  Format = "html"
	XML   Format = "xml"
	JSON  Format = "json"
	JSONL Format = "jsonl"
	YAML  Format = "yaml"
	Text  Format = "text"
)

var formats = []Format{CSV, HTML, XML, JSON, JSONL, YAML, Text}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name. Matching is case-insensitive.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if strings.EqualFold(string(f), s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// IsStructured reports whether f converts fields to UTF-8 before rendering.
// CSV passthrough and HTML keep the source encoding.
func (f Format) IsStructured() bool {
	switch f {
	case XML, JSON, JSONL, YAML, Text:
		return true
	default:
		return false
	}
}

// Write renders c in format f and writes the result to w. Every format
// except CSV is fully rendered before anything is written, so a failure
// leaves w untouched.
func (c *Converter) Write(w io.Writer, f Format) error {
	switch f {
	case CSV:
		_, err := c.Output(w)
		return err
	case HTML:
		out, err := c.HTML(c.ClassName)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out+"\n")
		return err
	case XML:
		out, err := c.XML(c.Tags)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	case JSON, JSONL, YAML, Text:
		rows, err := c.Rows()
		if err != nil {
			return err
		}
		switch f {
		case JSON:
			return writeJSON(w, rows, c.Indent)
		case JSONL:
			return writeJSONL(w, rows)
		case YAML:
			return writeYAML(w, rows, c.Indent)
		default:
			return writeText(w, rows)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}
