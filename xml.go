package csvconv

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Tags names the elements of a tree document. Empty fields take the
// defaults csv, row and cell.
type Tags struct {
	Root string
	Row  string
	Cell string
}

// DefaultTags returns the tag names used when none are supplied.
func DefaultTags() Tags {
	return Tags{Root: "csv", Row: "row", Cell: "cell"}
}

func (t Tags) withDefaults() Tags {
	d := DefaultTags()
	if t.Root == "" {
		t.Root = d.Root
	}
	if t.Row == "" {
		t.Row = d.Row
	}
	if t.Cell == "" {
		t.Cell = d.Cell
	}
	return t
}

// TreeRenderer builds XML documents of root, row and cell elements.
type TreeRenderer struct {
	tags Tags
}

// NewTreeRenderer validates tags and returns a renderer for them. A name
// that is not a valid XML element name fails with ErrInvalidTagName.
func NewTreeRenderer(tags Tags) (*TreeRenderer, error) {
	tags = tags.withDefaults()
	for _, tag := range []struct{ kind, name string }{
		{"root", tags.Root},
		{"row", tags.Row},
		{"cell", tags.Cell},
	} {
		if !isTagName(tag.name) {
			return nil, fmt.Errorf("%w: %s %q", ErrInvalidTagName, tag.kind, tag.name)
		}
	}
	return &TreeRenderer{tags: tags}, nil
}

// Tags returns the effective tag names.
func (r *TreeRenderer) Tags() Tags { return r.tags }

// Render returns the XML document for src, including the XML declaration,
// with nested elements indented by two spaces. src is expected to yield
// UTF-8 text; see Normalize. Nothing is returned unless every row renders.
func (r *TreeRenderer) Render(src Source) (string, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")

	root := xml.StartElement{Name: xml.Name{Local: r.tags.Root}}
	rowEl := xml.StartElement{Name: xml.Name{Local: r.tags.Row}}
	cellEl := xml.StartElement{Name: xml.Name{Local: r.tags.Cell}}

	if err := enc.EncodeToken(root); err != nil {
		return "", err
	}
	for row, err := range All(src) {
		if err != nil {
			return "", err
		}
		if err := enc.EncodeToken(rowEl); err != nil {
			return "", err
		}
		for _, v := range row {
			if err := encodeCell(enc, cellEl, v); err != nil {
				return "", err
			}
		}
		if err := enc.EncodeToken(rowEl.End()); err != nil {
			return "", err
		}
	}
	if err := enc.EncodeToken(root.End()); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	buf.WriteByte('\n')
	return buf.String(), nil
}

// encodeCell writes one leaf. Characters not allowed in XML are replaced
// with U+FFFD by the encoder.
func encodeCell(enc *xml.Encoder, el xml.StartElement, v string) error {
	if err := enc.EncodeToken(el); err != nil {
		return err
	}
	if err := enc.EncodeToken(xml.CharData(v)); err != nil {
		return err
	}
	return enc.EncodeToken(el.End())
}

// RenderTreeDocument is NewTreeRenderer followed by Render.
func RenderTreeDocument(src Source, tags Tags) (string, error) {
	r, err := NewTreeRenderer(tags)
	if err != nil {
		return "", err
	}
	return r.Render(src)
}

// isTagName reports whether s is an XML name without a namespace prefix.
func isTagName(s string) bool {
	if s == "" || !utf8.ValidString(s) {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if r != '_' && !unicode.IsLetter(r) {
				return false
			}
			continue
		}
		if r != '_' && r != '-' && r != '.' && r != '·' &&
			!unicode.IsLetter(r) && !unicode.IsDigit(r) &&
			!unicode.Is(unicode.Mn, r) && !unicode.Is(unicode.Mc, r) {
			return false
		}
	}
	return true
}
