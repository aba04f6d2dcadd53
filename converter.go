package csvconv

import (
	"bytes"
	"io"
	"mime"

	"github.com/segmentio/encoding/json"
)

// Converter renders the rows of one CSV document. It holds the document's
// row source and the encoding its fields are stored in. Every call starts
// a fresh pass over the source.
type Converter struct {
	src      Source
	encoding string

	// ClassName is the table class used by Write for HTML.
	// Default is DefaultClassName.
	ClassName string
	// Tags names the XML elements used by Write. Default is DefaultTags.
	Tags Tags
	// Indent sets JSON and YAML indentation for Write. Default is compact
	// JSON and YAML's own indent.
	Indent string
}

// New returns a Converter over src whose fields are encoded as encoding.
// An empty encoding means UTF-8. It panics if src is nil.
func New(src Source, encoding string) *Converter {
	if src == nil {
		panic("csvconv: source cannot be nil")
	}
	if encoding == "" {
		encoding = CanonicalEncoding
	}
	return &Converter{src: src, encoding: encoding}
}

// Encoding returns the declared source encoding.
func (c *Converter) Encoding() string { return c.encoding }

// Output streams the document's raw bytes to w.
func (c *Converter) Output(w io.Writer) (int64, error) {
	return RenderPassthrough(w, c.src)
}

// String returns the raw document, or "" if it cannot be read.
func (c *Converter) String() string {
	var buf bytes.Buffer
	if _, err := c.Output(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// HTML returns the document as an HTML table in its source encoding.
func (c *Converter) HTML(className string) (string, error) {
	return RenderTable(c.src, className)
}

// XML returns the document as a UTF-8 XML document.
func (c *Converter) XML(tags Tags) (string, error) {
	r, err := NewTreeRenderer(tags)
	if err != nil {
		return "", err
	}
	src, err := Normalize(c.src, c.encoding)
	if err != nil {
		return "", err
	}
	return r.Render(src)
}

// Rows returns every row converted to UTF-8.
func (c *Converter) Rows() ([][]string, error) {
	src, err := Normalize(c.src, c.encoding)
	if err != nil {
		return nil, err
	}
	return RenderStructured(src)
}

// MarshalJSON encodes the document as an array of string arrays.
func (c *Converter) MarshalJSON() ([]byte, error) {
	rows, err := c.Rows()
	if err != nil {
		return nil, err
	}
	return json.Marshal(rows)
}

// Header is the transport metadata a caller should send ahead of Output
// when serving the document as a download. This package never sends it.
type Header struct {
	ContentType        string
	ContentDisposition string
	// ContentLength is -1 when the source does not know its size.
	ContentLength int64
}

// Header describes the document as a download named filename. An empty
// filename leaves ContentDisposition empty.
func (c *Converter) Header(filename string) Header {
	h := Header{
		ContentType:   mime.FormatMediaType("text/csv", map[string]string{"charset": c.encoding}),
		ContentLength: -1,
	}
	if filename != "" {
		h.ContentDisposition = mime.FormatMediaType("attachment", map[string]string{"filename": filename})
	}
	if s, ok := c.src.(Sizer); ok {
		if n, ok := s.Size(); ok {
			h.ContentLength = n
		}
	}
	return h
}

// Download computes the Header for serving the document as filename and
// streams the document to w. Callers that must send the header before the
// body use Header and Output instead.
func (c *Converter) Download(w io.Writer, filename string) (Header, int64, error) {
	h := c.Header(filename)
	n, err := c.Output(w)
	return h, n, err
}
