package csvconv

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// CanonicalEncoding is the encoding every structured renderer emits.
const CanonicalEncoding = "UTF-8"

// Normalize returns a view of src whose fields are converted from the
// encoding named by label to UTF-8. When label already names UTF-8 (or is
// empty) src itself is returned. Otherwise rows are converted lazily as
// they are pulled; src is never modified.
//
// Labels are resolved against the IANA registry first and the WHATWG
// encoding names second. An unrecognised label fails with
// ErrUnknownEncoding.
func Normalize(src Source, label string) (Source, error) {
	enc, name, err := lookupEncoding(label)
	if err != nil {
		return nil, err
	}
	if isCanonical(enc, name) {
		return src, nil
	}
	return &transcoder{src: src, enc: enc, name: name}, nil
}

func lookupEncoding(label string) (encoding.Encoding, string, error) {
	l := strings.TrimSpace(label)
	if l == "" {
		return unicode.UTF8, CanonicalEncoding, nil
	}
	if enc, err := ianaindex.IANA.Encoding(l); err == nil && enc != nil {
		if name, err := ianaindex.IANA.Name(enc); err == nil {
			return enc, name, nil
		}
		return enc, l, nil
	}
	if enc, err := htmlindex.Get(l); err == nil {
		if name, err := htmlindex.Name(enc); err == nil {
			return enc, name, nil
		}
		return enc, l, nil
	}
	return nil, "", fmt.Errorf("%w: %q", ErrUnknownEncoding, label)
}

func isCanonical(enc encoding.Encoding, name string) bool {
	return enc == unicode.UTF8 || strings.EqualFold(name, CanonicalEncoding)
}

// transcoder converts each field of each row as it is pulled.
type transcoder struct {
	src  Source
	enc  encoding.Encoding
	name string
	row  int
}

func (t *transcoder) Rewind() error {
	t.row = 0
	return t.src.Rewind()
}

func (t *transcoder) Next() (Row, error) {
	row, err := t.src.Next()
	if err != nil {
		return nil, err
	}
	t.row++
	out := make(Row, len(row))
	for i, v := range row {
		s, err := t.field(v)
		if err != nil {
			return nil, &EncodingError{Row: t.row, Column: i + 1, Encoding: t.name, Err: err}
		}
		out[i] = s
	}
	return out, nil
}

// field decodes v. Decoders substitute U+FFFD for invalid input, so a
// result carrying U+FFFD is accepted only when it encodes back to v.
func (t *transcoder) field(v string) (string, error) {
	s, err := t.enc.NewDecoder().String(v)
	if err != nil {
		return "", err
	}
	if !strings.ContainsRune(s, utf8.RuneError) {
		return s, nil
	}
	back, err := t.enc.NewEncoder().String(s)
	if err != nil || back != v {
		return "", errUnrepresentable
	}
	return s, nil
}
