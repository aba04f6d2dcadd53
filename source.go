package csvconv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
)

// Row is one CSV record: an ordered sequence of text fields.
type Row []string

// Source is a restartable sequence of rows. Rewind positions the source at
// its first row; Next returns rows in order and io.EOF once the pass is
// complete. Renderers always Rewind before iterating.
type Source interface {
	Rewind() error
	Next() (Row, error)
}

// Rawer is implemented by sources backed by an underlying byte stream.
// Raw rewinds the stream and returns a reader positioned at its start.
type Rawer interface {
	Raw() (io.Reader, error)
}

// Sizer reports the byte length of a source's underlying stream.
// The boolean is false when the length is not known.
type Sizer interface {
	Size() (int64, bool)
}

// SliceSource is an in-memory Source.
type SliceSource struct {
	rows []Row
	pos  int
}

// NewSliceSource returns a Source over rows. The rows are not copied;
// every Next returns a fresh copy so callers cannot mutate the backing data.
func NewSliceSource(rows ...Row) *SliceSource {
	return &SliceSource{rows: rows}
}

// Rewind resets the source to its first row.
func (s *SliceSource) Rewind() error {
	s.pos = 0
	return nil
}

// Next returns the next row or io.EOF.
func (s *SliceSource) Next() (Row, error) {
	if s.pos >= len(s.rows) {
		return nil, io.EOF
	}
	row := slices.Clone(s.rows[s.pos])
	s.pos++
	return row, nil
}

// ReaderOptions configures how a ReaderSource parses its stream.
type ReaderOptions struct {
	// Comma is the field delimiter. Default is ','.
	Comma rune
	// Comment, if not 0, marks lines to skip.
	Comment rune
	// LazyQuotes allows quotes in unquoted fields.
	LazyQuotes bool
}

// ReaderSource parses CSV rows from a seekable byte stream. Field bytes are
// kept as they appear in the stream; no decoding is applied.
type ReaderSource struct {
	rs   io.ReadSeeker
	opts ReaderOptions
	cr   *csv.Reader
}

// NewReaderSource returns a Source reading CSV records from rs.
// It panics if rs is nil.
func NewReaderSource(rs io.ReadSeeker, opts ReaderOptions) *ReaderSource {
	if rs == nil {
		panic("csvconv: reader source cannot be nil")
	}
	return &ReaderSource{rs: rs, opts: opts}
}

// Rewind seeks the stream back to its start. A failed seek is reported as
// ErrStreamExhausted.
func (s *ReaderSource) Rewind() error {
	if _, err := s.rs.Seek(0, io.SeekStart); err != nil {
		s.cr = nil
		return fmt.Errorf("%w: %w", ErrStreamExhausted, err)
	}
	cr := csv.NewReader(s.rs)
	if s.opts.Comma != 0 {
		cr.Comma = s.opts.Comma
	}
	cr.Comment = s.opts.Comment
	cr.LazyQuotes = s.opts.LazyQuotes
	cr.FieldsPerRecord = -1
	s.cr = cr
	return nil
}

// Next returns the next parsed record or io.EOF. The first call after
// construction rewinds implicitly.
func (s *ReaderSource) Next() (Row, error) {
	if s.cr == nil {
		if err := s.Rewind(); err != nil {
			return nil, err
		}
	}
	rec, err := s.cr.Read()
	if err != nil {
		return nil, err
	}
	return Row(rec), nil
}

// Raw rewinds the stream and returns it for byte-for-byte reading. Rows
// read afterwards start from a fresh pass.
func (s *ReaderSource) Raw() (io.Reader, error) {
	s.cr = nil
	if _, err := s.rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStreamExhausted, err)
	}
	return s.rs, nil
}

// Size returns the byte length of the stream, restoring the current offset.
func (s *ReaderSource) Size() (int64, bool) {
	cur, err := s.rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, false
	}
	end, err := s.rs.Seek(0, io.SeekEnd)
	if _, rerr := s.rs.Seek(cur, io.SeekStart); rerr != nil || err != nil {
		return 0, false
	}
	return end, true
}

// rewind starts a fresh pass over src, classifying failures as
// ErrStreamExhausted.
func rewind(src Source) error {
	err := src.Rewind()
	if err == nil || errors.Is(err, ErrStreamExhausted) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrStreamExhausted, err)
}
