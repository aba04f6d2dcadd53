package csvconv

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat  = errors.New("unsupported format")
	ErrUnknownEncoding    = errors.New("unknown encoding")
	ErrEncodingConversion = errors.New("encoding conversion failed")
	ErrInvalidTagName     = errors.New("invalid tag name")
	ErrStreamExhausted    = errors.New("row stream cannot be rewound")
	ErrTruncatedOutput    = errors.New("output truncated")
)

var errUnrepresentable = errors.New("byte sequence not valid in source encoding")

// EncodingError reports a field that could not be converted from the
// declared source encoding. Row and Column are 1-based.
type EncodingError struct {
	Row      int
	Column   int
	Encoding string
	Err      error
}

func (e *EncodingError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%v: row %d, column %d from %s: %v", ErrEncodingConversion, e.Row, e.Column, e.Encoding, e.Err)
}

// Unwrap exposes both ErrEncodingConversion and the underlying cause.
func (e *EncodingError) Unwrap() []error {
	if e == nil {
		return nil
	}
	return []error{ErrEncodingConversion, e.Err}
}

// PassthroughError reports a passthrough that failed after Written bytes
// had already reached the sink. Those bytes cannot be taken back.
type PassthroughError struct {
	Written int64
	Err     error
}

func (e *PassthroughError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%v after %d bytes: %v", ErrTruncatedOutput, e.Written, e.Err)
}

// Unwrap exposes both ErrTruncatedOutput and the underlying cause.
func (e *PassthroughError) Unwrap() []error {
	if e == nil {
		return nil
	}
	return []error{ErrTruncatedOutput, e.Err}
}
