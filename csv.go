package csvconv

import (
	"encoding/csv"
	"io"
)

// RenderPassthrough streams src to w without interpreting fields. Sources
// implementing Rawer are copied byte for byte from the start of their
// stream; other sources are rewound and written back out as CSV.
//
// It returns the number of bytes written. A failure after some bytes have
// reached w is reported as a *PassthroughError wrapping ErrTruncatedOutput.
func RenderPassthrough(w io.Writer, src Source) (int64, error) {
	if raw, ok := src.(Rawer); ok {
		r, err := raw.Raw()
		if err != nil {
			return 0, err
		}
		n, err := io.Copy(w, r)
		return n, truncated(n, err)
	}

	cw := &countingWriter{w: w}
	csvw := csv.NewWriter(cw)
	for row, err := range All(src) {
		if err != nil {
			csvw.Flush()
			return cw.n, truncated(cw.n, err)
		}
		if err := csvw.Write(row); err != nil {
			return cw.n, truncated(cw.n, err)
		}
	}
	csvw.Flush()
	return cw.n, truncated(cw.n, csvw.Error())
}

func truncated(n int64, err error) error {
	if err == nil || n == 0 {
		return err
	}
	return &PassthroughError{Written: n, Err: err}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
