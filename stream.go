package csvconv

import (
	"errors"
	"io"
	"iter"
)

// All rewinds src and yields its rows in order. A rewind or read failure
// is yielded once as a nil row with the error, ending the sequence.
// Breaking out of the loop early leaves src untouched.
func All(src Source) iter.Seq2[Row, error] {
	return func(yield func(Row, error) bool) {
		if err := rewind(src); err != nil {
			yield(nil, err)
			return
		}
		for {
			row, err := src.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(row, nil) {
				return
			}
		}
	}
}

// Collect drains a fresh pass over src into a slice.
func Collect(src Source) ([]Row, error) {
	var rows []Row
	for row, err := range All(src) {
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}
