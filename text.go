package csvconv

import (
	"bytes"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// writeText draws rows as an ASCII-bordered table. Column widths are
// display widths, so East Asian wide characters line up. Short rows are
// padded with empty cells.
func writeText(w io.Writer, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	widths := computeWidths(colCount(rows), rows)

	var buf bytes.Buffer
	drawHLine(&buf, widths)
	for _, row := range rows {
		buf.WriteString("|")
		for i, width := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			buf.WriteString(" ")
			buf.WriteString(runewidth.FillRight(cell, width))
			buf.WriteString(" |")
		}
		buf.WriteString("\n")
	}
	drawHLine(&buf, widths)
	_, err := buf.WriteTo(w)
	return err
}

func colCount(rows [][]string) int {
	n := 0
	for _, row := range rows {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

func computeWidths(numCols int, rows [][]string) []int {
	widths := make([]int, numCols)
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func drawHLine(buf *bytes.Buffer, widths []int) {
	buf.WriteString("+")
	for _, width := range widths {
		buf.WriteString(strings.Repeat("-", width+2))
		buf.WriteString("+")
	}
	buf.WriteString("\n")
}
