package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineBytes bounds a single text row accepted by Parse.
const maxLineBytes = 16 << 20

// byteOrderMark is the UTF-8 BOM some editors write at the start of a file.
const byteOrderMark = "\ufeff"

// Parse reads a rune grid from r, one row per line.
// Line endings may be "\n" or "\r\n". A missing final newline, trailing
// blank lines and a leading UTF-8 byte-order mark are accepted.
// Returns ErrNonRectangular (wrapped with the offending line number) for
// ragged input, including blank lines between rows.
// Complexity: O(R×C).
func Parse(r io.Reader) (*Grid[rune], error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var rows [][]rune
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if len(rows) == 0 {
			line = strings.TrimPrefix(line, byteOrderMark)
		}
		rows = append(rows, []rune(line))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: Parse: %w", err)
	}
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	for i, row := range rows {
		if len(row) != len(rows[0]) {
			return nil, fmt.Errorf("grid: Parse: line %d: %w", i+1, ErrNonRectangular)
		}
	}

	return New(rows)
}

// Format renders a rune grid as newline-terminated rows.
func Format(g *Grid[rune]) string {
	var b strings.Builder
	b.Grow(g.Rows * (g.Cols + 1))
	for _, row := range g.Cells {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}

	return b.String()
}
