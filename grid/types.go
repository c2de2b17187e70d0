package grid

import "errors"

// Sentinel errors for grid construction and access.
var (
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfRange indicates a requested window does not fit inside the grid.
	ErrOutOfRange = errors.New("grid: window out of range")
)

// Grid is an immutable rectangular grid of symbols.
// Rows and Cols define dimensions; Cells[row][col] holds the symbol.
// A grid with Rows == 0 or Cols == 0 is empty.
type Grid[S comparable] struct {
	Rows, Cols int
	Cells      [][]S
}
