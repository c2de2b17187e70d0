package grid

// New constructs a Grid from a rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// An input with no rows, or whose rows are all empty, yields an empty grid.
// Returns ErrNonRectangular if any row length differs from the first.
// Algorithmic complexity: O(R×C) time and memory.
func New[S comparable](values [][]S) (*Grid[S], error) {
	if err := Validate(values); err != nil {
		return nil, err
	}
	h := len(values)
	w := 0
	if h > 0 {
		w = len(values[0])
	}
	// Deep copy to prevent external mutation
	cells := make([][]S, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]S, w)
		copy(cells[y], values[y])
	}

	return &Grid[S]{Rows: h, Cols: w, Cells: cells}, nil
}

// Validate reports ErrNonRectangular when rows of values differ in length.
// Complexity: O(R).
func Validate[S any](values [][]S) error {
	if len(values) == 0 {
		return nil
	}
	w := len(values[0])
	for _, row := range values {
		if len(row) != w {
			return ErrNonRectangular
		}
	}

	return nil
}

// FromStrings builds a rune grid, one row per string.
// Rows are split into Unicode scalar values, so multi-byte characters occupy
// a single cell.
func FromStrings(rows []string) (*Grid[rune], error) {
	values := make([][]rune, len(rows))
	for i, s := range rows {
		values[i] = []rune(s)
	}

	return New(values)
}

// IsEmpty reports whether the grid has no cells.
func (g *Grid[S]) IsEmpty() bool {
	return g == nil || g.Rows == 0 || g.Cols == 0
}

// At returns the symbol at (row, col). The caller must ensure InBounds.
// Complexity: O(1).
func (g *Grid[S]) At(row, col int) S {
	return g.Cells[row][col]
}

// InBounds reports whether (row, col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[S]) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Window returns a deep copy of the h×w sub-grid whose top-left cell is
// (top, left). Returns ErrOutOfRange if the window does not fit.
// Complexity: O(h×w).
func (g *Grid[S]) Window(top, left, h, w int) (*Grid[S], error) {
	if h < 0 || w < 0 || top < 0 || left < 0 || top+h > g.Rows || left+w > g.Cols {
		return nil, ErrOutOfRange
	}
	cells := make([][]S, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]S, w)
		copy(cells[y], g.Cells[top+y][left:left+w])
	}

	return &Grid[S]{Rows: h, Cols: w, Cells: cells}, nil
}
