package grid_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// New and Validate Tests
//----------------------------------------------------------------------------//

// TestNew_Shapes verifies that New accepts empty grids and rejects ragged ones.
func TestNew_Shapes(t *testing.T) {
	cases := []struct {
		name       string
		values     [][]int
		rows, cols int
		err        error
	}{
		{"NilRows", nil, 0, 0, nil},
		{"EmptyRows", [][]int{}, 0, 0, nil},
		{"EmptyCols", [][]int{{}, {}}, 2, 0, nil},
		{"Single", [][]int{{7}}, 1, 1, nil},
		{"Rect", [][]int{{1, 2, 3}, {4, 5, 6}}, 2, 3, nil},
		{"NonRectangular", [][]int{{1, 2}, {3}}, 0, 0, grid.ErrNonRectangular},
		{"EmptyThenFull", [][]int{{}, {1}}, 0, 0, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(tc.values)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				assert.Nil(t, g)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.rows, g.Rows)
			assert.Equal(t, tc.cols, g.Cols)
		})
	}
}

// TestNew_DeepCopy ensures later mutation of the input does not leak into the grid.
func TestNew_DeepCopy(t *testing.T) {
	values := [][]int{{1, 2}, {3, 4}}
	g, err := grid.New(values)
	require.NoError(t, err)

	values[0][0] = 99
	assert.Equal(t, 1, g.At(0, 0), "grid must not alias caller rows")
}

// TestIsEmpty covers nil, zero-row, zero-column and populated grids.
func TestIsEmpty(t *testing.T) {
	var nilGrid *grid.Grid[rune]
	assert.True(t, nilGrid.IsEmpty())

	g, err := grid.New([][]rune{{}, {}})
	require.NoError(t, err)
	assert.True(t, g.IsEmpty())

	g, err = grid.FromStrings([]string{"ab"})
	require.NoError(t, err)
	assert.False(t, g.IsEmpty())
}

// TestFromStrings_Unicode verifies that multi-byte characters occupy one cell.
func TestFromStrings_Unicode(t *testing.T) {
	g, err := grid.FromStrings([]string{"añb", "xyz"})
	require.NoError(t, err)
	assert.Equal(t, 3, g.Cols)
	assert.Equal(t, 'ñ', g.At(0, 1))

	_, err = grid.FromStrings([]string{"abc", "ab"})
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
}

//----------------------------------------------------------------------------//
// Access Tests
//----------------------------------------------------------------------------//

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.New([][]int{
		{0, 1, 0},
		{1, 0, 1},
	})
	require.NoError(t, err)

	for _, rc := range [][2]int{{0, 0}, {1, 2}, {1, 1}} {
		assert.True(t, g.InBounds(rc[0], rc[1]), "InBounds(%d,%d)", rc[0], rc[1])
	}
	for _, rc := range [][2]int{{-1, 0}, {2, 0}, {0, 3}, {1, -1}} {
		assert.False(t, g.InBounds(rc[0], rc[1]), "InBounds(%d,%d)", rc[0], rc[1])
	}
}

// TestWindow extracts sub-grids and rejects windows that overflow.
func TestWindow(t *testing.T) {
	g, err := grid.FromStrings([]string{"abcd", "efgh", "ijkl"})
	require.NoError(t, err)

	w, err := g.Window(1, 1, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, "fg\njk\n", grid.Format(w))

	full, err := g.Window(0, 0, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, g.Cells, full.Cells)

	for _, bad := range [][4]int{{2, 0, 2, 1}, {0, 3, 1, 2}, {-1, 0, 1, 1}, {0, 0, -1, 1}} {
		_, err := g.Window(bad[0], bad[1], bad[2], bad[3])
		assert.ErrorIs(t, err, grid.ErrOutOfRange, "Window%v", bad)
	}
}

//----------------------------------------------------------------------------//
// Parse / Format Tests
//----------------------------------------------------------------------------//

// TestParse covers line endings, missing final newline and ragged input.
func TestParse(t *testing.T) {
	g, err := grid.Parse(strings.NewReader("abc\r\ndef\r\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows)
	assert.Equal(t, "abc\ndef\n", grid.Format(g))

	g, err = grid.Parse(strings.NewReader("xy\nzw"))
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows)
	assert.Equal(t, 2, g.Cols)

	g, err = grid.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.True(t, g.IsEmpty())

	_, err = grid.Parse(strings.NewReader("abc\nde\n"))
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
	assert.Contains(t, err.Error(), "line 2")
}

// TestParse_EditorArtifacts accepts trailing blank lines and a UTF-8 BOM,
// but still rejects blank lines between rows.
func TestParse_EditorArtifacts(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"TrailingBlankLine", "abc\ndef\n\n", "abc\ndef\n"},
		{"TrailingBlankLinesCRLF", "abc\r\ndef\r\n\r\n\r\n", "abc\ndef\n"},
		{"ByteOrderMark", "\ufeffabc\ndef\n", "abc\ndef\n"},
		{"ByteOrderMarkAndBlankLine", "\ufeffabc\ndef\n\n", "abc\ndef\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.Parse(strings.NewReader(tc.input))
			require.NoError(t, err)
			assert.Equal(t, 2, g.Rows)
			assert.Equal(t, 3, g.Cols)
			assert.Equal(t, tc.want, grid.Format(g))
		})
	}

	g, err := grid.Parse(strings.NewReader("\n\n"))
	require.NoError(t, err)
	assert.True(t, g.IsEmpty())

	_, err = grid.Parse(strings.NewReader("abc\n\ndef\n"))
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
	assert.Contains(t, err.Error(), "line 2")
}
