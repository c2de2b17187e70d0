package rabinkarp

import "github.com/katalvlaran/gridsearch/grid"

// verify reports whether pattern equals the text window whose top-left cell
// is (top, left), comparing the original symbols cell by cell and stopping
// at the first mismatch. A window that does not fit inside text never
// matches.
// Complexity: O(r·c) worst case.
func verify[S comparable](text, pattern *grid.Grid[S], top, left int) bool {
	if pattern.IsEmpty() || !text.InBounds(top, left) ||
		!text.InBounds(top+pattern.Rows-1, left+pattern.Cols-1) {
		return false
	}
	for di := 0; di < pattern.Rows; di++ {
		for dj := 0; dj < pattern.Cols; dj++ {
			if text.At(top+di, left+dj) != pattern.At(di, dj) {
				return false
			}
		}
	}

	return true
}
