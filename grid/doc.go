// Package grid holds the rectangular symbol grids that gridsearch operates on.
//
// What:
//
//   - Grid[S] wraps a rectangular [][]S of comparable symbols (runes, bytes,
//     packed pixels or any opaque token type).
//   - New deep-copies its input and rejects ragged rows.
//   - Zero rows, or rows of length zero, form a valid empty grid.
//   - Cell access (At) and bounds checks (InBounds).
//   - Window extracts an h×w sub-grid; Parse/Format convert text grids.
//
// Why:
//
//   - Every search in package rabinkarp relies on uniform row length; checking
//     it once at construction keeps the hashing loops free of bounds logic.
//
// Complexity:
//
//   - New, FromStrings, Parse: O(R×C) time and memory.
//   - At, InBounds: O(1).
//   - Window: O(h×w).
//
// Errors:
//
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfRange: a requested window does not fit inside the grid.
package grid
