// Package rabinkarp test helpers.
//
// Purpose:
//   - Provide a brute-force reference matcher for completeness/soundness checks.
//   - Provide deterministic random grids over small alphabets so that real
//     matches and hash collisions both occur.
package rabinkarp

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/stretchr/testify/require"
)

// largePrime64 is the largest prime below 2^64.
const largePrime64 = 18446744073709551557

// bruteForce returns every top-left (row, col) where pattern equals the text
// window, in row-major order. Empty or oversized patterns yield no matches.
func bruteForce[S comparable](text, pattern *grid.Grid[S]) []Match {
	out := []Match{}
	if text.IsEmpty() || pattern.IsEmpty() || pattern.Rows > text.Rows || pattern.Cols > text.Cols {
		return out
	}
	for i := 0; i+pattern.Rows <= text.Rows; i++ {
		for j := 0; j+pattern.Cols <= text.Cols; j++ {
			ok := true
			for di := 0; di < pattern.Rows && ok; di++ {
				for dj := 0; dj < pattern.Cols; dj++ {
					if text.Cells[i+di][j+dj] != pattern.Cells[di][dj] {
						ok = false

						break
					}
				}
			}
			if ok {
				out = append(out, Match{Row: i, Col: j})
			}
		}
	}

	return out
}

// randomRuneGrid builds an rows×cols grid over the first k letters of "abcdef".
func randomRuneGrid(rng *rand.Rand, rows, cols, k int) *grid.Grid[rune] {
	const alphabet = "abcdef"
	values := make([][]rune, rows)
	for i := range values {
		values[i] = make([]rune, cols)
		for j := range values[i] {
			values[i][j] = rune(alphabet[rng.IntN(k)])
		}
	}
	g, err := grid.New(values)
	if err != nil {
		panic(err)
	}

	return g
}

// randomCase returns a random text and a pattern that is either cut from the
// text (so at least one match exists) or drawn independently.
func randomCase(rng *rand.Rand) (text, pattern *grid.Grid[rune]) {
	rows, cols := 1+rng.IntN(9), 1+rng.IntN(9)
	k := 1 + rng.IntN(3)
	text = randomRuneGrid(rng, rows, cols, k)
	r, c := 1+rng.IntN(rows), 1+rng.IntN(cols)
	if rng.IntN(2) == 0 {
		w, err := text.Window(rng.IntN(rows-r+1), rng.IntN(cols-c+1), r, c)
		if err != nil {
			panic(err)
		}

		return text, w
	}

	return text, randomRuneGrid(rng, r, c, k)
}

// mustStrings builds a rune grid or fails the test.
func mustStrings(t *testing.T, rows ...string) *grid.Grid[rune] {
	t.Helper()
	g, err := grid.FromStrings(rows)
	require.NoError(t, err)

	return g
}

// mustSearcher builds a rune Searcher or fails the test.
func mustSearcher(t *testing.T, opts ...Option) *Searcher[rune] {
	t.Helper()
	s, err := New(RuneMapper, opts...)
	require.NoError(t, err)

	return s
}

// referenceText and referencePattern are the canonical example grids.
var (
	referenceText = []string{
		"abcdabc",
		"bcpikbc",
		"cduuucd",
		"daapika",
		"aabuuub",
	}
	referencePattern = []string{
		"pik",
		"uuu",
	}
)
