package rabinkarp

import (
	"context"

	"github.com/katalvlaran/gridsearch/grid"
)

// window scan state shared read-only by every column range of one search.
type scan[S comparable] struct {
	text, pattern *grid.Grid[S]
	table         RowHashTable
	target        uint64 // pattern fingerprint
	p             HashParams
	powRow        uint64 // BaseRow^(r−1) mod Modulus
	r             int
}

// partial is the output of one column range.
type partial struct {
	matches []Match
	stats   Stats
}

// columns scans column starts j ∈ [lo, hi). For each j the vertical hash of
// rows 0..r−1 is built directly, then rolled down one row at a time:
//
//	h = ((h − top·BaseRow^(r−1))·BaseRow + bottom) mod Modulus
//
// Every equality with the pattern fingerprint is handed to the verifier.
// ctx is checked once per column start.
func (s *scan[S]) columns(ctx context.Context, lo, hi int) (partial, error) {
	var out partial
	m, base := s.p.Modulus, s.p.BaseRow
	starts := s.table.Rows - s.r + 1

	for j := lo; j < hi; j++ {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		var h uint64
		for i := 0; i < s.r; i++ {
			h = addMod(mulMod(h, base, m), s.table.At(i, j), m)
		}
		s.check(&out, h, 0, j)

		for i := 1; i < starts; i++ {
			h = subMod(h, mulMod(s.table.At(i-1, j), s.powRow, m), m)
			h = addMod(mulMod(h, base, m), s.table.At(i+s.r-1, j), m)
			s.check(&out, h, i, j)
		}
	}

	return out, nil
}

// check compares one window hash with the fingerprint and verifies hits.
func (s *scan[S]) check(out *partial, h uint64, i, j int) {
	out.stats.Windows++
	if h != s.target {
		return
	}
	out.stats.Candidates++
	if !verify(s.text, s.pattern, i, j) {
		out.stats.Collisions++

		return
	}
	out.stats.Matches++
	out.matches = append(out.matches, Match{Row: i, Col: j})
}
