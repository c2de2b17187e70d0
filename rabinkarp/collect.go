package rabinkarp

import (
	"cmp"
	"fmt"
	"slices"
)

// Match is the zero-based top-left coordinate of a verified occurrence.
type Match struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// String formats m as "(row, col)".
func (m Match) String() string {
	return fmt.Sprintf("(%d, %d)", m.Row, m.Col)
}

// Stats counts the work done by one search.
//
//	Candidates = Matches + Collisions
type Stats struct {
	Windows    int `json:"windows" yaml:"windows"`       // window hashes compared
	Candidates int `json:"candidates" yaml:"candidates"` // fingerprint equalities
	Collisions int `json:"collisions" yaml:"collisions"` // candidates rejected by the verifier
	Matches    int `json:"matches" yaml:"matches"`       // verified occurrences
}

// add accumulates o into s.
func (s *Stats) add(o Stats) {
	s.Windows += o.Windows
	s.Candidates += o.Candidates
	s.Collisions += o.Collisions
	s.Matches += o.Matches
}

// collect merges per-range outputs and sorts matches by row, then column.
// Each (row, col) is visited exactly once per search, so no deduplication
// is needed.
func collect(parts []partial) ([]Match, Stats) {
	var st Stats
	n := 0
	for _, p := range parts {
		n += len(p.matches)
	}
	out := make([]Match, 0, n)
	for _, p := range parts {
		out = append(out, p.matches...)
		st.add(p.stats)
	}
	slices.SortFunc(out, compareMatch)

	return out, st
}

// compareMatch orders matches row-major.
func compareMatch(a, b Match) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}

	return cmp.Compare(a.Col, b.Col)
}
