package rabinkarp

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/gridsearch/grid"
)

// Result is the outcome of one search.
type Result struct {
	// Matches are verified top-left coordinates sorted by row, then column.
	Matches []Match `json:"matches" yaml:"matches"`
	// Stats counts windows, candidates and collisions.
	Stats Stats `json:"stats" yaml:"stats"`
	// Params are the hash parameters actually used by this search.
	Params HashParams `json:"params" yaml:"params"`
}

// Searcher runs two-dimensional Rabin–Karp searches over grids of S.
// It holds no per-search state and is safe for concurrent use.
type Searcher[S comparable] struct {
	mapper SymbolMapper[S]
	opts   options
	seq    atomic.Uint64 // search counter for seeded randomized bases
}

// New returns a Searcher that maps symbols with mapper.
// Errors: ErrNilMapper, ErrInvalidModulus, ErrInvalidBase, ErrInvalidWorkers.
func New[S comparable](mapper SymbolMapper[S], opts ...Option) (*Searcher[S], error) {
	if mapper == nil {
		return nil, ErrNilMapper
	}
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("rabinkarp: New: %w", err)
	}

	return &Searcher[S]{mapper: mapper, opts: o}, nil
}

// Params returns the configured hash parameters. With randomized bases the
// per-search values are reported in Result.Params instead.
func (s *Searcher[S]) Params() HashParams {
	return s.opts.params
}

// Find returns the sorted top-left coordinates of every occurrence of
// pattern in text.
func (s *Searcher[S]) Find(text, pattern *grid.Grid[S]) ([]Match, error) {
	res, err := s.Search(context.Background(), text, pattern)
	if err != nil {
		return nil, err
	}

	return res.Matches, nil
}

// Search runs one search and reports matches together with work statistics.
//
// Behavior:
//  1. Empty text, empty pattern, or a pattern taller or wider than the text
//     yields an empty result without hashing anything.
//  2. Symbols are mapped to integers (SymbolMapper) and reduced mod Modulus.
//  3. The row-hash table of the text and the pattern fingerprint are built.
//  4. Column starts are scanned (in parallel when WithWorkers > 1), every
//     fingerprint equality is verified cell by cell.
//  5. Matches are merged and sorted by row, then column.
//
// Errors: ErrNilGrid; ctx.Err() when ctx is cancelled mid-scan.
// Complexity: O(R·C + r·c·k), k = fingerprint equalities.
func (s *Searcher[S]) Search(ctx context.Context, text, pattern *grid.Grid[S]) (Result, error) {
	if text == nil || pattern == nil {
		return Result{}, fmt.Errorf("rabinkarp: Search: %w", ErrNilGrid)
	}
	p := s.paramsForSearch()
	res := Result{Matches: []Match{}, Params: p}
	if text.IsEmpty() || pattern.IsEmpty() || pattern.Rows > text.Rows || pattern.Cols > text.Cols {
		s.logSearch(ctx, text, pattern, res, 0)

		return res, nil
	}

	start := time.Now()
	tv := mapValues(text, s.mapper, p.Modulus)
	pv := mapValues(pattern, s.mapper, p.Modulus)

	sc := &scan[S]{
		text:    text,
		pattern: pattern,
		table:   BuildRowHashTable(tv, pattern.Cols, p),
		target:  PatternFingerprint(patternRowHashes(pv, p), p),
		p:       p,
		powRow:  PowMod(p.BaseRow, uint64(pattern.Rows-1), p.Modulus),
		r:       pattern.Rows,
	}

	parts, err := s.scanAll(ctx, sc)
	if err != nil {
		return Result{}, fmt.Errorf("rabinkarp: Search: %w", err)
	}
	res.Matches, res.Stats = collect(parts)
	s.logSearch(ctx, text, pattern, res, time.Since(start))

	return res, nil
}

// paramsForSearch returns the configured parameters, or freshly drawn bases
// when randomization is enabled.
func (s *Searcher[S]) paramsForSearch() HashParams {
	p := s.opts.params
	if !s.opts.randomize {
		return p
	}
	var draw func(n uint64) uint64
	if s.opts.seed == 0 {
		draw = rand.Uint64N
	} else {
		rng := rand.New(rand.NewPCG(s.opts.seed, s.seq.Add(1)))
		draw = rng.Uint64N
	}
	p.BaseCol = randomBase(p.Modulus, draw)
	p.BaseRow = randomBase(p.Modulus, draw)

	return p
}

// randomBase returns a base in [2, m−1], or 1 when m == 2.
func randomBase(m uint64, draw func(uint64) uint64) uint64 {
	if m <= 2 {
		return 1
	}

	return 2 + draw(m-2)
}

// logSearch emits the per-search Debug record.
func (s *Searcher[S]) logSearch(ctx context.Context, text, pattern *grid.Grid[S], res Result, took time.Duration) {
	if !s.opts.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	s.opts.logger.DebugContext(ctx, "search completed",
		"text_rows", text.Rows,
		"text_cols", text.Cols,
		"pattern_rows", pattern.Rows,
		"pattern_cols", pattern.Cols,
		"workers", s.opts.workers,
		"windows", res.Stats.Windows,
		"candidates", res.Stats.Candidates,
		"collisions", res.Stats.Collisions,
		"matches", res.Stats.Matches,
		"duration", took,
	)
}

// Match2D builds grids from text and pattern and returns every occurrence,
// sorted by row, then column. Ragged input returns grid.ErrNonRectangular.
func Match2D[S comparable](text, pattern [][]S, mapper SymbolMapper[S], opts ...Option) ([]Match, error) {
	tg, err := grid.New(text)
	if err != nil {
		return nil, fmt.Errorf("rabinkarp: Match2D: text: %w", err)
	}
	pg, err := grid.New(pattern)
	if err != nil {
		return nil, fmt.Errorf("rabinkarp: Match2D: pattern: %w", err)
	}
	s, err := New(mapper, opts...)
	if err != nil {
		return nil, err
	}

	return s.Find(tg, pg)
}

// MatchStrings is Match2D over rune grids given as one string per row,
// with symbols valued by their Unicode code point.
func MatchStrings(text, pattern []string, opts ...Option) ([]Match, error) {
	tg, err := grid.FromStrings(text)
	if err != nil {
		return nil, fmt.Errorf("rabinkarp: MatchStrings: text: %w", err)
	}
	pg, err := grid.FromStrings(pattern)
	if err != nil {
		return nil, fmt.Errorf("rabinkarp: MatchStrings: pattern: %w", err)
	}
	s, err := New(RuneMapper, opts...)
	if err != nil {
		return nil, err
	}

	return s.Find(tg, pg)
}
