package rabinkarp

import (
	"sync"

	"github.com/katalvlaran/gridsearch/grid"
)

// SymbolMapper maps a grid symbol to a non-negative integer used by all
// hashing. The same symbol must always map to the same value within a search.
// Distinct symbols may share a value; the verifier compares the symbols
// themselves.
type SymbolMapper[S comparable] interface {
	Value(s S) uint64
}

// MapperFunc adapts an ordinary function to SymbolMapper.
type MapperFunc[S comparable] func(S) uint64

// Value calls f(s).
func (f MapperFunc[S]) Value(s S) uint64 { return f(s) }

// RuneMapper maps a rune to its Unicode code point.
var RuneMapper SymbolMapper[rune] = MapperFunc[rune](func(r rune) uint64 { return uint64(uint32(r)) })

// ByteMapper maps a byte to its value.
var ByteMapper SymbolMapper[byte] = MapperFunc[byte](func(b byte) uint64 { return uint64(b) })

// Uint32Mapper maps a packed 32-bit symbol (e.g. an RGBA pixel) to its value.
var Uint32Mapper SymbolMapper[uint32] = MapperFunc[uint32](func(v uint32) uint64 { return uint64(v) })

// Interner assigns dense ids (1, 2, 3, ...) to symbols in first-seen order.
// Use it for opaque token types with no natural integer value. Ids never
// change once assigned, so one Interner may serve many searches.
// Interner is safe for concurrent use.
type Interner[S comparable] struct {
	mu  sync.Mutex
	ids map[S]uint64
}

// NewInterner returns an empty Interner.
func NewInterner[S comparable]() *Interner[S] {
	return &Interner[S]{ids: make(map[S]uint64)}
}

// Value returns the id of s, assigning the next id on first sight.
func (in *Interner[S]) Value(s S) uint64 {
	in.mu.Lock()
	defer in.mu.Unlock()
	id, ok := in.ids[s]
	if !ok {
		id = uint64(len(in.ids)) + 1
		in.ids[s] = id
	}

	return id
}

// Len returns the number of distinct symbols seen so far.
func (in *Interner[S]) Len() int {
	in.mu.Lock()
	defer in.mu.Unlock()

	return len(in.ids)
}

// mapValues applies mapper to every cell of g and reduces the result modulo m.
// Complexity: O(R×C).
func mapValues[S comparable](g *grid.Grid[S], mapper SymbolMapper[S], m uint64) [][]uint64 {
	out := make([][]uint64, g.Rows)
	for i, row := range g.Cells {
		vals := make([]uint64, len(row))
		for j, s := range row {
			vals[j] = mapper.Value(s) % m
		}
		out[i] = vals
	}

	return out
}
