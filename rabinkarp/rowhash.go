package rabinkarp

// RowHashTable holds, for every text row i and every column start j, the
// polynomial hash of the width-c window text[i][j : j+c].
// Rows × Cols = R × (C−c+1). It is built once per search and read-only after.
type RowHashTable struct {
	Rows, Cols int
	data       []uint64
}

// At returns the hash of the window starting at column j of row i.
func (t RowHashTable) At(i, j int) uint64 {
	return t.data[i*t.Cols+j]
}

// HashRow returns the polynomial hash of values with base p.BaseCol:
// h = (h·BaseCol + v) mod Modulus, left to right.
// values may be any uint64; each is reduced modulo p.Modulus first.
// Complexity: O(len(values)).
func HashRow(values []uint64, p HashParams) uint64 {
	var h uint64
	for _, v := range values {
		h = addMod(mulMod(h, p.BaseCol, p.Modulus), v%p.Modulus, p.Modulus)
	}

	return h
}

// BuildRowHashTable hashes every width-c window of every row of values.
// The first window of a row is hashed directly; each following window is
// rolled in O(1):
//
//	h' = ((h − left·BaseCol^(c−1))·BaseCol + right) mod Modulus
//
// with the subtraction normalized into [0, Modulus).
// values must be rectangular and c must satisfy 1 ≤ c ≤ len(values[i]);
// entries are reduced modulo p.Modulus as they are read.
// Complexity: O(R·C) time, O(R·(C−c+1)) memory.
func BuildRowHashTable(values [][]uint64, c int, p HashParams) RowHashTable {
	rows := len(values)
	if rows == 0 || c <= 0 || len(values[0]) < c {
		return RowHashTable{}
	}
	cols := len(values[0]) - c + 1
	powCol := PowMod(p.BaseCol, uint64(c-1), p.Modulus)
	t := RowHashTable{Rows: rows, Cols: cols, data: make([]uint64, rows*cols)}

	m := p.Modulus
	for i, row := range values {
		out := t.data[i*cols : (i+1)*cols]
		h := HashRow(row[:c], p)
		out[0] = h
		for j := 1; j < cols; j++ {
			h = subMod(h, mulMod(row[j-1], powCol, m), m)
			h = addMod(mulMod(h, p.BaseCol, m), row[j+c-1]%m, m)
			out[j] = h
		}
	}

	return t
}
