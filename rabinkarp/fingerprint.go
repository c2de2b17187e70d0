package rabinkarp

// PatternFingerprint folds per-row hashes into one scalar with base
// p.BaseRow, top row first:
//
//	h = (h·BaseRow + rowHash[i]) mod Modulus,  i = 0..r−1
//
// which equals Σ rowHash[i]·BaseRow^(r−1−i) mod Modulus. A text window's
// vertical hash uses the same scheme, so the two are directly comparable.
// Row hashes are reduced modulo p.Modulus as they are read.
// Complexity: O(r).
func PatternFingerprint(rowHashes []uint64, p HashParams) uint64 {
	var h uint64
	for _, rh := range rowHashes {
		h = addMod(mulMod(h, p.BaseRow, p.Modulus), rh%p.Modulus, p.Modulus)
	}

	return h
}

// patternRowHashes hashes every row of the mapped pattern.
func patternRowHashes(values [][]uint64, p HashParams) []uint64 {
	out := make([]uint64, len(values))
	for i, row := range values {
		out[i] = HashRow(row, p)
	}

	return out
}
