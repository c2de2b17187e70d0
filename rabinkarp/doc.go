// Package rabinkarp finds every exact occurrence of a small rectangular
// pattern inside a larger rectangular text grid using the two-dimensional
// Rabin–Karp rolling hash.
//
// 🚀 How it works
//
//	1. Every cell is mapped to an integer by a SymbolMapper.
//	2. Row Hasher: for each text row, a polynomial hash (base BaseCol) of every
//	   width-c window is computed once and then rolled one column at a time.
//	3. Pattern Hash Combiner: the pattern's r row hashes are folded with base
//	   BaseRow into one fingerprint.
//	4. Vertical Rolling Matcher: for each column start, the r-row window hash
//	   is rolled down the column of row hashes and compared with the
//	   fingerprint.
//	5. Verifier: every fingerprint equality is confirmed cell by cell, so hash
//	   collisions never reach the caller.
//	6. Match Collector: results are returned sorted by row, then column.
//
// ✨ Key features:
//   - generic over the symbol type (runes, bytes, pixels, opaque tokens)
//   - exact 64-bit modular arithmetic for any modulus ≥ 2
//   - optional per-search randomized bases (WithRandomizedBases)
//   - optional parallel column scan (WithWorkers)
//   - per-search statistics: windows, candidates, collisions
//
// ⚙️ Usage:
//
//	matches, err := rabinkarp.MatchStrings(
//		[]string{"abcdabc", "bcpikbc", "cduuucd", "daapika", "aabuuub"},
//		[]string{"pik", "uuu"},
//	)
//	// matches == []Match{{Row: 1, Col: 2}, {Row: 3, Col: 3}}
//
// Performance:
//
//   - Time:   O(R·C + r·c·k), k = fingerprint equalities (matches + collisions)
//   - Memory: O(R·(C−c+1)) for the row-hash table plus O(R·C) mapped values
//
// Fixed bases (31, 37) and a fixed modulus are predictable: crafted input can
// force many collisions and therefore much verification work, never wrong
// results. Use WithRandomizedBases when the input is untrusted.
package rabinkarp
