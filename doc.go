// Package gridsearch is a toolkit for exact two-dimensional pattern search:
// find every place where a small rectangular grid appears, symbol for symbol,
// inside a larger one.
//
// 🚀 What is gridsearch?
//
//	A pure-Go library and CLI built around a two-dimensional Rabin–Karp
//	rolling hash:
//		• Grids: rectangular, generic over any comparable symbol type
//		• Search: row hashes rolled horizontally, window hashes rolled vertically
//		• Verification: every hash hit is confirmed cell by cell
//		• Images: decoded pictures become grids of packed RGBA pixels
//		• CLI: text or image inputs, human/JSON/YAML reports
//
// ✨ Why choose gridsearch?
//
//   - No false positives: collisions cost time, never correctness
//   - Exact 64-bit modular arithmetic for any modulus ≥ 2
//   - Randomized bases for untrusted input
//   - Optional parallel column scan with identical results
//
// Under the hood, everything is organized under three subpackages:
//
//	grid/        Grid[S], validation, windows, text parsing
//	rabinkarp/   the search engine: mappers, hashing, scanning, verification
//	imagegrid/   image decoding into Grid[uint32]
//
// Quick ASCII example:
//
//	text            pattern
//	a b c d a b c   p i k
//	b c[p i k]b c   u u u
//	c d[u u u]c d
//	d a a[p i k]a   → matches at (1, 2) and (3, 3)
//	a a b[u u u]b
//
//	go install github.com/katalvlaran/gridsearch/cmd/gridsearch@latest
package gridsearch
