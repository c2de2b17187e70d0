package rabinkarp

import "math/bits"

// Modular helpers. Every operand is already reduced into [0, m) and every
// result stays in [0, m), for any modulus m ≥ 2 up to 2^64−1.

// mulMod returns a·b mod m using the full 128-bit product.
func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi == 0 {
		return lo % m
	}

	return bits.Rem64(hi, lo, m)
}

// addMod returns (a + b) mod m without overflowing uint64.
func addMod(a, b, m uint64) uint64 {
	if a >= m-b {
		return a - (m - b)
	}

	return a + b
}

// subMod returns (a − b) mod m normalized into [0, m).
func subMod(a, b, m uint64) uint64 {
	if a >= b {
		return a - b
	}

	return a + (m - b)
}

// PowMod returns base^exp mod m by square-and-multiply.
// Complexity: O(log exp).
func PowMod(base, exp, m uint64) uint64 {
	result := 1 % m
	base %= m
	for exp > 0 {
		if exp&1 == 1 {
			result = mulMod(result, base, m)
		}
		base = mulMod(base, base, m)
		exp >>= 1
	}

	return result
}
