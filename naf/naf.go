// Package naf computes the non-adjacent form of a non-negative integer: a
// signed-digit base-2 representation in {-1, 0, 1} with no two adjacent
// non-zero digits, used by Curve.ScalarMult to reduce the expected Hamming
// weight of the scalar from n/2 to n/3.
package naf

import "math/big"

// Encode returns the NAF digits of n, most-significant digit first. It
// panics if n is negative; callers (Curve.ScalarMult) are expected to
// reject negative scalars before reaching here.
//
// The digits are produced LSB-first by repeatedly extracting the current
// bit and halving, then reversed into MSB-first order for the return value,
// the order Decode reads them in (see naf_test.go's round-trip property).
// ScalarMult consumes them least-significant digit first by iterating the
// returned slice in reverse.
func Encode(n *big.Int) []int {
	if n.Sign() < 0 {
		panic("naf: n must be non-negative")
	}
	if n.Sign() == 0 {
		return []int{0}
	}

	digits := make([]int, 0, n.BitLen()+1)
	rem := new(big.Int).Set(n)
	zero := big.NewInt(0)
	two := big.NewInt(2)
	four := big.NewInt(4)

	for rem.Cmp(zero) != 0 {
		if rem.Bit(0) == 1 {
			mod4 := new(big.Int).Mod(rem, four)
			z := 2 - int(mod4.Int64())
			digits = append(digits, z)
			rem.Sub(rem, big.NewInt(int64(z)))
		} else {
			digits = append(digits, 0)
		}
		rem.Div(rem, two)
	}

	// digits is currently LSB-first; reverse into MSB-first for the
	// public representation.
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return digits
}

// Decode reconstructs the integer represented by MSB-first NAF digits,
// computing sum(d_i * 2^i). It is used only by tests to check Encode's
// correctness (spec.md testable property 5).
func Decode(digits []int) *big.Int {
	result := big.NewInt(0)
	two := big.NewInt(2)
	for _, d := range digits {
		result.Mul(result, two)
		result.Add(result, big.NewInt(int64(d)))
	}
	return result
}

// NoAdjacentNonZero reports whether digits (in either order) has no two
// adjacent non-zero entries, the defining property of non-adjacent form.
func NoAdjacentNonZero(digits []int) bool {
	for i := 0; i+1 < len(digits); i++ {
		if digits[i] != 0 && digits[i+1] != 0 {
			return false
		}
	}
	return true
}
