// Package field implements modular arithmetic over GF(p): a Residue type
// representing a single element of Z/mZ, and a PrimeField type validating
// and iterating over the elements of a prime field.
package field

import (
	"fmt"
	"math/big"

	"github.com/cronokirby/safenum"
)

// Residue represents a value a (mod m), normalized to lie in [0, m).
//
// The canonical value and modulus are kept as *big.Int for equality,
// hashing/map-key use, and display, while the safenum-backed nat/modulus
// pair drives the actual arithmetic. Curve's group law is written against
// Residue's methods, so every field operation it performs runs through the
// safenum representation.
type Residue struct {
	val *big.Int
	m   *big.Int

	nat *safenum.Nat
	mod *safenum.Modulus
}

// New constructs the residue a (mod m), reducing a into [0, m) with
// Euclidean division. It fails with ErrInvalidModulus if m is not strictly
// positive.
func New(a, m *big.Int) (*Residue, error) {
	if m.Sign() <= 0 {
		return nil, ErrInvalidModulus
	}
	reduced := new(big.Int).Mod(a, m)
	mCopy := new(big.Int).Set(m)
	nat := new(safenum.Nat).SetBytes(reduced.Bytes())
	mod := safenum.ModulusFromNat(*new(safenum.Nat).SetBytes(mCopy.Bytes()))
	return &Residue{val: reduced, m: mCopy, nat: nat, mod: mod}, nil
}

// sameModulus returns ErrModulusMismatch if r and other don't share a
// modulus. Add, Sub, Mul and Div call it before doing any arithmetic.
func (r *Residue) sameModulus(other *Residue) error {
	if r.m.Cmp(other.m) != 0 {
		return ErrModulusMismatch
	}
	return nil
}

func (r *Residue) wrap(nat *safenum.Nat) *Residue {
	val := new(big.Int).SetBytes(nat.Bytes())
	return &Residue{val: val, m: r.m, nat: nat, mod: r.mod}
}

// Modulus returns the modulus of the residue as a big.Int.
func (r *Residue) Modulus() *big.Int {
	return new(big.Int).Set(r.m)
}

// ToInt returns the canonical representative of the residue in [0, m).
func (r *Residue) ToInt() *big.Int {
	return new(big.Int).Set(r.val)
}

// String implements fmt.Stringer.
func (r *Residue) String() string {
	return r.val.String()
}

// Key returns a value suitable for use as a map key, for contexts (such as
// Curve.Points) that must deduplicate residues/points by value rather than
// by pointer identity.
func (r *Residue) Key() string {
	return fmt.Sprintf("%s:%s", r.val.String(), r.m.String())
}

// Equal reports whether r and other represent the same residue, i.e. share
// a modulus and a canonical value.
func (r *Residue) Equal(other *Residue) bool {
	return r.m.Cmp(other.m) == 0 && r.val.Cmp(other.val) == 0
}

// Add returns r + other (mod m).
func (r *Residue) Add(other *Residue) (*Residue, error) {
	if err := r.sameModulus(other); err != nil {
		return nil, err
	}
	sum := new(safenum.Nat).ModAdd(r.nat, other.nat, r.mod)
	return r.wrap(sum), nil
}

// Sub returns r - other (mod m).
func (r *Residue) Sub(other *Residue) (*Residue, error) {
	if err := r.sameModulus(other); err != nil {
		return nil, err
	}
	diff := new(safenum.Nat).ModSub(r.nat, other.nat, r.mod)
	return r.wrap(diff), nil
}

// Mul returns r * other (mod m).
func (r *Residue) Mul(other *Residue) (*Residue, error) {
	if err := r.sameModulus(other); err != nil {
		return nil, err
	}
	prod := new(safenum.Nat).ModMul(r.nat, other.nat, r.mod)
	return r.wrap(prod), nil
}

// Neg returns -r (mod m), i.e. (m - a) mod m.
func (r *Residue) Neg() *Residue {
	zero := new(safenum.Nat).SetUint64(0)
	neg := new(safenum.Nat).ModSub(zero, r.nat, r.mod)
	return r.wrap(neg)
}

// Inverse returns the multiplicative inverse of r modulo m. It fails with
// ErrNoInverse if gcd(r, m) != 1 (this includes r == 0).
func (r *Residue) Inverse() (*Residue, error) {
	gcd := new(big.Int).GCD(nil, nil, r.val, r.m)
	if gcd.Cmp(big.NewInt(1)) != 0 {
		return nil, ErrNoInverse
	}
	inv := new(safenum.Nat).ModInverse(r.nat, r.mod)
	return r.wrap(inv), nil
}

// Div returns r / other, i.e. r * other.Inverse(). It fails with
// ErrModulusMismatch or ErrNoInverse under the same conditions as Mul and
// Inverse respectively.
func (r *Residue) Div(other *Residue) (*Residue, error) {
	if err := r.sameModulus(other); err != nil {
		return nil, err
	}
	inv, err := other.Inverse()
	if err != nil {
		return nil, err
	}
	return r.Mul(inv)
}

// Pow raises r to the non-negative integer power n, computed modulo m via
// square-and-multiply so that the full, unreduced power is never formed.
// It fails with ErrNegativeExponent if n < 0.
func (r *Residue) Pow(n *big.Int) (*Residue, error) {
	if n.Sign() < 0 {
		return nil, ErrNegativeExponent
	}
	result := new(safenum.Nat).SetUint64(1)
	result = new(safenum.Nat).ModMul(result, new(safenum.Nat).SetUint64(1), r.mod)
	base := r.nat
	for i := n.BitLen() - 1; i >= 0; i-- {
		result = new(safenum.Nat).ModMul(result, result, r.mod)
		if n.Bit(i) == 1 {
			result = new(safenum.Nat).ModMul(result, base, r.mod)
		}
	}
	return r.wrap(result), nil
}
