// Package point implements the elliptic-curve point sum type: AffinePoint,
// JacobianPoint, and Infinity. Point is a sealed interface over exactly
// these three concrete types, the idiomatic Go substitute for a closed
// tagged union.
package point

import "github.com/arlyon/goecc/field"

// Point is satisfied by exactly AffinePoint, JacobianPoint, and Infinity.
// The unexported sealed method prevents other packages from adding new
// variants.
type Point interface {
	sealed()

	// Negate returns the additive inverse of the point.
	Negate() Point

	// ToAffine projects the point into affine coordinates. A Jacobian
	// point with Z == 0 projects to Infinity rather than failing; this
	// matches the convention, used throughout the group law, that Z == 0
	// denotes the point at infinity.
	ToAffine() Point

	// ToJacobian lifts the point into Jacobian coordinates. Infinity maps
	// to itself.
	ToJacobian() Point

	// At returns the residue at ordinal index i (0-indexed coordinates).
	// It fails with ErrIndexOutOfRange if i is not a valid coordinate
	// index for the point's representation.
	At(i int) (*field.Residue, error)
}

// Equal reports whether a and b represent the same point, comparing across
// representations by projecting both to affine. Infinity equals only
// Infinity.
func Equal(a, b Point) bool {
	pa := a.ToAffine()
	pb := b.ToAffine()

	_, aInf := pa.(Infinity)
	_, bInf := pb.(Infinity)
	if aInf || bInf {
		return aInf && bInf
	}

	affA := pa.(*AffinePoint)
	affB := pb.(*AffinePoint)
	return affA.X.Equal(affB.X) && affA.Y.Equal(affB.Y)
}

// Infinity is the group identity element. It carries no coordinates.
type Infinity struct{}

func (Infinity) sealed() {}

// Negate returns Infinity; the identity is its own inverse.
func (Infinity) Negate() Point { return Infinity{} }

// ToAffine returns Infinity.
func (Infinity) ToAffine() Point { return Infinity{} }

// ToJacobian returns Infinity.
func (Infinity) ToJacobian() Point { return Infinity{} }

// At always fails: Infinity is dimensionless.
func (Infinity) At(i int) (*field.Residue, error) {
	return nil, ErrIndexOutOfRange
}

// String implements fmt.Stringer.
func (Infinity) String() string { return "Infinity" }
