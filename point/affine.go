package point

import (
	"fmt"

	"github.com/arlyon/goecc/field"
)

// AffinePoint represents an elliptic curve point (x, y) with both
// coordinates sharing a modulus.
type AffinePoint struct {
	X, Y *field.Residue
}

// NewAffine constructs an affine point from two residues. It fails with
// field.ErrModulusMismatch if x and y do not share a modulus.
func NewAffine(x, y *field.Residue) (*AffinePoint, error) {
	if x.Modulus().Cmp(y.Modulus()) != 0 {
		return nil, field.ErrModulusMismatch
	}
	return &AffinePoint{X: x, Y: y}, nil
}

func (*AffinePoint) sealed() {}

// Negate returns (x, -y).
func (p *AffinePoint) Negate() Point {
	return &AffinePoint{X: p.X, Y: p.Y.Neg()}
}

// ToAffine returns p unchanged.
func (p *AffinePoint) ToAffine() Point { return p }

// ToJacobian returns the equivalent point (x, y, 1).
func (p *AffinePoint) ToJacobian() Point {
	return &JacobianPoint{X: p.X, Y: p.Y, Z: one(p.X.Modulus())}
}

// At returns X for index 0, Y for index 1.
func (p *AffinePoint) At(i int) (*field.Residue, error) {
	switch i {
	case 0:
		return p.X, nil
	case 1:
		return p.Y, nil
	default:
		return nil, ErrIndexOutOfRange
	}
}

// Equal reports whether p and other represent the same point.
func (p *AffinePoint) Equal(other Point) bool {
	return Equal(p, other)
}

// Key returns a value suitable for deduplicating affine points by value,
// used by Curve.Points when enumerating small curves.
func (p *AffinePoint) Key() string {
	return p.X.Key() + "|" + p.Y.Key()
}

// String implements fmt.Stringer.
func (p *AffinePoint) String() string {
	return fmt.Sprintf("(%s, %s)", p.X, p.Y)
}
