package point

import (
	"fmt"
	"math/big"

	"github.com/arlyon/goecc/field"
)

// JacobianPoint represents an elliptic curve point (X, Y, Z) denoting the
// affine point (X/Z^2, Y/Z^3) when Z != 0, all three coordinates sharing a
// modulus.
type JacobianPoint struct {
	X, Y, Z *field.Residue
}

// NewJacobian constructs a Jacobian point from three residues. It fails with
// field.ErrModulusMismatch if the coordinates do not all share a modulus.
func NewJacobian(x, y, z *field.Residue) (*JacobianPoint, error) {
	if x.Modulus().Cmp(y.Modulus()) != 0 || x.Modulus().Cmp(z.Modulus()) != 0 {
		return nil, field.ErrModulusMismatch
	}
	return &JacobianPoint{X: x, Y: y, Z: z}, nil
}

func (*JacobianPoint) sealed() {}

// Negate returns (X, -Y, Z).
func (p *JacobianPoint) Negate() Point {
	return &JacobianPoint{X: p.X, Y: p.Y.Neg(), Z: p.Z}
}

// ToAffine projects (X, Y, Z) to (X*Z^-2, Y*Z^-3). If Z == 0, the point is
// Infinity by convention and is returned as such rather than failing.
func (p *JacobianPoint) ToAffine() Point {
	if p.Z.ToInt().Sign() == 0 {
		return Infinity{}
	}

	zInv, err := p.Z.Inverse()
	if err != nil {
		// The curve's modulus is always prime (PrimeField validates it at
		// construction), so every nonzero residue is invertible; this
		// would indicate a caller built a JacobianPoint over a composite
		// modulus, violating the package's precondition.
		panic(fmt.Sprintf("point: non-invertible Z coordinate over modulus %s: %v", p.Z.Modulus(), err))
	}
	zInv2, _ := zInv.Mul(zInv)
	zInv3, _ := zInv2.Mul(zInv)

	x, _ := p.X.Mul(zInv2)
	y, _ := p.Y.Mul(zInv3)
	return &AffinePoint{X: x, Y: y}
}

// ToJacobian returns p unchanged.
func (p *JacobianPoint) ToJacobian() Point { return p }

// At returns X, Y, Z for indices 0, 1, 2 respectively.
func (p *JacobianPoint) At(i int) (*field.Residue, error) {
	switch i {
	case 0:
		return p.X, nil
	case 1:
		return p.Y, nil
	case 2:
		return p.Z, nil
	default:
		return nil, ErrIndexOutOfRange
	}
}

// Equal reports whether p and other represent the same point.
func (p *JacobianPoint) Equal(other Point) bool {
	return Equal(p, other)
}

// String implements fmt.Stringer.
func (p *JacobianPoint) String() string {
	return fmt.Sprintf("(%s, %s, %s)", p.X, p.Y, p.Z)
}

// one returns the multiplicative identity residue modulo m.
func one(m *big.Int) *field.Residue {
	r, _ := field.New(big.NewInt(1), m)
	return r
}
