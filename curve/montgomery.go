package curve

import (
	"math/big"

	"github.com/arlyon/goecc/field"
	"github.com/arlyon/goecc/point"
)

// Montgomery implements the curve b*y^2 = x^3 + a*x^2 + x over GF(p).
// Unlike ShortWeierstrass, its group law is specified directly in affine
// coordinates; Add and Double both require their operands to already lie on
// the curve.
type Montgomery struct {
	a, b *field.Residue
	p    *big.Int
	fld  *field.PrimeField
}

// NewMontgomery validates a, b over GF(p) and, on success, returns the curve
// b*y^2 = x^3 + a*x^2 + x. It fails with ErrSingularCurve if b == 0 or
// a^2 == 4, either of which makes the curve singular.
func NewMontgomery(a, b, p *big.Int) (*Montgomery, error) {
	fld, err := field.NewPrimeField(p)
	if err != nil {
		return nil, err
	}
	ra, err := field.New(a, p)
	if err != nil {
		return nil, err
	}
	rb, err := field.New(b, p)
	if err != nil {
		return nil, err
	}

	if rb.ToInt().Sign() == 0 {
		return nil, ErrSingularCurve
	}
	a2, _ := ra.Mul(ra)
	four, _ := field.New(big.NewInt(4), p)
	if a2.Equal(four) {
		return nil, ErrSingularCurve
	}

	return &Montgomery{a: ra, b: rb, p: new(big.Int).Set(p), fld: fld}, nil
}

func (*Montgomery) sealed() {}

// Params returns (a, b, p).
func (c *Montgomery) Params() (a, b, p *big.Int) {
	return c.a.ToInt(), c.b.ToInt(), new(big.Int).Set(c.p)
}

// Infinity returns the curve's identity element.
func (c *Montgomery) Infinity() point.Point {
	return point.Infinity{}
}

// Contains reports whether p satisfies b*y^2 = x^3 + a*x^2 + x. Infinity
// always satisfies the equation by convention.
func (c *Montgomery) Contains(p point.Point) bool {
	if _, ok := p.(point.Infinity); ok {
		return true
	}
	aff, ok := p.ToAffine().(*point.AffinePoint)
	if !ok {
		return false
	}
	return c.satisfies(aff.X, aff.Y)
}

func (c *Montgomery) satisfies(x, y *field.Residue) bool {
	y2, _ := y.Mul(y)
	lhs, _ := c.b.Mul(y2)

	x2, _ := x.Mul(x)
	x3, _ := x2.Mul(x)
	ax2, _ := c.a.Mul(x2)
	rhs, _ := x3.Add(ax2)
	rhs, _ = rhs.Add(x)

	return lhs.Equal(rhs)
}

// CreatePoint builds the affine point (x, y). It fails with
// ErrPointNotOnCurve if (x, y) does not satisfy the curve equation.
func (c *Montgomery) CreatePoint(x, y *big.Int) (point.Point, error) {
	rx, err := field.New(x, c.p)
	if err != nil {
		return nil, err
	}
	ry, err := field.New(y, c.p)
	if err != nil {
		return nil, err
	}
	if !c.satisfies(rx, ry) {
		return nil, ErrPointNotOnCurve
	}
	return point.NewAffine(rx, ry)
}

// Add computes P + Q using the Montgomery chord-and-tangent formula in
// affine coordinates. Both operands must already lie on the curve;
// toAffine is accepted for interface symmetry with ShortWeierstrass but has
// no effect, since Montgomery arithmetic never leaves affine coordinates.
func (c *Montgomery) Add(P, Q point.Point, toAffine bool) (point.Point, error) {
	if _, ok := P.(point.Infinity); ok {
		return Q.ToAffine(), nil
	}
	if _, ok := Q.(point.Infinity); ok {
		return P.ToAffine(), nil
	}

	p1, ok := P.ToAffine().(*point.AffinePoint)
	if !ok || !c.satisfies(p1.X, p1.Y) {
		return nil, ErrPointNotOnCurve
	}
	p2, ok := Q.ToAffine().(*point.AffinePoint)
	if !ok || !c.satisfies(p2.X, p2.Y) {
		return nil, ErrPointNotOnCurve
	}

	if p1.X.Equal(p2.X) {
		sum, _ := p1.Y.Add(p2.Y)
		if !p1.Y.Equal(p2.Y) || sum.ToInt().Sign() == 0 {
			return point.Infinity{}, nil
		}
		return c.Double(p1, toAffine)
	}

	dy, _ := p2.Y.Sub(p1.Y)
	dx, _ := p2.X.Sub(p1.X)
	lambda, err := dy.Div(dx)
	if err != nil {
		return nil, err
	}

	return c.finishAdd(p1, p2, lambda)
}

// Double computes 2*P using the Montgomery tangent formula in affine
// coordinates.
func (c *Montgomery) Double(P point.Point, toAffine bool) (point.Point, error) {
	if _, ok := P.(point.Infinity); ok {
		return point.Infinity{}, nil
	}
	p1, ok := P.ToAffine().(*point.AffinePoint)
	if !ok || !c.satisfies(p1.X, p1.Y) {
		return nil, ErrPointNotOnCurve
	}
	if p1.Y.ToInt().Sign() == 0 {
		return point.Infinity{}, nil
	}

	three, _ := field.New(big.NewInt(3), c.p)
	two, _ := field.New(big.NewInt(2), c.p)

	x2, _ := p1.X.Mul(p1.X)
	threeX2, _ := three.Mul(x2)
	twoAX, _ := two.Mul(c.a)
	twoAX, _ = twoAX.Mul(p1.X)
	one, _ := field.New(big.NewInt(1), c.p)
	num, _ := threeX2.Add(twoAX)
	num, _ = num.Add(one)

	twoBY, _ := two.Mul(c.b)
	twoBY, _ = twoBY.Mul(p1.Y)

	lambda, err := num.Div(twoBY)
	if err != nil {
		return nil, err
	}

	return c.finishAdd(p1, p1, lambda)
}

// finishAdd applies the shared tail of the Montgomery addition/doubling
// formula given p1, p2, and the already-computed slope lambda:
//
//	x3 = b*lambda^2 - a - x1 - x2
//	y3 = lambda*(x1 - x3) - y1
func (c *Montgomery) finishAdd(p1, p2 *point.AffinePoint, lambda *field.Residue) (point.Point, error) {
	lambda2, _ := lambda.Mul(lambda)
	bLambda2, _ := c.b.Mul(lambda2)

	x3, _ := bLambda2.Sub(c.a)
	x3, _ = x3.Sub(p1.X)
	x3, _ = x3.Sub(p2.X)

	diff, _ := p1.X.Sub(x3)
	y3, _ := lambda.Mul(diff)
	y3, _ = y3.Sub(p1.Y)

	return point.NewAffine(x3, y3)
}

// ScalarMult computes n*P via the shared non-adjacent-form ladder.
func (c *Montgomery) ScalarMult(P point.Point, n *big.Int, toAffine bool) (point.Point, error) {
	return ScalarMult(c, P, n, toAffine)
}

// Points exhaustively enumerates every point on the curve, including
// Infinity. Only practical for small p.
func (c *Montgomery) Points() ([]point.Point, error) {
	return enumeratePoints(c.fld,
		func(y *field.Residue) *field.Residue {
			y2, _ := y.Mul(y)
			r, _ := c.b.Mul(y2)
			return r
		},
		func(x *field.Residue) *field.Residue {
			x2, _ := x.Mul(x)
			x3, _ := x2.Mul(x)
			ax2, _ := c.a.Mul(x2)
			rhs, _ := x3.Add(ax2)
			rhs, _ = rhs.Add(x)
			return rhs
		},
		point.Infinity{},
	)
}
