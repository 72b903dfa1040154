package curve

import (
	"math/big"

	"github.com/arlyon/goecc/field"
	"github.com/arlyon/goecc/point"
)

// ShortWeierstrass implements the curve y^2 = x^3 + a*x + b over GF(p).
type ShortWeierstrass struct {
	a, b *field.Residue
	p    *big.Int
	fld  *field.PrimeField
}

// NewShortWeierstrass validates a, b over GF(p) and, on success, returns the
// curve y^2 = x^3 + a*x + b. It fails with ErrSingularCurve if the
// discriminant -16*(4*a^3 + 27*b^2) vanishes mod p, which would make the
// curve singular (a cusp or self-intersection rather than a smooth curve).
func NewShortWeierstrass(a, b, p *big.Int) (*ShortWeierstrass, error) {
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

	if err := checkNonSingularWeierstrass(ra, rb); err != nil {
		return nil, err
	}

	return &ShortWeierstrass{a: ra, b: rb, p: new(big.Int).Set(p), fld: fld}, nil
}

func checkNonSingularWeierstrass(a, b *field.Residue) error {
	a3, _ := a.Mul(a)
	a3, _ = a3.Mul(a)
	four, _ := field.New(big.NewInt(4), a.Modulus())
	term1, _ := four.Mul(a3)

	b2, _ := b.Mul(b)
	twentySeven, _ := field.New(big.NewInt(27), a.Modulus())
	term2, _ := twentySeven.Mul(b2)

	sum, _ := term1.Add(term2)
	if sum.ToInt().Sign() == 0 {
		return ErrSingularCurve
	}
	return nil
}

func (*ShortWeierstrass) sealed() {}

// Params returns (a, b, p).
func (c *ShortWeierstrass) Params() (a, b, p *big.Int) {
	return c.a.ToInt(), c.b.ToInt(), new(big.Int).Set(c.p)
}

// Infinity returns the curve's identity element.
func (c *ShortWeierstrass) Infinity() point.Point {
	return point.Infinity{}
}

// Contains reports whether p satisfies y^2 = x^3 + a*x + b. Infinity always
// satisfies the equation by convention.
func (c *ShortWeierstrass) Contains(p point.Point) bool {
	if _, ok := p.(point.Infinity); ok {
		return true
	}
	aff, ok := p.ToAffine().(*point.AffinePoint)
	if !ok {
		return false
	}
	return c.satisfies(aff.X, aff.Y)
}

func (c *ShortWeierstrass) satisfies(x, y *field.Residue) bool {
	y2, _ := y.Mul(y)
	x2, _ := x.Mul(x)
	x3, _ := x2.Mul(x)
	ax, _ := c.a.Mul(x)
	rhs, _ := x3.Add(ax)
	rhs, _ = rhs.Add(c.b)
	return y2.Equal(rhs)
}

// CreatePoint builds the Jacobian point (x, y, 1). It fails with
// ErrPointNotOnCurve if (x, y) does not satisfy the curve equation.
func (c *ShortWeierstrass) CreatePoint(x, y *big.Int) (point.Point, error) {
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
	aff, err := point.NewAffine(rx, ry)
	if err != nil {
		return nil, err
	}
	return aff.ToJacobian(), nil
}

// Add computes P + Q in Jacobian coordinates, per the standard Jacobian
// addition formulas for short-Weierstrass curves. If toAffine is set the
// result is projected to affine before being returned.
func (c *ShortWeierstrass) Add(P, Q point.Point, toAffine bool) (point.Point, error) {
	if _, ok := P.(point.Infinity); ok {
		return maybeAffine(Q, toAffine), nil
	}
	if _, ok := Q.(point.Infinity); ok {
		return maybeAffine(P, toAffine), nil
	}

	p1 := P.ToJacobian().(*point.JacobianPoint)
	p2 := Q.ToJacobian().(*point.JacobianPoint)

	z1z1, _ := p1.Z.Mul(p1.Z)
	z2z2, _ := p2.Z.Mul(p2.Z)

	u1, _ := p1.X.Mul(z2z2)
	u2, _ := p2.X.Mul(z1z1)

	z2z2z2, _ := z2z2.Mul(p2.Z)
	z1z1z1, _ := z1z1.Mul(p1.Z)
	s1, _ := p1.Y.Mul(z2z2z2)
	s2, _ := p2.Y.Mul(z1z1z1)

	h, _ := u2.Sub(u1)
	r, _ := s2.Sub(s1)

	if h.ToInt().Sign() == 0 {
		if r.ToInt().Sign() == 0 {
			return c.Double(P, toAffine)
		}
		return maybeAffine(point.Infinity{}, toAffine), nil
	}

	h2, _ := h.Mul(h)
	h3, _ := h2.Mul(h)
	u1h2, _ := u1.Mul(h2)

	r2, _ := r.Mul(r)
	x3, _ := r2.Sub(h3)
	twoU1H2, _ := u1h2.Add(u1h2)
	x3, _ = x3.Sub(twoU1H2)

	diff, _ := u1h2.Sub(x3)
	rdiff, _ := r.Mul(diff)
	s1h3, _ := s1.Mul(h3)
	y3, _ := rdiff.Sub(s1h3)

	z1z2, _ := p1.Z.Mul(p2.Z)
	z3, _ := h.Mul(z1z2)

	out, err := point.NewJacobian(x3, y3, z3)
	if err != nil {
		return nil, err
	}
	return maybeAffine(out, toAffine), nil
}

// Double computes 2*P in Jacobian coordinates. If toAffine is set the result
// is projected to affine before being returned.
func (c *ShortWeierstrass) Double(P point.Point, toAffine bool) (point.Point, error) {
	if _, ok := P.(point.Infinity); ok {
		return point.Infinity{}, nil
	}

	p1 := P.ToJacobian().(*point.JacobianPoint)
	if p1.Y.ToInt().Sign() == 0 {
		return point.Infinity{}, nil
	}

	x1, y1, z1 := p1.X, p1.Y, p1.Z

	y1y1, _ := y1.Mul(y1)
	fourXY1Y1, _ := x1.Mul(y1y1)
	fourXY1Y1, _ = fourXY1Y1.Add(fourXY1Y1)
	s, _ := fourXY1Y1.Add(fourXY1Y1)

	x1x1, _ := x1.Mul(x1)
	threeX1X1, _ := x1x1.Add(x1x1)
	threeX1X1, _ = threeX1X1.Add(x1x1)

	z1z1, _ := z1.Mul(z1)
	z1z1z1z1, _ := z1z1.Mul(z1z1)
	az1z1z1z1, _ := c.a.Mul(z1z1z1z1)

	m, _ := threeX1X1.Add(az1z1z1z1)

	m2, _ := m.Mul(m)
	twoS, _ := s.Add(s)
	x3, _ := m2.Sub(twoS)

	sMinusX3, _ := s.Sub(x3)
	mTimes, _ := m.Mul(sMinusX3)

	y1y1y1y1, _ := y1y1.Mul(y1y1)
	eightY1Y1Y1Y1, _ := y1y1y1y1.Add(y1y1y1y1)
	eightY1Y1Y1Y1, _ = eightY1Y1Y1Y1.Add(eightY1Y1Y1Y1)
	eightY1Y1Y1Y1, _ = eightY1Y1Y1Y1.Add(eightY1Y1Y1Y1)

	y3, _ := mTimes.Sub(eightY1Y1Y1Y1)

	twoY1, _ := y1.Add(y1)
	z3, _ := twoY1.Mul(z1)

	out, err := point.NewJacobian(x3, y3, z3)
	if err != nil {
		return nil, err
	}
	return maybeAffine(out, toAffine), nil
}

// ScalarMult computes n*P via the shared non-adjacent-form ladder.
func (c *ShortWeierstrass) ScalarMult(P point.Point, n *big.Int, toAffine bool) (point.Point, error) {
	return ScalarMult(c, P, n, toAffine)
}

// Points exhaustively enumerates every point on the curve, including
// Infinity. Only practical for small p.
func (c *ShortWeierstrass) Points() ([]point.Point, error) {
	return enumeratePoints(c.fld,
		func(y *field.Residue) *field.Residue { r, _ := y.Mul(y); return r },
		func(x *field.Residue) *field.Residue {
			x2, _ := x.Mul(x)
			x3, _ := x2.Mul(x)
			ax, _ := c.a.Mul(x)
			rhs, _ := x3.Add(ax)
			rhs, _ = rhs.Add(c.b)
			return rhs
		},
		point.Infinity{},
	)
}

func maybeAffine(p point.Point, toAffine bool) point.Point {
	if toAffine {
		return p.ToAffine()
	}
	return p
}
