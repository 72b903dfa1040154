// Package curve implements the elliptic curve group law: a sealed Curve sum
// type over short-Weierstrass and Montgomery forms, point membership,
// addition, doubling, and NAF double-and-add scalar multiplication.
package curve

import (
	"math/big"

	"github.com/arlyon/goecc/field"
	"github.com/arlyon/goecc/naf"
	"github.com/arlyon/goecc/point"
)

// Curve is satisfied by *ShortWeierstrass and *Montgomery. ScalarMult is
// implemented once, in terms of each arm's own Add and Double, per the
// "parameterize shared algorithms over the arm's add and double" design
// note: the group law itself (Add, Double) differs by curve form, but the
// double-and-add ladder over the curve's non-adjacent-form digits does not.
type Curve interface {
	sealed()

	// Contains reports whether p lies on the curve (Infinity always does).
	Contains(p point.Point) bool

	// Add computes P + Q. If toAffine is set the result is projected to
	// affine coordinates before being returned.
	Add(P, Q point.Point, toAffine bool) (point.Point, error)

	// Double computes 2*P. If toAffine is set the result is projected to
	// affine coordinates before being returned.
	Double(P point.Point, toAffine bool) (point.Point, error)

	// CreatePoint builds a curve point from integer coordinates:
	// ShortWeierstrass returns it in Jacobian form (x, y, 1), Montgomery
	// in affine form (x, y). It fails with ErrPointNotOnCurve if (x, y)
	// does not satisfy the curve equation.
	CreatePoint(x, y *big.Int) (point.Point, error)

	// Points enumerates every point on the curve, including Infinity.
	// Only practical for small fields; see spec.md's disclaimer on
	// Curve.points.
	Points() ([]point.Point, error)

	// Infinity returns the curve's identity element.
	Infinity() point.Point

	// Params returns the curve's defining constants (a, b, p).
	Params() (a, b, p *big.Int)
}

// ScalarMult computes n*P on c using the non-adjacent-form double-and-add
// ladder described in spec.md §4.4, dispatching each addition/doubling step
// to c's own Add/Double. It fails with ErrNegativeScalar if n < 0.
func ScalarMult(c Curve, P point.Point, n *big.Int, toAffine bool) (point.Point, error) {
	if n.Sign() < 0 {
		return nil, ErrNegativeScalar
	}
	if _, isInf := P.(point.Infinity); isInf || n.Sign() == 0 {
		return point.Infinity{}, nil
	}

	digits := naf.Encode(n)
	Q := P.ToJacobian()
	var R point.Point = point.Infinity{}
	var err error

	// digits is MSB-first; the ladder consumes least-significant digit
	// first, so we walk the slice backwards.
	for i := len(digits) - 1; i >= 0; i-- {
		switch digits[i] {
		case 1:
			R, err = c.Add(R, Q, false)
			if err != nil {
				return nil, err
			}
		case -1:
			R, err = c.Add(R, Q.Negate(), false)
			if err != nil {
				return nil, err
			}
		}
		Q, err = c.Double(Q, false)
		if err != nil {
			return nil, err
		}
	}

	if toAffine {
		return R.ToAffine(), nil
	}
	return R, nil
}

// enumeratePoints runs the exhaustive "for every x, find matching y" search
// shared by both curve forms, given a function computing the left- and
// right-hand sides of the curve equation for a residue.
func enumeratePoints(f *field.PrimeField, lhs, rhs func(x *field.Residue) *field.Residue, inf point.Point) ([]point.Point, error) {
	elems := f.All()

	lhsVals := make([]*field.Residue, len(elems))
	rhsVals := make([]*field.Residue, len(elems))
	for i, x := range elems {
		lhsVals[i] = lhs(x)
		rhsVals[i] = rhs(x)
	}

	seen := make(map[string]*point.AffinePoint)
	for i, rv := range rhsVals {
		for j, lv := range lhsVals {
			if rv.Equal(lv) {
				p, err := point.NewAffine(elems[i], elems[j])
				if err != nil {
					return nil, err
				}
				seen[p.Key()] = p
			}
		}
	}

	out := make([]point.Point, 0, len(seen)+1)
	for _, p := range seen {
		out = append(out, p)
	}
	out = append(out, inf)
	return out, nil
}
