package curve

import "errors"

// Sentinel errors for the curve/group-law layer.
var (
	// ErrSingularCurve is returned when curve parameters fail the
	// non-singularity check (zero discriminant for short-Weierstrass,
	// b=0 or a^2=4 for Montgomery).
	ErrSingularCurve = errors.New("curve: singular curve parameters")

	// ErrPointNotOnCurve is returned by CreatePoint, and by Montgomery
	// addition, when given a point that does not satisfy the curve
	// equation.
	ErrPointNotOnCurve = errors.New("curve: point is not on the curve")

	// ErrNegativeScalar is returned by ScalarMult when n < 0.
	ErrNegativeScalar = errors.New("curve: scalar must be non-negative")

	// ErrUnsupportedForm names an operation the curve's form does not
	// support. No function in this package returns it: Points, for
	// instance, enumerates any field it is given, however large.
	ErrUnsupportedForm = errors.New("curve: unsupported for this curve form")

	// ErrInvalidEncoding is returned by Unmarshal and UnmarshalCompressed
	// when the input is malformed, out of range, or does not decode to a
	// point on the curve.
	ErrInvalidEncoding = errors.New("curve: invalid point encoding")
)
