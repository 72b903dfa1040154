package field

import "errors"

// Sentinel errors for the modular-arithmetic layer. Callers should check
// these with errors.Is rather than comparing strings.
var (
	// ErrInvalidModulus is returned when a Residue is constructed with a
	// modulus that is not strictly positive. PrimeField reports such a
	// parameter as ErrInvalidFieldParameter instead.
	ErrInvalidModulus = errors.New("field: modulus must be positive")

	// ErrModulusMismatch is returned when a binary operation is attempted
	// between two residues that do not share a modulus.
	ErrModulusMismatch = errors.New("field: residues do not share a modulus")

	// ErrNoInverse is returned when a modular inverse is requested for a
	// value that shares a nontrivial factor with the modulus.
	ErrNoInverse = errors.New("field: value has no modular inverse")

	// ErrInvalidFieldParameter is returned when a PrimeField is
	// constructed with a parameter that is not an odd prime.
	ErrInvalidFieldParameter = errors.New("field: invalid field parameter")

	// ErrNegativeExponent is returned by Pow when given a negative
	// exponent; the reference implementation leaves this undefined, we
	// reject it explicitly.
	ErrNegativeExponent = errors.New("field: exponent must be non-negative")
)
