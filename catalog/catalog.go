// Package catalog holds the named domain parameters for the standard NIST
// prime curves, the same role played by curve_params.py in the reference
// implementation: a name-keyed lookup table that hands the ecdsa package
// the (a, b, p, n, Gx, Gy) tuple for a curve without callers needing to
// type the constants themselves.
package catalog

import "math/big"

// CurveType identifies which group-law form a catalog entry's parameters
// describe.
type CurveType int

const (
	// ShortWeierstrass marks a curve of the form y^2 = x^3 + a*x + b.
	ShortWeierstrass CurveType = iota
	// Montgomery marks a curve of the form b*y^2 = x^3 + a*x^2 + x.
	Montgomery
)

// Params is a named curve's domain parameters: the defining equation
// coefficients and field modulus, the generator point, and the generator's
// order.
type Params struct {
	Name string
	Type CurveType
	A, B *big.Int
	P    *big.Int
	N    *big.Int
	Gx   *big.Int
	Gy   *big.Int
}

func hexInt(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("catalog: invalid hex constant " + s)
	}
	return n
}

// minusThreeMod returns p-3, the conventional "a" coefficient shared by all
// NIST prime curves.
func minusThreeMod(p *big.Int) *big.Int {
	return new(big.Int).Sub(p, big.NewInt(3))
}

var catalog map[string]Params

func register(p Params) {
	if catalog == nil {
		catalog = make(map[string]Params)
	}
	catalog[p.Name] = p
}

func init() {
	p192 := hexInt("fffffffffffffffffffffffffffffffeffffffffffffffff")
	register(Params{
		Name: "P-192",
		Type: ShortWeierstrass,
		A:    minusThreeMod(p192),
		B:    hexInt("64210519e59c80e70fa7e9ab72243049feb8deecc146b9b1"),
		P:    p192,
		N:    hexInt("ffffffffffffffffffffffff99def836146bc9b1b4d22831"),
		Gx:   hexInt("188da80eb03090f67cbf20eb43a18800f4ff0afd82ff1012"),
		Gy:   hexInt("07192b95ffc8da78631011ed6b24cdd573f977a11e794811"),
	})

	p224 := hexInt("ffffffffffffffffffffffffffffffff000000000000000000000001")
	register(Params{
		Name: "P-224",
		Type: ShortWeierstrass,
		A:    minusThreeMod(p224),
		B:    mustDecimal("18958286285566608000408668544493926415504680968679321075787234672564"),
		P:    p224,
		N:    hexInt("ffffffffffffffffffffffffffff16a2e0b8f03e13dd29455c5c2a3d"),
		Gx:   hexInt("b70e0cbd6bb4bf7f321390b94a03c1d356c21122343280d6115c1d21"),
		Gy:   hexInt("bd376388b5f723fb4c22dfe6cd4375a05a07476444d5819985007e34"),
	})

	p256 := hexInt("ffffffff00000001000000000000000000000000ffffffffffffffffffffffff")
	register(Params{
		Name: "P-256",
		Type: ShortWeierstrass,
		A:    minusThreeMod(p256),
		B:    hexInt("5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b"),
		P:    p256,
		N:    hexInt("ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551"),
		Gx:   hexInt("6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296"),
		Gy:   hexInt("4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5"),
	})

	p384 := hexInt("fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffeffffffff0000000000000000ffffffff")
	register(Params{
		Name: "P-384",
		Type: ShortWeierstrass,
		A:    minusThreeMod(p384),
		B:    hexInt("b3312fa7e23ee7e4988e056be3f82d19181d9c6efe8141120314088f5013875ac656398d8a2ed19d2a85c8edd3ec2aef"),
		P:    p384,
		N:    hexInt("ffffffffffffffffffffffffffffffffffffffffffffffffc7634d81f4372ddf581a0db248b0a77aecec196accc52973"),
		Gx:   hexInt("aa87ca22be8b05378eb1c71ef320ad746e1d3b628ba79b9859f741e082542a385502f25dbf55296c3a545e3872760ab7"),
		Gy:   hexInt("3617de4a96262c6f5d9e98bf9292dc29f8f41dbd289a147ce9da3113b5f0b8c00a60b1ce1d7e819d7a431d7c90ea0e5f"),
	})

	p521 := hexInt("1ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")
	register(Params{
		Name: "P-521",
		Type: ShortWeierstrass,
		A:    minusThreeMod(p521),
		B:    hexInt("51953eb9618e1c9a1f929a21a0b68540eea2da725b99b315f3b8b489918ef109e156193951ec7e937b1652c0bd3bb1bf073573df883d2c34f1ef451fd46b503f00"),
		P:    p521,
		N:    hexInt("1ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffa51868783bf2f966b7fcc0148f709a5d03bb5c9b8899c47aebb6fb71e91386409"),
		Gx:   hexInt("c6858e06b70404e9cd9e3ecb662395b4429c648139053fb521f828af606b4d3dbaa14b5e77efe75928fe1dc127a2ffa8de3348b3c1856a429bf97e7e31c2e5bd66"),
		Gy:   hexInt("11839296a789a3bc0045c8a5fb42c7d1bd998f54449579b446817afbd17273e662c97ee72995ef42640c550b9013fad0761353c7086a272c24088be94769fd16650"),
	})
}

func mustDecimal(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("catalog: invalid decimal constant " + s)
	}
	return n
}

// Lookup returns the domain parameters registered under name. It fails with
// ErrUnknownCurve if name is not in the catalog.
func Lookup(name string) (Params, error) {
	p, ok := catalog[name]
	if !ok {
		return Params{}, ErrUnknownCurve
	}
	return p, nil
}

// Names returns the registered curve names, useful for error messages and
// tests.
func Names() []string {
	out := make([]string, 0, len(catalog))
	for name := range catalog {
		out = append(out, name)
	}
	return out
}
