package curve

import (
	"math/big"

	"github.com/arlyon/goecc/point"
)

// Marshal encodes an affine point in the uncompressed form specified in
// section 4.3.6 of ANSI X9.62. Infinity encodes as a single zero byte.
func Marshal(c Curve, p point.Point) []byte {
	if _, ok := p.(point.Infinity); ok {
		return []byte{0}
	}
	aff, ok := p.ToAffine().(*point.AffinePoint)
	if !ok {
		return []byte{0}
	}

	_, _, prime := c.Params()
	byteLen := (prime.BitLen() + 7) / 8
	ret := make([]byte, 1+2*byteLen)
	ret[0] = 4
	aff.X.ToInt().FillBytes(ret[1 : 1+byteLen])
	aff.Y.ToInt().FillBytes(ret[1+byteLen : 1+2*byteLen])
	return ret
}

// MarshalCompressed encodes an affine point in the compressed form
// specified in section 4.3.6 of ANSI X9.62.
func MarshalCompressed(c Curve, p point.Point) []byte {
	if _, ok := p.(point.Infinity); ok {
		return []byte{0}
	}
	aff, ok := p.ToAffine().(*point.AffinePoint)
	if !ok {
		return []byte{0}
	}

	_, _, prime := c.Params()
	byteLen := (prime.BitLen() + 7) / 8
	compressed := make([]byte, 1+byteLen)
	y := aff.Y.ToInt()
	compressed[0] = byte(y.Bit(0)) | 2
	aff.X.ToInt().FillBytes(compressed[1:])
	return compressed
}

// Unmarshal decodes a point serialized by Marshal. It fails with
// ErrInvalidEncoding if the data is malformed, out of range, or does not lie
// on c. The single zero byte that Marshal produces for Infinity is not
// accepted and also fails with ErrInvalidEncoding.
func Unmarshal(c Curve, data []byte) (point.Point, error) {
	_, _, prime := c.Params()
	byteLen := (prime.BitLen() + 7) / 8
	if len(data) != 1+2*byteLen || data[0] != 4 {
		return nil, ErrInvalidEncoding
	}

	x := new(big.Int).SetBytes(data[1 : 1+byteLen])
	y := new(big.Int).SetBytes(data[1+byteLen:])
	if x.Cmp(prime) >= 0 || y.Cmp(prime) >= 0 {
		return nil, ErrInvalidEncoding
	}

	p, err := c.CreatePoint(x, y)
	if err != nil {
		return nil, ErrInvalidEncoding
	}
	return p, nil
}

// UnmarshalCompressed decodes a point serialized by MarshalCompressed,
// recovering y via a modular square root of the short-Weierstrass right-hand
// side x^3 + a*x + b. It fails with ErrInvalidEncoding if the data is
// malformed, out of range, or the right-hand side is not a quadratic
// residue mod p. It assumes c is a short-Weierstrass curve; the compressed
// form is not defined for Montgomery curves here.
func UnmarshalCompressed(c Curve, data []byte) (point.Point, error) {
	a, b, prime := c.Params()
	byteLen := (prime.BitLen() + 7) / 8
	if len(data) != 1+byteLen || (data[0] != 2 && data[0] != 3) {
		return nil, ErrInvalidEncoding
	}

	x := new(big.Int).SetBytes(data[1:])
	if x.Cmp(prime) >= 0 {
		return nil, ErrInvalidEncoding
	}

	rhs := new(big.Int).Exp(x, big.NewInt(3), prime)
	ax := new(big.Int).Mul(a, x)
	ax.Mod(ax, prime)
	rhs.Add(rhs, ax)
	rhs.Add(rhs, b)
	rhs.Mod(rhs, prime)

	y := new(big.Int).ModSqrt(rhs, prime)
	if y == nil {
		return nil, ErrInvalidEncoding
	}
	if byte(y.Bit(0)) != data[0]&1 {
		y.Sub(prime, y)
		y.Mod(y, prime)
	}

	p, err := c.CreatePoint(x, y)
	if err != nil {
		return nil, ErrInvalidEncoding
	}
	return p, nil
}
