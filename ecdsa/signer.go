// Package ecdsa implements the elliptic curve digital signature algorithm
// over the named curves in the catalog package: key generation, signing,
// and verification.
package ecdsa

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"math/big"

	"github.com/arlyon/goecc/catalog"
	"github.com/arlyon/goecc/curve"
	"github.com/arlyon/goecc/field"
	"github.com/arlyon/goecc/point"
)

// KeyPair is an ECDSA key pair: a private scalar and its corresponding
// public point Q = d*G.
type KeyPair struct {
	PubKey  point.Point
	PrivKey *big.Int
}

// Signer signs and verifies messages under a single named curve's domain
// parameters.
type Signer struct {
	params    catalog.Params
	curve     *curve.ShortWeierstrass
	basePoint point.Point
}

// NewSigner resolves name in the catalog and constructs a Signer over its
// curve. It fails with catalog.ErrUnknownCurve if name is not registered, or
// ErrUnsupportedCurveType if the named curve is not in short-Weierstrass
// form (the only form standardized ECDSA domain parameters use).
func NewSigner(name string) (*Signer, error) {
	params, err := catalog.Lookup(name)
	if err != nil {
		return nil, err
	}
	if params.Type != catalog.ShortWeierstrass {
		return nil, ErrUnsupportedCurveType
	}

	c, err := curve.NewShortWeierstrass(params.A, params.B, params.P)
	if err != nil {
		return nil, err
	}
	base, err := c.CreatePoint(params.Gx, params.Gy)
	if err != nil {
		return nil, err
	}

	return &Signer{params: params, curve: c, basePoint: base}, nil
}

// hash maps a message to an integer by hashing it and reading the digest as
// a big-endian integer, selecting SHA-256, SHA-384, or SHA-512 by the bit
// length of the curve order, matching FIPS 186-4's guidance on matching
// hash strength to curve strength.
func (s *Signer) hash(message string) *big.Int {
	bits := s.params.N.BitLen()
	var digest []byte
	switch {
	case bits <= 256:
		sum := sha256.Sum256([]byte(message))
		digest = sum[:]
	case bits <= 384:
		sum := sha512.Sum384([]byte(message))
		digest = sum[:]
	default:
		sum := sha512.Sum512([]byte(message))
		digest = sum[:]
	}
	return new(big.Int).SetBytes(digest)
}

// randBetween returns a uniform random integer in [lo, hi).
func randBetween(lo, hi *big.Int) (*big.Int, error) {
	span := new(big.Int).Sub(hi, lo)
	k, err := rand.Int(rand.Reader, span)
	if err != nil {
		return nil, err
	}
	return k.Add(k, lo), nil
}

// GenerateKeyPair samples a private scalar d uniformly from [1, n) and
// returns the pair (d, d*G).
func (s *Signer) GenerateKeyPair() (*KeyPair, error) {
	d, err := randBetween(big.NewInt(1), s.params.N)
	if err != nil {
		return nil, err
	}
	Q, err := s.curve.ScalarMult(s.basePoint, d, true)
	if err != nil {
		return nil, err
	}
	return &KeyPair{PubKey: Q, PrivKey: d}, nil
}

// Sign produces a signature over message under privKey. It resamples the
// per-signature nonce k whenever r or s would come out zero, rather than
// looping forever recomputing an unchanged s from a stuck k.
func (s *Signer) Sign(message string, privKey *big.Int) (*Signature, error) {
	h := s.hash(message)
	n := s.params.N

	for {
		k, err := randBetween(big.NewInt(1), n)
		if err != nil {
			return nil, err
		}

		P, err := s.curve.ScalarMult(s.basePoint, k, true)
		if err != nil {
			return nil, err
		}
		aff, ok := P.(*point.AffinePoint)
		if !ok {
			continue
		}
		r := new(big.Int).Mod(aff.X.ToInt(), n)
		if r.Sign() == 0 {
			continue
		}

		kRes, _ := field.New(k, n)
		kInv, err := kRes.Inverse()
		if err != nil {
			continue
		}

		hPlusDR := new(big.Int).Mul(privKey, r)
		hPlusDR.Add(hPlusDR, h)
		hPlusDRRes, _ := field.New(hPlusDR, n)
		sRes, _ := hPlusDRRes.Mul(kInv)
		sVal := sRes.ToInt()
		if sVal.Sign() == 0 {
			continue
		}

		return &Signature{R: r, S: sVal}, nil
	}
}

// Verify reports whether sig is a valid signature over message under
// pubKey.
//
// The range check on r and s is a literal port of the reference
// implementation's check (r, s both required to fall in (1, n]), which is
// not the standard ECDSA bound of [1, n-1]. It is kept as-is rather than
// corrected to canonical bounds, since doing so would reject or accept a
// different set of edge-case signatures than the curve this signer's
// output was validated against.
func (s *Signer) Verify(message string, sig *Signature, pubKey point.Point) bool {
	n := s.params.N
	r, sigS := sig.R, sig.S

	one := big.NewInt(1)
	if r.Cmp(one) <= 0 || r.Cmp(n) > 0 || sigS.Cmp(one) <= 0 || sigS.Cmp(n) > 0 {
		return false
	}

	h := s.hash(message)

	sRes, _ := field.New(sigS, n)
	sInv, err := sRes.Inverse()
	if err != nil {
		return false
	}
	hRes, _ := field.New(h, n)
	rRes, _ := field.New(r, n)
	uRes, _ := hRes.Mul(sInv)
	vRes, _ := rRes.Mul(sInv)
	u, v := uRes.ToInt(), vRes.ToInt()

	P1, err := s.curve.ScalarMult(s.basePoint, u, false)
	if err != nil {
		return false
	}
	P2, err := s.curve.ScalarMult(pubKey, v, false)
	if err != nil {
		return false
	}
	sum, err := s.curve.Add(P1, P2, true)
	if err != nil {
		return false
	}

	aff, ok := sum.(*point.AffinePoint)
	if !ok {
		return false
	}

	xModN := new(big.Int).Mod(aff.X.ToInt(), n)
	return xModN.Cmp(r) == 0
}
