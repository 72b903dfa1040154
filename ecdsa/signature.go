package ecdsa

import (
	"fmt"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

// Signature is an ECDSA signature (r, s).
type Signature struct {
	R, S *big.Int
}

// String implements fmt.Stringer.
func (sig *Signature) String() string {
	return fmt.Sprintf("Signature(r=%#x, s=%#x)", sig.R, sig.S)
}

// MarshalASN1 encodes sig as a DER SEQUENCE of two INTEGERs, the wire format
// used by X.509 and TLS for ECDSA signatures.
func (sig *Signature) MarshalASN1() ([]byte, error) {
	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1BigInt(sig.R)
		b.AddASN1BigInt(sig.S)
	})
	return b.Bytes()
}

// ParseASN1Signature decodes a DER-encoded ECDSA signature produced by
// MarshalASN1. It fails with ErrInvalidSignature if der is not a well-formed
// SEQUENCE of exactly two INTEGERs.
func ParseASN1Signature(der []byte) (*Signature, error) {
	input := cryptobyte.String(der)
	var inner cryptobyte.String
	r, s := new(big.Int), new(big.Int)

	if !input.ReadASN1(&inner, asn1.SEQUENCE) ||
		!input.Empty() ||
		!inner.ReadASN1Integer(r) ||
		!inner.ReadASN1Integer(s) ||
		!inner.Empty() {
		return nil, ErrInvalidSignature
	}

	return &Signature{R: r, S: s}, nil
}
