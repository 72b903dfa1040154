package ecdsa

import "errors"

// Sentinel errors for the signer layer.
var (
	// ErrUnsupportedCurveType is returned by NewSigner when the catalog
	// entry for the requested curve name names a type no signer
	// implementation is wired to (only short-Weierstrass curves have
	// standardized ECDSA domain parameters in the catalog).
	ErrUnsupportedCurveType = errors.New("ecdsa: unsupported curve type")

	// ErrInvalidSignature is returned by ParseASN1Signature when its input
	// is not a well-formed DER SEQUENCE of two INTEGERs.
	ErrInvalidSignature = errors.New("ecdsa: invalid ASN.1 signature encoding")
)
