package ecdsa

import "testing"

func BenchmarkSign(b *testing.B) {
	signer, err := NewSigner("P-256")
	if err != nil {
		b.Fatal(err)
	}
	pair, err := signer.GenerateKeyPair()
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := signer.Sign("benchmark message", pair.PrivKey); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVerify(b *testing.B) {
	signer, err := NewSigner("P-256")
	if err != nil {
		b.Fatal(err)
	}
	pair, err := signer.GenerateKeyPair()
	if err != nil {
		b.Fatal(err)
	}
	sig, err := signer.Sign("benchmark message", pair.PrivKey)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !signer.Verify("benchmark message", sig, pair.PubKey) {
			b.Fatal("signature unexpectedly invalid")
		}
	}
}
