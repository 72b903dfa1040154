package naf

import (
	"math/big"
	"math/rand"
	"testing"
)

func TestEncodeKnownValues(t *testing.T) {
	cases := []struct {
		n    int64
		want []int
	}{
		{0, []int{0}},
		{1, []int{1}},
		{2, []int{1, 0}},
		{7, []int{1, 0, 0, -1}},
		{10, []int{1, 0, 1, 0}},
	}
	for _, c := range cases {
		got := Encode(big.NewInt(c.n))
		if !equal(got, c.want) {
			t.Errorf("Encode(%d) = %v, want %v", c.n, got, c.want)
		}
	}
}

func TestEncodeNoAdjacentNonZero(t *testing.T) {
	for n := int64(0); n < 2000; n++ {
		digits := Encode(big.NewInt(n))
		if !NoAdjacentNonZero(digits) {
			t.Fatalf("Encode(%d) = %v has adjacent non-zero digits", n, digits)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		n := big.NewInt(r.Int63n(1 << 40))
		digits := Encode(n)
		if Decode(digits).Cmp(n) != 0 {
			t.Fatalf("round trip failed for %s: digits=%v decoded=%s", n, digits, Decode(digits))
		}
	}
}

func TestEncodeNegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for negative n")
		}
	}()
	Encode(big.NewInt(-1))
}

func equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
