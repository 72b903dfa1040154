package field

import (
	"math/big"
	"testing"
)

func TestPrimeFieldConstruction(t *testing.T) {
	if _, err := NewPrimeField(bi(7)); err != nil {
		t.Fatalf("NewPrimeField(7): %v", err)
	}
	if _, err := NewPrimeField(bi(9)); err != ErrInvalidFieldParameter {
		t.Fatalf("NewPrimeField(9): expected ErrInvalidFieldParameter, got %v", err)
	}
	if _, err := NewPrimeField(bi(2)); err != ErrInvalidFieldParameter {
		t.Fatalf("NewPrimeField(2): expected ErrInvalidFieldParameter (only odd primes), got %v", err)
	}
	if _, err := NewPrimeField(bi(1)); err != ErrInvalidFieldParameter {
		t.Fatalf("NewPrimeField(1): expected ErrInvalidFieldParameter, got %v", err)
	}
	if _, err := NewPrimeField(bi(0)); err != ErrInvalidFieldParameter {
		t.Fatalf("NewPrimeField(0): expected ErrInvalidFieldParameter, got %v", err)
	}
}

func TestPrimeFieldContainsAndCard(t *testing.T) {
	field, err := NewPrimeField(bi(7))
	if err != nil {
		t.Fatal(err)
	}
	if field.Card().Cmp(bi(7)) != 0 {
		t.Errorf("Card() = %s, want 7", field.Card())
	}

	in, err := New(bi(3), bi(7))
	if err != nil {
		t.Fatal(err)
	}
	if !field.Contains(in) {
		t.Errorf("expected 3 mod 7 to be in GF(7)")
	}

	out, err := New(bi(3), bi(11))
	if err != nil {
		t.Fatal(err)
	}
	if field.Contains(out) {
		t.Errorf("expected 3 mod 11 to not be in GF(7)")
	}
}

func TestPrimeFieldIteration(t *testing.T) {
	field, err := NewPrimeField(bi(7))
	if err != nil {
		t.Fatal(err)
	}
	it := field.Iterator()
	for i := int64(0); i < 7; i++ {
		r, ok := it()
		if !ok {
			t.Fatalf("iterator ended early at %d", i)
		}
		if r.ToInt().Cmp(big.NewInt(i)) != 0 {
			t.Errorf("iterator[%d] = %s, want %d", i, r.ToInt(), i)
		}
	}
	if _, ok := it(); ok {
		t.Fatalf("iterator did not terminate after p elements")
	}
}

func TestMillerRabinKnownValues(t *testing.T) {
	primes := []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31}
	composites := []int64{4, 6, 8, 9, 10, 15, 21, 25, 27}
	for _, p := range primes {
		if !millerRabin(bi(p), DefaultMillerRabinTrials) {
			t.Errorf("millerRabin(%d) = false, want true", p)
		}
	}
	for _, c := range composites {
		if millerRabin(bi(c), DefaultMillerRabinTrials) {
			t.Errorf("millerRabin(%d) = true, want false", c)
		}
	}
	if millerRabin(bi(0), DefaultMillerRabinTrials) || millerRabin(bi(1), DefaultMillerRabinTrials) {
		t.Errorf("millerRabin should reject 0 and 1")
	}
}
