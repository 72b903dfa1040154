package field

import (
	"math/big"
	"testing"
)

func bi(n int64) *big.Int { return big.NewInt(n) }

func mustResidue(t *testing.T, a, m int64) *Residue {
	t.Helper()
	r, err := New(bi(a), bi(m))
	if err != nil {
		t.Fatalf("New(%d, %d): %v", a, m, err)
	}
	return r
}

func TestResidueNormalizes(t *testing.T) {
	cases := []struct {
		a, m, want int64
	}{
		{5, 13, 5},
		{13, 13, 0},
		{-1, 13, 12},
		{-14, 13, 12},
		{26, 13, 0},
	}
	for _, c := range cases {
		r := mustResidue(t, c.a, c.m)
		if r.ToInt().Cmp(bi(c.want)) != 0 {
			t.Errorf("Residue(%d,%d).ToInt() = %s, want %d", c.a, c.m, r.ToInt(), c.want)
		}
	}
}

func TestNewRejectsNonPositiveModulus(t *testing.T) {
	if _, err := New(bi(5), bi(0)); err != ErrInvalidModulus {
		t.Fatalf("expected ErrInvalidModulus, got %v", err)
	}
	if _, err := New(bi(5), bi(-7)); err != ErrInvalidModulus {
		t.Fatalf("expected ErrInvalidModulus, got %v", err)
	}
}

func TestArithmeticModulusMismatch(t *testing.T) {
	a := mustResidue(t, 3, 13)
	b := mustResidue(t, 3, 11)
	if _, err := a.Add(b); err != ErrModulusMismatch {
		t.Fatalf("Add: expected ErrModulusMismatch, got %v", err)
	}
	if _, err := a.Sub(b); err != ErrModulusMismatch {
		t.Fatalf("Sub: expected ErrModulusMismatch, got %v", err)
	}
	if _, err := a.Mul(b); err != ErrModulusMismatch {
		t.Fatalf("Mul: expected ErrModulusMismatch, got %v", err)
	}
	if _, err := a.Div(b); err != ErrModulusMismatch {
		t.Fatalf("Div: expected ErrModulusMismatch, got %v", err)
	}
}

func TestInverseNoInverse(t *testing.T) {
	a := mustResidue(t, 2, 6)
	if _, err := a.Inverse(); err != ErrNoInverse {
		t.Fatalf("expected ErrNoInverse, got %v", err)
	}
	zero := mustResidue(t, 0, 1000000007)
	if _, err := zero.Inverse(); err != ErrNoInverse {
		t.Fatalf("expected ErrNoInverse for zero, got %v", err)
	}
}

func TestModularInverseValues(t *testing.T) {
	cases := []struct{ a, m, want int64 }{
		{2, 5, 3},
		{1, 5, 1},
	}
	for _, c := range cases {
		r := mustResidue(t, c.a, c.m)
		inv, err := r.Inverse()
		if err != nil {
			t.Fatalf("Inverse(%d,%d): %v", c.a, c.m, err)
		}
		if inv.ToInt().Cmp(bi(c.want)) != 0 {
			t.Errorf("Inverse(%d,%d) = %s, want %d", c.a, c.m, inv.ToInt(), c.want)
		}
	}

	big1 := mustResidue(t, 123456789, 1000000007)
	inv, err := big1.Inverse()
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	if inv.ToInt().Cmp(bi(18633540)) != 0 {
		t.Errorf("Inverse(123456789, 1e9+7) = %s, want 18633540", inv.ToInt())
	}
}

func TestNeg(t *testing.T) {
	r := mustResidue(t, 5, 13)
	neg := r.Neg()
	if neg.ToInt().Cmp(bi(8)) != 0 {
		t.Errorf("Neg(5 mod 13) = %s, want 8", neg.ToInt())
	}
	sum, err := r.Add(neg)
	if err != nil {
		t.Fatal(err)
	}
	if sum.ToInt().Sign() != 0 {
		t.Errorf("r + (-r) = %s, want 0", sum.ToInt())
	}
}

func TestPow(t *testing.T) {
	r := mustResidue(t, 3, 13)
	got, err := r.Pow(bi(0))
	if err != nil {
		t.Fatal(err)
	}
	if got.ToInt().Cmp(bi(1)) != 0 {
		t.Errorf("3^0 mod 13 = %s, want 1", got.ToInt())
	}

	got, err = r.Pow(bi(5))
	if err != nil {
		t.Fatal(err)
	}
	want := new(big.Int).Exp(bi(3), bi(5), bi(13))
	if got.ToInt().Cmp(want) != 0 {
		t.Errorf("3^5 mod 13 = %s, want %s", got.ToInt(), want)
	}

	if _, err := r.Pow(bi(-1)); err != ErrNegativeExponent {
		t.Fatalf("expected ErrNegativeExponent, got %v", err)
	}
}

func TestFieldLaws(t *testing.T) {
	const p = 13
	field, err := NewPrimeField(bi(p))
	if err != nil {
		t.Fatal(err)
	}
	elems := field.All()

	for _, a := range elems {
		for _, b := range elems {
			for _, c := range elems {
				ab, _ := a.Add(b)
				lhs, _ := ab.Add(c)
				bc, _ := b.Add(c)
				rhs, _ := a.Add(bc)
				if !lhs.Equal(rhs) {
					t.Fatalf("associativity of + failed for %s,%s,%s", a, b, c)
				}
			}
		}
	}

	zero, _ := New(bi(0), bi(p))
	one, _ := New(bi(1), bi(p))
	for _, a := range elems {
		sum, _ := a.Add(zero)
		if !sum.Equal(a) {
			t.Fatalf("a+0 != a for %s", a)
		}
		prod, _ := a.Mul(one)
		if !prod.Equal(a) {
			t.Fatalf("a*1 != a for %s", a)
		}
		if a.ToInt().Sign() != 0 {
			inv, err := a.Inverse()
			if err != nil {
				t.Fatalf("Inverse(%s): %v", a, err)
			}
			prod, _ := a.Mul(inv)
			if !prod.Equal(one) {
				t.Fatalf("a*a^-1 != 1 for %s", a)
			}
		}
	}

	for _, a := range elems {
		for _, b := range elems {
			for _, c := range elems {
				bc, _ := b.Add(c)
				lhs, _ := a.Mul(bc)
				ab, _ := a.Mul(b)
				ac, _ := a.Mul(c)
				rhs, _ := ab.Add(ac)
				if !lhs.Equal(rhs) {
					t.Fatalf("distributivity failed for %s,%s,%s", a, b, c)
				}
			}
		}
	}
}

