package curve

import (
	"math/big"
	"testing"

	"github.com/arlyon/goecc/point"
)

// TestMontgomeryAddDoubleConsistency checks that ScalarMult(P, 2) and
// Double(P) agree, and that ScalarMult(P, 3) and Add(P, Double(P)) agree,
// over a small Montgomery curve found by exhaustive search: b*y^2 = x^3 +
// a*x^2 + x over GF(13) with a=3, b=1.
func TestMontgomeryAddDoubleConsistency(t *testing.T) {
	c, err := NewMontgomery(big.NewInt(3), big.NewInt(1), big.NewInt(13))
	if err != nil {
		t.Fatalf("NewMontgomery: %v", err)
	}

	pts, err := c.Points()
	if err != nil {
		t.Fatal(err)
	}

	var G point.Point
	for _, p := range pts {
		if _, ok := p.(point.Infinity); ok {
			continue
		}
		G = p
		break
	}
	if G == nil {
		t.Fatal("toy Montgomery curve has no affine points")
	}

	doubled, err := c.Double(G, true)
	if err != nil {
		t.Fatalf("Double: %v", err)
	}
	viaMult, err := c.ScalarMult(G, big.NewInt(2), true)
	if err != nil {
		t.Fatalf("ScalarMult(2): %v", err)
	}
	if !point.Equal(doubled, viaMult) {
		t.Fatalf("Double(G) = %v, ScalarMult(G, 2) = %v", doubled, viaMult)
	}

	added, err := c.Add(G, doubled, true)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	viaMult3, err := c.ScalarMult(G, big.NewInt(3), true)
	if err != nil {
		t.Fatalf("ScalarMult(3): %v", err)
	}
	if !point.Equal(added, viaMult3) {
		t.Fatalf("G + 2G = %v, ScalarMult(G, 3) = %v", added, viaMult3)
	}
}

func TestMontgomerySingularRejected(t *testing.T) {
	if _, err := NewMontgomery(big.NewInt(2), big.NewInt(0), big.NewInt(13)); err != ErrSingularCurve {
		t.Fatalf("b=0: expected ErrSingularCurve, got %v", err)
	}
	if _, err := NewMontgomery(big.NewInt(3), big.NewInt(1), big.NewInt(13)); err != nil {
		t.Fatalf("valid params unexpectedly rejected: %v", err)
	}
	// a^2 = 4 (mod 13): a = 2 gives a^2 = 4 exactly, which is singular.
	if _, err := NewMontgomery(big.NewInt(15), big.NewInt(1), big.NewInt(13)); err != ErrSingularCurve {
		t.Fatalf("a=15 (=2 mod 13): expected ErrSingularCurve, got %v", err)
	}
}

func TestMontgomeryCreatePointOffCurve(t *testing.T) {
	c, err := NewMontgomery(big.NewInt(3), big.NewInt(1), big.NewInt(13))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.CreatePoint(big.NewInt(1), big.NewInt(1)); err != ErrPointNotOnCurve {
		t.Fatalf("expected ErrPointNotOnCurve, got %v", err)
	}
}

func TestMontgomeryInfinityIdentity(t *testing.T) {
	c, err := NewMontgomery(big.NewInt(3), big.NewInt(1), big.NewInt(13))
	if err != nil {
		t.Fatal(err)
	}
	pts, err := c.Points()
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range pts {
		sum, err := c.Add(p, c.Infinity(), true)
		if err != nil {
			t.Fatalf("Add(%v, Infinity): %v", p, err)
		}
		if !point.Equal(sum, p) {
			t.Fatalf("%v + Infinity = %v, want %v", p, sum, p)
		}
	}
}
