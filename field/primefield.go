package field

import (
	"crypto/rand"
	"math/big"
)

// DefaultMillerRabinTrials is the number of Miller-Rabin rounds used by
// NewPrimeField when the caller does not specify a trial count.
const DefaultMillerRabinTrials = 5

// PrimeField wraps a validated odd prime p and supports membership testing,
// cardinality, and in-order iteration over {0, 1, ..., p-1}.
type PrimeField struct {
	p *big.Int
}

// NewPrimeField validates p as an odd prime using DefaultMillerRabinTrials
// rounds of Miller-Rabin and, on success, returns a PrimeField over GF(p).
// It fails with ErrInvalidFieldParameter if p is not an odd prime.
func NewPrimeField(p *big.Int) (*PrimeField, error) {
	return NewPrimeFieldTrials(p, DefaultMillerRabinTrials)
}

// NewPrimeFieldTrials is NewPrimeField with an explicit Miller-Rabin trial
// count.
func NewPrimeFieldTrials(p *big.Int, trials int) (*PrimeField, error) {
	if p.Cmp(big.NewInt(2)) == 0 || !millerRabin(p, trials) {
		return nil, ErrInvalidFieldParameter
	}
	return &PrimeField{p: new(big.Int).Set(p)}, nil
}

// Prime returns the field's order p.
func (f *PrimeField) Prime() *big.Int {
	return new(big.Int).Set(f.p)
}

// Card returns the cardinality of the field, i.e. p.
func (f *PrimeField) Card() *big.Int {
	return f.Prime()
}

// Contains reports whether r belongs to the field, i.e. shares the field's
// modulus.
func (f *PrimeField) Contains(r *Residue) bool {
	return r.m.Cmp(f.p) == 0
}

// Iterator returns a function that yields successive residues
// Residue(0,p), Residue(1,p), ..., Residue(p-1,p), and then (nil, false).
// Intended for use as: for it := field.Iterator(); ; { r, ok := it(); ... }
func (f *PrimeField) Iterator() func() (*Residue, bool) {
	current := big.NewInt(0)
	return func() (*Residue, bool) {
		if current.Cmp(f.p) >= 0 {
			return nil, false
		}
		r, _ := New(current, f.p) // current is already in range, never errors
		current = new(big.Int).Add(current, big.NewInt(1))
		return r, true
	}
}

// All materializes the full field as a slice; only practical for small p,
// mirroring the spec's guidance that Curve.Points is exhaustive and thus
// small-field-only.
func (f *PrimeField) All() []*Residue {
	out := make([]*Residue, 0)
	it := f.Iterator()
	for {
		r, ok := it()
		if !ok {
			return out
		}
		out = append(out, r)
	}
}

// String implements fmt.Stringer.
func (f *PrimeField) String() string {
	return "GF(" + f.p.String() + ")"
}

// millerRabin performs the Miller-Rabin primality test with k independent
// trials, following the structure of the textbook algorithm: n is declared
// prime with probability of error at most 4^-k when composite.
func millerRabin(n *big.Int, k int) bool {
	two := big.NewInt(2)
	three := big.NewInt(3)
	if n.Cmp(two) == 0 || n.Cmp(three) == 0 {
		return true
	}
	if n.Cmp(big.NewInt(1)) <= 0 || n.Bit(0) == 0 {
		return false
	}

	// n - 1 = 2^s * d, with d odd.
	nMinusOne := new(big.Int).Sub(n, big.NewInt(1))
	d := new(big.Int).Set(nMinusOne)
	s := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s++
	}

	// a is sampled uniformly from [2, n-2].
	span := new(big.Int).Sub(n, big.NewInt(3))
	for i := 0; i < k; i++ {
		a, err := rand.Int(rand.Reader, span)
		if err != nil {
			return false
		}
		a.Add(a, two)

		x := new(big.Int).Exp(a, d, n)
		if x.Cmp(big.NewInt(1)) == 0 || x.Cmp(nMinusOne) == 0 {
			continue
		}

		composite := true
		for j := 0; j < s-1; j++ {
			x.Mul(x, x)
			x.Mod(x, n)
			if x.Cmp(nMinusOne) == 0 {
				composite = false
				break
			}
		}
		if composite {
			return false
		}
	}
	return true
}
