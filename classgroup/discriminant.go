package classgroup

import (
	"fmt"
	"math/big"
)

// primalityRounds is the Miller-Rabin round count passed to ProbablyPrime.
const primalityRounds = 20

var (
	one  = big.NewInt(1)
	four = big.NewInt(4)
)

// Discriminant is a validated negative fundamental discriminant D. It is
// immutable after construction and safe to share between goroutines;
// every form computed against it holds a pointer to the same value.
type Discriminant struct {
	d    *big.Int
	bits int
}

// NewDiscriminant validates d and returns it as a Discriminant. It fails
// with ErrInvalidDiscriminant unless d < 0, d = 1 (mod 4) and -d is a
// probable prime. The input is copied.
func NewDiscriminant(d *big.Int) (*Discriminant, error) {
	if d == nil || d.Sign() >= 0 {
		return nil, fmt.Errorf("%w: must be negative", ErrInvalidDiscriminant)
	}
	if new(big.Int).Mod(d, four).Cmp(one) != 0 {
		return nil, fmt.Errorf("%w: must be 1 mod 4", ErrInvalidDiscriminant)
	}
	n := new(big.Int).Neg(d)
	if !n.ProbablyPrime(primalityRounds) {
		return nil, fmt.Errorf("%w: |D| is not prime", ErrInvalidDiscriminant)
	}
	return &Discriminant{d: new(big.Int).Set(d), bits: n.BitLen()}, nil
}

// DiscriminantFromString parses a base-10 integer and validates it with
// NewDiscriminant.
func DiscriminantFromString(s string) (*Discriminant, error) {
	d, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: cannot parse %q", ErrInvalidDiscriminant, s)
	}
	return NewDiscriminant(d)
}

// Bits returns the bit length of |D|.
func (d *Discriminant) Bits() int {
	return d.bits
}

// Int returns a copy of D.
func (d *Discriminant) Int() *big.Int {
	return new(big.Int).Set(d.d)
}

// Equal reports whether d and o are the same discriminant.
func (d *Discriminant) Equal(o *Discriminant) bool {
	if d == o {
		return true
	}
	if d == nil || o == nil {
		return false
	}
	return d.d.Cmp(o.d) == 0
}

func (d *Discriminant) String() string {
	return d.d.String()
}

// coefficientSize is the width in bytes of one encoded coefficient.
func (d *Discriminant) coefficientSize() int {
	return (d.bits + 16) >> 4
}
