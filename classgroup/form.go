package classgroup

import (
	"fmt"
	"math/big"

	"github.com/f3rmion/vdf/group"
	"github.com/f3rmion/vdf/internal/bigint"
)

// QuadraticForm is a reduced binary quadratic form a*x^2 + b*x*y + c*y^2
// with b^2 - 4ac = D, representing one element of the class group Cl(D).
//
// Forms are immutable. Every constructor and group operation returns a
// newly allocated form in reduced form, so two forms represent the same
// class exactly when their coefficients agree.
type QuadraticForm struct {
	a, b, c *big.Int
	disc    *Discriminant
}

var _ group.Element[*QuadraticForm] = (*QuadraticForm)(nil)

// Identity returns the principal form (1, 1, (1 - D)/4).
func Identity(d *Discriminant) *QuadraticForm {
	c := new(big.Int).Sub(one, d.d)
	c.Rsh(c, 2)
	return &QuadraticForm{a: big.NewInt(1), b: big.NewInt(1), c: c, disc: d}
}

// Generator returns the canonical base point of Cl(D).
//
// Let p be the smallest prime that splits in the order, that is the
// smallest prime for which D is a non-zero square modulo 4p. When
// D = 1 (mod 8) this is p = 2 and the generator is (2, 1, (1 - D)/8).
// Otherwise p is odd, b is the odd square root of D modulo p lying in
// (0, p), and the generator is the reduction of (p, b, (b^2 - D)/4p).
// The form is the identity only when the class number is one.
func Generator(d *Discriminant) *QuadraticForm {
	if new(big.Int).Mod(d.d, big.NewInt(8)).Cmp(one) == 0 {
		c := new(big.Int).Sub(one, d.d)
		c.Rsh(c, 3)
		return mustReduce(big.NewInt(2), big.NewInt(1), c, d)
	}

	p := big.NewInt(3)
	two := big.NewInt(2)
	dm := new(big.Int)
	for ; ; p.Add(p, two) {
		if big.Jacobi(dm.Mod(d.d, p), p) != 1 || !p.ProbablyPrime(primalityRounds) {
			continue
		}
		f, err := fromAB(new(big.Int).Set(p), bigint.OddSqrtMod(d.d, p), d)
		if err != nil {
			panic(err)
		}
		return f
	}
}

// NewForm returns the reduced form equivalent to (a, b, (b^2 - D)/4a).
// It fails with ErrReduction when a is not positive or 4a does not divide
// b^2 - D. The arguments are copied.
func NewForm(a, b *big.Int, d *Discriminant) (*QuadraticForm, error) {
	return fromAB(new(big.Int).Set(a), new(big.Int).Set(b), d)
}

// A returns a copy of the coefficient a.
func (f *QuadraticForm) A() *big.Int { return new(big.Int).Set(f.a) }

// B returns a copy of the coefficient b.
func (f *QuadraticForm) B() *big.Int { return new(big.Int).Set(f.b) }

// C returns a copy of the coefficient c.
func (f *QuadraticForm) C() *big.Int { return new(big.Int).Set(f.c) }

// Discriminant returns the discriminant the form belongs to.
func (f *QuadraticForm) Discriminant() *Discriminant { return f.disc }

// Equal reports whether f and g are the same class of the same discriminant.
func (f *QuadraticForm) Equal(g *QuadraticForm) bool {
	return f.disc.Equal(g.disc) &&
		f.a.Cmp(g.a) == 0 &&
		f.b.Cmp(g.b) == 0 &&
		f.c.Cmp(g.c) == 0
}

// IsIdentity reports whether f is the principal form.
func (f *QuadraticForm) IsIdentity() bool {
	return f.a.Cmp(one) == 0
}

// IsReduced reports whether -a < b <= a <= c, with b >= 0 when a = c.
// It holds for every form returned by this package.
func (f *QuadraticForm) IsReduced() bool {
	return isReduced(f.a, f.b, f.c)
}

func (f *QuadraticForm) String() string {
	return fmt.Sprintf("(%s, %s, %s)", f.a, f.b, f.c)
}

func isReduced(a, b, c *big.Int) bool {
	if a.Sign() <= 0 || b.CmpAbs(a) > 0 || a.Cmp(c) > 0 {
		return false
	}
	if b.CmpAbs(a) == 0 && b.Sign() < 0 {
		return false
	}
	return a.Cmp(c) != 0 || b.Sign() >= 0
}
