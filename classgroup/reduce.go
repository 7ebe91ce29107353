package classgroup

import (
	"fmt"
	"math/big"

	"github.com/f3rmion/vdf/internal/bigint"
)

// fromAB completes (a, b) to a form of discriminant d using
// c = (b^2 - D)/4a and reduces it. It takes ownership of a and b.
func fromAB(a, b *big.Int, d *Discriminant) (*QuadraticForm, error) {
	if a.Sign() <= 0 {
		return nil, fmt.Errorf("%w: a = %s is not positive", ErrReduction, a)
	}
	var s bigint.Scratch
	defer s.Release()

	c := new(big.Int).Mul(b, b)
	c.Sub(c, d.d)
	if !bigint.ExactQuo(c, c, s.Int().Lsh(a, 2)) {
		return nil, fmt.Errorf("%w: 4a does not divide b^2 - D", ErrReduction)
	}
	a, b, c = normalize(a, b, c, &s)
	return &QuadraticForm{a: a, b: b, c: c, disc: d}, nil
}

// reduce checks that (a, b, c) is a positive definite form of
// discriminant d and returns its reduction. It takes ownership of a, b
// and c.
func reduce(a, b, c *big.Int, d *Discriminant) (*QuadraticForm, error) {
	if a.Sign() <= 0 {
		return nil, fmt.Errorf("%w: a = %s is not positive", ErrReduction, a)
	}
	var s bigint.Scratch
	defer s.Release()

	t, u := s.Int().Mul(b, b), s.Int().Mul(a, c)
	t.Sub(t, u.Lsh(u, 2))
	if t.Cmp(d.d) != 0 {
		return nil, fmt.Errorf("%w: b^2 - 4ac = %s, want %s", ErrReduction, t, d.d)
	}
	a, b, c = normalize(a, b, c, &s)
	return &QuadraticForm{a: a, b: b, c: c, disc: d}, nil
}

func mustReduce(a, b, c *big.Int, d *Discriminant) *QuadraticForm {
	f, err := reduce(a, b, c, d)
	if err != nil {
		panic(err)
	}
	return f
}

// normalize reduces (a, b, c), overwriting the three values, and returns
// them in reduced order. The steps alternate a Euclidean normalisation of
// b into (-a, a] with the swap (a, b, c) -> (c, -b, a) until a <= c, so
// the loop runs a number of times logarithmic in a/c.
func normalize(a, b, c *big.Int, s *bigint.Scratch) (*big.Int, *big.Int, *big.Int) {
	t, twoA, q, r := s.Int(), s.Int(), s.Int(), s.Int()
	for {
		if t.Add(b, a).Sign() <= 0 || b.Cmp(a) > 0 {
			// b = 2aq + r with -a < r <= a; c -= q(b + r)/2.
			twoA.Lsh(a, 1)
			q.DivMod(b, twoA, r)
			if r.Cmp(a) > 0 {
				r.Sub(r, twoA)
				q.Add(q, one)
			}
			t.Add(b, r)
			t.Rsh(t, 1)
			t.Mul(t, q)
			c.Sub(c, t)
			b.Set(r)
		}
		if a.Cmp(c) > 0 {
			b.Neg(b)
			a, c = c, a
			continue
		}
		if a.Cmp(c) == 0 && b.Sign() < 0 {
			b.Neg(b)
		}
		return a, b, c
	}
}
