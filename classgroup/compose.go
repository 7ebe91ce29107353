package classgroup

import (
	"math/big"

	"github.com/f3rmion/vdf/internal/bigint"
)

// Compose returns the class-group product of f and g (Cohen, "A Course in
// Computational Algebraic Number Theory", Algorithm 5.4.7) in reduced
// form. Returns ErrDiscriminantMismatch if f and g belong to different
// discriminants.
func (f *QuadraticForm) Compose(g *QuadraticForm) (*QuadraticForm, error) {
	if !f.disc.Equal(g.disc) {
		return nil, ErrDiscriminantMismatch
	}
	x, y := f, g
	if x.a.Cmp(y.a) > 0 {
		x, y = y, x
	}

	var sc bigint.Scratch
	defer sc.Release()
	t := sc.Int()

	// s = (b1 + b2)/2, n = b2 - s. b1 and b2 share the parity of D.
	s := sc.Int().Add(x.b, y.b)
	s.Rsh(s, 1)
	n := sc.Int().Sub(y.b, s)

	// u*a2 + v*a1 = d = gcd(a1, a2), y1 = u.
	d, y1 := sc.Int(), sc.Int()
	if t.Mod(y.a, x.a).Sign() == 0 {
		y1.SetInt64(0)
		d.Set(x.a)
	} else {
		d.GCD(y1, nil, y.a, x.a)
	}

	// x2*s + y2*d = d1 = gcd(s, d), then y2 = -y2.
	x2, y2, d1 := sc.Int(), sc.Int(), sc.Int()
	if t.Mod(s, d).Sign() == 0 {
		x2.SetInt64(0)
		y2.SetInt64(-1)
		d1.Set(d)
	} else {
		d1.GCD(x2, y2, s, d)
		y2.Neg(y2)
	}

	v1 := sc.Int().Quo(x.a, d1)
	v2 := sc.Int().Quo(y.a, d1)

	// r = y1*y2*n - x2*c2 (mod v1)
	r := sc.Int().Mul(y1, y2)
	r.Mul(r, n)
	r.Sub(r, t.Mul(x2, y.c))
	r.Mod(r, v1)

	b3 := new(big.Int).Mul(v2, r)
	b3.Lsh(b3, 1)
	b3.Add(b3, y.b)
	a3 := new(big.Int).Mul(v1, v2)
	return fromAB(a3, b3, f.disc)
}

// Double returns f composed with itself (Cohen, Algorithm 5.4.8). It is
// Algorithm 5.4.7 with a1 = a2 and b1 = b2, which removes the first
// extended GCD, and returns the same reduced form as f.Compose(f).
func (f *QuadraticForm) Double() (*QuadraticForm, error) {
	var sc bigint.Scratch
	defer sc.Release()

	// x2*b + y2*a = d1 = gcd(b, a)
	x2, d1 := sc.Int(), sc.Int()
	d1.GCD(x2, nil, f.b, f.a)
	v := sc.Int().Quo(f.a, d1)

	// r = -x2*c (mod v)
	r := sc.Int().Mul(x2, f.c)
	r.Neg(r)
	r.Mod(r, v)

	b3 := new(big.Int).Mul(v, r)
	b3.Lsh(b3, 1)
	b3.Add(b3, f.b)
	a3 := new(big.Int).Mul(v, v)
	return fromAB(a3, b3, f.disc)
}

// Inverse returns (a, -b, c) in reduced form. Ambiguous forms, those with
// b = 0, b = a or a = c, are their own inverse.
func (f *QuadraticForm) Inverse() *QuadraticForm {
	return mustReduce(new(big.Int).Set(f.a), new(big.Int).Neg(f.b), new(big.Int).Set(f.c), f.disc)
}

// Mul returns f raised to the power e by left-to-right square and
// multiply over Double and Compose. Negative exponents invert f first and
// Mul(0) is the identity.
//
// The sequence of doublings depends only on the bit length of e, but
// whether a composition follows each doubling depends on the bit values.
// Mul is therefore not constant time and must not be used with secret
// exponents; the exponents of a delay function are public.
func (f *QuadraticForm) Mul(e *big.Int) (*QuadraticForm, error) {
	if e.Sign() == 0 {
		return Identity(f.disc), nil
	}
	base := f
	if e.Sign() < 0 {
		base = f.Inverse()
	}
	k := new(big.Int).Abs(e)

	acc := base
	var err error
	for i := k.BitLen() - 2; i >= 0; i-- {
		if acc, err = acc.Double(); err != nil {
			return nil, err
		}
		if k.Bit(i) == 1 {
			if acc, err = acc.Compose(base); err != nil {
				return nil, err
			}
		}
	}
	return acc, nil
}
