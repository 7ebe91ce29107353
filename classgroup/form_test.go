package classgroup

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSmallGroupAxioms(t *testing.T) {
	for disc, h := range smallClassNumbers {
		t.Run(fmt.Sprint(disc), func(t *testing.T) {
			d, err := NewDiscriminant(big.NewInt(disc))
			require.NoError(t, err)
			forms := enumerate(t, d)
			require.Len(t, forms, h)

			id := Identity(d)
			inForms := func(f *QuadraticForm) bool {
				for _, g := range forms {
					if g.Equal(f) {
						return true
					}
				}
				return false
			}

			for _, x := range forms {
				require.True(t, x.IsReduced())

				xi, err := x.Compose(id)
				require.NoError(t, err)
				require.True(t, xi.Equal(x), "x * 1 = x for %v", x)

				inv, err := x.Compose(x.Inverse())
				require.NoError(t, err)
				require.True(t, inv.IsIdentity(), "x * x^-1 = 1 for %v", x)

				dbl, err := x.Double()
				require.NoError(t, err)
				sq, err := x.Compose(x)
				require.NoError(t, err)
				require.True(t, dbl.Equal(sq), "x^2 for %v", x)

				order, err := x.Mul(big.NewInt(int64(h)))
				require.NoError(t, err)
				require.True(t, order.IsIdentity(), "x^h = 1 for %v", x)

				for _, y := range forms {
					xy, err := x.Compose(y)
					require.NoError(t, err)
					yx, err := y.Compose(x)
					require.NoError(t, err)
					require.True(t, xy.IsReduced())
					require.True(t, xy.Equal(yx), "%v * %v", x, y)
					require.True(t, inForms(xy))
				}
			}

			// Associativity on a sample of triples.
			for i, x := range forms {
				y := forms[(3*i+1)%h]
				z := forms[(7*i+2)%h]
				xy, err := x.Compose(y)
				require.NoError(t, err)
				l, err := xy.Compose(z)
				require.NoError(t, err)
				yz, err := y.Compose(z)
				require.NoError(t, err)
				r, err := x.Compose(yz)
				require.NoError(t, err)
				require.True(t, l.Equal(r))
			}
		})
	}
}

func TestLargeGroupAxioms(t *testing.T) {
	discs := []string{disc128, disc128Mod5, disc256}
	d1024, err := KnownDiscriminant(1024)
	require.NoError(t, err)

	for i, s := range append(discs, d1024.String()) {
		d := mustDisc(t, s)
		t.Run(fmt.Sprintf("%d-bit", d.Bits()), func(t *testing.T) {
			x := randomForm(t, d, fmt.Sprintf("x%d", i))
			y := randomForm(t, d, fmt.Sprintf("y%d", i))
			z := randomForm(t, d, fmt.Sprintf("z%d", i))

			xy, err := x.Compose(y)
			require.NoError(t, err)
			yx, err := y.Compose(x)
			require.NoError(t, err)
			require.True(t, xy.Equal(yx))
			require.True(t, xy.IsReduced())

			l, err := xy.Compose(z)
			require.NoError(t, err)
			yz, err := y.Compose(z)
			require.NoError(t, err)
			r, err := x.Compose(yz)
			require.NoError(t, err)
			require.True(t, l.Equal(r))

			unit, err := x.Compose(x.Inverse())
			require.NoError(t, err)
			require.True(t, unit.IsIdentity())
			require.True(t, unit.Equal(Identity(d)))

			dbl, err := x.Double()
			require.NoError(t, err)
			sq, err := x.Compose(x)
			require.NoError(t, err)
			require.True(t, dbl.Equal(sq))

			g := Generator(d)
			gd, err := g.Double()
			require.NoError(t, err)
			gs, err := g.Compose(g)
			require.NoError(t, err)
			require.True(t, gd.Equal(gs))
		})
	}
}

func TestMul(t *testing.T) {
	d := mustDisc(t, disc128)
	g := Generator(d)

	t.Run("Zero", func(t *testing.T) {
		r, err := g.Mul(big.NewInt(0))
		require.NoError(t, err)
		require.True(t, r.IsIdentity())
	})

	t.Run("One", func(t *testing.T) {
		r, err := g.Mul(big.NewInt(1))
		require.NoError(t, err)
		require.True(t, r.Equal(g))
	})

	t.Run("RepeatedComposition", func(t *testing.T) {
		acc := Identity(d)
		for e := int64(1); e <= 40; e++ {
			var err error
			acc, err = acc.Compose(g)
			require.NoError(t, err)
			r, err := g.Mul(big.NewInt(e))
			require.NoError(t, err)
			require.True(t, r.Equal(acc), "g^%d", e)
		}
	})

	t.Run("Negative", func(t *testing.T) {
		p, err := g.Mul(big.NewInt(77))
		require.NoError(t, err)
		n, err := g.Mul(big.NewInt(-77))
		require.NoError(t, err)
		require.True(t, n.Equal(p.Inverse()))
		prod, err := p.Compose(n)
		require.NoError(t, err)
		require.True(t, prod.IsIdentity())
	})

	t.Run("Vector", func(t *testing.T) {
		r, err := g.Mul(big.NewInt(1234))
		require.NoError(t, err)
		require.Equal(t, "(3946654336267428124, -2947198718314860805, 21895957005807519597)", r.String())
	})

	t.Run("InputUnchanged", func(t *testing.T) {
		e := big.NewInt(-1000)
		_, err := g.Mul(e)
		require.NoError(t, err)
		require.Equal(t, int64(-1000), e.Int64())
		require.Equal(t, "(2, 1, 42122139296193114771352888168143817011)", g.String())
	})
}

// TestExponentAddition checks g^1234 * g^4321 = g^5555 on every known
// discriminant, plus the smaller test discriminants.
func TestExponentAddition(t *testing.T) {
	var discs []*Discriminant
	for _, s := range []string{disc64, disc128, disc128Mod5, disc256, disc512} {
		discs = append(discs, mustDisc(t, s))
	}
	for _, bits := range KnownDiscriminantSizes() {
		if testing.Short() && bits > 1024 {
			continue
		}
		d, err := KnownDiscriminant(bits)
		require.NoError(t, err)
		discs = append(discs, d)
	}

	for _, d := range discs {
		t.Run(fmt.Sprintf("%d-bit", d.Bits()), func(t *testing.T) {
			g := Generator(d)
			x, err := g.Mul(big.NewInt(1234))
			require.NoError(t, err)
			y, err := g.Mul(big.NewInt(4321))
			require.NoError(t, err)
			z, err := x.Compose(y)
			require.NoError(t, err)
			want, err := g.Mul(big.NewInt(5555))
			require.NoError(t, err)
			require.True(t, z.Equal(want))
			require.True(t, z.IsReduced())
		})
	}
}

func TestGenerator(t *testing.T) {
	cases := []struct {
		disc string
		want string
	}{
		{"-23", "(2, 1, 3)"},
		{"-59", "(3, 1, 5)"},
		{"-83", "(3, 1, 7)"},
		{"-107", "(3, 1, 9)"},
		{"-131", "(3, 1, 11)"},
		{"-139", "(5, 1, 7)"},
		{disc128Mod5, "(3, 1, 24258578294141330811819550278341873429)"},
	}
	for _, tc := range cases {
		t.Run(tc.disc, func(t *testing.T) {
			g := Generator(mustDisc(t, tc.disc))
			require.Equal(t, tc.want, g.String())
			require.True(t, g.IsReduced())
			require.False(t, g.IsIdentity())
		})
	}

	t.Run("ClassNumberOne", func(t *testing.T) {
		d := mustDisc(t, "-43")
		require.True(t, Generator(d).Equal(Identity(d)))
	})
}

func TestIdentity(t *testing.T) {
	d := mustDisc(t, disc64)
	id := Identity(d)
	require.Equal(t, "(1, 1, 4077282903477819938)", id.String())
	require.True(t, id.IsIdentity())
	require.True(t, id.IsReduced())
	require.True(t, id.Inverse().Equal(id))

	dbl, err := id.Double()
	require.NoError(t, err)
	require.True(t, dbl.IsIdentity())
}

func TestReduction(t *testing.T) {
	d := mustDisc(t, disc256)
	f := randomForm(t, d, "reduction")

	t.Run("Idempotent", func(t *testing.T) {
		g, err := NewForm(f.A(), f.B(), d)
		require.NoError(t, err)
		require.True(t, g.Equal(f))
	})

	t.Run("EquivalentForms", func(t *testing.T) {
		// (a, b + 2ak, ...) is properly equivalent to (a, b, c).
		for _, k := range []int64{-5, -1, 1, 2, 1000} {
			b := new(big.Int).Mul(f.a, big.NewInt(2*k))
			b.Add(b, f.b)
			g, err := NewForm(f.A(), b, d)
			require.NoError(t, err)
			require.True(t, g.Equal(f), "translation by %d", k)
		}
		// (c, -b, a) is the image under (x, y) -> (-y, x).
		g, err := NewForm(f.C(), new(big.Int).Neg(f.b), d)
		require.NoError(t, err)
		require.True(t, g.Equal(f))
	})

	t.Run("Boundary", func(t *testing.T) {
		small := mustDisc(t, "-23")
		// b = -a is normalized to b = a.
		g, err := NewForm(big.NewInt(1), big.NewInt(-1), mustDisc(t, "-7"))
		require.NoError(t, err)
		require.Equal(t, "(1, 1, 2)", g.String())
		// (2, -1, 3) is reduced and kept.
		g, err = NewForm(big.NewInt(2), big.NewInt(-1), small)
		require.NoError(t, err)
		require.Equal(t, "(2, -1, 3)", g.String())
		// a = c forces b >= 0.
		require.False(t, isReduced(big.NewInt(3), big.NewInt(-1), big.NewInt(3)))
		require.True(t, isReduced(big.NewInt(3), big.NewInt(1), big.NewInt(3)))
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := NewForm(big.NewInt(0), big.NewInt(1), d)
		require.ErrorIs(t, err, ErrReduction)
		_, err = NewForm(big.NewInt(-2), big.NewInt(1), d)
		require.ErrorIs(t, err, ErrReduction)
		// 4a does not divide b^2 - D for even b.
		_, err = NewForm(big.NewInt(2), big.NewInt(2), d)
		require.ErrorIs(t, err, ErrReduction)

		_, err = reduce(big.NewInt(1), big.NewInt(1), big.NewInt(1), d)
		require.ErrorIs(t, err, ErrReduction)
	})

	t.Run("AccessorsCopy", func(t *testing.T) {
		before := f.String()
		f.A().SetInt64(0)
		f.B().SetInt64(0)
		f.C().SetInt64(0)
		require.Equal(t, before, f.String())
	})
}

func TestInverse(t *testing.T) {
	d := mustDisc(t, "-23")
	g := Generator(d)
	require.Equal(t, "(2, -1, 3)", g.Inverse().String())
	require.True(t, g.Inverse().Inverse().Equal(g))

	// Ambiguous forms are their own inverse.
	id := Identity(d)
	require.True(t, id.Inverse().Equal(id))
}

func TestDiscriminantMismatch(t *testing.T) {
	x := Generator(mustDisc(t, "-23"))
	y := Generator(mustDisc(t, "-47"))
	_, err := x.Compose(y)
	require.ErrorIs(t, err, ErrDiscriminantMismatch)
	require.False(t, x.Equal(y))
}
