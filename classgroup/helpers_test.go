package classgroup

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// Prime discriminants of increasing size, all D = 1 (mod 8).
const (
	disc64  = "-16309131613911279751"
	disc128 = "-336977114369544918170823105345150536087"
	disc256 = "-99464792629170236577949027655550604096348753439320832087725237220318416766647"
	disc512 = "-10502399977721252403061119728212445397817326516631050195781732172119083053435360191713063018441517851618653983908505763078964870179364427224951078888200183"

	// D = 5 (mod 8), so the generator is not (2, 1, ...).
	disc128Mod5 = "-291102939529695969741834603340102481147"
)

// Class numbers of small prime discriminants.
var smallClassNumbers = map[int64]int{
	-23:   3,
	-47:   5,
	-71:   7,
	-199:  9,
	-503:  21,
	-1031: 35,
	-4391: 79,
	-9887: 75,
}

func mustDisc(t testing.TB, s string) *Discriminant {
	t.Helper()
	d, err := DiscriminantFromString(s)
	require.NoError(t, err)
	return d
}

func bi(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad integer " + s)
	}
	return n
}

// enumerate lists every reduced form of discriminant d by brute force.
func enumerate(t testing.TB, d *Discriminant) []*QuadraticForm {
	t.Helper()
	var forms []*QuadraticForm
	n := new(big.Int).Neg(d.d).Int64()
	for a := int64(1); 3*a*a <= n; a++ {
		for b := -a + 1; b <= a; b++ {
			num := b*b + n
			if num%(4*a) != 0 {
				continue
			}
			c := num / (4 * a)
			if !isReduced(big.NewInt(a), big.NewInt(b), big.NewInt(c)) {
				continue
			}
			f, err := NewForm(big.NewInt(a), big.NewInt(b), d)
			require.NoError(t, err)
			require.Equal(t, c, f.c.Int64())
			forms = append(forms, f)
		}
	}
	return forms
}

func randomForm(t testing.TB, d *Discriminant, seed string) *QuadraticForm {
	t.Helper()
	f, err := HashToGroup([]byte(seed), d, 0)
	require.NoError(t, err)
	return f
}
