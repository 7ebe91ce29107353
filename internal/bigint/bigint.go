// Package bigint collects the exact integer helpers shared by the class
// group code. Everything here works on math/big values and never rounds.
package bigint

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/field/pool"
)

var (
	one = big.NewInt(1)

	// ErrOverflow is returned when a value does not fit the requested width.
	ErrOverflow = errors.New("bigint: value does not fit in buffer")
)

// Scratch hands out temporaries from gnark-crypto's shared *big.Int pool
// and returns them on Release. The zero value is ready to use. Values
// obtained from a Scratch hold arbitrary contents and must be written
// before they are read; they must never escape the calling operation.
type Scratch struct {
	held [16]*big.Int
	n    int
}

// Int returns a scratch integer.
func (s *Scratch) Int() *big.Int {
	v := pool.BigInt.Get()
	if s.n < len(s.held) {
		s.held[s.n] = v
		s.n++
	}
	return v
}

// Release puts every integer handed out by s back into the pool.
func (s *Scratch) Release() {
	for i := 0; i < s.n; i++ {
		pool.BigInt.Put(s.held[i])
		s.held[i] = nil
	}
	s.n = 0
}

// ExactQuo sets z to x/y and reports whether the division left no
// remainder. z is left holding the truncated quotient either way.
func ExactQuo(z, x, y *big.Int) bool {
	r := pool.BigInt.Get()
	defer pool.BigInt.Put(r)
	z.QuoRem(x, y, r)
	return r.Sign() == 0
}

// OddSqrtMod returns the square root of x modulo the odd prime p that is odd
// and lies in (0, p). Exactly one of the two roots r, p-r is odd, so the
// result does not depend on which root the underlying algorithm finds.
// It returns nil when x is zero or not a square mod p.
func OddSqrtMod(x, p *big.Int) *big.Int {
	xm := new(big.Int).Mod(x, p)
	if xm.Sign() == 0 {
		return nil
	}
	r := new(big.Int).ModSqrt(xm, p)
	if r == nil {
		return nil
	}
	if r.Bit(0) == 0 {
		r.Sub(p, r)
	}
	return r
}

// PutTwosComplement writes n into buf as a big-endian two's complement
// integer occupying exactly len(buf) bytes.
func PutTwosComplement(buf []byte, n *big.Int) error {
	width := uint(8 * len(buf))
	if width == 0 {
		return ErrOverflow
	}
	if n.Sign() >= 0 {
		if uint(n.BitLen()) > width-1 {
			return ErrOverflow
		}
		n.FillBytes(buf)
		return nil
	}
	// 2^width + n lies in [2^(width-1), 2^width) iff n fits.
	m := new(big.Int).Lsh(one, width)
	m.Add(m, n)
	if uint(m.BitLen()) != width {
		return ErrOverflow
	}
	m.FillBytes(buf)
	return nil
}

// TwosComplement decodes a big-endian two's complement integer.
func TwosComplement(buf []byte) *big.Int {
	n := new(big.Int).SetBytes(buf)
	if len(buf) > 0 && buf[0]&0x80 != 0 {
		m := new(big.Int).Lsh(one, uint(8*len(buf)))
		n.Sub(n, m)
	}
	return n
}
