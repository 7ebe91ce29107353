package classgroup

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"math/big"

	"github.com/f3rmion/vdf/internal/bigint"
)

// maxHashAttempts bounds the number of candidates drawn by HashToGroup.
// The expected number is about ln(2)*bits/2 for a bits-bit discriminant.
const maxHashAttempts = 1 << 16

// HashToGroup deterministically derives an element of Cl(D) from seed
// using the default SHAKE256 expander. See HashToGroupWith.
func HashToGroup(seed []byte, d *Discriminant, k uint32) (*QuadraticForm, error) {
	return HashToGroupWith(NewShake256Expander(), seed, d, k)
}

// HashToGroupWith derives an element of Cl(D) from seed.
//
// The expander absorbs uint32be(len(|D|)) || |D| || seed, where |D| is
// big-endian. With t = max(bits/2 - 1, 2), each attempt reads ceil(t/8)
// bytes, keeps the low t bits of the big-endian value and sets bits t-1
// and 0. The first candidate p that is a probable prime with Jacobi
// symbol (D/p) = 1 becomes the leading coefficient; b is the odd square
// root of D modulo p in (0, p). The resulting form (p, b, (b^2 - D)/4p)
// is reduced and then doubled k times, which moves it into the subgroup
// of 2^k-th powers.
//
// k must not exceed LargestAllowedK(d); otherwise ErrInvalidFoldingDepth
// is returned before any work is done. ErrHashToGroupExhausted is
// returned if no candidate is accepted within the attempt budget.
func HashToGroupWith(x Expander, seed []byte, d *Discriminant, k uint32) (*QuadraticForm, error) {
	if limit := LargestAllowedK(d); k > limit {
		return nil, fmt.Errorf("%w: k = %d exceeds %d for a %d-bit discriminant",
			ErrInvalidFoldingDepth, k, limit, d.bits)
	}
	f, err := sampleForm(x, seed, d)
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < k; i++ {
		if f, err = f.Double(); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func sampleForm(x Expander, seed []byte, d *Discriminant) (*QuadraticForm, error) {
	abs := new(big.Int).Neg(d.d).Bytes()
	var length [4]byte
	binary.BigEndian.PutUint32(length[:], uint32(len(abs)))
	stream := x.Expand(length[:], abs, seed)

	size := d.bits/2 - 1
	if size < 2 {
		size = 2
	}
	buf := make([]byte, (size+7)/8)
	mask := byte(0xff >> (8*len(buf) - size))

	p, dm := new(big.Int), new(big.Int)
	for i := 0; i < maxHashAttempts; i++ {
		if _, err := io.ReadFull(stream, buf); err != nil {
			return nil, fmt.Errorf("classgroup: expanding seed: %w", err)
		}
		buf[0] &= mask
		p.SetBytes(buf)
		p.SetBit(p, size-1, 1)
		p.SetBit(p, 0, 1)

		if big.Jacobi(dm.Mod(d.d, p), p) != 1 || !p.ProbablyPrime(primalityRounds) {
			continue
		}
		return fromAB(new(big.Int).Set(p), bigint.OddSqrtMod(d.d, p), d)
	}
	return nil, fmt.Errorf("%w: no candidate after %d attempts", ErrHashToGroupExhausted, maxHashAttempts)
}

// LargestAllowedK returns the largest folding depth HashToGroup accepts
// for d. With bits the bit length of |D|, lambda = 3*log2(bits) and
// L = bits/2 - 1, the bound is
//
//	floor((L - lambda) / (log2(L * ln 2) + 1))
//
// or 0 when L <= lambda. It is non-decreasing in bits; for the known
// discriminants it is 50 (1024 bits), 94 (2048), 108 (2400) and 135 (3072).
func LargestAllowedK(d *Discriminant) uint32 {
	return largestAllowedK(d.bits)
}

func largestAllowedK(bits int) uint32 {
	b := float64(bits)
	lambda := 3 * math.Log2(b)
	logB := b/2 - 1
	num := logB - lambda
	if num <= 0 {
		return 0
	}
	return uint32(math.Floor(num / (math.Log2(logB*math.Ln2) + 1)))
}
