package classgroup

import (
	"fmt"
	"math/big"

	"github.com/f3rmion/vdf/internal/bigint"
)

// Bytes returns the canonical encoding of f: a followed by b, each a
// big-endian two's complement integer of (bits + 16) >> 4 bytes, where
// bits is the bit length of |D|. The coefficient c is implied by D.
func (f *QuadraticForm) Bytes() []byte {
	n := f.disc.coefficientSize()
	buf := make([]byte, 2*n)
	// |b| <= a < sqrt(|D|/3) always fits a coefficient slot.
	if err := bigint.PutTwosComplement(buf[:n], f.a); err != nil {
		panic(err)
	}
	if err := bigint.PutTwosComplement(buf[n:], f.b); err != nil {
		panic(err)
	}
	return buf
}

// FormFromBytes decodes the canonical encoding of a form of discriminant
// d. It fails with ErrInvalidEncoding if buf has the wrong length, does
// not describe a form of discriminant d, or describes a form that is not
// reduced, so each class has exactly one accepted encoding.
func FormFromBytes(buf []byte, d *Discriminant) (*QuadraticForm, error) {
	n := d.coefficientSize()
	if len(buf) != 2*n {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidEncoding, len(buf), 2*n)
	}
	a := bigint.TwosComplement(buf[:n])
	b := bigint.TwosComplement(buf[n:])

	f, err := fromAB(new(big.Int).Set(a), new(big.Int).Set(b), d)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	if f.a.Cmp(a) != 0 || f.b.Cmp(b) != 0 {
		return nil, fmt.Errorf("%w: form is not reduced", ErrInvalidEncoding)
	}
	return f, nil
}
