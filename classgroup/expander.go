package classgroup

import (
	"io"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// DefaultHashPrefix is the domain separation prefix absorbed before any
// hash-to-group input.
const DefaultHashPrefix = "classgroup/hash-to-group/v1"

// Expander stretches its input into an unbounded pseudorandom byte stream.
// Different implementations can provide different extendable-output
// functions and domain separation schemes; HashToGroupWith accepts any of
// them.
type Expander interface {
	// Expand absorbs data in order and returns the output stream.
	Expand(data ...[]byte) io.Reader
}

// Shake256Expander implements Expander using SHAKE256.
// This is the expander used by HashToGroup.
type Shake256Expander struct {
	// Prefix is the domain separation prefix.
	// Default: DefaultHashPrefix
	Prefix string
}

// NewShake256Expander creates a Shake256Expander with the default prefix.
func NewShake256Expander() *Shake256Expander {
	return &Shake256Expander{Prefix: DefaultHashPrefix}
}

// Expand implements Expander.
func (e *Shake256Expander) Expand(data ...[]byte) io.Reader {
	h := sha3.NewShake256()
	h.Write([]byte(e.Prefix))
	for _, d := range data {
		h.Write(d)
	}
	return h
}

// Blake2bExpander implements Expander using the BLAKE2Xb extendable-output
// function with unknown output length.
//
// Domain separation format: prefix + input
type Blake2bExpander struct {
	// Prefix is the domain separation prefix.
	// Default: DefaultHashPrefix
	Prefix string
}

// NewBlake2bExpander creates a Blake2bExpander with the default prefix.
func NewBlake2bExpander() *Blake2bExpander {
	return &Blake2bExpander{Prefix: DefaultHashPrefix}
}

// Expand implements Expander.
func (e *Blake2bExpander) Expand(data ...[]byte) io.Reader {
	// NewXOF only fails for an invalid size or an oversized key.
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, nil)
	if err != nil {
		panic(err)
	}
	xof.Write([]byte(e.Prefix))
	for _, d := range data {
		xof.Write(d)
	}
	return xof
}
