package group

import (
	"math/big"
)

// Element is a member of a finite abelian group whose parameters (for
// class groups, the discriminant) are carried by the element itself.
// E is the concrete element type, so implementations are checked
// statically with
//
//	var _ group.Element[*T] = (*T)(nil)
//
// Elements have value semantics: no method modifies its receiver or its
// arguments. Every method returns a fresh element in canonical form, so
// [Element.Equal] and [Element.Bytes] agree across implementations.
type Element[E any] interface {
	// Compose returns the group product of the receiver and b.
	// Returns an error if the two elements belong to different groups.
	Compose(b E) (E, error)
	// Double returns the receiver composed with itself. It must agree
	// with Compose(receiver) for every input.
	Double() (E, error)
	// Inverse returns the inverse of the receiver.
	Inverse() E
	// Mul returns the receiver raised to the integer e. Negative
	// exponents invert first; Mul(0) is the identity.
	Mul(e *big.Int) (E, error)
	// Equal reports whether the receiver and b are the same element of
	// the same group.
	Equal(b E) bool
	// IsIdentity reports whether the receiver is the neutral element.
	IsIdentity() bool
	// Bytes returns the canonical encoding of the element.
	Bytes() []byte
}

// Group is a factory for the elements of one parameterised group. It
// plays the role that the curve type plays for elliptic-curve groups.
//
// Example usage:
//
//	d, _ := classgroup.KnownDiscriminant(1024)
//	g := classgroup.New(d)
//	x, _ := g.HashToGroup(seed, 8)
//	y, _ := x.Mul(big.NewInt(1234))
type Group[E Element[E]] interface {
	// Identity returns the neutral element.
	Identity() E
	// Generator returns the group's fixed, publicly reproducible base point.
	Generator() E
	// HashToGroup deterministically maps seed to an element whose discrete
	// logarithm to any other element is unknown. k is the folding depth.
	HashToGroup(seed []byte, k uint32) (E, error)
	// SetBytes decodes a canonical encoding produced by [Element.Bytes].
	// Returns an error if data is not the canonical encoding of an element.
	SetBytes(data []byte) (E, error)
	// Bits returns the bit length of the group's defining parameter.
	Bits() int
}
