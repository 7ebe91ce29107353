// Package group defines abstract interfaces for the groups of unknown
// order that a verifiable delay function is evaluated in.
//
// This package provides two core interfaces:
//
//   - [Element]: a group element that can be composed, doubled, inverted
//     and raised to integer powers
//   - [Group]: factory methods for the identity, the generator,
//     hash-to-group and decoding
//
// # Design Philosophy
//
// The interfaces are generic over the concrete element type, so callers
// such as the delay package work with any group without type assertions
// and without boxing the hot doubling loop behind an interface value:
//
//	func square[E group.Element[E]](x E, t int) (E, error) {
//		var err error
//		for i := 0; i < t && err == nil; i++ {
//			x, err = x.Double()
//		}
//		return x, err
//	}
//
// Unlike the mutable receiver pattern common to elliptic-curve libraries,
// elements are immutable values. A delay function shares its inputs
// across goroutines and proofs, and immutable values make that safe
// without locks.
//
// All operations that can fail return errors rather than panicking, making
// error handling explicit and predictable.
//
// # Implementing a Group
//
//  1. Create an element type E whose methods implement [Element] with E
//     as the type parameter
//  2. Create a factory type that implements [Group] for E
//
// See the classgroup package for a complete implementation over class
// groups of imaginary quadratic orders.
//
// # Security Considerations
//
// Implementations must ensure:
//
//   - Every returned element is in canonical (reduced) form
//   - Hash-to-group output has no discrete logarithm known to anyone
//   - Elements of different groups are never silently combined
//
// Exponentiation is not required to be constant time. Exponents in a
// delay function are public, and implementations may branch on their bits.
package group
