// Package classgroup implements the class group of an imaginary quadratic
// order as a [group.Group] for use with verifiable delay functions.
//
// Elements are reduced binary quadratic forms (a, b, c) with
// b^2 - 4ac = D for a fixed negative discriminant D. The group has
// unknown order: computing the class number is believed to be hard for
// large |D|, which is what makes repeated squaring an inherently
// sequential computation.
//
// # Discriminants
//
// A [Discriminant] is validated once, by [NewDiscriminant], and shared by
// every form computed against it. Only D < 0 with D = 1 (mod 4) and |D|
// prime is accepted, so D is always fundamental. [KnownDiscriminant]
// returns published discriminants of 1024, 2048, 2400 and 3072 bits.
//
// # Arithmetic
//
// Composition follows Cohen, "A Course in Computational Algebraic Number
// Theory", Algorithm 5.4.7, and doubling its specialization 5.4.8. Every
// result is reduced with Algorithm 5.4.2, so equality of classes is
// equality of coefficients:
//
//	g := classgroup.Generator(d)
//	x, _ := g.Mul(big.NewInt(1234))
//	y, _ := g.Mul(big.NewInt(4321))
//	z, _ := x.Compose(y) // equals g.Mul(big.NewInt(5555))
//
// # Hashing
//
// [HashToGroup] maps a seed to a form whose leading coefficient is a
// pseudorandom prime derived from the seed and D, then doubles it k
// times. [LargestAllowedK] bounds k so that the result still carries
// enough entropy. Other extendable-output functions can be plugged in
// with [HashToGroupWith] and an [Expander].
//
// # Security
//
// Arithmetic runs on math/big and is not constant time. The package is
// meant for delay functions, where every exponent and input is public.
package classgroup
