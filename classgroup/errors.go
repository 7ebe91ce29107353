package classgroup

import "errors"

var (
	// ErrInvalidDiscriminant is returned when a value cannot serve as the
	// discriminant of an imaginary quadratic order.
	ErrInvalidDiscriminant = errors.New("classgroup: invalid discriminant")

	// ErrDiscriminantMismatch is returned when two forms of different
	// discriminants are combined.
	ErrDiscriminantMismatch = errors.New("classgroup: discriminant mismatch")

	// ErrReduction signals a triple that does not satisfy b^2 - 4ac = D or
	// has a non-positive leading coefficient. For internally computed
	// values it indicates an arithmetic bug.
	ErrReduction = errors.New("classgroup: reduction failed")

	// ErrInvalidFoldingDepth is returned when a hash-to-group folding depth
	// exceeds LargestAllowedK for the discriminant.
	ErrInvalidFoldingDepth = errors.New("classgroup: invalid folding depth")

	// ErrHashToGroupExhausted is returned when seed expansion produced no
	// usable candidate within the attempt budget.
	ErrHashToGroupExhausted = errors.New("classgroup: hash to group exhausted")

	// ErrInvalidEncoding is returned by FormFromBytes for data that is not
	// the canonical encoding of a reduced form.
	ErrInvalidEncoding = errors.New("classgroup: invalid encoding")
)
