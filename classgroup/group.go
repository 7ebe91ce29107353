package classgroup

import (
	"github.com/f3rmion/vdf/group"
)

// ClassGroup implements [group.Group] for the class group of one
// discriminant. Create instances with New; a ClassGroup is immutable and
// may be shared between goroutines.
type ClassGroup struct {
	disc *Discriminant
}

var _ group.Group[*QuadraticForm] = (*ClassGroup)(nil)

// New returns the class group of discriminant d.
func New(d *Discriminant) *ClassGroup {
	return &ClassGroup{disc: d}
}

// Discriminant returns the group's discriminant.
func (g *ClassGroup) Discriminant() *Discriminant {
	return g.disc
}

// Identity returns the principal form.
func (g *ClassGroup) Identity() *QuadraticForm {
	return Identity(g.disc)
}

// Generator returns the canonical base point, see Generator.
func (g *ClassGroup) Generator() *QuadraticForm {
	return Generator(g.disc)
}

// HashToGroup hashes seed to a group element with folding depth k.
func (g *ClassGroup) HashToGroup(seed []byte, k uint32) (*QuadraticForm, error) {
	return HashToGroup(seed, g.disc, k)
}

// SetBytes decodes a canonical form encoding.
func (g *ClassGroup) SetBytes(data []byte) (*QuadraticForm, error) {
	return FormFromBytes(data, g.disc)
}

// Bits returns the bit length of |D|.
func (g *ClassGroup) Bits() int {
	return g.disc.bits
}
