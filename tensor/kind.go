// Package tensor holds the three representations of the material tensors
// handled by tensym (Cartesian, condensed Voigt-like matrix and the
// norm-preserving vector) and the exact conversions between them.
package tensor

import (
	"fmt"
	"math"
)

type Kind uint8

const (
	Piezoelectric Kind = iota
	Elastic
	Lattice
)

// Kinds lists every supported tensor kind.
var Kinds = []Kind{Piezoelectric, Elastic, Lattice}

func (k Kind) String() string {
	switch k {
	case Piezoelectric:
		return "piezoelectric"
	case Elastic:
		return "elastic"
	case Lattice:
		return "lattice"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Rank is the number of Cartesian indices.
func (k Kind) Rank() int {
	switch k {
	case Piezoelectric:
		return 3
	case Elastic:
		return 4
	default:
		return 2
	}
}

// CartesianLen is 3^rank.
func (k Kind) CartesianLen() int {
	return []int{27, 81, 9}[k]
}

// VectorLen is the length of the vector representation.
func (k Kind) VectorLen() int {
	return []int{18, 21, 9}[k]
}

// CondensedDims returns rows, cols of the condensed matrix.
func (k Kind) CondensedDims() (rows, cols int) {
	switch k {
	case Piezoelectric:
		return 3, 6
	case Elastic:
		return 6, 6
	default:
		return 3, 3
	}
}

// Unit is the conventional unit of the tensor components.
func (k Kind) Unit() string {
	switch k {
	case Piezoelectric:
		return "C/m^2"
	case Elastic:
		return "GPa"
	default:
		return "length"
	}
}

type Representation uint8

const (
	Cartesian Representation = iota
	Condensed
	Vector
)

func (r Representation) String() string {
	switch r {
	case Cartesian:
		return "cartesian"
	case Condensed:
		return "condensed"
	case Vector:
		return "vector"
	default:
		return fmt.Sprintf("Representation(%d)", uint8(r))
	}
}

// Form tags the two scalings of the piezoelectric tensor. It is ignored
// for the other kinds.
type Form uint8

const (
	FormUnset Form = iota
	FormE
	FormD
)

func (f Form) String() string {
	switch f {
	case FormE:
		return "e"
	case FormD:
		return "d"
	default:
		return ""
	}
}

// ParseForm maps "e" and "d" to their Form, anything else to FormUnset.
func ParseForm(s string) Form {
	switch s {
	case "e":
		return FormE
	case "d":
		return FormD
	default:
		return FormUnset
	}
}

var sqrt2 = math.Sqrt2
