// Package symmetry is the bank of orthogonal projectors onto the subspace of
// tensors invariant under a crystallographic point group or crystal class.
package symmetry

import "fmt"

// Label is a crystal class or a Hermann–Mauguin point group symbol.
type Label uint8

const (
	NoLabel Label = iota

	// Crystal classes
	Iso
	Cub
	Hex
	Tig
	Tet
	Ort
	Mon
	Tic

	// Cubic point groups
	PG23
	PGmBar3
	PG432
	PGBar43m
	PGmBar3m

	// Hexagonal
	PG6
	PGBar6
	PG6m
	PG622
	PG6mm
	PGBar62m
	PG6mmm

	// Trigonal
	PG3
	PGBar3
	PG32
	PG3m
	PGBar3m

	// Tetragonal
	PG4
	PGBar4
	PG4m
	PG422
	PG4mm
	PGBar42m
	PG4mmm

	// Monoclinic and orthorhombic
	PG2
	PG2m
	PG222
	PGm
	PGBar2
	PGmm2
	PGmmm

	// Triclinic
	PG1
	PGBar1

	numLabels
)

var labelNames = [numLabels]string{
	NoLabel: "",
	Iso:     "iso", Cub: "cub", Hex: "hex", Tig: "tig", Tet: "tet", Ort: "ort", Mon: "mon", Tic: "tic",
	PG23: "23", PGmBar3: "m-3", PG432: "432", PGBar43m: "-43m", PGmBar3m: "m-3m",
	PG6: "6", PGBar6: "-6", PG6m: "6/m", PG622: "622", PG6mm: "6mm", PGBar62m: "-62m", PG6mmm: "6/mmm",
	PG3: "3", PGBar3: "-3", PG32: "32", PG3m: "3m", PGBar3m: "-3m",
	PG4: "4", PGBar4: "-4", PG4m: "4/m", PG422: "422", PG4mm: "4mm", PGBar42m: "-42m", PG4mmm: "4/mmm",
	PG2: "2", PG2m: "2/m", PG222: "222", PGm: "m", PGBar2: "-2", PGmm2: "mm2", PGmmm: "mmm",
	PG1: "1", PGBar1: "-1",
}

var labelsByName = func() map[string]Label {
	m := make(map[string]Label, numLabels)
	for l := Iso; l < numLabels; l++ {
		m[labelNames[l]] = l
	}
	return m
}()

func (l Label) String() string {
	if l < numLabels {
		return labelNames[l]
	}
	return fmt.Sprintf("Label(%d)", uint8(l))
}

// Parse looks a label up in the fixed vocabulary.
func Parse(s string) (Label, bool) {
	l, ok := labelsByName[s]
	return l, ok
}

// IsClass reports whether l is a crystal class rather than a point group.
func (l Label) IsClass() bool {
	return l >= Iso && l <= Tic
}

// Centrosymmetric reports whether the point group contains the inversion.
func (l Label) Centrosymmetric() bool {
	switch l {
	case PGmBar3, PGmBar3m, PG6m, PG6mmm, PGBar3, PGBar3m, PG4m, PG4mmm, PG2m, PGmmm, PGBar1:
		return true
	}
	return false
}

// Classes returns the crystal class labels.
func Classes() []Label {
	return labelRange(Iso, Tic)
}

// PointGroups returns the point group labels.
func PointGroups() []Label {
	return labelRange(PG23, PGBar1)
}

// Labels returns every label of the vocabulary.
func Labels() []Label {
	return labelRange(Iso, PGBar1)
}

func labelRange(from, to Label) []Label {
	out := make([]Label, 0, to-from+1)
	for l := from; l <= to; l++ {
		out = append(out, l)
	}
	return out
}

// Strings renders labels for messages.
func Strings(ls []Label) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = l.String()
	}
	return out
}
