package symmetry

import (
	"fmt"
	"strings"

	"github.com/notargets/tensym/report"
	"github.com/notargets/tensym/tensor"
	"gonum.org/v1/gonum/mat"
)

// defaultLabel is used when no label, or an unknown one, is given.
var defaultLabel = map[tensor.Kind]Label{
	tensor.Piezoelectric: PGBar43m,
	tensor.Elastic:       Iso,
	tensor.Lattice:       Tic,
}

// classDefaults maps crystal classes admitting more than one independent
// tensor form (beyond a rotation) to their canonical point group.
var classDefaults = map[tensor.Kind]map[Label]Label{
	tensor.Piezoelectric: {
		Cub: PGBar43m, Hex: PG6mm, Tig: PG3m, Tet: PG4mm, Ort: PG222, Mon: PG2,
	},
	tensor.Elastic: {
		Tig: PG3, Tet: PG4,
	},
	tensor.Lattice: {},
}

// classAliases maps classes with a single form to the point group holding
// their projector, without a warning.
var classAliases = map[tensor.Kind]map[Label]Label{
	tensor.Piezoelectric: {Tic: PG1},
}

// DefaultLabel returns the fallback label of a kind.
func DefaultLabel(k tensor.Kind) Label {
	return defaultLabel[k]
}

// Resolve maps a free-form label to the label whose projector is used. It
// never fails: missing or unknown labels fall back to the kind's default
// and ambiguous crystal classes to their canonical point group, each with a
// warning on r.
func Resolve(k tensor.Kind, s string, r report.Reporter) Label {
	r = report.Or(r)
	warn := func(code report.Code, label, msg string) {
		r.Warn(report.Warning{Code: code, Kind: k.String(), Label: label, Message: msg})
	}
	if s == "" {
		l := DefaultLabel(k)
		warn(report.MissingSymmetry, l.String(),
			fmt.Sprintf("no symmetry given, using %s", l))
		return l
	}
	l, ok := Parse(s)
	if ok && k == tensor.Piezoelectric {
		switch {
		case l == Iso:
			warn(report.DegenerateProjection, s, "material isotropy: the projection is zero")
		case l.Centrosymmetric():
			warn(report.DegenerateProjection, s, "centrosymmetric point group: the projection is zero")
		}
	}
	if !ok {
		l = DefaultLabel(k)
		warn(report.UnknownSymmetry, s, fmt.Sprintf(
			"unknown symmetry, using %s instead; crystal classes: %s; point groups: %s",
			l, strings.Join(Strings(Classes()), " "), strings.Join(Strings(PointGroups()), " ")))
		return l
	}
	if !l.IsClass() {
		return l
	}
	if pg, ok := classDefaults[k][l]; ok {
		warn(report.ClassDefaulted, s, fmt.Sprintf(
			"crystal class %s has more than one independent %s tensor form, using point group %s",
			l, k, pg))
		return pg
	}
	if pg, ok := classAliases[k][l]; ok {
		return pg
	}
	return l
}

// ProjectorFor resolves s and returns its projector.
func ProjectorFor(k tensor.Kind, s string, r report.Reporter) (*mat.SymDense, Label, error) {
	l := Resolve(k, s, r)
	p, err := Projector(k, l)
	return p, l, err
}

// Projection resolves s and projects v onto it.
func Projection(k tensor.Kind, s string, v []float64, r report.Reporter) ([]float64, Label, error) {
	l := Resolve(k, s, r)
	out, err := Project(k, l, v)
	return out, l, err
}

// DefaultSymmetries is the curated list scanned by distance searches when
// the caller gives none.
func DefaultSymmetries(k tensor.Kind) []string {
	switch k {
	case tensor.Piezoelectric:
		return []string{"432", "-43m", "6", "-6", "622", "6mm", "-62m", "3", "32", "3m",
			"-4", "-42m", "2", "222", "m", "-2", "mm2", "1"}
	case tensor.Elastic:
		return []string{"iso", "cub", "hex", "3", "32", "4", "4mm", "ort", "mon"}
	default:
		return []string{"hex", "tic"}
	}
}
