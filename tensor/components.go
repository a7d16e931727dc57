package tensor

import (
	"fmt"

	"github.com/notargets/tensym/report"
)

// Components is one synchronized triple of representations of the same
// physical tensor. Values are built by FromCartesian, FromCondensed or
// FromVector and are treated as immutable afterwards.
type Components struct {
	Kind      Kind
	Form      Form
	Cartesian []float64   // 3^rank components, row-major
	Condensed [][]float64 // 3x6, 6x6 or 3x3
	Vector    []float64   // norm-preserving vector
}

// ResolveForm returns the form to use for kind k. Only the piezoelectric
// kind carries a form; an unset form defaults to e-form with a warning.
func ResolveForm(k Kind, f Form, r report.Reporter) Form {
	if k != Piezoelectric {
		return FormUnset
	}
	if f == FormE || f == FormD {
		return f
	}
	report.Or(r).Warn(report.Warning{
		Code: report.MissingForm,
		Kind: k.String(),
		Message: "no piezoelectric form given, using e-form; both forms share the same " +
			"projectors but normalize the vector differently",
	})
	return FormE
}

func warnAsymmetric(r report.Reporter, k Kind) {
	report.Or(r).Warn(report.Warning{
		Code:    report.AsymmetricInput,
		Kind:    k.String(),
		Message: fmt.Sprintf("tensor is not symmetric within %g, symmetrizing it", AsymmetryTolerance),
	})
}

// FromCartesian builds the triple from row-major Cartesian components,
// enforcing the intrinsic index symmetry of the kind first.
func FromCartesian(k Kind, f Form, cart []float64, r report.Reporter) (c Components, err error) {
	if len(cart) != k.CartesianLen() {
		return c, fmt.Errorf("%s cartesian tensor needs %d components, got %d: %w",
			k, k.CartesianLen(), len(cart), ErrShape)
	}
	f = ResolveForm(k, f, r)
	var asym bool
	switch k {
	case Piezoelectric:
		var t Rank3
		t, asym = SymmetrizePiezo(Rank3FromFlat(cart))
		v := PiezoCartesianToVoigt(t, f)
		c = Components{Cartesian: t.Flat(), Condensed: v.Rows(), Vector: PiezoVoigtToVector(v, f)}
	case Elastic:
		var t Rank4
		t, asym = SymmetrizeElastic(Rank4FromFlat(cart))
		v := ElasticCartesianToVoigt(t)
		c = Components{Cartesian: t.Flat(), Condensed: v.Rows(), Vector: ElasticVoigtToVector(v)}
	default:
		t := Rank2FromFlat(cart)
		c = Components{Cartesian: t.Flat(), Condensed: t.Rows(), Vector: LatticeToVector(t)}
	}
	if asym {
		warnAsymmetric(r, k)
	}
	c.Kind, c.Form = k, f
	return
}

// FromCondensed builds the triple from the condensed matrix.
func FromCondensed(k Kind, f Form, rows [][]float64, r report.Reporter) (c Components, err error) {
	if err = checkCondensed(k, rows); err != nil {
		return
	}
	f = ResolveForm(k, f, r)
	switch k {
	case Piezoelectric:
		var v PiezoVoigt
		for i := range v {
			copy(v[i][:], rows[i])
		}
		t := PiezoVoigtToCartesian(v, f)
		c = Components{Cartesian: t.Flat(), Condensed: v.Rows(), Vector: PiezoVoigtToVector(v, f)}
	case Elastic:
		var raw ElasticVoigt
		for i := range raw {
			copy(raw[i][:], rows[i])
		}
		v, asym := SymmetrizeElasticVoigt(raw)
		if asym {
			warnAsymmetric(r, k)
		}
		t := ElasticVoigtToCartesian(v)
		c = Components{Cartesian: t.Flat(), Condensed: v.Rows(), Vector: ElasticVoigtToVector(v)}
	default:
		var t Rank2
		for i := range t {
			copy(t[i][:], rows[i])
		}
		c = Components{Cartesian: t.Flat(), Condensed: t.Rows(), Vector: LatticeToVector(t)}
	}
	c.Kind, c.Form = k, f
	return
}

// FromVector builds the triple from the norm-preserving vector.
func FromVector(k Kind, f Form, vec []float64, r report.Reporter) (c Components, err error) {
	if len(vec) != k.VectorLen() {
		return c, fmt.Errorf("%s vector needs %d components, got %d: %w",
			k, k.VectorLen(), len(vec), ErrShape)
	}
	f = ResolveForm(k, f, r)
	switch k {
	case Piezoelectric:
		v := PiezoVectorToVoigt(vec, f)
		t := PiezoVoigtToCartesian(v, f)
		c = Components{Cartesian: t.Flat(), Condensed: v.Rows()}
	case Elastic:
		v := ElasticVectorToVoigt(vec)
		t := ElasticVoigtToCartesian(v)
		c = Components{Cartesian: t.Flat(), Condensed: v.Rows()}
	default:
		t := LatticeVectorToRank2(vec)
		c = Components{Cartesian: t.Flat(), Condensed: t.Rows()}
	}
	c.Vector = append([]float64(nil), vec...)
	c.Kind, c.Form = k, f
	return
}

// Independent returns the compact list of independent components: the
// condensed rows for piezoelectric and lattice tensors, the upper triangle
// of the condensed matrix for elastic tensors.
func (c Components) Independent() []float64 {
	var out []float64
	for i, row := range c.Condensed {
		if c.Kind == Elastic {
			out = append(out, row[i:]...)
		} else {
			out = append(out, row...)
		}
	}
	return out
}

func checkCondensed(k Kind, rows [][]float64) error {
	nr, nc := k.CondensedDims()
	if len(rows) != nr {
		return fmt.Errorf("%s condensed tensor needs %d rows, got %d: %w", k, nr, len(rows), ErrShape)
	}
	for i, row := range rows {
		if len(row) != nc {
			return fmt.Errorf("%s condensed tensor row %d needs %d columns, got %d: %w",
				k, i, nc, len(row), ErrShape)
		}
	}
	return nil
}

// ToVector converts a condensed matrix to the vector representation.
func ToVector(k Kind, rows [][]float64, f Form, r report.Reporter) ([]float64, error) {
	c, err := FromCondensed(k, f, rows, r)
	return c.Vector, err
}

// ToCondensed converts a vector to the condensed matrix.
func ToCondensed(k Kind, vec []float64, f Form, r report.Reporter) ([][]float64, error) {
	c, err := FromVector(k, f, vec, r)
	return c.Condensed, err
}

// CartesianToCondensed converts row-major Cartesian components to the
// condensed matrix.
func CartesianToCondensed(k Kind, cart []float64, f Form, r report.Reporter) ([][]float64, error) {
	c, err := FromCartesian(k, f, cart, r)
	return c.Condensed, err
}

// CondensedToCartesian converts the condensed matrix to row-major Cartesian
// components.
func CondensedToCartesian(k Kind, rows [][]float64, f Form, r report.Reporter) ([]float64, error) {
	c, err := FromCondensed(k, f, rows, r)
	return c.Cartesian, err
}
