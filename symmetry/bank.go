package symmetry

import (
	"errors"
	"fmt"

	"github.com/notargets/tensym/tensor"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNotImplemented is returned for labels whose projector has not been
	// derived for the tensor kind (most lattice symmetries).
	ErrNotImplemented = errors.New("symmetry: projector not implemented")

	// ErrUnknownLabel is returned by the low-level lookups for labels
	// outside the vocabulary. Resolve never returns it.
	ErrUnknownLabel = errors.New("symmetry: unknown label")
)

type projector struct {
	m        *mat.SymDense
	zero     bool
	identity bool
}

// bank maps kind and label to its projector. A missing entry means not
// implemented; a zero projector is stored explicitly.
var bank = map[tensor.Kind]map[Label]projector{
	tensor.Piezoelectric: build(tensor.Piezoelectric, piezoTables, true),
	tensor.Elastic:       build(tensor.Elastic, elasticTables, false),
	tensor.Lattice:       build(tensor.Lattice, latticeTables, false),
}

// build turns the sparse upper-triangle tables into dense symmetric
// matrices. With zeroFill isotropy and every point group without a table
// get the zero projector; otherwise they stay unimplemented.
func build(k tensor.Kind, tables []table, zeroFill bool) map[Label]projector {
	n := k.VectorLen()
	out := make(map[Label]projector)
	for _, tb := range tables {
		m := mat.NewSymDense(n, nil)
		if tb.identity {
			for i := 0; i < n; i++ {
				m.SetSym(i, i, 1)
			}
		}
		for _, e := range tb.entries {
			m.SetSym(e.row, e.col, e.value)
		}
		for _, l := range tb.labels {
			if _, dup := out[l]; dup {
				panic(fmt.Sprintf("symmetry: %s label %s has two tables", k, l))
			}
			out[l] = projector{m: m, identity: tb.identity}
		}
	}
	if zeroFill {
		zero := mat.NewSymDense(n, nil)
		for _, l := range append([]Label{Iso}, PointGroups()...) {
			if _, ok := out[l]; !ok {
				out[l] = projector{m: zero, zero: true}
			}
		}
	}
	return out
}

func lookup(k tensor.Kind, l Label) (projector, error) {
	if l <= NoLabel || l >= numLabels {
		return projector{}, fmt.Errorf("%s %s: %w", k, l, ErrUnknownLabel)
	}
	p, ok := bank[k][l]
	if !ok {
		return projector{}, fmt.Errorf("%s projector for %s: %w", k, l, ErrNotImplemented)
	}
	return p, nil
}

// Projector returns a copy of the projector matrix for an already resolved
// label.
func Projector(k tensor.Kind, l Label) (*mat.SymDense, error) {
	p, err := lookup(k, l)
	if err != nil {
		return nil, err
	}
	out := mat.NewSymDense(k.VectorLen(), nil)
	out.CopySym(p.m)
	return out, nil
}

// Project returns P·v for an already resolved label. It panics if v does
// not have the kind's vector length.
func Project(k tensor.Kind, l Label, v []float64) ([]float64, error) {
	p, err := lookup(k, l)
	if err != nil {
		return nil, err
	}
	n := k.VectorLen()
	if len(v) != n {
		panic(fmt.Sprintf("symmetry: %s vector needs %d components, got %d", k, n, len(v)))
	}
	out := make([]float64, n)
	if p.zero {
		return out, nil
	}
	if p.identity {
		copy(out, v)
		return out, nil
	}
	res := mat.NewVecDense(n, out)
	res.MulVec(p.m, mat.NewVecDense(n, v))
	return out, nil
}

// Implemented reports whether a projector exists for the kind and label.
func Implemented(k tensor.Kind, l Label) bool {
	_, err := lookup(k, l)
	return err == nil
}

// Degenerate reports whether the projector is identically zero.
func Degenerate(k tensor.Kind, l Label) bool {
	p, err := lookup(k, l)
	return err == nil && p.zero
}

// Trivial reports whether the projector is the identity.
func Trivial(k tensor.Kind, l Label) bool {
	p, err := lookup(k, l)
	return err == nil && p.identity
}

// Rank is the number of independent components kept by the projector
// (its trace).
func Rank(k tensor.Kind, l Label) (int, error) {
	p, err := lookup(k, l)
	if err != nil {
		return 0, err
	}
	var tr float64
	for i := 0; i < k.VectorLen(); i++ {
		tr += p.m.At(i, i)
	}
	return int(tr + 0.5), nil
}

// axial lists the labels whose invariant subspace is carried into itself by
// any rotation about z. For these the z angle of an orientation search is
// redundant.
var axial = map[tensor.Kind]map[Label]bool{
	tensor.Piezoelectric: {
		PG6: true, PGBar6: true, PG622: true, PG6mm: true,
		PG3: true, PG4: true, PGBar4: true, PG422: true, PG4mm: true,
	},
	tensor.Elastic: {
		Hex: true, PG6: true, PGBar6: true, PG6m: true, PG622: true, PG6mm: true, PGBar62m: true, PG6mmm: true,
		PG3: true, PGBar3: true, PG4: true, PGBar4: true, PG4m: true,
	},
	tensor.Lattice: {
		Hex: true, PG6: true, PGBar6: true, PG6m: true, PG622: true, PG6mm: true, PGBar62m: true, PG6mmm: true,
	},
}

// Axial reports whether rotations about z carry the invariant subspace of the
// kind and label into itself, so distances to it do not depend on the z angle.
func Axial(k tensor.Kind, l Label) bool {
	return axial[k][l]
}
