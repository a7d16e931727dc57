// Package material is the entry point for tensor data of unknown layout: it
// recognises the kind and representation of nested numeric data and
// dispatches rotation, projection and distance searches on it.
package material

import (
	"fmt"

	"github.com/notargets/tensym/report"
	"github.com/notargets/tensym/rotation"
	"github.com/notargets/tensym/search"
	"github.com/notargets/tensym/symmetry"
	"github.com/notargets/tensym/tensor"
)

type settings struct {
	kind       tensor.Kind
	hasKind    bool
	form       tensor.Form
	normalized bool
	reporter   report.Reporter
}

type Option func(*settings)

// WithKind requires the data to hold a tensor of kind k.
func WithKind(k tensor.Kind) Option {
	return func(s *settings) { s.kind, s.hasKind = k, true }
}

// WithForm sets the piezoelectric form. Without it "e" is assumed and a
// MissingForm warning is reported.
func WithForm(f tensor.Form) Option {
	return func(s *settings) { s.form = f }
}

// Normalized marks flat input as an already normalized vector. Output then
// returns the vector as is.
func Normalized() Option {
	return func(s *settings) { s.normalized = true }
}

func WithReporter(r report.Reporter) Option {
	return func(s *settings) { s.reporter = report.Or(r) }
}

// WithVerbose logs warnings to stderr when v is set, the default, and
// drops them otherwise.
func WithVerbose(v bool) Option {
	return func(s *settings) { s.reporter = report.New(v) }
}

// Tensor owns one synchronized set of representations of a material tensor.
type Tensor struct {
	c          tensor.Components
	shape      Shape
	normalized bool
	label      symmetry.Label
	reporter   report.Reporter
}

// New recognises the shape of data and builds its representations.
// Warnings go to stderr unless WithReporter or WithVerbose says otherwise.
func New(data any, opts ...Option) (*Tensor, error) {
	s := settings{reporter: report.New(true)}
	for _, o := range opts {
		o(&s)
	}

	dims, flat, err := flatten(data)
	if err != nil {
		return nil, err
	}
	shape, err := classify(dims)
	if err != nil {
		return nil, err
	}
	if s.hasKind && s.kind != shape.Kind {
		return nil, fmt.Errorf("material: dimensions %v hold a %s tensor, not %s: %w",
			dims, shape.Kind, s.kind, tensor.ErrKindMismatch)
	}
	if s.normalized && shape.Representation != tensor.Vector {
		return nil, fmt.Errorf("material: normalized input must be a flat vector, got %s: %w",
			shape, tensor.ErrShape)
	}

	var c tensor.Components
	switch shape.Representation {
	case tensor.Vector:
		c, err = tensor.FromVector(shape.Kind, s.form, flat, s.reporter)
	case tensor.Condensed:
		c, err = tensor.FromCondensed(shape.Kind, s.form, nest2(flat, dims[1]), s.reporter)
	default:
		c, err = tensor.FromCartesian(shape.Kind, s.form, flat, s.reporter)
	}
	if err != nil {
		return nil, err
	}
	return &Tensor{c: c, shape: shape, normalized: s.normalized, reporter: s.reporter}, nil
}

func (t *Tensor) Kind() tensor.Kind { return t.c.Kind }
func (t *Tensor) Form() tensor.Form { return t.c.Form }

// Shape is the kind and representation the tensor was built from.
func (t *Tensor) Shape() Shape { return t.shape }

// Symmetry is the label the tensor was last projected onto, NoLabel for
// raw data.
func (t *Tensor) Symmetry() symmetry.Label { return t.label }

// Components returns the current representations. The slices are shared
// and must not be modified.
func (t *Tensor) Components() tensor.Components { return t.c }

// Rotate replaces every representation by its rotation by a. The tensor
// no longer carries the symmetry it was projected onto.
func (t *Tensor) Rotate(a rotation.Angles) {
	t.c = rotation.Tensor(t.c, a)
	t.label = symmetry.NoLabel
}

// Project returns a new tensor holding the projection onto the symmetry
// resolved from label. t is left unchanged.
func (t *Tensor) Project(label string) (*Tensor, error) {
	pv, l, err := symmetry.Projection(t.c.Kind, label, t.c.Vector, t.reporter)
	if err != nil {
		return nil, err
	}
	c, err := tensor.FromVector(t.c.Kind, t.c.Form, pv, t.reporter)
	if err != nil {
		return nil, err
	}
	out := *t
	out.c, out.label = c, l
	return &out, nil
}

// Independent returns the compact list of independent components.
func (t *Tensor) Independent() []float64 {
	return t.c.Independent()
}

// Output is the default result of a projection: the vector for tensors
// built from an already normalized vector, the independent components
// otherwise.
func (t *Tensor) Output() []float64 {
	if t.normalized {
		return t.Vector()
	}
	return t.Independent()
}

func (t *Tensor) Vector() []float64 {
	return append([]float64(nil), t.c.Vector...)
}

func (t *Tensor) Condensed() [][]float64 {
	out := make([][]float64, len(t.c.Condensed))
	for i, row := range t.c.Condensed {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

// Cartesian returns the Cartesian components flattened in row-major order.
func (t *Tensor) Cartesian() []float64 {
	return append([]float64(nil), t.c.Cartesian...)
}

// Data returns representation r as nested slices, in a layout New accepts.
func (t *Tensor) Data(r tensor.Representation) any {
	switch r {
	case tensor.Vector:
		return t.Vector()
	case tensor.Condensed:
		return t.Condensed()
	}
	switch t.c.Kind {
	case tensor.Piezoelectric:
		return nest3(t.c.Cartesian)
	case tensor.Elastic:
		return nest4(t.c.Cartesian)
	default:
		return nest2(t.c.Cartesian, 3)
	}
}

// Distances runs the fixed-orientation distance scan. Without a reporter
// in opts the tensor's own is used.
func (t *Tensor) Distances(labels []string, opts search.Options) []search.Distance {
	if opts.Reporter == nil {
		opts.Reporter = t.reporter
	}
	return search.Distances(t.c.Kind, t.c.Vector, labels, opts)
}

// DistancesWithRotation runs the orientation search for every label.
func (t *Tensor) DistancesWithRotation(labels []string, opts search.Options) []search.RotatedDistance {
	if opts.Reporter == nil {
		opts.Reporter = t.reporter
	}
	return search.DistancesWithRotation(t.c, labels, opts)
}
