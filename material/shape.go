package material

import (
	"encoding/json"
	"fmt"

	"github.com/notargets/tensym/tensor"
)

// Shape is the kind and representation recognised from nested data.
type Shape struct {
	Kind           tensor.Kind
	Representation tensor.Representation
}

func (s Shape) String() string {
	return fmt.Sprintf("%s %s", s.Kind, s.Representation)
}

// shapes lists every valid nesting. The lattice condensed matrix is the
// Cartesian one, so a 3x3 input is always lattice Cartesian.
var shapes = []struct {
	dims  []int
	shape Shape
}{
	{[]int{18}, Shape{tensor.Piezoelectric, tensor.Vector}},
	{[]int{21}, Shape{tensor.Elastic, tensor.Vector}},
	{[]int{9}, Shape{tensor.Lattice, tensor.Vector}},
	{[]int{3, 6}, Shape{tensor.Piezoelectric, tensor.Condensed}},
	{[]int{6, 6}, Shape{tensor.Elastic, tensor.Condensed}},
	{[]int{3, 3}, Shape{tensor.Lattice, tensor.Cartesian}},
	{[]int{3, 3, 3}, Shape{tensor.Piezoelectric, tensor.Cartesian}},
	{[]int{3, 3, 3, 3}, Shape{tensor.Elastic, tensor.Cartesian}},
}

// ClassifyShape inspects the nesting of data and returns the kind and
// representation it holds. data may be a []float64, [][]float64,
// [][][]float64, [][][][]float64 or a []any tree as decoded by
// encoding/json. Ragged or non-numeric data and unknown dimensions fail
// with tensor.ErrShape.
func ClassifyShape(data any) (Shape, error) {
	dims, _, err := flatten(data)
	if err != nil {
		return Shape{}, err
	}
	return classify(dims)
}

func classify(dims []int) (Shape, error) {
	for _, s := range shapes {
		if equalDims(s.dims, dims) {
			return s.shape, nil
		}
	}
	return Shape{}, fmt.Errorf("material: dimensions %v: %w", dims, tensor.ErrShape)
}

func equalDims(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// walker records the dimensions of a nested list while flattening it in
// row-major order.
type walker struct {
	dims      []int
	leafDepth int
	flat      []float64
}

func flatten(data any) (dims []int, flat []float64, err error) {
	w := &walker{leafDepth: -1}
	if err = w.walk(data, 0); err != nil {
		return nil, nil, err
	}
	return w.dims, w.flat, nil
}

func (w *walker) walk(x any, depth int) error {
	switch v := x.(type) {
	case float64:
		return w.leaf(v, depth)
	case int:
		return w.leaf(float64(v), depth)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return fmt.Errorf("material: %q: %w", v, tensor.ErrShape)
		}
		return w.leaf(f, depth)
	case []float64:
		return walkSlice(w, v, depth)
	case [][]float64:
		return walkSlice(w, v, depth)
	case [][][]float64:
		return walkSlice(w, v, depth)
	case [][][][]float64:
		return walkSlice(w, v, depth)
	case []any:
		return walkSlice(w, v, depth)
	default:
		return fmt.Errorf("material: element of type %T is not numeric: %w", x, tensor.ErrShape)
	}
}

func walkSlice[T any](w *walker, s []T, depth int) error {
	if err := w.list(len(s), depth); err != nil {
		return err
	}
	for _, e := range s {
		if err := w.walk(e, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) list(n, depth int) error {
	if w.leafDepth >= 0 && depth >= w.leafDepth {
		return fmt.Errorf("material: ragged data, list found at depth %d: %w", depth, tensor.ErrShape)
	}
	if depth == len(w.dims) {
		w.dims = append(w.dims, n)
		return nil
	}
	if w.dims[depth] != n {
		return fmt.Errorf("material: ragged data, length %d at depth %d, expected %d: %w",
			n, depth, w.dims[depth], tensor.ErrShape)
	}
	return nil
}

func (w *walker) leaf(f float64, depth int) error {
	if w.leafDepth < 0 {
		w.leafDepth = depth
	}
	if depth != w.leafDepth || depth != len(w.dims) {
		return fmt.Errorf("material: ragged data, number found at depth %d: %w", depth, tensor.ErrShape)
	}
	w.flat = append(w.flat, f)
	return nil
}

// nest2, nest3 and nest4 rebuild row-major flat data as nested slices.
func nest2(flat []float64, cols int) [][]float64 {
	out := make([][]float64, len(flat)/cols)
	for i := range out {
		out[i] = append([]float64(nil), flat[i*cols:(i+1)*cols]...)
	}
	return out
}

func nest3(flat []float64) [][][]float64 {
	out := make([][][]float64, 3)
	for i := range out {
		out[i] = nest2(flat[i*9:(i+1)*9], 3)
	}
	return out
}

func nest4(flat []float64) [][][][]float64 {
	out := make([][][][]float64, 3)
	for i := range out {
		out[i] = nest3(flat[i*27 : (i+1)*27])
	}
	return out
}
