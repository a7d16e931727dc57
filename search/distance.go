package search

import (
	"fmt"
	"math"

	"github.com/notargets/tensym/symmetry"
	"github.com/notargets/tensym/tensor"
	"gonum.org/v1/gonum/floats"
)

// Distance is the residual of one candidate symmetry without rotation.
type Distance struct {
	Label    string         // label as given by the caller
	Resolved symmetry.Label // label whose projector was used
	Value    float64        // ‖v − P v‖₂, NaN when Err is set
	Err      error
}

// Distances returns, in the order of labels, the Euclidean distance between
// v and its projection onto each symmetry. A nil labels slice scans the
// kind's default list. Errors are per label and never stop the batch.
func Distances(k tensor.Kind, v []float64, labels []string, opts Options) []Distance {
	opts = opts.withDefaults()
	if labels == nil {
		labels = symmetry.DefaultSymmetries(k)
	}
	out := make([]Distance, len(labels))
	var shapeErr error
	if len(v) != k.VectorLen() {
		shapeErr = fmt.Errorf("%s vector needs %d components, got %d: %w",
			k, k.VectorLen(), len(v), tensor.ErrShape)
	}
	each(len(labels), opts.Parallel, func(i int) {
		d := Distance{Label: labels[i], Value: math.NaN()}
		d.Resolved = symmetry.Resolve(k, labels[i], opts.Reporter)
		if shapeErr != nil {
			d.Err = shapeErr
		} else {
			d.Value, d.Err = residual(k, d.Resolved, v)
		}
		out[i] = d
	})
	return out
}

func residual(k tensor.Kind, l symmetry.Label, v []float64) (float64, error) {
	pv, err := symmetry.Project(k, l, v)
	if err != nil {
		return math.NaN(), err
	}
	floats.Sub(pv, v)
	return floats.Norm(pv, 2), nil
}
