package search

import (
	"fmt"
	"math"

	"github.com/notargets/tensym/rotation"
	"github.com/notargets/tensym/symmetry"
	"github.com/notargets/tensym/tensor"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
)

// RotatedDistance is the residual of one candidate symmetry at the best
// orientation found by the local search.
type RotatedDistance struct {
	Label    string
	Resolved symmetry.Label
	Value    float64
	Angles   rotation.Angles
	// AnglesApplicable is false when no search was run: the projection is
	// zero, the identity, or isotropic, so every orientation is equivalent.
	AnglesApplicable bool
	// AxisRedundant marks symmetries unchanged by rotations about z; the z
	// angle is then arbitrary.
	AxisRedundant bool
	Iterations    int
	Evaluations   int
	Status        optimize.Status
	Err           error
}

// DistancesWithRotation searches, for every label independently, the
// rotation minimising ‖w − P w‖² with w the vector of the rotated tensor,
// and reports the distance at the best orientation. The search starts from
// (0,0,0) and every extra start in opts; the lowest local minimum wins. A
// nil labels slice scans the kind's default list. The input is never
// modified and results keep the order of labels.
func DistancesWithRotation(c tensor.Components, labels []string, opts Options) []RotatedDistance {
	opts = opts.withDefaults()
	if labels == nil {
		labels = symmetry.DefaultSymmetries(c.Kind)
	}
	rot := rotation.NewRotator(c)
	out := make([]RotatedDistance, len(labels))
	each(len(labels), opts.Parallel, func(i int) {
		out[i] = searchLabel(c, rot, labels[i], opts)
	})
	return out
}

// skipSearch reports labels for which every orientation gives the same
// distance.
func skipSearch(k tensor.Kind, l symmetry.Label) bool {
	return l == symmetry.Iso || symmetry.Degenerate(k, l) || symmetry.Trivial(k, l)
}

func searchLabel(c tensor.Components, rot *rotation.Rotator, s string, opts Options) RotatedDistance {
	d := RotatedDistance{Label: s, Value: math.NaN()}
	d.Resolved = symmetry.Resolve(c.Kind, s, opts.Reporter)
	p, err := symmetry.Projector(c.Kind, d.Resolved)
	if err != nil {
		d.Err = err
		return d
	}
	if skipSearch(c.Kind, d.Resolved) {
		d.Value, d.Err = residual(c.Kind, d.Resolved, c.Vector)
		return d
	}
	d.AnglesApplicable = true
	d.AxisRedundant = symmetry.Axial(c.Kind, d.Resolved)

	obj := newObjective(rot, p)
	problem := optimize.Problem{Func: obj.eval}
	best := math.Inf(1)
	var lastErr error
	starts := append([]rotation.Angles{{}}, opts.Starts...)
	for _, start := range starts {
		x0 := start.Radians()
		res, err := optimize.Minimize(problem, x0[:], settings(opts),
			&optimize.NelderMead{SimplexSize: opts.SimplexSize})
		if res == nil {
			lastErr = err
			continue
		}
		// Hitting an iteration or evaluation cap still yields a usable
		// estimate.
		d.Iterations += res.Stats.MajorIterations
		d.Evaluations += res.Stats.FuncEvaluations
		if res.F < best {
			best = res.F
			d.Angles = rotation.FromRadians(res.X)
			d.Status = res.Status
		}
	}
	if math.IsInf(best, 1) {
		d.Err = fmt.Errorf("search: %s %s: %w", c.Kind, d.Resolved, lastErr)
		return d
	}
	r := d.Angles.Radians()
	d.Value = math.Sqrt(obj.eval(r[:]))
	return d
}

func settings(o Options) *optimize.Settings {
	return &optimize.Settings{
		Converger: &optimize.FunctionConverge{
			Absolute:   o.Tolerance,
			Iterations: o.Window,
		},
		MajorIterations: o.MaxIterations,
		FuncEvaluations: o.MaxEvaluations,
	}
}

// objective is the squared residual of one label as a function of the
// rotation angles in radians. It reuses its buffers and is not safe for
// concurrent use; each label search owns one.
type objective struct {
	rot *rotation.Rotator
	p   *mat.SymDense
	pw  *mat.VecDense
}

func newObjective(rot *rotation.Rotator, p *mat.SymDense) *objective {
	return &objective{rot: rot, p: p, pw: mat.NewVecDense(p.SymmetricDim(), nil)}
}

func (o *objective) eval(x []float64) float64 {
	w := o.rot.VectorRadians([3]float64{x[0], x[1], x[2]})
	o.pw.MulVec(o.p, mat.NewVecDense(len(w), w))
	res := o.pw.RawVector().Data
	floats.Sub(res, w)
	return floats.Dot(res, res)
}
