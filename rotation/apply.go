package rotation

import (
	"github.com/notargets/tensym/tensor"
	"gonum.org/v1/gonum/mat"
)

// Rotator holds the typed Cartesian form of one tensor so that repeated
// rotations, as issued by the orientation search, skip re-parsing.
type Rotator struct {
	kind tensor.Kind
	form tensor.Form
	r2   tensor.Rank2
	r3   tensor.Rank3
	r4   tensor.Rank4
}

func NewRotator(c tensor.Components) *Rotator {
	r := &Rotator{kind: c.Kind, form: c.Form}
	switch c.Kind {
	case tensor.Piezoelectric:
		r.r3 = tensor.Rank3FromFlat(c.Cartesian)
	case tensor.Elastic:
		r.r4 = tensor.Rank4FromFlat(c.Cartesian)
	default:
		r.r2 = tensor.Rank2FromFlat(c.Cartesian)
	}
	return r
}

// VectorRadians returns the vector representation of the tensor rotated by
// the given radian angles.
func (r *Rotator) VectorRadians(t [3]float64) []float64 {
	R := MatrixRadians(t)
	switch r.kind {
	case tensor.Piezoelectric:
		rt := tensor.Rank3(Rank3((*[3][3][3]float64)(&r.r3), &R))
		return tensor.PiezoVoigtToVector(tensor.PiezoCartesianToVoigt(rt, r.form), r.form)
	case tensor.Elastic:
		rt := tensor.Rank4(Rank4((*[3][3][3][3]float64)(&r.r4), &R))
		return tensor.ElasticVoigtToVector(tensor.ElasticCartesianToVoigt(rt))
	default:
		rt := tensor.Rank2(Rank2((*[3][3]float64)(&r.r2), &R))
		return tensor.LatticeToVector(rt)
	}
}

// Vector is VectorRadians for angles in degrees.
func (r *Rotator) Vector(a Angles) []float64 {
	return r.VectorRadians(a.Radians())
}

// Tensor rotates c and rebuilds its full set of representations.
func Tensor(c tensor.Components, a Angles) tensor.Components {
	var cart []float64
	switch c.Kind {
	case tensor.Piezoelectric:
		R := Matrix(a)
		t := tensor.Rank3FromFlat(c.Cartesian)
		rt := tensor.Rank3(Rank3((*[3][3][3]float64)(&t), &R))
		cart = rt.Flat()
	case tensor.Elastic:
		R := Matrix(a)
		t := tensor.Rank4FromFlat(c.Cartesian)
		rt := tensor.Rank4(Rank4((*[3][3][3][3]float64)(&t), &R))
		cart = rt.Flat()
	default:
		// T' = R T R^T
		Rd := Dense(a)
		var tmp, rt mat.Dense
		tmp.Mul(Rd, mat.NewDense(3, 3, append([]float64(nil), c.Cartesian...)))
		rt.Mul(&tmp, Rd.T())
		cart = rt.RawMatrix().Data
	}
	// The length always matches the kind, so FromCartesian cannot fail here.
	out, err := tensor.FromCartesian(c.Kind, c.Form, cart, nil)
	if err != nil {
		panic(err)
	}
	return out
}
