package rotation

import (
	"math"
	"math/rand"
	"testing"

	"github.com/notargets/tensym/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const tol = 1e-12

func TestMatrixOrthogonal(t *testing.T) {
	for _, a := range []Angles{{0, 0, 0}, {30, 0, 0}, {10, 20, 30}, {-75, 120, 33.3}} {
		R := Dense(a)
		var RtR mat.Dense
		RtR.Mul(R.T(), R)
		assert.True(t, mat.EqualApprox(&RtR, eye(), tol), "angles %v", a)
		assert.InDelta(t, 1., mat.Det(R), tol)
	}
}

func TestMatrixComposition(t *testing.T) {
	a := Angles{15, -40, 65}
	r := a.Radians()
	Rx := mat.NewDense(3, 3, []float64{1, 0, 0, 0, math.Cos(r[0]), -math.Sin(r[0]), 0, math.Sin(r[0]), math.Cos(r[0])})
	Ry := mat.NewDense(3, 3, []float64{math.Cos(r[1]), 0, math.Sin(r[1]), 0, 1, 0, -math.Sin(r[1]), 0, math.Cos(r[1])})
	Rz := mat.NewDense(3, 3, []float64{math.Cos(r[2]), -math.Sin(r[2]), 0, math.Sin(r[2]), math.Cos(r[2]), 0, 0, 0, 1})
	var RyRx, R mat.Dense
	RyRx.Mul(Ry, Rx)
	R.Mul(Rz, &RyRx)
	assert.True(t, mat.EqualApprox(&R, Dense(a), tol))
}

func TestAnglesConversion(t *testing.T) {
	a := Angles{90, -45, 180}
	r := a.Radians()
	assert.InDelta(t, math.Pi/2, r[0], tol)
	back := FromRadians(r[:])
	assert.InDeltaSlice(t, a[:], back[:], 1e-9)
	assert.True(t, Angles{}.IsZero())
}

func TestRank2AgainstGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	var T [3][3]float64
	data := make([]float64, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			T[i][j] = rng.Float64()
			data[3*i+j] = T[i][j]
		}
	}
	a := Angles{12, 34, 56}
	R := Matrix(a)
	got := Rank2(&T, &R)

	// T' = R T R^T
	var tmp, want mat.Dense
	tmp.Mul(Dense(a), mat.NewDense(3, 3, data))
	want.Mul(&tmp, Dense(a).T())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, want.At(i, j), got[i][j], tol)
		}
	}
}

func naiveRank3(t *[3][3][3]float64, R *[3][3]float64) (out [3][3][3]float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for m := 0; m < 3; m++ {
					for n := 0; n < 3; n++ {
						for o := 0; o < 3; o++ {
							out[i][j][k] += R[i][m] * R[j][n] * R[k][o] * t[m][n][o]
						}
					}
				}
			}
		}
	}
	return
}

func naiveRank4(t *[3][3][3][3]float64, R *[3][3]float64) (out [3][3][3][3]float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					var s float64
					for m := 0; m < 3; m++ {
						for n := 0; n < 3; n++ {
							for o := 0; o < 3; o++ {
								for p := 0; p < 3; p++ {
									s += R[i][m] * R[j][n] * R[k][o] * R[l][p] * t[m][n][o][p]
								}
							}
						}
					}
					out[i][j][k][l] = s
				}
			}
		}
	}
	return
}

func TestRank3And4AgainstFullContraction(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	var t3 [3][3][3]float64
	var t4 [3][3][3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				t3[i][j][k] = rng.NormFloat64()
				for l := 0; l < 3; l++ {
					t4[i][j][k][l] = rng.NormFloat64()
				}
			}
		}
	}
	R := Matrix(Angles{-20, 47, 81})

	got3, want3 := Rank3(&t3, &R), naiveRank3(&t3, &R)
	a3, b3 := tensor.Rank3(got3), tensor.Rank3(want3)
	assert.True(t, floats.EqualApprox(a3.Flat(), b3.Flat(), 1e-12))

	got4, want4 := Rank4(&t4, &R), naiveRank4(&t4, &R)
	a4, b4 := tensor.Rank4(got4), tensor.Rank4(want4)
	assert.True(t, floats.EqualApprox(a4.Flat(), b4.Flat(), 1e-12))
}

func TestQuarterTurn(t *testing.T) {
	// e_x ⊗ e_x rotated 90 degrees about z becomes e_y ⊗ e_y
	var T [3][3]float64
	T[0][0] = 1
	R := Matrix(Angles{0, 0, 90})
	out := Rank2(&T, &R)
	assert.InDelta(t, 1., out[1][1], tol)
	assert.InDelta(t, 0., out[0][0], tol)
}

func TestTensorPreservesNorm(t *testing.T) {
	c, err := tensor.FromCondensed(tensor.Elastic, tensor.FormUnset, [][]float64{
		{390, 145, 106, 0, 0, 0},
		{145, 390, 106, 0, 0, 0},
		{106, 106, 398, 0, 0, 0},
		{0, 0, 0, 105, 0, 0},
		{0, 0, 0, 0, 105, 0},
		{0, 0, 0, 0, 0, 123},
	}, nil)
	require.NoError(t, err)

	a := Angles{33, -12, 71}
	rc := Tensor(c, a)
	assert.InDelta(t, floats.Norm(c.Vector, 2), floats.Norm(rc.Vector, 2), 1e-9)

	// The prepared rotator produces the same vector as the full rebuild.
	assert.True(t, floats.EqualApprox(rc.Vector, NewRotator(c).Vector(a), 1e-9))

	// Rotating back by the inverse restores the tensor.
	Rt := mat.DenseCopyOf(Dense(a).T())
	var back [3][3][3][3]float64
	R := toArray(Rt)
	t4 := tensor.Rank4FromFlat(rc.Cartesian)
	back = Rank4((*[3][3][3][3]float64)(&t4), &R)
	b := tensor.Rank4(back)
	assert.True(t, floats.EqualApprox(c.Cartesian, b.Flat(), 1e-9))
}

func TestTensorLattice(t *testing.T) {
	c, err := tensor.FromCondensed(tensor.Lattice, tensor.FormUnset, [][]float64{
		{3.25, 0.02, 0},
		{0, 3.24, 0.1},
		{0.3, 0, 5.21},
	}, nil)
	require.NoError(t, err)

	a := Angles{-20, 47, 8}
	rc := Tensor(c, a)
	assert.True(t, floats.EqualApprox(rc.Vector, NewRotator(c).Vector(a), 1e-12))
	assert.InDelta(t, floats.Norm(c.Vector, 2), floats.Norm(rc.Vector, 2), 1e-12)
	// The input keeps its components.
	assert.Equal(t, 0.3, c.Cartesian[6])

	// A quarter turn about z swaps the in-plane diagonal.
	q := Tensor(c, Angles{0, 0, 90})
	assert.InDelta(t, 3.24, q.Condensed[0][0], tol)
	assert.InDelta(t, 3.25, q.Condensed[1][1], tol)
	assert.InDelta(t, 5.21, q.Condensed[2][2], tol)
}

func TestRotatorPiezoForms(t *testing.T) {
	for _, f := range []tensor.Form{tensor.FormE, tensor.FormD} {
		c, err := tensor.FromCondensed(tensor.Piezoelectric, f, [][]float64{
			{0, 0, 0, 0, -0.48, 0},
			{0, 0, 0, -0.48, 0, 0},
			{-0.58, -0.58, 1.55, 0, 0, 0},
		}, nil)
		require.NoError(t, err)
		v := NewRotator(c).Vector(Angles{45, 10, -30})
		assert.InDelta(t, floats.Norm(c.Vector, 2), floats.Norm(v, 2), 1e-9, "form %s", f)
	}
}

func eye() *mat.Dense {
	return mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
}

func toArray(m mat.Matrix) (R [3][3]float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			R[i][j] = m.At(i, j)
		}
	}
	return
}
