package symmetry

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/notargets/gocfd/utils"
	"github.com/notargets/tensym/report"
	"github.com/notargets/tensym/rotation"
	"github.com/notargets/tensym/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const tol = 1e-12

func randomVector(rng *rand.Rand, n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.NormFloat64()
	}
	return v
}

func toUtils(p *mat.SymDense) utils.Matrix {
	n := p.SymmetricDim()
	data := make([]float64, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			data = append(data, p.At(i, j))
		}
	}
	return utils.NewMatrix(n, n, data)
}

func TestProjectorAlgebra(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, k := range tensor.Kinds {
		for _, l := range Labels() {
			if !Implemented(k, l) {
				continue
			}
			t.Run(k.String()+"/"+l.String(), func(t *testing.T) {
				p, err := Projector(k, l)
				require.NoError(t, err)
				n := k.VectorLen()

				// Symmetric and idempotent: P·P == P
				P := toUtils(p)
				PP := P.Mul(P)
				for i := 0; i < n; i++ {
					for j := 0; j < n; j++ {
						assert.InDelta(t, p.At(i, j), p.At(j, i), tol)
						assert.InDelta(t, P.At(i, j), PP.At(i, j), tol)
					}
				}

				for trial := 0; trial < 5; trial++ {
					v := randomVector(rng, n)
					pv, err := Project(k, l, v)
					require.NoError(t, err)
					ppv, err := Project(k, l, pv)
					require.NoError(t, err)
					assert.True(t, floats.EqualApprox(pv, ppv, 1e-12))
					assert.LessOrEqual(t, floats.Norm(pv, 2), floats.Norm(v, 2)+1e-12)

					// The residual is orthogonal to the projection.
					res := make([]float64, n)
					floats.SubTo(res, v, pv)
					assert.InDelta(t, 0., floats.Dot(res, pv), 1e-10)
				}
			})
		}
	}
}

func TestIndependentComponentCounts(t *testing.T) {
	cases := []struct {
		kind  tensor.Kind
		label Label
		want  int
	}{
		{tensor.Elastic, Iso, 2},
		{tensor.Elastic, Cub, 3},
		{tensor.Elastic, Hex, 5},
		{tensor.Elastic, PG3, 7},
		{tensor.Elastic, PG32, 6},
		{tensor.Elastic, PG4, 7},
		{tensor.Elastic, PG4mm, 6},
		{tensor.Elastic, Ort, 9},
		{tensor.Elastic, Mon, 13},
		{tensor.Elastic, Tic, 21},
		{tensor.Piezoelectric, PGBar43m, 1},
		{tensor.Piezoelectric, PG6, 4},
		{tensor.Piezoelectric, PG6mm, 3},
		{tensor.Piezoelectric, PG622, 1},
		{tensor.Piezoelectric, PGBar6, 2},
		{tensor.Piezoelectric, PG3, 6},
		{tensor.Piezoelectric, PG3m, 4},
		{tensor.Piezoelectric, PGBar42m, 2},
		{tensor.Piezoelectric, PGmm2, 5},
		{tensor.Piezoelectric, PG2, 8},
		{tensor.Piezoelectric, PGm, 10},
		{tensor.Piezoelectric, PGBar2, 10},
		{tensor.Piezoelectric, PG1, 18},
		{tensor.Piezoelectric, PG432, 0},
		{tensor.Lattice, Hex, 2},
		{tensor.Lattice, PG6, 3},
		{tensor.Lattice, Tic, 9},
	}
	for _, tc := range cases {
		got, err := Rank(tc.kind, tc.label)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s %s", tc.kind, tc.label)
	}
}

func TestTriclinicIsIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for _, k := range tensor.Kinds {
		v := randomVector(rng, k.VectorLen())
		out, l, err := Projection(k, "1", v, nil)
		require.NoError(t, err)
		assert.Equal(t, v, out, "%s", k)
		assert.True(t, Trivial(k, l))
	}
	for _, k := range []tensor.Kind{tensor.Elastic, tensor.Lattice} {
		v := randomVector(rng, k.VectorLen())
		out, _, err := Projection(k, "tic", v, nil)
		require.NoError(t, err)
		assert.Equal(t, v, out)
	}
}

func TestIsotropyKillsPiezoelectricity(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	v := randomVector(rng, 18)
	labels := []string{"iso", "432"}
	for _, l := range PointGroups() {
		if l.Centrosymmetric() {
			labels = append(labels, l.String())
		}
	}
	for _, s := range labels {
		var col report.Collector
		out, l, err := Projection(tensor.Piezoelectric, s, v, &col)
		require.NoError(t, err)
		assert.Equal(t, make([]float64, 18), out, s)
		assert.True(t, Degenerate(tensor.Piezoelectric, l))
		if s != "432" {
			assert.True(t, col.Has(report.DegenerateProjection), s)
		}
	}
}

func TestResolve(t *testing.T) {
	cases := []struct {
		kind tensor.Kind
		in   string
		want Label
		code report.Code // zero when no warning is expected
	}{
		{tensor.Piezoelectric, "", PGBar43m, report.MissingSymmetry},
		{tensor.Elastic, "", Iso, report.MissingSymmetry},
		{tensor.Lattice, "", Tic, report.MissingSymmetry},
		{tensor.Piezoelectric, "nonsense", PGBar43m, report.UnknownSymmetry},
		{tensor.Elastic, "P6_3mc", Iso, report.UnknownSymmetry},
		{tensor.Piezoelectric, "hex", PG6mm, report.ClassDefaulted},
		{tensor.Piezoelectric, "cub", PGBar43m, report.ClassDefaulted},
		{tensor.Piezoelectric, "mon", PG2, report.ClassDefaulted},
		{tensor.Elastic, "tig", PG3, report.ClassDefaulted},
		{tensor.Elastic, "tet", PG4, report.ClassDefaulted},
		{tensor.Elastic, "cub", Cub, 0},
		{tensor.Elastic, "6mm", PG6mm, 0},
		{tensor.Piezoelectric, "tic", PG1, 0},
		{tensor.Piezoelectric, "m-3m", PGmBar3m, report.DegenerateProjection},
	}
	for _, tc := range cases {
		var col report.Collector
		got := Resolve(tc.kind, tc.in, &col)
		assert.Equal(t, tc.want, got, "%s %q", tc.kind, tc.in)
		if tc.code == 0 {
			assert.Empty(t, col.Warnings(), "%s %q", tc.kind, tc.in)
		} else {
			assert.True(t, col.Has(tc.code), "%s %q", tc.kind, tc.in)
		}
	}

	for _, k := range tensor.Kinds {
		assert.Equal(t, DefaultLabel(k), Resolve(k, "", nil), k)
	}

	var col report.Collector
	Resolve(tensor.Elastic, "bogus", &col)
	require.Len(t, col.Warnings(), 1)
	msg := col.Warnings()[0].Message
	assert.True(t, strings.Contains(msg, "iso cub hex"))
	assert.True(t, strings.Contains(msg, "-43m"))
}

func TestLatticeNotImplemented(t *testing.T) {
	v := make([]float64, 9)
	for _, s := range []string{"cub", "3", "4mm", "ort", "mon"} {
		_, _, err := Projection(tensor.Lattice, s, v, nil)
		assert.True(t, errors.Is(err, ErrNotImplemented), s)
	}
	p, l, err := ProjectorFor(tensor.Lattice, "hex", nil)
	require.NoError(t, err)
	assert.Equal(t, Hex, l)
	assert.Equal(t, 9, p.SymmetricDim())
	_, l, err = ProjectorFor(tensor.Lattice, "ort", nil)
	assert.True(t, errors.Is(err, ErrNotImplemented))
	assert.Equal(t, Ort, l)

	_, err = Projector(tensor.Piezoelectric, Hex)
	assert.True(t, errors.Is(err, ErrNotImplemented))
	_, err = Projector(tensor.Elastic, NoLabel)
	assert.True(t, errors.Is(err, ErrUnknownLabel))
}

func TestLatticeHexagonal(t *testing.T) {
	v := []float64{
		3.0, 0.2, 0.1,
		0.0, 3.2, 0.0,
		0.3, 0.0, 5.0,
	}
	out, _, err := Projection(tensor.Lattice, "hex", v, nil)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{3.1, 0, 0, 0, 3.1, 0, 0, 0, 5.0}, out, tol)

	out, _, err = Projection(tensor.Lattice, "6", v, nil)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{3.1, 0.1, 0, -0.1, 3.1, 0, 0, 0, 5.0}, out, tol)
}

// Projected tensors must be invariant under the generating operations of
// their symmetry group.
func TestProjectionsAreInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	cases := []struct {
		kind   tensor.Kind
		label  string
		angles rotation.Angles
		sign   float64
	}{
		{tensor.Elastic, "cub", rotation.Angles{90, 0, 0}, 1},
		{tensor.Elastic, "cub", rotation.Angles{0, 90, 0}, 1},
		{tensor.Elastic, "hex", rotation.Angles{0, 0, 37}, 1},
		{tensor.Elastic, "iso", rotation.Angles{12, 71, -33}, 1},
		{tensor.Elastic, "4mm", rotation.Angles{0, 0, 90}, 1},
		{tensor.Elastic, "3", rotation.Angles{0, 0, 120}, 1},
		{tensor.Elastic, "ort", rotation.Angles{180, 0, 0}, 1},
		{tensor.Piezoelectric, "6mm", rotation.Angles{0, 0, 60}, 1},
		{tensor.Piezoelectric, "6mm", rotation.Angles{0, 0, 23}, 1},
		{tensor.Piezoelectric, "4", rotation.Angles{0, 0, 90}, 1},
		{tensor.Piezoelectric, "3m", rotation.Angles{0, 0, 120}, 1},
		{tensor.Piezoelectric, "222", rotation.Angles{180, 0, 0}, 1},
		{tensor.Piezoelectric, "-43m", rotation.Angles{0, 0, 90}, -1},
		{tensor.Lattice, "6", rotation.Angles{0, 0, 60}, 1},
		{tensor.Lattice, "hex", rotation.Angles{0, 0, 15}, 1},
	}
	for _, tc := range cases {
		v := randomVector(rng, tc.kind.VectorLen())
		pv, _, err := Projection(tc.kind, tc.label, v, nil)
		require.NoError(t, err)
		c, err := tensor.FromVector(tc.kind, tensor.FormE, pv, nil)
		require.NoError(t, err)
		rv := rotation.NewRotator(c).Vector(tc.angles)
		floats.Scale(tc.sign, rv)
		assert.True(t, floats.EqualApprox(pv, rv, 1e-9), "%s %s %v", tc.kind, tc.label, tc.angles)
	}
}

func TestFormatProjector(t *testing.T) {
	s, err := FormatProjector(tensor.Piezoelectric, PG222)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(s, "piezoelectric 222 [18][18] = {"))
	assert.Equal(t, 18+2, strings.Count(s, "\n"))

	_, err = FormatProjector(tensor.Lattice, Cub)
	assert.True(t, errors.Is(err, ErrNotImplemented))
}

func TestParse(t *testing.T) {
	for _, l := range Labels() {
		got, ok := Parse(l.String())
		assert.True(t, ok)
		assert.Equal(t, l, got)
	}
	_, ok := Parse("")
	assert.False(t, ok)
	assert.Len(t, Classes(), 8)
	assert.Len(t, PointGroups(), 33)
	for _, l := range Classes() {
		assert.True(t, l.IsClass(), l)
	}
	for _, l := range PointGroups() {
		assert.False(t, l.IsClass(), l)
	}
}

func TestAxialLabels(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	for _, k := range tensor.Kinds {
		for _, l := range Labels() {
			if !Axial(k, l) {
				continue
			}
			v := randomVector(rng, k.VectorLen())
			pv, err := Project(k, l, v)
			require.NoError(t, err)
			c, err := tensor.FromVector(k, tensor.FormE, pv, nil)
			require.NoError(t, err)
			rv := rotation.NewRotator(c).Vector(rotation.Angles{0, 0, 29})
			prv, err := Project(k, l, rv)
			require.NoError(t, err)
			assert.True(t, floats.EqualApprox(rv, prv, 1e-9), "%s %s", k, l)
		}
	}
}
