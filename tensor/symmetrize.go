package tensor

import "math"

// AsymmetryTolerance is the absolute difference above which a pair of
// components that should be equal marks the input as asymmetric.
const AsymmetryTolerance = 1e-4

// SymmetrizePiezo averages T[i][j][k] with T[i][k][j]. The input is left
// untouched; asym reports whether any pair differed beyond tolerance.
func SymmetrizePiezo(t Rank3) (out Rank3, asym bool) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				a, b := t[i][j][k], t[i][k][j]
				if math.Abs(a-b) > AsymmetryTolerance {
					asym = true
				}
				out[i][j][k] = (a + b) / 2
			}
		}
	}
	return
}

// SymmetrizeElastic averages every component over its orbit under the minor
// (ij, kl) and major (ij <-> kl) index symmetries.
func SymmetrizeElastic(t Rank4) (out Rank4, asym bool) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					orbit := [8]float64{
						t[i][j][k][l], t[j][i][k][l], t[i][j][l][k], t[j][i][l][k],
						t[k][l][i][j], t[l][k][i][j], t[k][l][j][i], t[l][k][j][i],
					}
					var sum float64
					for _, x := range orbit {
						sum += x
						if math.Abs(x-orbit[0]) > AsymmetryTolerance {
							asym = true
						}
					}
					out[i][j][k][l] = sum / 8
				}
			}
		}
	}
	return
}

// SymmetrizeElasticVoigt averages C[i][j] with C[j][i].
func SymmetrizeElasticVoigt(c ElasticVoigt) (out ElasticVoigt, asym bool) {
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			if math.Abs(c[i][j]-c[j][i]) > AsymmetryTolerance {
				asym = true
			}
			out[i][j] = (c[i][j] + c[j][i]) / 2
		}
	}
	return
}
