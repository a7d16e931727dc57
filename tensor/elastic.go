package tensor

// elasticWeight is the vector weight of condensed entry (i,j), i<=j:
// sqrt(2) for an off-diagonal entry and sqrt(2) more per shear index.
func elasticWeight(i, j int) float64 {
	w := 1.
	if i != j {
		w *= sqrt2
	}
	if i >= 3 {
		w *= sqrt2
	}
	if j >= 3 {
		w *= sqrt2
	}
	return w
}

// elasticSlot maps (i,j) of the 6x6 matrix to the position in the 21-vector
// (upper triangle, row order).
var elasticSlot = func() (s [6][6]int) {
	n := 0
	for i := 0; i < 6; i++ {
		for j := i; j < 6; j++ {
			s[i][j], s[j][i] = n, n
			n++
		}
	}
	return
}()

// ElasticSlot returns the vector position of condensed entry (i,j).
func ElasticSlot(i, j int) int {
	return elasticSlot[i][j]
}

// ElasticVoigtToVector packs the upper triangle of the 6x6 matrix into the
// norm-preserving 21-vector. The pair C[i][j], C[j][i] is averaged, so a
// slightly asymmetric input is symmetrized on the way.
func ElasticVoigtToVector(c ElasticVoigt) []float64 {
	v := make([]float64, 0, 21)
	for i := 0; i < 6; i++ {
		for j := i; j < 6; j++ {
			v = append(v, elasticWeight(i, j)*(c[i][j]+c[j][i])/2)
		}
	}
	return v
}

// ElasticVectorToVoigt inverts ElasticVoigtToVector; the result is
// symmetric. It panics unless len(v) is 21.
func ElasticVectorToVoigt(v []float64) (c ElasticVoigt) {
	mustLen(v, 21)
	for i := 0; i < 6; i++ {
		for j := i; j < 6; j++ {
			x := v[elasticSlot[i][j]] / elasticWeight(i, j)
			c[i][j], c[j][i] = x, x
		}
	}
	return
}

func ElasticVoigtToCartesian(c ElasticVoigt) (t Rank4) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			I := voigtIndex[i][j]
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					t[i][j][k][l] = c[I][voigtIndex[k][l]]
				}
			}
		}
	}
	return
}

func ElasticCartesianToVoigt(t Rank4) (c ElasticVoigt) {
	for I := 0; I < 6; I++ {
		i, j := voigtPair[I][0], voigtPair[I][1]
		for J := 0; J < 6; J++ {
			k, l := voigtPair[J][0], voigtPair[J][1]
			c[I][J] = t[i][j][k][l]
		}
	}
	return
}
