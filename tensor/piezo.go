package tensor

// shearScale is the vector weight of a condensed shear column (J >= 3):
// sqrt(2) in e-form, 1/sqrt(2) in d-form. Normal columns keep weight 1.
func shearScale(f Form) float64 {
	if f == FormD {
		return 1 / sqrt2
	}
	return sqrt2
}

// PiezoVoigtToVector flattens the 3x6 condensed tensor row by row, weighting
// shear columns so that the vector norm equals the Cartesian Frobenius norm.
func PiezoVoigtToVector(c PiezoVoigt, f Form) []float64 {
	s := shearScale(f)
	v := make([]float64, 0, 18)
	for i := 0; i < 3; i++ {
		for j := 0; j < 6; j++ {
			if j < 3 {
				v = append(v, c[i][j])
			} else {
				v = append(v, s*c[i][j])
			}
		}
	}
	return v
}

// PiezoVectorToVoigt inverts PiezoVoigtToVector. It panics unless len(v) is 18.
func PiezoVectorToVoigt(v []float64, f Form) (c PiezoVoigt) {
	mustLen(v, 18)
	s := shearScale(f)
	for i := 0; i < 3; i++ {
		for j := 0; j < 6; j++ {
			x := v[6*i+j]
			if j >= 3 {
				x /= s
			}
			c[i][j] = x
		}
	}
	return
}

// PiezoVoigtToCartesian expands the condensed tensor. In d-form the shear
// Cartesian components carry half of the condensed coefficient.
func PiezoVoigtToCartesian(c PiezoVoigt, f Form) (t Rank3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				x := c[i][voigtIndex[j][k]]
				if f == FormD && j != k {
					x /= 2
				}
				t[i][j][k] = x
			}
		}
	}
	return
}

// PiezoCartesianToVoigt reads the condensed tensor from the (j<=k) half of
// the Cartesian components; the tensor is assumed minor-symmetric.
func PiezoCartesianToVoigt(t Rank3, f Form) (c PiezoVoigt) {
	for i := 0; i < 3; i++ {
		for J := 0; J < 6; J++ {
			j, k := voigtPair[J][0], voigtPair[J][1]
			x := t[i][j][k]
			if f == FormD && J >= 3 {
				x *= 2
			}
			c[i][J] = x
		}
	}
	return
}
