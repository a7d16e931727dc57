// Package rotation applies rigid 3D rotations to Cartesian tensors of rank
// 2, 3 and 4.
package rotation

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Angles are rotations about the x, y and z axes, in degrees.
type Angles [3]float64

// FromRadians converts radian angles (as used by the optimizer) to Angles.
func FromRadians(r []float64) Angles {
	return Angles{r[0] * 180 / math.Pi, r[1] * 180 / math.Pi, r[2] * 180 / math.Pi}
}

func (a Angles) Radians() [3]float64 {
	return [3]float64{a[0] * math.Pi / 180, a[1] * math.Pi / 180, a[2] * math.Pi / 180}
}

func (a Angles) IsZero() bool {
	return a == Angles{}
}

// Matrix returns R = Rz·Ry·Rx for the given angles.
func Matrix(a Angles) [3][3]float64 {
	return MatrixRadians(a.Radians())
}

// MatrixRadians is Matrix for angles already in radians.
func MatrixRadians(t [3]float64) (R [3][3]float64) {
	sx, cx := math.Sincos(t[0])
	sy, cy := math.Sincos(t[1])
	sz, cz := math.Sincos(t[2])
	// Rx = [1 0 0; 0 cx -sx; 0 sx cx]
	// Ry = [cy 0 sy; 0 1 0; -sy 0 cy]
	// Rz = [cz -sz 0; sz cz 0; 0 0 1]
	R[0][0] = cz * cy
	R[0][1] = cz*sy*sx - sz*cx
	R[0][2] = cz*sy*cx + sz*sx
	R[1][0] = sz * cy
	R[1][1] = sz*sy*sx + cz*cx
	R[1][2] = sz*sy*cx - cz*sx
	R[2][0] = -sy
	R[2][1] = cy * sx
	R[2][2] = cy * cx
	return
}

// Dense returns the rotation matrix as a gonum matrix.
func Dense(a Angles) *mat.Dense {
	R := Matrix(a)
	return mat.NewDense(3, 3, []float64{
		R[0][0], R[0][1], R[0][2],
		R[1][0], R[1][1], R[1][2],
		R[2][0], R[2][1], R[2][2],
	})
}

// Rank2 returns T'_ij = R_im R_jn T_mn.
func Rank2(t *[3][3]float64, R *[3][3]float64) (out [3][3]float64) {
	var tmp [3][3]float64
	// contract the last index first, then the first
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			tmp[i][j] = R[j][0]*t[i][0] + R[j][1]*t[i][1] + R[j][2]*t[i][2]
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = R[i][0]*tmp[0][j] + R[i][1]*tmp[1][j] + R[i][2]*tmp[2][j]
		}
	}
	return
}

// Rank3 returns T'_ijk = R_im R_jn R_ko T_mno.
func Rank3(t *[3][3][3]float64, R *[3][3]float64) (out [3][3][3]float64) {
	var a, b [3][3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				a[i][j][k] = R[k][0]*t[i][j][0] + R[k][1]*t[i][j][1] + R[k][2]*t[i][j][2]
			}
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				b[i][j][k] = R[j][0]*a[i][0][k] + R[j][1]*a[i][1][k] + R[j][2]*a[i][2][k]
			}
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				out[i][j][k] = R[i][0]*b[0][j][k] + R[i][1]*b[1][j][k] + R[i][2]*b[2][j][k]
			}
		}
	}
	return
}

// Rank4 returns T'_ijkl = R_im R_jn R_ko R_lp T_mnop, contracting one index
// at a time: 4·3^5 multiply-adds instead of 3^8.
func Rank4(t *[3][3][3][3]float64, R *[3][3]float64) (out [3][3][3][3]float64) {
	var a, b [3][3][3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					a[i][j][k][l] = R[l][0]*t[i][j][k][0] + R[l][1]*t[i][j][k][1] + R[l][2]*t[i][j][k][2]
				}
			}
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					b[i][j][k][l] = R[k][0]*a[i][j][0][l] + R[k][1]*a[i][j][1][l] + R[k][2]*a[i][j][2][l]
				}
			}
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					a[i][j][k][l] = R[j][0]*b[i][0][k][l] + R[j][1]*b[i][1][k][l] + R[j][2]*b[i][2][k][l]
				}
			}
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					out[i][j][k][l] = R[i][0]*a[0][j][k][l] + R[i][1]*a[1][j][k][l] + R[i][2]*a[2][j][k][l]
				}
			}
		}
	}
	return
}
