package tensor

import "fmt"

// Fixed-size Cartesian and condensed forms.
type (
	Rank2        [3][3]float64
	Rank3        [3][3][3]float64
	Rank4        [3][3][3][3]float64
	PiezoVoigt   [3][6]float64
	ElasticVoigt [6][6]float64
)

// voigtIndex maps the Cartesian pair (j,k) to its condensed column:
// j==k -> j, {1,2} -> 3, {0,2} -> 4, {0,1} -> 5.
var voigtIndex = [3][3]int{
	{0, 5, 4},
	{5, 1, 3},
	{4, 3, 2},
}

// voigtPair is the inverse of voigtIndex.
var voigtPair = [6][2]int{
	{0, 0}, {1, 1}, {2, 2}, {1, 2}, {0, 2}, {0, 1},
}

// VoigtIndex returns the condensed column of the Cartesian pair (j,k).
func VoigtIndex(j, k int) int {
	return voigtIndex[j][k]
}

// VoigtPair returns one Cartesian pair for a condensed column.
func VoigtPair(col int) (j, k int) {
	return voigtPair[col][0], voigtPair[col][1]
}

// Flat returns the components in row-major order.
func (t *Rank2) Flat() []float64 {
	out := make([]float64, 0, 9)
	for i := range t {
		out = append(out, t[i][:]...)
	}
	return out
}

func (t *Rank3) Flat() []float64 {
	out := make([]float64, 0, 27)
	for i := range t {
		for j := range t[i] {
			out = append(out, t[i][j][:]...)
		}
	}
	return out
}

func (t *Rank4) Flat() []float64 {
	out := make([]float64, 0, 81)
	for i := range t {
		for j := range t[i] {
			for k := range t[i][j] {
				out = append(out, t[i][j][k][:]...)
			}
		}
	}
	return out
}

// Rank2FromFlat, Rank3FromFlat and Rank4FromFlat panic when the slice does
// not hold exactly 3^rank components.
func Rank2FromFlat(f []float64) (t Rank2) {
	mustLen(f, 9)
	for i := 0; i < 3; i++ {
		copy(t[i][:], f[3*i:3*i+3])
	}
	return
}

func Rank3FromFlat(f []float64) (t Rank3) {
	mustLen(f, 27)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			o := 9*i + 3*j
			copy(t[i][j][:], f[o:o+3])
		}
	}
	return
}

func Rank4FromFlat(f []float64) (t Rank4) {
	mustLen(f, 81)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				o := 27*i + 9*j + 3*k
				copy(t[i][j][k][:], f[o:o+3])
			}
		}
	}
	return
}

// Rows returns the condensed matrix as freshly allocated rows.
func (c *PiezoVoigt) Rows() [][]float64 {
	out := make([][]float64, 3)
	for i := range c {
		out[i] = append([]float64(nil), c[i][:]...)
	}
	return out
}

func (c *ElasticVoigt) Rows() [][]float64 {
	out := make([][]float64, 6)
	for i := range c {
		out[i] = append([]float64(nil), c[i][:]...)
	}
	return out
}

func (t *Rank2) Rows() [][]float64 {
	out := make([][]float64, 3)
	for i := range t {
		out[i] = append([]float64(nil), t[i][:]...)
	}
	return out
}

func mustLen(v []float64, n int) {
	if len(v) != n {
		panic(fmt.Sprintf("tensor: expected %d components, got %d", n, len(v)))
	}
}
