package tensor

// The lattice tensor has no intrinsic index symmetry: its condensed form is
// the 3x3 matrix itself and its vector is the row-major component list,
// which is already orthonormal.

func LatticeToVector(t Rank2) []float64 {
	return t.Flat()
}

// LatticeVectorToRank2 panics unless len(v) is 9.
func LatticeVectorToRank2(v []float64) Rank2 {
	return Rank2FromFlat(v)
}
