package symmetry

import (
	"fmt"
	"strings"

	"github.com/notargets/tensym/tensor"
	"gonum.org/v1/gonum/mat"
)

// FormatProjector renders the projector of a resolved label as a static
// table, one bracketed row per line, for inspection and diffing.
func FormatProjector(k tensor.Kind, l Label) (string, error) {
	p, err := Projector(k, l)
	if err != nil {
		return "", err
	}
	return formatMatrix(fmt.Sprintf("%s %s", k, l), p), nil
}

func formatMatrix(name string, m mat.Matrix) string {
	rows, cols := m.Dims()
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s [%d][%d] = {\n", name, rows, cols))
	for i := 0; i < rows; i++ {
		sb.WriteString("    {")
		for j := 0; j < cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(fmt.Sprintf("%8.5f", m.At(i, j)))
		}
		sb.WriteString("}")
		if i < rows-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n")

	return sb.String()
}
