package material

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/phil-mansfield/table"
)

// ReadJSON decodes one nested JSON array and builds its tensor.
func ReadJSON(r io.Reader, opts ...Option) (*Tensor, error) {
	var data any
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("material: decoding JSON: %w", err)
	}
	return New(data, opts...)
}

// ReadTable reads a whitespace separated text table. Several rows form a
// condensed matrix (or the lattice 3x3); a single row is a vector, or a
// flattened Cartesian tensor when it holds 27 or 81 numbers. Lines
// starting with # are comments.
func ReadTable(fname string, opts ...Option) (*Tensor, error) {
	n, err := countColumns(fname)
	if err != nil {
		return nil, err
	}
	colIdxs := make([]int, n)
	for i := range colIdxs {
		colIdxs[i] = i
	}
	cols, err := table.ReadTable(fname, colIdxs, nil)
	if err != nil {
		return nil, fmt.Errorf("material: reading %s: %w", fname, err)
	}

	rows := make([][]float64, len(cols[0]))
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range cols {
			rows[i][j] = cols[j][i]
		}
	}

	var data any = rows
	if len(rows) == 1 {
		switch len(rows[0]) {
		case 27:
			data = nest3(rows[0])
		case 81:
			data = nest4(rows[0])
		default:
			data = rows[0]
		}
	}
	return New(data, opts...)
}

// countColumns returns the number of fields on the first data line.
func countColumns(fname string) (int, error) {
	f, err := os.Open(fname)
	if err != nil {
		return 0, fmt.Errorf("material: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return len(strings.Fields(line)), nil
	}
	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("material: reading %s: %w", fname, err)
	}
	return 0, fmt.Errorf("material: %s holds no data", fname)
}
