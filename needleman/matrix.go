package needleman

import (
	"strconv"
	"strings"
)

// costMatrix is a row-major (rows×cols) table of float64 cells stored in
// one flat slice. Indices are trusted: the recurrence only visits cells
// inside the table, so no bounds errors are reported here.
type costMatrix struct {
	rows, cols int
	data       []float64 // len == rows*cols
}

// newCostMatrix allocates a zeroed rows×cols table.
// Complexity: O(rows·cols) time and memory.
func newCostMatrix(rows, cols int) *costMatrix {
	return &costMatrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// at returns cell (i, j).
func (d *costMatrix) at(i, j int) float64 {
	return d.data[i*d.cols+j]
}

// set assigns cell (i, j).
func (d *costMatrix) set(i, j int, v float64) {
	d.data[i*d.cols+j] = v
}

// String renders one bracketed row per line. The engine never calls it; it
// exists so tests can pin whole matrices in one assertion.
func (d *costMatrix) String() string {
	var sb strings.Builder
	for i := 0; i < d.rows; i++ {
		sb.WriteByte('[')
		for j := 0; j < d.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(d.at(i, j), 'g', -1, 64))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
