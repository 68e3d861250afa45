package sparse

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// CSR is an immutable square sparse matrix in compressed row form:
// column indices within each row are sorted and unique. It implements
// gonum's mat.Matrix, so it can be rendered with mat.Formatted and
// consumed by dense routines directly.
type CSR struct {
	n      int
	rowptr []int
	colind []int
	data   []float64
}

func newCSR(n int, rows []map[int]float64) *CSR {
	m := &CSR{
		n:      n,
		rowptr: make([]int, n+1),
	}
	for i, row := range rows {
		cols := make([]int, 0, len(row))
		for j := range row {
			cols = append(cols, j)
		}
		sort.Ints(cols)
		for _, j := range cols {
			m.colind = append(m.colind, j)
			m.data = append(m.data, row[j])
		}
		m.rowptr[i+1] = len(m.colind)
	}
	return m
}

// Dims returns the matrix dimensions.
func (m *CSR) Dims() (r, c int) { return m.n, m.n }

// At returns the element at (i, j), zero when the position is not
// stored.
func (m *CSR) At(i, j int) float64 {
	lo, hi := m.rowptr[i], m.rowptr[i+1]
	k := lo + sort.SearchInts(m.colind[lo:hi], j)
	if k < hi && m.colind[k] == j {
		return m.data[k]
	}
	return 0
}

// T returns the transpose via gonum's lazy wrapper.
func (m *CSR) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// NNZ returns the number of stored entries.
func (m *CSR) NNZ() int { return len(m.data) }

// Row returns the stored column indices and values of row i. The
// returned slices alias internal storage and must not be modified.
func (m *CSR) Row(i int) (cols []int, vals []float64) {
	lo, hi := m.rowptr[i], m.rowptr[i+1]
	return m.colind[lo:hi], m.data[lo:hi]
}

// MulVec computes A*x.
func (m *CSR) MulVec(x []float64) []float64 {
	if len(x) != m.n {
		panic("sparse: dimension mismatch in MulVec")
	}
	y := make([]float64, m.n)
	for i := 0; i < m.n; i++ {
		cols, vals := m.Row(i)
		tot := 0.0
		for k, j := range cols {
			tot += vals[k] * x[j]
		}
		y[i] = tot
	}
	return y
}

// ToDense renders the matrix densely for inspection.
func (m *CSR) ToDense() *mat.Dense {
	d := mat.NewDense(m.n, m.n, nil)
	for i := 0; i < m.n; i++ {
		cols, vals := m.Row(i)
		for k, j := range cols {
			d.Set(i, j, vals[k])
		}
	}
	return d
}
