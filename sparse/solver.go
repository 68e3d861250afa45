package sparse

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// ErrSingularSystem indicates the solver could not factor the matrix.
// For an assembled-and-constrained system this points at a defective
// boundary-condition enforcement rather than bad input data.
var ErrSingularSystem = errors.New("sparse: singular system")

// Solver solves A*x = b for x. Implementations must not modify A or b.
type Solver interface {
	Solve(A *CSR, b []float64) ([]float64, error)
}

// GaussJordan is a direct elimination solver that works on a mutable
// sparse copy of the matrix. For each column the pivot is the first
// not-yet-used row (in index order) holding a nonzero there, which for
// the diagonally dominant banded systems produced by 1D assembly
// selects the diagonal and keeps constrained unit rows intact, so
// boundary values solve to exact zeros. The scan order makes repeated
// solves bit-identical.
type GaussJordan struct{}

// Solve performs the elimination. Returns ErrSingularSystem when a
// column has no usable pivot.
func (GaussJordan) Solve(A *CSR, b []float64) ([]float64, error) {
	n, _ := A.Dims()
	if len(b) != n {
		return nil, fmt.Errorf("sparse: matrix is %dx%d but vector has length %d", n, n, len(b))
	}

	// Mutable working copy: one column-indexed map per row, plus a
	// row-indexed map per column for pivot lookup.
	rows := make([]map[int]float64, n)
	colrows := make([]map[int]bool, n)
	for j := range colrows {
		colrows[j] = make(map[int]bool)
	}
	for i := 0; i < n; i++ {
		cols, vals := A.Row(i)
		rows[i] = make(map[int]float64, len(cols))
		for k, j := range cols {
			rows[i][j] = vals[k]
			colrows[j][i] = true
		}
	}
	rhs := append([]float64(nil), b...)

	set := func(i, j int, v float64) {
		if v == 0 {
			delete(rows[i], j)
			delete(colrows[j], i)
			return
		}
		rows[i][j] = v
		colrows[j][i] = true
	}

	// Forward elimination: pick each column's pivot, then cancel that
	// column from the remaining unused rows.
	used := make([]bool, n)
	pivots := make([]int, n)
	for j := 0; j < n; j++ {
		piv := -1
		for i := 0; i < n; i++ {
			if !used[i] && rows[i][j] != 0 {
				piv = i
				break
			}
		}
		if piv == -1 {
			return nil, fmt.Errorf("%w: no pivot for column %d", ErrSingularSystem, j)
		}
		pivots[j] = piv
		used[piv] = true

		var targets []int
		for i := range colrows[j] {
			if !used[i] {
				targets = append(targets, i)
			}
		}

		pval := rows[piv][j]
		for _, i := range targets {
			mult := -rows[i][j] / pval
			for c, pv := range rows[piv] {
				if c != j {
					set(i, c, rows[i][c]+mult*pv)
				}
			}
			// The pivot column cancels exactly.
			set(i, j, 0)
			rhs[i] += mult * rhs[piv]
		}
	}

	// Back substitution in reverse pivot-column order. After
	// elimination, pivot row of column j holds nonzeros only at j and
	// at later pivot columns. Columns are accumulated in sorted order
	// so the rounding, and therefore the result, is reproducible
	// bit-for-bit.
	x := make([]float64, n)
	cols := make([]int, 0, n)
	for j := n - 1; j >= 0; j-- {
		piv := pivots[j]
		cols = cols[:0]
		for c := range rows[piv] {
			cols = append(cols, c)
		}
		sort.Ints(cols)

		tot := rhs[piv]
		for _, c := range cols {
			if c != j {
				tot -= rows[piv][c] * x[c]
			}
		}
		x[j] = tot / rows[piv][j]
	}
	return x, nil
}

// DenseLU renders the matrix densely and delegates to gonum's LU-based
// dense solve. It exists as an independent cross-check for the sparse
// elimination path and is fine for the small systems this package
// targets.
type DenseLU struct{}

// Solve solves A*x = b through gonum. Returns ErrSingularSystem when
// gonum reports the matrix as singular or near-singular.
func (DenseLU) Solve(A *CSR, b []float64) ([]float64, error) {
	var x mat.VecDense
	rhs := mat.NewVecDense(len(b), append([]float64(nil), b...))
	if err := x.SolveVec(A, rhs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularSystem, err)
	}
	out := make([]float64, len(b))
	for i := range out {
		out[i] = x.AtVec(i)
	}
	return out, nil
}
