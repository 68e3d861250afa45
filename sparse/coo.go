// Package sparse provides the coordinate-format (triplet) accumulator
// used during finite element assembly, the compressed row structure it
// finalizes into, and direct solvers over that structure.
package sparse

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// COO is a growable coordinate-format builder for a square sparse
// matrix. Entries are recorded as (row, col, value) triplets in append
// order; multiple triplets may share a (row, col) position and are kept
// separate until Compress or ToDense sums them. This is the
// assembly-friendly representation: element contributions at shared
// vertices are appended independently and merged once at the end.
//
// A COO is a per-assembly scratch structure. Create one per assembly
// call; it is not safe for concurrent use.
type COO struct {
	n    int
	rows []int
	cols []int
	vals []float64
}

// NewCOO creates an empty triplet accumulator for an n x n matrix.
func NewCOO(n int) *COO {
	return &COO{n: n}
}

// Dims returns the logical matrix dimensions.
func (c *COO) Dims() (r, n int) { return c.n, c.n }

// NNZ returns the number of stored triplets, duplicates included.
func (c *COO) NNZ() int { return len(c.vals) }

// Append records a single triplet. No merging occurs even if the
// position was recorded before.
func (c *COO) Append(row, col int, val float64) {
	if row < 0 || row >= c.n || col < 0 || col >= c.n {
		panic(fmt.Sprintf("sparse: triplet (%d,%d) outside %dx%d matrix", row, col, c.n, c.n))
	}
	c.rows = append(c.rows, row)
	c.cols = append(c.cols, col)
	c.vals = append(c.vals, val)
}

// Add appends a dense block against the cross product of the two index
// lists: block.At(i,j) is recorded at global position (rows[i],
// cols[j]). Existing triplets at the same position are left untouched.
func (c *COO) Add(rows, cols []int, block mat.Matrix) {
	br, bc := block.Dims()
	if br != len(rows) || bc != len(cols) {
		panic(fmt.Sprintf("sparse: %dx%d block does not match %dx%d index lists", br, bc, len(rows), len(cols)))
	}
	for i, row := range rows {
		for j, col := range cols {
			c.Append(row, col, block.At(i, j))
		}
	}
}

// Entry returns triplet k in append order.
func (c *COO) Entry(k int) (row, col int, val float64) {
	return c.rows[k], c.cols[k], c.vals[k]
}

// SetVal rewrites the value of triplet k, keeping its position. This is
// the hook for post-assembly transforms (boundary-condition row
// rewriting) that must operate on the still-duplicated triplet
// representation rather than the summed matrix.
func (c *COO) SetVal(k int, val float64) {
	c.vals[k] = val
}

// ToDense materializes the accumulated matrix with duplicate positions
// summed. Intended for inspection and equality checks in tests.
func (c *COO) ToDense() *mat.Dense {
	d := mat.NewDense(c.n, c.n, nil)
	for k, v := range c.vals {
		i, j := c.rows[k], c.cols[k]
		d.Set(i, j, d.At(i, j)+v)
	}
	return d
}

// Compress sums triplets sharing a (row, col) position and returns the
// immutable row-indexed compressed form used for solving. The COO
// remains valid and unchanged afterwards.
func (c *COO) Compress() *CSR {
	merged := make([]map[int]float64, c.n)
	for i := range merged {
		merged[i] = make(map[int]float64)
	}
	for k, v := range c.vals {
		merged[c.rows[k]][c.cols[k]] += v
	}
	return newCSR(c.n, merged)
}
