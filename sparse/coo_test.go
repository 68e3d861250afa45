package sparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestCOODuplicateSummation(t *testing.T) {
	// Duplicate (row, col) positions survive until compaction, then
	// sum: (4,4) receives 5 and 50 and finalizes to 55.
	triplets := []struct {
		row, col int
		val      float64
	}{
		{0, 4, 7},
		{2, 1, 7},
		{3, 2, 7},
		{4, 4, 5},
		{4, 4, 50},
	}

	c := NewCOO(5)
	for _, tr := range triplets {
		c.Append(tr.row, tr.col, tr.val)
	}
	require.Equal(t, 5, c.NNZ(), "duplicates must be preserved pre-compaction")

	want := mat.NewDense(5, 5, nil)
	want.Set(0, 4, 7)
	want.Set(2, 1, 7)
	want.Set(3, 2, 7)
	want.Set(4, 4, 55)

	assert.True(t, mat.Equal(want, c.ToDense()), "dense render mismatch:\n%v", mat.Formatted(c.ToDense()))
	assert.True(t, mat.Equal(want, c.Compress().ToDense()), "compressed render mismatch")
}

func TestCOOAddBlock(t *testing.T) {
	c := NewCOO(4)
	block := mat.NewDense(2, 2, []float64{
		1, -1,
		-1, 1,
	})
	c.Add([]int{1, 2}, []int{1, 2}, block)
	c.Add([]int{2, 3}, []int{2, 3}, block)
	assert.Equal(t, 8, c.NNZ())

	d := c.ToDense()
	// Shared vertex 2 accumulates both blocks' diagonal terms.
	assert.Equal(t, 2.0, d.At(2, 2))
	assert.Equal(t, 1.0, d.At(1, 1))
	assert.Equal(t, 1.0, d.At(3, 3))
	assert.Equal(t, -1.0, d.At(1, 2))
	assert.Equal(t, -1.0, d.At(2, 1))
	assert.Equal(t, 0.0, d.At(0, 0))
}

func TestCOOAddBlockMismatch(t *testing.T) {
	c := NewCOO(4)
	block := mat.NewDense(2, 2, nil)
	assert.Panics(t, func() { c.Add([]int{0, 1, 2}, []int{0, 1}, block) })
}

func TestCOOAppendOutOfRange(t *testing.T) {
	c := NewCOO(3)
	assert.Panics(t, func() { c.Append(3, 0, 1) })
	assert.Panics(t, func() { c.Append(0, -1, 1) })
}

func TestCOOSetVal(t *testing.T) {
	// SetVal rewrites one triplet without merging or reordering; this
	// is what boundary-row rewriting relies on.
	c := NewCOO(3)
	c.Append(0, 0, 2)
	c.Append(0, 0, 3)
	c.Append(0, 1, 4)

	c.SetVal(1, 10)
	row, col, val := c.Entry(1)
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, col)
	assert.Equal(t, 10.0, val)
	assert.Equal(t, 3, c.NNZ())
	assert.Equal(t, 12.0, c.Compress().At(0, 0))
}

func TestCSRAccessors(t *testing.T) {
	c := NewCOO(3)
	c.Append(0, 0, 2)
	c.Append(0, 2, 1)
	c.Append(1, 1, 5)
	c.Append(2, 0, -1)
	m := c.Compress()

	r, n := m.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, n)
	assert.Equal(t, 4, m.NNZ())
	assert.Equal(t, 2.0, m.At(0, 0))
	assert.Equal(t, 1.0, m.At(0, 2))
	assert.Equal(t, 0.0, m.At(0, 1))
	assert.Equal(t, 0.0, m.At(2, 2))

	cols, vals := m.Row(0)
	assert.Equal(t, []int{0, 2}, cols)
	assert.Equal(t, []float64{2, 1}, vals)

	y := m.MulVec([]float64{1, 2, 3})
	assert.InDeltaSlice(t, []float64{5, 10, -1}, y, 1e-15)
}
