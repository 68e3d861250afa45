package mesh

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUniform1D(t *testing.T) {
	for _, n := range []int{2, 3, 6, 101} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			m, err := NewUniform1D(n)
			require.NoError(t, err)

			assert.Equal(t, n, m.NumVerts())
			assert.Equal(t, n-1, m.NumElems())
			assert.InDelta(t, 1/float64(n-1), m.H, 1e-15)

			// Endpoints land exactly on the domain boundary.
			assert.Equal(t, 0.0, m.Points[0])
			assert.InDelta(t, 1.0, m.Points[n-1], 1e-15)

			// Uniform spacing, strictly increasing.
			for i := 1; i < n; i++ {
				assert.InDelta(t, m.H, m.Points[i]-m.Points[i-1], 1e-15)
				assert.Greater(t, m.Points[i], m.Points[i-1])
			}

			// Each element k connects vertices (k, k+1).
			for k, ev := range m.EToV {
				assert.Equal(t, [2]int{k, k + 1}, ev)
			}

			left, right := m.Boundary()
			assert.Equal(t, 0, left)
			assert.Equal(t, n-1, right)
		})
	}
}

func TestNewUniform1DInvalid(t *testing.T) {
	for _, n := range []int{1, 0, -3} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			m, err := NewUniform1D(n)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, ErrInvalidMesh)
		})
	}
}

func TestMeshSmallest(t *testing.T) {
	// n=2 is the smallest legal mesh: one element spanning [0,1].
	m, err := NewUniform1D(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, m.Points)
	assert.Equal(t, [][2]int{{0, 1}}, m.EToV)
	assert.Equal(t, 1.0, m.H)
}
