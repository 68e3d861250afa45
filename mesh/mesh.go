// Package mesh generates uniform one-dimensional meshes over the unit
// interval [0,1].
package mesh

import (
	"errors"
	"fmt"
)

// ErrInvalidMesh indicates a point count too small to form at least one
// element.
var ErrInvalidMesh = errors.New("mesh: invalid point count")

// Mesh is a uniform discretization of [0,1] into line elements. Vertex
// index order is position order: Points[i] < Points[i+1] always holds.
type Mesh struct {
	Points []float64 // Vertex coordinates, Points[i] = i*H
	EToV   [][2]int  // Element-to-vertex connectivity, EToV[k] = (k, k+1)
	H      float64   // Uniform vertex spacing, 1/(n-1)
}

// NewUniform1D builds a mesh with n evenly spaced vertices and n-1 line
// elements. Returns ErrInvalidMesh when n < 2.
func NewUniform1D(n int) (*Mesh, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 points to form an element, got %d", ErrInvalidMesh, n)
	}

	h := 1 / float64(n-1)
	m := &Mesh{
		Points: make([]float64, n),
		EToV:   make([][2]int, n-1),
		H:      h,
	}
	for i := range m.Points {
		m.Points[i] = float64(i) * h
	}
	for k := range m.EToV {
		m.EToV[k] = [2]int{k, k + 1}
	}
	return m, nil
}

// NumVerts returns the number of vertices, one degree of freedom each.
func (m *Mesh) NumVerts() int { return len(m.Points) }

// NumElems returns the number of line elements.
func (m *Mesh) NumElems() int { return len(m.EToV) }

// Boundary returns the vertex indices of the two domain endpoints.
func (m *Mesh) Boundary() (left, right int) { return 0, len(m.Points) - 1 }

func (m *Mesh) String() string {
	return fmt.Sprintf("Mesh{verts: %d, elems: %d, h: %g}", m.NumVerts(), m.NumElems(), m.H)
}
