// Package assembly builds the global stiffness matrix and load vector
// for the 1D Poisson problem -u'' = f from per-element reference
// contributions, and applies homogeneous Dirichlet conditions at the
// domain endpoints.
package assembly

import (
	"gonum.org/v1/gonum/mat"

	"github.com/femsolve/poisson1d/element"
	"github.com/femsolve/poisson1d/mesh"
	"github.com/femsolve/poisson1d/sparse"
)

// System is an assembled global operator. K holds the stiffness
// contributions in triplet form with element duplicates preserved; B is
// the dense load vector. Both are indexed by global vertex index.
type System struct {
	K *sparse.COO
	B []float64

	left, right int // boundary vertex indices
}

// Assemble walks the mesh elements and accumulates each element's
// scaled reference stiffness block and nodal load contributions into a
// fresh triplet accumulator and load vector. The element loop maps the
// local 2x2 block to global indices [va, vb] x [va, vb] through the
// connectivity table; load contributions add at shared endpoints, so an
// interior vertex receives terms from both neighboring elements.
//
// The returned system is unconstrained: symmetric, zero row sums, and
// singular with the constant vector in its null space. ApplyDirichlet
// must run before solving.
func Assemble(m *mesh.Mesh, f element.SourceFunc) (*System, error) {
	n := m.NumVerts()
	coo := sparse.NewCOO(n)
	b := make([]float64, n)

	// The reference stiffness is constant; scale one copy per element.
	local := element.RefStiffness()
	scaled := mat.NewDense(2, 2, nil)
	scaled.Scale(1/m.H, local)

	for _, ev := range m.EToV {
		va, vb := ev[0], ev[1]
		coo.Add([]int{va, vb}, []int{va, vb}, scaled)

		fa, fb, err := element.LoadRule(f, m.Points[va], m.Points[vb], m.H)
		if err != nil {
			return nil, err
		}
		b[va] += fa
		b[vb] += fb
	}

	left, right := m.Boundary()
	return &System{K: coo, B: b, left: left, right: right}, nil
}

// ApplyDirichlet rewrites the system in place to impose u = 0 at both
// domain endpoints. It operates on the raw triplet sequence, before any
// duplicate summing: every triplet on a boundary row becomes 1 on the
// diagonal and 0 off it, and the boundary load entries are zeroed. No
// triplets are added or removed, so the sparsity pattern is untouched.
//
// Post-condition: each boundary row compacts to a single unit diagonal
// entry, which restores invertibility of the otherwise singular
// operator.
func (s *System) ApplyDirichlet() {
	for k := 0; k < s.K.NNZ(); k++ {
		row, col, _ := s.K.Entry(k)
		if row != s.left && row != s.right {
			continue
		}
		if row == col {
			s.K.SetVal(k, 1)
		} else {
			s.K.SetVal(k, 0)
		}
	}
	s.B[s.left] = 0
	s.B[s.right] = 0
}

// Compress finalizes the triplet representation into the row-indexed
// compressed form the solvers consume, alongside a copy of the load
// vector.
func (s *System) Compress() (*sparse.CSR, []float64) {
	return s.K.Compress(), append([]float64(nil), s.B...)
}
