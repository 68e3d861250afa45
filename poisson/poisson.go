// Package poisson wires the full pipeline for the 1D boundary-value
// problem -u'' = f on [0,1] with u(0) = u(1) = 0: uniform mesh,
// stiffness/load assembly, Dirichlet enforcement, then a direct sparse
// solve. Each stage is a pure transformation; a solve either completes
// or fails, with no partial results.
package poisson

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/femsolve/poisson1d/assembly"
	"github.com/femsolve/poisson1d/element"
	"github.com/femsolve/poisson1d/mesh"
	"github.com/femsolve/poisson1d/sparse"
)

// Solution is a solved problem instance. U is index-aligned with
// Points, one value per mesh vertex. The constrained system that
// produced it stays available for inspection.
type Solution struct {
	Points []float64   // vertex coordinates
	U      []float64   // nodal solution values
	Matrix *sparse.CSR // constrained operator
	Load   []float64   // constrained load vector
}

// Solve discretizes p on a uniform mesh with n vertices and solves it
// with the sparse elimination solver.
func Solve(n int, p Problem) (*Solution, error) {
	return SolveWith(n, p, sparse.GaussJordan{})
}

// SolveWith runs the pipeline with an explicit solver choice.
func SolveWith(n int, p Problem, solver sparse.Solver) (*Solution, error) {
	m, err := mesh.NewUniform1D(n)
	if err != nil {
		return nil, err
	}

	sys, err := assembly.Assemble(m, p.F)
	if err != nil {
		return nil, err
	}
	sys.ApplyDirichlet()

	A, b := sys.Compress()
	u, err := solver.Solve(A, b)
	if err != nil {
		return nil, err
	}

	return &Solution{Points: m.Points, U: u, Matrix: A, Load: b}, nil
}

// NodalL2Error returns the relative nodal L2 error of the solution
// against an exact callable, norm2(u - u_exact) / norm2(u_exact) over
// the vertices. Returns element.ErrNonFinite when the callable misbehaves
// at a vertex, since a silent NaN would corrupt any convergence study
// built on top.
func (s *Solution) NodalL2Error(exact func(x float64) float64) (float64, error) {
	want := make([]float64, len(s.Points))
	for i, x := range s.Points {
		v := exact(x)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%w: u_exact(%g) = %g", element.ErrNonFinite, x, v)
		}
		want[i] = v
	}

	diff := make([]float64, len(want))
	floats.SubTo(diff, s.U, want)
	denom := floats.Norm(want, 2)
	if denom == 0 {
		return floats.Norm(diff, 2), nil
	}
	return floats.Norm(diff, 2) / denom, nil
}
