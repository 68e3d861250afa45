// Package element defines the linear reference element on the unit
// interval: its local stiffness operator and its nodal load quadrature.
package element

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrNonFinite indicates a source or exact-solution callable returned
// NaN or Inf at a queried coordinate.
var ErrNonFinite = errors.New("element: non-finite function value")

// SourceFunc is a pointwise right-hand-side term f(x) for -u'' = f.
type SourceFunc func(x float64) float64

// RefStiffness returns the local stiffness matrix for linear basis
// functions on the unit reference interval,
//
//	∫ φ_i' φ_j' dx = [ 1 -1 ]
//	                 [-1  1 ]
//
// The matrix is mesh-independent; each physical element scales it by
// 1/h during assembly. A fresh matrix is returned each call so callers
// may scale it in place.
func RefStiffness() *mat.Dense {
	return mat.NewDense(2, 2, []float64{
		1, -1,
		-1, 1,
	})
}

// LoadRule evaluates the two nodal load contributions of one element
// with endpoints xa, xb and spacing h:
//
//	fa = f(xa)*h/2,  fb = f(xb)*h/2
//
// This is a 2-point nodal quadrature, not exact integration of f*φ.
// The lower-order rule is intentional: it recovers quadratic exact
// solutions at the nodes, which downstream convergence checks rely on.
// Returns ErrNonFinite when f evaluates to NaN or Inf at an endpoint.
func LoadRule(f SourceFunc, xa, xb, h float64) (fa, fb float64, err error) {
	va, vb := f(xa), f(xb)
	if !isFinite(va) {
		return 0, 0, fmt.Errorf("%w: f(%g) = %g", ErrNonFinite, xa, va)
	}
	if !isFinite(vb) {
		return 0, 0, fmt.Errorf("%w: f(%g) = %g", ErrNonFinite, xb, vb)
	}
	return va * h / 2, vb * h / 2, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
