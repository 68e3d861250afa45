package poisson

import (
	"math"

	"github.com/femsolve/poisson1d/element"
)

// Problem pairs a source term f with an optional closed-form exact
// solution. The solver consumes only the callables; which problem runs
// is always an explicit choice by the caller, never an implicit
// branch inside the pipeline.
type Problem struct {
	Name  string
	F     element.SourceFunc
	Exact func(x float64) float64 // nil when no closed form is known
}

// ConstantSource is the polynomial test problem: -u'' = c with
// u(x) = (c/2)·x·(1-x). Linear elements recover this solution exactly
// at the vertices under the nodal load rule, so it doubles as an
// exactness check.
func ConstantSource(c float64) Problem {
	return Problem{
		Name:  "constant-source",
		F:     func(x float64) float64 { return c },
		Exact: func(x float64) float64 { return c / 2 * x * (1 - x) },
	}
}

// Sinusoidal is the oscillatory test problem: u(x) = sin(kπx) with
// f = (kπ)²·sin(kπx). Used for convergence studies.
func Sinusoidal(k int) Problem {
	kpi := float64(k) * math.Pi
	return Problem{
		Name:  "sinusoidal",
		F:     func(x float64) float64 { return kpi * kpi * math.Sin(kpi*x) },
		Exact: func(x float64) float64 { return math.Sin(kpi * x) },
	}
}

// GaussianSource is a localized bump source centered at c with width
// sigma. It has no closed-form exact solution.
func GaussianSource(c, sigma float64) Problem {
	return Problem{
		Name: "gaussian-source",
		F: func(x float64) float64 {
			d := (x - c) / sigma
			return math.Exp(-d * d / 2)
		},
	}
}
