// Copyright 2024 The QubitControl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package integrator implements the Padé geometric integrators used as
// equality-constraint residuals between successive time steps. Both the
// second-order (SOP) and fourth-order (FOP) Padé approximants expose
// analytic first derivatives (for the constraint Jacobian) and analytic
// contributions to the Hessian of the Lagrangian given a vector of
// multipliers μ.
package integrator

import (
	"gonum.org/v1/gonum/mat"

	"github.com/aarontrowbridge/qubitctrl/qsys"
)

// Integrator is the closed sum type SOP|FOP: both variants expose the
// same residual/derivative contract, dispatching internally on which
// scheme they implement. SOP's second-order-in-control terms are exact
// zeros rather than stub methods, preferring exhaustive match arms over
// inheritance stubs.
type Integrator interface {
	// Order reports the integrator's accuracy order (2 or 4), used by
	// convergence-rate tests.
	Order() int

	// Residual computes Pⁱₜ for one qstate between successive iso
	// states ψ̃ₜ, ψ̃ₜ₊₁ under control a and step Δt.
	Residual(psiT, psiT1, a []float64, dt float64) []float64

	// DPsiT returns ∂P/∂ψ̃ₜ, an isodim×isodim matrix.
	DPsiT(a []float64, dt float64) *mat.Dense

	// DPsiT1 returns ∂P/∂ψ̃ₜ₊₁, an isodim×isodim matrix.
	DPsiT1(a []float64, dt float64) *mat.Dense

	// DA returns ∂P/∂a, an isodim×ncontrols matrix (column j is ∂P/∂a_j).
	DA(psiT, psiT1, a []float64, dt float64) *mat.Dense

	// DDt returns ∂P/∂Δt, a length-isodim vector.
	DDt(psiT, psiT1, a []float64, dt float64) []float64

	// MuDADA returns μ·∂²P/∂a², an ncontrols×ncontrols symmetric matrix.
	// Exactly zero for SOP.
	MuDADA(mu, psiT, psiT1, a []float64, dt float64) *mat.Dense

	// MuDADPsiT returns μ·∂a∂ψ̃ₜ, an ncontrols×isodim matrix.
	MuDADPsiT(mu, a []float64, dt float64) *mat.Dense

	// MuDADPsiT1 returns μ·∂a∂ψ̃ₜ₊₁, an ncontrols×isodim matrix.
	MuDADPsiT1(mu, a []float64, dt float64) *mat.Dense

	// MuDDt2 returns μ·∂²Δt, a scalar. Exactly zero for SOP.
	MuDDt2(mu, psiT, psiT1, a []float64, dt float64) float64

	// MuDDtDPsiT returns μ·∂Δt∂ψ̃ₜ, a length-isodim vector.
	MuDDtDPsiT(mu, a []float64, dt float64) []float64

	// MuDDtDPsiT1 returns μ·∂Δt∂ψ̃ₜ₊₁, a length-isodim vector.
	MuDDtDPsiT1(mu, a []float64, dt float64) []float64

	// MuDDtDA returns μ·∂Δt∂a, a length-ncontrols vector.
	MuDDtDA(mu, psiT, psiT1, a []float64, dt float64) []float64
}

// vecSub returns a-b.
func vecSub(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

// vecAdd returns a+b.
func vecAdd(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}

// matVec returns A*v.
func matVec(A mat.Matrix, v []float64) []float64 {
	r, _ := A.Dims()
	vd := mat.NewVecDense(r, nil)
	vd.MulVec(A, mat.NewVecDense(len(v), v))
	out := make([]float64, r)
	for i := 0; i < r; i++ {
		out[i] = vd.AtVec(i)
	}
	return out
}

// dot returns <a,b>.
func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

// identity returns the n×n identity matrix.
func identity(n int) *mat.Dense {
	out := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		out.Set(i, i, 1)
	}
	return out
}

// scale returns alpha*A.
func scale(alpha float64, A mat.Matrix) *mat.Dense {
	r, c := A.Dims()
	out := mat.NewDense(r, c, nil)
	out.Scale(alpha, A)
	return out
}

// sys is embedded by both SOP and FOP to share the generator-at-a helper.
type sys struct {
	Sys *qsys.System
}

func (s sys) gAt(a []float64) *mat.Dense { return s.Sys.GeneratorAt(a) }
