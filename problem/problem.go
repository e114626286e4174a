// Copyright 2024 The QubitControl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package problem assembles dynamics, objective, and constraint into
// the minimal callback surface an external sparse interior-point solver
// needs: objective value/gradient, stacked constraint residuals with
// their Jacobian (structure,values), variable/constraint bounds, and
// the Hessian of the Lagrangian.
package problem

import (
	"math"

	"github.com/aarontrowbridge/qubitctrl/constraint"
	"github.com/aarontrowbridge/qubitctrl/dynamics"
	"github.com/aarontrowbridge/qubitctrl/iso"
	"github.com/aarontrowbridge/qubitctrl/objective"
	"github.com/aarontrowbridge/qubitctrl/qcerr"
	"github.com/aarontrowbridge/qubitctrl/qsys"
)

// TimeMode selects how Δt is treated across the trajectory.
type TimeMode int

const (
	// FixedTime pins every Δt to a caller-supplied value.
	FixedTime TimeMode = iota
	// FreeTime lets every Δt vary within bounds but keeps all steps tied
	// to the shared duplicate Δ̄t (uniform step size).
	FreeTime
	// MinTime additionally minimizes total duration via
	// objective.MinTimeObjective, letting Δt vary freely per step.
	MinTime
)

// Problem is one fully-wired quantum optimal control NLP.
type Problem struct {
	Sys    *qsys.System
	Layout iso.Layout
	Dyn    *dynamics.Dynamics
	Obj    objective.Objective
	Eq     constraint.Equalities
	VarLo  []float64
	VarHi  []float64

	jacStructure  []JacEntry
	hessStructure []HessEntry
}

// JacEntry is one (row,col) position of the stacked constraint Jacobian
// [dynamics; linear equalities].
type JacEntry struct{ Row, Col int }

// HessEntry is one (row,col) position (row<=col) of the Hessian of the
// Lagrangian [objective + dynamics; linear equalities contribute zero].
type HessEntry struct{ Row, Col int }

// New assembles a Problem from its parts, pre-stacking the constant
// Jacobian and Hessian sparsity patterns once.
func New(sys *qsys.System, layout iso.Layout, dyn *dynamics.Dynamics, obj objective.Objective,
	eq constraint.Equalities, bounds constraint.Bounds) *Problem {

	n := layout.Size()
	lo := make([]float64, n)
	hi := make([]float64, n)
	for i := range lo {
		lo[i] = negInf
		hi[i] = posInf
	}
	bounds.Apply(lo, hi)

	p := &Problem{Sys: sys, Layout: layout, Dyn: dyn, Obj: obj, Eq: eq, VarLo: lo, VarHi: hi}

	for _, e := range dyn.JacobianStructure(layout) {
		p.jacStructure = append(p.jacStructure, JacEntry{e.Row, e.Col})
	}
	dynRows := dyn.Dim(layout)
	for _, e := range eq.JacStructure() {
		p.jacStructure = append(p.jacStructure, JacEntry{dynRows + e.Row, e.Col})
	}

	for _, e := range obj.Structure() {
		p.hessStructure = append(p.hessStructure, HessEntry{e.Row, e.Col})
	}
	for _, e := range dyn.HessianStructure(layout) {
		p.hessStructure = append(p.hessStructure, HessEntry{e.Row, e.Col})
	}

	return p
}

const (
	posInf = +1e300 // solver-agnostic stand-in for +Inf on bound arrays
	negInf = -1e300
)

// NVars is the total number of decision variables.
func (p *Problem) NVars() int { return p.Layout.Size() }

// NConstraints is the total number of stacked equality residuals:
// dynamics first, then every linear equality.
func (p *Problem) NConstraints() int { return p.Dyn.Dim(p.Layout) + p.Eq.Dim() }

// finite reports whether every value in vals is neither NaN nor Inf.
func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Objective returns L(Z), or a *qcerr.NumericError if the evaluator
// callback produced a NaN or Inf — a failure that must be reported back
// to the solver, never recovered from locally.
func (p *Problem) Objective(Z []float64) (float64, error) {
	v := p.Obj.Value(Z)
	if !finite(v) {
		return 0, qcerr.Numeric("problem.Objective", "non-finite objective value %v", v)
	}
	return v, nil
}

// Gradient returns ∇L(Z), or a *qcerr.NumericError if any component is
// non-finite.
func (p *Problem) Gradient(Z []float64) ([]float64, error) {
	g := p.Obj.Grad(Z)
	if !finite(g...) {
		return nil, qcerr.Numeric("problem.Gradient", "non-finite gradient component")
	}
	return g, nil
}

// Constraints returns the stacked residual vector g(Z), zero at a
// feasible point.
func (p *Problem) Constraints(Z []float64) []float64 {
	dynRes := p.Dyn.F(Z, p.Layout)
	eqRes := p.Eq.Residual(Z)
	out := make([]float64, len(dynRes)+len(eqRes))
	copy(out, dynRes)
	copy(out[len(dynRes):], eqRes)
	return out
}

// ConstraintBounds returns lo=hi=0 for every stacked row: every
// constraint in this package is a pure equality.
func (p *Problem) ConstraintBounds() (lo, hi []float64) {
	n := p.NConstraints()
	lo = make([]float64, n)
	hi = make([]float64, n)
	return lo, hi
}

// JacobianStructure returns the fixed sparse positions of ∂g/∂Z.
func (p *Problem) JacobianStructure() []JacEntry { return p.jacStructure }

// JacobianValues returns ∂g/∂Z values in JacobianStructure order, or a
// *qcerr.NumericError if any entry is non-finite.
func (p *Problem) JacobianValues(Z []float64) ([]float64, error) {
	out := append([]float64(nil), p.Dyn.JacobianValues(Z, p.Layout)...)
	out = append(out, p.Eq.JacValues()...)
	if !finite(out...) {
		return nil, qcerr.Numeric("problem.JacobianValues", "non-finite jacobian entry")
	}
	return out, nil
}

// HessianStructure returns the fixed sparse positions of the Hessian of
// the Lagrangian (objective contribution first, then dynamics).
func (p *Problem) HessianStructure() []HessEntry { return p.hessStructure }

// HessianValues returns objFactor*∇²L(Z) + Σ lambda_i*∇²g_i(Z) in
// HessianStructure order, or a *qcerr.NumericError if any entry is
// non-finite. lambda must have length NConstraints(); only its first
// Dyn.Dim(layout) entries (the dynamics rows) contribute, since every
// linear equality has a zero Hessian.
func (p *Problem) HessianValues(Z []float64, objFactor float64, lambda []float64) ([]float64, error) {
	var out []float64
	for _, v := range p.Obj.HessValues(Z) {
		out = append(out, objFactor*v)
	}
	dynRows := p.Dyn.Dim(p.Layout)
	out = append(out, p.Dyn.HessianValues(Z, lambda[:dynRows], p.Layout)...)
	if !finite(out...) {
		return nil, qcerr.Numeric("problem.HessianValues", "non-finite hessian entry")
	}
	return out, nil
}
