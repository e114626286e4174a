// Copyright 2024 The QubitControl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package constraint implements the linear equality and box-bound
// constraints layered on top of dynamics' nonlinear equality residuals:
// control/time-step bounds, the fixed- and equal-Δt tying constraints,
// and the L1 slack encoding. Every equality here is affine, so its
// Jacobian is constant and its Hessian is exactly zero.
package constraint

// JacEntry is one (row,col) position of a linear equality's constant
// Jacobian.
type JacEntry struct{ Row, Col int }

// LinearEquality is Σ Coeffs[i]*Z[Indices[i]] = RHS, the building block
// every named equality constraint in this package reduces to.
type LinearEquality struct {
	Indices []int
	Coeffs  []float64
	RHS     float64
}

func (c LinearEquality) Residual(Z []float64) float64 {
	var s float64
	for i, idx := range c.Indices {
		s += c.Coeffs[i] * Z[idx]
	}
	return s - c.RHS
}

// Bound is Lo <= Z[Index] <= Hi.
type Bound struct {
	Index  int
	Lo, Hi float64
}

// Equalities is a flat set of LinearEquality rows satisfying the same
// (structure,values) sparse contract as dynamics and objective.
type Equalities []LinearEquality

func (e Equalities) Dim() int { return len(e) }

func (e Equalities) Residual(Z []float64) []float64 {
	out := make([]float64, len(e))
	for i, c := range e {
		out[i] = c.Residual(Z)
	}
	return out
}

// JacStructure returns the fixed nonzero (row,col) positions across all
// rows. RHS never appears: equality residuals are constraint - RHS.
func (e Equalities) JacStructure() []JacEntry {
	var out []JacEntry
	for row, c := range e {
		for _, idx := range c.Indices {
			out = append(out, JacEntry{row, idx})
		}
	}
	return out
}

// JacValues returns the (constant) Jacobian values in JacStructure order.
func (e Equalities) JacValues() []float64 {
	var out []float64
	for _, c := range e {
		out = append(out, c.Coeffs...)
	}
	return out
}

// Bounds is a flat set of per-variable box bounds.
type Bounds []Bound

// Apply writes every bound into dense lo/hi arrays of length n (indices
// not covered by any Bound are left untouched, so callers should
// pre-fill lo/hi with ±Inf before calling Apply).
func (b Bounds) Apply(lo, hi []float64) {
	for _, bound := range b {
		lo[bound.Index] = bound.Lo
		hi[bound.Index] = bound.Hi
	}
}
