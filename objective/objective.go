// Copyright 2024 The QubitControl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package objective implements the scalar objective L(Z) minimized over
// a trajectory's flat decision vector: an additive monoid of terms, each
// exposing an analytic gradient and a sparse analytic Hessian, composed
// the same (structure, values)-with-repeats way dynamics composes
// per-step constraint residuals.
package objective

// HessEntry is one (row,col) position (row<=col) of the sparse ∇²L.
type HessEntry struct{ Row, Col int }

// Objective is the shared contract every objective term and their Sum
// satisfy.
type Objective interface {
	// Value returns L(Z).
	Value(Z []float64) float64

	// Grad returns ∇L(Z), dense, length len(Z).
	Grad(Z []float64) []float64

	// Structure returns the fixed sparse Hessian positions.
	Structure() []HessEntry

	// HessValues returns the Hessian entries in Structure() order.
	HessValues(Z []float64) []float64
}

// Sum is the additive monoid over Objective: the empty Sum is the zero
// objective (L=0, ∇L=0, no Hessian entries), and a nonempty Sum adds
// every term's value/gradient and concatenates their Hessian
// (structure,values), leaving repeated positions to be summed by the
// consumer exactly like the dynamics/cost sparse contract.
type Sum []Objective

func (s Sum) Value(Z []float64) float64 {
	var v float64
	for _, term := range s {
		v += term.Value(Z)
	}
	return v
}

func (s Sum) Grad(Z []float64) []float64 {
	out := make([]float64, len(Z))
	for _, term := range s {
		g := term.Grad(Z)
		for i, gi := range g {
			out[i] += gi
		}
	}
	return out
}

func (s Sum) Structure() []HessEntry {
	var out []HessEntry
	for _, term := range s {
		out = append(out, term.Structure()...)
	}
	return out
}

func (s Sum) HessValues(Z []float64) []float64 {
	var out []float64
	for _, term := range s {
		out = append(out, term.HessValues(Z)...)
	}
	return out
}
