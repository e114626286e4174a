// Copyright 2024 The QubitControl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package objective

import "github.com/aarontrowbridge/qubitctrl/iso"

// QuadraticRegularizer penalizes (R/2)*Σ z_i² over a fixed set of
// per-step relative offsets (e.g. the control sub-block) across time
// steps [TStart,TEnd). Used for control-amplitude or augmented-state
// regularization.
type QuadraticRegularizer struct {
	Layout       iso.Layout
	RelIndices   []int
	TStart, TEnd int
	R            float64
}

// NewQuadraticRegularizer builds a QuadraticRegularizer over every step
// in [tStart,tEnd) at the given per-step relative offsets.
func NewQuadraticRegularizer(layout iso.Layout, relIndices []int, tStart, tEnd int, R float64) QuadraticRegularizer {
	return QuadraticRegularizer{Layout: layout, RelIndices: relIndices, TStart: tStart, TEnd: tEnd, R: R}
}

func (o QuadraticRegularizer) absIndices() []int {
	var out []int
	for t := o.TStart; t < o.TEnd; t++ {
		out = append(out, o.Layout.Slice(t, o.RelIndices)...)
	}
	return out
}

func (o QuadraticRegularizer) Value(Z []float64) float64 {
	var v float64
	for _, idx := range o.absIndices() {
		v += Z[idx] * Z[idx]
	}
	return 0.5 * o.R * v
}

func (o QuadraticRegularizer) Grad(Z []float64) []float64 {
	out := make([]float64, len(Z))
	for _, idx := range o.absIndices() {
		out[idx] = o.R * Z[idx]
	}
	return out
}

func (o QuadraticRegularizer) Structure() []HessEntry {
	var out []HessEntry
	for _, idx := range o.absIndices() {
		out = append(out, HessEntry{idx, idx})
	}
	return out
}

func (o QuadraticRegularizer) HessValues(Z []float64) []float64 {
	idxs := o.absIndices()
	out := make([]float64, len(idxs))
	for i := range out {
		out[i] = o.R
	}
	return out
}

// QuadraticSmoothnessRegularizer penalizes (R/2)*Σ (z_{t+1}-z_t)² over
// consecutive steps at a fixed set of per-step relative offsets, biasing
// the trajectory toward smooth controls.
type QuadraticSmoothnessRegularizer struct {
	Layout       iso.Layout
	RelIndices   []int
	TStart, TEnd int
	R            float64
}

// NewQuadraticSmoothnessRegularizer builds a smoothness penalty over
// consecutive steps in [tStart,tEnd).
func NewQuadraticSmoothnessRegularizer(layout iso.Layout, relIndices []int, tStart, tEnd int, R float64) QuadraticSmoothnessRegularizer {
	return QuadraticSmoothnessRegularizer{Layout: layout, RelIndices: relIndices, TStart: tStart, TEnd: tEnd, R: R}
}

func (o QuadraticSmoothnessRegularizer) pairs() [][2]int {
	var out [][2]int
	for t := o.TStart; t < o.TEnd-1; t++ {
		curr := o.Layout.Slice(t, o.RelIndices)
		next := o.Layout.Slice(t+1, o.RelIndices)
		for i := range o.RelIndices {
			out = append(out, [2]int{curr[i], next[i]})
		}
	}
	return out
}

func (o QuadraticSmoothnessRegularizer) Value(Z []float64) float64 {
	var v float64
	for _, p := range o.pairs() {
		d := Z[p[1]] - Z[p[0]]
		v += d * d
	}
	return 0.5 * o.R * v
}

func (o QuadraticSmoothnessRegularizer) Grad(Z []float64) []float64 {
	out := make([]float64, len(Z))
	for _, p := range o.pairs() {
		d := Z[p[1]] - Z[p[0]]
		out[p[0]] -= o.R * d
		out[p[1]] += o.R * d
	}
	return out
}

func (o QuadraticSmoothnessRegularizer) Structure() []HessEntry {
	var out []HessEntry
	for _, p := range o.pairs() {
		out = append(out, HessEntry{p[0], p[0]}, HessEntry{p[1], p[1]}, HessEntry{p[0], p[1]})
	}
	return out
}

func (o QuadraticSmoothnessRegularizer) HessValues(Z []float64) []float64 {
	pairs := o.pairs()
	out := make([]float64, 0, 3*len(pairs))
	for range pairs {
		out = append(out, o.R, o.R, -o.R)
	}
	return out
}
