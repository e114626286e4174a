// Copyright 2024 The QubitControl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package objective

import "github.com/aarontrowbridge/qubitctrl/iso"

// MinTimeObjective penalizes R*Σ Δt_t, the total trajectory duration.
// Paired with free-Δt decision variables, minimizing this term alongside
// the quantum objective finds the fastest control pulse that still
// reaches the target. Linear in Z, so its Hessian is exactly zero.
type MinTimeObjective struct {
	Layout iso.Layout
	R      float64
}

// NewMinTimeObjective builds the total-duration penalty for a layout.
func NewMinTimeObjective(layout iso.Layout, R float64) MinTimeObjective {
	return MinTimeObjective{Layout: layout, R: R}
}

func (o MinTimeObjective) Value(Z []float64) float64 {
	var v float64
	for t := 0; t < o.Layout.T; t++ {
		v += Z[o.Layout.DtIndex(t)]
	}
	return o.R * v
}

func (o MinTimeObjective) Grad(Z []float64) []float64 {
	out := make([]float64, len(Z))
	for t := 0; t < o.Layout.T; t++ {
		out[o.Layout.DtIndex(t)] = o.R
	}
	return out
}

func (o MinTimeObjective) Structure() []HessEntry { return nil }

func (o MinTimeObjective) HessValues(Z []float64) []float64 { return nil }
