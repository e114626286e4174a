// Copyright 2024 The QubitControl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import "github.com/aarontrowbridge/qubitctrl/iso"

// TimeStepEqualityConstraint ties every Δt_t to a fixed value, the
// fixed-time mode where step durations are parameters, not decisions.
func TimeStepEqualityConstraint(layout iso.Layout, dt float64) Equalities {
	out := make(Equalities, layout.T)
	for t := 0; t < layout.T; t++ {
		out[t] = LinearEquality{Indices: []int{layout.DtIndex(t)}, Coeffs: []float64{1}, RHS: dt}
	}
	return out
}

// TimeStepsAllEqualConstraint ties every Δt_t to the shared duplicate
// Δ̄t (the layout's last Δt slot), the equal-Δt free-time mode: step
// durations are all decision variables but constrained to move together.
func TimeStepsAllEqualConstraint(layout iso.Layout) Equalities {
	bar := layout.DtBarIndex()
	var out Equalities
	for t := 0; t < layout.T-1; t++ {
		out = append(out, LinearEquality{
			Indices: []int{layout.DtIndex(t), bar},
			Coeffs:  []float64{1, -1},
			RHS:     0,
		})
	}
	return out
}
