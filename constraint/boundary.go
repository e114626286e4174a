// Copyright 2024 The QubitControl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"github.com/aarontrowbridge/qubitctrl/iso"
	"github.com/aarontrowbridge/qubitctrl/qsys"
)

// WfnInitConstraint pins every tracked qstate's wavefunction at the
// first time step to its initial state: Z[WfnRange(0)] == PsiTildeInit.
// Every assembled Problem carries this row regardless of TimeMode — a
// trajectory that doesn't start at the physical initial state isn't a
// candidate solution.
func WfnInitConstraint(sys *qsys.System, layout iso.Layout) Equalities {
	var out Equalities
	wlo, _ := layout.WfnRange(0)
	for q := 0; q < sys.Nqstates; q++ {
		init := sys.PsiTildeInit[q]
		base := wlo + q*sys.Isodim
		for i, v := range init {
			out = append(out, LinearEquality{
				Indices: []int{base + i},
				Coeffs:  []float64{1},
				RHS:     v,
			})
		}
	}
	return out
}

// WfnGoalConstraint pins every tracked qstate's wavefunction at the
// final time step to its goal state: Z[WfnRange(T-1)] == PsiTildeGoal.
// Used by min-time mode to pin the terminal state as a hard equality
// rather than leaving it to the terminal cost alone, since a min-time
// solve otherwise has no incentive to reach the target exactly once the
// cost weight trades off against the duration term.
func WfnGoalConstraint(sys *qsys.System, layout iso.Layout) Equalities {
	var out Equalities
	wlo, _ := layout.WfnRange(layout.T - 1)
	for q := 0; q < sys.Nqstates; q++ {
		goal := sys.PsiTildeGoal[q]
		base := wlo + q*sys.Isodim
		for i, v := range goal {
			out = append(out, LinearEquality{
				Indices: []int{base + i},
				Coeffs:  []float64{1},
				RHS:     v,
			})
		}
	}
	return out
}

// AugZeroConstraint pins every augmented-control slot at time step t to
// zero: Z[AugRange(t)] == 0. Used at t=0 and t=T-1 to enforce that
// every control and its derivatives vanish at both endpoints.
func AugZeroConstraint(layout iso.Layout, t int) Equalities {
	lo, hi := layout.AugRange(t)
	out := make(Equalities, 0, hi-lo)
	for idx := lo; idx < hi; idx++ {
		out = append(out, LinearEquality{Indices: []int{idx}, Coeffs: []float64{1}, RHS: 0})
	}
	return out
}

// EndpointAugZeroConstraint is AugZeroConstraint applied at both the
// first and last time step, the "controls and their derivatives are
// zero at both endpoints" behavior named in spec.md's Open Question on
// problem_constraints; it is preserved here as the default and left
// controllable by the caller (see problem.Config.SkipEndpointPin).
func EndpointAugZeroConstraint(layout iso.Layout) Equalities {
	var out Equalities
	out = append(out, AugZeroConstraint(layout, 0)...)
	out = append(out, AugZeroConstraint(layout, layout.T-1)...)
	return out
}
