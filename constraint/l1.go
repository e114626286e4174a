// Copyright 2024 The QubitControl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"math"

	"github.com/aarontrowbridge/qubitctrl/iso"
)

// L1SlackConstraint ties each regularized component's value to its slack
// pair: z[relIndex] - (s1 - s2) = 0 at every time step, the standard
// linear-program encoding of an L1 penalty (paired with
// L1SlackNonNegativity's s1,s2 >= 0 and objective.L1SlackRegularizer's
// R*(s1+s2) minimization).
func L1SlackConstraint(layout iso.Layout, relIndexForComp []int) Equalities {
	var out Equalities
	for comp, relIndex := range relIndexForComp {
		for t := 0; t < layout.T; t++ {
			zIdx := layout.Slice(t, []int{relIndex})[0]
			out = append(out, LinearEquality{
				Indices: []int{zIdx, layout.S1Index(comp, t), layout.S2Index(comp, t)},
				Coeffs:  []float64{1, -1, 1},
				RHS:     0,
			})
		}
	}
	return out
}

// L1SlackNonNegativity returns s1,s2 >= 0 for every regularized
// component's slack pair across every time step.
func L1SlackNonNegativity(layout iso.Layout, comps []int) Bounds {
	var out Bounds
	inf := math.Inf(1)
	for t := 0; t < layout.T; t++ {
		for _, comp := range comps {
			out = append(out,
				Bound{Index: layout.S1Index(comp, t), Lo: 0, Hi: inf},
				Bound{Index: layout.S2Index(comp, t), Lo: 0, Hi: inf},
			)
		}
	}
	return out
}
