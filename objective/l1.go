// Copyright 2024 The QubitControl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package objective

import "github.com/aarontrowbridge/qubitctrl/iso"

// L1SlackRegularizer penalizes R*Σ(s1+s2) over the L1 slack pairs
// introduced for a set of regularized component indices, the standard
// linear-program encoding of an L1 penalty (|z| = min s1+s2 s.t.
// z = s1-s2, s1,s2 >= 0). Linear in Z, so its Hessian is exactly zero.
type L1SlackRegularizer struct {
	Layout       iso.Layout
	Comps        []int // which of the NSlack regularized components to include
	TStart, TEnd int
	R            float64
}

// NewL1SlackRegularizer builds an L1 slack penalty over the given
// regularized components across steps [tStart,tEnd).
func NewL1SlackRegularizer(layout iso.Layout, comps []int, tStart, tEnd int, R float64) L1SlackRegularizer {
	return L1SlackRegularizer{Layout: layout, Comps: comps, TStart: tStart, TEnd: tEnd, R: R}
}

func (o L1SlackRegularizer) slackIndices() []int {
	var out []int
	for t := o.TStart; t < o.TEnd; t++ {
		for _, c := range o.Comps {
			out = append(out, o.Layout.S1Index(c, t), o.Layout.S2Index(c, t))
		}
	}
	return out
}

func (o L1SlackRegularizer) Value(Z []float64) float64 {
	var v float64
	for _, idx := range o.slackIndices() {
		v += Z[idx]
	}
	return o.R * v
}

func (o L1SlackRegularizer) Grad(Z []float64) []float64 {
	out := make([]float64, len(Z))
	for _, idx := range o.slackIndices() {
		out[idx] = o.R
	}
	return out
}

func (o L1SlackRegularizer) Structure() []HessEntry { return nil }

func (o L1SlackRegularizer) HessValues(Z []float64) []float64 { return nil }
