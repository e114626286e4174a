// Copyright 2024 The QubitControl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package objective

import (
	"github.com/aarontrowbridge/qubitctrl/cost"
	"github.com/aarontrowbridge/qubitctrl/iso"
	"github.com/aarontrowbridge/qubitctrl/qsys"
)

// QuantumObjective applies a cost.Cost to every tracked qstate's final
// wavefunction against its goal, weighted by R. This is the term that
// actually drives the trajectory toward the target unitary/state
// transfer; every other objective in this package is a regularizer.
type QuantumObjective struct {
	Sys    *qsys.System
	Layout iso.Layout
	Cost   cost.Cost
	R      float64
}

// NewQuantumObjective builds the terminal-cost objective for sys over a
// trajectory with the given layout.
func NewQuantumObjective(sys *qsys.System, layout iso.Layout, c cost.Cost, R float64) QuantumObjective {
	return QuantumObjective{Sys: sys, Layout: layout, Cost: c, R: R}
}

func (o QuantumObjective) finalWfn(Z []float64, q int) []float64 {
	lo, _ := o.Layout.WfnRange(o.Layout.T - 1)
	base := lo + q*o.Sys.Isodim
	return Z[base : base+o.Sys.Isodim]
}

func (o QuantumObjective) Value(Z []float64) float64 {
	var v float64
	for q := 0; q < o.Sys.Nqstates; q++ {
		v += o.Cost.Value(o.finalWfn(Z, q), o.Sys.PsiTildeGoal[q])
	}
	return o.R * v
}

func (o QuantumObjective) Grad(Z []float64) []float64 {
	out := make([]float64, len(Z))
	lo, _ := o.Layout.WfnRange(o.Layout.T - 1)
	for q := 0; q < o.Sys.Nqstates; q++ {
		g := o.Cost.Grad(o.finalWfn(Z, q), o.Sys.PsiTildeGoal[q])
		base := lo + q*o.Sys.Isodim
		for i, gi := range g {
			out[base+i] += o.R * gi
		}
	}
	return out
}

func (o QuantumObjective) Structure() []HessEntry {
	lo, _ := o.Layout.WfnRange(o.Layout.T - 1)
	var out []HessEntry
	costStruct := o.Cost.Structure()
	for q := 0; q < o.Sys.Nqstates; q++ {
		base := lo + q*o.Sys.Isodim
		for _, e := range costStruct {
			out = append(out, HessEntry{base + e.Row, base + e.Col})
		}
	}
	return out
}

func (o QuantumObjective) HessValues(Z []float64) []float64 {
	var out []float64
	for q := 0; q < o.Sys.Nqstates; q++ {
		vals := o.Cost.HessValues(o.finalWfn(Z, q), o.Sys.PsiTildeGoal[q])
		for _, v := range vals {
			out = append(out, o.R*v)
		}
	}
	return out
}
