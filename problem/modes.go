// Copyright 2024 The QubitControl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package problem

import (
	"github.com/aarontrowbridge/qubitctrl/constraint"
	"github.com/aarontrowbridge/qubitctrl/dynamics"
	"github.com/aarontrowbridge/qubitctrl/iso"
	"github.com/aarontrowbridge/qubitctrl/objective"
	"github.com/aarontrowbridge/qubitctrl/qsys"
)

// Config collects the knobs shared by every TimeMode constructor.
type Config struct {
	Mode     TimeMode
	Dt       float64 // FixedTime: the pinned step duration
	DtMin    float64 // FreeTime/MinTime: Δt lower bound
	DtMax    float64 // FreeTime/MinTime: Δt upper bound
	MinTimeR float64 // MinTime: weight on total-duration minimization
	SmoothR  float64 // MinTime: weight on the control smoothness regularizer
	QuantumR float64 // not read by NewWithMode; quantumObj arrives already weighted
	ControlR float64 // weight on control-amplitude regularization

	// SkipEndpointPin disables the zero-augmented-control-at-both-endpoints
	// equality rows. The source this system is modeled on hard-codes that
	// behavior; whether it's physically required or just a configuration
	// default is undocumented, so it's preserved here as the default and
	// exposed as this opt-out (see DESIGN.md's Open Question decisions).
	SkipEndpointPin bool
}

// NewWithMode assembles a Problem for the given system, dynamics assembler, and
// time mode, wiring the quantum terminal objective, control-amplitude
// regularization, control/time-step bounds, the boundary-pinning
// equalities (ψ̃ at t=1, zero augmented controls at both endpoints unless
// cfg.SkipEndpointPin), and the Δt tying constraint appropriate to mode.
// MinTime additionally pins ψ̃_T as a hard equality and adds a control
// smoothness regularizer, both named by spec.md §4.8 for that mode.
func NewWithMode(sys *qsys.System, layout iso.Layout, dyn *dynamics.Dynamics,
	quantumObj objective.Objective, cfg Config) *Problem {

	lo, hi := layout.CtrlRange(0)
	relIndices := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		relIndices = append(relIndices, i-layout.StepBase(0))
	}
	controlReg := objective.NewQuadraticRegularizer(layout, relIndices, 0, layout.T, cfg.ControlR)

	obj := objective.Sum{quantumObj, controlReg}

	eq := constraint.WfnInitConstraint(sys, layout)
	if !cfg.SkipEndpointPin {
		eq = append(eq, constraint.EndpointAugZeroConstraint(layout)...)
	}
	bounds := constraint.BoundsConstraint(sys, layout)

	switch cfg.Mode {
	case FixedTime:
		eq = append(eq, constraint.TimeStepEqualityConstraint(layout, cfg.Dt)...)
	case FreeTime:
		eq = append(eq, constraint.TimeStepsAllEqualConstraint(layout)...)
		bounds = append(bounds, constraint.TimeStepBoundsConstraint(layout, cfg.DtMin, cfg.DtMax)...)
	case MinTime:
		bounds = append(bounds, constraint.TimeStepBoundsConstraint(layout, cfg.DtMin, cfg.DtMax)...)
		obj = append(obj, objective.NewMinTimeObjective(layout, cfg.MinTimeR))
		obj = append(obj, objective.NewQuadraticSmoothnessRegularizer(layout, relIndices, 0, layout.T, cfg.SmoothR))
		eq = append(eq, constraint.WfnGoalConstraint(sys, layout)...)
	}

	return New(sys, layout, dyn, obj, eq, bounds)
}
