// Copyright 2024 The QubitControl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iso

// Layout is the index arithmetic that stitches states, augmented
// controls, controls, per-step Δt values, and optional L1 slacks into
// one flat decision vector Z. Time steps t are addressed 0-based here
// (t = 0..T-1).
//
// Z layout, contiguous:
//
//	[ step 0: wfn | aug | ctrl ] [ step 1: wfn | aug | ctrl ] ... [ step T-1 ]
//	[ Δt_0 .. Δt_{T-1} ]   (Δt_{T-1} is the shared duplicate Δ̄t)
//	[ s1_0 s2_0 | s1_1 s2_1 | ... ]   (only if NSlack > 0)
type Layout struct {
	T      int // number of time steps
	NWfn   int // n_wfn_states = nqstates * isodim
	NAug   int // n_aug_states = ncontrols * augdim
	NCtrl  int // ncontrols
	NSlack int // number of L1-regularized component indices (k); 0 if disabled
}

// VarDim is the per-step slice width: wavefunctions + augmented controls + controls.
func (l Layout) VarDim() int { return l.NWfn + l.NAug + l.NCtrl }

// NVars is the total number of per-step decision variables (vardim*T),
// i.e. the offset at which the Δt block begins.
func (l Layout) NVars() int { return l.VarDim() * l.T }

// DtBase is the offset of the first Δt value.
func (l Layout) DtBase() int { return l.NVars() }

// SlackBase is the offset of the first slack value (after T Δt values).
func (l Layout) SlackBase() int { return l.DtBase() + l.T }

// Size is the total length of Z.
func (l Layout) Size() int { return l.SlackBase() + 2*l.NSlack*l.T }

// StepBase returns the absolute offset of time step t's slice.
func (l Layout) StepBase(t int) int { return t * l.VarDim() }

// WfnRange returns [lo,hi) for the wavefunction sub-block at step t.
func (l Layout) WfnRange(t int) (lo, hi int) {
	b := l.StepBase(t)
	return b, b + l.NWfn
}

// AugRange returns [lo,hi) for the augmented-control sub-block at step t.
func (l Layout) AugRange(t int) (lo, hi int) {
	b := l.StepBase(t) + l.NWfn
	return b, b + l.NAug
}

// CtrlRange returns [lo,hi) for the top-order control sub-block at step t.
func (l Layout) CtrlRange(t int) (lo, hi int) {
	b := l.StepBase(t) + l.NWfn + l.NAug
	return b, b + l.NCtrl
}

// StepRange returns [lo,hi) for the entire per-step slice at step t.
func (l Layout) StepRange(t int) (lo, hi int) {
	b := l.StepBase(t)
	return b, b + l.VarDim()
}

// DtIndex returns the absolute index of Δt at step t.
func (l Layout) DtIndex(t int) int { return l.DtBase() + t }

// DtBarIndex is the shared duplicate Δ̄t used to tie steps together in
// equal-Δt mode: the last slot of the Δt block.
func (l Layout) DtBarIndex() int { return l.DtBase() + l.T - 1 }

// S1Index returns the absolute index of the first slack (s1) of
// regularized component comp (0-based, < NSlack) at step t.
func (l Layout) S1Index(comp, t int) int {
	return l.SlackBase() + t*2*l.NSlack + comp
}

// S2Index returns the absolute index of the second slack (s2) of
// regularized component comp at step t.
func (l Layout) S2Index(comp, t int) int {
	return l.SlackBase() + t*2*l.NSlack + l.NSlack + comp
}

// Slice applies an arbitrary offset pattern (relative indices into a
// step's vardim slice) at step t, returning absolute indices into Z.
func (l Layout) Slice(t int, indices []int) []int {
	b := l.StepBase(t)
	out := make([]int, len(indices))
	for i, idx := range indices {
		out[i] = b + idx
	}
	return out
}
