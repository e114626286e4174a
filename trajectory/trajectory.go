// Copyright 2024 The QubitControl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package trajectory gives named, typed access to the per-step blocks of
// a flat decision vector Z, plus the initial-guess construction (linear
// interpolation between boundary states, optional control jitter) that a
// solver needs before its first iteration.
package trajectory

import "github.com/aarontrowbridge/qubitctrl/iso"

// Trajectory is a read-only, named view into one flat Z conforming to
// layout. It does not copy Z; callers that mutate the backing slice see
// the change reflected in later calls.
type Trajectory struct {
	Layout iso.Layout
	Z      []float64
}

// New wraps Z with layout. It panics if len(Z) != layout.Size(), since a
// mismatched Z silently corrupts every other accessor.
func New(layout iso.Layout, Z []float64) Trajectory {
	if len(Z) != layout.Size() {
		panic("trajectory: len(Z) does not match layout.Size()")
	}
	return Trajectory{Layout: layout, Z: Z}
}

// Wfn returns qstate q's isodim-wide wavefunction slice at step t.
func (tr Trajectory) Wfn(t, q, isodim int) []float64 {
	lo, _ := tr.Layout.WfnRange(t)
	return tr.Z[lo+q*isodim : lo+(q+1)*isodim]
}

// Aug returns control k's augdim-wide augmented-state slice at step t.
func (tr Trajectory) Aug(t, k, augdim int) []float64 {
	lo, _ := tr.Layout.AugRange(t)
	return tr.Z[lo+k*augdim : lo+(k+1)*augdim]
}

// Control returns every control's top-order amplitude at step t.
func (tr Trajectory) Control(t int) []float64 {
	lo, hi := tr.Layout.CtrlRange(t)
	return tr.Z[lo:hi]
}

// Dt returns Δt at step t.
func (tr Trajectory) Dt(t int) float64 { return tr.Z[tr.Layout.DtIndex(t)] }

// Amplitude returns control k's order-0 (drive) amplitude at step t, the
// same quantity dynamics.controlAt extracts for the generator evaluation.
func (tr Trajectory) Amplitude(t, k, augdim int) float64 { return tr.Aug(t, k, augdim)[0] }

// Times returns the cumulative time at the start of every step (Times[0]
// == 0), derived by walking the Δt block.
func (tr Trajectory) Times() []float64 {
	out := make([]float64, tr.Layout.T)
	acc := 0.0
	for t := 1; t < tr.Layout.T; t++ {
		acc += tr.Dt(t - 1)
		out[t] = acc
	}
	return out
}

// FinalWfn returns qstate q's wavefunction at the last time step,
// the block every terminal cost/objective reads.
func (tr Trajectory) FinalWfn(q, isodim int) []float64 {
	return tr.Wfn(tr.Layout.T-1, q, isodim)
}
