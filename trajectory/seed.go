// Copyright 2024 The QubitControl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trajectory

import (
	"golang.org/x/exp/rand"

	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/aarontrowbridge/qubitctrl/iso"
	"github.com/aarontrowbridge/qubitctrl/qsys"
)

// SeedOptions configures the initial guess built by Seed.
type SeedOptions struct {
	Dt float64 // uniform initial Δt for every step

	// JitterSigma, if nonzero, adds independent zero-mean Gaussian noise
	// with this standard deviation to every control amplitude (order-0
	// aug slot and the top-order control slot alike), breaking the
	// all-zero saddle a bare linear interpolation would otherwise start
	// a trajectory on.
	JitterSigma float64
	Src         rand.Source // jitter source; a fixed seed makes Seed reproducible
}

// Seed builds a flat Z of the shape layout describes: wavefunctions
// linearly interpolated between each qstate's initial and goal state,
// controls at zero (plus optional jitter), and every Δt set to
// opts.Dt. It is a warm start, not a feasible point — the dynamics
// residual is not expected to vanish at the returned Z.
func Seed(sys *qsys.System, layout iso.Layout, opts SeedOptions) []float64 {
	Z := make([]float64, layout.Size())

	fracs := []float64{0}
	if layout.T > 1 {
		fracs = utl.LinSpace(0, 1, layout.T)
	}

	for t := 0; t < layout.T; t++ {
		frac := fracs[t]
		wlo, _ := layout.WfnRange(t)
		for q := 0; q < sys.Nqstates; q++ {
			init := sys.PsiTildeInit[q]
			goal := sys.PsiTildeGoal[q]
			base := wlo + q*sys.Isodim
			for i := 0; i < sys.Isodim; i++ {
				Z[base+i] = (1-frac)*init[i] + frac*goal[i]
			}
		}
		Z[layout.DtIndex(t)] = opts.Dt
	}

	if opts.JitterSigma > 0 {
		jitterControls(sys, layout, Z, opts)
	}

	return Z
}

func jitterControls(sys *qsys.System, layout iso.Layout, Z []float64, opts SeedOptions) {
	noise := distuv.Normal{Mu: 0, Sigma: opts.JitterSigma, Src: opts.Src}
	for t := 0; t < layout.T; t++ {
		alo, _ := layout.AugRange(t)
		for k := 0; k < sys.Ncontrols; k++ {
			bound := sys.ControlBounds[k]
			v := clamp(noise.Rand(), -bound, bound)
			Z[alo+k*sys.Augdim] = v
		}
		clo, _ := layout.CtrlRange(t)
		for k := 0; k < sys.Ncontrols; k++ {
			Z[clo+k] = clamp(noise.Rand(), -sys.UBound, sys.UBound)
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
