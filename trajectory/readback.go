// Copyright 2024 The QubitControl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trajectory

import "github.com/aarontrowbridge/qubitctrl/qsys"

// Solution is the post-solve read-back of a trajectory into per-step,
// per-quantity slices, convenient for plotting or export without
// re-deriving offsets from Layout on every access.
type Solution struct {
	Times    []float64     // [T]
	Wfn      [][][]float64 // [T][nqstates][isodim]
	Controls [][]float64   // [T][ncontrols], order-0 amplitude
	Dt       []float64     // [T]
}

// Extract walks tr once and materializes a Solution.
func Extract(sys *qsys.System, tr Trajectory) Solution {
	T := tr.Layout.T
	sol := Solution{
		Times:    tr.Times(),
		Wfn:      make([][][]float64, T),
		Controls: make([][]float64, T),
		Dt:       make([]float64, T),
	}
	for t := 0; t < T; t++ {
		sol.Wfn[t] = make([][]float64, sys.Nqstates)
		for q := 0; q < sys.Nqstates; q++ {
			sol.Wfn[t][q] = append([]float64(nil), tr.Wfn(t, q, sys.Isodim)...)
		}
		sol.Controls[t] = make([]float64, sys.Ncontrols)
		for k := 0; k < sys.Ncontrols; k++ {
			sol.Controls[t][k] = tr.Amplitude(t, k, sys.Augdim)
		}
		sol.Dt[t] = tr.Dt(t)
	}
	return sol
}
