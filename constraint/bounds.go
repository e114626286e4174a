// Copyright 2024 The QubitControl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"github.com/aarontrowbridge/qubitctrl/iso"
	"github.com/aarontrowbridge/qubitctrl/qsys"
)

// BoundsConstraint returns the box bounds |a_k| <= ControlBounds[k] on
// every drive amplitude slot (augmented order 0) across every time
// step, and |u_k| <= UBound on every top-order control derivative slot.
func BoundsConstraint(sys *qsys.System, layout iso.Layout) Bounds {
	var out Bounds
	for t := 0; t < layout.T; t++ {
		augLo, _ := layout.AugRange(t)
		for k := 0; k < sys.Ncontrols; k++ {
			idx := augLo + k*sys.Augdim
			out = append(out, Bound{Index: idx, Lo: -sys.ControlBounds[k], Hi: sys.ControlBounds[k]})
		}
		ctrlLo, _ := layout.CtrlRange(t)
		for k := 0; k < sys.Ncontrols; k++ {
			out = append(out, Bound{Index: ctrlLo + k, Lo: -sys.UBound, Hi: sys.UBound})
		}
	}
	return out
}

// TimeStepBoundsConstraint returns dtMin <= Δt_t <= dtMax on every
// per-step duration, used in free- and min-time modes where Δt is a
// decision variable rather than a fixed parameter.
func TimeStepBoundsConstraint(layout iso.Layout, dtMin, dtMax float64) Bounds {
	var out Bounds
	for t := 0; t < layout.T; t++ {
		out = append(out, Bound{Index: layout.DtIndex(t), Lo: dtMin, Hi: dtMax})
	}
	return out
}
