// Copyright 2024 The QubitControl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qsys

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// transmonParams pulls omega/alpha/levels out of a named parameter list,
// the same "switch on p.N" idiom mdl/solid/elasticity.go's
// SmallElasticity.Init uses for E, nu, K, G.
func transmonParams(prms dbf.Params) (omega, alpha float64, levels int, err error) {
	var hasOmega, hasAlpha, hasLevels bool
	for _, p := range prms {
		switch p.N {
		case "omega":
			omega, hasOmega = p.V, true
		case "alpha":
			alpha, hasAlpha = p.V, true
		case "levels":
			levels, hasLevels = int(p.V), true
		}
	}
	if !hasOmega || !hasAlpha || !hasLevels {
		return 0, 0, 0, chk.Err("qsys: transmon requires omega, alpha, and levels parameters")
	}
	if levels < 2 {
		return 0, 0, 0, chk.Err("qsys: transmon levels=%d must be >= 2", levels)
	}
	return omega, alpha, levels, nil
}

// NewTransmonSystemFromParams builds a TransmonSystem from a named
// parameter list instead of positional omega/alpha/levels arguments,
// mirroring how msolid model constructors take dbf.Params rather than a
// fixed argument list.
func NewTransmonSystemFromParams(
	prms dbf.Params,
	controlBound float64,
	psiInits, psiGoals [][]complex128,
	opts ...Option,
) (*System, error) {
	omega, alpha, levels, err := transmonParams(prms)
	if err != nil {
		return nil, err
	}
	return TransmonSystem(omega, alpha, levels, controlBound, psiInits, psiGoals, opts...)
}

// NewTwoQubitSystemFromParams builds a TwoQubitSystem from a named
// parameter list. Recognized names: "omega1", "alpha1", "omega2",
// "alpha2", "g"; "levels" defaults to 2 if absent.
func NewTwoQubitSystemFromParams(
	prms dbf.Params,
	controlBounds []float64,
	psiInits, psiGoals [][]complex128,
	opts ...Option,
) (*System, error) {
	var omega1, alpha1, omega2, alpha2, g float64
	levels := 2
	var has [5]bool
	for _, p := range prms {
		switch p.N {
		case "omega1":
			omega1, has[0] = p.V, true
		case "alpha1":
			alpha1, has[1] = p.V, true
		case "omega2":
			omega2, has[2] = p.V, true
		case "alpha2":
			alpha2, has[3] = p.V, true
		case "g":
			g, has[4] = p.V, true
		case "levels":
			levels = int(p.V)
		}
	}
	names := [5]string{"omega1", "alpha1", "omega2", "alpha2", "g"}
	for i, h := range has {
		if !h {
			return nil, chk.Err("qsys: two-qubit system missing required parameter %q", names[i])
		}
	}
	return TwoQubitSystem(omega1, alpha1, omega2, alpha2, levels, g, controlBounds, psiInits, psiGoals, opts...)
}
