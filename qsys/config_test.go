// Copyright 2024 The QubitControl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qsys

import (
	"testing"

	"github.com/cpmech/gosl/fun/dbf"
)

func TestNewTransmonSystemFromParams(t *testing.T) {
	prms := dbf.Params{
		{N: "omega", V: 5.0},
		{N: "alpha", V: -0.2},
		{N: "levels", V: 3},
	}
	sys, err := NewTransmonSystemFromParams(prms, 1.0,
		[][]complex128{{1, 0, 0}}, [][]complex128{{0, 1, 0}})
	if err != nil {
		t.Fatal(err)
	}
	if sys.Ncontrols != 1 {
		t.Fatalf("Ncontrols = %d, want 1", sys.Ncontrols)
	}
	if sys.Isodim != 6 {
		t.Fatalf("Isodim = %d, want 6", sys.Isodim)
	}
}

func TestNewTransmonSystemFromParamsMissingParam(t *testing.T) {
	prms := dbf.Params{{N: "omega", V: 5.0}, {N: "levels", V: 3}}
	_, err := NewTransmonSystemFromParams(prms, 1.0,
		[][]complex128{{1, 0, 0}}, [][]complex128{{0, 1, 0}})
	if err == nil {
		t.Fatal("expected error for missing alpha parameter")
	}
}

func TestNewTwoQubitSystemFromParams(t *testing.T) {
	prms := dbf.Params{
		{N: "omega1", V: 5.0},
		{N: "alpha1", V: -0.2},
		{N: "omega2", V: 5.2},
		{N: "alpha2", V: -0.21},
		{N: "g", V: 0.01},
	}
	init := make([]complex128, 4)
	init[0] = 1
	goal := make([]complex128, 4)
	goal[3] = 1
	sys, err := NewTwoQubitSystemFromParams(prms, []float64{1, 1},
		[][]complex128{init}, [][]complex128{goal})
	if err != nil {
		t.Fatal(err)
	}
	if sys.Ncontrols != 2 {
		t.Fatalf("Ncontrols = %d, want 2", sys.Ncontrols)
	}
}
