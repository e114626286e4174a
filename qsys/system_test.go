// Copyright 2024 The QubitControl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qsys

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

func TestNewSystemDims(t *testing.T) {
	hDrift := mat.NewCDense(2, 2, []complex128{1, 0, 0, -1})
	hDrives := []*mat.CDense{
		mat.NewCDense(2, 2, []complex128{0, 1, 1, 0}),
		mat.NewCDense(2, 2, []complex128{0, complex(0, -1), complex(0, 1), 0}),
	}
	sys, err := NewSystem(hDrift, hDrives, []float64{1.0, 0.5}, [][]complex128{{1, 0}}, [][]complex128{{0, 1}})
	if err != nil {
		t.Fatal(err)
	}
	chk.IntAssert(sys.Isodim, 4)
	chk.IntAssert(sys.Nqstates, 1)
	chk.IntAssert(sys.NWfnStates, 4)
	chk.IntAssert(sys.Ncontrols, 2)
	chk.IntAssert(sys.Augdim, 2) // default control_order=2
	chk.IntAssert(sys.NAugStates, 4)
	chk.IntAssert(sys.Nstates, 8)
	chk.IntAssert(sys.Vardim, 10)
}

func TestNewSystemBoundsMismatch(t *testing.T) {
	hDrift := mat.NewCDense(2, 2, []complex128{1, 0, 0, -1})
	hDrives := []*mat.CDense{mat.NewCDense(2, 2, []complex128{0, 1, 1, 0})}
	_, err := NewSystem(hDrift, hDrives, []float64{1.0, 2.0}, [][]complex128{{1, 0}}, [][]complex128{{0, 1}})
	if err == nil {
		t.Fatal("expected ConfigurationError on control_bounds/H_drives length mismatch")
	}
}

func TestNewSystemDimensionMismatch(t *testing.T) {
	hDrift := mat.NewCDense(2, 2, []complex128{1, 0, 0, -1})
	_, err := NewSystem(hDrift, nil, nil, [][]complex128{{1, 0, 0}}, [][]complex128{{0, 1}})
	if err == nil {
		t.Fatal("expected DimensionError on mismatched state size")
	}
}

func TestTransmonSystem(t *testing.T) {
	psi := []complex128{1, 0, 0}
	psig := []complex128{0, 1, 0}
	sys, err := TransmonSystem(5.0, 0.2, 3, 1.0, [][]complex128{psi}, [][]complex128{psig})
	if err != nil {
		t.Fatal(err)
	}
	chk.IntAssert(sys.Isodim, 6)
	chk.IntAssert(sys.Ncontrols, 1)
}

func TestTwoQubitSystem(t *testing.T) {
	psi := make([]complex128, 9)
	psi[0] = 1
	psig := make([]complex128, 9)
	psig[4] = 1
	sys, err := TwoQubitSystem(5.0, 0.2, 5.2, 0.21, 3, 0.01, []float64{1.0, 1.0}, [][]complex128{psi}, [][]complex128{psig})
	if err != nil {
		t.Fatal(err)
	}
	chk.IntAssert(sys.Isodim, 18)
	chk.IntAssert(sys.Ncontrols, 2)
}

func TestGoalPhaseRotation(t *testing.T) {
	hDrift := mat.NewCDense(2, 2, []complex128{1, 0, 0, -1})
	psi := []complex128{1, 0}
	psig := []complex128{0, 1}
	sysNoPhase, _ := NewSystem(hDrift, nil, nil, [][]complex128{psi}, [][]complex128{psig})
	sysPhase, _ := NewSystem(hDrift, nil, nil, [][]complex128{psi}, [][]complex128{psig}, WithGoalPhase(1.2))
	same := true
	for i := range sysNoPhase.PsiTildeGoal[0] {
		if sysNoPhase.PsiTildeGoal[0][i] != sysPhase.PsiTildeGoal[0][i] {
			same = false
		}
	}
	if same {
		t.Fatal("expected goal phase rotation to change the embedded goal state")
	}
}
