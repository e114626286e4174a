// Copyright 2024 The QubitControl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trajectory

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/aarontrowbridge/qubitctrl/qsys"
)

func buildSystem(t *testing.T) *qsys.System {
	t.Helper()
	hDrift := mat.NewCDense(2, 2, []complex128{0, 1, 1, 0})
	hDrives := []*mat.CDense{mat.NewCDense(2, 2, []complex128{1, 0, 0, -1})}
	sys, err := qsys.NewSystem(hDrift, hDrives, []float64{2.0},
		[][]complex128{{1, 0}}, [][]complex128{{0, 1}})
	if err != nil {
		t.Fatal(err)
	}
	return sys
}

func TestSeedBoundaryStates(t *testing.T) {
	sys := buildSystem(t)
	layout := sys.LayoutFor(5, 0)
	Z := Seed(sys, layout, SeedOptions{Dt: 0.1})
	tr := New(layout, Z)

	first := tr.Wfn(0, 0, sys.Isodim)
	for i, v := range first {
		if math.Abs(v-sys.PsiTildeInit[0][i]) > 1e-12 {
			t.Fatalf("first step wfn[%d] = %v, want initial state %v", i, v, sys.PsiTildeInit[0][i])
		}
	}
	last := tr.Wfn(layout.T-1, 0, sys.Isodim)
	for i, v := range last {
		if math.Abs(v-sys.PsiTildeGoal[0][i]) > 1e-12 {
			t.Fatalf("last step wfn[%d] = %v, want goal state %v", i, v, sys.PsiTildeGoal[0][i])
		}
	}
}

func TestSeedControlsZeroWithoutJitter(t *testing.T) {
	sys := buildSystem(t)
	layout := sys.LayoutFor(4, 0)
	Z := Seed(sys, layout, SeedOptions{Dt: 0.1})
	tr := New(layout, Z)
	for t := 0; t < layout.T; t++ {
		for _, c := range tr.Control(t) {
			if c != 0 {
				t.Fatalf("step %d: control = %v, want 0 without jitter", t, c)
			}
		}
	}
}

func TestSeedJitterRespectsBounds(t *testing.T) {
	sys := buildSystem(t)
	layout := sys.LayoutFor(6, 0)
	Z := Seed(sys, layout, SeedOptions{
		Dt:          0.1,
		JitterSigma: 10, // deliberately large, to exercise the clamp
		Src:         rand.NewSource(42),
	})
	tr := New(layout, Z)
	for tstep := 0; tstep < layout.T; tstep++ {
		for k := 0; k < sys.Ncontrols; k++ {
			amp := tr.Amplitude(tstep, k, sys.Augdim)
			if math.Abs(amp) > sys.ControlBounds[k]+1e-12 {
				t.Fatalf("step %d control %d: |amplitude|=%v exceeds bound %v", tstep, k, amp, sys.ControlBounds[k])
			}
		}
		for k, u := range tr.Control(tstep) {
			if math.Abs(u) > sys.UBound+1e-12 {
				t.Fatalf("step %d top-order control %d: |u|=%v exceeds UBound %v", tstep, k, u, sys.UBound)
			}
		}
	}
}

func TestTimesAccumulateDt(t *testing.T) {
	sys := buildSystem(t)
	layout := sys.LayoutFor(4, 0)
	Z := Seed(sys, layout, SeedOptions{Dt: 0.25})
	tr := New(layout, Z)
	times := tr.Times()
	want := []float64{0, 0.25, 0.5, 0.75}
	for i, w := range want {
		if math.Abs(times[i]-w) > 1e-12 {
			t.Fatalf("Times()[%d] = %v, want %v", i, times[i], w)
		}
	}
}

func TestExtractMatchesTrajectory(t *testing.T) {
	sys := buildSystem(t)
	layout := sys.LayoutFor(3, 0)
	Z := Seed(sys, layout, SeedOptions{Dt: 0.1})
	tr := New(layout, Z)
	sol := Extract(sys, tr)

	for tstep := 0; tstep < layout.T; tstep++ {
		if sol.Dt[tstep] != tr.Dt(tstep) {
			t.Fatalf("Dt[%d] = %v, want %v", tstep, sol.Dt[tstep], tr.Dt(tstep))
		}
		for q := 0; q < sys.Nqstates; q++ {
			want := tr.Wfn(tstep, q, sys.Isodim)
			got := sol.Wfn[tstep][q]
			for i := range want {
				if got[i] != want[i] {
					t.Fatalf("Wfn[%d][%d][%d] = %v, want %v", tstep, q, i, got[i], want[i])
				}
			}
		}
	}
}

func TestNewPanicsOnSizeMismatch(t *testing.T) {
	sys := buildSystem(t)
	layout := sys.LayoutFor(3, 0)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on mismatched Z length")
		}
	}()
	New(layout, make([]float64, layout.Size()-1))
}
