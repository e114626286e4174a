// Copyright 2024 The QubitControl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamics

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"gonum.org/v1/gonum/mat"

	"github.com/aarontrowbridge/qubitctrl/integrator"
	"github.com/aarontrowbridge/qubitctrl/qsys"
)

func testDynamics(t *testing.T, T int) (*Dynamics, []float64) {
	t.Helper()
	hDrift := mat.NewCDense(2, 2, []complex128{0, 1, 1, 0})
	hDrives := []*mat.CDense{mat.NewCDense(2, 2, []complex128{1, 0, 0, -1})}
	sys, err := qsys.NewSystem(hDrift, hDrives, []float64{1.0},
		[][]complex128{{1, 0}}, [][]complex128{{0, 1}})
	if err != nil {
		t.Fatal(err)
	}
	d := New(sys, integrator.NewFOP(sys))
	layout := sys.LayoutFor(T, 0)

	Z := make([]float64, layout.Size())
	for i := range Z {
		Z[i] = math.Sin(0.37*float64(i) + 0.11)
	}
	return d, Z
}

func TestDynamicsDim(t *testing.T) {
	d, _ := testDynamics(t, 3)
	layout := d.Sys.LayoutFor(3, 0)
	// 2 transitions * (1 qstate * 4 isodim + 1 control * 2 augdim)
	chk.IntAssert(d.Dim(layout), 2*(4+2))
}

func TestJacobianStructureValuesLengthsMatch(t *testing.T) {
	d, Z := testDynamics(t, 3)
	layout := d.Sys.LayoutFor(3, 0)
	structure := d.JacobianStructure(layout)
	values := d.JacobianValues(Z, layout)
	if len(structure) != len(values) {
		t.Fatalf("structure len %d != values len %d", len(structure), len(values))
	}
}

func TestHessianStructureValuesLengthsMatch(t *testing.T) {
	d, Z := testDynamics(t, 3)
	layout := d.Sys.LayoutFor(3, 0)
	mu := make([]float64, d.Dim(layout))
	for i := range mu {
		mu[i] = math.Cos(0.23 * float64(i+1))
	}
	structure := d.HessianStructure(layout)
	values := d.HessianValues(Z, mu, layout)
	if len(structure) != len(values) {
		t.Fatalf("structure len %d != values len %d", len(structure), len(values))
	}
}

func denseJacFromSparse(rows, cols int, structure []JacEntry, values []float64) *mat.Dense {
	J := mat.NewDense(rows, cols, nil)
	for k, e := range structure {
		J.Set(e.Row, e.Col, J.At(e.Row, e.Col)+values[k])
	}
	return J
}

func TestJacobianVsFiniteDifference(t *testing.T) {
	d, Z := testDynamics(t, 3)
	layout := d.Sys.LayoutFor(3, 0)
	rows := d.Dim(layout)
	cols := layout.Size()

	structure := d.JacobianStructure(layout)
	values := d.JacobianValues(Z, layout)
	analytic := denseJacFromSparse(rows, cols, structure, values)

	h := 1e-6
	for j := 0; j < cols; j++ {
		Zp := append([]float64(nil), Z...)
		Zm := append([]float64(nil), Z...)
		Zp[j] += h
		Zm[j] -= h
		fp := d.F(Zp, layout)
		fm := d.F(Zm, layout)
		for i := 0; i < rows; i++ {
			want := (fp[i] - fm[i]) / (2 * h)
			got := analytic.At(i, j)
			if math.Abs(want-got) > 1e-5*math.Max(1, math.Abs(want)) {
				t.Errorf("dF[%d]/dZ[%d] = %v, finite-difference wants %v", i, j, got, want)
			}
		}
	}
}

func TestAddToJacobianTriplet(t *testing.T) {
	d, Z := testDynamics(t, 3)
	layout := d.Sys.LayoutFor(3, 0)
	rows, cols := d.Dim(layout), layout.Size()
	nnz := len(d.JacobianStructure(layout))
	Kb := new(la.Triplet)
	Kb.Init(rows, cols, nnz)
	d.AddToJacobian(Kb, Z, layout)
}

func TestHessianSymmetricAgainstJacobianDirectional(t *testing.T) {
	// μᵀF(Z) should have a gradient equal to μᵀ∇F(Z), and the Hessian of
	// that scalar w.r.t. Z should match HessianValues via finite
	// differences taken on the analytic Jacobian contraction.
	d, Z := testDynamics(t, 3)
	layout := d.Sys.LayoutFor(3, 0)
	rows := d.Dim(layout)
	cols := layout.Size()

	mu := make([]float64, rows)
	for i := range mu {
		mu[i] = math.Cos(0.19 * float64(i+1))
	}

	muGradAt := func(p []float64) []float64 {
		structure := d.JacobianStructure(layout)
		values := d.JacobianValues(p, layout)
		J := denseJacFromSparse(rows, cols, structure, values)
		out := make([]float64, cols)
		for j := 0; j < cols; j++ {
			var s float64
			for i := 0; i < rows; i++ {
				s += mu[i] * J.At(i, j)
			}
			out[j] = s
		}
		return out
	}

	hStructure := d.HessianStructure(layout)
	hValues := d.HessianValues(Z, mu, layout)
	analyticHess := mat.NewDense(cols, cols, nil)
	for k, e := range hStructure {
		analyticHess.Set(e.Row, e.Col, analyticHess.At(e.Row, e.Col)+hValues[k])
		if e.Row != e.Col {
			analyticHess.Set(e.Col, e.Row, analyticHess.At(e.Col, e.Row)+hValues[k])
		}
	}

	h := 1e-6
	for j := 0; j < cols; j++ {
		Zp := append([]float64(nil), Z...)
		Zm := append([]float64(nil), Z...)
		Zp[j] += h
		Zm[j] -= h
		gp := muGradAt(Zp)
		gm := muGradAt(Zm)
		for i := 0; i < cols; i++ {
			want := (gp[i] - gm[i]) / (2 * h)
			got := analyticHess.At(i, j)
			if math.Abs(want-got) > 1e-4*math.Max(1, math.Abs(want)) {
				t.Errorf("hess[%d][%d] = %v, finite-difference wants %v", i, j, got, want)
			}
		}
	}
}
