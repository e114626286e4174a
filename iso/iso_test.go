// Copyright 2024 The QubitControl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iso

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

func TestKetIsoRoundTrip(t *testing.T) {
	psi := []complex128{
		complex(0.6, 0.1),
		complex(-0.3, 0.75),
		complex(0.2, -0.9),
		complex(1.5, -0.25),
	}
	got := IsoToKet(KetToIso(psi))
	for i := range psi {
		if got[i] != psi[i] {
			t.Fatalf("round trip mismatch at %d: got %v want %v", i, got[i], psi[i])
		}
	}
}

func sigmaZ() *mat.CDense {
	return mat.NewCDense(2, 2, []complex128{1, 0, 0, -1})
}

func sigmaX() *mat.CDense {
	return mat.NewCDense(2, 2, []complex128{0, 1, 1, 0})
}

func TestGeneratorAntisymmetric(t *testing.T) {
	G, err := Generator(sigmaX())
	if err != nil {
		t.Fatal(err)
	}
	r, c := G.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if math.Abs(G.At(i, j)+G.At(j, i)) > 1e-12 {
				t.Fatalf("G not antisymmetric at (%d,%d): %v vs %v", i, j, G.At(i, j), G.At(j, i))
			}
		}
	}
}

func TestGeneratorDimensionError(t *testing.T) {
	bad := mat.NewCDense(2, 3, nil)
	_, err := Generator(bad)
	if err == nil {
		t.Fatal("expected DimensionError for non-square H")
	}
}

// TestGeneratorCommutation checks that G(σz) commutes with itself but
// G(σx)·G(σz) != G(σz)·G(σx). It does not compare either product with
// the real embedding of the corresponding complex product.
func TestGeneratorCommutation(t *testing.T) {
	Gz, _ := Generator(sigmaZ())
	Gx, _ := Generator(sigmaX())

	zz := mat.NewDense(4, 4, nil)
	zz.Mul(Gz, Gz)
	zzT := mat.NewDense(4, 4, nil)
	zzT.Mul(Gz, Gz)
	if !mat.EqualApprox(zz, zzT, 1e-12) {
		t.Fatal("G(sz) should commute with itself")
	}

	xz := mat.NewDense(4, 4, nil)
	xz.Mul(Gx, Gz)
	zx := mat.NewDense(4, 4, nil)
	zx.Mul(Gz, Gx)
	if mat.EqualApprox(xz, zx, 1e-9) {
		t.Fatal("G(sx) and G(sz) should not commute")
	}
}

// TestGOperatorIdentity checks that exp(G(H)t)*ket_to_iso(psi) ==
// ket_to_iso(exp(-iHt)*psi) to 1e-10, using a scalar H = sigma_z on a
// single qubit where exp(-iHt) is diagonal and known in closed form.
func TestGOperatorIdentity(t *testing.T) {
	theta := 0.37
	psi := []complex128{complex(1, 0), complex(0, 0)}
	// exp(-i*sigma_z*theta) applied to |0> = exp(-i*theta)|0>
	want := []complex128{cmplx.Exp(complex(0, -theta)), 0}
	wantIso := KetToIso(want)

	G, _ := Generator(sigmaZ())
	// small-step exponential via truncated series (sufficient accuracy check
	// against the closed form, not a production integrator).
	expGt := mat.NewDense(4, 4, nil)
	expGt.Scale(0, G)
	for i := 0; i < 4; i++ {
		expGt.Set(i, i, 1)
	}
	term := identity(4)
	for k := 1; k < 40; k++ {
		next := mat.NewDense(4, 4, nil)
		next.Mul(term, G)
		next.Scale(theta/float64(k), next)
		expGt.Add(expGt, next)
		term = next
	}
	got := mat.NewVecDense(4, nil)
	got.MulVec(expGt, mat.NewVecDense(4, KetToIso(psi)))

	for i := 0; i < 4; i++ {
		if math.Abs(got.AtVec(i)-wantIso[i]) > 1e-10 {
			t.Fatalf("G-operator identity mismatch at %d: got %v want %v", i, got.AtVec(i), wantIso[i])
		}
	}
}

func identity(n int) *mat.Dense {
	out := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		out.Set(i, i, 1)
	}
	return out
}

func TestLayoutRanges(t *testing.T) {
	l := Layout{T: 5, NWfn: 8, NAug: 6, NCtrl: 2, NSlack: 1}
	chk.IntAssert(l.VarDim(), 16)
	lo, hi := l.WfnRange(2)
	chk.IntAssert(lo, 32)
	chk.IntAssert(hi, 40)
	lo, hi = l.AugRange(2)
	chk.IntAssert(lo, 40)
	chk.IntAssert(hi, 46)
	lo, hi = l.CtrlRange(2)
	chk.IntAssert(lo, 46)
	chk.IntAssert(hi, 48)
	chk.IntAssert(l.DtBarIndex(), l.DtBase()+4)
	if l.Size() != l.SlackBase()+2*1*5 {
		t.Fatalf("unexpected total size %d", l.Size())
	}
}
