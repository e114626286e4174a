// Copyright 2024 The QubitControl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrator

import (
	"gonum.org/v1/gonum/mat"

	"github.com/aarontrowbridge/qubitctrl/qsys"
)

// SOP is the second-order Padé integrator:
//
//	Pⁱₜ = ψ̃ⁱₜ₊₁ − ψ̃ⁱₜ − (Δtₜ/2)·Gₜ·(ψ̃ⁱₜ₊₁ + ψ̃ⁱₜ)
//
// It is linear in a and in Δt, so the pure second derivatives ∂²/∂a² and
// ∂²/∂Δt² are exactly zero; the mixed terms (a×ψ̃, Δt×ψ̃, Δt×a) are not.
type SOP struct{ sys }

// NewSOP builds a second-order Padé integrator bound to the given system.
func NewSOP(s *qsys.System) *SOP { return &SOP{sys{Sys: s}} }

func (o *SOP) Order() int { return 2 }

func (o *SOP) Residual(psiT, psiT1, a []float64, dt float64) []float64 {
	G := o.gAt(a)
	S := vecAdd(psiT1, psiT)
	D := vecSub(psiT1, psiT)
	return vecSub(D, matVec(scale(dt/2, G), S))
}

func (o *SOP) DPsiT(a []float64, dt float64) *mat.Dense {
	n := o.Sys.Isodim
	G := o.gAt(a)
	out := mat.NewDense(n, n, nil)
	out.Scale(-dt/2, G)
	out.Sub(out, identity(n))
	return out
}

func (o *SOP) DPsiT1(a []float64, dt float64) *mat.Dense {
	n := o.Sys.Isodim
	G := o.gAt(a)
	out := mat.NewDense(n, n, nil)
	out.Scale(-dt/2, G)
	out.Add(out, identity(n))
	return out
}

func (o *SOP) DA(psiT, psiT1, a []float64, dt float64) *mat.Dense {
	n := o.Sys.Isodim
	k := o.Sys.Ncontrols
	S := vecAdd(psiT1, psiT)
	out := mat.NewDense(n, k, nil)
	for j := 0; j < k; j++ {
		col := matVec(scale(-dt/2, o.Sys.GDrives[j]), S)
		for i := 0; i < n; i++ {
			out.Set(i, j, col[i])
		}
	}
	return out
}

func (o *SOP) DDt(psiT, psiT1, a []float64, dt float64) []float64 {
	G := o.gAt(a)
	S := vecAdd(psiT1, psiT)
	return matVec(scale(-0.5, G), S)
}

// MuDADA is exactly zero for SOP: P is linear in a.
func (o *SOP) MuDADA(mu, psiT, psiT1, a []float64, dt float64) *mat.Dense {
	k := o.Sys.Ncontrols
	return mat.NewDense(k, k, nil)
}

func (o *SOP) MuDADPsiT(mu, a []float64, dt float64) *mat.Dense {
	k := o.Sys.Ncontrols
	n := o.Sys.Isodim
	out := mat.NewDense(k, n, nil)
	for j := 0; j < k; j++ {
		row := matVec(o.Sys.GDrives[j].T(), mu)
		for i := 0; i < n; i++ {
			out.Set(j, i, -dt/2*row[i])
		}
	}
	return out
}

func (o *SOP) MuDADPsiT1(mu, a []float64, dt float64) *mat.Dense {
	// identical coefficient to MuDADPsiT: S = ψT+ψT1 enters symmetrically.
	return o.MuDADPsiT(mu, a, dt)
}

// MuDDt2 is exactly zero for SOP: P is linear in Δt.
func (o *SOP) MuDDt2(mu, psiT, psiT1, a []float64, dt float64) float64 { return 0 }

func (o *SOP) MuDDtDPsiT(mu, a []float64, dt float64) []float64 {
	G := o.gAt(a)
	row := matVec(G.T(), mu)
	out := make([]float64, len(row))
	for i := range row {
		out[i] = -0.5 * row[i]
	}
	return out
}

func (o *SOP) MuDDtDPsiT1(mu, a []float64, dt float64) []float64 {
	return o.MuDDtDPsiT(mu, a, dt)
}

func (o *SOP) MuDDtDA(mu, psiT, psiT1, a []float64, dt float64) []float64 {
	k := o.Sys.Ncontrols
	S := vecAdd(psiT1, psiT)
	out := make([]float64, k)
	for j := 0; j < k; j++ {
		out[j] = -0.5 * dot(mu, matVec(o.Sys.GDrives[j], S))
	}
	return out
}
