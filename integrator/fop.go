// Copyright 2024 The QubitControl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrator

import (
	"gonum.org/v1/gonum/mat"

	"github.com/aarontrowbridge/qubitctrl/iso"
	"github.com/aarontrowbridge/qubitctrl/qsys"
)

// FOP is the fourth-order Padé integrator:
//
//	Pⁱₜ = (I + (Δtₜ²/9)·Gₜ²)·(ψ̃ⁱₜ₊₁ − ψ̃ⁱₜ) − (Δtₜ/2)·Gₜ·(ψ̃ⁱₜ₊₁ + ψ̃ⁱₜ)
//
// Construction precomputes the anticommutator cache: for
// j = 1..ncontrols, {G_drives[j], G_drift}, and for k ≤ j the upper
// triangular {G_drives[k], G_drives[j]} (diagonal = 2·G_drives[k]²). The
// cache is immutable after construction and symmetric under k,j swap.
type FOP struct {
	sys
	driftAnticoms []*mat.Dense   // [ncontrols] {G_drives[j], G_drift}
	driveAnticoms [][]*mat.Dense // upper triangular [k][j-k], k<=j
}

// NewFOP builds a fourth-order Padé integrator bound to the given system,
// precomputing its anticommutator cache.
func NewFOP(s *qsys.System) *FOP {
	k := s.Ncontrols
	driftAnticoms := make([]*mat.Dense, k)
	for j := 0; j < k; j++ {
		driftAnticoms[j] = iso.Anticommutator(s.GDrives[j], s.GDrift)
	}
	driveAnticoms := make([][]*mat.Dense, k)
	for kk := 0; kk < k; kk++ {
		driveAnticoms[kk] = make([]*mat.Dense, k-kk)
		for j := kk; j < k; j++ {
			if j == kk {
				n, _ := s.GDrives[kk].Dims()
				sq := mat.NewDense(n, n, nil)
				sq.Mul(s.GDrives[kk], s.GDrives[kk])
				sq.Scale(2, sq)
				driveAnticoms[kk][j-kk] = sq
			} else {
				driveAnticoms[kk][j-kk] = iso.Anticommutator(s.GDrives[kk], s.GDrives[j])
			}
		}
	}
	return &FOP{sys: sys{Sys: s}, driftAnticoms: driftAnticoms, driveAnticoms: driveAnticoms}
}

// driveAnticom looks up {G_drives[k], G_drives[j]} for any k,j (the cache
// is stored upper-triangular and is symmetric under k,j swap).
func (o *FOP) driveAnticom(k, j int) *mat.Dense {
	if k > j {
		k, j = j, k
	}
	return o.driveAnticoms[k][j-k]
}

// anticomAt returns {G_drives[j], Gₜ} = G_drift_anticom[j] + Σₖ aₖ·G_drive_anticom[k,j].
func (o *FOP) anticomAt(j int, a []float64) *mat.Dense {
	n, _ := o.Sys.GDrift.Dims()
	out := mat.NewDense(n, n, nil)
	out.CloneFrom(o.driftAnticoms[j])
	for k, ak := range a {
		if ak == 0 {
			continue
		}
		iso.AddScaled(out, o.driveAnticom(k, j), ak)
	}
	return out
}

func (o *FOP) Order() int { return 4 }

func (o *FOP) Residual(psiT, psiT1, a []float64, dt float64) []float64 {
	n := o.Sys.Isodim
	G := o.gAt(a)
	G2 := mat.NewDense(n, n, nil)
	G2.Mul(G, G)
	D := vecSub(psiT1, psiT)
	S := vecAdd(psiT1, psiT)
	term1 := matVec(scale(dt*dt/9, G2), D)
	term1 = vecAdd(term1, D)
	term2 := matVec(scale(dt/2, G), S)
	return vecSub(term1, term2)
}

func (o *FOP) DPsiT(a []float64, dt float64) *mat.Dense {
	n := o.Sys.Isodim
	G := o.gAt(a)
	G2 := mat.NewDense(n, n, nil)
	G2.Mul(G, G)
	out := mat.NewDense(n, n, nil)
	out.Scale(-dt*dt/9, G2)
	out.Sub(out, identity(n))
	tmp := mat.NewDense(n, n, nil)
	tmp.Scale(dt/2, G)
	out.Sub(out, tmp)
	return out
}

func (o *FOP) DPsiT1(a []float64, dt float64) *mat.Dense {
	n := o.Sys.Isodim
	G := o.gAt(a)
	G2 := mat.NewDense(n, n, nil)
	G2.Mul(G, G)
	out := mat.NewDense(n, n, nil)
	out.Scale(dt*dt/9, G2)
	out.Add(out, identity(n))
	tmp := mat.NewDense(n, n, nil)
	tmp.Scale(dt/2, G)
	out.Sub(out, tmp)
	return out
}

func (o *FOP) DA(psiT, psiT1, a []float64, dt float64) *mat.Dense {
	n := o.Sys.Isodim
	k := o.Sys.Ncontrols
	D := vecSub(psiT1, psiT)
	S := vecAdd(psiT1, psiT)
	out := mat.NewDense(n, k, nil)
	for j := 0; j < k; j++ {
		anticom := o.anticomAt(j, a)
		col := matVec(scale(dt*dt/9, anticom), D)
		col2 := matVec(scale(dt/2, o.Sys.GDrives[j]), S)
		for i := 0; i < n; i++ {
			out.Set(i, j, col[i]-col2[i])
		}
	}
	return out
}

func (o *FOP) DDt(psiT, psiT1, a []float64, dt float64) []float64 {
	n := o.Sys.Isodim
	G := o.gAt(a)
	G2 := mat.NewDense(n, n, nil)
	G2.Mul(G, G)
	D := vecSub(psiT1, psiT)
	S := vecAdd(psiT1, psiT)
	term1 := matVec(scale(2*dt/9, G2), D)
	term2 := matVec(scale(0.5, G), S)
	return vecSub(term1, term2)
}

// MuDADA: FOP equals (Δt²/9)·⟨μⁱₜ, {G_drives[k], G_drives[j]}·(ψ̃ⁱₜ₊₁ − ψ̃ⁱₜ)⟩.
func (o *FOP) MuDADA(mu, psiT, psiT1, a []float64, dt float64) *mat.Dense {
	k := o.Sys.Ncontrols
	D := vecSub(psiT1, psiT)
	out := mat.NewDense(k, k, nil)
	for kk := 0; kk < k; kk++ {
		for j := kk; j < k; j++ {
			val := dt * dt / 9 * dot(mu, matVec(o.driveAnticom(kk, j), D))
			out.Set(kk, j, val)
			out.Set(j, kk, val)
		}
	}
	return out
}

func (o *FOP) MuDADPsiT(mu, a []float64, dt float64) *mat.Dense {
	k := o.Sys.Ncontrols
	n := o.Sys.Isodim
	out := mat.NewDense(k, n, nil)
	for j := 0; j < k; j++ {
		anticomT := matVec(o.anticomAt(j, a).T(), mu)
		gjT := matVec(o.Sys.GDrives[j].T(), mu)
		for i := 0; i < n; i++ {
			out.Set(j, i, -dt*dt/9*anticomT[i]-dt/2*gjT[i])
		}
	}
	return out
}

func (o *FOP) MuDADPsiT1(mu, a []float64, dt float64) *mat.Dense {
	k := o.Sys.Ncontrols
	n := o.Sys.Isodim
	out := mat.NewDense(k, n, nil)
	for j := 0; j < k; j++ {
		anticomT := matVec(o.anticomAt(j, a).T(), mu)
		gjT := matVec(o.Sys.GDrives[j].T(), mu)
		for i := 0; i < n; i++ {
			out.Set(j, i, dt*dt/9*anticomT[i]-dt/2*gjT[i])
		}
	}
	return out
}

// MuDDt2: FOP = (2/9)·⟨μⁱₜ, Gₜ²·(ψ̃ⁱₜ₊₁ − ψ̃ⁱₜ)⟩.
func (o *FOP) MuDDt2(mu, psiT, psiT1, a []float64, dt float64) float64 {
	n := o.Sys.Isodim
	G := o.gAt(a)
	G2 := mat.NewDense(n, n, nil)
	G2.Mul(G, G)
	D := vecSub(psiT1, psiT)
	return 2.0 / 9.0 * dot(mu, matVec(G2, D))
}

func (o *FOP) MuDDtDPsiT(mu, a []float64, dt float64) []float64 {
	n := o.Sys.Isodim
	G := o.gAt(a)
	G2 := mat.NewDense(n, n, nil)
	G2.Mul(G, G)
	g2T := matVec(G2.T(), mu)
	gT := matVec(G.T(), mu)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = -2*dt/9*g2T[i] - 0.5*gT[i]
	}
	return out
}

func (o *FOP) MuDDtDPsiT1(mu, a []float64, dt float64) []float64 {
	n := o.Sys.Isodim
	G := o.gAt(a)
	G2 := mat.NewDense(n, n, nil)
	G2.Mul(G, G)
	g2T := matVec(G2.T(), mu)
	gT := matVec(G.T(), mu)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = 2*dt/9*g2T[i] - 0.5*gT[i]
	}
	return out
}

func (o *FOP) MuDDtDA(mu, psiT, psiT1, a []float64, dt float64) []float64 {
	k := o.Sys.Ncontrols
	D := vecSub(psiT1, psiT)
	S := vecAdd(psiT1, psiT)
	out := make([]float64, k)
	for j := 0; j < k; j++ {
		anticom := o.anticomAt(j, a)
		out[j] = 2*dt/9*dot(mu, matVec(anticom, D)) - 0.5*dot(mu, matVec(o.Sys.GDrives[j], S))
	}
	return out
}
