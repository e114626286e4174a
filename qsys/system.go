// Copyright 2024 The QubitControl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package qsys assembles the immutable, per-problem quantum system: the
// real-embedded drift/drive generators, dimensions, bounds, and the
// augmented-state decision-vector layout.
package qsys

import (
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/aarontrowbridge/qubitctrl/iso"
	"github.com/aarontrowbridge/qubitctrl/qcerr"
)

// System is the immutable, per-problem description of the quantum
// control problem: drift/drive generators, dimensions, bounds, and the
// initial/goal states of every tracked qstate.
type System struct {
	Isodim       int // 2 * Hilbert dim
	Nqstates     int // number of initial states tracked in parallel
	NWfnStates   int // Nqstates * Isodim
	Ncontrols    int // number of drives
	ControlOrder int // how many time-derivatives of each control are augmented states
	IncludeIntg  bool
	Augdim       int // ControlOrder + (1 if IncludeIntg)
	NAugStates   int // Ncontrols * Augdim
	Nstates      int // NWfnStates + NAugStates
	Vardim       int // Nstates + Ncontrols

	GDrift  *mat.Dense   // real 2n x 2n generator of the drift Hamiltonian
	GDrives []*mat.Dense // real 2n x 2n generators of each drive Hamiltonian

	ControlBounds []float64 // |a_k| <= ControlBounds[k]
	UBound        float64   // |u| <= UBound  (bound on the top-order control/derivative)

	PsiTildeInit [][]float64 // [nqstates][isodim] iso-embedded initial states
	PsiTildeGoal [][]float64 // [nqstates][isodim] iso-embedded goal states

	Layout iso.Layout
}

// Option configures optional System construction parameters.
type Option func(*config)

type config struct {
	controlOrder int
	includeIntg  bool
	goalPhase    float64
	uBound       float64
}

// WithControlOrder sets how many control derivatives are carried as
// augmented states. Default is 2 (a, ȧ).
func WithControlOrder(order int) Option {
	return func(c *config) { c.controlOrder = order }
}

// WithIntegralControl additionally augments the state with ∫a for each
// control (augdim = control_order + ∫a).
func WithIntegralControl() Option {
	return func(c *config) { c.includeIntg = true }
}

// WithGoalPhase applies a global phase rotation e^{iφ} to every goal
// state before embedding.
func WithGoalPhase(phi float64) Option {
	return func(c *config) { c.goalPhase = phi }
}

// WithUBound sets the bound on the top-order control derivative uₜ
// (default: the largest entry of controlBounds).
func WithUBound(u float64) Option {
	return func(c *config) { c.uBound = u }
}

// NewSystem builds a System from a drift Hamiltonian, a list of drive
// Hamiltonians with per-drive amplitude bounds, and one or more
// (initial, goal) state pairs sharing a common dimension.
func NewSystem(
	hDrift *mat.CDense,
	hDrives []*mat.CDense,
	controlBounds []float64,
	psiInits [][]complex128,
	psiGoals [][]complex128,
	opts ...Option,
) (*System, error) {

	cfg := &config{controlOrder: 2}
	for _, o := range opts {
		o(cfg)
	}

	if len(hDrives) != len(controlBounds) {
		return nil, qcerr.Configuration("qsys.NewSystem",
			"len(control_bounds)=%d != len(H_drives)=%d", len(controlBounds), len(hDrives))
	}
	if len(psiInits) == 0 {
		return nil, qcerr.Configuration("qsys.NewSystem", "at least one initial state is required")
	}
	if len(psiInits) != len(psiGoals) {
		return nil, qcerr.Configuration("qsys.NewSystem",
			"len(psiInits)=%d != len(psiGoals)=%d", len(psiInits), len(psiGoals))
	}

	n, _ := hDrift.Dims()
	for i, psi := range psiInits {
		if len(psi) != n {
			return nil, qcerr.Dimension("qsys.NewSystem", "psiInits[%d] has dim %d, want %d", i, len(psi), n)
		}
	}
	for i, psi := range psiGoals {
		if len(psi) != n {
			return nil, qcerr.Dimension("qsys.NewSystem", "psiGoals[%d] has dim %d, want %d", i, len(psi), n)
		}
	}

	gDrift, err := iso.Generator(hDrift)
	if err != nil {
		return nil, err
	}
	gDrives := make([]*mat.Dense, len(hDrives))
	for k, hd := range hDrives {
		rk, ck := hd.Dims()
		if rk != n || ck != n {
			return nil, qcerr.Dimension("qsys.NewSystem", "H_drives[%d] is %dx%d, want %dx%d", k, rk, ck, n, n)
		}
		g, err := iso.Generator(hd)
		if err != nil {
			return nil, err
		}
		gDrives[k] = g
	}

	augdim := cfg.controlOrder
	if cfg.includeIntg {
		augdim++
	}

	uBound := cfg.uBound
	if uBound == 0 {
		for _, b := range controlBounds {
			if b > uBound {
				uBound = b
			}
		}
	}

	psiTildeInit := make([][]float64, len(psiInits))
	psiTildeGoal := make([][]float64, len(psiGoals))
	for i, psi := range psiInits {
		psiTildeInit[i] = iso.KetToIso(psi)
	}
	phase := cmplx.Exp(complex(0, cfg.goalPhase))
	for i, psi := range psiGoals {
		rotated := psi
		if cfg.goalPhase != 0 {
			rotated = make([]complex128, len(psi))
			for j, v := range psi {
				rotated[j] = v * phase
			}
		}
		psiTildeGoal[i] = iso.KetToIso(rotated)
	}

	isodim := 2 * n
	nqstates := len(psiInits)
	nWfnStates := nqstates * isodim
	ncontrols := len(hDrives)
	nAugStates := ncontrols * augdim
	nstates := nWfnStates + nAugStates
	vardim := nstates + ncontrols

	sys := &System{
		Isodim:        isodim,
		Nqstates:      nqstates,
		NWfnStates:    nWfnStates,
		Ncontrols:     ncontrols,
		ControlOrder:  cfg.controlOrder,
		IncludeIntg:   cfg.includeIntg,
		Augdim:        augdim,
		NAugStates:    nAugStates,
		Nstates:       nstates,
		Vardim:        vardim,
		GDrift:        gDrift,
		GDrives:       gDrives,
		ControlBounds: controlBounds,
		UBound:        uBound,
		PsiTildeInit:  psiTildeInit,
		PsiTildeGoal:  psiTildeGoal,
	}
	return sys, nil
}

// GeneratorAt computes Gₜ = G_drift + Σₖ aₜ,ₖ·G_drives[k] for a control
// vector a of length Ncontrols.
func (s *System) GeneratorAt(a []float64) *mat.Dense {
	r, _ := s.GDrift.Dims()
	G := mat.NewDense(r, r, nil)
	G.CloneFrom(s.GDrift)
	for k, ak := range a {
		if ak == 0 {
			continue
		}
		iso.AddScaled(G, s.GDrives[k], ak)
	}
	return G
}

// LayoutFor returns the Z index layout for a trajectory of T time steps
// with the given number of L1-regularized slack components.
func (s *System) LayoutFor(T, nSlack int) iso.Layout {
	return iso.Layout{
		T:      T,
		NWfn:   s.NWfnStates,
		NAug:   s.NAugStates,
		NCtrl:  s.Ncontrols,
		NSlack: nSlack,
	}
}
