// Copyright 2024 The QubitControl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dynamics assembles the per-step integrator residuals and the
// augmented-control forward-Euler residuals into the single sparse
// equality-constraint function F(Z) that ties the whole trajectory
// together, along with its analytic Jacobian and the μ-weighted
// contribution to the Hessian of the Lagrangian. The assembly idiom
// (fixed sparse structure plus a values pass computed fresh at every Z,
// with repeated (row,col) positions summed by the consumer) is the same
// contract a finite-element assembler uses to build a global tangent
// matrix from local element contributions.
package dynamics

import (
	"github.com/cpmech/gosl/la"

	"github.com/aarontrowbridge/qubitctrl/integrator"
	"github.com/aarontrowbridge/qubitctrl/iso"
	"github.com/aarontrowbridge/qubitctrl/qsys"
)

// JacEntry is one (row,col) position of the sparse Jacobian ∂F/∂Z.
type JacEntry struct{ Row, Col int }

// HessEntry is one (row,col) position (row<=col) of the sparse μ∇²F.
type HessEntry struct{ Row, Col int }

// Dynamics binds a quantum system to the integrator used for every
// transition and assembles the stacked residual over a trajectory of
// a given layout.
type Dynamics struct {
	Sys   *qsys.System
	Integ integrator.Integrator
}

// New returns a Dynamics assembler for sys using integ for every
// wavefunction transition.
func New(sys *qsys.System, integ integrator.Integrator) *Dynamics {
	return &Dynamics{Sys: sys, Integ: integ}
}

// wfnResidualsPerStep is the number of wavefunction residual scalars
// contributed by one transition: one isodim block per tracked qstate.
func (d *Dynamics) wfnResidualsPerStep() int {
	return d.Sys.Nqstates * d.Sys.Isodim
}

// augResidualsPerStep is the number of augmented-control residual
// scalars contributed by one transition: Augdim per control.
func (d *Dynamics) augResidualsPerStep() int {
	return d.Sys.Ncontrols * d.Sys.Augdim
}

// residualsPerStep is the total row count contributed by one transition.
func (d *Dynamics) residualsPerStep() int {
	return d.wfnResidualsPerStep() + d.augResidualsPerStep()
}

// Dim returns the total number of scalar equality residuals for a
// trajectory with T time steps (T-1 transitions).
func (d *Dynamics) Dim(layout iso.Layout) int {
	if layout.T < 2 {
		return 0
	}
	return (layout.T - 1) * d.residualsPerStep()
}

// stepBase returns the row offset of transition t's residual block
// (t ranges over 0..T-2).
func (d *Dynamics) stepBase(t int) int { return t * d.residualsPerStep() }

// controlAt extracts the drive amplitude vector a_t (the order-0 slot
// of each control's augmented block) at step t.
func (d *Dynamics) controlAt(Z []float64, layout iso.Layout, t int) []float64 {
	lo, _ := layout.AugRange(t)
	out := make([]float64, d.Sys.Ncontrols)
	for k := 0; k < d.Sys.Ncontrols; k++ {
		out[k] = Z[lo+k*d.Sys.Augdim]
	}
	return out
}

// wfnAt extracts qstate q's isodim block at step t.
func (d *Dynamics) wfnAt(Z []float64, layout iso.Layout, t, q int) []float64 {
	lo, _ := layout.WfnRange(t)
	base := lo + q*d.Sys.Isodim
	return append([]float64(nil), Z[base:base+d.Sys.Isodim]...)
}

// derivIndex returns the absolute Z index of d(aug[k][o])/dt at step t:
// the next-higher augmented order, or the top-order control slot when o
// is the last order in the differentiation chain.
func (d *Dynamics) derivIndex(layout iso.Layout, t, k, o int) int {
	augLo, _ := layout.AugRange(t)
	chainLen := d.Sys.ControlOrder
	if o < chainLen-1 {
		return augLo + k*d.Sys.Augdim + o + 1
	}
	if o == chainLen-1 {
		ctrlLo, _ := layout.CtrlRange(t)
		return ctrlLo + k
	}
	// o == chainLen: the integral-of-control slot, whose derivative is
	// the control amplitude itself (order 0).
	return augLo + k*d.Sys.Augdim
}

// augIndex returns the absolute Z index of aug[k][o] at step t.
func (d *Dynamics) augIndex(layout iso.Layout, t, k, o int) int {
	lo, _ := layout.AugRange(t)
	return lo + k*d.Sys.Augdim + o
}

// F evaluates the full stacked residual vector for Z under layout.
func (d *Dynamics) F(Z []float64, layout iso.Layout) []float64 {
	out := make([]float64, d.Dim(layout))
	for t := 0; t < layout.T-1; t++ {
		base := d.stepBase(t)
		dt := Z[layout.DtIndex(t)]
		a := d.controlAt(Z, layout, t)

		row := base
		for q := 0; q < d.Sys.Nqstates; q++ {
			psiT := d.wfnAt(Z, layout, t, q)
			psiT1 := d.wfnAt(Z, layout, t+1, q)
			res := d.Integ.Residual(psiT, psiT1, a, dt)
			copy(out[row:row+d.Sys.Isodim], res)
			row += d.Sys.Isodim
		}

		for k := 0; k < d.Sys.Ncontrols; k++ {
			for o := 0; o < d.Sys.Augdim; o++ {
				cur := Z[d.augIndex(layout, t, k, o)]
				next := Z[d.augIndex(layout, t+1, k, o)]
				derivT := Z[d.derivIndex(layout, t, k, o)]
				out[row] = next - cur - dt*derivT
				row++
			}
		}
	}
	return out
}

// JacobianStructure returns the fixed sparse nonzero positions of
// ∂F/∂Z for a trajectory with the given layout.
func (d *Dynamics) JacobianStructure(layout iso.Layout) []JacEntry {
	var out []JacEntry
	for t := 0; t < layout.T-1; t++ {
		base := d.stepBase(t)
		row := base
		for q := 0; q < d.Sys.Nqstates; q++ {
			wfnLoT, _ := layout.WfnRange(t)
			wfnLoT1, _ := layout.WfnRange(t + 1)
			qOff := q * d.Sys.Isodim
			for i := 0; i < d.Sys.Isodim; i++ {
				for j := 0; j < d.Sys.Isodim; j++ {
					out = append(out, JacEntry{row + i, wfnLoT + qOff + j})
					out = append(out, JacEntry{row + i, wfnLoT1 + qOff + j})
				}
				for k := 0; k < d.Sys.Ncontrols; k++ {
					out = append(out, JacEntry{row + i, d.augIndex(layout, t, k, 0)})
				}
				out = append(out, JacEntry{row + i, layout.DtIndex(t)})
			}
			row += d.Sys.Isodim
		}

		for k := 0; k < d.Sys.Ncontrols; k++ {
			for o := 0; o < d.Sys.Augdim; o++ {
				out = append(out,
					JacEntry{row, d.augIndex(layout, t+1, k, o)},
					JacEntry{row, d.augIndex(layout, t, k, o)},
					JacEntry{row, d.derivIndex(layout, t, k, o)},
					JacEntry{row, layout.DtIndex(t)},
				)
				row++
			}
		}
	}
	return out
}

// JacobianValues returns the Jacobian entries in JacobianStructure order.
func (d *Dynamics) JacobianValues(Z []float64, layout iso.Layout) []float64 {
	var out []float64
	for t := 0; t < layout.T-1; t++ {
		dt := Z[layout.DtIndex(t)]
		a := d.controlAt(Z, layout, t)

		for q := 0; q < d.Sys.Nqstates; q++ {
			psiT := d.wfnAt(Z, layout, t, q)
			psiT1 := d.wfnAt(Z, layout, t+1, q)
			dPsiT := d.Integ.DPsiT(a, dt)
			dPsiT1 := d.Integ.DPsiT1(a, dt)
			dA := d.Integ.DA(psiT, psiT1, a, dt)
			dDt := d.Integ.DDt(psiT, psiT1, a, dt)
			for i := 0; i < d.Sys.Isodim; i++ {
				for j := 0; j < d.Sys.Isodim; j++ {
					out = append(out, dPsiT.At(i, j))
					out = append(out, dPsiT1.At(i, j))
				}
				for k := 0; k < d.Sys.Ncontrols; k++ {
					out = append(out, dA.At(i, k))
				}
				out = append(out, dDt[i])
			}
		}

		for k := 0; k < d.Sys.Ncontrols; k++ {
			for o := 0; o < d.Sys.Augdim; o++ {
				derivT := Z[d.derivIndex(layout, t, k, o)]
				out = append(out,
					1,
					-1,
					-dt,
					-derivT,
				)
			}
		}
	}
	return out
}

// AddToJacobian assembles ∂F/∂Z directly into a gosl/la sparse triplet,
// mirroring the per-element AddToKb contract: repeated (row,col)
// positions are summed by the triplet's consumer.
func (d *Dynamics) AddToJacobian(Kb *la.Triplet, Z []float64, layout iso.Layout) {
	structure := d.JacobianStructure(layout)
	values := d.JacobianValues(Z, layout)
	for i, e := range structure {
		Kb.Put(e.Row, e.Col, values[i])
	}
}

// HessianStructure returns the fixed upper-triangular (row<=col) sparse
// positions of μᵀ∇²F. Only the wavefunction residual block carries a
// nonzero Hessian of Z; the augmented forward-Euler residuals are affine
// in every state variable and bilinear only in (Δt, derivT), which is
// covered by the single Δt×derivT cross term below.
func (d *Dynamics) HessianStructure(layout iso.Layout) []HessEntry {
	var out []HessEntry
	upper := func(i, j int) HessEntry {
		if i <= j {
			return HessEntry{i, j}
		}
		return HessEntry{j, i}
	}
	for t := 0; t < layout.T-1; t++ {
		wfnLoT, _ := layout.WfnRange(t)
		wfnLoT1, _ := layout.WfnRange(t + 1)
		dtIdx := layout.DtIndex(t)

		for q := 0; q < d.Sys.Nqstates; q++ {
			qOff := q * d.Sys.Isodim
			for k := 0; k < d.Sys.Ncontrols; k++ {
				aIdx := d.augIndex(layout, t, k, 0)
				for j := k; j < d.Sys.Ncontrols; j++ {
					out = append(out, upper(aIdx, d.augIndex(layout, t, j, 0)))
				}
				out = append(out, upper(aIdx, wfnLoT+qOff), upper(aIdx, wfnLoT1+qOff))
				for i := 1; i < d.Sys.Isodim; i++ {
					out = append(out, upper(aIdx, wfnLoT+qOff+i), upper(aIdx, wfnLoT1+qOff+i))
				}
				out = append(out, upper(dtIdx, aIdx))
			}
			out = append(out, upper(dtIdx, wfnLoT+qOff), upper(dtIdx, wfnLoT1+qOff))
			for i := 1; i < d.Sys.Isodim; i++ {
				out = append(out, upper(dtIdx, wfnLoT+qOff+i), upper(dtIdx, wfnLoT1+qOff+i))
			}
			out = append(out, HessEntry{dtIdx, dtIdx})
		}

		for k := 0; k < d.Sys.Ncontrols; k++ {
			for o := 0; o < d.Sys.Augdim; o++ {
				out = append(out, upper(dtIdx, d.derivIndex(layout, t, k, o)))
			}
		}
	}
	return out
}

// HessianValues returns μᵀ∇²F in HessianStructure order.
func (d *Dynamics) HessianValues(Z, mu []float64, layout iso.Layout) []float64 {
	var out []float64
	for t := 0; t < layout.T-1; t++ {
		base := d.stepBase(t)
		dt := Z[layout.DtIndex(t)]
		a := d.controlAt(Z, layout, t)
		row := base

		for q := 0; q < d.Sys.Nqstates; q++ {
			psiT := d.wfnAt(Z, layout, t, q)
			psiT1 := d.wfnAt(Z, layout, t+1, q)
			muq := mu[row : row+d.Sys.Isodim]

			muDADA := d.Integ.MuDADA(muq, psiT, psiT1, a, dt)
			muDADPsiT := d.Integ.MuDADPsiT(muq, a, dt)
			muDADPsiT1 := d.Integ.MuDADPsiT1(muq, a, dt)
			muDDtDPsiT := d.Integ.MuDDtDPsiT(muq, a, dt)
			muDDtDPsiT1 := d.Integ.MuDDtDPsiT1(muq, a, dt)
			muDDtDA := d.Integ.MuDDtDA(muq, psiT, psiT1, a, dt)
			muDDt2 := d.Integ.MuDDt2(muq, psiT, psiT1, a, dt)

			for k := 0; k < d.Sys.Ncontrols; k++ {
				for j := k; j < d.Sys.Ncontrols; j++ {
					out = append(out, muDADA.At(k, j))
				}
				out = append(out, muDADPsiT.At(k, 0), muDADPsiT1.At(k, 0))
				for i := 1; i < d.Sys.Isodim; i++ {
					out = append(out, muDADPsiT.At(k, i), muDADPsiT1.At(k, i))
				}
				out = append(out, muDDtDA[k])
			}
			out = append(out, muDDtDPsiT[0], muDDtDPsiT1[0])
			for i := 1; i < d.Sys.Isodim; i++ {
				out = append(out, muDDtDPsiT[i], muDDtDPsiT1[i])
			}
			out = append(out, muDDt2)

			row += d.Sys.Isodim
		}

		for k := 0; k < d.Sys.Ncontrols; k++ {
			for o := 0; o < d.Sys.Augdim; o++ {
				out = append(out, -mu[row])
				row++
			}
		}
	}
	return out
}
