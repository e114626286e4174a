// Copyright 2024 The QubitControl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cost

import "math"

// Infidelity implements infidelity_cost(ψ̃, ψ̃goal) = |1 − |⟨ψ|ψgoal⟩|²|,
// hand-derived rather than obtained by symbolic differentiation. Writing
// ψ̃=(x,y), ψ̃goal=(xg,yg) in the iso split,
//
//	P = x·xg + y·yg,  Q = x·yg − y·xg        (Re, Im of ⟨ψ|ψgoal⟩)
//	f = P² + Q²                              (|⟨ψ|ψgoal⟩|²)
//	cost = |1 − f|
//
// Near exact phase alignment (f crosses 1) the gradient is not smooth
// because of the outer abs. That's inherent to the formulation, not a
// bug, and derivative tests should avoid exact alignment points.
type Infidelity struct {
	Isodim int
}

// NewInfidelity returns an Infidelity cost over kets of the given isodim
// (2*Hilbert dim). isodim fixes the Hessian structure, which must be a
// pure function of dimension per the sparse contract.
func NewInfidelity(isodim int) Infidelity { return Infidelity{Isodim: isodim} }

func splitPQ(psiTilde, goal []float64) (x, y, xg, yg []float64, P, Q float64) {
	n := len(psiTilde) / 2
	x, y = psiTilde[:n], psiTilde[n:]
	xg, yg = goal[:n], goal[n:]
	for i := 0; i < n; i++ {
		P += x[i]*xg[i] + y[i]*yg[i]
		Q += x[i]*yg[i] - y[i]*xg[i]
	}
	return
}

func (c Infidelity) Value(psiTilde, goal []float64) float64 {
	_, _, _, _, P, Q := splitPQ(psiTilde, goal)
	return math.Abs(1 - (P*P + Q*Q))
}

func (c Infidelity) Grad(psiTilde, goal []float64) []float64 {
	n := len(psiTilde) / 2
	_, _, xg, yg, P, Q := splitPQ(psiTilde, goal)
	sign := signOf(1 - (P*P + Q*Q))
	out := make([]float64, 2*n)
	for i := 0; i < n; i++ {
		dfdx := 2*P*xg[i] + 2*Q*yg[i]
		dfdy := 2*P*yg[i] - 2*Q*xg[i]
		out[i] = -sign * dfdx
		out[n+i] = -sign * dfdy
	}
	return out
}

func (c Infidelity) Structure() []HessEntry { return upperTriangle(c.Isodim) }

func (c Infidelity) HessValues(psiTilde, goal []float64) []float64 {
	n := len(psiTilde) / 2
	_, _, xg, yg, P, Q := splitPQ(psiTilde, goal)
	sign := signOf(1 - (P*P + Q*Q))
	structure := c.Structure()
	out := make([]float64, len(structure))
	for idx, e := range structure {
		i, j := e.Row, e.Col
		var d2f float64
		switch {
		case i < n && j < n:
			d2f = 2*xg[i]*xg[j] + 2*yg[i]*yg[j]
		case i >= n && j >= n:
			ii, jj := i-n, j-n
			d2f = 2*yg[ii]*yg[jj] + 2*xg[ii]*xg[jj]
		default: // i < n <= j
			jj := j - n
			d2f = 2*xg[i]*yg[jj] - 2*yg[i]*xg[jj]
		}
		out[idx] = -sign * d2f
	}
	return out
}

func signOf(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
