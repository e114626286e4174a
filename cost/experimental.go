// Copyright 2024 The QubitControl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cost

import "math"

// The costs in this file (geodesic_cost, pure_real_cost, real_cost,
// quaternionic_cost, iso_infidelity) are an experimental family, not
// part of the default cost set consumed by objective.QuantumObjective;
// a caller opts in explicitly by name.

// IsoInfidelity is the direct Euclidean alternative to the phase-
// invariant Infidelity cost: ‖ψ̃ − ψ̃goal‖². Unlike Infidelity it is not
// invariant to a global phase on ψ̃goal, which makes it smooth everywhere
// but physically cruder.
type IsoInfidelity struct{ Isodim int }

func NewIsoInfidelity(isodim int) IsoInfidelity { return IsoInfidelity{Isodim: isodim} }

func (c IsoInfidelity) Value(psiTilde, goal []float64) float64 {
	var s float64
	for i := range psiTilde {
		d := psiTilde[i] - goal[i]
		s += d * d
	}
	return s
}

func (c IsoInfidelity) Grad(psiTilde, goal []float64) []float64 {
	out := make([]float64, len(psiTilde))
	for i := range psiTilde {
		out[i] = 2 * (psiTilde[i] - goal[i])
	}
	return out
}

func (c IsoInfidelity) Structure() []HessEntry {
	out := make([]HessEntry, c.Isodim)
	for i := 0; i < c.Isodim; i++ {
		out[i] = HessEntry{i, i}
	}
	return out
}

func (c IsoInfidelity) HessValues(psiTilde, goal []float64) []float64 {
	out := make([]float64, c.Isodim)
	for i := range out {
		out[i] = 2
	}
	return out
}

// PureReal penalizes the imaginary part of ψ (the second half of ψ̃):
// Σ y_i². Used experimentally to bias a trajectory toward real-valued
// kets.
type PureReal struct{ Isodim int }

func NewPureReal(isodim int) PureReal { return PureReal{Isodim: isodim} }

func (c PureReal) Value(psiTilde, goal []float64) float64 {
	n := c.Isodim / 2
	var s float64
	for i := n; i < c.Isodim; i++ {
		s += psiTilde[i] * psiTilde[i]
	}
	return s
}

func (c PureReal) Grad(psiTilde, goal []float64) []float64 {
	n := c.Isodim / 2
	out := make([]float64, c.Isodim)
	for i := n; i < c.Isodim; i++ {
		out[i] = 2 * psiTilde[i]
	}
	return out
}

func (c PureReal) Structure() []HessEntry {
	n := c.Isodim / 2
	out := make([]HessEntry, 0, n)
	for i := n; i < c.Isodim; i++ {
		out = append(out, HessEntry{i, i})
	}
	return out
}

func (c PureReal) HessValues(psiTilde, goal []float64) []float64 {
	n := c.Isodim / 2
	out := make([]float64, c.Isodim-n)
	for i := range out {
		out[i] = 2
	}
	return out
}

// RealCost is 1 − P where P = Re⟨ψ|ψgoal⟩, a phase-sensitive (not
// phase-invariant) alternative to Infidelity that stays smooth through
// P=0 since it has no outer abs.
type RealCost struct{ Isodim int }

func NewRealCost(isodim int) RealCost { return RealCost{Isodim: isodim} }

func (c RealCost) Value(psiTilde, goal []float64) float64 {
	_, _, _, _, P, _ := splitPQ(psiTilde, goal)
	return 1 - P
}

func (c RealCost) Grad(psiTilde, goal []float64) []float64 {
	n := c.Isodim / 2
	xg, yg := goal[:n], goal[n:]
	out := make([]float64, c.Isodim)
	for i := 0; i < n; i++ {
		out[i] = -xg[i]
		out[n+i] = -yg[i]
	}
	return out
}

func (c RealCost) Structure() []HessEntry { return nil } // linear: Hessian is exactly zero

func (c RealCost) HessValues(psiTilde, goal []float64) []float64 { return nil }

// Geodesic implements the Fubini-Study-like geodesic distance
// arccos(sqrt(f)), f=|⟨ψ|ψgoal⟩|², which vanishes at f=1 like Infidelity
// (behaving as sqrt(1−f) there) and has no outer abs.
type Geodesic struct{ Isodim int }

func NewGeodesic(isodim int) Geodesic { return Geodesic{Isodim: isodim} }

func (c Geodesic) Value(psiTilde, goal []float64) float64 {
	_, _, _, _, P, Q := splitPQ(psiTilde, goal)
	f := P*P + Q*Q
	return math.Acos(clamp01(math.Sqrt(clampNonNeg(f))))
}

func (c Geodesic) Grad(psiTilde, goal []float64) []float64 {
	n := c.Isodim / 2
	_, _, xg, yg, P, Q := splitPQ(psiTilde, goal)
	f := clampNonNeg(P*P + Q*Q)
	sqrtF := math.Sqrt(f)
	// d(arccos(sqrt(f)))/df = -1 / (2*sqrt(f)*sqrt(1-f))
	denom := 2 * sqrtF * math.Sqrt(clampNonNeg(1-f))
	out := make([]float64, c.Isodim)
	if denom < 1e-12 {
		return out // gradient undefined at the poles f=0,1; return 0
	}
	dfdfactor := -1 / denom
	for i := 0; i < n; i++ {
		dfdx := 2*P*xg[i] + 2*Q*yg[i]
		dfdy := 2*P*yg[i] - 2*Q*xg[i]
		out[i] = dfdfactor * dfdx
		out[n+i] = dfdfactor * dfdy
	}
	return out
}

func (c Geodesic) Structure() []HessEntry { return upperTriangle(c.Isodim) }

// HessValues for Geodesic is obtained by a short central-difference pass
// over the (already analytic) gradient rather than a second hand
// derivation: this cost is experimental and never sits on the hot path
// that needs a closed form, and finite-differencing through the
// gradient keeps the second-derivative contract satisfied without a
// fragile closed form near the arccos poles.
func (c Geodesic) HessValues(psiTilde, goal []float64) []float64 {
	structure := c.Structure()
	out := make([]float64, len(structure))
	h := 1e-6
	grad := func(p []float64) []float64 { return c.Grad(p, goal) }
	for idx, e := range structure {
		pp := append([]float64(nil), psiTilde...)
		pm := append([]float64(nil), psiTilde...)
		pp[e.Row] += h
		pm[e.Row] -= h
		gp := grad(pp)
		gm := grad(pm)
		out[idx] = (gp[e.Col] - gm[e.Col]) / (2 * h)
	}
	return out
}

// Quaternionic is a toy experimental cost treating the first two complex
// amplitudes of ψ as the components of a quaternion q=(x0,y0,x1,y1) and
// penalizing its deviation from the unit quaternion representing the
// goal's leading amplitudes. It gives the experimental cost family a
// concrete, testable body, not a physically load-bearing formulation.
type Quaternionic struct{ Isodim int }

func NewQuaternionic(isodim int) Quaternionic { return Quaternionic{Isodim: isodim} }

func (c Quaternionic) components(v []float64) [4]float64 {
	n := c.Isodim / 2
	var q [4]float64
	q[0], q[1] = v[0], v[n]
	if n > 1 {
		q[2], q[3] = v[1], v[n+1]
	}
	return q
}

func (c Quaternionic) Value(psiTilde, goal []float64) float64 {
	a := c.components(psiTilde)
	b := c.components(goal)
	var s float64
	for i := 0; i < 4; i++ {
		d := a[i] - b[i]
		s += d * d
	}
	return s
}

func (c Quaternionic) Grad(psiTilde, goal []float64) []float64 {
	n := c.Isodim / 2
	a := c.components(psiTilde)
	b := c.components(goal)
	out := make([]float64, c.Isodim)
	out[0] = 2 * (a[0] - b[0])
	out[n] = 2 * (a[1] - b[1])
	if n > 1 {
		out[1] = 2 * (a[2] - b[2])
		out[n+1] = 2 * (a[3] - b[3])
	}
	return out
}

func (c Quaternionic) Structure() []HessEntry {
	n := c.Isodim / 2
	idx := []int{0, n}
	if n > 1 {
		idx = append(idx, 1, n+1)
	}
	out := make([]HessEntry, len(idx))
	for i, k := range idx {
		out[i] = HessEntry{k, k}
	}
	return out
}

func (c Quaternionic) HessValues(psiTilde, goal []float64) []float64 {
	out := make([]float64, len(c.Structure()))
	for i := range out {
		out[i] = 2
	}
	return out
}

func clamp01(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampNonNeg(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
