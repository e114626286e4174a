// Copyright 2024 The QubitControl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cost

// NegEntropy implements neg_entropy_cost(ψ̃) = tr(ρ log ρ), ρ=|ψ⟩⟨ψ|.
//
// For a pure state this is mathematically 0, but log(ρ) is singular on
// ρ's zero eigenvalues. Returns 0 explicitly rather than gating behind a
// mixed-state extension that doesn't exist yet.
type NegEntropy struct {
	Isodim int
}

// NewNegEntropy returns a NegEntropy cost over kets of the given isodim.
func NewNegEntropy(isodim int) NegEntropy { return NegEntropy{Isodim: isodim} }

func (c NegEntropy) Value(psiTilde, goal []float64) float64 { return 0 }

func (c NegEntropy) Grad(psiTilde, goal []float64) []float64 {
	return make([]float64, c.Isodim)
}

func (c NegEntropy) Structure() []HessEntry { return nil }

func (c NegEntropy) HessValues(psiTilde, goal []float64) []float64 { return nil }
