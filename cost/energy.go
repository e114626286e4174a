// Copyright 2024 The QubitControl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cost

import "gonum.org/v1/gonum/mat"

// Energy implements energy_cost(ψ̃, H) = Re⟨ψ|H|ψ⟩.
//
// Writing ψ̃=(x,y), H = Hr + i·Hi (Hr=Re(H) symmetric, Hi=Im(H)
// antisymmetric since H is Hermitian),
//
//	Re⟨ψ|H|ψ⟩ = xᵀHr x + yᵀHr y − 2xᵀHi y = ψ̃ᵀ M ψ̃,  M = [[Hr,-Hi],[Hi,Hr]]
//
// a real quadratic form, so the gradient is 2Mψ̃ and the Hessian is the
// constant matrix 2M.
type Energy struct {
	M *mat.Dense // 2n x 2n, symmetric
}

// NewEnergy builds an Energy cost bound to a fixed Hermitian Hamiltonian H.
func NewEnergy(H *mat.CDense) Energy {
	n, _ := H.Dims()
	M := mat.NewDense(2*n, 2*n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			h := H.At(i, j)
			re, im := real(h), imag(h)
			M.Set(i, j, re)
			M.Set(n+i, n+j, re)
			M.Set(i, n+j, -im)
			M.Set(n+i, j, im)
		}
	}
	return Energy{M: M}
}

func (c Energy) Value(psiTilde, goal []float64) float64 {
	Mpsi := make([]float64, len(psiTilde))
	r, _ := c.M.Dims()
	for i := 0; i < r; i++ {
		var s float64
		for j := 0; j < r; j++ {
			s += c.M.At(i, j) * psiTilde[j]
		}
		Mpsi[i] = s
	}
	return dot(psiTilde, Mpsi)
}

func (c Energy) Grad(psiTilde, goal []float64) []float64 {
	r, _ := c.M.Dims()
	out := make([]float64, r)
	for i := 0; i < r; i++ {
		var s float64
		for j := 0; j < r; j++ {
			s += c.M.At(i, j) * psiTilde[j]
		}
		out[i] = 2 * s
	}
	return out
}

func (c Energy) Structure() []HessEntry {
	r, _ := c.M.Dims()
	return upperTriangle(r)
}

func (c Energy) HessValues(psiTilde, goal []float64) []float64 {
	structure := c.Structure()
	out := make([]float64, len(structure))
	for idx, e := range structure {
		out[idx] = 2 * c.M.At(e.Row, e.Col)
	}
	return out
}
