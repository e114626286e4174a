// Copyright 2024 The QubitControl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qsys

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// numberOp returns the truncated number operator diag(0,1,...,levels-1).
func numberOp(levels int) *mat.CDense {
	out := mat.NewCDense(levels, levels, nil)
	for i := 0; i < levels; i++ {
		out.Set(i, i, complex(float64(i), 0))
	}
	return out
}

// annihilation returns the truncated bosonic annihilation operator: a|n⟩ = sqrt(n)|n-1⟩.
func annihilation(levels int) *mat.CDense {
	out := mat.NewCDense(levels, levels, nil)
	for n := 1; n < levels; n++ {
		out.Set(n-1, n, complex(math.Sqrt(float64(n)), 0))
	}
	return out
}

// creation returns the truncated bosonic creation operator (conjugate
// transpose of annihilation; real-valued here so a plain transpose suffices).
func creation(levels int) *mat.CDense {
	return transposeC(annihilation(levels))
}

func transposeC(m *mat.CDense) *mat.CDense {
	r, c := m.Dims()
	out := mat.NewCDense(c, r, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(j, i, m.At(i, j))
		}
	}
	return out
}

func addC(a, b *mat.CDense) *mat.CDense {
	r, c := a.Dims()
	out := mat.NewCDense(r, c, nil)
	out.Add(a, b)
	return out
}

func scaleC(alpha complex128, a *mat.CDense) *mat.CDense {
	r, c := a.Dims()
	out := mat.NewCDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, alpha*a.At(i, j))
		}
	}
	return out
}

// TransmonHamiltonians returns the drift and single-drive Hamiltonians of
// a truncated anharmonic oscillator: H_drift = ω·n − (α/2)·n·(n−1),
// H_drive = (a + a†)/2.
func TransmonHamiltonians(omega, alpha float64, levels int) (hDrift *mat.CDense, hDrive *mat.CDense) {
	n := numberOp(levels)
	nn1 := mat.NewCDense(levels, levels, nil)
	for i := 0; i < levels; i++ {
		v := float64(i) * float64(i-1)
		nn1.Set(i, i, complex(v, 0))
	}
	hDrift = addC(scaleC(complex(omega, 0), n), scaleC(complex(-alpha/2, 0), nn1))
	a := annihilation(levels)
	ad := creation(levels)
	hDrive = scaleC(0.5, addC(a, ad))
	return hDrift, hDrive
}

// TransmonSystem builds a System for a single truncated transmon qubit
// driven by one in-phase quadrature, from physical parameters ω
// (qubit frequency), α (anharmonicity) and the truncation `levels`.
func TransmonSystem(
	omega, alpha float64,
	levels int,
	controlBound float64,
	psiInits, psiGoals [][]complex128,
	opts ...Option,
) (*System, error) {
	hDrift, hDrive := TransmonHamiltonians(omega, alpha, levels)
	return NewSystem(hDrift, []*mat.CDense{hDrive}, []float64{controlBound}, psiInits, psiGoals, opts...)
}

// TwoQubitSystem builds a System for two coupled truncated transmons:
// drift is the sum of the two local drifts plus a coupling term
// g·(a1+a1†)⊗(a2+a2†), with one local drive per qubit.
func TwoQubitSystem(
	omega1, alpha1 float64,
	omega2, alpha2 float64,
	levels int,
	g float64,
	controlBounds []float64,
	psiInits, psiGoals [][]complex128,
	opts ...Option,
) (*System, error) {
	h1Drift, h1Drive := TransmonHamiltonians(omega1, alpha1, levels)
	h2Drift, h2Drive := TransmonHamiltonians(omega2, alpha2, levels)

	id := numberOp(levels)
	for i := 0; i < levels; i++ {
		id.Set(i, i, 1)
	}

	kron := func(a, b *mat.CDense) *mat.CDense {
		ra, ca := a.Dims()
		rb, cb := b.Dims()
		out := mat.NewCDense(ra*rb, ca*cb, nil)
		out.Kronecker(a, b)
		return out
	}

	driftA := kron(h1Drift, id)
	driftB := kron(id, h2Drift)

	a1 := annihilation(levels)
	ad1 := creation(levels)
	a2 := annihilation(levels)
	ad2 := creation(levels)
	coupling := kron(addC(a1, ad1), addC(a2, ad2))

	hDrift := addC(addC(driftA, driftB), scaleC(complex(g, 0), coupling))
	hDrive1 := kron(h1Drive, id)
	hDrive2 := kron(id, h2Drive)

	return NewSystem(hDrift, []*mat.CDense{hDrive1, hDrive2}, controlBounds, psiInits, psiGoals, opts...)
}
