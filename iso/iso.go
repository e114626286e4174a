// Copyright 2024 The QubitControl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iso implements the real embedding ("isomorphism") of complex
// state vectors and Hermitian generators used throughout the dynamics
// assembly: a complex vector of dimension n is carried as a real vector
// of dimension 2n (real parts first, then imaginary parts), and a
// Hermitian Hamiltonian H is carried as the real antisymmetric generator
//
//	G(H) = I2 ⊗ Im(H) − J2 ⊗ Re(H)
//
// such that d/dt ψ̃ = G(H)·ψ̃ reproduces Schrödinger evolution −iHψ in
// the real embedding.
package iso

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"

	"github.com/aarontrowbridge/qubitctrl/qcerr"
)

// J2 is the fixed 2x2 symplectic matrix [[0,-1],[1,0]] used to build G(H).
var J2 = mat.NewDense(2, 2, []float64{0, -1, 1, 0})

// KetToIso embeds a complex ket ψ of dimension n as a real vector of
// dimension 2n: real parts in [0:n), imaginary parts in [n:2n).
func KetToIso(psi []complex128) []float64 {
	n := len(psi)
	out := make([]float64, 2*n)
	for i, v := range psi {
		out[i] = real(v)
		out[n+i] = imag(v)
	}
	return out
}

// IsoToKet is the inverse of KetToIso. It is exact (no rounding beyond
// float64 representation) since it only recombines the stored parts.
func IsoToKet(psiTilde []float64) []complex128 {
	n := len(psiTilde) / 2
	out := make([]complex128, n)
	for i := 0; i < n; i++ {
		out[i] = complex(psiTilde[i], psiTilde[n+i])
	}
	return out
}

// Generator computes G(H) = I2 ⊗ Im(H) − J2 ⊗ Re(H) for a Hermitian H of
// dimension n×n, returning the real 2n×2n matrix. It fails with a
// DimensionError if H is not square.
func Generator(H *mat.CDense) (*mat.Dense, error) {
	r, c := H.Dims()
	if r != c {
		return nil, qcerr.Dimension("iso.Generator", "H must be square, got %dx%d", r, c)
	}
	n := r
	G := mat.NewDense(2*n, 2*n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			h := H.At(i, j)
			re, im := real(h), imag(h)
			// top-left block:     -J2[0,0]*Re + I2[0,0]*Im = Im(H)
			// top-right block:    -J2[0,1]*Re              = Re(H)
			// bottom-left block:  -J2[1,0]*Re               = -Re(H)
			// bottom-right block: I2[1,1]*Im                = Im(H)
			G.Set(i, j, im)
			G.Set(i, n+j, re)
			G.Set(n+i, j, -re)
			G.Set(n+i, n+j, im)
		}
	}
	return G, nil
}

// AddScaled computes dst += alpha*src in place, both square matrices of
// identical dimension. Used to accumulate Gₜ = G_drift + Σ aₖ·G_drives[k].
func AddScaled(dst, src *mat.Dense, alpha float64) {
	dr, dc := dst.Dims()
	sr, sc := src.Dims()
	if dr != sr || dc != sc {
		chk.Panic("iso.AddScaled: dimension mismatch %dx%d vs %dx%d", dr, dc, sr, sc)
	}
	dst.Add(dst, scaled(src, alpha))
}

func scaled(src *mat.Dense, alpha float64) *mat.Dense {
	r, c := src.Dims()
	out := mat.NewDense(r, c, nil)
	out.Scale(alpha, src)
	return out
}

// Anticommutator returns {A, B} = A*B + B*A for two square matrices of
// equal dimension.
func Anticommutator(A, B *mat.Dense) *mat.Dense {
	r, _ := A.Dims()
	ab := mat.NewDense(r, r, nil)
	ba := mat.NewDense(r, r, nil)
	ab.Mul(A, B)
	ba.Mul(B, A)
	out := mat.NewDense(r, r, nil)
	out.Add(ab, ba)
	return out
}
