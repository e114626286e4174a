// Copyright 2024 The QubitControl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qsys

import "gonum.org/v1/gonum/mat"

// GATES is the immutable registry of single-qubit gate matrices, the one
// piece of package-level state the design allows.
var GATES = map[string]*mat.CDense{
	"I": mat.NewCDense(2, 2, []complex128{1, 0, 0, 1}),
	"X": mat.NewCDense(2, 2, []complex128{0, 1, 1, 0}),
	"Y": mat.NewCDense(2, 2, []complex128{0, complex(0, -1), complex(0, 1), 0}),
	"Z": mat.NewCDense(2, 2, []complex128{1, 0, 0, -1}),
	"H": mat.NewCDense(2, 2, []complex128{
		1 / sqrt2, 1 / sqrt2,
		1 / sqrt2, -1 / sqrt2,
	}),
	"S": mat.NewCDense(2, 2, []complex128{1, 0, 0, complex(0, 1)}),
	"T": mat.NewCDense(2, 2, []complex128{1, 0, 0, expIPi4}),
}

const sqrt2 = 1.4142135623730951

var expIPi4 = complex(0.7071067811865476, 0.7071067811865476)

// ApplyGate returns G·ψ for a 2x2 gate matrix G and a length-2 ket ψ.
func ApplyGate(G *mat.CDense, psi []complex128) []complex128 {
	out := make([]complex128, 2)
	for i := 0; i < 2; i++ {
		var acc complex128
		for j := 0; j < 2; j++ {
			acc += G.At(i, j) * psi[j]
		}
		out[i] = acc
	}
	return out
}
