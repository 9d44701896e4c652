// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kernel computes the local Euler-Bernoulli beam-bending stiffness
// matrix (spec.md §4.B). It is the one place in this module that knows the
// closed-form 4x4 element matrix; its one caller, fem, only ever calls
// Local.
package kernel

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Local returns the 4x4 stiffness matrix for DOF ordering [v1, θ1, v2, θ2]
// of a two-node Euler-Bernoulli beam element with Young's modulus e, second
// moment of area i and length l. The matrix is symmetric by construction.
//
//	           12EI/L^3    6EI/L^2   -12EI/L^3    6EI/L^2
//	k(E,I,L) =  6EI/L^2    4EI/L     -6EI/L^2     2EI/L
//	          -12EI/L^3   -6EI/L^2    12EI/L^3    -6EI/L^2
//	            6EI/L^2    2EI/L     -6EI/L^2     4EI/L
func Local(e, i, l float64) [][]float64 {
	if l <= 0 {
		chk.Panic("kernel.Local: L must be > 0, got %g (caller must validate geometry before calling)", l)
	}
	if e <= 0 {
		chk.Panic("kernel.Local: E must be > 0, got %g (caller must validate material before calling)", e)
	}
	if i <= 0 {
		chk.Panic("kernel.Local: I must be > 0, got %g (caller must validate material before calling)", i)
	}

	l2 := l * l
	l3 := l2 * l
	ei := e * i

	k := la.MatAlloc(4, 4)

	k[0][0] = 12 * ei / l3
	k[0][1] = 6 * ei / l2
	k[0][2] = -12 * ei / l3
	k[0][3] = 6 * ei / l2

	k[1][0] = k[0][1]
	k[1][1] = 4 * ei / l
	k[1][2] = -6 * ei / l2
	k[1][3] = 2 * ei / l

	k[2][0] = k[0][2]
	k[2][1] = k[1][2]
	k[2][2] = 12 * ei / l3
	k[2][3] = -6 * ei / l2

	k[3][0] = k[0][3]
	k[3][1] = k[1][3]
	k[3][2] = k[2][3]
	k[3][3] = 4 * ei / l

	return k
}
