// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fem assembles the global stiffness matrix, partitions it by
// boundary condition, solves the constrained system and recovers reactions
// from the equilibrium residual (spec.md §4.E). This is the teacher's
// fem.Domain assembly/solve loop (fem/domain.go in the original gofem),
// generalized from arbitrary continuum elements down to the single beam
// element kind this module supports, and re-pointed at a dense gonum solve
// since the teacher's sparse UMFPACK/MUMPS backends are unnecessary for a
// beam model with bandwidth 3.
package fem

import (
	"math"

	"github.com/cpmech/gosl/la"
	"gonum.org/v1/gonum/mat"

	"github.com/strucore/eulerbeam/inp"
	"github.com/strucore/eulerbeam/kernel"
	"github.com/strucore/eulerbeam/loads"
)

// maxConditionNumber bounds the condition number of K_ff (as estimated by
// gonum's LU.Cond) beyond
// which the reduced system is treated as a mechanism (spec.md §4.E step 6,
// §9 "determinant-based singularity detection is fragile").
const maxConditionNumber = 1e12

// Solve runs the full FEM pipeline: assembly, forcing, BC partition,
// constrained linear solve and reaction recovery.
func Solve(nodes []inp.Node, elements []inp.Element, list []inp.Load) (inp.AnalysisResult, error) {
	ndof := 2 * len(nodes)

	k := assemble(nodes, elements)

	f, err := loads.Resolve(nodes, elements, list)
	if err != nil {
		return inp.AnalysisResult{}, err
	}

	free, fixed := partition(nodes)

	u := make([]float64, ndof)
	if len(free) > 0 {
		uf, err := solveFree(k, f, free)
		if err != nil {
			return inp.AnalysisResult{}, err
		}
		for i, dof := range free {
			u[dof] = uf[i]
		}
	}

	ku := make([]float64, ndof)
	la.MatVecMul(ku, 1, k, u)
	residual := make([]float64, ndof)
	for i := range residual {
		residual[i] = ku[i] - f[i]
	}

	return buildResult(nodes, u, residual, fixed), nil
}

// assemble builds the global, dense stiffness matrix by adding each
// element's local 4x4 matrix into its four DOF indices (spec.md §4.E step
// 2). Sparse storage is acceptable per spec.md §9 but unnecessary at the
// DOF counts this module targets.
func assemble(nodes []inp.Node, elements []inp.Element) [][]float64 {
	ndof := 2 * len(nodes)
	k := la.MatAlloc(ndof, ndof)

	indexByID := make(map[string]int, len(nodes))
	for i, n := range nodes {
		indexByID[n.ID] = i
	}

	for _, e := range elements {
		kl := kernel.Local(e.E, e.I, e.L)
		si, ei := indexByID[e.Start.ID], indexByID[e.End.ID]
		dof := [4]int{2 * si, 2*si + 1, 2 * ei, 2*ei + 1}
		for a := 0; a < 4; a++ {
			for b := 0; b < 4; b++ {
				k[dof[a]][dof[b]] += kl[a][b]
			}
		}
	}
	return k
}

// partition splits every DOF into free and fixed lists in node order
// (spec.md §4.E step 4): a vertical DOF is restrained iff RestrainedY, a
// rotational DOF iff RestrainedRotation.
func partition(nodes []inp.Node) (free, fixed []int) {
	for i, n := range nodes {
		if n.RestrainedY() {
			fixed = append(fixed, 2*i)
		} else {
			free = append(free, 2*i)
		}
		if n.RestrainedRotation() {
			fixed = append(fixed, 2*i+1)
		} else {
			free = append(free, 2*i+1)
		}
	}
	return free, fixed
}

// solveFree solves K_ff * u_f = F_f for the free DOFs, detecting a
// mechanism via the condition number of K_ff estimated from its LU
// factorization rather
// than a raw determinant (spec.md §9: "determinant-based singularity
// detection is fragile... rely on LU factorization").
func solveFree(k [][]float64, f []float64, free []int) ([]float64, error) {
	n := len(free)
	data := make([]float64, n*n)
	for a, dofA := range free {
		for b, dofB := range free {
			data[a*n+b] = k[dofA][dofB]
		}
	}
	a := mat.NewDense(n, n, data)

	var lu mat.LU
	lu.Factorize(a)
	if cond := lu.Cond(); math.IsNaN(cond) || math.IsInf(cond, 1) || cond > maxConditionNumber {
		return nil, inp.NewError(inp.UnstableStructure, "reduced stiffness matrix is singular or ill-conditioned (cond=%.3e): structure is a mechanism", cond)
	}

	bData := make([]float64, n)
	for a, dof := range free {
		bData[a] = f[dof]
	}
	b := mat.NewDense(n, 1, bData)

	var x mat.Dense
	if err := lu.SolveTo(&x, false, b); err != nil {
		return nil, inp.NewError(inp.UnstableStructure, "linear solve failed: %v", err)
	}

	uf := make([]float64, n)
	for i := 0; i < n; i++ {
		uf[i] = x.At(i, 0)
		if math.IsNaN(uf[i]) || math.IsInf(uf[i], 0) {
			return nil, inp.NewError(inp.UnstableStructure, "non-finite displacement at free dof index %d", free[i])
		}
	}
	return uf, nil
}

// buildResult exports displacements for every node and reactions only for
// restrained nodes, zeroing the reaction component of any DOF that was
// free (spec.md §3's invariant).
func buildResult(nodes []inp.Node, u, residual []float64, fixed []int) inp.AnalysisResult {
	isFixed := make(map[int]bool, len(fixed))
	for _, dof := range fixed {
		isFixed[dof] = true
	}

	displacements := make(map[string]inp.Displacement, len(nodes))
	reactions := make(map[string]inp.Reaction)
	for i, n := range nodes {
		yDof, rDof := 2*i, 2*i+1
		displacements[n.ID] = inp.Displacement{Y: u[yDof], Rotation: u[rDof]}

		if !n.RestrainedY() && !n.RestrainedRotation() {
			continue
		}
		var r inp.Reaction
		if n.RestrainedY() {
			r.Fy = residual[yDof]
		}
		if n.RestrainedRotation() {
			r.M = residual[rDof]
		}
		reactions[n.ID] = r
	}
	return inp.AnalysisResult{Displacements: displacements, Reactions: reactions}
}
