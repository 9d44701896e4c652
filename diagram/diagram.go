// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diagram reconstructs shear force, bending moment and deflected
// shape along the beam axis from the solver's output, by the method of
// sections for V and M and cubic Hermite interpolation for w (spec.md
// §4.F). Sign and orientation conventions here are fixed by the
// specification and pinned by tests; they are not a style choice.
package diagram

import (
	"math"

	"github.com/cpmech/gosl/utl"

	"github.com/strucore/eulerbeam/inp"
)

// snapTol zeroes out cosmetic numerical noise in the final samples.
const snapTol = 1e-4

// rightEdgeTol is the tolerance used by the right-edge exclusion rule.
const rightEdgeTol = 1e-4

// hermiteTol is the containment tolerance when locating the element
// interval a deflection sample falls into.
const hermiteTol = 1e-3

// pointContribution is one point force or point moment contribution to the
// method-of-sections sums, already filtered by category.
type pointContribution struct {
	x      float64
	force  float64 // 0 if this is a pure moment contribution
	moment float64 // 0 if this is a pure force contribution
}

// Compute samples V(x), M(x) and w(x) at R+1 uniformly spaced stations
// along [0, length], per spec.md §4.F.
func Compute(length float64, nodes []inp.Node, list []inp.Load, result inp.AnalysisResult, resolution int, category inp.Category) (inp.Diagram, error) {
	if length <= 0 {
		return inp.Diagram{}, inp.NewError(inp.InvalidGeometry, "length must be > 0, got %g", length)
	}
	if resolution < 1 {
		return inp.Diagram{}, inp.NewError(inp.InvalidGeometry, "resolution must be >= 1, got %d", resolution)
	}

	points, distributed := buildContributions(nodes, list, result, category)

	xs := utl.LinSpace(0, length, resolution+1)
	d := inp.Diagram{X: xs, V: make([]float64, len(xs)), M: make([]float64, len(xs)), W: make([]float64, len(xs))}

	for i, x := range xs {
		v, m := sectionVM(x, length, points, distributed)
		d.V[i] = snap(v)
		d.M[i] = snap(m)
		d.W[i] = deflectionAt(x, nodes, result)
	}
	return d, nil
}

// buildContributions assembles the flat point-contribution list (filtered
// point loads plus restrained-node reactions, reaction moment negated) and
// the filtered distributed-load list, per spec.md §4.F step 2.
func buildContributions(nodes []inp.Node, list []inp.Load, result inp.AnalysisResult, category inp.Category) ([]pointContribution, []inp.DistributedForce) {
	var points []pointContribution
	var distributed []inp.DistributedForce

	for _, l := range list {
		switch v := l.(type) {
		case inp.PointForce:
			if v.Cat == category {
				points = append(points, pointContribution{x: v.X, force: v.Magnitude})
			}
		case inp.PointMoment:
			if v.Cat == category {
				points = append(points, pointContribution{x: v.X, moment: v.Magnitude})
			}
		case inp.DistributedForce:
			if v.Cat == category {
				distributed = append(distributed, v)
			}
		}
	}

	for _, n := range nodes {
		r, ok := result.Reactions[n.ID]
		if !ok {
			continue
		}
		if n.RestrainedY() {
			points = append(points, pointContribution{x: n.X, force: r.Fy})
		}
		if n.RestrainedRotation() {
			// the reaction's moment is negated to convert the external
			// reaction convention into the internal diagram convention
			// (spec.md §4.F step 2, §9).
			points = append(points, pointContribution{x: n.X, moment: -r.M})
		}
	}

	return points, distributed
}

// sectionVM evaluates V(x) and M(x) by the method of sections.
func sectionVM(x, length float64, points []pointContribution, distributed []inp.DistributedForce) (v, m float64) {
	for _, p := range points {
		if p.x >= length-rightEdgeTol {
			continue // right-edge exclusion rule
		}
		if p.x > x+rightEdgeTol {
			continue // not yet reached by the section
		}
		v += p.force
		m += p.force*(x-p.x) + p.moment
	}

	for _, d := range distributed {
		if x <= d.StartX {
			continue
		}
		end := math.Min(x, d.EndX)
		width := end - d.StartX
		centroid := d.StartX + width/2
		v += d.MagnitudePerLength * width
		m += d.MagnitudePerLength * width * (x - centroid)
	}
	return v, m
}

// deflectionAt reconstructs w(x) with cubic Hermite shape functions over
// the element interval containing x (spec.md §4.F "Deflection w(x)").
func deflectionAt(x float64, nodes []inp.Node, result inp.AnalysisResult) float64 {
	for j := 0; j < len(nodes)-1; j++ {
		a, b := nodes[j], nodes[j+1]
		if x < a.X-hermiteTol || x > b.X+hermiteTol {
			continue
		}
		l := b.X - a.X
		xi := (x - a.X) / l
		xi2, xi3 := xi*xi, xi*xi*xi

		n1 := 1 - 3*xi2 + 2*xi3
		n2 := l * (xi - 2*xi2 + xi3)
		n3 := 3*xi2 - 2*xi3
		n4 := l * (xi3 - xi2)

		da, db := result.Displacements[a.ID], result.Displacements[b.ID]
		return n1*da.Y + n2*da.Rotation + n3*db.Y + n4*db.Rotation
	}
	return 0
}

// snap zeroes out magnitudes below snapTol to avoid cosmetic noise in
// diagram samples (spec.md §4.F step 5).
func snap(v float64) float64 {
	if math.Abs(v) < snapTol {
		return 0
	}
	return v
}
