// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package loads turns user-level loads into the consistent nodal force
// vector F the fem package assembles against (spec.md §4.D): point loads
// are added directly to their node's DOFs, distributed loads are
// equivalenced into Fixed-End Actions on every element they tile.
package loads

import (
	"math"

	"github.com/strucore/eulerbeam/inp"
)

// Resolve builds F, a vector of length 2*len(nodes) where DOF 2*i is
// vertical at node i and DOF 2*i+1 is rotation at node i.
func Resolve(nodes []inp.Node, elements []inp.Element, list []inp.Load) ([]float64, error) {
	f := make([]float64, 2*len(nodes))
	nodeByID := make(map[string]int, len(nodes))
	for i, n := range nodes {
		nodeByID[n.ID] = i
	}

	for _, l := range list {
		switch v := l.(type) {
		case inp.PointForce:
			j, ok := nodeIndex(nodes, v.X)
			if !ok {
				return nil, inp.NewError(inp.LoadNotAligned, "point force %q at x=%g does not align with any mesh node", v.ID, v.X)
			}
			f[2*j] += v.Magnitude

		case inp.PointMoment:
			j, ok := nodeIndex(nodes, v.X)
			if !ok {
				return nil, inp.NewError(inp.LoadNotAligned, "point moment %q at x=%g does not align with any mesh node", v.ID, v.X)
			}
			f[2*j+1] += v.Magnitude

		case inp.DistributedForce:
			tiled := false
			for _, e := range elements {
				if e.Start.X < v.StartX-inp.EpsMerge || e.End.X > v.EndX+inp.EpsMerge {
					continue
				}
				tiled = true
				applyFixedEndActions(f, nodeByID[e.Start.ID], nodeByID[e.End.ID], e.L, v.MagnitudePerLength)
			}
			if !tiled {
				return nil, inp.NewError(inp.LoadNotAligned, "distributed load %q over [%g, %g] does not align with any mesh element", v.ID, v.StartX, v.EndX)
			}
		}
	}
	return f, nil
}

// nodeIndex finds the unique node within inp.EpsMerge of x. The mesh
// builder guarantees such a node exists for every point load coordinate.
func nodeIndex(nodes []inp.Node, x float64) (int, bool) {
	for i, n := range nodes {
		if math.Abs(n.X-x) < inp.EpsMerge {
			return i, true
		}
	}
	return -1, false
}

// applyFixedEndActions adds the Fixed-End-Action contribution of a uniform
// load w over one element [start,end] of length l to F, per spec.md §4.D:
//
//	V_end = w*L/2 at each endpoint's vertical DOF
//	M     = +w*L^2/12 at the start node's rotation DOF
//	M     = -w*L^2/12 at the end node's rotation DOF
func applyFixedEndActions(f []float64, start, end int, l, w float64) {
	v := w * l / 2
	m := w * l * l / 12
	f[2*start] += v
	f[2*start+1] += m
	f[2*end] += v
	f[2*end+1] -= m
}
