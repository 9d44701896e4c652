// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh turns a sparse set of feature points (span ends, supports,
// load coordinates) into the ordered node and element lists the rest of the
// pipeline assembles against (spec.md §4.C).
package mesh

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/io"

	"github.com/strucore/eulerbeam/inp"
)

// Build runs the feature-point meshing algorithm: collect candidate
// coordinates, clip to [0, Length], sort, merge within inp.EpsMerge, then
// emit one node per surviving coordinate and one element between each pair
// of consecutive nodes.
//
// Exact placement of point loads/moments at nodes is required for
// consistent forcing; exact placement of distributed-load endpoints at
// nodes lets Fixed-End Actions be applied per-element without further
// subdivision — this is why every feature coordinate, not just supports,
// drives node placement.
func Build(input inp.BeamInput) ([]inp.Node, []inp.Element, error) {
	if err := input.Validate(); err != nil {
		return nil, nil, err
	}

	xs := mergedCoords(input)

	nodes, err := assignSupports(xs, input.Supports)
	if err != nil {
		return nil, nil, err
	}

	elements := make([]inp.Element, 0, len(nodes)-1)
	for i := 0; i < len(nodes)-1; i++ {
		el, err := inp.NewElement(io.Sf("e%d", i), nodes[i], nodes[i+1], input.E, input.I)
		if err != nil {
			return nil, nil, err
		}
		elements = append(elements, el)
	}
	return nodes, elements, nil
}

// mergedCoords collects every feature coordinate, clips it to [0, Length],
// sorts ascending and merges coordinates within inp.EpsMerge of the earlier
// one (spec.md §4.C steps 1-2).
func mergedCoords(input inp.BeamInput) []float64 {
	raw := []float64{0, input.Length}
	for _, s := range input.Supports {
		raw = append(raw, s.X)
	}
	for _, l := range input.Loads {
		switch v := l.(type) {
		case inp.PointForce:
			raw = append(raw, v.X)
		case inp.PointMoment:
			raw = append(raw, v.X)
		case inp.DistributedForce:
			raw = append(raw, v.StartX, v.EndX)
		}
	}

	clipped := make([]float64, 0, len(raw))
	for _, x := range raw {
		switch {
		case x < -inp.EpsMerge || x > input.Length+inp.EpsMerge:
			continue // outside the beam, ignored
		case x < 0:
			x = 0
		case x > input.Length:
			x = input.Length
		}
		clipped = append(clipped, x)
	}
	sort.Float64s(clipped)

	merged := make([]float64, 0, len(clipped))
	for _, x := range clipped {
		if len(merged) == 0 || x-merged[len(merged)-1] > inp.EpsMerge {
			merged = append(merged, x)
		}
	}
	return merged
}

// assignSupports builds one Node per coordinate in xs, giving it the
// support type of any SupportSpec within inp.EpsMerge, or Free otherwise.
// Two distinct supports colliding on the same node is a ConflictingSupports
// error.
func assignSupports(xs []float64, supports []inp.SupportSpec) ([]inp.Node, error) {
	nodes := make([]inp.Node, len(xs))
	for i, x := range xs {
		support := inp.Free
		assigned := false
		for _, s := range supports {
			if math.Abs(s.X-x) >= inp.EpsMerge {
				continue
			}
			if assigned && s.Type != support {
				return nil, inp.NewError(inp.ConflictingSupports, "two distinct supports collide near x=%g", x)
			}
			support, assigned = s.Type, true
		}
		nodes[i] = inp.Node{ID: io.Sf("n%d", i), X: x, Support: support}
	}
	return nodes, nil
}
