// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/strucore/eulerbeam/inp"
)

func Test_build01(tst *testing.T) {

	chk.PrintTitle("build01: feature points become nodes, in order")

	input := inp.BeamInput{
		Length:   10,
		E:        200e9,
		I:        8.333e-6,
		Supports: []inp.SupportSpec{{X: 0, Type: inp.Pin}, {X: 10, Type: inp.Roller}},
		Loads: []inp.Load{
			inp.PointForce{ID: "p1", X: 5, Magnitude: -1000},
			inp.DistributedForce{ID: "w1", StartX: 2, EndX: 8, MagnitudePerLength: -100},
		},
	}

	nodes, elements, err := Build(input)
	if err != nil {
		tst.Errorf("unexpected error: %v", err)
		return
	}

	wantX := []float64{0, 2, 5, 8, 10}
	if len(nodes) != len(wantX) {
		tst.Errorf("expected %d nodes, got %d", len(wantX), len(nodes))
		return
	}
	for i, x := range wantX {
		chk.Float64(tst, "node x", 1e-9, nodes[i].X, x)
	}
	chk.IntAssert(int(nodes[0].Support), int(inp.Pin))
	chk.IntAssert(int(nodes[len(nodes)-1].Support), int(inp.Roller))
	chk.IntAssert(len(elements), len(nodes)-1)
}

func Test_build02(tst *testing.T) {

	chk.PrintTitle("build02: coincident coordinates merge within EpsMerge")

	input := inp.BeamInput{
		Length:   5,
		E:        1,
		I:        1,
		Supports: []inp.SupportSpec{{X: 0, Type: inp.Fixed}},
		Loads: []inp.Load{
			inp.PointForce{ID: "p1", X: 2.5},
			inp.PointMoment{ID: "m1", X: 2.5 + inp.EpsMerge/2},
		},
	}

	nodes, _, err := Build(input)
	if err != nil {
		tst.Errorf("unexpected error: %v", err)
		return
	}
	chk.IntAssert(len(nodes), 3) // x=0, x≈2.5, x=5
}

func Test_build03(tst *testing.T) {

	chk.PrintTitle("build03: conflicting supports at the same coordinate")

	input := inp.BeamInput{
		Length: 5,
		E:      1,
		I:      1,
		Supports: []inp.SupportSpec{
			{X: 2, Type: inp.Pin},
			{X: 2, Type: inp.Fixed},
		},
	}
	if _, _, err := Build(input); !inp.Is(err, inp.ConflictingSupports) {
		tst.Errorf("expected ConflictingSupports, got %v", err)
	}
}
