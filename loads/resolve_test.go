// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loads

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/strucore/eulerbeam/inp"
)

func simpleMesh() ([]inp.Node, []inp.Element) {
	n0 := inp.Node{ID: "n0", X: 0, Support: inp.Pin}
	n1 := inp.Node{ID: "n1", X: 5, Support: inp.Free}
	n2 := inp.Node{ID: "n2", X: 10, Support: inp.Roller}
	e0, _ := inp.NewElement("e0", n0, n1, 200e9, 8.333e-6)
	e1, _ := inp.NewElement("e1", n1, n2, 200e9, 8.333e-6)
	return []inp.Node{n0, n1, n2}, []inp.Element{e0, e1}
}

func Test_resolve01(tst *testing.T) {

	chk.PrintTitle("resolve01: point force and moment land on their DOFs")

	nodes, elements := simpleMesh()
	list := []inp.Load{
		inp.PointForce{ID: "p1", X: 5, Magnitude: -1000},
		inp.PointMoment{ID: "m1", X: 0, Magnitude: 200},
	}

	f, err := Resolve(nodes, elements, list)
	if err != nil {
		tst.Errorf("unexpected error: %v", err)
		return
	}
	chk.Float64(tst, "f[2]  (n1 Fy)", 1e-12, f[2], -1000)
	chk.Float64(tst, "f[1]  (n0 M)", 1e-12, f[1], 200)
}

func Test_resolve02(tst *testing.T) {

	chk.PrintTitle("resolve02: distributed load tiles Fixed-End Actions across elements")

	nodes, elements := simpleMesh()
	list := []inp.Load{
		inp.DistributedForce{ID: "w1", StartX: 0, EndX: 10, MagnitudePerLength: -100},
	}

	f, err := Resolve(nodes, elements, list)
	if err != nil {
		tst.Errorf("unexpected error: %v", err)
		return
	}

	// each element carries w*L/2 = -100*5/2 = -250 at each of its endpoints
	chk.Float64(tst, "f[0] (n0 Fy)", 1e-9, f[0], -250)
	chk.Float64(tst, "f[2] (n1 Fy)", 1e-9, f[2], -500) // shared by both elements
	chk.Float64(tst, "f[4] (n2 Fy)", 1e-9, f[4], -250)
}

func Test_resolve03(tst *testing.T) {

	chk.PrintTitle("resolve03: misaligned loads are rejected")

	nodes, elements := simpleMesh()

	list := []inp.Load{inp.PointForce{ID: "p1", X: 3, Magnitude: -1}}
	if _, err := Resolve(nodes, elements, list); !inp.Is(err, inp.LoadNotAligned) {
		tst.Errorf("expected LoadNotAligned for off-mesh point force, got %v", err)
	}

	list = []inp.Load{inp.DistributedForce{ID: "w1", StartX: 1, EndX: 9, MagnitudePerLength: -1}}
	if _, err := Resolve(nodes, elements, list); !inp.Is(err, inp.LoadNotAligned) {
		tst.Errorf("expected LoadNotAligned for a span not tiled by mesh elements, got %v", err)
	}
}
