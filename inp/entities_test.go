// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_newelement01(tst *testing.T) {

	chk.PrintTitle("newelement01: rejects degenerate and invalid elements")

	n0 := Node{ID: "n0", X: 0}
	n1 := Node{ID: "n1", X: 0}
	if _, err := NewElement("e0", n0, n1, 1, 1); !Is(err, InvalidGeometry) {
		tst.Errorf("expected InvalidGeometry for zero-length element, got %v", err)
	}

	n1 = Node{ID: "n1", X: 2}
	if _, err := NewElement("e0", n0, n1, 0, 1); !Is(err, InvalidMaterial) {
		tst.Errorf("expected InvalidMaterial for E<=0, got %v", err)
	}
	if _, err := NewElement("e0", n0, n1, 1, 0); !Is(err, InvalidMaterial) {
		tst.Errorf("expected InvalidMaterial for I<=0, got %v", err)
	}

	el, err := NewElement("e0", n0, n1, 200e9, 8.333e-6)
	if err != nil {
		tst.Errorf("unexpected error: %v", err)
		return
	}
	chk.Float64(tst, "L", 1e-15, el.L, 2)
}

func Test_restraints01(tst *testing.T) {

	chk.PrintTitle("restraints01: support type drives restrained DOFs")

	free := Node{Support: Free}
	roller := Node{Support: Roller}
	pin := Node{Support: Pin}
	fixed := Node{Support: Fixed}

	if free.RestrainedY() || free.RestrainedRotation() {
		tst.Errorf("a free node must restrain nothing")
	}
	if !roller.RestrainedY() || roller.RestrainedRotation() {
		tst.Errorf("a roller must restrain Y only")
	}
	if !pin.RestrainedY() || pin.RestrainedRotation() {
		tst.Errorf("a pin must restrain Y only")
	}
	if !fixed.RestrainedY() || !fixed.RestrainedRotation() {
		tst.Errorf("a fixed support must restrain both DOFs")
	}
}
