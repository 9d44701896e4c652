// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_local01(tst *testing.T) {

	chk.PrintTitle("local01: symmetry and known entries")

	e, i, l := 200e9, 8.333e-6, 2.0
	k := Local(e, i, l)

	for a := 0; a < 4; a++ {
		for b := 0; b < 4; b++ {
			chk.Float64(tst, "k[a][b] == k[b][a]", 1e-15, k[a][b], k[b][a])
		}
	}

	ei := e * i
	chk.Float64(tst, "k00", 1e-6, k[0][0], 12*ei/(l*l*l))
	chk.Float64(tst, "k11", 1e-6, k[1][1], 4*ei/l)
	chk.Float64(tst, "k01", 1e-6, k[0][1], 6*ei/(l*l))
	chk.Float64(tst, "k13", 1e-6, k[1][3], 2*ei/l)
}

func Test_local02(tst *testing.T) {

	chk.PrintTitle("local02: panics on a non-positive length")

	defer func() {
		if r := recover(); r == nil {
			tst.Errorf("Local did not panic with l<=0")
		}
	}()
	Local(1, 1, 0)
}
