// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command beamctl is a terminal front-end over the eulerbeam library: it
// loads a BeamInput from JSON, runs Analyze and optionally Diagrams, and
// prints the results. The interactive SVG editor and diagram rendering are
// explicitly out of scope for the core library (spec.md §1); beamctl is
// the ambient CLI surface that replaces them for scripting and debugging,
// in the spirit of the teacher's own main.go and gorcb's cmd package.
package main

import "github.com/strucore/eulerbeam/internal/cli"

func main() {
	cli.Execute()
}
