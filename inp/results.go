// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

// Displacement holds the two DOF values at one node.
type Displacement struct {
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"`
}

// Reaction holds the two restrained-DOF force/moment values at one node.
// Reactions are only reported for nodes that carry at least one restraint.
type Reaction struct {
	Fy float64 `json:"fy"`
	M  float64 `json:"m"`
}

// AnalysisResult is the single value-out contract of the library (spec.md
// §6). By invariant, a free DOF's reaction component is 0 in the output.
type AnalysisResult struct {
	Displacements map[string]Displacement `json:"displacements"`
	Reactions     map[string]Reaction     `json:"reactions"`
}

// Diagram is three equal-length sequences of samples taken at uniform
// spacing along the beam axis (spec.md §3).
type Diagram struct {
	X []float64 `json:"x"`
	V []float64 `json:"v"`
	M []float64 `json:"m"`
	W []float64 `json:"w"`
}
