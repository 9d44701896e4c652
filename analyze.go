// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eulerbeam is the computational core of a 2D Euler-Bernoulli beam
// analyzer: given a beam length, a set of idealized supports and a set of
// applied loads, Analyze returns nodal displacements/rotations and support
// reactions, and Diagrams reconstructs internal shear, moment and
// deflection samples along the beam axis (spec.md §1-§2).
//
// Analyze is a pure, synchronous function of its input: it performs no
// I/O, no logging and no unit conversion, holds no process-wide state, and
// two concurrent calls with disjoint inputs never share memory (spec.md
// §5). It wires mesh.Build, loads.Resolve and fem.Solve behind one entry
// point (spec.md §4.G); it does no filtering of its own.
package eulerbeam

import (
	"github.com/strucore/eulerbeam/diagram"
	"github.com/strucore/eulerbeam/fem"
	"github.com/strucore/eulerbeam/inp"
	"github.com/strucore/eulerbeam/mesh"
)

// Re-exported so callers only need to import this one package for the
// common input/output vocabulary.
type (
	BeamInput        = inp.BeamInput
	SupportSpec      = inp.SupportSpec
	SupportType      = inp.SupportType
	Category         = inp.Category
	Load             = inp.Load
	PointForce       = inp.PointForce
	PointMoment      = inp.PointMoment
	DistributedForce = inp.DistributedForce
	Node             = inp.Node
	Element          = inp.Element
	AnalysisResult   = inp.AnalysisResult
	Displacement     = inp.Displacement
	Reaction         = inp.Reaction
	Diagram          = inp.Diagram
	ErrorKind        = inp.Kind
)

// Support types.
const (
	Free   = inp.Free
	Roller = inp.Roller
	Pin    = inp.Pin
	Fixed  = inp.Fixed
)

// Load categories.
const (
	Dead    = inp.Dead
	Live    = inp.Live
	Wind    = inp.Wind
	Snow    = inp.Snow
	Seismic = inp.Seismic
)

// Error kinds.
const (
	InvalidGeometry     = inp.InvalidGeometry
	InvalidMaterial     = inp.InvalidMaterial
	OutOfDomain         = inp.OutOfDomain
	ConflictingSupports = inp.ConflictingSupports
	UnstableStructure   = inp.UnstableStructure
	LoadNotAligned      = inp.LoadNotAligned
)

// IsErrorKind reports whether err is this library's error type with the
// given Kind.
func IsErrorKind(err error, kind ErrorKind) bool { return inp.Is(err, kind) }

// Mesh exposes the feature-point mesh builder (spec.md §4.C) directly, so
// a caller that needs the node list for Diagrams does not have to
// reimplement mesh generation itself.
func Mesh(input BeamInput) ([]Node, []Element, error) {
	return mesh.Build(input)
}

// Analyze runs the full pipeline: mesh generation (spec.md §4.C), load
// resolution and constrained FEM solve (spec.md §4.D-§4.E).
func Analyze(input BeamInput) (AnalysisResult, error) {
	nodes, elements, err := mesh.Build(input)
	if err != nil {
		return AnalysisResult{}, err
	}

	return fem.Solve(nodes, elements, input.Loads)
}

// Diagrams reconstructs V(x), M(x) and w(x) along the beam axis (spec.md
// §4.F-§4.G). It takes the node list produced by Mesh/Analyze plus the
// displacement/reaction maps from Analyze's result, performing no
// back-reference to solver internals — it is a pure function of these
// values.
func Diagrams(length float64, nodes []Node, list []Load, displacements map[string]Displacement, reactions map[string]Reaction, resolution int, category Category) (Diagram, error) {
	result := AnalysisResult{Displacements: displacements, Reactions: reactions}
	return diagram.Compute(length, nodes, list, result, resolution, category)
}
