// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import "encoding/json"

// SupportSpec places one idealized support at X. Several SupportSpecs may
// share the same node after mesh generation only if they agree on Type;
// disagreement is a ConflictingSupports error (spec.md §4.C step 3).
type SupportSpec struct {
	X    float64     `json:"x"`
	Type SupportType `json:"type"`
}

// BeamInput is the single value-in contract of the library (spec.md §6).
// A consistent unit system is the caller's responsibility; BeamInput never
// converts units.
type BeamInput struct {
	Length   float64       `json:"length"`
	E        float64       `json:"e"`
	I        float64       `json:"i"`
	Supports []SupportSpec `json:"supports"`
	Loads    []Load        `json:"loads"`
}

// beamInputWire is BeamInput's JSON shape; Loads is polymorphic and needs
// loadList's custom (Un)MarshalJSON to round-trip.
type beamInputWire struct {
	Length   float64       `json:"length"`
	E        float64       `json:"e"`
	I        float64       `json:"i"`
	Supports []SupportSpec `json:"supports"`
	Loads    loadList      `json:"loads"`
}

// MarshalJSON implements json.Marshaler.
func (b BeamInput) MarshalJSON() ([]byte, error) {
	return json.Marshal(beamInputWire{Length: b.Length, E: b.E, I: b.I, Supports: b.Supports, Loads: loadList(b.Loads)})
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *BeamInput) UnmarshalJSON(data []byte) error {
	var w beamInputWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	b.Length, b.E, b.I, b.Supports, b.Loads = w.Length, w.E, w.I, w.Supports, []Load(w.Loads)
	return nil
}

// Validate runs the pre-flight checks spec.md §7 requires before mesh
// generation starts: InvalidGeometry for a non-positive length,
// InvalidMaterial for non-positive E or I, and OutOfDomain for any support
// or point-load coordinate outside [0, Length]. Distributed-load bounds are
// checked too, since an endpoint outside [0, Length] can never land on a
// node. This mirrors the teacher's inp.Simulation validating its whole data
// graph in fem.NewDomain before assembly begins, rather than failing deep
// inside the pipeline.
func (b BeamInput) Validate() error {
	if b.Length <= 0 {
		return NewError(InvalidGeometry, "length must be > 0, got %g", b.Length)
	}
	if b.E <= 0 {
		return NewError(InvalidMaterial, "E must be > 0, got %g", b.E)
	}
	if b.I <= 0 {
		return NewError(InvalidMaterial, "I must be > 0, got %g", b.I)
	}
	inDomain := func(x float64) bool { return x >= -EpsMerge && x <= b.Length+EpsMerge }
	for _, s := range b.Supports {
		if !inDomain(s.X) {
			return NewError(OutOfDomain, "support at x=%g is outside [0, %g]", s.X, b.Length)
		}
	}
	for _, l := range b.Loads {
		switch v := l.(type) {
		case PointForce:
			if !inDomain(v.X) {
				return NewError(OutOfDomain, "point force %q at x=%g is outside [0, %g]", v.ID, v.X, b.Length)
			}
		case PointMoment:
			if !inDomain(v.X) {
				return NewError(OutOfDomain, "point moment %q at x=%g is outside [0, %g]", v.ID, v.X, b.Length)
			}
		case DistributedForce:
			if v.StartX >= v.EndX {
				return NewError(InvalidGeometry, "distributed load %q: start_x (%g) must be < end_x (%g)", v.ID, v.StartX, v.EndX)
			}
			if !inDomain(v.StartX) || !inDomain(v.EndX) {
				return NewError(OutOfDomain, "distributed load %q spans [%g, %g], outside [0, %g]", v.ID, v.StartX, v.EndX, b.Length)
			}
		}
	}
	return nil
}
