// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import "encoding/json"

// Category classifies a load for filtering purposes (spec.md §3, §4.F).
// The solver itself ignores Category; only diagram.Compute filters by it.
type Category string

// Recognized load categories.
const (
	Dead    Category = "dead"
	Live    Category = "live"
	Wind    Category = "wind"
	Snow    Category = "snow"
	Seismic Category = "seismic"
)

// Load is a tagged sum type with three cases: PointForce, PointMoment and
// DistributedForce. The teacher's source organizes loads with a small class
// hierarchy plus a discriminating field and defensive typeof checks at the
// call sites; this module re-expresses that as a Go interface with three
// concrete implementations so the resolver and diagram calculator can use a
// type switch instead.
type Load interface {
	// LoadID returns the caller-supplied identifier of this load.
	LoadID() string
	// LoadCategory returns the category used for diagram filtering.
	LoadCategory() Category
}

// PointForce applies a concentrated vertical force at X. Magnitude is
// signed along the +y DOF; the analyst's convention of "negative means
// downward" is a presentation detail the core does not interpret.
type PointForce struct {
	ID        string   `json:"id"`
	X         float64  `json:"x"`
	Magnitude float64  `json:"magnitude"`
	Cat       Category `json:"category"`
}

func (p PointForce) LoadID() string         { return p.ID }
func (p PointForce) LoadCategory() Category { return p.Cat }

// PointMoment applies a concentrated moment about +z at X.
type PointMoment struct {
	ID        string   `json:"id"`
	X         float64  `json:"x"`
	Magnitude float64  `json:"magnitude"`
	Cat       Category `json:"category"`
}

func (p PointMoment) LoadID() string         { return p.ID }
func (p PointMoment) LoadCategory() Category { return p.Cat }

// DistributedForce applies a uniform intensity MagnitudePerLength over
// [StartX, EndX], with StartX < EndX.
type DistributedForce struct {
	ID                 string   `json:"id"`
	StartX             float64  `json:"start_x"`
	EndX               float64  `json:"end_x"`
	MagnitudePerLength float64  `json:"magnitude_per_length"`
	Cat                Category `json:"category"`
}

func (d DistributedForce) LoadID() string         { return d.ID }
func (d DistributedForce) LoadCategory() Category { return d.Cat }
func (d DistributedForce) Width() float64         { return d.EndX - d.StartX }
func (d DistributedForce) Centroid() float64      { return d.StartX + d.Width()/2 }

// loadKind discriminates Load variants on the wire. Mirrors the teacher's
// convention of a string "type" field driving a factory (inp.ElemData.Type
// selects an element allocator in ele.SetAllocator).
type loadKind string

const (
	kindPointForce       loadKind = "point_force"
	kindPointMoment      loadKind = "point_moment"
	kindDistributedForce loadKind = "distributed_force"
)

// wireLoad is the JSON shape every load variant is decoded through.
type wireLoad struct {
	Kind               loadKind `json:"kind"`
	ID                 string   `json:"id"`
	X                  float64  `json:"x"`
	StartX             float64  `json:"start_x"`
	EndX               float64  `json:"end_x"`
	Magnitude          float64  `json:"magnitude"`
	MagnitudePerLength float64  `json:"magnitude_per_length"`
	Category           Category `json:"category"`
}

// decodeLoad turns one decoded wireLoad into its concrete Load variant.
func decodeLoad(w wireLoad) (Load, error) {
	switch w.Kind {
	case kindPointForce:
		return PointForce{ID: w.ID, X: w.X, Magnitude: w.Magnitude, Cat: w.Category}, nil
	case kindPointMoment:
		return PointMoment{ID: w.ID, X: w.X, Magnitude: w.Magnitude, Cat: w.Category}, nil
	case kindDistributedForce:
		return DistributedForce{ID: w.ID, StartX: w.StartX, EndX: w.EndX, MagnitudePerLength: w.MagnitudePerLength, Cat: w.Category}, nil
	default:
		return nil, NewError(InvalidGeometry, "unknown load kind %q", w.Kind)
	}
}

// encodeLoad turns a concrete Load variant back into its wire shape, used
// by BeamInput's MarshalJSON.
func encodeLoad(l Load) wireLoad {
	switch v := l.(type) {
	case PointForce:
		return wireLoad{Kind: kindPointForce, ID: v.ID, X: v.X, Magnitude: v.Magnitude, Category: v.Cat}
	case PointMoment:
		return wireLoad{Kind: kindPointMoment, ID: v.ID, X: v.X, Magnitude: v.Magnitude, Category: v.Cat}
	case DistributedForce:
		return wireLoad{Kind: kindDistributedForce, ID: v.ID, StartX: v.StartX, EndX: v.EndX, MagnitudePerLength: v.MagnitudePerLength, Category: v.Cat}
	default:
		return wireLoad{}
	}
}

// loadList implements json.Marshaler/Unmarshaler for []Load so BeamInput
// can embed a polymorphic slice directly.
type loadList []Load

func (ll loadList) MarshalJSON() ([]byte, error) {
	wire := make([]wireLoad, len(ll))
	for i, l := range ll {
		wire[i] = encodeLoad(l)
	}
	return json.Marshal(wire)
}

func (ll *loadList) UnmarshalJSON(data []byte) error {
	var wire []wireLoad
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	out := make([]Load, 0, len(wire))
	for _, w := range wire {
		l, err := decodeLoad(w)
		if err != nil {
			return err
		}
		out = append(out, l)
	}
	*ll = out
	return nil
}
