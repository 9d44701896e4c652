// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp holds the typed domain values (nodes, elements, loads and the
// BeamInput contract) consumed by mesh, loads, fem and diagram, plus the
// error taxonomy shared by every component.
package inp

import (
	"github.com/cpmech/gosl/io"
)

// Kind classifies a failure raised anywhere in the analysis pipeline.
type Kind string

// Error kinds, one per row of the error taxonomy.
const (
	InvalidGeometry     Kind = "InvalidGeometry"
	InvalidMaterial     Kind = "InvalidMaterial"
	OutOfDomain         Kind = "OutOfDomain"
	ConflictingSupports Kind = "ConflictingSupports"
	UnstableStructure   Kind = "UnstableStructure"
	LoadNotAligned      Kind = "LoadNotAligned"
)

// Error is the single error type returned by every exported operation in
// this module. All failures are fatal for the call that raised them; there
// is no recovery path other than the caller fixing its input and retrying.
type Error struct {
	Kind Kind
	Msg  string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return io.Sf("%s: %s", e.Kind, e.Msg)
}

// NewError builds an *Error with a gosl/io-formatted message, mirroring the
// teacher's chk.Err(format, args...) convention but as a typed value so
// callers can switch on Kind.
func NewError(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Msg: io.Sf(format, args...)}
}

// Is reports whether err is an *Error of the given kind. Written as a plain
// type switch rather than errors.As/Is chaining because *Error never wraps
// another error.
func Is(err error, kind Kind) bool {
	if e, ok := err.(*Error); ok {
		return e.Kind == kind
	}
	return false
}
