// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xlog is a thin, verbose-gated wrapper over gosl/io, in the style
// of the teacher's own domain logging (fem/domain.go's `io.Pf(">> ...")`
// calls). The core analysis operations never call this package — logging
// is an ambient concern of the CLI front-end and of tests, never of
// Analyze or Diagrams themselves (spec.md §4.G).
package xlog

import "github.com/cpmech/gosl/io"

// Logger prints progress messages when Verbose is true and is silent
// otherwise, matching the teacher's `if verbose { io.Pf(...) }` idiom.
type Logger struct {
	Verbose bool
}

// New returns a Logger with the given verbosity.
func New(verbose bool) *Logger { return &Logger{Verbose: verbose} }

// Info prints a progress line when the logger is verbose.
func (l *Logger) Info(format string, args ...interface{}) {
	if l == nil || !l.Verbose {
		return
	}
	io.Pf(format+"\n", args...)
}

// Warn prints a highlighted warning line when the logger is verbose.
func (l *Logger) Warn(format string, args ...interface{}) {
	if l == nil || !l.Verbose {
		return
	}
	io.PfYel(format+"\n", args...)
}
