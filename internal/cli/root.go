// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli wires the eulerbeam library's operations up as a cobra CLI,
// in the style of alexiusacademia-gorcb's cmd package.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "beamctl",
	Short: "2D Euler-Bernoulli beam analyzer",
	Long: `beamctl runs the eulerbeam computational core from the terminal:
mesh generation, Fixed-End-Action load equivalencing, a constrained
linear solve with mechanism detection, and analytical shear, moment and
deflection diagrams.

Subcommands:
  analyze   - solve a beam and print displacements and reactions
  diagram   - solve a beam and print V(x), M(x) and w(x) samples`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print progress diagnostics")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Execute runs the CLI, exiting the process with status 1 on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
