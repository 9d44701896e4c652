// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/strucore/eulerbeam"
)

var (
	diagramInputPath   string
	diagramResolution  int
	diagramCategoryStr string
)

var diagramCmd = &cobra.Command{
	Use:   "diagram",
	Short: "solve a beam and print V(x), M(x) and w(x) samples",
	RunE:  runDiagram,
}

func init() {
	diagramCmd.Flags().StringVarP(&diagramInputPath, "input", "i", "", "path to a BeamInput JSON file (required)")
	diagramCmd.Flags().IntVarP(&diagramResolution, "resolution", "r", 20, "number of sample intervals along the beam")
	diagramCmd.Flags().StringVarP(&diagramCategoryStr, "category", "c", string(eulerbeam.Dead), "load category to include (dead, live, wind, snow, seismic)")
	diagramCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(diagramCmd)
}

func runDiagram(cmd *cobra.Command, args []string) error {
	log := logger()

	log.Info(">> loading input from %s", diagramInputPath)
	input, err := loadInput(diagramInputPath)
	if err != nil {
		return err
	}

	log.Info(">> meshing")
	nodes, _, err := eulerbeam.Mesh(input)
	if err != nil {
		return err
	}

	log.Info(">> solving %d nodes", len(nodes))
	result, err := eulerbeam.Analyze(input)
	if err != nil {
		return err
	}

	category := eulerbeam.Category(diagramCategoryStr)
	log.Info(">> sampling %d intervals, category %s", diagramResolution, category)
	dg, err := eulerbeam.Diagrams(input.Length, nodes, input.Loads, result.Displacements, result.Reactions, diagramResolution, category)
	if err != nil {
		return err
	}

	printDiagram(dg)
	return nil
}

func printDiagram(dg eulerbeam.Diagram) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "X\tV\tM\tw")
	for i := range dg.X {
		fmt.Fprintf(w, "%.6g\t%.6g\t%.6g\t%.6g\n", dg.X[i], dg.V[i], dg.M[i], dg.W[i])
	}
}
