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

var analyzeInputPath string

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "solve a beam and print nodal displacements and support reactions",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInputPath, "input", "i", "", "path to a BeamInput JSON file (required)")
	analyzeCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	log := logger()

	log.Info(">> loading input from %s", analyzeInputPath)
	input, err := loadInput(analyzeInputPath)
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

	printAnalysis(nodes, result)
	return nil
}

func printAnalysis(nodes []eulerbeam.Node, result eulerbeam.AnalysisResult) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "NODE\tX\tSUPPORT\tY\tROTATION\tFy\tM")
	for _, n := range nodes {
		d := result.Displacements[n.ID]
		r, hasReaction := result.Reactions[n.ID]
		ry, rm := "-", "-"
		if hasReaction {
			ry = fmt.Sprintf("%.6g", r.Fy)
			rm = fmt.Sprintf("%.6g", r.M)
		}
		fmt.Fprintf(w, "%s\t%.4g\t%s\t%.6g\t%.6g\t%s\t%s\n",
			n.ID, n.X, n.Support, d.Y, d.Rotation, ry, rm)
	}
}
