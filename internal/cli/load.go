// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"encoding/json"
	"os"

	"github.com/strucore/eulerbeam"
	"github.com/strucore/eulerbeam/internal/xlog"
)

// loadInput decodes a BeamInput from a JSON file, mirroring the teacher's
// inp.ReadSim loading a .sim JSON file into an inp.Simulation.
func loadInput(path string) (eulerbeam.BeamInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return eulerbeam.BeamInput{}, err
	}
	var in eulerbeam.BeamInput
	if err := json.Unmarshal(data, &in); err != nil {
		return eulerbeam.BeamInput{}, err
	}
	return in, nil
}

func logger() *xlog.Logger { return xlog.New(verbose) }
