// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// command ljmd is a minimal wiring entry point for the molecular
// dynamics engine. It runs one simulation built from fixed, in-code
// defaults; reading a configuration file or parsing command-line flags
// is explicitly out of scope (spec.md §1 non-goals).
package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/bniehoff/lennard-jonesium-sub000/config"
	"github.com/bniehoff/lennard-jonesium-sub000/sim"
)

func defaultConstruction() config.Construction {
	return config.Construction{
		Temperature:    0.3,
		Density:        0.8,
		ParticleCount:  500,
		RandomSeed:     1,
		CutoffDistance: 2.5,
		TimeDelta:      0.005,
		Equilibration: config.EquilibrationParams{
			TargetTemperature:  0.8,
			Tolerance:          0.05,
			SampleSize:         50,
			AdjustmentInterval: 100,
			SteadyStateTime:    1000,
			Timeout:            20000,
		},
		Observation: config.ObservationParams{
			TargetTemperature:   0.8,
			Tolerance:           0.10,
			SampleSize:          50,
			ObservationInterval: 200,
			ObservationCount:    50,
		},
		Paths: config.OutputPaths{
			EventLog:         "event.log",
			ThermodynamicLog: "thermodynamic.csv",
			ObservationLog:   "observation.csv",
			SnapshotLog:      "snapshot.csv",
		},
	}
}

func main() {

	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	io.PfWhite("\nljmd -- Lennard-Jones molecular dynamics\n\n")

	s, err := sim.New(defaultConstruction())
	if err != nil {
		chk.Panic("cannot build simulation: %v", err)
	}

	io.Pf("> Initial condition seeded\n")
	s.Launch()
	s.Wait()

	if err := s.Err(); err != nil {
		io.PfRed("> Simulation finished with a logging error: %v\n", err)
		return
	}
	io.PfGreen("> Simulation complete\n")
}
