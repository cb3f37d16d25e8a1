// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package config holds the construction inputs for a molecular dynamics
// simulation: thermodynamic targets, phase schedules, and output paths.
// Loading these values from a configuration file or command-line flags is
// out of scope; callers populate a Construction value directly.
package config

// UnitCell selects the lattice used to seed initial particle positions.
type UnitCell int

const (
	Simple UnitCell = iota
	BodyCentered
	FaceCentered
)

// InitialCondition parameterises the lattice generator (package lattice).
type InitialCondition struct {
	Temperature0  float64  `json:"temperature0"`  // seed temperature
	Density       float64  `json:"density"`       // N/V
	ParticleCount int      `json:"particlecount"` // number of particles
	Cell          UnitCell `json:"cell"`           // lattice kind
	Seed          int64    `json:"seed"`           // RNG seed
}

// EquilibrationParams drives phase.EquilibrationPhase; see spec.md §4.11.
type EquilibrationParams struct {
	TargetTemperature  float64 `json:"targettemperature"`
	Tolerance          float64 `json:"tolerance"`          // τ_eq
	SampleSize         int     `json:"samplesize"`         // k
	AdjustmentInterval int     `json:"adjustmentinterval"` // Δ_adj
	SteadyStateTime    int     `json:"steadystatetime"`    // T_ss
	Timeout            int     `json:"timeout"`            // T_to
}

// ObservationParams drives phase.ObservationPhase; see spec.md §4.11.
type ObservationParams struct {
	TargetTemperature  float64 `json:"targettemperature"`
	Tolerance          float64 `json:"tolerance"`          // τ_obs
	SampleSize         int     `json:"samplesize"`         // k
	ObservationInterval int    `json:"observationinterval"` // Δ_obs
	ObservationCount   int     `json:"observationcount"`   // M
}

// OutputPaths names the four sink destinations of spec.md §6.
type OutputPaths struct {
	EventLog          string `json:"eventlog"`
	ThermodynamicLog  string `json:"thermodynamiclog"`
	ObservationLog    string `json:"observationlog"`
	SnapshotLog       string `json:"snapshotlog"`
}

// Construction holds everything needed to build one sim.Simulation, per
// spec.md §6 "Simulation construction inputs".
type Construction struct {
	Temperature    float64 `json:"temperature"`
	Density        float64 `json:"density"`
	ParticleCount  int     `json:"particlecount"`
	RandomSeed     int64   `json:"randomseed"`
	CutoffDistance float64 `json:"cutoffdistance"`
	TimeDelta      float64 `json:"timedelta"`

	Equilibration EquilibrationParams `json:"equilibration"`
	Observation   ObservationParams   `json:"observation"`
	Paths         OutputPaths         `json:"paths"`
}

// InitialCondition projects the fields of Construction needed to seed the
// initial lattice and velocities.
func (c Construction) InitialCondition() InitialCondition {
	return InitialCondition{
		Temperature0:  c.Temperature,
		Density:       c.Density,
		ParticleCount: c.ParticleCount,
		Cell:          FaceCentered,
		Seed:          c.RandomSeed,
	}
}
