// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package logging implements the asynchronous log pipeline of spec.md §5:
// a producer/consumer LogBus draining into the four Sinks of spec.md §6.
package logging

import (
	"github.com/bniehoff/lennard-jonesium-sub000/state"
	"github.com/bniehoff/lennard-jonesium-sub000/stats"
)

// Record is a tagged union of everything the Controller can log, each
// carrying the step at which it was emitted. The marker method keeps the
// set closed to this package's eight variants, mirroring phase.Command's
// dispatch style.
type Record interface {
	isRecord()
}

// PhaseStartEvent logs the start of a named phase.
type PhaseStartEvent struct {
	Step int
	Name string
}

// PhaseCompleteEvent logs the completion of a named phase.
type PhaseCompleteEvent struct {
	Step int
	Name string
}

// AdjustTemperatureEvent logs a velocity-rescaling command.
type AdjustTemperatureEvent struct {
	Step  int
	Value float64
}

// RecordObservationEvent logs that an observation was written.
type RecordObservationEvent struct {
	Step int
}

// AbortSimulationEvent logs the reason a simulation was aborted.
type AbortSimulationEvent struct {
	Step   int
	Reason string
}

// ThermodynamicData logs one row of the thermodynamic CSV.
type ThermodynamicData struct {
	Step        int
	Measurement state.Measurement
}

// ObservationData logs one row of the observation CSV.
type ObservationData struct {
	Step        int
	Observation stats.Observation
}

// Snapshot logs one full-state dump (positions, velocities, forces per
// particle), emitted on final-phase completion and on abort.
type Snapshot struct {
	Step  int
	State *state.State
}

func (PhaseStartEvent) isRecord()        {}
func (PhaseCompleteEvent) isRecord()     {}
func (AdjustTemperatureEvent) isRecord() {}
func (RecordObservationEvent) isRecord() {}
func (AbortSimulationEvent) isRecord()   {}
func (ThermodynamicData) isRecord()      {}
func (ObservationData) isRecord()        {}
func (Snapshot) isRecord()               {}
