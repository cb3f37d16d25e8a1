// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package phase implements the phase state machines (Equilibration,
// Observation) that drive a simulation by emitting Commands for the
// control package to interpret, per spec.md §4.11.
package phase

import "github.com/bniehoff/lennard-jonesium-sub000/stats"

// Command is a tagged union of control-loop instructions. The marker
// method keeps the set closed to this package's five variants while
// still letting control dispatch with a type switch, matching the
// teacher's small-interface tagged-variant style rather than a deep
// class hierarchy (spec.md §9).
type Command interface {
	isCommand()
}

// AdvanceTime asks the Controller to step the Integrator Steps times.
type AdvanceTime struct {
	Steps int
}

// RecordObservation asks the Controller to log a derived Observation.
type RecordObservation struct {
	Observation stats.Observation
}

// AdjustTemperature asks the Controller to rescale velocities to Target.
type AdjustTemperature struct {
	Target float64
}

// PhaseComplete signals that the current phase has finished.
type PhaseComplete struct{}

// AbortSimulation signals an unrecoverable phase-level failure.
type AbortSimulation struct {
	Reason string
}

func (AdvanceTime) isCommand()        {}
func (RecordObservation) isCommand()  {}
func (AdjustTemperature) isCommand()  {}
func (PhaseComplete) isCommand()      {}
func (AbortSimulation) isCommand()    {}
