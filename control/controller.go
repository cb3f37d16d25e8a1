// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package control implements the Controller main loop of spec.md §4.12:
// it interprets phase.Command values against a state.State through an
// integrate.Integrator, and logs every transition to a logging.LogBus.
package control

import (
	"github.com/bniehoff/lennard-jonesium-sub000/integrate"
	"github.com/bniehoff/lennard-jonesium-sub000/logging"
	"github.com/bniehoff/lennard-jonesium-sub000/phase"
	"github.com/bniehoff/lennard-jonesium-sub000/state"
)

// Controller owns the phase schedule, the Integrator, and a reference to
// the LogBus. It is single-threaded: State is never mutated concurrently
// with the Run loop (spec.md §5).
type Controller struct {
	State      *state.State
	Integrator *integrate.Integrator
	Schedule   []phase.Phase
	Log        *logging.LogBus

	step    int
	pending []phase.Command
}

// New seeds the command queue with AdvanceTime{1} and starts the first
// phase of schedule at step 0. schedule must be non-empty.
func New(s *state.State, in *integrate.Integrator, schedule []phase.Phase, log *logging.LogBus) *Controller {
	c := &Controller{
		State:      s,
		Integrator: in,
		Schedule:   schedule,
		Log:        log,
	}
	c.Schedule[0].Start(0)
	c.Log.Push(logging.PhaseStartEvent{Step: 0, Name: c.Schedule[0].Name()})
	c.pending = []phase.Command{phase.AdvanceTime{Steps: 1}}
	return c
}

// Run drains the command queue to completion: pop and interpret one
// command at a time until the queue empties, then closes the LogBus and
// waits for it to drain. Run is idempotent only in the sense that
// calling it on an already-halted Controller is a no-op.
func (c *Controller) Run() {
	for len(c.pending) > 0 {
		cmd := c.pending[0]
		c.pending = c.pending[1:]
		if c.interpret(cmd) {
			break
		}
	}
	c.Log.Close()
	c.Log.Wait()
}

// interpret executes one command, returning true if the run should halt.
func (c *Controller) interpret(cmd phase.Command) (halt bool) {
	switch v := cmd.(type) {

	case phase.AdvanceTime:
		c.Integrator.Advance(c.State, v.Steps)
		m := state.Measure(c.State)
		c.step += v.Steps
		c.Log.Push(logging.ThermodynamicData{Step: c.step, Measurement: m})
		c.pending = append(c.pending, c.currentPhase().Evaluate(c.step, m)...)
		return false

	case phase.AdjustTemperature:
		state.SetTemperature(c.State, v.Target)
		c.Log.Push(logging.AdjustTemperatureEvent{Step: c.step, Value: v.Target})
		return false

	case phase.RecordObservation:
		c.Log.Push(logging.ObservationData{Step: c.step, Observation: v.Observation})
		c.Log.Push(logging.RecordObservationEvent{Step: c.step})
		return false

	case phase.PhaseComplete:
		name := c.currentPhase().Name()
		c.Log.Push(logging.PhaseCompleteEvent{Step: c.step, Name: name})
		c.Schedule = c.Schedule[1:]
		if len(c.Schedule) == 0 {
			c.Log.Push(logging.Snapshot{Step: c.step, State: c.State})
			return true
		}
		c.currentPhase().Start(c.step)
		c.pending = append(c.pending, phase.AdvanceTime{Steps: 1})
		c.Log.Push(logging.PhaseStartEvent{Step: c.step, Name: c.currentPhase().Name()})
		return false

	case phase.AbortSimulation:
		c.Log.Push(logging.AbortSimulationEvent{Step: c.step, Reason: v.Reason})
		c.Log.Push(logging.Snapshot{Step: c.step, State: c.State})
		return true

	default:
		return true
	}
}

func (c *Controller) currentPhase() phase.Phase {
	return c.Schedule[0]
}
