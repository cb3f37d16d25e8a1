// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sim wires together every layer of the engine — initial
// condition, Integrator, phase schedule, Controller, LogBus — into one
// Simulation, built from a single config.Construction value per
// spec.md §6.
package sim

import (
	"github.com/bniehoff/lennard-jonesium-sub000/config"
	"github.com/bniehoff/lennard-jonesium-sub000/control"
	"github.com/bniehoff/lennard-jonesium-sub000/dynamics"
	"github.com/bniehoff/lennard-jonesium-sub000/integrate"
	"github.com/bniehoff/lennard-jonesium-sub000/lattice"
	"github.com/bniehoff/lennard-jonesium-sub000/logging"
	"github.com/bniehoff/lennard-jonesium-sub000/phase"
	"github.com/bniehoff/lennard-jonesium-sub000/potential"
)

// Simulation owns State (via Controller), Integrator, the phase
// schedule, and the LogBus end to end. It implements jobpool.Job so a
// JobPool can run many Simulations concurrently without importing this
// package.
type Simulation struct {
	controller *control.Controller
	done       chan struct{}
}

// New validates cfg and builds a ready-to-run Simulation: a lattice
// initial condition, a cell-list force pipeline, a Velocity-Verlet
// integrator primed with one initial force evaluation, the
// Equilibration/Observation phase schedule, and a LogBus over cfg.Paths.
func New(cfg config.Construction) (*Simulation, error) {
	box, st, err := lattice.Generate(cfg.InitialCondition())
	if err != nil {
		return nil, err
	}

	force, err := potential.New(cfg.CutoffDistance)
	if err != nil {
		return nil, err
	}

	filter, err := dynamics.NewCellListFilter(box.Sides(), cfg.CutoffDistance)
	if err != nil {
		return nil, err
	}
	forceCalc := dynamics.New(filter, force, cfg.CutoffDistance)
	boundary := dynamics.BoundaryOp{Box: box}

	integrator, err := integrate.New(cfg.TimeDelta, boundary, forceCalc)
	if err != nil {
		return nil, err
	}

	// The Velocity-Verlet recurrence in integrate.Integrator.Step assumes
	// s.Forces already holds the force at the current positions; prime it
	// once here so the first half-kick is correct.
	forceCalc.Apply(st, box)

	schedule := []phase.Phase{
		phase.NewEquilibrationPhase(
			cfg.Equilibration.TargetTemperature,
			cfg.Equilibration.Tolerance,
			cfg.Equilibration.SampleSize,
			cfg.Equilibration.AdjustmentInterval,
			cfg.Equilibration.SteadyStateTime,
			cfg.Equilibration.Timeout,
		),
		phase.NewObservationPhase(
			cfg.Observation.TargetTemperature,
			cfg.Density,
			cfg.ParticleCount,
			cfg.Observation.Tolerance,
			cfg.Observation.SampleSize,
			cfg.Observation.ObservationInterval,
			cfg.Observation.ObservationCount,
		),
	}

	sinks, err := logging.NewSinks(cfg.Paths)
	if err != nil {
		return nil, err
	}
	bus := logging.NewLogBus(sinks)

	ctrl := control.New(st, integrator, schedule, bus)
	return &Simulation{controller: ctrl}, nil
}

// Run executes the Controller's main loop synchronously to completion.
// It implements jobpool.Job.
func (s *Simulation) Run() {
	s.controller.Run()
}

// Launch starts Run on its own goroutine; Wait joins it. Use Run
// directly (e.g. via jobpool.JobPool) when synchronous execution on a
// caller-managed goroutine is preferred.
func (s *Simulation) Launch() {
	s.done = make(chan struct{})
	go func() {
		defer close(s.done)
		s.Run()
	}()
}

// Wait blocks until a Launch'd run completes.
func (s *Simulation) Wait() {
	<-s.done
}

// Err returns the first sink-dispatch error the LogBus encountered, or
// nil. Valid after Run/Wait returns.
func (s *Simulation) Err() error {
	return s.controller.Log.Err()
}
