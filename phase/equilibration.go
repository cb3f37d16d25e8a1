// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phase

import (
	"math"

	"github.com/bniehoff/lennard-jonesium-sub000/state"
	"github.com/bniehoff/lennard-jonesium-sub000/stats"
)

// EquilibrationPhase drives the system toward a target temperature by
// periodically rescaling velocities, per spec.md §4.11.
type EquilibrationPhase struct {
	TargetTemperature  float64
	Tolerance          float64 // τ_eq
	SampleSize         int     // k
	AdjustmentInterval int     // Δ_adj
	SteadyStateTime    int     // T_ss
	Timeout            int     // T_to

	startStep           int
	lastCheckStep       int
	lastAdjustmentStep  int
	analyzer            *stats.TemperatureAnalyzer
}

// NewEquilibrationPhase constructs a phase with a fresh temperature
// analyzer window of SampleSize.
func NewEquilibrationPhase(target, tolerance float64, sampleSize, adjustmentInterval, steadyStateTime, timeout int) *EquilibrationPhase {
	return &EquilibrationPhase{
		TargetTemperature:  target,
		Tolerance:          tolerance,
		SampleSize:         sampleSize,
		AdjustmentInterval: adjustmentInterval,
		SteadyStateTime:    steadyStateTime,
		Timeout:            timeout,
	}
}

// Name implements Phase.
func (p *EquilibrationPhase) Name() string { return "Equilibration" }

// Start implements Phase: all hidden state is reset to start_step.
func (p *EquilibrationPhase) Start(startStep int) {
	p.startStep = startStep
	p.lastCheckStep = startStep
	p.lastAdjustmentStep = startStep
	p.analyzer = stats.NewTemperatureAnalyzer(p.SampleSize)
}

// Evaluate implements the per-step logic of spec.md §4.11. Note that
// emitting AdjustTemperature does not by itself end the step: unless the
// steady-state or timeout checks fire, the phase still enqueues the next
// AdvanceTime, so a single Evaluate call can return both commands (see
// spec.md §8 scenario 3).
func (p *EquilibrationPhase) Evaluate(step int, m state.Measurement) []Command {
	p.analyzer.Push(m.Temperature)

	var cmds []Command

	adjustedThisStep := false
	if step-p.lastCheckStep >= p.AdjustmentInterval {
		p.lastCheckStep = step
		mean, err := p.analyzer.Result()
		if err == nil {
			if math.Abs(mean-p.TargetTemperature)/p.TargetTemperature >= p.Tolerance {
				p.lastAdjustmentStep = step
				adjustedThisStep = true
				cmds = append(cmds, AdjustTemperature{Target: p.TargetTemperature})
			}
		}
	}

	if step-p.lastAdjustmentStep >= p.SteadyStateTime && !adjustedThisStep {
		return append(cmds, PhaseComplete{})
	}

	if step-p.startStep >= p.Timeout {
		return append(cmds, AbortSimulation{Reason: "equilibration timeout"})
	}

	return append(cmds, AdvanceTime{Steps: 1})
}
