// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phase

import (
	"math"

	"github.com/bniehoff/lennard-jonesium-sub000/state"
	"github.com/bniehoff/lennard-jonesium-sub000/stats"
)

// ObservationPhase records thermodynamic observations at a fixed cadence
// once the system is believed to be in steady state, aborting if the
// temperature drifts too far from the target, per spec.md §4.11.
type ObservationPhase struct {
	TargetTemperature   float64
	Density             float64
	ParticleCount       int
	Tolerance           float64 // τ_obs
	SampleSize          int     // k
	ObservationInterval int     // Δ_obs
	ObservationCount    int     // M

	lastObservationStep  int
	observationsRecorded int
	analyzer              *stats.ThermodynamicAnalyzer
}

// NewObservationPhase constructs a phase with a fresh thermodynamic
// analyzer window of SampleSize.
func NewObservationPhase(target, density float64, particleCount int, tolerance float64, sampleSize, observationInterval, observationCount int) *ObservationPhase {
	return &ObservationPhase{
		TargetTemperature:   target,
		Density:             density,
		ParticleCount:       particleCount,
		Tolerance:           tolerance,
		SampleSize:          sampleSize,
		ObservationInterval: observationInterval,
		ObservationCount:    observationCount,
	}
}

// Name implements Phase.
func (p *ObservationPhase) Name() string { return "Observation" }

// Start implements Phase: all hidden state is reset to start_step.
func (p *ObservationPhase) Start(startStep int) {
	p.lastObservationStep = startStep
	p.observationsRecorded = 0
	p.analyzer = stats.NewThermodynamicAnalyzer(p.SampleSize, p.Density, p.ParticleCount)
}

// Evaluate implements the per-step logic of spec.md §4.11: it pushes the
// measurement, and on the observation cadence either aborts on excessive
// temperature drift or records an observation. Either way it returns
// early without an AdvanceTime once the observation budget M is spent.
func (p *ObservationPhase) Evaluate(step int, m state.Measurement) []Command {
	p.analyzer.Push(m)

	if step-p.lastObservationStep >= p.ObservationInterval {
		p.lastObservationStep = step
		obs, err := p.analyzer.Result()
		if err == nil {
			if math.Abs(obs.Temperature-p.TargetTemperature)/p.TargetTemperature >= p.Tolerance {
				return []Command{AbortSimulation{Reason: "temperature drift"}}
			}
			p.observationsRecorded++
			if p.observationsRecorded >= p.ObservationCount {
				return []Command{RecordObservation{Observation: obs}, PhaseComplete{}}
			}
			return []Command{RecordObservation{Observation: obs}, AdvanceTime{Steps: 1}}
		}
	}

	return []Command{AdvanceTime{Steps: 1}}
}
