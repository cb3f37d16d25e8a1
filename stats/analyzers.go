// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"github.com/cpmech/gosl/chk"

	"github.com/bniehoff/lennard-jonesium-sub000/state"
)

// Observation is the set of derived thermodynamic observables produced by
// ThermodynamicAnalyzer.Result, per spec.md §3, §4.10.
type Observation struct {
	Temperature           float64
	Pressure               float64
	SpecificHeat           float64
	DiffusionCoefficient   float64
}

// TemperatureAnalyzer accumulates instantaneous temperatures during
// EquilibrationPhase and reports the sample mean as its temperature
// estimate.
type TemperatureAnalyzer struct {
	sample *ScalarSample
}

// NewTemperatureAnalyzer returns an analyzer with a k-sample window.
func NewTemperatureAnalyzer(k int) *TemperatureAnalyzer {
	return &TemperatureAnalyzer{sample: NewScalarSample(k)}
}

// Push records one instantaneous temperature.
func (a *TemperatureAnalyzer) Push(temperature float64) {
	a.sample.Push(temperature)
}

// Result returns the current sample mean temperature.
func (a *TemperatureAnalyzer) Result() (float64, error) {
	stat, err := a.sample.Statistics()
	if err != nil {
		return 0, err
	}
	return stat.Mean, nil
}

// ThermodynamicAnalyzer accumulates measurements during ObservationPhase
// and derives an Observation{T, P, Cv, D} on Result, per spec.md §4.10.
type ThermodynamicAnalyzer struct {
	density           float64
	particleCount     int
	temperature       *ScalarSample
	virial            *ScalarSample
	timeAndMSD        *VectorSample
}

// NewThermodynamicAnalyzer returns an analyzer with a k-sample window,
// given the fixed density and particle count needed for the pressure and
// specific-heat formulas.
func NewThermodynamicAnalyzer(k int, density float64, particleCount int) *ThermodynamicAnalyzer {
	return &ThermodynamicAnalyzer{
		density:       density,
		particleCount: particleCount,
		temperature:   NewScalarSample(k),
		virial:        NewScalarSample(k),
		timeAndMSD:    NewVectorSample(k),
	}
}

// Push records one measurement's temperature, virial, and (time, MSD).
func (a *ThermodynamicAnalyzer) Push(m state.Measurement) {
	a.temperature.Push(m.Temperature)
	a.virial.Push(m.Virial)
	a.timeAndMSD.Push([2]float64{m.Time, m.MeanSquareDisplacement})
}

// Result computes the derived Observation:
//
//	T̄   = mean(temperature)
//	P   = ρ*(T̄ + mean(W)/(3N))
//	C_V = (3/2) / (1 - (3/2)*N*var(T)/T̄²)              (Lebowitz-Percus-Verlet)
//	D   = (1/6) * Cov(time, MSD) / Var(time)            (Einstein relation, 3D)
func (a *ThermodynamicAnalyzer) Result() (Observation, error) {
	tStat, err := a.temperature.Statistics()
	if err != nil {
		return Observation{}, err
	}
	wStat, err := a.virial.Statistics()
	if err != nil {
		return Observation{}, err
	}
	vecStat, err := a.timeAndMSD.Statistics()
	if err != nil {
		return Observation{}, err
	}

	n := float64(a.particleCount)
	tbar := tStat.Mean
	if tbar == 0 {
		return Observation{}, chk.Err("mean temperature is zero; cannot compute specific heat")
	}

	pressure := a.density * (tbar + wStat.Mean/(3*n))
	cv := 1.5 / (1 - 1.5*n*tStat.Variance/(tbar*tbar))

	varTime := vecStat.Covariance[0][0]
	if varTime == 0 {
		return Observation{}, chk.Err("time samples have zero variance; cannot compute diffusion coefficient")
	}
	covTimeMSD := vecStat.Covariance[0][1]
	diffusion := covTimeMSD / (6 * varTime)

	return Observation{
		Temperature:          tbar,
		Pressure:             pressure,
		SpecificHeat:         cv,
		DiffusionCoefficient: diffusion,
	}, nil
}
