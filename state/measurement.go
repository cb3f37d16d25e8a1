// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

// Measurement is a read-only snapshot of the instantaneous scalar
// thermodynamic quantities of a State, computed per spec.md §4.8.
type Measurement struct {
	Time                    float64
	KineticEnergy           float64
	PotentialEnergy         float64
	TotalEnergy             float64
	Virial                  float64
	Temperature             float64
	MeanSquareDisplacement  float64
}

// Measure reads s into a Measurement. It does not mutate s.
func Measure(s *State) Measurement {
	ke := kineticEnergy(s)
	msd := meanSquareDisplacement(s)
	temperature := 2 * ke / (3 * float64(s.N))
	return Measurement{
		Time:                   s.Time,
		KineticEnergy:          ke,
		PotentialEnergy:        s.Potential,
		TotalEnergy:            ke + s.Potential,
		Virial:                 s.Virial,
		Temperature:            temperature,
		MeanSquareDisplacement: msd,
	}
}

// Temperature returns the instantaneous temperature 2*KE/(3N) without
// building a full Measurement; SetTemperature uses it to find the current
// temperature it rescales from.
func Temperature(s *State) float64 {
	return 2 * kineticEnergy(s) / (3 * float64(s.N))
}

func kineticEnergy(s *State) float64 {
	var ke float64
	for row := 0; row < 3; row++ {
		for _, v := range s.Velocities[row] {
			ke += v * v
		}
	}
	return 0.5 * ke
}

func meanSquareDisplacement(s *State) float64 {
	var sum float64
	for row := 0; row < 3; row++ {
		for _, d := range s.Displacements[row] {
			sum += d * d
		}
	}
	return sum / float64(s.N)
}
