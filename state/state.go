// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package state owns the mutable simulation record: per-particle
// position/velocity/displacement/force columns plus the scalar
// potential, virial and elapsed time. It also implements the momentum
// and temperature transformations used by initial-condition seeding and
// by phase.EquilibrationPhase's AdjustTemperature command.
package state

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// State is the owner of the mutable per-particle record. Positions,
// Velocities, Displacements and Forces are each a 4-row by N-column array
// of doubles; row 3 is unused padding and must remain exactly zero. Rows
// 0-2 are the x, y, z spatial components.
type State struct {
	N int

	Positions     [4][]float64
	Velocities    [4][]float64
	Displacements [4][]float64
	Forces        [4][]float64

	Potential float64
	Virial    float64
	Time      float64
}

// New returns a zero-initialised State for n particles. n must be
// positive; a non-positive count is a configuration error.
func New(n int) (*State, error) {
	if n <= 0 {
		return nil, chk.Err("particle count must be positive, got %d", n)
	}
	s := &State{N: n}
	for row := 0; row < 4; row++ {
		s.Positions[row] = make([]float64, n)
		s.Velocities[row] = make([]float64, n)
		s.Displacements[row] = make([]float64, n)
		s.Forces[row] = make([]float64, n)
	}
	return s, nil
}

// Position returns the 3-vector position of particle i.
func (s *State) Position(i int) [3]float64 {
	return [3]float64{s.Positions[0][i], s.Positions[1][i], s.Positions[2][i]}
}

// Velocity returns the 3-vector velocity of particle i.
func (s *State) Velocity(i int) [3]float64 {
	return [3]float64{s.Velocities[0][i], s.Velocities[1][i], s.Velocities[2][i]}
}

// Displacement returns the 3-vector wrap-free displacement of particle i.
func (s *State) Displacement(i int) [3]float64 {
	return [3]float64{s.Displacements[0][i], s.Displacements[1][i], s.Displacements[2][i]}
}

// AddForce accumulates f into the force column of particle i.
func (s *State) AddForce(i int, f [3]float64) {
	s.Forces[0][i] += f[0]
	s.Forces[1][i] += f[1]
	s.Forces[2][i] += f[2]
}

// ClearForces zeroes the force columns and the scalar potential/virial
// accumulators, the first step of dynamics.ForceCalc.
func (s *State) ClearForces() {
	for row := 0; row < 3; row++ {
		la.VecFill(s.Forces[row], 0)
	}
	s.Potential = 0
	s.Virial = 0
}

// CenterOfMass returns the (unweighted, since all particles carry unit
// mass) center of mass of the current positions.
func (s *State) CenterOfMass() [3]float64 {
	var c [3]float64
	for row := 0; row < 3; row++ {
		var sum float64
		for _, p := range s.Positions[row] {
			sum += p
		}
		c[row] = sum / float64(s.N)
	}
	return c
}

// checkRow3Zero is a cheap internal consistency check; it panics rather than returning an error because a non-zero pad row is
// always a programmer bug, never a runtime condition.
func (s *State) checkRow3Zero() {
	for _, col := range [][]float64{s.Positions[3], s.Velocities[3], s.Displacements[3], s.Forces[3]} {
		for _, v := range col {
			if v != 0 {
				chk.Panic("padded row 3 must remain zero, got %v", v)
			}
		}
	}
}
