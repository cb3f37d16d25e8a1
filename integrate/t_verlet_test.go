// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrate

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/bniehoff/lennard-jonesium-sub000/dynamics"
	"github.com/bniehoff/lennard-jonesium-sub000/potential"
	"github.com/bniehoff/lennard-jonesium-sub000/state"
)

func Test_verlet01(tst *testing.T) {

	chk.PrintTitle("verlet01. positions stay wrapped and time advances monotonically")

	s, err := state.New(30)
	if err != nil {
		tst.Fatalf("state.New failed: %v", err)
	}
	box := state.NewCubicBox(6.0)
	for i := 0; i < s.N; i++ {
		s.Positions[0][i] = float64((i*31)%600) / 100.0
		s.Positions[1][i] = float64((i*47)%600) / 100.0
		s.Positions[2][i] = float64((i*59)%600) / 100.0
		s.Velocities[0][i] = 0.1 * float64(i%5-2)
		s.Velocities[1][i] = 0.1 * float64(i%7-3)
		s.Velocities[2][i] = 0.1 * float64(i%3-1)
	}

	force, err := potential.New(1.5)
	if err != nil {
		tst.Fatalf("potential.New failed: %v", err)
	}
	filter, err := dynamics.NewCellListFilter(box.Sides(), 1.5)
	if err != nil {
		tst.Fatalf("NewCellListFilter failed: %v", err)
	}
	fc := dynamics.New(filter, force, 1.5)
	fc.Apply(s, box)

	integrator, err := New(0.001, dynamics.BoundaryOp{Box: box}, fc)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}

	integrator.Advance(s, 200)

	chk.Scalar(tst, "time", 1e-12, s.Time, 0.2)

	for row := 0; row < 3; row++ {
		for i, p := range s.Positions[row] {
			if p < 0 || p >= 6.0 {
				tst.Errorf("position[%d][%d]=%v out of [0,L)", row, i, p)
			}
		}
		for _, p := range s.Positions[3] {
			if p != 0 {
				tst.Errorf("pad row 3 of Positions must remain zero")
			}
		}
	}

	// time must be monotonically non-decreasing step by step
	prev := 0.0
	check := func(s *state.State) {
		if s.Time < prev-1e-15 {
			tst.Errorf("time went backwards: %v < %v", s.Time, prev)
		}
		prev = s.Time
	}
	for i := 0; i < 5; i++ {
		integrator.Step(s)
		check(s)
	}
}

func Test_verlet02(tst *testing.T) {

	chk.PrintTitle("verlet02. zero initial momentum stays near machine epsilon absent rescaling")

	s, err := state.New(50)
	if err != nil {
		tst.Fatalf("state.New failed: %v", err)
	}
	box := state.NewCubicBox(8.0)
	for i := 0; i < s.N; i++ {
		s.Positions[0][i] = float64((i*13)%800) / 100.0
		s.Positions[1][i] = float64((i*29)%800) / 100.0
		s.Positions[2][i] = float64((i*41)%800) / 100.0
		s.Velocities[0][i] = math.Sin(float64(i))
		s.Velocities[1][i] = math.Cos(float64(i))
		s.Velocities[2][i] = math.Sin(float64(i) * 0.5)
	}
	state.SetMomentum(s, [3]float64{0, 0, 0})

	force, err := potential.New(2.0)
	if err != nil {
		tst.Fatalf("potential.New failed: %v", err)
	}
	filter, err := dynamics.NewCellListFilter(box.Sides(), 2.0)
	if err != nil {
		tst.Fatalf("NewCellListFilter failed: %v", err)
	}
	fc := dynamics.New(filter, force, 2.0)
	fc.Apply(s, box)

	integrator, err := New(0.002, dynamics.BoundaryOp{Box: box}, fc)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	integrator.Advance(s, 100)

	p := state.Momentum(s)
	mag := math.Sqrt(p[0]*p[0] + p[1]*p[1] + p[2]*p[2])
	if mag > 1e-8 {
		tst.Errorf("total momentum magnitude grew to %v; want near machine epsilon", mag)
	}
}
