// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package integrate implements the symplectic Velocity-Verlet time
// stepper of spec.md §4.6.
package integrate

import (
	"github.com/cpmech/gosl/chk"

	"github.com/bniehoff/lennard-jonesium-sub000/dynamics"
	"github.com/bniehoff/lennard-jonesium-sub000/state"
)

// Integrator advances a State by a fixed time step Δt using half-kick,
// drift, force-recompute, half-kick. It holds the BoundaryOp (by value)
// and the ForceCalc (by pointer) used to close the loop each step.
type Integrator struct {
	Dt       float64
	Boundary dynamics.BoundaryOp
	Force    *dynamics.ForceCalc
}

// New validates Δt > 0 (a configuration error otherwise, spec.md §7) and
// returns a ready-to-use Integrator.
func New(dt float64, boundary dynamics.BoundaryOp, force *dynamics.ForceCalc) (*Integrator, error) {
	if dt <= 0 {
		return nil, chk.Err("time step must be positive, got %v", dt)
	}
	return &Integrator{Dt: dt, Boundary: boundary, Force: force}, nil
}

// Step advances s by one Δt:
//
//	v  += (Δt/2)*F            half-kick
//	Δp  = v*Δt
//	p  += Δp
//	d  += Δp                  unbounded, wrap-free displacement
//	p   = wrap(p)             BoundaryOp
//	F,U,W = ForceCalc(p)      recompute from wrapped positions
//	v  += (Δt/2)*F            second half-kick
//	t  += Δt
func (in *Integrator) Step(s *state.State) {
	halfDt := in.Dt / 2

	for row := 0; row < 3; row++ {
		v := s.Velocities[row]
		f := s.Forces[row]
		for i := range v {
			v[i] += halfDt * f[i]
		}
	}

	for row := 0; row < 3; row++ {
		p := s.Positions[row]
		v := s.Velocities[row]
		d := s.Displacements[row]
		for i := range p {
			dp := v[i] * in.Dt
			p[i] += dp
			d[i] += dp
		}
	}

	in.Boundary.Apply(s)
	in.Force.Apply(s, in.Boundary.Box)

	for row := 0; row < 3; row++ {
		v := s.Velocities[row]
		f := s.Forces[row]
		for i := range v {
			v[i] += halfDt * f[i]
		}
	}

	s.Time += in.Dt
}

// Advance composes Step n times; semantically equivalent to calling Step
// n times in sequence (spec.md §4.6).
func (in *Integrator) Advance(s *state.State, n int) {
	for i := 0; i < n; i++ {
		in.Step(s)
	}
}
