// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Momentum returns the total linear momentum (unit masses) Σ v_i.
func Momentum(s *State) [3]float64 {
	var p [3]float64
	for row := 0; row < 3; row++ {
		for _, v := range s.Velocities[row] {
			p[row] += v
		}
	}
	return p
}

// AngularMomentum returns the total angular momentum about center c,
// Σ (p_i - c) × v_i.
func AngularMomentum(s *State, c [3]float64) [3]float64 {
	var l [3]float64
	for i := 0; i < s.N; i++ {
		r := sub3(s.Position(i), c)
		v := s.Velocity(i)
		cr := cross3(r, v)
		l[0] += cr[0]
		l[1] += cr[1]
		l[2] += cr[2]
	}
	return l
}

// SetMomentum adds (target - current)/N to every velocity, so that the
// measured total momentum becomes exactly target. See spec.md §4.8.
func SetMomentum(s *State, target [3]float64) {
	current := Momentum(s)
	var delta [3]float64
	for k := 0; k < 3; k++ {
		delta[k] = (target[k] - current[k]) / float64(s.N)
	}
	for row := 0; row < 3; row++ {
		for i := range s.Velocities[row] {
			s.Velocities[row][i] += delta[row]
		}
	}
}

// SetAngularMomentum solves the 3x3 inertia-tensor system about center c
// for a uniform angular correction Δω, then adds Δω × (p_i - c) to every
// velocity so that the measured angular momentum about c becomes exactly
// target. Zeroing linear then angular momentum is not commutative unless
// the axis passes through the center of mass; callers seeding an initial
// condition must call SetMomentum before SetAngularMomentum, about the
// center of mass (spec.md §4.8).
func SetAngularMomentum(s *State, target [3]float64, c [3]float64) {
	current := AngularMomentum(s, c)
	var rhs [3]float64
	for k := 0; k < 3; k++ {
		rhs[k] = target[k] - current[k]
	}

	var inertia [3][3]float64
	for i := 0; i < s.N; i++ {
		r := sub3(s.Position(i), c)
		r2 := r[0]*r[0] + r[1]*r[1] + r[2]*r[2]
		for a := 0; a < 3; a++ {
			for b := 0; b < 3; b++ {
				delta := 0.0
				if a == b {
					delta = 1.0
				}
				inertia[a][b] += r2*delta - r[a]*r[b]
			}
		}
	}

	domega := solve3x3(inertia, rhs)

	for i := 0; i < s.N; i++ {
		r := sub3(s.Position(i), c)
		cr := cross3(domega, r)
		s.Velocities[0][i] += cr[0]
		s.Velocities[1][i] += cr[1]
		s.Velocities[2][i] += cr[2]
	}
}

// SetTemperature rescales every velocity by sqrt(target/current), so that
// the measured instantaneous temperature becomes exactly target. The
// current temperature must be nonzero; calling this from a zero-velocity
// state is a precondition violation (spec.md §7) and panics rather than
// dividing by zero silently.
func SetTemperature(s *State, target float64) {
	current := Temperature(s)
	if current == 0 {
		chk.Panic("cannot rescale temperature from a zero-velocity state")
	}
	factor := math.Sqrt(target / current)
	for row := 0; row < 3; row++ {
		for i := range s.Velocities[row] {
			s.Velocities[row][i] *= factor
		}
	}
}

func sub3(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func cross3(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// solve3x3 solves A x = b for a dense 3x3 system via Cramer's rule. The
// inertia tensor here is a fixed 3x3 dense matrix; gosl's la.GetSolver
// targets large sparse systems (Triplet/CCMatrix) and would be a
// heavyweight mismatch for this shape, so the closed form is used
// instead.
func solve3x3(a [3][3]float64, b [3]float64) [3]float64 {
	det := det3(a)
	if det == 0 {
		chk.Panic("singular inertia tensor; particles may be collinear through the axis")
	}
	var x [3]float64
	for col := 0; col < 3; col++ {
		m := a
		for row := 0; row < 3; row++ {
			m[row][col] = b[row]
		}
		x[col] = det3(m) / det
	}
	return x
}

func det3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}
