// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package potential implements the short-range pairwise potential: a
// Lennard-Jones interaction with a smooth spline-to-zero cutoff, per
// spec.md §4.4.
package potential

import "github.com/cpmech/gosl/chk"

// Force maps a separation vector to a force/potential/virial
// Contribution. ShortRangeForce is the only production variant; tests use
// simple alternative implementations (a constant force within the cutoff
// to check ForceCalc, a zero force to drive the control loop).
type Force interface {
	Evaluate(r [3]float64) Contribution
	Cutoff2() float64
}

// wellMinimum is 2^(1/3), the squared-distance location of the
// Lennard-Jones potential well minimum. A cutoff^2 at or below this value
// cannot admit the spline join and is a configuration error.
const wellMinimum = 1.2599210498948732

// Contribution is the per-pair result of evaluating the force law: a
// force vector (on the first particle; negate for the second), and the
// pair's contribution to the scalar potential energy and virial.
type Contribution struct {
	Force     [3]float64
	Potential float64
	Virial    float64
}

// ShortRangeForce evaluates the smooth-cutoff Lennard-Jones law. The
// cutoff-dependent constants alpha and beta are derived once at
// construction so that Evaluate is a small, allocation-free hot-path
// computation.
type ShortRangeForce struct {
	cutoff   float64
	cutoff2  float64
	alpha    float64
	beta     float64
}

// New constructs a ShortRangeForce for the given cutoff distance. The
// cutoff must satisfy cutoff^2 > 2^(1/3) so that the spline join is well
// defined; otherwise this is a fatal configuration error (spec.md §7).
func New(cutoff float64) (*ShortRangeForce, error) {
	if cutoff <= 0 {
		return nil, chk.Err("cutoff distance must be positive, got %v", cutoff)
	}
	cutoff2 := cutoff * cutoff
	if cutoff2 <= wellMinimum {
		return nil, chk.Err("cutoff^2 = %v does not exceed 2^(1/3) = %v; spline well is undefined", cutoff2, wellMinimum)
	}
	r6 := 1 / (cutoff2 * cutoff2 * cutoff2)
	alpha := -4 * r6 * (r6 - 1)
	beta := 12 * r6 * (2*r6 - 1)
	return &ShortRangeForce{cutoff: cutoff, cutoff2: cutoff2, alpha: alpha, beta: beta}, nil
}

// Cutoff returns the cutoff distance this force was constructed with.
func (f *ShortRangeForce) Cutoff() float64 { return f.cutoff }

// Cutoff2 returns the squared cutoff distance.
func (f *ShortRangeForce) Cutoff2() float64 { return f.cutoff2 }

// Evaluate maps a separation vector r (with s = |r|^2) to its force,
// potential and virial contribution. If s >= cutoff^2 all three outputs
// are zero. At s == cutoff^2 both potential and virial equal zero by
// construction (C1-smooth join); no square roots are taken.
func (f *ShortRangeForce) Evaluate(r [3]float64) Contribution {
	s := r[0]*r[0] + r[1]*r[1] + r[2]*r[2]
	if s >= f.cutoff2 {
		return Contribution{}
	}
	u := 1 / (s * s * s)
	v := 4*u*(u-1) + f.alpha + f.beta*(s/f.cutoff2-1)
	w := 24*u*(2*u-1) - 2*f.beta*(s/f.cutoff2)
	scale := w / s
	return Contribution{
		Force:     [3]float64{scale * r[0], scale * r[1], scale * r[2]},
		Potential: v,
		Virial:    w,
	}
}
