// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamics

import (
	"github.com/bniehoff/lennard-jonesium-sub000/potential"
	"github.com/bniehoff/lennard-jonesium-sub000/state"
)

// ForceCalc clears the dynamics of a State, then accumulates the Newton-
// pair force/potential/virial contribution of every pair produced by its
// PairFilter, per spec.md §4.5.
type ForceCalc struct {
	Filter PairFilter
	Force  potential.Force
	Cutoff float64
}

// New builds a ForceCalc over the given filter and force law.
func New(filter PairFilter, force potential.Force, cutoff float64) *ForceCalc {
	return &ForceCalc{Filter: filter, Force: force, Cutoff: cutoff}
}

// Apply clears s's forces/potential/virial, then iterates pairs from the
// filter and accumulates each contribution: the force is added to column
// i and subtracted from column j (Newton's third law), potential and
// virial are added to the scalar accumulators.
func (fc *ForceCalc) Apply(s *state.State, box state.BoundingBox) {
	s.ClearForces()
	for _, pair := range fc.Filter.Pairs(s, box, fc.Cutoff) {
		c := fc.Force.Evaluate(pair.R)
		s.AddForce(pair.I, c.Force)
		s.AddForce(pair.J, [3]float64{-c.Force[0], -c.Force[1], -c.Force[2]})
		s.Potential += c.Potential
		s.Virial += c.Virial
	}
}
