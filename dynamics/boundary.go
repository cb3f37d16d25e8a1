// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamics

import "github.com/bniehoff/lennard-jonesium-sub000/state"

// BoundaryOp wraps a State's positions back into its periodic box. It is
// a thin, allocation-free wrapper around state.BoundingBox.Wrap, kept as
// its own type so integrate.Integrator can depend on the BoundaryOp
// contract rather than the box directly (spec.md §4.1, §4.6).
type BoundaryOp struct {
	Box state.BoundingBox
}

// Apply wraps s's positions into [0, L) on every axis.
func (b BoundaryOp) Apply(s *state.State) {
	b.Box.Wrap(s)
}
