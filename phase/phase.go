// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phase

import "github.com/bniehoff/lennard-jonesium-sub000/state"

// Phase is a polymorphic state machine driven once per step by the
// control.Controller. Evaluate consumes a measurement and appends zero or
// more Commands to be interpreted against the simulation State. Phase
// depends only on measurements and its own parameters, never on the
// Controller, breaking the Controller/Phase cyclic dependency of
// spec.md §9.
type Phase interface {
	// Name identifies the phase for event-log records.
	Name() string
	// Start (re)initialises hidden state as of the given step.
	Start(startStep int)
	// Evaluate runs the per-step logic and returns the commands to enqueue.
	Evaluate(step int, m state.Measurement) []Command
}
