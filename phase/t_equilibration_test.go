// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phase

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func hasCommand(cmds []Command, want Command) bool {
	for _, c := range cmds {
		switch want.(type) {
		case AdjustTemperature:
			if _, ok := c.(AdjustTemperature); ok {
				return true
			}
		case PhaseComplete:
			if _, ok := c.(PhaseComplete); ok {
				return true
			}
		case AbortSimulation:
			if _, ok := c.(AbortSimulation); ok {
				return true
			}
		}
	}
	return false
}

// Test_equilibration01 mirrors spec.md §8 scenario 4: once the measured
// temperature settles within tolerance of the target for long enough
// without needing another rescale, the phase completes.
func Test_equilibration01(tst *testing.T) {

	chk.PrintTitle("equilibration01. completes once temperature holds steady within tolerance")

	p := NewEquilibrationPhase(0.8, 0.1, 3, 3, 6, 100)
	p.Start(0)

	temps := map[int]float64{
		1: 0.3, 2: 0.3, 3: 0.3, // far from target; step3 triggers an adjustment
		4: 0.8, 5: 0.8, 6: 0.8, // converged; step6 re-checks but needs no adjustment
		7: 0.8, 8: 0.8, 9: 0.8, // step9 is 6 steps after the step-3 adjustment: complete
	}

	var completedAt int = -1
	for step := 1; step <= 9; step++ {
		cmds := p.Evaluate(step, measurementAt(step, temps[step], 0, 0))
		if hasCommand(cmds, PhaseComplete{}) {
			completedAt = step
			break
		}
	}

	if completedAt != 9 {
		tst.Fatalf("expected PhaseComplete at step 9, got %d", completedAt)
	}
}

// Test_equilibration02 mirrors spec.md §8 scenario 5: with a tolerance so
// tight that the measured temperature can never satisfy it, the phase
// aborts exactly at the timeout step.
func Test_equilibration02(tst *testing.T) {

	chk.PrintTitle("equilibration02. aborts at the timeout step when never within tolerance")

	p := NewEquilibrationPhase(0.8, 1e-9, 1, 2, 1000, 10)
	p.Start(0)

	for step := 1; step < 10; step++ {
		cmds := p.Evaluate(step, measurementAt(step, 0.81, 0, 0))
		if hasCommand(cmds, AbortSimulation{}) {
			tst.Fatalf("unexpected abort at step %d", step)
		}
	}

	cmds := p.Evaluate(10, measurementAt(10, 0.81, 0, 0))
	if !hasCommand(cmds, AbortSimulation{}) {
		tst.Fatalf("expected AbortSimulation at step 10, got %#v", cmds)
	}
}
