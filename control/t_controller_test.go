// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package control

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/bniehoff/lennard-jonesium-sub000/config"
	"github.com/bniehoff/lennard-jonesium-sub000/dynamics"
	"github.com/bniehoff/lennard-jonesium-sub000/integrate"
	"github.com/bniehoff/lennard-jonesium-sub000/logging"
	"github.com/bniehoff/lennard-jonesium-sub000/phase"
	"github.com/bniehoff/lennard-jonesium-sub000/potential"
	"github.com/bniehoff/lennard-jonesium-sub000/state"
	"github.com/bniehoff/lennard-jonesium-sub000/stats"
)

// mockSuccessPhase emits AdjustTemperature+AdvanceTime at start+{1,3} and
// PhaseComplete at start+5, matching spec.md §8 scenario 3.
type mockSuccessPhase struct {
	startStep int
}

func (p *mockSuccessPhase) Name() string        { return "SuccessPhase" }
func (p *mockSuccessPhase) Start(startStep int) { p.startStep = startStep }
func (p *mockSuccessPhase) Evaluate(step int, m state.Measurement) []phase.Command {
	switch step - p.startStep {
	case 1, 3:
		return []phase.Command{phase.AdjustTemperature{Target: 0.5}, phase.AdvanceTime{Steps: 1}}
	case 5:
		return []phase.Command{phase.PhaseComplete{}}
	default:
		return []phase.Command{phase.AdvanceTime{Steps: 1}}
	}
}

// mockFailurePhase emits RecordObservation+AdvanceTime at start+{1,3} and
// AbortSimulation at start+5, matching spec.md §8 scenario 3.
type mockFailurePhase struct {
	startStep int
}

func (p *mockFailurePhase) Name() string        { return "FailurePhase" }
func (p *mockFailurePhase) Start(startStep int) { p.startStep = startStep }
func (p *mockFailurePhase) Evaluate(step int, m state.Measurement) []phase.Command {
	switch step - p.startStep {
	case 1, 3:
		return []phase.Command{phase.RecordObservation{Observation: stats.Observation{}}, phase.AdvanceTime{Steps: 1}}
	case 5:
		return []phase.Command{phase.AbortSimulation{Reason: "Task failed successfully"}}
	default:
		return []phase.Command{phase.AdvanceTime{Steps: 1}}
	}
}

// newTrivialController builds a Controller over a single particle, so no
// pair ever interacts and AdvanceTime commands only exercise step
// bookkeeping; it returns the event-log path for inspection.
func newTrivialController(tst *testing.T, schedule []phase.Phase) (*Controller, string) {
	s, err := state.New(1)
	if err != nil {
		tst.Fatalf("state.New failed: %v", err)
	}
	// nonzero velocity so AdjustTemperature's rescale never divides by zero.
	s.Velocities[0][0] = 1.0

	box := state.NewCubicBox(100)
	cutoff := 1.2
	force, err := potential.New(cutoff)
	if err != nil {
		tst.Fatalf("potential.New failed: %v", err)
	}
	fc := dynamics.New(dynamics.ExhaustiveFilter{}, force, cutoff)
	boundary := dynamics.BoundaryOp{Box: box}
	in, err := integrate.New(1.0, boundary, fc)
	if err != nil {
		tst.Fatalf("integrate.New failed: %v", err)
	}

	dir := tst.TempDir()
	eventPath := filepath.Join(dir, "event.log")
	sinks, err := logging.NewSinks(config.OutputPaths{
		EventLog:         eventPath,
		ThermodynamicLog: filepath.Join(dir, "thermo.csv"),
		ObservationLog:   filepath.Join(dir, "observation.csv"),
		SnapshotLog:      filepath.Join(dir, "snapshot.csv"),
	})
	if err != nil {
		tst.Fatalf("NewSinks failed: %v", err)
	}
	bus := logging.NewLogBus(sinks)

	return New(s, in, schedule, bus), eventPath
}

func Test_controller01(tst *testing.T) {

	chk.PrintTitle("controller01. mock-phase trace matches spec exactly")

	schedule := []phase.Phase{&mockSuccessPhase{}, &mockFailurePhase{}}
	c, eventPath := newTrivialController(tst, schedule)
	c.Run()

	if err := c.Log.Err(); err != nil {
		tst.Fatalf("unexpected sink error: %v", err)
	}

	raw, err := os.ReadFile(eventPath)
	if err != nil {
		tst.Fatalf("cannot read event log: %v", err)
	}
	got := strings.TrimRight(string(raw), "\n")
	want := strings.Join([]string{
		"0: Phase started: SuccessPhase",
		"1: Temperature adjusted to: 0.5",
		"3: Temperature adjusted to: 0.5",
		"5: Phase complete: SuccessPhase",
		"5: Phase started: FailurePhase",
		"6: Observation recorded",
		"8: Observation recorded",
		"10: Simulation aborted: Task failed successfully",
	}, "\n")

	if got != want {
		tst.Errorf("event log mismatch:\ngot:\n%s\n\nwant:\n%s", got, want)
	}
}
