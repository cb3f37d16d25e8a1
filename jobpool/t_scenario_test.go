// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jobpool

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/bniehoff/lennard-jonesium-sub000/config"
	"github.com/bniehoff/lennard-jonesium-sub000/control"
	"github.com/bniehoff/lennard-jonesium-sub000/dynamics"
	"github.com/bniehoff/lennard-jonesium-sub000/integrate"
	"github.com/bniehoff/lennard-jonesium-sub000/lattice"
	"github.com/bniehoff/lennard-jonesium-sub000/logging"
	"github.com/bniehoff/lennard-jonesium-sub000/phase"
	"github.com/bniehoff/lennard-jonesium-sub000/potential"
)

// zeroForce is a Force double that never perturbs the system: kinetic
// energy (and so temperature) stays exactly at its seeded value for the
// whole run, making the observation-phase fan-out below fully
// deterministic regardless of the actual N-body dynamics.
type zeroForce struct{ cutoff2 float64 }

func (z zeroForce) Evaluate(r [3]float64) potential.Contribution { return potential.Contribution{} }
func (z zeroForce) Cutoff2() float64                             { return z.cutoff2 }

// jobRun adapts a *control.Controller to jobpool.Job.
type jobRun struct {
	ctrl *control.Controller
}

func (j jobRun) Run() { j.ctrl.Run() }

// newObservationOnlyRun builds a single-phase (observation-only)
// Controller over a freshly seeded lattice, per spec.md §8 scenario 6.
func newObservationOnlyRun(tst *testing.T, seed int64, observationInterval, observationCount int) (*control.Controller, string, string, string) {
	cfg := config.InitialCondition{
		Temperature0:  0.8,
		Density:       0.8,
		ParticleCount: 50,
		Cell:          config.FaceCentered,
		Seed:          seed,
	}
	box, st, err := lattice.Generate(cfg)
	if err != nil {
		tst.Fatalf("lattice.Generate failed: %v", err)
	}

	cutoff := 1.0
	fc := dynamics.New(dynamics.ExhaustiveFilter{}, zeroForce{cutoff2: cutoff * cutoff}, cutoff)
	boundary := dynamics.BoundaryOp{Box: box}
	in, err := integrate.New(0.005, boundary, fc)
	if err != nil {
		tst.Fatalf("integrate.New failed: %v", err)
	}
	fc.Apply(st, box)

	schedule := []phase.Phase{
		phase.NewObservationPhase(0.8, 0.8, 50, 1.0, 50, observationInterval, observationCount),
	}

	dir := tst.TempDir()
	eventPath := filepath.Join(dir, "event.log")
	thermoPath := filepath.Join(dir, "thermo.csv")
	obsPath := filepath.Join(dir, "observation.csv")
	sinks, err := logging.NewSinks(config.OutputPaths{
		EventLog:         eventPath,
		ThermodynamicLog: thermoPath,
		ObservationLog:   obsPath,
		SnapshotLog:      filepath.Join(dir, "snapshot.csv"),
	})
	if err != nil {
		tst.Fatalf("NewSinks failed: %v", err)
	}
	bus := logging.NewLogBus(sinks)

	return control.New(st, in, schedule, bus), eventPath, thermoPath, obsPath
}

func countLines(tst *testing.T, path string) int {
	raw, err := os.ReadFile(path)
	if err != nil {
		tst.Fatalf("cannot read %s: %v", path, err)
	}
	trimmed := strings.TrimRight(string(raw), "\n")
	if trimmed == "" {
		return 0
	}
	return len(strings.Split(trimmed, "\n"))
}

func Test_scenario_jobpool_fanout(tst *testing.T) {

	chk.PrintTitle("scenario_jobpool_fanout. twelve observation-only runs over four workers, exact log line counts")

	const observationInterval = 100
	const observationCount = 20
	const n = 12

	pool, err := New(4, n)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}

	type paths struct{ event, thermo, observation string }
	all := make([]paths, n)

	for i := 0; i < n; i++ {
		ctrl, eventPath, thermoPath, obsPath := newObservationOnlyRun(tst, int64(i+1), observationInterval, observationCount)
		all[i] = paths{eventPath, thermoPath, obsPath}
		if err := pool.Submit(jobRun{ctrl: ctrl}); err != nil {
			tst.Fatalf("Submit failed: %v", err)
		}
	}
	pool.Wait()

	wantEvent := observationCount + 2
	wantThermo := observationCount*observationInterval + 1
	wantObservation := observationCount + 1

	for i, p := range all {
		if got := countLines(tst, p.event); got != wantEvent {
			tst.Errorf("run %d: event log has %d lines, want %d", i, got, wantEvent)
		}
		if got := countLines(tst, p.thermo); got != wantThermo {
			tst.Errorf("run %d: thermodynamic log has %d lines, want %d", i, got, wantThermo)
		}
		if got := countLines(tst, p.observation); got != wantObservation {
			tst.Errorf("run %d: observation log has %d lines, want %d", i, got, wantObservation)
		}
	}
}
