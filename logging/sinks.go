// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"bufio"
	"fmt"
	"os"

	"github.com/cpmech/gosl/chk"

	"github.com/bniehoff/lennard-jonesium-sub000/config"
)

// Sinks bundles the four output destinations of spec.md §6. None of gosl's
// `io` helpers offer a streaming, append-as-you-go text/CSV writer (its
// WriteFile family writes a whole buffer at once), so the four files are
// driven directly with bufio.Writer and fmt.Fprintf, matching the record
// formats verbatim.
type Sinks struct {
	eventFile *os.File
	event     *bufio.Writer

	thermoFile *os.File
	thermo     *bufio.Writer

	observationFile *os.File
	observation     *bufio.Writer

	snapshotFile *os.File
	snapshot     *bufio.Writer
}

// NewSinks opens the four files named by paths and writes their headers.
func NewSinks(paths config.OutputPaths) (*Sinks, error) {
	s := &Sinks{}

	var err error
	if s.eventFile, err = os.Create(paths.EventLog); err != nil {
		return nil, chk.Err("cannot create event log: %v", err)
	}
	s.event = bufio.NewWriter(s.eventFile)

	if s.thermoFile, err = os.Create(paths.ThermodynamicLog); err != nil {
		return nil, chk.Err("cannot create thermodynamic log: %v", err)
	}
	s.thermo = bufio.NewWriter(s.thermoFile)
	fmt.Fprintln(s.thermo, "TimeStep,Time,KineticEnergy,PotentialEnergy,TotalEnergy,Virial,Temperature,MeanSquareDisplacement")

	if s.observationFile, err = os.Create(paths.ObservationLog); err != nil {
		return nil, chk.Err("cannot create observation log: %v", err)
	}
	s.observation = bufio.NewWriter(s.observationFile)
	fmt.Fprintln(s.observation, "TimeStep,Temperature,Pressure,SpecificHeat,DiffusionCoefficient")

	if s.snapshotFile, err = os.Create(paths.SnapshotLog); err != nil {
		return nil, chk.Err("cannot create snapshot log: %v", err)
	}
	s.snapshot = bufio.NewWriter(s.snapshotFile)
	fmt.Fprintln(s.snapshot, "TimeStep,ParticleID,Position,Position,Position,Velocity,Velocity,Velocity,Force,Force,Force")
	fmt.Fprintln(s.snapshot, "TimeStep,ParticleID,X,Y,Z,X,Y,Z,X,Y,Z")

	return s, nil
}

// Dispatch formats and appends one record to its destination sink, per
// spec.md §6's exact text and CSV formats.
func (s *Sinks) Dispatch(r Record) error {
	switch rec := r.(type) {
	case PhaseStartEvent:
		_, err := fmt.Fprintf(s.event, "%d: Phase started: %s\n", rec.Step, rec.Name)
		return err

	case PhaseCompleteEvent:
		_, err := fmt.Fprintf(s.event, "%d: Phase complete: %s\n", rec.Step, rec.Name)
		return err

	case AdjustTemperatureEvent:
		_, err := fmt.Fprintf(s.event, "%d: Temperature adjusted to: %v\n", rec.Step, rec.Value)
		return err

	case RecordObservationEvent:
		_, err := fmt.Fprintf(s.event, "%d: Observation recorded\n", rec.Step)
		return err

	case AbortSimulationEvent:
		_, err := fmt.Fprintf(s.event, "%d: Simulation aborted: %s\n", rec.Step, rec.Reason)
		return err

	case ThermodynamicData:
		m := rec.Measurement
		_, err := fmt.Fprintf(s.thermo, "%d,%v,%v,%v,%v,%v,%v,%v\n",
			rec.Step, m.Time, m.KineticEnergy, m.PotentialEnergy, m.TotalEnergy,
			m.Virial, m.Temperature, m.MeanSquareDisplacement)
		return err

	case ObservationData:
		o := rec.Observation
		_, err := fmt.Fprintf(s.observation, "%d,%v,%v,%v,%v\n",
			rec.Step, o.Temperature, o.Pressure, o.SpecificHeat, o.DiffusionCoefficient)
		return err

	case Snapshot:
		st := rec.State
		for i := 0; i < st.N; i++ {
			p := st.Position(i)
			v := st.Velocity(i)
			f := [3]float64{st.Forces[0][i], st.Forces[1][i], st.Forces[2][i]}
			_, err := fmt.Fprintf(s.snapshot, "%d,%d,%v,%v,%v,%v,%v,%v,%v,%v,%v\n",
				rec.Step, i, p[0], p[1], p[2], v[0], v[1], v[2], f[0], f[1], f[2])
			if err != nil {
				return err
			}
		}
		return nil

	default:
		return chk.Err("unknown log record type %T", r)
	}
}

// Close flushes and closes every sink file.
func (s *Sinks) Close() error {
	var firstErr error
	note := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	note(s.event.Flush())
	note(s.eventFile.Close())
	note(s.thermo.Flush())
	note(s.thermoFile.Close())
	note(s.observation.Flush())
	note(s.observationFile.Close())
	note(s.snapshot.Flush())
	note(s.snapshotFile.Close())
	return firstErr
}
