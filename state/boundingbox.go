// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import "math"

// BoundingBox is the immutable cubic (or rectangular) periodic simulation
// volume. Only the three spatial side lengths are stored; Wrap works on
// position rows 0-2 and never touches the padded row.
type BoundingBox struct {
	Lx, Ly, Lz float64
}

// NewCubicBox returns a box with all three sides equal to side.
func NewCubicBox(side float64) BoundingBox {
	return BoundingBox{Lx: side, Ly: side, Lz: side}
}

// Sides returns the three side lengths as an array, convenient for
// componentwise loops in dynamics and cells.
func (b BoundingBox) Sides() [3]float64 {
	return [3]float64{b.Lx, b.Ly, b.Lz}
}

// Volume returns Lx*Ly*Lz.
func (b BoundingBox) Volume() float64 {
	return b.Lx * b.Ly * b.Lz
}

// Wrap replaces each position column by p - L*floor(p/L) componentwise on
// the first three rows, leaving the padded row 3 untouched (it is always
// zero already). This is the BoundaryOp of spec.md §4.1.
func (b BoundingBox) Wrap(s *State) {
	sides := b.Sides()
	for row := 0; row < 3; row++ {
		L := sides[row]
		col := s.Positions[row]
		for i, p := range col {
			col[i] = p - L*math.Floor(p/L)
		}
	}
}
