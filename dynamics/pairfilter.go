// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dynamics implements the per-step physics pipeline: pair
// filtering (exhaustive and cell-list), force accumulation, and periodic
// boundary wrapping, per spec.md §4.2-4.5.
package dynamics

import (
	"github.com/bniehoff/lennard-jonesium-sub000/cells"
	"github.com/bniehoff/lennard-jonesium-sub000/state"
)

// PairFilter produces the finite set of ParticlePairs within the cutoff
// distance for a given State and box. ExhaustiveFilter and CellListFilter
// are interchangeable behind this contract (spec.md §4.3); the property
// test in t_pairfilter_test.go checks that they agree.
type PairFilter interface {
	Pairs(s *state.State, box state.BoundingBox, cutoff float64) []cells.ParticlePair
}

// ExhaustiveFilter iterates i<j over all particles and all 27 periodic
// images, emitting any pair whose separation falls inside the cutoff. It
// is the reference oracle used to validate CellListFilter, and is O(N^2)
// so only suitable for small test systems.
type ExhaustiveFilter struct{}

var imageOffsets = buildImageOffsets()

func buildImageOffsets() [27][3]int {
	var out [27][3]int
	n := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				out[n] = [3]int{dx, dy, dz}
				n++
			}
		}
	}
	return out
}

// Pairs implements PairFilter.
func (ExhaustiveFilter) Pairs(s *state.State, box state.BoundingBox, cutoff float64) []cells.ParticlePair {
	cutoff2 := cutoff * cutoff
	sides := box.Sides()
	var out []cells.ParticlePair
	for i := 0; i < s.N; i++ {
		pi := s.Position(i)
		for j := i + 1; j < s.N; j++ {
			pj := s.Position(j)
			for _, img := range imageOffsets {
				var r [3]float64
				for k := 0; k < 3; k++ {
					r[k] = pi[k] - pj[k] - float64(img[k])*sides[k]
				}
				s2 := r[0]*r[0] + r[1]*r[1] + r[2]*r[2]
				if s2 < cutoff2 {
					out = append(out, cells.ParticlePair{I: i, J: j, R: r})
				}
			}
		}
	}
	return out
}

// CellListFilter rebuilds a cells.CellListIndex and emits intra-cell pairs
// (i<j within each cell, no image) followed by cross-cell pairs from
// AdjacentPairs, each checked against the cutoff after subtracting
// image_offset*L. This mirrors the original cell-list pair-filter
// algorithm exactly: intra-cell pairs use i<j (a list paired with
// itself), while cross-cell pairs iterate the full cross product of the
// two lists, since when the grid has only one cell along an axis a cell
// can be its own adjacent neighbour through the periodic wrap.
type CellListFilter struct {
	index *cells.CellListIndex
}

// NewCellListFilter builds the index once; Pairs rebuilds its contents
// every call.
func NewCellListFilter(sides [3]float64, cutoff float64) (*CellListFilter, error) {
	idx, err := cells.New(sides, cutoff)
	if err != nil {
		return nil, err
	}
	return &CellListFilter{index: idx}, nil
}

// Pairs implements PairFilter.
func (f *CellListFilter) Pairs(s *state.State, box state.BoundingBox, cutoff float64) []cells.ParticlePair {
	cutoff2 := cutoff * cutoff
	sides := box.Sides()

	f.index.Clear()
	for i := 0; i < s.N; i++ {
		f.index.Insert(i, s.Position(i))
	}

	var out []cells.ParticlePair

	for _, cell := range f.index.Cells() {
		for a := 0; a < len(cell); a++ {
			for b := a + 1; b < len(cell); b++ {
				i, j := cell[a], cell[b]
				r := sub3(s.Position(i), s.Position(j))
				s2 := dot3(r, r)
				if s2 < cutoff2 {
					out = append(out, cells.ParticlePair{I: i, J: j, R: r})
				}
			}
		}
	}

	for _, adj := range f.index.AdjacentPairs() {
		var offset [3]float64
		for k := 0; k < 3; k++ {
			offset[k] = float64(adj.ImageOffset[k]) * sides[k]
		}
		for _, i := range adj.First {
			pi := s.Position(i)
			for _, j := range adj.Second {
				pj := s.Position(j)
				r := sub3(sub3(pi, pj), offset)
				s2 := dot3(r, r)
				if s2 < cutoff2 {
					out = append(out, cells.ParticlePair{I: i, J: j, R: r})
				}
			}
		}
	}

	return out
}

func sub3(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func dot3(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}
