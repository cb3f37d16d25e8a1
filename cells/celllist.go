// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cells implements the cell-list spatial index: a 3-D grid of
// particle-index lists that bounds pairwise interaction search to the
// same cell and its adjacent cells, per spec.md §4.2.
package cells

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// ParticlePair is an ephemeral filtered pair (i, j, r_ij) with
// r_ij = positions[i] - positions[j] - image*L, produced by a
// dynamics.PairFilter. Equality is symmetric: swapping (i,j) and negating
// R gives the same logical pair.
type ParticlePair struct {
	I, J int
	R    [3]float64
}

// adjacentDirections is the 13 non-redundant neighbour directions of
// spec.md §4.2: every unordered pair of distinct adjacent cells (including
// wrap neighbours) is visited exactly once by iterating these directions
// from every cell.
var adjacentDirections = [13][3]int{
	{1, 1, 1}, {1, 1, 0}, {1, 1, -1},
	{1, 0, 1}, {1, 0, 0}, {1, 0, -1},
	{1, -1, 1}, {1, -1, 0}, {1, -1, -1},
	{0, 1, 1}, {0, 1, 0}, {0, 1, -1},
	{0, 0, 1},
}

// AdjacentCells is a triple of neighbouring cell index lists plus the
// lattice image offset (in units of box length, each component 0 or ±1)
// that must be subtracted from a first-list minus second-list separation.
type AdjacentCells struct {
	First, Second []int
	ImageOffset   [3]int
}

// CellListIndex is the mutable spatial index. It is rebuilt from scratch
// each time a pair iteration is requested (spec.md §3 lifecycle).
type CellListIndex struct {
	Shape  [3]int
	sides  [3]float64
	grid   [][][][]int // [nx][ny][nz] -> particle indices
}

// New validates the cell shape (n_k = floor(L_k/rc) must be >= 1, i.e.
// L_k >= rc) and allocates an empty grid. A cutoff that does not fit in
// the box on any axis is a fatal configuration error (spec.md §4.2, §7).
func New(sides [3]float64, cutoff float64) (*CellListIndex, error) {
	if cutoff <= 0 {
		return nil, chk.Err("cutoff distance must be positive, got %v", cutoff)
	}
	var shape [3]int
	for k, L := range sides {
		if L < cutoff {
			return nil, chk.Err("box side %v is smaller than cutoff distance %v on axis %d", L, cutoff, k)
		}
		n := int(math.Floor(L / cutoff))
		shape[k] = int(utl.Max(float64(n), 1))
	}
	idx := &CellListIndex{Shape: shape, sides: sides}
	idx.grid = make([][][][]int, shape[0])
	for x := range idx.grid {
		idx.grid[x] = make([][][]int, shape[1])
		for y := range idx.grid[x] {
			idx.grid[x][y] = make([][]int, shape[2])
		}
	}
	return idx, nil
}

// Clear empties every cell's particle-index list without reallocating the
// grid itself.
func (idx *CellListIndex) Clear() {
	for x := range idx.grid {
		for y := range idx.grid[x] {
			for z := range idx.grid[x][y] {
				idx.grid[x][y][z] = idx.grid[x][y][z][:0]
			}
		}
	}
}

// Insert computes cell indices c_k = floor(p_k*n_k/L_k), clamped into
// [0, n_k), and appends particle i to that cell's list.
func (idx *CellListIndex) Insert(i int, position [3]float64) {
	c := idx.cellOf(position)
	idx.grid[c[0]][c[1]][c[2]] = append(idx.grid[c[0]][c[1]][c[2]], i)
}

func (idx *CellListIndex) cellOf(position [3]float64) [3]int {
	var c [3]int
	for k := 0; k < 3; k++ {
		n := idx.Shape[k]
		v := int(math.Floor(position[k] * float64(n) / idx.sides[k]))
		if v < 0 {
			v = 0
		}
		if v >= n {
			v = n - 1
		}
		c[k] = v
	}
	return c
}

// Cells yields each cell's ordered particle-index list exactly once.
func (idx *CellListIndex) Cells() [][]int {
	var out [][]int
	for x := range idx.grid {
		for y := range idx.grid[x] {
			for z := range idx.grid[x][y] {
				out = append(out, idx.grid[x][y][z])
			}
		}
	}
	return out
}

// AdjacentPairs yields, for every cell and every one of the 13
// non-redundant neighbour directions, the pair of index lists and the
// image offset relating them. See spec.md §4.2.
func (idx *CellListIndex) AdjacentPairs() []AdjacentCells {
	var out []AdjacentCells
	nx, ny, nz := idx.Shape[0], idx.Shape[1], idx.Shape[2]
	for x := 0; x < nx; x++ {
		for y := 0; y < ny; y++ {
			for z := 0; z < nz; z++ {
				first := idx.grid[x][y][z]
				for _, d := range adjacentDirections {
					nxp, ix := wrap(x+d[0], nx)
					nyp, iy := wrap(y+d[1], ny)
					nzp, iz := wrap(z+d[2], nz)
					out = append(out, AdjacentCells{
						First:       first,
						Second:      idx.grid[nxp][nyp][nzp],
						ImageOffset: [3]int{ix, iy, iz},
					})
				}
			}
		}
	}
	return out
}

// wrap reduces raw into [0, n) and returns the number of box-lengths (in
// units of L, not cells) the neighbour is shifted: -1 if raw underflowed,
// +1 if it overflowed, 0 otherwise.
func wrap(raw, n int) (wrapped, image int) {
	if raw < 0 {
		return raw + n, -1
	}
	if raw >= n {
		return raw - n, 1
	}
	return raw, 0
}
