// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cells

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_cells01(tst *testing.T) {

	chk.PrintTitle("cells01. shape and rejection of too-small box")

	sides := [3]float64{3, 3, 3}
	idx, err := New(sides, 1.0)
	if err != nil {
		tst.Errorf("New failed: %v", err)
		return
	}
	chk.IntAssert(idx.Shape[0], 3)
	chk.IntAssert(idx.Shape[1], 3)
	chk.IntAssert(idx.Shape[2], 3)

	if _, err := New([3]float64{0.5, 3, 3}, 1.0); err == nil {
		tst.Errorf("expected configuration error for box side smaller than cutoff")
	}
}

func Test_cells02(tst *testing.T) {

	chk.PrintTitle("cells02. insert and recover particles from cells")

	idx, err := New([3]float64{4, 4, 4}, 1.0)
	if err != nil {
		tst.Errorf("New failed: %v", err)
		return
	}
	idx.Insert(0, [3]float64{0.1, 0.1, 0.1})
	idx.Insert(1, [3]float64{0.2, 0.2, 0.2})
	idx.Insert(2, [3]float64{3.9, 3.9, 3.9})

	total := 0
	for _, cell := range idx.Cells() {
		total += len(cell)
	}
	chk.IntAssert(total, 3)
}

func Test_cells03(tst *testing.T) {

	chk.PrintTitle("cells03. adjacent pairs cover every direction exactly once")

	idx, err := New([3]float64{6, 6, 6}, 1.0)
	if err != nil {
		tst.Errorf("New failed: %v", err)
		return
	}
	pairs := idx.AdjacentPairs()
	// 6x6x6 cells, 13 directions each
	chk.IntAssert(len(pairs), 6*6*6*13)
}

func Test_cells04(tst *testing.T) {

	chk.PrintTitle("cells04. wrap helper reports correct image offsets")

	if w, img := wrap(-1, 4); w != 3 || img != -1 {
		tst.Errorf("wrap(-1,4) = %d,%d; want 3,-1", w, img)
	}
	if w, img := wrap(4, 4); w != 0 || img != 1 {
		tst.Errorf("wrap(4,4) = %d,%d; want 0,1", w, img)
	}
	if w, img := wrap(2, 4); w != 2 || img != 0 {
		tst.Errorf("wrap(2,4) = %d,%d; want 2,0", w, img)
	}
}
