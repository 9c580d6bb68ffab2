//
// Corvus - a UCI chess engine search core written in Go
//
// MIT License
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
//

package search

import (
	. "github.com/corvuschess/corvus/internal/chesstypes"
)

// pvTable is a triangular principal-variation table, one line per ply,
// each line up to MaxPly-ply long. This is a deliberate divergence from
// the teacher's getPVLine, which walks the transposition table after the
// fact to reconstruct a PV — a reconstruction that can silently break
// when an always-replace TT (see internal/tt) has since overwritten an
// entry on the line. Maintaining the PV directly during search, the way
// savePV does for a single ply, removes that failure mode entirely.
type pvTable struct {
	lines [MaxPly][]Move
}

func newPVTable() *pvTable {
	t := &pvTable{}
	for i := range t.lines {
		t.lines[i] = make([]Move, 0, MaxPly-i)
	}
	return t
}

// update records move as the best move at ply and appends the
// continuation found at ply+1, mirroring the teacher's savePV.
func (t *pvTable) update(ply int, move Move) {
	line := t.lines[ply][:0]
	line = append(line, move)
	if ply+1 < MaxPly {
		line = append(line, t.lines[ply+1]...)
	}
	t.lines[ply] = line
}

// clear empties the PV line at ply; called at node entry before the move
// loop so a node that fails low leaves no stale continuation behind.
func (t *pvTable) clear(ply int) {
	t.lines[ply] = t.lines[ply][:0]
}

// line returns the PV starting at ply.
func (t *pvTable) line(ply int) []Move {
	return t.lines[ply]
}
