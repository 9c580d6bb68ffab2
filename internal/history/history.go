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

// Package history provides the move-ordering heuristics the search updates
// on beta cutoffs: per-ply killer moves and a butterfly history table.
// Both are advisory only and never affect legality.
package history

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/corvuschess/corvus/internal/chesstypes"
)

var out = message.NewPrinter(language.German)

const maxPly = MaxPly

// Table holds killer moves per ply and the butterfly history counter,
// grounded on the teacher's internal/history.History plus its movegen
// killer slots, here merged into one component per the search
// component table: the teacher keeps killers inside Movegen and history
// counts in a separate struct, both reset per search.
type Table struct {
	killers [maxPly][2]Move
	counter [2][64][64]int64
}

// New returns an empty Table, ready for a fresh search.
func New() *Table {
	return &Table{}
}

// Reset clears both tables; called once per search (no decay across
// searches or iterations within a search).
func (t *Table) Reset() {
	*t = Table{}
}

// Killers returns the two killer-move slots recorded for ply.
func (t *Table) Killers(ply int) (Move, Move) {
	if ply < 0 || ply >= maxPly {
		return MoveNone, MoveNone
	}
	return t.killers[ply][0], t.killers[ply][1]
}

// IsKiller reports whether m occupies either killer slot at ply.
func (t *Table) IsKiller(ply int, m Move) bool {
	if ply < 0 || ply >= maxPly {
		return false
	}
	mo := m.MoveOf()
	return mo == t.killers[ply][0] || mo == t.killers[ply][1]
}

// StoreKiller records m as a killer at ply per spec.md §4.2: if m differs
// from the current first slot, the first slot shifts down before m takes
// its place. Only called for non-capture, non-promotion cutoff moves.
func (t *Table) StoreKiller(ply int, m Move) {
	if ply < 0 || ply >= maxPly {
		return
	}
	mo := m.MoveOf()
	if t.killers[ply][0] == mo {
		return
	}
	t.killers[ply][1] = t.killers[ply][0]
	t.killers[ply][0] = mo
}

// HistoryScore returns the butterfly history count for a move by side.
func (t *Table) HistoryScore(side Color, m Move) int64 {
	return t.counter[side][m.From()][m.To()]
}

// AddHistory records a quiet-move cutoff at depth d: adds d*d to the
// side's from/to counter. No decay; the table resets per search.
func (t *Table) AddHistory(side Color, m Move, depth int) {
	t.counter[side][m.From()][m.To()] += int64(depth) * int64(depth)
}

func (t *Table) String() string {
	sb := strings.Builder{}
	for sf := Square(0); sf < 64; sf++ {
		for st := Square(0); st < 64; st++ {
			w := t.counter[White][sf][st]
			b := t.counter[Black][sf][st]
			if w == 0 && b == 0 {
				continue
			}
			sb.WriteString(out.Sprintf("Move=%s%s: white=%-7d black=%-7d\n", sf.String(), st.String(), w, b))
		}
	}
	return sb.String()
}
