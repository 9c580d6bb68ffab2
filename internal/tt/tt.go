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

// Package tt implements the search core's transposition table: a
// fixed-capacity, always-replace hash table keyed by Zobrist hash, with
// mate scores renormalized to the probing ply.
//
// This is a deliberate redesign relative to the teacher's
// internal/transpositiontable package, which ages entries and compares the
// raw stored score against alpha/beta instead of the ply-adjusted one — both
// called out in spec.md's Design Notes as behavior not to reproduce.
package tt

import (
	. "github.com/corvuschess/corvus/internal/chesstypes"
)

// ResultKind distinguishes the three probe outcomes spec.md §4.1 defines.
type ResultKind uint8

const (
	Miss ResultKind = iota
	MoveOnly
	Cutoff
)

// ProbeResult is the outcome of Probe: exactly one of Miss, MoveOnly{Move}
// or Cutoff{Score, Move, Bound}.
type ProbeResult struct {
	Kind  ResultKind
	Score Value
	Move  Move
	Bound Bound
}

// Table is a fixed-size, always-replace transposition table.
type Table struct {
	entries []entry
	mask    uint64
}

// New allocates a table sized to approximately sizeMB megabytes, rounded
// down to the nearest power of two number of slots so that index = key &
// mask needs no modulo.
func New(sizeMB int) *Table {
	entrySize := 16
	slots := (sizeMB * 1024 * 1024) / entrySize
	if slots < 1024 {
		slots = 1024
	}
	pow := uint64(1)
	for pow*2 <= uint64(slots) {
		pow *= 2
	}
	t := &Table{
		entries: make([]entry, pow),
		mask:    pow - 1,
	}
	return t
}

func (t *Table) index(key Key) uint64 {
	return uint64(key) & t.mask
}

// Clear resets every slot to the sentinel zero value (key 0, MoveNone,
// depth 0) — a real position can legitimately hash to 0 with negligible
// probability, which Probe's key-equality check alone tolerates: a
// spurious hit on a stale sentinel only degrades move ordering, it can
// never corrupt a search result, since Probe re-validates depth/bound
// before trusting the stored score.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = entry{}
	}
}

// Hashfull estimates per-mille table occupancy by sampling the first 1000
// slots, the way UCI's "info hashfull" expects.
func (t *Table) Hashfull() int {
	n := 1000
	if uint64(n) > uint64(len(t.entries)) {
		n = len(t.entries)
	}
	used := 0
	for i := 0; i < n; i++ {
		if t.entries[i].key != 0 {
			used++
		}
	}
	if n == 0 {
		return 0
	}
	return used * 1000 / n
}

func adjustFromStorage(stored Value, ply int) Value {
	abs := stored
	if abs < 0 {
		abs = -abs
	}
	if abs < ValueMateThreshold {
		return stored
	}
	if stored > 0 {
		return stored - Value(ply)
	}
	return stored + Value(ply)
}

func adjustForStorage(score Value, ply int) Value {
	abs := score
	if abs < 0 {
		abs = -abs
	}
	if abs < ValueMateThreshold {
		return score
	}
	if score > 0 {
		return score + Value(ply)
	}
	return score - Value(ply)
}

// Probe looks up key and applies spec.md §4.1's cutoff test: a Cutoff is
// returned only when the stored depth covers the requested depth and the
// ply-adjusted score actually proves a bound against alpha/beta. A
// shallower or inconclusive hit still returns MoveOnly so move ordering can
// use the stored best move.
func (t *Table) Probe(key Key, depth int, alpha, beta Value, ply int) ProbeResult {
	e := &t.entries[t.index(key)]
	if e.key != key {
		return ProbeResult{Kind: Miss}
	}

	adj := adjustFromStorage(e.Value(), ply)

	if e.Depth() >= depth {
		switch e.Bound() {
		case BoundExact:
			return ProbeResult{Kind: Cutoff, Score: adj, Move: e.Move(), Bound: BoundExact}
		case BoundLower:
			if adj >= beta {
				return ProbeResult{Kind: Cutoff, Score: adj, Move: e.Move(), Bound: BoundLower}
			}
		case BoundUpper:
			if adj <= alpha {
				return ProbeResult{Kind: Cutoff, Score: adj, Move: e.Move(), Bound: BoundUpper}
			}
		}
	}

	if e.Move() != MoveNone {
		return ProbeResult{Kind: MoveOnly, Move: e.Move()}
	}
	return ProbeResult{Kind: Miss}
}

// Store writes an entry at key's slot unconditionally (always-replace),
// normalizing mate scores to be root-relative before writing.
func (t *Table) Store(key Key, depth int, score Value, bound Bound, move Move, ply int) {
	if depth < 0 {
		depth = 0
	}
	if depth > 255 {
		depth = 255
	}
	e := &t.entries[t.index(key)]
	*e = entry{
		key:   key,
		move:  uint16(move.MoveOf()),
		value: int16(adjustForStorage(score, ply)),
		depth: uint8(depth),
		bound: bound,
	}
}
