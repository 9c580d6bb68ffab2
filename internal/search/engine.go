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

// Package search implements the engine's alpha-beta search core:
// iterative deepening over a negamax/quiescence pair, a transposition
// table, move ordering and time management. It depends on Board and
// Evaluator only through the interfaces in board.go, exactly the
// external-collaborator boundary spec.md §6 describes, grounded on the
// teacher's internal/search package but re-architected per spec.md §9 as
// a SearchContext-like value (Engine) constructed once per game and
// reused across searches rather than holding global engine state.
package search

import (
	"context"

	"golang.org/x/sync/semaphore"

	"github.com/corvuschess/corvus/internal/config"
	"github.com/corvuschess/corvus/internal/history"
	"github.com/corvuschess/corvus/internal/logging"
	"github.com/corvuschess/corvus/internal/tt"
)

// MaxDepth bounds iterative deepening so the pre-sized triangular PV table
// and ply-indexed killer table never need runtime growth.
const MaxDepth = 64

// Engine owns the Board for the duration of a search, the transposition
// table (the only state that survives across searches) and the per-search
// scratch state (PV, killers/history, statistics, stop controller).
type Engine struct {
	board Board
	eval  Evaluator
	table *tt.Table
	hist  *history.Table
	pv    *pvTable
	stats Statistics

	stopper *stopController
	tm      *TimeManager

	// isRunning gates "one search at a time", grounded on the teacher's
	// Search.isRunning: TryAcquire(1) to test/claim, Release(1) when done.
	isRunning *semaphore.Weighted

	rootBestMove    Move
	lastBestMove    Move
	bestMoveChanges int
}

// NewEngine wires a Board/Evaluator pair (the external collaborators) to a
// freshly sized transposition table. The table persists across searches;
// call ClearForNewGame on "ucinewgame".
func NewEngine(b Board, e Evaluator) *Engine {
	eng := &Engine{
		board: b,
		eval:  e,
		table: tt.New(config.Settings.Search.TTSizeMB),
		hist:  history.New(),
		pv:    newPVTable(),
	}
	eng.stopper = newStopController(&eng.stats.Nodes)
	eng.isRunning = semaphore.NewWeighted(1)
	return eng
}

// IsSearching reports whether a search is currently in progress, without
// blocking.
func (e *Engine) IsSearching() bool {
	if !e.isRunning.TryAcquire(1) {
		return true
	}
	e.isRunning.Release(1)
	return false
}

// WaitWhileSearching blocks until any in-progress search has finished.
func (e *Engine) WaitWhileSearching() {
	_ = e.isRunning.Acquire(context.Background(), 1)
	e.isRunning.Release(1)
}

// SetBoard rebinds the Engine to a different Board instance, used when the
// UCI "position" command replaces the root position outright rather than
// incrementally applying moves to the existing one.
func (e *Engine) SetBoard(b Board) {
	e.board = b
}

// ClearForNewGame resets the transposition table; called on "ucinewgame"
// per spec.md §6.3. Idempotent: two consecutive calls behave like one.
func (e *Engine) ClearForNewGame() {
	e.table.Clear()
}

// RequestStop sets the cooperative stop flag the protocol adapter uses on
// "stop" and "quit"; a new "go" does not call it.
func (e *Engine) RequestStop() {
	e.stopper.RequestStop()
}

// pollStop is the stop check every negamax/qsearch node performs at
// entry, plus (on the NodeCheckInterval cadence) the hard-deadline test.
func (e *Engine) pollStop() bool {
	if e.stats.Nodes&(config.Settings.Search.NodeCheckInterval-1) == 0 {
		return e.stopper.Poll()
	}
	return e.stopper.Stopped()
}

func (e *Engine) log() *logging.Logger {
	return logging.GetSearchLog()
}
