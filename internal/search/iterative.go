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
	"time"

	. "github.com/corvuschess/corvus/internal/chesstypes"
	"github.com/corvuschess/corvus/internal/util"
)

// Info is one completed iteration's progress report, handed to an
// InfoSink so the UCI front end can format "info depth ..." without the
// search package depending on stdio or UCI string formatting, per
// spec.md §9's info-callback design note.
type Info struct {
	Depth int
	Nodes uint64
	Time  time.Duration
	NPS   uint64
	Score Value
	Pv    []Move
}

// InfoSink receives progress during SearchBestMove; the UCI driver
// implements it to emit "info"/"bestmove" lines, and tests implement it to
// capture output without stdio.
type InfoSink interface {
	SendInfo(Info)
	SendBestMove(best, ponder Move)
}

type nopSink struct{}

func (nopSink) SendInfo(Info)               {}
func (nopSink) SendBestMove(best, ponder Move) {}

// SearchBestMove runs iterative deepening to find the best move in the
// current position, grounded on the teacher's internal/search/search.go
// iterativeDeepening but trimmed of opening-book, aspiration-window,
// MTD(f) and ponder handling per spec.md's non-goals. sink may be nil.
func (e *Engine) SearchBestMove(lim *Limits, sink InfoSink) *Result {
	if sink == nil {
		sink = nopSink{}
	}

	if !e.isRunning.TryAcquire(1) {
		e.log().Warning("SearchBestMove called while a search is already running")
		return &Result{BestMove: MoveNone}
	}
	defer e.isRunning.Release(1)

	e.hist.Reset()
	e.pv = newPVTable()
	e.stats = Statistics{}
	e.rootBestMove = MoveNone
	e.lastBestMove = MoveNone
	e.bestMoveChanges = 0

	e.tm = NewTimeManager(lim, e.board.SideToMove(), e.board.FullMoveNumber(), e.board.PieceCount())
	e.stopper.Reset(e.tm.HardDeadline())

	legalAtRoot := e.board.GenerateLegalMoves()
	if len(legalAtRoot) == 0 {
		sink.SendBestMove(MoveNone, MoveNone)
		value := ValueDraw
		if e.board.InCheck() {
			value = -ValueMate
		}
		return &Result{BestMove: MoveNone, BestValue: value}
	}

	maxDepth := MaxDepth
	if lim.Depth > 0 && lim.Depth < maxDepth {
		maxDepth = lim.Depth
	}

	result := &Result{BestMove: legalAtRoot[0]}

	for d := 1; d <= maxDepth; d++ {
		e.stats.CurrentIterationDepth = d
		score := e.negamax(d, -ValueInf, ValueInf, 0, false)

		if e.stopper.Stopped() && d > 1 {
			break
		}

		line := e.pv.line(0)
		if len(line) > 0 {
			best := line[0]
			if e.lastBestMove != MoveNone && best != e.lastBestMove {
				e.bestMoveChanges++
				e.tm.NoteBestMoveChange()
			}
			e.lastBestMove = best
			result.BestMove = best
			result.BestValue = score
			result.SearchDepth = d
			result.Pv = append([]Move(nil), line...)
			if len(line) > 1 {
				result.PonderMove = line[1]
			}
		}

		elapsed := e.tm.Elapsed()
		nps := util.Nps(e.stats.Nodes, elapsed)
		sink.SendInfo(Info{
			Depth: d,
			Nodes: e.stats.Nodes,
			Time:  elapsed,
			NPS:   nps,
			Score: result.BestValue,
			Pv:    result.Pv,
		})

		if lim.Nodes > 0 && e.stats.Nodes >= lim.Nodes {
			break
		}
		if (lim.TimeControl || lim.MoveTime > 0) && e.tm.ShouldStopBetweenIterations() {
			break
		}
		if e.stopper.Stopped() {
			break
		}
	}

	result.SearchTime = e.tm.Elapsed()
	sink.SendBestMove(result.BestMove, result.PonderMove)
	return result
}
