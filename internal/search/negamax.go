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
	"github.com/corvuschess/corvus/internal/config"
	"github.com/corvuschess/corvus/internal/tt"
)

// negamax is the main alpha-beta recursion, grounded on the teacher's
// internal/search/alphabeta.go:search but trimmed to spec.md §4.5's
// required core plus the one optional extra (null-move pruning): no
// LMR/LMP/futility/IID/aspiration, all explicit non-goals. isNull marks a
// null-move child, forbidding a second consecutive null move.
func (e *Engine) negamax(depth int, alpha, beta Value, ply int, isNull bool) Value {
	if e.pollStop() {
		return 0
	}

	e.pv.clear(ply)
	e.stats.Nodes++

	if e.board.HasInsufficientMaterial() {
		return ValueDraw
	}

	if depth <= 0 {
		if !config.Settings.Search.UseQuiescence {
			return e.eval.Evaluate(e.board)
		}
		return e.qsearch(alpha, beta, ply)
	}

	if ply > 0 && (e.board.IsRepetition(2) || e.board.IsDraw()) {
		return ValueDraw
	}

	originalAlpha := alpha
	key := e.board.ZobristKey()

	probe := e.table.Probe(key, depth, alpha, beta, ply)
	ttMove := MoveNone
	if probe.Kind == tt.Cutoff {
		if ply > 0 {
			return probe.Score
		}
		ttMove = probe.Move
	} else if probe.Kind == tt.MoveOnly {
		ttMove = probe.Move
	}

	if config.Settings.Search.UseNullMove && !isNull && depth > config.Settings.Search.NullMoveMinDepth &&
		!e.board.InCheck() && ply > 0 && e.hasNonPawnMaterial() {
		r := config.Settings.Search.NullMoveReduction
		e.board.DoNullMove()
		score := -e.negamax(depth-r, -beta, -beta+1, ply+1, true)
		e.board.UndoNullMove()
		if !e.pollStop() && score >= beta {
			return beta
		}
	}

	moves := e.board.GenerateLegalMoves()
	if len(moves) == 0 {
		if e.board.InCheck() {
			return -ValueMate + Value(ply)
		}
		return ValueDraw
	}

	orderMoves(e.board, moves, ttMove, ply, e.hist)

	bestScore := ValueNA
	bestMove := MoveNone

	for _, m := range moves {
		e.board.DoMove(m)
		score := -e.negamax(depth-1, -beta, -alpha, ply+1, false)
		e.board.UndoMove()

		if e.pollStop() {
			return 0
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
			e.pv.update(ply, m.MoveOf())
		}
		if bestScore > alpha {
			alpha = bestScore
		}
		if alpha >= beta {
			if !e.board.IsCapture(m) && m.MoveType() != Promotion {
				if config.Settings.Search.UseKillers {
					e.hist.StoreKiller(ply, m)
				}
				if config.Settings.Search.UseHistory {
					e.hist.AddHistory(e.board.SideToMove(), m, depth)
				}
			}
			e.table.Store(key, depth, bestScore, BoundLower, bestMove.MoveOf(), ply)
			return bestScore
		}
	}

	var bound Bound
	switch {
	case bestScore <= originalAlpha:
		bound = BoundUpper
	default:
		bound = BoundExact
	}
	e.table.Store(key, depth, bestScore, bound, bestMove.MoveOf(), ply)
	return bestScore
}

// hasNonPawnMaterial guards null-move pruning against zugzwang-prone
// king+pawn endings, per spec.md §4.5's "non-pawn material" condition.
func (e *Engine) hasNonPawnMaterial() bool {
	for sq := Square(0); sq < 64; sq++ {
		p := e.board.PieceAt(sq)
		if p == PieceNone {
			continue
		}
		if p.ColorOf() != e.board.SideToMove() {
			continue
		}
		pt := p.TypeOf()
		if pt != Pawn && pt != King {
			return true
		}
	}
	return false
}
