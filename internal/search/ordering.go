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
	"sort"

	. "github.com/corvuschess/corvus/internal/chesstypes"
	"github.com/corvuschess/corvus/internal/config"
	"github.com/corvuschess/corvus/internal/history"
)

const (
	ttMoveBonus     = 10_000_000
	captureBonus    = 3_000
	castlingBonus   = 300
	primaryKiller   = 500
	secondaryKiller = 400
)

// orderMoves scores and stably sorts moves in place per spec.md §4.3. The
// TT move (if present among moves) always sorts first; captures use
// MVV-LVA, promotions add the promoted piece's value, and quiet moves rank
// by killer/history, with castling adding castlingBonus. ttMove may be
// MoveNone.
//
// Scores are accumulated in plain int rather than in Move's packed
// sort-value field: history counts alone (d*d summed over a whole search)
// easily exceed that field's 16-bit range, so reusing it here would
// silently truncate and corrupt ordering.
func orderMoves(b Board, moves []Move, ttMove Move, ply int, h *history.Table) {
	ttMove = ttMove.MoveOf()
	side := b.SideToMove()
	scores := make([]int, len(moves))
	for i, m := range moves {
		scores[i] = scoreMove(b, m, ttMove, ply, h, side)
	}
	sortByScore(moves, scores)
}

func scoreMove(b Board, m Move, ttMove Move, ply int, h *history.Table, side Color) int {
	bare := m.MoveOf()
	if bare == ttMove {
		return ttMoveBonus
	}

	score := 0

	isCapture := b.IsCapture(m)
	if isCapture {
		victim := b.CapturedPiece(m)
		attacker := b.PieceAt(m.From())
		score += captureBonus + int(victim.ValueOf())*100 - int(attacker.ValueOf())
	}

	if m.MoveType() == Promotion {
		score += int(m.PromotionType().ValueOf())
	}
	if m.MoveType() == Castling {
		score += castlingBonus
	}

	if !isCapture && m.MoveType() != Promotion {
		if config.Settings.Search.UseKillers {
			k0, k1 := h.Killers(ply)
			switch bare {
			case k0:
				score += primaryKiller
			case k1:
				score += secondaryKiller
			}
		}
		if config.Settings.Search.UseHistory {
			score += int(h.HistoryScore(side, m))
		}
	}

	return score
}

// orderQuiescenceMoves restricts ordering to MVV-LVA plus promotion bonus,
// per spec.md §4.3: killers and history never apply in quiescence.
func orderQuiescenceMoves(b Board, moves []Move) {
	scores := make([]int, len(moves))
	for i, m := range moves {
		score := 0
		if b.IsCapture(m) {
			victim := b.CapturedPiece(m)
			attacker := b.PieceAt(m.From())
			score += captureBonus + int(victim.ValueOf())*100 - int(attacker.ValueOf())
		}
		if m.MoveType() == Promotion {
			score += int(m.PromotionType().ValueOf())
		}
		scores[i] = score
	}
	sortByScore(moves, scores)
}

// sortByScore stably sorts moves descending by the parallel scores slice,
// preserving move-generator order among ties per spec.md §4.3.
func sortByScore(moves []Move, scores []int) {
	idx := make([]int, len(moves))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})
	sorted := make([]Move, len(moves))
	for i, j := range idx {
		sorted[i] = moves[j]
	}
	copy(moves, sorted)
}
