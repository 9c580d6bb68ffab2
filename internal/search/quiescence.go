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

// qsearch extends tactical sequences at the search horizon to avoid the
// horizon effect, grounded on the teacher's internal/search/alphabeta.go
// qsearch but trimmed of its delta-pruning and QFP heuristics, which
// spec.md's §4.4 contract does not call for.
func (s *Engine) qsearch(alpha, beta Value, ply int) Value {
	if s.pollStop() {
		return 0
	}
	s.stats.Nodes++
	s.stats.QNodes++

	if s.board.HasInsufficientMaterial() || s.board.IsDraw() {
		return ValueDraw
	}
	legal := s.board.GenerateLegalMoves()
	if len(legal) == 0 {
		if s.board.InCheck() {
			return -ValueMate + Value(ply)
		}
		return ValueDraw
	}

	standPat := s.eval.Evaluate(s.board)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	tactical := make([]Move, 0, len(legal))
	for _, m := range legal {
		if s.board.IsCapture(m) || m.MoveType() == Promotion {
			tactical = append(tactical, m)
		}
	}
	orderQuiescenceMoves(s.board, tactical)

	for _, m := range tactical {
		s.board.DoMove(m)
		score := -s.qsearch(-beta, -alpha, ply+1)
		s.board.UndoMove()

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}
