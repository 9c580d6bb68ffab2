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

// Package evaluator implements material + piece-square-table static
// evaluation with a game-phase taper, satisfying search.Evaluator.
package evaluator

import (
	. "github.com/corvuschess/corvus/internal/chesstypes"
	"github.com/corvuschess/corvus/internal/config"
	"github.com/corvuschess/corvus/internal/search"
)

// gamePhaseMax is the sum of gamePhaseValue across a full set of starting
// non-pawn, non-king pieces for one side, times two sides: 4 knights+4
// bishops (1 each) + 4 rooks (2 each) + 2 queens (4 each) = 24.
const gamePhaseMax = 24

// Evaluator is a material + PST evaluator with midgame/endgame blending.
// It holds no mutable state across calls: every Evaluate is independent,
// satisfying spec.md §6.2's determinism/no-side-effects requirement.
type Evaluator struct{}

// New returns a ready-to-use Evaluator.
func New() *Evaluator {
	return &Evaluator{}
}

// Evaluate returns a centipawn score from the perspective of the side to
// move on b.
func (e *Evaluator) Evaluate(b search.Board) Value {
	var white, black Score
	gamePhase := 0

	for sq := Square(0); sq < 64; sq++ {
		pc := b.PieceAt(sq)
		if pc == PieceNone {
			continue
		}
		pt := pc.TypeOf()
		mid, end := pieceSquareValue(pt, pc.ColorOf(), sq)
		s := Score{Mid: int(pt.ValueOf()) + int(mid), End: int(pt.ValueOf()) + int(end)}
		if pc.ColorOf() == White {
			white.Add(s)
		} else {
			black.Add(s)
		}
		gamePhase += pt.GamePhaseValue()
	}

	if gamePhase > gamePhaseMax {
		gamePhase = gamePhaseMax
	}
	gamePhaseFactor := 1.0
	if config.Settings.Eval.UseTaper {
		gamePhaseFactor = float64(gamePhase) / float64(gamePhaseMax)
	}

	total := white
	total.Sub(black)
	score := total.Blend(gamePhaseFactor)

	if b.SideToMove() == Black {
		score = -score
	}
	return score
}
