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
	"github.com/corvuschess/corvus/internal/board"
	. "github.com/corvuschess/corvus/internal/chesstypes"
)

// Board is the position collaborator the search core requires (spec.md
// §6.1). *board.Position satisfies it; the search package never refers to
// the board package's concrete type except through this interface, so an
// alternative Board implementation (bitboards, chess960, a test double)
// can be substituted without touching search code.
type Board interface {
	ZobristKey() board.Key
	SideToMove() Color
	InCheck() bool
	IsCapture(m Move) bool
	CapturedPiece(m Move) Piece
	PieceAt(sq Square) Piece
	GenerateLegalMoves() []Move
	GeneratePseudoLegalMoves(mode board.GenMode) []Move
	DoMove(m Move)
	UndoMove()
	DoNullMove()
	UndoNullMove()
	WasLegalMove() bool
	HasInsufficientMaterial() bool
	IsDraw() bool
	IsRepetition(count int) bool
	HalfMoveClock() int
	FullMoveNumber() int
	PieceCount() int
	FEN() string
	MoveFromUCI(s string) (Move, error)
}

// Evaluator is the static evaluation collaborator (spec.md §6.2): must be
// deterministic and free of search-visible side effects.
type Evaluator interface {
	Evaluate(b Board) Value
}
