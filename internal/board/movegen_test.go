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

package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/corvuschess/corvus/internal/chesstypes"
)

func TestGenerateLegalMoves_StartposHasTwentyMoves(t *testing.T) {
	p := NewPosition()
	moves := p.GenerateLegalMoves()
	assert.Len(t, moves, 20)
}

func perft(p *Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range p.GenerateLegalMoves() {
		p.DoMove(m)
		nodes += perft(p, depth-1)
		p.UndoMove()
	}
	return nodes
}

func TestPerft_StartposDepthTwoAndThree(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, uint64(400), perft(p, 2))
	assert.Equal(t, uint64(8902), perft(p, 3))
}

func TestGenerateLegalMoves_PinnedPieceCannotMove(t *testing.T) {
	// Black rook on e6 is pinned to the king by the white rook on e1; it may
	// only move along the e-file, never sideways.
	p, err := NewPositionFromFEN("4k3/8/4r3/8/8/8/8/4R2K b - - 0 1")
	assert.NoError(t, err)

	for _, m := range p.GenerateLegalMoves() {
		if m.From() != SquareOf(FileE, Rank6) {
			continue
		}
		assert.Equal(t, FileE, m.To().File(), "pinned rook must stay on the e-file, got %s", m.String())
	}
}

func TestGenerateLegalMoves_KingInCheckMustAddressIt(t *testing.T) {
	p, err := NewPositionFromFEN("4k3/8/8/8/8/8/8/4R2K b - - 0 1")
	assert.NoError(t, err)
	assert.True(t, p.InCheck())

	for _, m := range p.GenerateLegalMoves() {
		p.DoMove(m)
		assert.True(t, p.WasLegalMove(), "move %s left king in check", m.String())
		p.UndoMove()
	}
}

func TestGenerateLegalMoves_CastlingBlockedWhenSquaresAttacked(t *testing.T) {
	// Black rook on f8 covers f1, so white may not castle kingside through
	// an attacked square even though the squares themselves are empty.
	p, err := NewPositionFromFEN("5r1k/8/8/8/8/8/8/4K2R w K - 0 1")
	assert.NoError(t, err)

	for _, m := range p.GenerateLegalMoves() {
		assert.NotEqual(t, Castling, m.MoveType())
	}
}

func TestGeneratePseudoLegalMoves_NonQuietIsCapturesAndPromotionsOnly(t *testing.T) {
	p, err := NewPositionFromFEN("4k3/7P/8/3p4/4P3/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)

	moves := p.GeneratePseudoLegalMoves(GenNonQuiet)
	assert.NotEmpty(t, moves)
	for _, m := range moves {
		isTactical := p.IsCapture(m) || m.MoveType() == Promotion
		assert.True(t, isTactical, "non-quiet move %s must be a capture or promotion", m.String())
	}
}

func TestIsCapture_DetectsEnPassant(t *testing.T) {
	p, err := NewPositionFromFEN("4k3/8/8/4Pp2/8/8/8/4K3 w - f6 0 1")
	assert.NoError(t, err)

	ep := CreateMove(SquareOf(FileE, Rank5), SquareOf(FileF, Rank6), EnPassant, PtNone)
	assert.True(t, p.IsCapture(ep))
	assert.Equal(t, MakePiece(Black, Pawn), p.CapturedPiece(ep))
}

func TestGivesCheck(t *testing.T) {
	p, err := NewPositionFromFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	assert.NoError(t, err)

	check := CreateMove(SqA1, SquareOf(FileA, Rank8), Normal, PtNone)
	assert.True(t, p.GivesCheck(check))

	noCheck := CreateMove(SqA1, SquareOf(FileA, Rank2), Normal, PtNone)
	assert.False(t, p.GivesCheck(noCheck))
}
