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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvuschess/corvus/internal/board"
	. "github.com/corvuschess/corvus/internal/chesstypes"
	"github.com/corvuschess/corvus/internal/history"
)

func TestOrderMoves_TTMoveSortsFirst(t *testing.T) {
	pos := board.NewPosition()
	moves := pos.GenerateLegalMoves()
	assert.NotEmpty(t, moves)

	tt := moves[len(moves)-1]
	h := history.New()
	orderMoves(pos, moves, tt, 0, h)

	assert.Equal(t, tt.MoveOf(), moves[0].MoveOf())
}

func TestOrderMoves_CapturesRankAboveQuiets(t *testing.T) {
	pos, err := board.NewPositionFromFEN("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)

	moves := pos.GenerateLegalMoves()
	h := history.New()
	orderMoves(pos, moves, MoveNone, 0, h)

	assert.True(t, pos.IsCapture(moves[0]), "expected the capture to sort first, got %s", moves[0].String())
}

func TestOrderMoves_KillerOutranksPlainQuiet(t *testing.T) {
	pos := board.NewPosition()
	moves := pos.GenerateLegalMoves()
	assert.NotEmpty(t, moves)

	var killer Move
	for _, m := range moves {
		if !pos.IsCapture(m) {
			killer = m
			break
		}
	}
	assert.NotEqual(t, MoveNone, killer)

	h := history.New()
	h.StoreKiller(0, killer)
	orderMoves(pos, moves, MoveNone, 0, h)

	assert.Equal(t, killer.MoveOf(), moves[0].MoveOf())
}

func TestOrderQuiescenceMoves_IgnoresKillersAndHistory(t *testing.T) {
	pos, err := board.NewPositionFromFEN("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)

	legal := pos.GenerateLegalMoves()
	tactical := make([]Move, 0, len(legal))
	for _, m := range legal {
		if pos.IsCapture(m) {
			tactical = append(tactical, m)
		}
	}
	assert.NotEmpty(t, tactical)
	orderQuiescenceMoves(pos, tactical)
	assert.True(t, pos.IsCapture(tactical[0]))
}
