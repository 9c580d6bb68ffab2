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

package chesstypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakePiece(t *testing.T) {
	tests := []struct {
		color Color
		pt    PieceType
		want  string
	}{
		{White, Pawn, "P"},
		{White, King, "K"},
		{Black, Pawn, "p"},
		{Black, Queen, "q"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			p := MakePiece(tt.color, tt.pt)
			assert.Equal(t, tt.color, p.ColorOf())
			assert.Equal(t, tt.pt, p.TypeOf())
			assert.Equal(t, tt.want, p.String())
		})
	}
}

func TestPieceFromChar(t *testing.T) {
	assert.Equal(t, MakePiece(White, Rook), PieceFromChar("R"))
	assert.Equal(t, MakePiece(Black, Knight), PieceFromChar("n"))
	assert.Equal(t, PieceNone, PieceFromChar("x"))
	assert.Equal(t, PieceNone, PieceFromChar(""))
}

func TestPiece_ValueOf(t *testing.T) {
	assert.Equal(t, Value(100), MakePiece(White, Pawn).ValueOf())
	assert.Equal(t, Value(900), MakePiece(Black, Queen).ValueOf())
	assert.Equal(t, Value(0), MakePiece(White, King).ValueOf())
}

func TestPiece_IsValid(t *testing.T) {
	assert.False(t, PieceNone.IsValid())
	assert.True(t, MakePiece(White, Pawn).IsValid())
}
