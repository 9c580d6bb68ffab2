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

// PieceType identifies a kind of chess piece independent of color.
type PieceType uint8

const (
	PtNone PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	PtLength
)

// IsValid reports whether pt is a real piece type (not PtNone).
func (pt PieceType) IsValid() bool {
	return pt > PtNone && pt < PtLength
}

// pieceTypeValue holds the static material value of each piece type in
// centipawns, per spec.md's §4.3 ordering table.
var pieceTypeValue = [PtLength]Value{0, 100, 300, 320, 500, 900, 0}

// ValueOf returns the static material value of the piece type.
func (pt PieceType) ValueOf() Value {
	return pieceTypeValue[pt]
}

// gamePhaseValue weighs how much each piece type contributes to the
// evaluator's midgame/endgame taper (pawns and king contribute nothing).
var gamePhaseValue = [PtLength]int{0, 0, 1, 1, 2, 4, 0}

// GamePhaseValue returns pt's weight toward the game-phase taper.
func (pt PieceType) GamePhaseValue() int {
	return gamePhaseValue[pt]
}

var pieceTypeToChar = "-PNBRQK"

func (pt PieceType) String() string {
	if !pt.IsValid() {
		return "-"
	}
	return string(pieceTypeToChar[pt])
}

// Piece is a piece type bound to a color, packed as (color<<3)|type so
// PieceNone == 0 and the zero value of a mailbox cell is "empty".
type Piece int8

const PieceNone Piece = 0

// MakePiece builds the piece for the given color and piece type.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece((int8(c) << 3) + int8(pt))
}

// ColorOf returns the color of the piece.
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// TypeOf returns the piece type of the piece.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 0b0111)
}

// IsValid reports whether p is an occupied, well-formed piece.
func (p Piece) IsValid() bool {
	return p != PieceNone && p.TypeOf().IsValid()
}

// ValueOf returns the static material value of the piece.
func (p Piece) ValueOf() Value {
	return p.TypeOf().ValueOf()
}

var pieceToChar = " PNBRQK  pnbrqk"

// String returns a FEN-style single character for the piece: uppercase for
// white, lowercase for black, "-" for an empty square.
func (p Piece) String() string {
	if p == PieceNone {
		return "-"
	}
	if int(p) < 0 || int(p) >= len(pieceToChar) {
		return "-"
	}
	return string(pieceToChar[p])
}

// PieceFromChar returns the Piece for a single FEN piece letter, or
// PieceNone if s is not exactly one recognized letter.
func PieceFromChar(s string) Piece {
	if len(s) != 1 {
		return PieceNone
	}
	switch s[0] {
	case 'P':
		return MakePiece(White, Pawn)
	case 'N':
		return MakePiece(White, Knight)
	case 'B':
		return MakePiece(White, Bishop)
	case 'R':
		return MakePiece(White, Rook)
	case 'Q':
		return MakePiece(White, Queen)
	case 'K':
		return MakePiece(White, King)
	case 'p':
		return MakePiece(Black, Pawn)
	case 'n':
		return MakePiece(Black, Knight)
	case 'b':
		return MakePiece(Black, Bishop)
	case 'r':
		return MakePiece(Black, Rook)
	case 'q':
		return MakePiece(Black, Queen)
	case 'k':
		return MakePiece(Black, King)
	default:
		return PieceNone
	}
}
