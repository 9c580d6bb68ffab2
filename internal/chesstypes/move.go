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
	"fmt"
	"strings"
)

// MoveType distinguishes the four kinds of move the board needs to special-
// case on make/unmake.
type MoveType uint8

const (
	Normal MoveType = iota
	Promotion
	EnPassant
	Castling
)

// IsValid reports whether t is one of the four defined move types.
func (t MoveType) IsValid() bool {
	return t <= Castling
}

func (t MoveType) String() string {
	switch t {
	case Normal:
		return "n"
	case Promotion:
		return "p"
	case EnPassant:
		return "e"
	case Castling:
		return "c"
	default:
		return "?"
	}
}

// Move is a 32-bit opaque move encoding: 16 bits of from/to/promotion/type,
// 16 bits of move-ordering sort value. Kept as a value type (not a pointer or
// struct) so move lists are cheap to copy and sort.
//
//	BITMAP 32-bit
//	|-value ------------------------|-Move -------------------------|
//	3 3 2 2 2 2 2 2 2 2 2 2 1 1 1 1 | 1 1 1 1 1 1 0 0 0 0 0 0 0 0 0 0
//	1 0 9 8 7 6 5 4 3 2 1 0 9 8 7 6 | 5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
//	--------------------------------|--------------------------------
//	                                |                     1 1 1 1 1 1  to
//	                                |         1 1 1 1 1 1              from
//	                                |     1 1                          promotion piece type (pt-Knight, 0-3)
//	                                | 1 1                              move type
//	1 1 1 1 1 1 1 1 1 1 1 1 1 1 1 1 |                                  move sort value
type Move uint32

// MoveNone is the zero value: no move.
const MoveNone Move = 0

const (
	fromShift     uint = 6
	promTypeShift uint = 12
	typeShift     uint = 14
	valueShift    uint = 16

	squareMask   Move = 0x3F
	toMask            = squareMask
	fromMask          = squareMask << fromShift
	promTypeMask Move = 3 << promTypeShift
	moveTypeMask Move = 3 << typeShift
	moveMask     Move = 0xFFFF
	valueMask    Move = 0xFFFF << valueShift
)

// CreateMove encodes a move with no sort value.
func CreateMove(from, to Square, t MoveType, promType PieceType) Move {
	if promType < Knight {
		promType = Knight
	}
	return Move(to) |
		Move(from)<<fromShift |
		Move(promType-Knight)<<promTypeShift |
		Move(t)<<typeShift
}

// CreateMoveValue encodes a move together with an ordering sort value.
func CreateMoveValue(from, to Square, t MoveType, promType PieceType, value Value) Move {
	if promType < Knight {
		promType = Knight
	}
	return Move(value-ValueNA)<<valueShift |
		Move(to) |
		Move(from)<<fromShift |
		Move(promType-Knight)<<promTypeShift |
		Move(t)<<typeShift
}

// MoveType returns the move's kind (Normal/Promotion/EnPassant/Castling).
func (m Move) MoveType() MoveType {
	return MoveType((m & moveTypeMask) >> typeShift)
}

// PromotionType returns the promotion piece type. Only meaningful when
// MoveType() == Promotion.
func (m Move) PromotionType() PieceType {
	return PieceType((m&promTypeMask)>>promTypeShift) + Knight
}

// To returns the destination square.
func (m Move) To() Square {
	return Square(m & toMask)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square((m & fromMask) >> fromShift)
}

// MoveOf strips the sort value, leaving only the move identity's low 16 bits.
func (m Move) MoveOf() Move {
	return m & moveMask
}

// ValueOf returns the ordering sort value encoded in the high 16 bits.
func (m Move) ValueOf() Value {
	return Value((m&valueMask)>>valueShift) + ValueNA
}

// WithValue returns a copy of m with its sort value replaced by v. MoveNone
// is left unchanged since there is nothing to attach a value to.
func (m Move) WithValue(v Value) Move {
	if m == MoveNone {
		return m
	}
	return m&moveMask | Move(v-ValueNA)<<valueShift
}

// IsValid reports whether m decodes to well-formed squares, promotion type
// and move type. MoveNone is never valid.
func (m Move) IsValid() bool {
	return m != MoveNone &&
		m.From().IsValid() &&
		m.To().IsValid() &&
		m.PromotionType().IsValid() &&
		m.MoveType().IsValid()
}

// String returns a UCI-compatible move string (e.g. "e2e4", "e7e8q").
func (m Move) String() string {
	if m == MoveNone {
		return "0000"
	}
	var b strings.Builder
	b.WriteString(m.From().String())
	b.WriteString(m.To().String())
	if m.MoveType() == Promotion {
		b.WriteString(strings.ToLower(m.PromotionType().String()))
	}
	return b.String()
}

// DebugString returns a verbose representation for logging/tests.
func (m Move) DebugString() string {
	if m == MoveNone {
		return "Move{none}"
	}
	return fmt.Sprintf("Move{%-5s type:%s prom:%s value:%d}",
		m.String(), m.MoveType(), m.PromotionType(), m.ValueOf())
}
