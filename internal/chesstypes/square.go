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

// File is a file a-h, 0-indexed.
type File int8

// Rank is a rank 1-8, 0-indexed.
type Rank int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
	FileNone
)

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	RankNone
)

func (f File) String() string {
	if f < FileA || f > FileH {
		return "-"
	}
	return string(rune('a' + f))
}

func (r Rank) String() string {
	if r < Rank1 || r > Rank8 {
		return "-"
	}
	return string(rune('1' + r))
}

// Square is a mailbox index 0..63, A1=0, H8=63 (a1, b1, ... h1, a2, ...).
type Square int8

// SqNone is the distinguished invalid/empty square.
const SqNone Square = 64

// SquareOf builds a square from file and rank.
func SquareOf(f File, r Rank) Square {
	return Square(int8(r)*8 + int8(f))
}

// Named squares used by castling, en passant and test code. Computed rather
// than hand-enumerated to avoid an error-prone 64-entry const block.
var (
	SqA1 = SquareOf(FileA, Rank1)
	SqB1 = SquareOf(FileB, Rank1)
	SqE1 = SquareOf(FileE, Rank1)
	SqF1 = SquareOf(FileF, Rank1)
	SqG1 = SquareOf(FileG, Rank1)
	SqH1 = SquareOf(FileH, Rank1)
	SqC1 = SquareOf(FileC, Rank1)
	SqD1 = SquareOf(FileD, Rank1)
	SqA8 = SquareOf(FileA, Rank8)
	SqB8 = SquareOf(FileB, Rank8)
	SqE8 = SquareOf(FileE, Rank8)
	SqF8 = SquareOf(FileF, Rank8)
	SqG8 = SquareOf(FileG, Rank8)
	SqH8 = SquareOf(FileH, Rank8)
	SqC8 = SquareOf(FileC, Rank8)
	SqD8 = SquareOf(FileD, Rank8)
)

// File returns the file of the square.
func (s Square) File() File {
	return File(int8(s) % 8)
}

// Rank returns the rank of the square.
func (s Square) Rank() Rank {
	return Rank(int8(s) / 8)
}

// IsValid reports whether s is an on-board square.
func (s Square) IsValid() bool {
	return s >= SqA1 && s < SqNone
}

func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return s.File().String() + s.Rank().String()
}

// SquareFromString parses algebraic notation like "e4". Returns SqNone on
// malformed input.
func SquareFromString(str string) Square {
	if len(str) != 2 {
		return SqNone
	}
	f := str[0]
	r := str[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return SqNone
	}
	return SquareOf(File(f-'a'), Rank(r-'1'))
}

// Direction is a mailbox offset used for ray walking.
type Direction int8

const (
	North     Direction = 8
	South     Direction = -8
	East      Direction = 1
	West      Direction = -1
	NorthEast Direction = 9
	NorthWest Direction = 7
	SouthEast Direction = -7
	SouthWest Direction = -9
)

// Step moves s by d, returning SqNone if the move wraps around a board edge.
func (s Square) Step(d Direction) Square {
	to := int8(s) + int8(d)
	if to < 0 || to > 63 {
		return SqNone
	}
	fileDelta := int8(Square(to).File()) - int8(s.File())
	if fileDelta > 2 || fileDelta < -2 {
		return SqNone
	}
	return Square(to)
}
