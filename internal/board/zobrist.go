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
	"math/rand"

	. "github.com/corvuschess/corvus/internal/chesstypes"
)

// Key is a 64-bit Zobrist hash of a position.
type Key uint64

// zobristSeed makes hash construction deterministic across runs and
// platforms (spec.md §8 property 6: identical inputs produce identical
// search output), unlike the teacher which seeds from the wall clock.
const zobristSeed = 0xC0FFEE1234567

var (
	zobristPiece    [16][64]Key // indexed by Piece, Square
	zobristCastling [16]Key     // indexed by CastlingRights bitmask
	zobristEnPassant [8]Key     // indexed by File
	zobristSideToMove Key
)

func init() {
	r := rand.New(rand.NewSource(zobristSeed))
	for p := 0; p < 16; p++ {
		for s := 0; s < 64; s++ {
			zobristPiece[p][s] = Key(r.Uint64())
		}
	}
	for c := 0; c < 16; c++ {
		zobristCastling[c] = Key(r.Uint64())
	}
	for f := 0; f < 8; f++ {
		zobristEnPassant[f] = Key(r.Uint64())
	}
	zobristSideToMove = Key(r.Uint64())
}

func zPiece(pc Piece, sq Square) Key {
	return zobristPiece[pc][sq]
}

func zCastling(cr CastlingRights) Key {
	return zobristCastling[cr]
}

func zEnPassant(sq Square) Key {
	if sq == SqNone {
		return 0
	}
	return zobristEnPassant[sq.File()]
}
