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

package tt

import (
	. "github.com/corvuschess/corvus/internal/chesstypes"
)

// entry is one transposition table slot: 8 (key) + 2 (move) + 2 (value) +
// 1 (depth) + 1 (bound) bytes, rounded by the compiler to 16 with
// alignment — comfortably under the 24-byte budget spec.md §4.1 allows.
// Unlike the teacher's ttentry.go, there is no age field: spec.md mandates
// plain always-replace (see tt.go), so age-based eviction has nothing to
// track.
type entry struct {
	key   Key
	move  uint16 // Move.MoveOf(), the low 16 bits — sort value is never stored
	value int16
	depth uint8
	bound Bound
}

func (e *entry) Depth() int {
	return int(e.depth)
}

func (e *entry) Move() Move {
	return Move(e.move)
}

func (e *entry) Value() Value {
	return Value(e.value)
}

func (e *entry) Bound() Bound {
	return e.bound
}
