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
	"time"

	. "github.com/corvuschess/corvus/internal/chesstypes"
)

// Result is what a completed (or stopped) iterative deepening search
// reports back to the caller. BestMove is MoveNone when the root has no
// legal move (BestValue then holds the mate or draw score) or when another
// search was already running (every other field is then zero).
type Result struct {
	BestMove    Move
	BestValue   Value
	PonderMove  Move
	SearchTime  time.Duration
	SearchDepth int
	ExtraDepth  int
	Pv          []Move
}

func (r *Result) String() string {
	return out.Sprintf("bestmove=%s value=%s ponder=%s time=%dms depth=%d/%d pv=%s",
		r.BestMove.String(), r.BestValue.String(), r.PonderMove.String(),
		r.SearchTime.Milliseconds(), r.SearchDepth, r.ExtraDepth, pvString(r.Pv))
}

func pvString(pv []Move) string {
	s := ""
	for i, m := range pv {
		if i > 0 {
			s += " "
		}
		s += m.String()
	}
	return s
}
