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

package evaluator

import (
	"fmt"

	. "github.com/corvuschess/corvus/internal/chesstypes"
)

// Score carries a midgame and an endgame value that get blended by the
// current game phase into a single centipawn score.
type Score struct {
	Mid int
	End int
}

// Add accumulates a into s.
func (s *Score) Add(a Score) {
	s.Mid += a.Mid
	s.End += a.End
}

// Sub removes a from s.
func (s *Score) Sub(a Score) {
	s.Mid -= a.Mid
	s.End -= a.End
}

// Blend combines the midgame and endgame values using gamePhaseFactor, a
// value in [0,1] where 1.0 means "fully midgame" and 0.0 "fully endgame".
func (s Score) Blend(gamePhaseFactor float64) Value {
	return Value(float64(s.Mid)*gamePhaseFactor) + Value(float64(s.End)*(1.0-gamePhaseFactor))
}

func (s Score) String() string {
	return fmt.Sprintf("{mid:%d end:%d}", s.Mid, s.End)
}
