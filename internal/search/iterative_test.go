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
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/corvuschess/corvus/internal/board"
	. "github.com/corvuschess/corvus/internal/chesstypes"
)

// capturingSink records every Info/bestmove the engine emits, for
// assertions without needing a live UCI connection.
type capturingSink struct {
	infos []Info
	best  Move
	pond  Move
}

func (s *capturingSink) SendInfo(i Info)                { s.infos = append(s.infos, i) }
func (s *capturingSink) SendBestMove(best, ponder Move) { s.best, s.pond = best, ponder }

// materialEvaluator is a minimal stand-in for the real evaluator package,
// which this test cannot import without creating a search<->evaluator
// import cycle (evaluator.Evaluate takes a search.Board). Plain material
// counting is enough to drive the mate/stalemate/time-control assertions
// below; none of them depend on positional nuance.
type materialEvaluator struct{}

func (materialEvaluator) Evaluate(b Board) Value {
	var score Value
	for sq := Square(0); sq < 64; sq++ {
		p := b.PieceAt(sq)
		if p == PieceNone {
			continue
		}
		if p.ColorOf() == White {
			score += p.ValueOf()
		} else {
			score -= p.ValueOf()
		}
	}
	if b.SideToMove() == Black {
		score = -score
	}
	return score
}

func newTestEngine(t *testing.T, fen string) (*Engine, *board.Position) {
	t.Helper()
	pos, err := board.NewPositionFromFEN(fen)
	assert.NoError(t, err)
	return NewEngine(pos, materialEvaluator{}), pos
}

func TestSearchBestMove_MateInOne(t *testing.T) {
	eng, _ := newTestEngine(t, "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	sink := &capturingSink{}

	res := eng.SearchBestMove(&Limits{Depth: 2}, sink)

	assert.Equal(t, "a1a8", res.BestMove.String())
	assert.True(t, res.BestValue.IsMateValue())
	assert.Contains(t, sink.infos[len(sink.infos)-1].Score.String(), "mate 1")
}

func TestSearchBestMove_AlreadyMatedPosition(t *testing.T) {
	eng, _ := newTestEngine(t, "r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4")
	sink := &capturingSink{}

	res := eng.SearchBestMove(&Limits{Depth: 4}, sink)

	// Black is already mated (Scholar's mate delivered by Qxf7#): no legal
	// reply exists, so the root search must report mate-score and no move.
	assert.Equal(t, MoveNone, res.BestMove)
	assert.True(t, res.BestValue.IsMateValue())
}

func TestSearchBestMove_StalematePositionYieldsNoMove(t *testing.T) {
	eng, _ := newTestEngine(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	sink := &capturingSink{}

	res := eng.SearchBestMove(&Limits{Depth: 1}, sink)

	assert.Equal(t, MoveNone, res.BestMove)
	assert.Equal(t, MoveNone, sink.best)
}

func TestSearchBestMove_SingleLegalMoveAtDepthOne(t *testing.T) {
	// Black king in check from the a-file rook with exactly one legal
	// reply: Ka8-b8 (a7 stays on the a-file, b7 is adjacent to the white
	// king).
	eng, _ := newTestEngine(t, "k7/8/1K6/8/8/8/8/R7 b - - 0 1")
	res := eng.SearchBestMove(&Limits{Depth: 1}, nil)
	assert.Equal(t, "a8b8", res.BestMove.String())
}

func TestSearchBestMove_TimeControlCompliance(t *testing.T) {
	eng, _ := newTestEngine(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	lim := &Limits{
		TimeControl: true,
		WhiteTime:   1 * time.Second,
		BlackTime:   1 * time.Second,
	}
	start := time.Now()
	res := eng.SearchBestMove(lim, nil)
	elapsed := time.Since(start)

	assert.NotEqual(t, MoveNone, res.BestMove)
	assert.Less(t, elapsed, 600*time.Millisecond)
}

func TestSearchBestMove_StopRespondsQuickly(t *testing.T) {
	eng, _ := newTestEngine(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	lim := &Limits{Infinite: true}

	done := make(chan *Result, 1)
	go func() {
		done <- eng.SearchBestMove(lim, nil)
	}()

	time.Sleep(50 * time.Millisecond)
	stoppedAt := time.Now()
	eng.RequestStop()

	select {
	case res := <-done:
		assert.Less(t, time.Since(stoppedAt), 100*time.Millisecond)
		assert.NotEqual(t, MoveNone, res.BestMove)
	case <-time.After(200 * time.Millisecond):
		t.Fatal("search did not stop within 200ms of RequestStop")
	}
}

func TestSearchBestMove_TTDeterminismAcrossRepeatedSearches(t *testing.T) {
	eng, _ := newTestEngine(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	lim := &Limits{Depth: 4}

	first := eng.SearchBestMove(lim, nil)
	firstNodes := eng.stats.Nodes

	second := eng.SearchBestMove(lim, nil)
	secondNodes := eng.stats.Nodes

	assert.Equal(t, first.BestMove, second.BestMove)
	assert.LessOrEqual(t, secondNodes, firstNodes)
}
