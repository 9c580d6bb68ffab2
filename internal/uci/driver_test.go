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

package uci

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// runToCompletion runs cmd and, if it spawns a search ("go"), waits for it
// to finish before returning the captured output — Driver.Command alone
// only captures what handle() writes synchronously, which for "go" is
// nothing; the info/bestmove lines arrive from the search goroutine.
func runToCompletion(d *Driver, cmd string) string {
	prev := d.out
	buf := new(bytes.Buffer)
	d.out = bufio.NewWriter(buf)
	d.handle(cmd)
	d.searchWG.Wait()
	_ = d.out.Flush()
	d.out = prev
	return buf.String()
}

func TestDriver_UciHandshake(t *testing.T) {
	d := NewDriver()
	out := d.Command("uci")
	assert.Contains(t, out, "id name Corvus")
	assert.Contains(t, out, "option name Hash")
	assert.Contains(t, out, "uciok")
}

func TestDriver_IsReady(t *testing.T) {
	d := NewDriver()
	assert.Equal(t, "readyok\n", d.Command("isready"))
}

func TestDriver_PositionStartposThenD(t *testing.T) {
	d := NewDriver()
	d.Command("position startpos")
	out := d.Command("d")
	assert.Contains(t, out, "rnbqkbnr")
}

func TestDriver_PositionStartposWithMoves(t *testing.T) {
	d := NewDriver()
	d.Command("position startpos moves e2e4 e7e5")
	out := d.Command("d")
	assert.Equal(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2\n", out)
}

func TestDriver_PositionFEN(t *testing.T) {
	d := NewDriver()
	fen := "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1"
	d.Command("position fen " + fen)
	out := d.Command("d")
	assert.Equal(t, fen+"\n", out)
}

func TestDriver_PositionRejectsIllegalMove(t *testing.T) {
	d := NewDriver()
	out := d.Command("position startpos moves e2e5")
	assert.Contains(t, out, "illegal move")
}

func TestDriver_SetOptionHash(t *testing.T) {
	d := NewDriver()
	out := d.Command("setoption name Hash value 128")
	assert.Empty(t, strings.TrimSpace(out))
}

func TestDriver_SetOptionUnknown(t *testing.T) {
	d := NewDriver()
	out := d.Command("setoption name NotAnOption value 1")
	assert.Contains(t, out, "no such option")
}

func TestDriver_GoDepthEmitsBestMove(t *testing.T) {
	d := NewDriver()
	d.Command("position fen 6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")

	out := runToCompletion(d, "go depth 2")
	assert.Contains(t, out, "score mate 1")
	assert.Contains(t, out, "bestmove a1a8")
}

func TestDriver_StopAfterGoInfiniteEmitsBestMove(t *testing.T) {
	d := NewDriver()
	d.Command("position startpos")

	prev := d.out
	buf := new(bytes.Buffer)
	d.out = bufio.NewWriter(buf)
	d.handle("go infinite")
	d.handle("stop")
	d.searchWG.Wait()
	_ = d.out.Flush()
	d.out = prev

	assert.Contains(t, buf.String(), "bestmove")
}

func TestDriver_QuitStopsInFlightSearchAndReturnsTrue(t *testing.T) {
	d := NewDriver()
	d.Command("position startpos")
	d.handle("go infinite")

	quit := d.handle("quit")
	assert.True(t, quit)
}

func TestDriver_UciNewGameResetsPosition(t *testing.T) {
	d := NewDriver()
	d.Command("position startpos moves e2e4")
	d.Command("ucinewgame")
	out := d.Command("d")
	assert.Contains(t, out, "w KQkq")
}
