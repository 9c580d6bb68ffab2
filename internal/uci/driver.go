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

// Package uci is the Protocol Adapter (spec.md §5/§6.3): it owns stdin,
// translates UCI text to Board mutations and search.Limits, and runs the
// search core on a dedicated goroutine so "stop" can interrupt it without
// blocking on I/O, grounded on the teacher's internal/uci package and
// internal/uciInterface.UciDriver callback shape.
package uci

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/corvuschess/corvus/internal/board"
	. "github.com/corvuschess/corvus/internal/chesstypes"
	"github.com/corvuschess/corvus/internal/evaluator"
	"github.com/corvuschess/corvus/internal/logging"
	"github.com/corvuschess/corvus/internal/search"
)

// Driver handles one UCI session: a single Board, a single long-lived
// search.Engine (its transposition table survives across searches), and
// the goroutine bookkeeping needed to let "stop" interrupt an in-flight
// "go" per spec.md §5's Protocol-thread/Search-thread split.
type Driver struct {
	in  *bufio.Scanner
	out *bufio.Writer
	log *logging.Logger

	position *board.Position
	engine   *search.Engine

	searchWG sync.WaitGroup
	mu       sync.Mutex
}

// NewDriver builds a Driver reading stdin and writing stdout.
func NewDriver() *Driver {
	d := &Driver{
		in:       bufio.NewScanner(os.Stdin),
		out:      bufio.NewWriter(os.Stdout),
		log:      logging.GetUciLog(),
		position: board.NewPosition(),
	}
	d.engine = search.NewEngine(d.position, evaluator.New())
	return d
}

func (d *Driver) rebuildEngine() {
	d.engine = search.NewEngine(d.position, evaluator.New())
}

// Loop reads and handles commands from stdin until "quit".
func (d *Driver) Loop() {
	for d.in.Scan() {
		if d.handle(d.in.Text()) {
			return
		}
	}
}

// Command runs a single line through the handler and returns everything it
// wrote to stdout, for tests that don't want to drive real stdio.
func (d *Driver) Command(cmd string) string {
	prev := d.out
	buf := new(bytes.Buffer)
	d.out = bufio.NewWriter(buf)
	d.handle(cmd)
	_ = d.out.Flush()
	d.out = prev
	return buf.String()
}

func (d *Driver) send(s string) {
	d.log.Infof(">> %s", s)
	_, _ = d.out.WriteString(s)
	_, _ = d.out.WriteString("\n")
	_ = d.out.Flush()
}

// SendInfo implements search.InfoSink, formatting one completed
// iteration's progress as a UCI "info" line per spec.md §6.3.
func (d *Driver) SendInfo(info search.Info) {
	d.send(fmt.Sprintf("info depth %d nodes %d time %d nps %d score %s pv %s",
		info.Depth, info.Nodes, info.Time.Milliseconds(), info.NPS,
		info.Score.String(), pvToUCI(info.Pv)))
}

// SendBestMove implements search.InfoSink, emitting the final "bestmove"
// line (with "(none)" when no legal move exists) per spec.md §6.3.
func (d *Driver) SendBestMove(best, ponder Move) {
	if best == MoveNone {
		d.send("bestmove (none)")
		return
	}
	line := "bestmove " + best.String()
	if ponder != MoveNone {
		line += " ponder " + ponder.String()
	}
	d.send(line)
}

func pvToUCI(pv []Move) string {
	parts := make([]string, len(pv))
	for i, m := range pv {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
