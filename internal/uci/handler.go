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
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/corvuschess/corvus/internal/board"
	"github.com/corvuschess/corvus/internal/search"
	"github.com/corvuschess/corvus/internal/version"
)

var whitespace = regexp.MustCompile(`\s+`)

// handle dispatches one line of UCI protocol. It returns true when the
// session should end ("quit"), grounded on the teacher's
// handleReceivedCommand/loop split in internal/uci/uci.go.
func (d *Driver) handle(cmd string) bool {
	cmd = strings.TrimSpace(cmd)
	if len(cmd) == 0 {
		return false
	}
	d.log.Infof("<< %s", cmd)
	tokens := whitespace.Split(cmd, -1)
	switch tokens[0] {
	case "quit":
		d.mu.Lock()
		d.engine.RequestStop()
		d.mu.Unlock()
		d.searchWG.Wait()
		return true
	case "uci":
		d.uciCommand()
	case "setoption":
		d.setOptionCommand(tokens)
	case "isready":
		d.send("readyok")
	case "ucinewgame":
		d.uciNewGameCommand()
	case "position":
		d.positionCommand(tokens)
	case "go":
		d.goCommand(tokens)
	case "stop":
		d.engine.RequestStop()
	case "ponderhit":
		// ponder is a non-goal; accepted and ignored.
	case "d":
		d.send(d.position.FEN())
	default:
		d.log.Warningf("unknown command: %s", cmd)
	}
	return false
}

func (d *Driver) uciCommand() {
	d.send("id name Corvus " + version.Version())
	d.send("id author the Corvus contributors")
	for _, line := range optionLines() {
		d.send(line)
	}
	d.send("uciok")
}

func (d *Driver) setOptionCommand(tokens []string) {
	if len(tokens) < 2 || tokens[1] != "name" {
		d.send("info string malformed setoption command")
		return
	}
	i := 2
	name := ""
	for i < len(tokens) && tokens[i] != "value" {
		name += tokens[i] + " "
		i++
	}
	name = strings.TrimSpace(name)
	value := ""
	if i < len(tokens) && tokens[i] == "value" && i+1 < len(tokens) {
		value = strings.Join(tokens[i+1:], " ")
	}
	o, ok := options[name]
	if !ok {
		d.send("info string no such option '" + name + "'")
		return
	}
	o.value = value
	o.HandlerFunc(d, o)
}

func (d *Driver) uciNewGameCommand() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.position = board.NewPosition()
	d.engine.SetBoard(d.position)
	d.engine.ClearForNewGame()
}

func (d *Driver) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		d.send("info string malformed position command")
		return
	}
	i := 1
	var pos *board.Position
	switch tokens[i] {
	case "startpos":
		i++
		pos = board.NewPosition()
	case "fen":
		i++
		var fenb strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			fenb.WriteString(tokens[i])
			fenb.WriteString(" ")
			i++
		}
		fen := strings.TrimSpace(fenb.String())
		p, err := board.NewPositionFromFEN(fen)
		if err != nil {
			d.send("info string malformed position command: " + err.Error())
			return
		}
		pos = p
	default:
		d.send("info string malformed position command")
		return
	}

	if i < len(tokens) && tokens[i] == "moves" {
		i++
		for ; i < len(tokens); i++ {
			m, err := pos.MoveFromUCI(tokens[i])
			if err != nil {
				d.send("info string illegal move in position command: " + tokens[i])
				return
			}
			pos.DoMove(m)
		}
	}

	d.mu.Lock()
	d.position = pos
	d.engine.SetBoard(d.position)
	d.mu.Unlock()
}

func (d *Driver) goCommand(tokens []string) {
	lim, ok := d.readSearchLimits(tokens)
	if !ok {
		return
	}
	d.searchWG.Add(1)
	go func() {
		defer d.searchWG.Done()
		d.mu.Lock()
		eng := d.engine
		d.mu.Unlock()
		eng.SearchBestMove(lim, d)
	}()
}

func (d *Driver) readSearchLimits(tokens []string) (*search.Limits, bool) {
	lim := search.NewLimits()
	i := 1
	for i < len(tokens) {
		switch tokens[i] {
		case "infinite":
			lim.Infinite = true
			i++
		case "ponder":
			lim.Ponder = true
			i++
		case "depth":
			i++
			v, err := strconv.Atoi(tokens[i])
			if err != nil {
				d.send("info string go malformed: depth not a number")
				return nil, false
			}
			lim.Depth = v
			i++
		case "nodes":
			i++
			v, err := strconv.ParseUint(tokens[i], 10, 64)
			if err != nil {
				d.send("info string go malformed: nodes not a number")
				return nil, false
			}
			lim.Nodes = v
			i++
		case "mate":
			i++
			v, err := strconv.Atoi(tokens[i])
			if err != nil {
				d.send("info string go malformed: mate not a number")
				return nil, false
			}
			lim.Mate = v
			i++
		case "movetime":
			i++
			v, err := strconv.Atoi(tokens[i])
			if err != nil {
				d.send("info string go malformed: movetime not a number")
				return nil, false
			}
			lim.MoveTime = time.Duration(v) * time.Millisecond
			i++
		case "wtime":
			i++
			v, err := strconv.Atoi(tokens[i])
			if err != nil {
				d.send("info string go malformed: wtime not a number")
				return nil, false
			}
			lim.WhiteTime = time.Duration(v) * time.Millisecond
			lim.TimeControl = true
			i++
		case "btime":
			i++
			v, err := strconv.Atoi(tokens[i])
			if err != nil {
				d.send("info string go malformed: btime not a number")
				return nil, false
			}
			lim.BlackTime = time.Duration(v) * time.Millisecond
			lim.TimeControl = true
			i++
		case "winc":
			i++
			v, err := strconv.Atoi(tokens[i])
			if err != nil {
				d.send("info string go malformed: winc not a number")
				return nil, false
			}
			lim.WhiteInc = time.Duration(v) * time.Millisecond
			i++
		case "binc":
			i++
			v, err := strconv.Atoi(tokens[i])
			if err != nil {
				d.send("info string go malformed: binc not a number")
				return nil, false
			}
			lim.BlackInc = time.Duration(v) * time.Millisecond
			i++
		case "movestogo":
			i++
			v, err := strconv.Atoi(tokens[i])
			if err != nil {
				d.send("info string go malformed: movestogo not a number")
				return nil, false
			}
			lim.MovesToGo = v
			i++
		default:
			i++
		}
	}
	return lim, true
}
