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

	"github.com/corvuschess/corvus/internal/util"
)

// stopController holds the cooperative stop flag and the hard deadline.
// The node-count cadence test lives in Engine.pollStop, which needs
// config.Settings.Search.NodeCheckInterval to be a power of two.
type stopController struct {
	flag     *util.Bool
	hardStop time.Time
	nodes    *uint64
}

func newStopController(nodes *uint64) *stopController {
	return &stopController{flag: util.NewBool(false), nodes: nodes}
}

// RequestStop sets the cooperative stop flag; the protocol adapter calls it
// on "stop" and "quit" only. "ucinewgame" and a new "go" do not stop a
// running search.
func (c *stopController) RequestStop() {
	c.flag.Store(true)
}

// Reset clears the flag and arms a new hard deadline for the next search.
func (c *stopController) Reset(hardDeadline time.Time) {
	c.flag.Store(false)
	c.hardStop = hardDeadline
}

// Stopped reports the cooperative flag without side effects; negamax and
// qsearch call this at node entry.
func (c *stopController) Stopped() bool {
	return c.flag.Load()
}

// Poll is the every-N-nodes cadence check: it promotes a blown hard
// deadline into the stop flag and returns the (possibly updated) flag.
// The node-count cadence itself is the caller's responsibility (a
// power-of-two mask test against *c.nodes), since that avoids a
// function-call overhead on every single node.
func (c *stopController) Poll() bool {
	if c.flag.Load() {
		return true
	}
	if !c.hardStop.IsZero() && time.Now().After(c.hardStop) {
		c.flag.Store(true)
		return true
	}
	return false
}
