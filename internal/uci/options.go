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
	"strconv"
	"strings"

	"github.com/corvuschess/corvus/internal/config"
)

// optionType mirrors the handful of UCI option kinds the protocol defines;
// this engine only ever emits check and spin options.
type optionType int

const (
	Check optionType = iota
	Spin
)

type optionHandler func(*Driver, *option)

// option is a single UCI-negotiable setting, surfaced during the "uci"
// handshake and mutated by "setoption", grounded on the teacher's
// internal/uci/ucioption.go.
type option struct {
	Name         string
	Type         optionType
	HandlerFunc  optionHandler
	DefaultValue string
	MinValue     string
	MaxValue     string
	value        string // set by setoption before HandlerFunc runs
}

func (o *option) String() string {
	var sb strings.Builder
	sb.WriteString("option name ")
	sb.WriteString(o.Name)
	sb.WriteString(" type ")
	switch o.Type {
	case Check:
		sb.WriteString("check default ")
		sb.WriteString(o.DefaultValue)
	case Spin:
		sb.WriteString("spin default ")
		sb.WriteString(o.DefaultValue)
		sb.WriteString(" min ")
		sb.WriteString(o.MinValue)
		sb.WriteString(" max ")
		sb.WriteString(o.MaxValue)
	}
	return sb.String()
}

var optionOrder = []string{"Hash", "Clear_Hash", "Use_Quiescence", "Use_Killer", "Use_History", "Use_NullMove"}

var options = map[string]*option{
	"Hash": {
		Name: "Hash", Type: Spin, HandlerFunc: setHash,
		DefaultValue: strconv.Itoa(config.Settings.Search.TTSizeMB), MinValue: "1", MaxValue: "4096",
	},
	"Clear_Hash": {
		Name: "Clear_Hash", Type: Check, HandlerFunc: clearHash, DefaultValue: "false",
	},
	"Use_Quiescence": {
		Name: "Use_Quiescence", Type: Check, HandlerFunc: setUseQuiescence,
		DefaultValue: strconv.FormatBool(config.Settings.Search.UseQuiescence),
	},
	"Use_Killer": {
		Name: "Use_Killer", Type: Check, HandlerFunc: setUseKillers,
		DefaultValue: strconv.FormatBool(config.Settings.Search.UseKillers),
	},
	"Use_History": {
		Name: "Use_History", Type: Check, HandlerFunc: setUseHistory,
		DefaultValue: strconv.FormatBool(config.Settings.Search.UseHistory),
	},
	"Use_NullMove": {
		Name: "Use_NullMove", Type: Check, HandlerFunc: setUseNullMove,
		DefaultValue: strconv.FormatBool(config.Settings.Search.UseNullMove),
	},
}

// optionLines returns every "option name ..." string for the "uci"
// handshake, in a fixed display order.
func optionLines() []string {
	lines := make([]string, 0, len(optionOrder))
	for _, name := range optionOrder {
		lines = append(lines, options[name].String())
	}
	return lines
}

func setHash(d *Driver, o *option) {
	mb, err := strconv.Atoi(o.value)
	if err != nil || mb < 1 {
		return
	}
	config.Settings.Search.TTSizeMB = mb
	d.rebuildEngine()
}

func clearHash(d *Driver, o *option) {
	d.engine.ClearForNewGame()
}

func setUseQuiescence(d *Driver, o *option) {
	config.Settings.Search.UseQuiescence = o.value == "true"
}

func setUseKillers(d *Driver, o *option) {
	config.Settings.Search.UseKillers = o.value == "true"
}

func setUseHistory(d *Driver, o *option) {
	config.Settings.Search.UseHistory = o.value == "true"
}

func setUseNullMove(d *Driver, o *option) {
	config.Settings.Search.UseNullMove = o.value == "true"
}
