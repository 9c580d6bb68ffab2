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
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/corvuschess/corvus/internal/chesstypes"
)

var out = message.NewPrinter(language.German)

// Statistics are extra counters not essential to a functioning search but
// useful for tuning move ordering and reporting "info" during a search.
// Trimmed to what spec.md's retained features actually produce: no
// LMR/LMP/IID/aspiration counters since those techniques are non-goals.
type Statistics struct {
	Nodes       uint64
	QNodes      uint64
	Evaluations uint64

	TTHits   uint64
	TTMisses uint64
	TTCuts   uint64

	BetaCuts    uint64
	BetaCuts1st uint64

	NullMoveCuts uint64

	CurrentIterationDepth int
	CurrentRootMove       Move
	CurrentRootMoveIndex  int
	BestMoveChanges       uint64
}

func (s *Statistics) String() string {
	return out.Sprintf("%+v", *s)
}
