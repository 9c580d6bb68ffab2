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

package config

// SearchConfiguration holds the knobs spec.md names as optional or
// engine-tunable: TT sizing, the one optional pruning technique the spec
// allows (null move), and the time-management safety margins.
type SearchConfiguration struct {
	// Transposition table
	TTSizeMB int

	// Move ordering / quiescence
	UseKillers     bool
	UseHistory     bool
	UseQuiescence  bool

	// The only optional extra spec.md permits beyond the required core.
	UseNullMove     bool
	NullMoveMinDepth int
	NullMoveReduction int

	// Time management (spec.md §4.6)
	SafetyBufferMs   int
	MovesToGoDefault int
	// IncrementWeight documents the original_source/ alternative
	// (base_time += increment*0.8) without using it: spec.md's own
	// inc*(moves_to_go-1) formula governs DeriveBudget.
	IncrementWeight float64
	PanicThreshold  float64

	// Stop-flag polling cadence (spec.md §5).
	NodeCheckInterval uint64
}

func init() {
	Settings.Search = SearchConfiguration{
		TTSizeMB: 64,

		UseKillers:    true,
		UseHistory:    true,
		UseQuiescence: true,

		UseNullMove:       true,
		NullMoveMinDepth:  3,
		NullMoveReduction: 2,

		SafetyBufferMs:   50,
		MovesToGoDefault: 30,
		IncrementWeight:  0.8,
		PanicThreshold:   0.10,

		NodeCheckInterval: 2048,
	}
}
