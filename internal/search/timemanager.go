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
	"github.com/corvuschess/corvus/internal/config"
	"github.com/corvuschess/corvus/internal/util"
)

const (
	softFactor     = 0.4
	hardFactor     = 2.5
	safetyBuffer   = 50 * time.Millisecond
	minSearchTime  = 10 * time.Millisecond
	extensionBoost = 1.3
)

// TimeManager derives soft/hard deadlines from a "go" command's clock
// fields and tracks the best-move-change-driven soft-deadline extension,
// grounded on the teacher's setupTimeControl in internal/search/search.go
// but restructured as a standalone value per spec.md §4.6/§9's
// SearchContext-per-search re-architecture.
type TimeManager struct {
	start time.Time
	soft  time.Duration
	hard  time.Duration

	changes int
}

// NewTimeManager computes soft/hard deadlines for a search starting now,
// given the clock fields from "go" and the position's side to move,
// fullmove number and non-king piece count (for estimateMovesToGo).
func NewTimeManager(lim *Limits, stm Color, fullMoveNumber, pieceCount int) *TimeManager {
	tm := &TimeManager{start: time.Now()}

	switch {
	case lim.Infinite || (!lim.TimeControl && lim.MoveTime == 0):
		tm.soft, tm.hard = time.Duration(1<<62), time.Duration(1<<62)
	case lim.MoveTime > 0:
		tm.soft, tm.hard = lim.MoveTime, lim.MoveTime
	default:
		remaining := lim.WhiteTime
		inc := lim.WhiteInc
		if stm == Black {
			remaining, inc = lim.BlackTime, lim.BlackInc
		}
		movesToGo := lim.MovesToGo
		if movesToGo <= 0 {
			movesToGo = estimateMovesToGo(pieceCount, fullMoveNumber)
		}
		if remaining < safetyBuffer {
			tm.soft, tm.hard = minSearchTime, minSearchTime
			break
		}
		effective := remaining - safetyBuffer + inc*time.Duration(movesToGo-1)
		base := effective / time.Duration(movesToGo)
		soft := time.Duration(float64(base) * softFactor)
		if soft < minSearchTime {
			soft = minSearchTime
		}
		hard := time.Duration(float64(soft) * hardFactor)
		if hard < minSearchTime {
			hard = minSearchTime
		}
		soft, hard = panicClamp(remaining, lim.WhiteTime+lim.BlackTime, soft, hard)
		if soft < minSearchTime {
			soft = minSearchTime
		}
		if hard < minSearchTime {
			hard = minSearchTime
		}
		capDur := remaining - safetyBuffer
		if soft > capDur {
			soft = capDur
		}
		if hard > capDur {
			hard = capDur
		}
		tm.soft, tm.hard = soft, hard
	}
	return tm
}

// panicClamp implements original_source/engine/time_manager.hpp's panic
// mode: once the side to move's remaining clock drops under
// PanicThreshold of the combined clock (both sides' remaining time), soft
// and hard are tightened to remaining/4 and remaining/2 so a crisis never
// overruns on the strength of the ordinary budget formula.
func panicClamp(remaining, combinedRemaining, soft, hard time.Duration) (time.Duration, time.Duration) {
	threshold := time.Duration(float64(combinedRemaining) * config.Settings.Search.PanicThreshold)
	if remaining >= threshold {
		return soft, hard
	}
	if quarter := remaining / 4; soft > quarter {
		soft = quarter
	}
	if half := remaining / 2; hard > half {
		hard = half
	}
	return soft, hard
}

// estimateMovesToGo guesses a horizon when the GUI didn't supply movestogo.
func estimateMovesToGo(pieceCount, fullMoveNumber int) int {
	switch {
	case pieceCount >= 24:
		return util.Max(35-fullMoveNumber/2, 25)
	case pieceCount >= 12:
		return util.Max(25-fullMoveNumber/3, 15)
	default:
		return util.Max(15-fullMoveNumber/4, 8)
	}
}

// HardDeadline is the absolute instant negamax recursion must abort by.
func (tm *TimeManager) HardDeadline() time.Time {
	return tm.start.Add(tm.hard)
}

// Elapsed returns time since the search began.
func (tm *TimeManager) Elapsed() time.Duration {
	return time.Since(tm.start)
}

// NoteBestMoveChange records that an iteration changed the root best move;
// called at most once per iteration, only when the best move changed.
func (tm *TimeManager) NoteBestMoveChange() {
	tm.changes++
}

// ShouldStopBetweenIterations implements spec.md §4.6's soft-deadline
// extension rule: crossing soft normally stops the outer loop, unless the
// best move has changed at least twice since the last check and we are
// comfortably inside the hard budget, in which case soft is extended by
// 30% (a fresh one-shot extension per trigger) and the change counter
// resets.
func (tm *TimeManager) ShouldStopBetweenIterations() bool {
	elapsed := tm.Elapsed()
	if elapsed < tm.soft {
		return false
	}
	if tm.changes >= 2 && elapsed < tm.hard/3 {
		tm.soft = time.Duration(float64(tm.soft) * extensionBoost)
		tm.changes = 0
		return false
	}
	return true
}
