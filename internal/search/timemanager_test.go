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

	. "github.com/corvuschess/corvus/internal/chesstypes"
)

func TestNewTimeManager_InfiniteHasHugeDeadlines(t *testing.T) {
	lim := &Limits{Infinite: true}
	tm := NewTimeManager(lim, White, 1, 32)
	assert.Greater(t, tm.hard, 24*time.Hour)
	assert.Greater(t, tm.soft, 24*time.Hour)
}

func TestNewTimeManager_MoveTimeIsExact(t *testing.T) {
	lim := &Limits{MoveTime: 500 * time.Millisecond}
	tm := NewTimeManager(lim, White, 1, 32)
	assert.Equal(t, 500*time.Millisecond, tm.soft)
	assert.Equal(t, 500*time.Millisecond, tm.hard)
}

func TestNewTimeManager_ClockBasedSoftLessThanHard(t *testing.T) {
	lim := &Limits{
		TimeControl: true,
		WhiteTime:   10 * time.Second,
		WhiteInc:    100 * time.Millisecond,
	}
	tm := NewTimeManager(lim, White, 1, 32)
	assert.LessOrEqual(t, tm.soft, tm.hard)
	assert.Greater(t, tm.soft, time.Duration(0))
}

func TestNewTimeManager_LowRemainingTimeFloorsToMinimum(t *testing.T) {
	lim := &Limits{
		TimeControl: true,
		WhiteTime:   10 * time.Millisecond,
	}
	tm := NewTimeManager(lim, White, 40, 10)
	assert.Equal(t, minSearchTime, tm.soft)
	assert.Equal(t, minSearchTime, tm.hard)
}

func TestNewTimeManager_PanicModeClampsWhenRemainingIsScarce(t *testing.T) {
	// remaining (2000ms) is under 10% of the combined clock (27000ms), and
	// movestogo=1 makes the ordinary budget formula alone produce soft/hard
	// well above remaining/4 and remaining/2 — panic mode must clamp both
	// down rather than let the ordinary formula govern.
	lim := &Limits{
		TimeControl: true,
		WhiteTime:   2000 * time.Millisecond,
		BlackTime:   25000 * time.Millisecond,
		MovesToGo:   1,
	}
	tm := NewTimeManager(lim, White, 40, 10)

	assert.Equal(t, 500*time.Millisecond, tm.soft)
	assert.Equal(t, 1*time.Second, tm.hard)
}

func TestNewTimeManager_NoPanicClampWhenTimeIsPlentiful(t *testing.T) {
	lim := &Limits{
		TimeControl: true,
		WhiteTime:   10 * time.Second,
		BlackTime:   10 * time.Second,
		MovesToGo:   1,
	}
	tm := NewTimeManager(lim, White, 1, 32)

	// Remaining (10s) is well above 10% of the combined clock (20s): the
	// ordinary formula's output must pass through unclamped.
	assert.Greater(t, tm.soft, 2500*time.Millisecond)
}

func TestTimeManager_ShouldStopBetweenIterations_ExtendsOnRepeatedChanges(t *testing.T) {
	tm := &TimeManager{
		start: time.Now().Add(-100 * time.Millisecond),
		soft:  50 * time.Millisecond,
		hard:  1 * time.Hour,
	}
	tm.NoteBestMoveChange()
	tm.NoteBestMoveChange()

	// Two changes and comfortably inside hard budget: soft extends, no stop.
	assert.False(t, tm.ShouldStopBetweenIterations())
	assert.Greater(t, tm.soft, 50*time.Millisecond)
	assert.Equal(t, 0, tm.changes)
}

func TestTimeManager_ShouldStopBetweenIterations_StopsWithoutChanges(t *testing.T) {
	tm := &TimeManager{
		start: time.Now().Add(-100 * time.Millisecond),
		soft:  50 * time.Millisecond,
		hard:  1 * time.Hour,
	}
	assert.True(t, tm.ShouldStopBetweenIterations())
}

func TestEstimateMovesToGo_ScalesWithMaterial(t *testing.T) {
	assert.Equal(t, 35-10/2, estimateMovesToGo(30, 10))
	assert.Less(t, estimateMovesToGo(10, 10), estimateMovesToGo(30, 10))
}
