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

package history

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/corvuschess/corvus/internal/chesstypes"
)

func e2e4() Move { return CreateMove(SquareOf(FileE, Rank2), SquareOf(FileE, Rank4), Normal, PtNone) }
func d2d4() Move { return CreateMove(SquareOf(FileD, Rank2), SquareOf(FileD, Rank4), Normal, PtNone) }
func g1f3() Move { return CreateMove(SqG1, SquareOf(FileF, Rank3), Normal, PtNone) }

func TestTable_StoreKillerFillsFirstSlotThenShifts(t *testing.T) {
	tbl := New()
	tbl.StoreKiller(3, e2e4())
	a, b := tbl.Killers(3)
	assert.Equal(t, e2e4().MoveOf(), a)
	assert.Equal(t, MoveNone, b)

	tbl.StoreKiller(3, d2d4())
	a, b = tbl.Killers(3)
	assert.Equal(t, d2d4().MoveOf(), a)
	assert.Equal(t, e2e4().MoveOf(), b)
}

func TestTable_StoreKillerReStoreMovesToFront(t *testing.T) {
	tbl := New()
	tbl.StoreKiller(1, e2e4())
	tbl.StoreKiller(1, d2d4())
	tbl.StoreKiller(1, e2e4())
	a, b := tbl.Killers(1)
	assert.Equal(t, e2e4().MoveOf(), a)
	assert.Equal(t, d2d4().MoveOf(), b)
}

func TestTable_IsKiller(t *testing.T) {
	tbl := New()
	tbl.StoreKiller(0, g1f3())
	assert.True(t, tbl.IsKiller(0, g1f3()))
	assert.False(t, tbl.IsKiller(0, e2e4()))
	assert.False(t, tbl.IsKiller(1, g1f3()))
}

func TestTable_KillersOutOfRangeReturnsNone(t *testing.T) {
	tbl := New()
	a, b := tbl.Killers(-1)
	assert.Equal(t, MoveNone, a)
	assert.Equal(t, MoveNone, b)
	a, b = tbl.Killers(maxPly)
	assert.Equal(t, MoveNone, a)
	assert.Equal(t, MoveNone, b)
}

func TestTable_AddHistoryAccumulatesDepthSquared(t *testing.T) {
	tbl := New()
	tbl.AddHistory(White, e2e4(), 3)
	tbl.AddHistory(White, e2e4(), 4)
	assert.Equal(t, int64(9+16), tbl.HistoryScore(White, e2e4()))
	assert.Equal(t, int64(0), tbl.HistoryScore(Black, e2e4()))
}

func TestTable_ResetClearsKillersAndHistory(t *testing.T) {
	tbl := New()
	tbl.StoreKiller(2, e2e4())
	tbl.AddHistory(White, e2e4(), 5)
	tbl.Reset()

	a, b := tbl.Killers(2)
	assert.Equal(t, MoveNone, a)
	assert.Equal(t, MoveNone, b)
	assert.Equal(t, int64(0), tbl.HistoryScore(White, e2e4()))
}
