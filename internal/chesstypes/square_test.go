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

package chesstypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareFromString(t *testing.T) {
	tests := []struct {
		in   string
		want Square
	}{
		{"a1", SqA1},
		{"h8", SqH8},
		{"e4", SquareOf(FileE, Rank4)},
		{"z9", SqNone},
		{"", SqNone},
		{"a", SqNone},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SquareFromString(tt.in))
		})
	}
}

func TestSquare_String(t *testing.T) {
	assert.Equal(t, "a1", SqA1.String())
	assert.Equal(t, "h8", SqH8.String())
	assert.Equal(t, "-", SqNone.String())
}

func TestSquare_Step(t *testing.T) {
	assert.Equal(t, SqNone, SqA1.Step(West))
	assert.Equal(t, SqNone, SqH1.Step(East))
	assert.Equal(t, SquareOf(FileA, Rank2), SqA1.Step(North))
}

func TestSquare_FileRank(t *testing.T) {
	sq := SquareOf(FileD, Rank4)
	assert.Equal(t, FileD, sq.File())
	assert.Equal(t, Rank4, sq.Rank())
}
