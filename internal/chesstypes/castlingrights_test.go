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

func TestCastlingRights_String(t *testing.T) {
	assert.Equal(t, "-", CastlingNone.String())
	assert.Equal(t, "KQkq", CastlingAny.String())
	assert.Equal(t, "Kq", (CastlingWhiteOO | CastlingBlackOOO).String())
}

func TestCastlingRights_Remove(t *testing.T) {
	cr := CastlingAny
	cr.Remove(CastlingWhite)
	assert.False(t, cr.Has(CastlingWhiteOO))
	assert.False(t, cr.Has(CastlingWhiteOOO))
	assert.True(t, cr.Has(CastlingBlackOO))
	assert.Equal(t, "kq", cr.String())
}

func TestCastlingRights_Add(t *testing.T) {
	var cr CastlingRights
	cr.Add(CastlingWhiteOO)
	cr.Add(CastlingBlackOOO)
	assert.True(t, cr.Has(CastlingWhiteOO))
	assert.True(t, cr.Has(CastlingBlackOOO))
	assert.False(t, cr.Has(CastlingWhiteOOO))
}

func TestCastlingRights_Has(t *testing.T) {
	cr := CastlingWhiteOO
	assert.True(t, cr.Has(CastlingWhiteOO))
	assert.False(t, cr.Has(CastlingWhiteOOO))
}
