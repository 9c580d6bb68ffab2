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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit_PopulatesSearchDefaults(t *testing.T) {
	assert.Equal(t, 64, Settings.Search.TTSizeMB)
	assert.True(t, Settings.Search.UseQuiescence)
	assert.Equal(t, 3, Settings.Search.NullMoveMinDepth)
}

func TestSetup_IsIdempotent(t *testing.T) {
	ConfFile = "./this-file-does-not-exist.toml"

	Setup()
	afterFirst := Settings.Search.TTSizeMB

	Settings.Search.TTSizeMB = 999
	Setup()
	assert.Equal(t, 999, Settings.Search.TTSizeMB, "second Setup call must be a no-op")
	_ = afterFirst
}

func TestConf_StringListsAllThreeSections(t *testing.T) {
	s := Settings.String()
	assert.Contains(t, s, "Search:")
	assert.Contains(t, s, "Eval:")
	assert.Contains(t, s, "Log:")
	assert.Contains(t, s, "TTSizeMB")
}
