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

package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveFile_FindsAbsolutePathThatExists(t *testing.T) {
	f, err := os.CreateTemp("", "corvus-resolve-*")
	assert.NoError(t, err)
	defer os.Remove(f.Name())
	f.Close()

	got, err := ResolveFile(f.Name())
	assert.NoError(t, err)
	assert.Equal(t, filepath.Clean(f.Name()), got)
}

func TestResolveFile_AbsoluteMissingReturnsError(t *testing.T) {
	_, err := ResolveFile(filepath.Join(os.TempDir(), "corvus-does-not-exist-xyz"))
	assert.Error(t, err)
}

func TestResolveFile_RelativeFoundInWorkingDirectory(t *testing.T) {
	dir, err := os.Getwd()
	assert.NoError(t, err)

	name := "corvus-resolve-relative-test.tmp"
	path := filepath.Join(dir, name)
	assert.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	defer os.Remove(path)

	got, err := ResolveFile(name)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Clean(path), got)
}

func TestResolveCreateFolder_CreatesRelativeFolderInWorkingDirectory(t *testing.T) {
	dir, err := os.Getwd()
	assert.NoError(t, err)

	name := "corvus-resolve-folder-test-tmp"
	defer os.RemoveAll(filepath.Join(dir, name))

	got, err := ResolveCreateFolder(name)
	assert.NoError(t, err)

	info, statErr := os.Stat(got)
	assert.NoError(t, statErr)
	assert.True(t, info.IsDir())
}
