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

// Package logging wraps github.com/op/go-logging behind four named
// loggers (standard/search/uci/test), each built once; every Get*Log call
// re-applies the level/backends from the current config.Settings.Log, so
// internal/config.Setup can run before the loggers are first used.
package logging

import (
	stdlog "log"
	"os"
	"path/filepath"

	"github.com/op/go-logging"

	"github.com/corvuschess/corvus/internal/config"
	"github.com/corvuschess/corvus/internal/util"
)

var (
	standardLog *logging.Logger
	searchLog   *logging.Logger
	uciLog      *logging.Logger
	testLog     *logging.Logger

	standardFormat = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-10.10s}:%{shortfile:-14.14s} %{level:-7.7s}: %{message}`)
	uciFormat = logging.MustStringFormatter(`%{time:15:04:05.000} uci %{message}`)
)

func init() {
	standardLog = logging.MustGetLogger("standard")
	searchLog = logging.MustGetLogger("search")
	uciLog = logging.MustGetLogger("uci")
	testLog = logging.MustGetLogger("test")
}

func stdoutBackend(format logging.Formatter, level int) logging.Backend {
	backend := logging.NewLogBackend(os.Stdout, "", stdlog.Lmsgprefix)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))
	leveled.SetLevel(logging.Level(level), "")
	return leveled
}

func fileBackend(format logging.Formatter, level int, name string) logging.Backend {
	dir, err := util.ResolveCreateFolder(config.Settings.Log.LogFolder)
	if err != nil {
		return nil
	}
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil
	}
	backend := logging.NewLogBackend(f, "", stdlog.Lmsgprefix)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))
	leveled.SetLevel(logging.Level(level), "")
	return leveled
}

// GetLog returns the general-purpose logger (config/engine wiring).
func GetLog() *logging.Logger {
	standardLog.SetBackend(stdoutBackend(standardFormat, config.Settings.Log.LogLevel))
	return standardLog
}

// GetSearchLog returns the search logger, mirrored to a log file alongside
// stdout so a full search trace survives after the engine exits.
func GetSearchLog() *logging.Logger {
	stdout := stdoutBackend(standardFormat, config.Settings.Log.SearchLogLevel)
	if file := fileBackend(standardFormat, config.Settings.Log.SearchLogLevel, "search.log"); file != nil {
		searchLog.SetBackend(logging.SetBackend(stdout, file))
	} else {
		searchLog.SetBackend(stdout)
	}
	return searchLog
}

// GetUciLog returns the UCI protocol logger, mirrored to a log file.
func GetUciLog() *logging.Logger {
	stdout := stdoutBackend(uciFormat, config.Settings.Log.UciLogLevel)
	if file := fileBackend(uciFormat, config.Settings.Log.UciLogLevel, "uci.log"); file != nil {
		uciLog.SetBackend(logging.SetBackend(stdout, file))
	} else {
		uciLog.SetBackend(stdout)
	}
	return uciLog
}

// GetTestLog returns the logger used by _test.go files.
func GetTestLog() *logging.Logger {
	testLog.SetBackend(stdoutBackend(standardFormat, config.Settings.Log.TestLogLevel))
	return testLog
}
