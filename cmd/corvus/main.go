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

// Command corvus starts the UCI engine loop on stdin/stdout.
package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corvuschess/corvus/internal/config"
	"github.com/corvuschess/corvus/internal/logging"
	"github.com/corvuschess/corvus/internal/uci"
	"github.com/corvuschess/corvus/internal/version"
)

var out = message.NewPrinter(language.German)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./corvus.toml", "path to configuration settings file")
	logPath := flag.String("logpath", "./logs", "path where to write log files to")
	cpuProfile := flag.Bool("cpuprofile", false, "collect a CPU profile of the run into a cpu.pprof file")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()
	if *logPath != "" {
		config.Settings.Log.LogFolder = *logPath
	}

	// Reset the package-level loggers now that configuration has been
	// read; they are first touched (at a default level) by package
	// init()s that ran before main() started.
	logging.GetLog()
	logging.GetSearchLog()
	logging.GetUciLog()

	driver := uci.NewDriver()
	driver.Loop()
}

func printVersionInfo() {
	out.Printf("Corvus %s\n", version.Version())
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
