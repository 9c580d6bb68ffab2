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

// Package config holds globally available configuration, populated with
// defaults in each sub-file's init() and optionally overridden by a TOML
// config file read at startup.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/corvuschess/corvus/internal/util"
)

// ConfFile is the path to the config file, resolved relative to the
// working directory, the executable, or the user's home directory.
var ConfFile = "./corvus.toml"

// Settings is the global, process-wide configuration.
var Settings conf

var initialized = false

type conf struct {
	Log    LogConfiguration
	Search SearchConfiguration
	Eval   EvalConfiguration
}

// Setup reads ConfFile if present, falling back silently to the defaults
// set by each package's init(). Safe to call more than once; only the
// first call has an effect.
func Setup() {
	if initialized {
		return
	}
	path, err := util.ResolveFile(ConfFile)
	if err == nil {
		if _, decodeErr := toml.DecodeFile(path, &Settings); decodeErr != nil {
			log.Printf("config: %s found but could not be parsed, using defaults (%v)", path, decodeErr)
		}
	}
	initialized = true
}

// String renders the active configuration via reflection, one field per
// line under a heading for each section.
func (c *conf) String() string {
	var b strings.Builder
	b.WriteString("Search:\n")
	writeFields(&b, reflect.ValueOf(&c.Search).Elem())
	b.WriteString("Eval:\n")
	writeFields(&b, reflect.ValueOf(&c.Eval).Elem())
	b.WriteString("Log:\n")
	writeFields(&b, reflect.ValueOf(&c.Log).Elem())
	return b.String()
}

func writeFields(b *strings.Builder, v reflect.Value) {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		fmt.Fprintf(b, "  %-20s %-8s = %v\n", t.Field(i).Name, f.Type(), f.Interface())
	}
}
