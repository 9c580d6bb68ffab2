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

// LogConfiguration drives internal/logging: levels are op/go-logging's
// int scale (0=CRITICAL .. 5=DEBUG).
type LogConfiguration struct {
	LogLevel       int
	SearchLogLevel int
	TestLogLevel   int
	UciLogLevel    int
	LogFolder      string
}

func init() {
	Settings.Log = LogConfiguration{
		LogLevel:       4,
		SearchLogLevel: 4,
		TestLogLevel:   5,
		UciLogLevel:    5,
		LogFolder:      "./logs",
	}
}
