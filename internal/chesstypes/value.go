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
	"strconv"
	"strings"
)

// Value is a centipawn evaluation or search score.
type Value int16

// MaxPly bounds search depth and ply-indexed arrays (PV table, killers).
const MaxPly = 128

const (
	ValueZero Value = 0
	ValueDraw Value = 0
	ValueInf  Value = 15_000
	// ValueNA marks "no value attached", used as the sentinel a Move carries
	// before move ordering assigns it a real sort value.
	ValueNA Value = -ValueInf - 1
	// ValueMax/ValueMin bound the legal evaluation range (exclusive of mate
	// scores, which live above ValueMateThreshold / below -ValueMateThreshold).
	ValueMax Value = 10_000
	ValueMin Value = -ValueMax
	// ValueMate is the score of delivering mate on the current ply; scores
	// are reduced by one per ply of distance from the root so that
	// "mate in 1" scores higher than "mate in 3".
	ValueMate          Value = ValueMax
	ValueMateThreshold Value = ValueMate - Value(MaxPly) - 1
)

// IsValid reports whether v falls within the legal score range.
func (v Value) IsValid() bool {
	return v >= ValueMin && v <= ValueMax
}

// IsMateValue reports whether v represents a forced mate (for either side).
func (v Value) IsMateValue() bool {
	a := v
	if a < 0 {
		a = -a
	}
	return a > ValueMateThreshold && a <= ValueMate
}

// String renders v the way UCI "info score" does: "cp N" or "mate N".
func (v Value) String() string {
	var b strings.Builder
	switch {
	case v.IsMateValue():
		b.WriteString("mate ")
		if v < ValueZero {
			b.WriteString("-")
		}
		abs := v
		if abs < 0 {
			abs = -abs
		}
		pliesToMate := int(ValueMate) - int(abs)
		movesToMate := (pliesToMate + 1) / 2
		b.WriteString(strconv.Itoa(movesToMate))
	case v == ValueNA:
		b.WriteString("N/A")
	default:
		b.WriteString("cp ")
		b.WriteString(strconv.Itoa(int(v)))
	}
	return b.String()
}

// Bound records which side of the search window a stored score is exact,
// or only a lower/upper bound of. This is spec.md's vocabulary for the
// teacher's ValueType (EXACT/ALPHA/BETA).
type Bound uint8

const (
	BoundNone Bound = iota
	BoundExact
	BoundLower
	BoundUpper
	boundLength
)

// IsValid reports whether b is one of the defined bound kinds.
func (b Bound) IsValid() bool {
	return b < boundLength
}

var boundToString = [boundLength]string{"none", "exact", "lower", "upper"}

func (b Bound) String() string {
	if !b.IsValid() {
		return "none"
	}
	return boundToString[b]
}
