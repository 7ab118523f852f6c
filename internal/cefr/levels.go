// Package cefr defines the fixed vocabulary of CEFR proficiency levels
// and the mapping between level codes and classifier class ids.
package cefr

import "strings"

// Level is one of the six CEFR proficiency level codes.
type Level string

// The six CEFR levels, ordered from lowest to highest proficiency.
const (
	A1 Level = "A1"
	A2 Level = "A2"
	B1 Level = "B1"
	B2 Level = "B2"
	C1 Level = "C1"
	C2 Level = "C2"
)

// NumLevels is the number of classes in the vocabulary.
const NumLevels = 6

var levelIDs = map[Level]int{
	A1: 0,
	A2: 1,
	B1: 2,
	B2: 3,
	C1: 4,
	C2: 5,
}

var idLevels = [NumLevels]Level{A1, A2, B1, B2, C1, C2}

// Levels returns the full vocabulary in id order.
func Levels() []Level {
	return idLevels[:]
}

// LevelToID maps a raw level token to its class id.
//
// The token is trimmed and uppercased before lookup. A trailing "+" or
// "-" modifier is stripped, so "B1+" and "B1-" both resolve to B1. The
// bare legacy token "C" resolves to C1. Any other string is unmapped
// and callers must skip the record rather than fail.
func LevelToID(raw string) (int, bool) {
	token := strings.ToUpper(strings.TrimSpace(raw))
	token = strings.TrimRight(token, "+-")
	if token == "C" {
		token = "C1"
	}
	id, ok := levelIDs[Level(token)]
	return id, ok
}

// IDToLevel maps a class id back to its level code.
func IDToLevel(id int) (Level, bool) {
	if id < 0 || id >= NumLevels {
		return "", false
	}
	return idLevels[id], true
}
