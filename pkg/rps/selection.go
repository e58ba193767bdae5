// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package rps implements the rules of rock-paper-scissors: validated
// selections, the outcome of a throw, and computer opponents.
package rps

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Selection represents a single throw. The zero value is not a valid
// Selection; use New, Parse, or From to obtain one.
type Selection int

const (
	Rock     Selection = 1
	Paper    Selection = 2
	Scissors Selection = 3
)

// Selections lists every valid Selection in numeric order.
var Selections = [...]Selection{Rock, Paper, Scissors}

var labels = map[Selection]string{
	Rock:     "rock",
	Paper:    "paper",
	Scissors: "scissors",
}

var (
	// ErrInvalidFormat is returned when a candidate cannot be read as an integer.
	ErrInvalidFormat = errors.New("selection is not an integer")

	// ErrOutOfRange is returned when an integer candidate is not a Selection.
	ErrOutOfRange = errors.New("selection is not between 1 and 3")
)

// New validates the given integer and returns the matching Selection.
func New(v int) (Selection, error) {
	selection := Selection(v)
	if !selection.Valid() {
		return 0, fmt.Errorf("rps: %d: %w", v, ErrOutOfRange)
	}

	return selection, nil
}

// Parse converts the given string into an integer and validates it.
// Surrounding white space is ignored.
func Parse(s string) (Selection, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("rps: %q: %w", s, ErrInvalidFormat)
	}

	return New(v)
}

// ParseLabel is like Parse but also accepts the label of a Selection,
// ignoring case.
func ParseLabel(s string) (Selection, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for selection, label := range labels {
		if label == name {
			return selection, nil
		}
	}

	return Parse(s)
}

// From validates a candidate of any integer kind, a string, or a Selection.
// Every other type, nil included, fails with ErrInvalidFormat.
func From(v any) (Selection, error) {
	switch v := v.(type) {
	case Selection:
		return New(int(v))
	case string:
		return Parse(v)
	case int:
		return New(v)
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		n, err := strconv.Atoi(fmt.Sprint(v))
		if err != nil {
			// too large for an int, so it can't be a Selection anyway
			return 0, fmt.Errorf("rps: %v: %w", v, ErrOutOfRange)
		}
		return New(n)
	default:
		return 0, fmt.Errorf("rps: %T: %w", v, ErrInvalidFormat)
	}
}

// Valid reports whether the Selection is one of Rock, Paper, or Scissors.
func (s Selection) Valid() bool {
	_, found := labels[s]
	return found
}

// Int returns the numeric value of the Selection.
func (s Selection) Int() int {
	return int(s)
}

// String returns the label of the Selection.
func (s Selection) String() string {
	if label, found := labels[s]; found {
		return label
	}

	return "unknown"
}
