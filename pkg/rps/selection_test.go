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

package rps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for _, v := range []int{1, 2, 3} {
		selection, err := New(v)
		require.NoError(t, err)
		assert.Equal(t, v, selection.Int())
		assert.True(t, selection.Valid())
	}

	for _, v := range []int{0, 4, -1, 100} {
		_, err := New(v)
		assert.ErrorIs(t, err, ErrOutOfRange, "New(%d)", v)
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		input string
		want  Selection
		err   error
	}{
		{"1", Rock, nil},
		{"2", Paper, nil},
		{"3", Scissors, nil},
		{" 3\n", Scissors, nil},
		{"+2", Paper, nil},
		{"0", 0, ErrOutOfRange},
		{"4", 0, ErrOutOfRange},
		{"-3", 0, ErrOutOfRange},
		{"random", 0, ErrInvalidFormat},
		{"", 0, ErrInvalidFormat},
		{"1.5", 0, ErrInvalidFormat},
		{"rock", 0, ErrInvalidFormat},
	}

	for _, tc := range cases {
		got, err := Parse(tc.input)
		if tc.err != nil {
			assert.ErrorIs(t, err, tc.err, "Parse(%q)", tc.input)
			continue
		}

		require.NoError(t, err, "Parse(%q)", tc.input)
		assert.Equal(t, tc.want, got, "Parse(%q)", tc.input)
	}
}

func TestParseLabel(t *testing.T) {
	for input, want := range map[string]Selection{
		"rock":      Rock,
		"Paper":     Paper,
		" SCISSORS": Scissors,
		"2":         Paper,
	} {
		got, err := ParseLabel(input)
		require.NoError(t, err, "ParseLabel(%q)", input)
		assert.Equal(t, want, got)
	}

	_, err := ParseLabel("lizard")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ParseLabel("5")
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestFrom(t *testing.T) {
	cases := []struct {
		input any
		want  Selection
		err   error
	}{
		{1, Rock, nil},
		{"2", Paper, nil},
		{int64(3), Scissors, nil},
		{uint8(1), Rock, nil},
		{Scissors, Scissors, nil},
		{0, 0, ErrOutOfRange},
		{int32(4), 0, ErrOutOfRange},
		{Selection(7), 0, ErrOutOfRange},
		{uint64(1 << 63), 0, ErrOutOfRange},
		{"random", 0, ErrInvalidFormat},
		{nil, 0, ErrInvalidFormat},
		{2.0, 0, ErrInvalidFormat},
		{[]int{1}, 0, ErrInvalidFormat},
	}

	for _, tc := range cases {
		got, err := From(tc.input)
		if tc.err != nil {
			assert.ErrorIs(t, err, tc.err, "From(%#v)", tc.input)
			continue
		}

		require.NoError(t, err, "From(%#v)", tc.input)
		assert.Equal(t, tc.want, got)
	}
}

func TestSelectionString(t *testing.T) {
	assert.Equal(t, "rock", Rock.String())
	assert.Equal(t, "paper", Paper.String())
	assert.Equal(t, "scissors", Scissors.String())
	assert.Equal(t, "unknown", Selection(0).String())
	assert.False(t, Selection(0).Valid())
}
