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

// Outcome represents the result of a single throw, from the player's side.
type Outcome int

const (
	PlayerWins   Outcome = +1
	Tie          Outcome = 0
	OpponentWins Outcome = -1
)

// beats maps every Selection to the Selection it defeats.
var beats = map[Selection]Selection{
	Rock:     Scissors, // rock blunts scissors
	Paper:    Rock,     // paper covers rock
	Scissors: Paper,    // scissors cut paper
}

// Beats reports whether a defeats b.
func Beats(a, b Selection) bool {
	defeated, found := beats[a]
	return found && defeated == b
}

// Resolve returns the Outcome of the player throwing player against an
// opponent throwing opponent. Both Selections must be valid.
func Resolve(player, opponent Selection) Outcome {
	switch {
	case player == opponent:
		return Tie
	case Beats(player, opponent):
		return PlayerWins
	default:
		return OpponentWins
	}
}

// Inverse returns the Outcome as seen from the opponent's side.
func (outcome Outcome) Inverse() Outcome {
	return -outcome
}

// String returns a string representation of the given Outcome.
func (outcome Outcome) String() string {
	switch outcome {
	case PlayerWins:
		return "player wins"
	case Tie:
		return "tie"
	case OpponentWins:
		return "opponent wins"
	default:
		return "illegal outcome"
	}
}

// Verdict returns the line announced to a player facing the computer.
func (outcome Outcome) Verdict() string {
	switch outcome {
	case PlayerWins:
		return "You win!"
	case OpponentWins:
		return "Computer Wins!"
	default:
		return "N/A - tie"
	}
}
