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

package session

import (
	"fmt"

	"laptudirm.com/x/rps/pkg/rps"
)

// Round is a single resolved throw of a Session.
type Round struct {
	Number int

	Player   rps.Selection
	Opponent rps.Selection
	Outcome  rps.Outcome
}

func (round Round) String() string {
	return fmt.Sprintf("Round #%d: %s vs %s: %s", round.Number, round.Player, round.Opponent, round.Outcome)
}

// Scores keeps the player's tally over a Session.
type Scores struct {
	Wins, Losses, Ties int
}

// Record adds the given Outcome to the tally.
func (scores *Scores) Record(outcome rps.Outcome) {
	switch outcome {
	case rps.PlayerWins:
		scores.Wins++
	case rps.OpponentWins:
		scores.Losses++
	case rps.Tie:
		scores.Ties++
	}
}

// Total returns the number of recorded Outcomes.
func (scores Scores) Total() int {
	return scores.Wins + scores.Losses + scores.Ties
}
