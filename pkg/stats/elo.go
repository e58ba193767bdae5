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

// Package stats estimates a player's strength from the throws of a session.
package stats

import "math"

// Elo returns the likely elo difference of the player against its opponent
// along with its p < 0.05 lower and upper bounds, given the number of won,
// tied, and lost throws.
func Elo(wins, ties, losses int) (lower float64, elo float64, upper float64) {
	N := float64(wins + ties + losses) // total number of throws

	if N == 0 {
		return 0, 0, 0
	}

	w := float64(wins) / N   // measured win probability
	d := float64(ties) / N   // measured tie probability
	l := float64(losses) / N // measured loss probability

	// empirical mean of the score
	mu := w + d/2

	// standard deviation of the mean score
	sigma := math.Sqrt(w*math.Pow(1-mu, 2)+d*math.Pow(0.5-mu, 2)+l*math.Pow(0-mu, 2)) / math.Sqrt(N)

	return scoreToElo(mu + phiInv(0.025)*sigma),
		scoreToElo(mu),
		scoreToElo(mu + phiInv(0.975)*sigma)
}

// Score returns the fraction of points won, counting a tie as half a win.
func Score(wins, ties, losses int) float64 {
	N := float64(wins + ties + losses)
	if N == 0 {
		return 0
	}

	return (float64(wins) + float64(ties)/2) / N
}

// scoreToElo converts an expected score into an elo difference. Scores of
// 0 or 1 have no finite elo and are reported as 0.
func scoreToElo(x float64) float64 {
	switch {
	case x <= 0, x >= 1:
		return 0

	default:
		return -400 * math.Log10(1/x-1)
	}
}

func phiInv(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}
