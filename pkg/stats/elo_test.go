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

package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEloNoGames(t *testing.T) {
	lower, elo, upper := Elo(0, 0, 0)
	assert.Zero(t, lower)
	assert.Zero(t, elo)
	assert.Zero(t, upper)
}

func TestEloEvenScore(t *testing.T) {
	lower, elo, upper := Elo(10, 5, 10)
	assert.InDelta(t, 0, elo, 1e-9)
	assert.Less(t, lower, elo)
	assert.Greater(t, upper, elo)
	assert.InDelta(t, -lower, upper, 1e-9)
}

func TestEloFavoursWinner(t *testing.T) {
	_, ahead, _ := Elo(15, 5, 5)
	_, behind, _ := Elo(5, 5, 15)

	assert.Greater(t, ahead, 0.0)
	assert.Less(t, behind, 0.0)
	assert.InDelta(t, ahead, -behind, 1e-9)
}

func TestEloPerfectScore(t *testing.T) {
	// a perfect score has no finite estimate
	_, elo, _ := Elo(3, 0, 0)
	assert.Zero(t, elo)
}

func TestScore(t *testing.T) {
	assert.Equal(t, 0.0, Score(0, 0, 0))
	assert.Equal(t, 0.5, Score(1, 2, 1))
	assert.InDelta(t, 5.0/6.0, Score(2, 1, 0), 1e-9)
}
