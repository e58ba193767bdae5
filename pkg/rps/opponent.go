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
	"math/rand"
	"time"
)

// Opponent is anything which can make a throw against the player.
type Opponent interface {
	Choose() Selection
}

// Random is an Opponent which picks uniformly from Selections.
type Random struct {
	source *rand.Rand
}

var _ Opponent = (*Random)(nil)

// NewRandom creates a Random opponent. A seed of zero seeds the opponent
// from the current time, any other seed makes its throws reproducible.
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Random{source: rand.New(rand.NewSource(seed))}
}

func (random *Random) Choose() Selection {
	return Selections[random.source.Intn(len(Selections))]
}

// Fixed is an Opponent which always throws the same Selection.
type Fixed Selection

var _ Opponent = Fixed(Rock)

func (fixed Fixed) Choose() Selection {
	return Selection(fixed)
}
