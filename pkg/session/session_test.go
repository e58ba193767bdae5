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
	"bytes"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/rps/pkg/rps"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func newSession(input string, opponent rps.Opponent) (*Session, *bytes.Buffer) {
	var out bytes.Buffer
	return New(Config{
		In:       strings.NewReader(input),
		Out:      &out,
		Opponent: opponent,
	}), &out
}

func TestRunPlaysUntilExit(t *testing.T) {
	session, out := newSession("1\nfoo\n0\n2\n2\n", rps.Fixed(rps.Rock))

	require.NoError(t, session.Run())

	output := out.String()
	assert.Contains(t, output, "Welcome to the latest RPS game!")
	assert.Equal(t, 3, strings.Count(output, prompt), "rejected selections should be asked again")
	assert.Contains(t, output, "You have chosen:\tpaper")
	assert.Contains(t, output, "Computer has chosen:\trock")
	assert.Contains(t, output, "You win!")
	assert.Contains(t, output, "OK, thanks for playing!")
	assert.Contains(t, output, "║   Wins   Loss    Tie   Total   Score     Elo   Error ║")

	assert.Contains(t, output, "║      1      0      0       1    100%")
	assert.Equal(t, Scores{Wins: 1}, session.Scores)
	require.Len(t, session.Rounds, 1)
	assert.Equal(t, Round{Number: 1, Player: rps.Paper, Opponent: rps.Rock, Outcome: rps.PlayerWins}, session.Rounds[0])
}

func TestRunRejectsUnknownMenuOption(t *testing.T) {
	session, out := newSession("9\n\n2\n", rps.Fixed(rps.Rock))

	require.NoError(t, session.Run())

	assert.Equal(t, 2, strings.Count(out.String(), "Please provide a valid input."))
	assert.Equal(t, 3, strings.Count(out.String(), "1. Play RPS"))
	assert.NotContains(t, out.String(), "╔", "no scoreboard without rounds")
}

func TestRunStopsAtEndOfInput(t *testing.T) {
	session, out := newSession("1\n", rps.Fixed(rps.Rock))

	require.NoError(t, session.Run())

	assert.Zero(t, session.Scores.Total())
	assert.NotContains(t, out.String(), "OK, thanks for playing!")
}

func TestRunReportsReadErrors(t *testing.T) {
	boom := errors.New("boom")
	session := New(Config{
		In:       iotest.ErrReader(boom),
		Out:      io.Discard,
		Opponent: rps.Fixed(rps.Rock),
	})

	assert.ErrorIs(t, session.Run(), boom)
}

func TestPlayResolvesEveryCombination(t *testing.T) {
	for _, player := range rps.Selections {
		for _, opponent := range rps.Selections {
			// the label is rejected, only the number is accepted
			input := player.String() + "\n" + strconv.Itoa(player.Int()) + "\n"
			session, out := newSession(input, rps.Fixed(opponent))

			round, err := session.Play()
			require.NoError(t, err)

			want := rps.Resolve(player, opponent)
			assert.Equal(t, want, round.Outcome, "%s vs %s", player, opponent)
			assert.Contains(t, out.String(), want.Verdict())
			assert.Equal(t, 1, session.Scores.Total())
		}
	}
}

func TestPlayRecordsScores(t *testing.T) {
	// paper vs rock, rock vs rock, scissors vs rock
	session, _ := newSession("2\n1\n3\n", rps.Fixed(rps.Rock))

	for i := 0; i < 3; i++ {
		_, err := session.Play()
		require.NoError(t, err)
	}

	_, err := session.Play()
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, Scores{Wins: 1, Losses: 1, Ties: 1}, session.Scores)

	var out bytes.Buffer
	session.config.Out = &out
	session.Report()
	assert.Contains(t, out.String(), "║      1      1      1       3     50%")
	assert.Equal(t, 3, session.Rounds[2].Number)
	assert.Equal(t, "Round #3: scissors vs rock: opponent wins", session.Rounds[2].String())
}

func TestNewDefaultsToRandomOpponent(t *testing.T) {
	session, _ := newSession("", nil)
	assert.IsType(t, &rps.Random{}, session.config.Opponent)
	assert.NotEqual(t, session.ID, New(Config{In: strings.NewReader("")}).ID)
}
