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

// Package session runs interactive games of rock-paper-scissors between a
// player on a text console and a computer opponent.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/rps/pkg/rps"
	"laptudirm.com/x/rps/pkg/stats"
)

const SPIN = 14

const (
	menu = "Please select from one of the following menu options:\n" +
		"1. Play RPS\n" +
		"2. Exit RPS\n"

	prompt = "Please provide your choice (1 - rock, 2 - paper, 3 - scissors):  "
)

var verdictColors = map[rps.Outcome]*color.Color{
	rps.PlayerWins:   color.New(color.FgGreen, color.Bold),
	rps.OpponentWins: color.New(color.FgRed, color.Bold),
	rps.Tie:          color.New(color.FgYellow),
}

// Config contains the collaborators of a Session.
type Config struct {
	In  io.Reader // where the player's lines are read from
	Out io.Writer // where prompts and results are written to

	Opponent rps.Opponent

	// How long the opponent spins before making a throw.
	ThinkTime time.Duration
}

// Session is a single sitting of a player at the console. Its scores are
// kept in memory and are lost once the Session ends.
type Session struct {
	ID     uuid.UUID
	Scores Scores
	Rounds []Round

	config Config
	input  *bufio.Scanner
	log    *logrus.Entry
}

// New creates a Session from the given Config. A nil Opponent is replaced
// by a randomly seeded rps.Random.
func New(config Config) *Session {
	if config.Opponent == nil {
		config.Opponent = rps.NewRandom(0)
	}

	id := uuid.New()
	return &Session{
		ID:     id,
		config: config,
		input:  bufio.NewScanner(config.In),
		log:    logrus.WithField("session", id.String()),
	}
}

// Run shows the menu until the player exits or input runs out, playing a
// Round each time the player asks for one.
func (session *Session) Run() error {
	session.log.Debug("Starting session")
	fmt.Fprintln(session.config.Out, "Welcome to the latest RPS game!")
	fmt.Fprintln(session.config.Out)

loop:
	for {
		fmt.Fprint(session.config.Out, menu)

		line, err := session.readLine()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return err
		}

		switch strings.TrimSpace(line) {
		case "1":
			if _, err := session.Play(); errors.Is(err, io.EOF) {
				break loop
			} else if err != nil {
				return err
			}

		case "2":
			fmt.Fprintln(session.config.Out, "OK, thanks for playing!")
			break loop

		default:
			session.log.WithField("input", line).Debug("Invalid menu option")
			fmt.Fprintln(session.config.Out, "Please provide a valid input.")
			fmt.Fprintln(session.config.Out)
		}
	}

	if session.Scores.Total() > 0 {
		session.Report()
	}

	session.log.WithFields(logrus.Fields{
		"wins":   session.Scores.Wins,
		"losses": session.Scores.Losses,
		"ties":   session.Scores.Ties,
	}).Debug("Ending session")
	return nil
}

// Play plays a single Round: the player is asked for a Selection until a
// valid one is given, the opponent throws, and the Outcome is announced
// and added to the Session's Scores.
func (session *Session) Play() (Round, error) {
	player, err := session.ask()
	if err != nil {
		return Round{}, err
	}

	fmt.Fprintf(session.config.Out, "You have chosen:\t%s\n", player)
	opponent := session.think()
	fmt.Fprintf(session.config.Out, "Computer has chosen:\t%s\n", opponent)

	round := Round{
		Number:   len(session.Rounds) + 1,
		Player:   player,
		Opponent: opponent,
		Outcome:  rps.Resolve(player, opponent),
	}

	session.Rounds = append(session.Rounds, round)
	session.Scores.Record(round.Outcome)
	session.log.Info(round)

	verdictColors[round.Outcome].Fprintln(session.config.Out, round.Outcome.Verdict())
	fmt.Fprintln(session.config.Out)
	return round, nil
}

// Report prints the Session's scoreboard.
func (session *Session) Report() {
	const width = 54
	out := session.config.Out
	scores := session.Scores

	lower, elo, upper := stats.Elo(scores.Wins, scores.Ties, scores.Losses)
	row := fmt.Sprintf(
		"   %4d   %4d   %4d   %5d   %4.0f%%   %+5.0f   %5.0f",
		scores.Wins, scores.Losses, scores.Ties, scores.Total(),
		100*stats.Score(scores.Wins, scores.Ties, scores.Losses), elo, math.Abs(math.Max(upper-elo, elo-lower)),
	)

	highlight := color.New(color.FgGreen)
	if elo < 0 {
		highlight = color.New(color.FgRed)
	}

	fmt.Fprintln(out, "╔"+strings.Repeat("═", width)+"╗")
	fmt.Fprintln(out, "║   Wins   Loss    Tie   Total   Score     Elo   Error ║")
	fmt.Fprintln(out, "╠"+strings.Repeat("═", width)+"╣")
	fmt.Fprintf(out, "║%s ║\n", highlight.Sprint(row))
	fmt.Fprintln(out, "╚"+strings.Repeat("═", width)+"╝")
}

// ask prompts the player until a valid Selection is read.
func (session *Session) ask() (rps.Selection, error) {
	for {
		fmt.Fprint(session.config.Out, prompt)

		line, err := session.readLine()
		if err != nil {
			return 0, err
		}

		selection, err := rps.Parse(line)
		if err == nil {
			session.log.WithField("selection", selection).Debug("Correct input received")
			return selection, nil
		}

		session.log.WithError(err).Warn("Selection rejected")
	}
}

// think has the opponent make its throw, showing a spinner in the meantime.
func (session *Session) think() rps.Selection {
	if session.config.ThinkTime > 0 {
		s := spinner.New(
			spinner.CharSets[SPIN], 100*time.Millisecond,
			spinner.WithWriter(session.config.Out),
			spinner.WithSuffix(" Computer is choosing..."),
		)

		s.Start()
		time.Sleep(session.config.ThinkTime)
		s.Stop()
	}

	return session.config.Opponent.Choose()
}

func (session *Session) readLine() (string, error) {
	if session.input.Scan() {
		return session.input.Text(), nil
	}

	if err := session.input.Err(); err != nil {
		return "", err
	}

	return "", io.EOF
}
