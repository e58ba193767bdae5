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

package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/rps/internal/rps/config"
	"laptudirm.com/x/rps/pkg/rps"
	"laptudirm.com/x/rps/pkg/session"
)

// rps play
func Play(settings *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game against the computer",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`play starts an interactive game on the console. Pick
			"Play RPS" from the menu to throw against the computer, and
			"Exit RPS" to leave. Invalid selections are asked for again.

			The scoreboard of the game is shown on exit; it is not saved
			anywhere once the game ends.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flag("seed").Changed {
				seed, err := cmd.Flags().GetInt64("seed")
				if err != nil {
					return err
				}
				settings.Seed = seed
			}

			if cmd.Flag("think").Changed {
				think, err := cmd.Flags().GetDuration("think")
				if err != nil {
					return err
				}
				settings.Think = think
			}

			if err := settings.Validate(); err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"seed":  settings.Seed,
				"think": settings.Think,
			}).Debug("Starting game")

			return session.New(session.Config{
				In:        cmd.InOrStdin(),
				Out:       cmd.OutOrStdout(),
				Opponent:  rps.NewRandom(settings.Seed),
				ThinkTime: settings.Think,
			}).Run()
		},
	}

	cmd.Flags().Int64P("seed", "s", 0, "Seed of the Computer Opponent")
	cmd.Flags().Duration("think", 0, "Time the Computer takes to Choose")

	return cmd
}
