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
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/rps/pkg/rps"
)

// rps resolve
func Resolve() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve player opponent",
		Short: "Resolve the outcome of a single throw",
		Args:  cobra.ExactArgs(2),
		Long: heredoc.Doc(`resolve prints who wins when the player throws the first
			selection and the opponent throws the second. Selections may
			be given by number (1, 2, 3) or by name (rock, paper, scissors).`),

		RunE: func(cmd *cobra.Command, args []string) error {
			player, err := rps.ParseLabel(args[0])
			if err != nil {
				return err
			}

			opponent, err := rps.ParseLabel(args[1])
			if err != nil {
				return err
			}

			outcome := rps.Resolve(player, opponent)
			logrus.WithFields(logrus.Fields{
				"player":   player,
				"opponent": opponent,
			}).Debugf("Resolved throw: %s", outcome)

			fmt.Fprintf(cmd.OutOrStdout(), "%s vs %s: %s\n", player, opponent, outcome)
			return nil
		},
	}
}
