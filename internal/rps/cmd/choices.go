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

	"github.com/spf13/cobra"

	"laptudirm.com/x/rps/pkg/rps"
)

func Choices() *cobra.Command {
	return &cobra.Command{
		Use:   "choices",
		Short: "Lists the selections and what each of them beats",
		Args:  cobra.ExactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, selection := range rps.Selections {
				for _, defeated := range rps.Selections {
					if rps.Beats(selection, defeated) {
						fmt.Fprintf(out, "%d - %-10s beats %s\n", selection, selection, defeated)
					}
				}
			}

			return nil
		},
	}
}
