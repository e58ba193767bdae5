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
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/rps/internal/rps/config"
	"laptudirm.com/x/rps/internal/rps/logging"
	"laptudirm.com/x/rps/pkg/common"
)

func Root() *cobra.Command {
	var settings config.Config
	var logFile *os.File

	root := &cobra.Command{
		Use:   "rps",
		Short: "Play rock-paper-scissors against the computer",
		Long: heredoc.Doc(`rps is a console game of rock-paper-scissors against a
			computer opponent. Selections are made by number: 1 for rock,
			2 for paper, and 3 for scissors.

			Settings are read from the configuration file, a .env file in
			the working directory, and RPS_ environment variables, in that
			order. Every run writes a dated debug log to the log directory.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}

			if settings, err = config.Load(path); err != nil {
				return err
			}

			// Levels were checked by config.Load.
			fileLevel, _ := logrus.ParseLevel(settings.LogLevel)
			consoleLevel, _ := logrus.ParseLevel(settings.ConsoleLevel)

			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				fileLevel, consoleLevel = logrus.TraceLevel, logrus.TraceLevel
			}

			logFile, err = logging.Setup(
				logrus.StandardLogger(), settings.LogDir,
				fileLevel, consoleLevel, cmd.ErrOrStderr(),
			)
			return err
		},

		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logFile == nil {
				return nil
			}

			return logFile.Close()
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show rps's Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().StringP("config", "c", common.ConfigFile, "Path to the Configuration File")

	versionStr := "v0.1.0\n"
	root.SetVersionTemplate(versionStr)
	root.Version = versionStr

	// Register the various commands.
	root.AddCommand(Play(&settings))
	root.AddCommand(Resolve())
	root.AddCommand(Choices())

	return root
}
