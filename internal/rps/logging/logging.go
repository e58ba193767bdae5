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

package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/rps/pkg/common"
)

// LevelHook writes every entry at or above Level to Writer.
type LevelHook struct {
	Writer    io.Writer
	Formatter logrus.Formatter
	Level     logrus.Level
}

var _ logrus.Hook = (*LevelHook)(nil)

func (hook *LevelHook) Levels() []logrus.Level {
	var levels []logrus.Level
	for _, level := range logrus.AllLevels {
		if level <= hook.Level {
			levels = append(levels, level)
		}
	}

	return levels
}

func (hook *LevelHook) Fire(entry *logrus.Entry) error {
	line, err := hook.Formatter.Format(entry)
	if err != nil {
		return err
	}

	_, err = hook.Writer.Write(line)
	return err
}

// FileName returns the name of the log file for the given day.
func FileName(day time.Time) string {
	return "rps-" + day.Format("20060102") + ".log"
}

// Setup routes the entries of logger into the day's log file inside dir,
// which is truncated first, and echoes the more important ones to console.
// The returned file should be closed once logging is done.
func Setup(logger *logrus.Logger, dir string, fileLevel, consoleLevel logrus.Level, console io.Writer) (*os.File, error) {
	if err := common.TryMkdir(dir); err != nil {
		return nil, err
	}

	file, err := os.Create(filepath.Join(dir, FileName(time.Now())))
	if err != nil {
		return nil, err
	}

	logger.SetOutput(io.Discard)
	logger.SetLevel(max(fileLevel, consoleLevel))
	logger.ReplaceHooks(logrus.LevelHooks{})

	logger.AddHook(&LevelHook{
		Writer: file,
		Formatter: &logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		},
		Level: fileLevel,
	})

	logger.AddHook(&LevelHook{
		Writer: console,
		Formatter: &logrus.TextFormatter{
			DisableTimestamp: true,
			PadLevelText:     true,
		},
		Level: consoleLevel,
	})

	return file, nil
}
