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

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/rps/pkg/common"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "RPS_"

type Config struct {
	// Level of the entries written to the log file.
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL"`

	// Level of the entries echoed to the console.
	ConsoleLevel string `yaml:"console-level" env:"CONSOLE_LEVEL"`

	// Directory the dated log files are written to.
	LogDir string `yaml:"log-dir" env:"LOG_DIR"`

	// Seed of the computer opponent, 0 for a random one.
	Seed int64 `yaml:"seed" env:"SEED"`

	// How long the computer opponent takes to make a throw.
	Think time.Duration `yaml:"think" env:"THINK"`
}

func Default() Config {
	return Config{
		LogLevel:     "debug",
		ConsoleLevel: "warn",
		LogDir:       common.StateDirectory,
		Seed:         0,
		Think:        500 * time.Millisecond,
	}
}

// Load reads the configuration in order of increasing precedence from the
// defaults, the YAML file at path, a .env file in the working directory, and
// the RPS_ environment variables. A missing file is only an error if path
// is not the default configuration file.
func Load(path string) (Config, error) {
	config := Default()

	file, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, &config); err != nil {
			return config, fmt.Errorf("config: parse %s: %w", path, err)
		}

	case errors.Is(err, fs.ErrNotExist) && path == common.ConfigFile:
		logrus.WithField("path", path).Trace("No configuration file found")

	default:
		return config, fmt.Errorf("config: %w", err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config, fmt.Errorf("config: load .env: %w", err)
	}

	if err := env.ParseWithOptions(&config, env.Options{Prefix: EnvPrefix}); err != nil {
		return config, fmt.Errorf("config: parse env: %w", err)
	}

	return config, config.Validate()
}

// Validate checks that the log levels are known to logrus and the think
// time is not negative.
func (config Config) Validate() error {
	if _, err := logrus.ParseLevel(config.LogLevel); err != nil {
		return fmt.Errorf("config: log-level: %w", err)
	}

	if _, err := logrus.ParseLevel(config.ConsoleLevel); err != nil {
		return fmt.Errorf("config: console-level: %w", err)
	}

	if config.Think < 0 {
		return fmt.Errorf("config: think: negative duration %s", config.Think)
	}

	return nil
}
