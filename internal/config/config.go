// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides configuration management for sirseer-activity.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Command-line flags
//  2. Environment variables
//  3. Configuration file
//  4. Built-in defaults
//
// Credentials are not part of the file: they are read from the environment
// variables named by github.token_env and github.owner_env.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/sirseerhq/sirseer-activity/internal/errors"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from the given file, or from the first
// existing standard location when configPath is empty:
//   - .sirseer-activity.yaml (current directory)
//   - .sirseer-activity.yml (current directory)
//   - ~/.sirseer/activity.yaml
//
// A missing file in the standard locations is not an error.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if err := loadConfigFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		defaultPaths := []string{
			".sirseer-activity.yaml",
			".sirseer-activity.yml",
			filepath.Join(os.Getenv("HOME"), ".sirseer", "activity.yaml"),
		}

		for _, path := range defaultPaths {
			if _, err := os.Stat(path); err == nil {
				if err := loadConfigFile(path, cfg); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
				}
				break
			}
		}
	}

	applyEnvOverrides(cfg)

	cfg.Logging.Dir = expandPath(cfg.Logging.Dir)

	return cfg, nil
}

// loadConfigFile reads and parses a YAML config file
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if endpoint := os.Getenv("GITHUB_API_ENDPOINT"); endpoint != "" {
		cfg.GitHub.APIEndpoint = endpoint
	}

	if dir := os.Getenv("SIRSEER_ACTIVITY_LOG_DIR"); dir != "" {
		cfg.Logging.Dir = dir
	}
	if level := os.Getenv("SIRSEER_ACTIVITY_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
	if format := os.Getenv("SIRSEER_ACTIVITY_FORMAT"); format != "" {
		cfg.Defaults.OutputFormat = format
	}
}

// LoadCredentials reads the token and owner from the environment variables
// named in the GitHub section. It is called once per process.
func (c *Config) LoadCredentials() Credentials {
	return Credentials{
		Token: strings.TrimSpace(os.Getenv(c.GitHub.TokenEnv)),
		Owner: strings.TrimSpace(os.Getenv(c.GitHub.OwnerEnv)),
	}
}

// LogPath returns the full path of the active log file.
func (l LoggingConfig) LogPath() string {
	return filepath.Join(l.Dir, l.File)
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home := os.Getenv("HOME")
		if home == "" {
			home = os.Getenv("USERPROFILE") // Windows
		}
		path = filepath.Join(home, path[2:])
	}
	return os.ExpandEnv(path)
}

// Validate checks if the configuration contains valid values. It should be
// called after flags have been applied.
func (c *Config) Validate() error {
	if c.GitHub.APIEndpoint == "" {
		return fmt.Errorf("GitHub API endpoint cannot be empty")
	}
	if c.GitHub.TokenEnv == "" {
		return fmt.Errorf("GitHub token environment variable name cannot be empty")
	}
	if c.GitHub.Timeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got: %s", c.GitHub.Timeout)
	}
	switch c.Defaults.OutputFormat {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("output format must be %q or %q, got %q: %w",
			FormatText, FormatJSON, c.Defaults.OutputFormat, apperrors.ErrUnsupportedFormat)
	}
	if c.Logging.File == "" {
		return fmt.Errorf("log file name cannot be empty")
	}
	if c.Logging.MaxSizeMB <= 0 {
		return fmt.Errorf("log max size must be positive, got: %d", c.Logging.MaxSizeMB)
	}
	if c.Logging.MaxBackups < 0 {
		return fmt.Errorf("log max backups cannot be negative, got: %d", c.Logging.MaxBackups)
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	return nil
}
