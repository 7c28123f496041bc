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

package config

import "time"

// Config represents the complete configuration for sirseer-activity.
// It consolidates settings from the config file, environment variables
// and command-line flags.
type Config struct {
	GitHub   GitHubConfig   `yaml:"github"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GitHubConfig contains GitHub REST API settings. TokenEnv and OwnerEnv name
// the environment variables the credentials are read from, so fine-grained
// tokens can live under a dedicated variable.
type GitHubConfig struct {
	APIEndpoint string        `yaml:"api_endpoint"`
	APIVersion  string        `yaml:"api_version"`
	TokenEnv    string        `yaml:"token_env"`
	OwnerEnv    string        `yaml:"owner_env"`
	Timeout     time.Duration `yaml:"timeout"`
}

// DefaultsConfig holds values used when the corresponding flag is not given.
type DefaultsConfig struct {
	EventType    string `yaml:"event_type"`
	OutputFormat string `yaml:"output_format"`
}

// LoggingConfig controls the console and rotating file log sinks.
type LoggingConfig struct {
	Dir        string `yaml:"dir"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	Level      string `yaml:"level"`
}

// Credentials is the snapshot of authentication values taken once at
// startup. Both fields are optional for public queries.
type Credentials struct {
	Token string
	Owner string
}

// Output formats accepted by Defaults.OutputFormat and --format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// DefaultConfig returns a Config suitable for public github.com usage.
func DefaultConfig() *Config {
	return &Config{
		GitHub: GitHubConfig{
			APIEndpoint: "https://api.github.com",
			APIVersion:  "2022-11-28",
			TokenEnv:    "GITHUB_TOKEN",
			OwnerEnv:    "GITHUB_OWNER",
			Timeout:     30 * time.Second,
		},
		Defaults: DefaultsConfig{
			EventType:    "all",
			OutputFormat: FormatText,
		},
		Logging: LoggingConfig{
			Dir:        "logs",
			File:       "github-user-activity.log",
			MaxSizeMB:  10,
			MaxBackups: 10,
			Level:      "info",
		},
	}
}
