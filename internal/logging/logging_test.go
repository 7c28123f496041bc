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

package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/sirseerhq/sirseer-activity/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func testConfig(t *testing.T) config.LoggingConfig {
	cfg := config.DefaultConfig().Logging
	cfg.Dir = filepath.Join(t.TempDir(), "logs")
	return cfg
}

func TestNewWritesConsoleAndFile(t *testing.T) {
	cfg := testConfig(t)
	var console bytes.Buffer

	logger, err := New(cfg, &console)
	require.NoError(t, err)

	logger.Debug("debug only in file")
	logger.Error("No events found for user: octocat")
	require.NoError(t, logger.Close())

	line := regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2},\d{3}\] \[ERROR\] No events found for user: octocat$`)
	assert.Regexp(t, line, strings.TrimSpace(console.String()))
	assert.NotContains(t, console.String(), "debug only in file")

	data, err := os.ReadFile(filepath.Join(cfg.Dir, "github-user-activity.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "[DEBUG] debug only in file")
	assert.Contains(t, string(data), "[ERROR] No events found for user: octocat")
}

func TestNewCreatesNestedDirectory(t *testing.T) {
	cfg := testConfig(t)
	cfg.Dir = filepath.Join(cfg.Dir, "a", "b")

	logger, err := New(cfg, &bytes.Buffer{})
	require.NoError(t, err)
	logger.Info("hello")
	require.NoError(t, logger.Close())

	_, err = os.Stat(filepath.Join(cfg.Dir, cfg.File))
	assert.NoError(t, err)
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	cfg := testConfig(t)
	cfg.Level = "chatty"
	_, err := New(cfg, &bytes.Buffer{})
	assert.ErrorContains(t, err, "unknown log level")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"", zapcore.InfoLevel},
		{"INFO", zapcore.InfoLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestFromCore(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := FromCore(core)

	logger.Warn("Unrecognized event type")
	require.NoError(t, logger.Close())

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
}

func TestParseLevelAgreesWithConfigValidate(t *testing.T) {
	for _, level := range []string{"", "debug", "info", "INFO", "warn", "warning", "Warning", "error", "chatty", "verbose"} {
		cfg := config.DefaultConfig()
		cfg.Logging.Level = level

		_, parseErr := ParseLevel(level)
		validateErr := cfg.Validate()
		assert.Equal(t, parseErr == nil, validateErr == nil,
			"level %q: ParseLevel error = %v, Validate error = %v", level, parseErr, validateErr)
	}
}

func TestNewUsesConfiguredLogPath(t *testing.T) {
	cfg := testConfig(t)
	cfg.File = "custom.log"

	logger, err := New(cfg, &bytes.Buffer{})
	require.NoError(t, err)
	logger.Info("hello")
	require.NoError(t, logger.Close())

	_, err = os.Stat(cfg.LogPath())
	assert.NoError(t, err)
}
