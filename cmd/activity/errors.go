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

package main

import (
	"errors"
	"fmt"

	"github.com/sirseerhq/sirseer-activity/internal/config"
	apperrors "github.com/sirseerhq/sirseer-activity/internal/errors"
	"go.uber.org/zap"
)

// reportedError marks an error that has already been logged, so main only
// needs its exit code.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// query identifies what was asked for, for error messages.
type query struct {
	username string
	repo     string
}

// reportError logs err once with the message for its kind and returns it
// marked as reported.
func reportError(logger *zap.Logger, cfg *config.Config, q query, err error) error {
	logger.Error(errorMessage(cfg, q, err))
	logger.Debug("Request failed", zap.String("user", q.username), zap.String("repo", q.repo), zap.Error(err))
	return &reportedError{err: err}
}

func errorMessage(cfg *config.Config, q query, err error) string {
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound):
		return fmt.Sprintf("User '%s' not found. Please check the username and try again.", q.username)
	case errors.Is(err, apperrors.ErrRepoNotFound):
		return fmt.Sprintf("Repository '%s' not found. Please check the repository name and try again.", q.repo)
	case errors.Is(err, apperrors.ErrRateLimit):
		return "Error: Rate limit exceeded. Please try again later."
	case errors.Is(err, apperrors.ErrMissingCredentials):
		return fmt.Sprintf("Repository queries need a GitHub token and owner. Set %s and %s and try again.",
			cfg.GitHub.TokenEnv, cfg.GitHub.OwnerEnv)
	case errors.Is(err, apperrors.ErrHTTP):
		return fmt.Sprintf("HTTP error occurred: %v", err)
	case errors.Is(err, apperrors.ErrNetworkFailure):
		return fmt.Sprintf("Network error occurred: %v", err)
	case errors.Is(err, apperrors.ErrMalformedEvent):
		return fmt.Sprintf("Malformed event in response: %v", err)
	case errors.Is(err, apperrors.ErrInvalidEventType),
		errors.Is(err, apperrors.ErrRepoRequired),
		errors.Is(err, apperrors.ErrUnsupportedFormat):
		return fmt.Sprintf("Error: %v", err)
	}
	return fmt.Sprintf("An unexpected error occurred: %v", err)
}

// mapErrorToExitCode maps internal errors to appropriate exit codes
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, apperrors.ErrMissingCredentials) ||
		errors.Is(err, apperrors.ErrUserNotFound) ||
		errors.Is(err, apperrors.ErrRepoNotFound) ||
		errors.Is(err, apperrors.ErrRateLimit) ||
		errors.Is(err, apperrors.ErrHTTP) {
		return 2 // Credential, lookup and HTTP errors
	}

	if errors.Is(err, apperrors.ErrNetworkFailure) {
		return 3 // Network errors
	}

	return 1 // General error
}
