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

// Package errors defines sentinel errors for consistent error handling across the application.
// Each sentinel names one failure kind; the CLI maps them to exit codes with errors.Is.
package errors

import "errors"

// API client failures.
var (
	// ErrMissingCredentials indicates a repository-scoped query was attempted
	// without a token or owner. No request is sent. Maps to exit code 2.
	ErrMissingCredentials = errors.New("missing github credentials")

	// ErrUserNotFound indicates the requested user does not exist (HTTP 404).
	// Maps to exit code 2.
	ErrUserNotFound = errors.New("user not found")

	// ErrRepoNotFound indicates the requested repository does not exist or is
	// not visible to the token (HTTP 404). Maps to exit code 2.
	ErrRepoNotFound = errors.New("repository not found")

	// ErrRateLimit indicates GitHub API rate limit has been exceeded.
	// Maps to exit code 2.
	ErrRateLimit = errors.New("github rate limit exceeded")

	// ErrHTTP indicates any other non-success HTTP response.
	// Maps to exit code 2.
	ErrHTTP = errors.New("github http error")

	// ErrNetworkFailure indicates a network connection problem.
	// Maps to exit code 3.
	ErrNetworkFailure = errors.New("network connection failed")

	// ErrUnexpected covers failures that fit no other kind, such as an
	// undecodable response body. Maps to exit code 1.
	ErrUnexpected = errors.New("unexpected error")
)

// Front-end and decoding failures. All map to exit code 1.
var (
	ErrInvalidEventType  = errors.New("invalid event type")
	ErrRepoRequired      = errors.New("repository required for event type")
	ErrMalformedEvent    = errors.New("malformed event")
	ErrUnsupportedFormat = errors.New("unsupported output format")
)
