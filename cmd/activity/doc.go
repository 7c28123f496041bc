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

// Package main implements the sirseer-activity command-line interface.
// This tool lists a GitHub user's recent activity, optionally narrowed to
// one event type and one repository, and prints one summary line per event.
//
// The CLI supports:
//   - Public events of any user, with or without a token
//   - Commit comments and assigned issues of a repository (token and owner required)
//   - Text output for terminals, NDJSON for scripts
//   - A rotating log file mirroring every console message
//
// Usage:
//
//	sirseer-activity events <username> [event-type] [flags]
//	sirseer-activity types
//
// Example:
//
//	sirseer-activity events octocat PushEvent --repo hello-world
//	GITHUB_TOKEN=... GITHUB_OWNER=acme sirseer-activity events octocat IssueCommentEvent -r widget
//
// Exit codes:
//   - 0: Success, including an empty result
//   - 1: General error, invalid arguments or malformed event
//   - 2: Missing credentials, not found, rate limited or other HTTP error
//   - 3: Network error
package main
