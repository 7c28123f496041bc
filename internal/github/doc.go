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

// Package github provides a client for reading user activity from GitHub's
// REST API. It wraps google/go-github and converts responses into
// events.Record values, mapping every failure onto one of the sentinel
// errors in internal/errors.
//
// The package includes:
//   - A Client interface with one method per endpoint
//   - A REST implementation built on go-github
//   - A transport that sets the required headers and caps response size
//   - Mock client for testing
//
// Basic usage:
//
//	client, err := github.NewRESTClient(github.Options{Token: os.Getenv("GITHUB_TOKEN")})
//	if err != nil {
//	    // Handle error
//	}
//	records, err := client.ListUserEvents(ctx, "octocat")
//	if errors.Is(err, apperrors.ErrUserNotFound) {
//	    // Handle missing user
//	}
package github
