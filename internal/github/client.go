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

package github

import (
	"context"

	"github.com/sirseerhq/sirseer-activity/internal/events"
)

// Client defines the interface for reading activity from GitHub's API.
// Every method performs exactly one GET request and never retries.
// This interface allows for easy mocking in tests.
type Client interface {
	// ListUserEvents retrieves the most recent events performed by username.
	ListUserEvents(ctx context.Context, username string) ([]events.Record, error)

	// ListCommitComments retrieves the commit comments of owner/repo, each
	// as a CommitCommentEvent record. Requires a token and a non-empty owner.
	ListCommitComments(ctx context.Context, owner, repo string) ([]events.Record, error)

	// ListAssignedIssues retrieves the issues of owner/repo assigned to
	// assignee, each as an IssueCommentEvent record. Pull requests are
	// excluded. Requires a token and a non-empty owner.
	ListAssignedIssues(ctx context.Context, owner, repo, assignee string) ([]events.Record, error)
}
