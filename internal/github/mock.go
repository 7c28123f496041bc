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
	"encoding/json"
	"fmt"
	"time"

	apperrors "github.com/sirseerhq/sirseer-activity/internal/errors"
	"github.com/sirseerhq/sirseer-activity/internal/events"
)

// MockClient is a mock implementation of the GitHub Client interface for testing.
type MockClient struct {
	// Records to return from every method
	Records []events.Record

	// Error to return
	Error error

	// Behavior flags
	ShouldFailNotFound  bool
	ShouldFailRateLimit bool
	ShouldFailNetwork   bool

	// Track calls for verification
	CallCount    int
	LastMethod   string
	LastUsername string
	LastOwner    string
	LastRepo     string
}

// NewMockClient creates a new mock client with default test data
func NewMockClient() *MockClient {
	return &MockClient{
		Records: generateTestRecords(),
	}
}

// ListUserEvents implements the Client interface
func (m *MockClient) ListUserEvents(ctx context.Context, username string) ([]events.Record, error) {
	m.track("ListUserEvents", username, "", "")
	return m.respond(ctx, apperrors.ErrUserNotFound)
}

// ListCommitComments implements the Client interface
func (m *MockClient) ListCommitComments(ctx context.Context, owner, repo string) ([]events.Record, error) {
	m.track("ListCommitComments", "", owner, repo)
	return m.respond(ctx, apperrors.ErrRepoNotFound)
}

// ListAssignedIssues implements the Client interface
func (m *MockClient) ListAssignedIssues(ctx context.Context, owner, repo, assignee string) ([]events.Record, error) {
	m.track("ListAssignedIssues", assignee, owner, repo)
	return m.respond(ctx, apperrors.ErrRepoNotFound)
}

func (m *MockClient) track(method, username, owner, repo string) {
	m.CallCount++
	m.LastMethod = method
	m.LastUsername = username
	m.LastOwner = owner
	m.LastRepo = repo
}

func (m *MockClient) respond(ctx context.Context, notFound error) ([]events.Record, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if m.ShouldFailNotFound {
		return nil, fmt.Errorf("not found: %w", notFound)
	}
	if m.ShouldFailRateLimit {
		return nil, fmt.Errorf("GitHub API rate limit exceeded: %w", apperrors.ErrRateLimit)
	}
	if m.ShouldFailNetwork {
		return nil, fmt.Errorf("dial tcp: connection refused: %w", apperrors.ErrNetworkFailure)
	}
	if m.Error != nil {
		return nil, m.Error
	}
	return m.Records, nil
}

// generateTestRecords creates sample activity for testing
func generateTestRecords() []events.Record {
	now := time.Now().UTC().Truncate(time.Second)

	raw := func(v interface{}) json.RawMessage {
		data, _ := json.Marshal(v)
		return data
	}

	return []events.Record{
		{
			ID:        "3",
			Type:      events.PushEvent,
			CreatedAt: now,
			Repo:      "octocat/hello-world",
			Actor:     "octocat",
			Payload:   raw(map[string]interface{}{"ref": "refs/heads/main", "size": 2}),
		},
		{
			ID:        "2",
			Type:      events.CreateEvent,
			CreatedAt: now.Add(-time.Hour),
			Repo:      "octocat/hello-world",
			Actor:     "octocat",
			Payload:   raw(map[string]interface{}{"ref": "feature", "ref_type": "branch"}),
		},
		{
			ID:        "1",
			Type:      events.WatchEvent,
			CreatedAt: now.Add(-24 * time.Hour),
			Repo:      "acme/widget",
			Actor:     "octocat",
			Payload:   raw(map[string]interface{}{"action": "started"}),
		},
	}
}
