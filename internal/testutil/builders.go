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

package testutil

import (
	"fmt"
	"time"
)

// EventBuilder provides a fluent API for creating events as GitHub returns
// them from /users/{username}/events.
type EventBuilder struct {
	id        int
	eventType string
	repo      string
	actor     string
	createdAt time.Time
	payload   map[string]interface{}
}

// NewEventBuilder creates a new event builder with defaults
func NewEventBuilder(id int, eventType string) *EventBuilder {
	return &EventBuilder{
		id:        id,
		eventType: eventType,
		repo:      "octocat/hello-world",
		actor:     "octocat",
		createdAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		payload:   map[string]interface{}{},
	}
}

// WithRepo sets the repository full name
func (b *EventBuilder) WithRepo(repo string) *EventBuilder {
	b.repo = repo
	return b
}

// WithActor sets the actor login
func (b *EventBuilder) WithActor(actor string) *EventBuilder {
	b.actor = actor
	return b
}

// WithCreatedAt sets when the event happened
func (b *EventBuilder) WithCreatedAt(t time.Time) *EventBuilder {
	b.createdAt = t
	return b
}

// WithPayload sets one payload field
func (b *EventBuilder) WithPayload(key string, value interface{}) *EventBuilder {
	b.payload[key] = value
	return b
}

// Build creates the event data structure
func (b *EventBuilder) Build() map[string]interface{} {
	event := map[string]interface{}{
		"id":   fmt.Sprint(b.id),
		"type": b.eventType,
		"actor": map[string]interface{}{
			"login": b.actor,
		},
		"payload":    b.payload,
		"public":     true,
		"created_at": b.createdAt.Format(time.RFC3339),
	}
	if b.repo != "" {
		event["repo"] = map[string]interface{}{
			"name": b.repo,
			"url":  "https://api.github.com/repos/" + b.repo,
		}
	}
	return event
}

// CreateEventJSON returns a CreateEvent of refType/ref in repo.
func CreateEventJSON(id int, repo, refType, ref string) map[string]interface{} {
	return NewEventBuilder(id, "CreateEvent").
		WithRepo(repo).
		WithPayload("ref_type", refType).
		WithPayload("ref", ref).
		Build()
}

// PushEventJSON returns a PushEvent of size commits to ref in repo.
func PushEventJSON(id int, repo, ref string, size int) map[string]interface{} {
	return NewEventBuilder(id, "PushEvent").
		WithRepo(repo).
		WithPayload("ref", ref).
		WithPayload("size", size).
		Build()
}

// CommitCommentJSON returns a commit comment as served by
// /repos/{owner}/{repo}/comments.
func CommitCommentJSON(id int, repo, author, body string) map[string]interface{} {
	return map[string]interface{}{
		"id":         id,
		"html_url":   fmt.Sprintf("https://github.com/%s/commit/abc%d#commitcomment-%d", repo, id, id),
		"body":       body,
		"commit_id":  fmt.Sprintf("abc%d", id),
		"user":       map[string]interface{}{"login": author},
		"created_at": time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC).Format(time.RFC3339),
	}
}

// IssueJSON returns an issue as served by /repos/{owner}/{repo}/issues.
// A pull request is marked with pull_request links, as GitHub does.
func IssueJSON(number int, title string, comments int, pullRequest bool, assignees ...string) map[string]interface{} {
	users := make([]map[string]interface{}, len(assignees))
	for i, a := range assignees {
		users[i] = map[string]interface{}{"login": a}
	}

	issue := map[string]interface{}{
		"id":         number * 1000,
		"number":     number,
		"title":      title,
		"state":      "open",
		"comments":   comments,
		"assignees":  users,
		"user":       map[string]interface{}{"login": "reporter"},
		"created_at": time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC).Format(time.RFC3339),
	}
	if len(users) > 0 {
		issue["assignee"] = users[0]
	}
	if pullRequest {
		issue["pull_request"] = map[string]interface{}{
			"url": fmt.Sprintf("https://api.github.com/repos/o/r/pulls/%d", number),
		}
	}
	return issue
}
