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
	"net/http"
	"strings"
	"testing"
	"time"

	apperrors "github.com/sirseerhq/sirseer-activity/internal/errors"
	"github.com/sirseerhq/sirseer-activity/internal/events"
	"github.com/sirseerhq/sirseer-activity/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, endpoint, token string) *RESTClient {
	t.Helper()
	client, err := NewRESTClient(Options{
		Endpoint:   endpoint,
		APIVersion: "2022-11-28",
		Token:      token,
	})
	require.NoError(t, err)
	return client
}

func TestNewRESTClient_InvalidEndpoint(t *testing.T) {
	_, err := NewRESTClient(Options{Endpoint: "://bad"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid GitHub API endpoint")
}

func TestNewRESTClient_DefaultEndpoint(t *testing.T) {
	client, err := NewRESTClient(Options{})
	require.NoError(t, err)
	assert.Equal(t, DefaultEndpoint, client.client.BaseURL.String())
}

func TestListUserEvents(t *testing.T) {
	server := testutil.NewJSONServer(t, []interface{}{
		testutil.CreateEventJSON(2, "acme/widget", "branch", "feature"),
		testutil.PushEventJSON(1, "acme/widget", "refs/heads/main", 3),
	})
	client := newTestClient(t, server.URL, "")

	records, err := client.ListUserEvents(context.Background(), "octocat")
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "/users/octocat/events", server.LastRequest().URL.Path)
	assert.Equal(t, 1, server.RequestCount())

	first := records[0]
	assert.Equal(t, "2", first.ID)
	assert.Equal(t, events.CreateEvent, first.Type)
	assert.Equal(t, "acme/widget", first.Repo)
	assert.Equal(t, "octocat", first.Actor)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), first.CreatedAt.UTC())
	assert.JSONEq(t, `{"ref_type":"branch","ref":"feature"}`, string(first.Payload))

	assert.Equal(t, events.PushEvent, records[1].Type)
}

func TestListUserEvents_Empty(t *testing.T) {
	server := testutil.NewJSONServer(t, []interface{}{})
	client := newTestClient(t, server.URL, "")

	records, err := client.ListUserEvents(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRequestHeaders(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		wantAuth string
	}{
		{name: "anonymous", token: "", wantAuth: ""},
		{name: "with token", token: "secret", wantAuth: "Bearer secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := testutil.NewJSONServer(t, []interface{}{})
			client := newTestClient(t, server.URL, tt.token)

			_, err := client.ListUserEvents(context.Background(), "octocat")
			require.NoError(t, err)

			req := server.LastRequest()
			require.NotNil(t, req)
			assert.Equal(t, http.MethodGet, req.Method)
			assert.Equal(t, "application/vnd.github+json", req.Header.Get("Accept"))
			assert.Equal(t, "2022-11-28", req.Header.Get("X-GitHub-Api-Version"))
			assert.Equal(t, tt.wantAuth, req.Header.Get("Authorization"))
			assert.True(t, strings.HasPrefix(req.Header.Get("User-Agent"), "sirseer-activity/"),
				"unexpected User-Agent %q", req.Header.Get("User-Agent"))
		})
	}
}

func TestListUserEvents_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
		wantMsg string
	}{
		{name: "not found", status: http.StatusNotFound, wantErr: apperrors.ErrUserNotFound, wantMsg: "user 'octocat' not found"},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: apperrors.ErrHTTP, wantMsg: "rejected the token"},
		{name: "forbidden without quota headers", status: http.StatusForbidden, wantErr: apperrors.ErrHTTP},
		{name: "server error", status: http.StatusInternalServerError, wantErr: apperrors.ErrHTTP, wantMsg: "500"},
		{name: "bad gateway", status: http.StatusBadGateway, wantErr: apperrors.ErrHTTP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := testutil.NewErrorServer(t, tt.status)
			client := newTestClient(t, server.URL, "token")

			records, err := client.ListUserEvents(context.Background(), "octocat")
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, records)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
			assert.Equal(t, 1, server.RequestCount(), "exactly one request")
		})
	}
}

func TestListUserEvents_RateLimit(t *testing.T) {
	server := testutil.NewRateLimitServer(t, time.Now().Add(time.Hour))
	client := newTestClient(t, server.URL, "")

	_, err := client.ListUserEvents(context.Background(), "octocat")
	require.ErrorIs(t, err, apperrors.ErrRateLimit)
	assert.Contains(t, err.Error(), "resets at")
	assert.Equal(t, 1, server.RequestCount(), "rate limited requests must not be retried")
}

func TestListUserEvents_NetworkFailure(t *testing.T) {
	server := testutil.NewJSONServer(t, []interface{}{})
	endpoint := server.URL
	server.Close()

	client := newTestClient(t, endpoint, "")
	_, err := client.ListUserEvents(context.Background(), "octocat")
	require.ErrorIs(t, err, apperrors.ErrNetworkFailure)
}

func TestListUserEvents_NetworkFailureWithStatusLikeUsername(t *testing.T) {
	server := testutil.NewJSONServer(t, []interface{}{})
	endpoint := server.URL
	server.Close()

	client := newTestClient(t, endpoint, "token")
	for _, username := range []string{"dev401", "user404", "x-401-y"} {
		_, err := client.ListUserEvents(context.Background(), username)
		require.ErrorIs(t, err, apperrors.ErrNetworkFailure, username)
		assert.NotErrorIs(t, err, apperrors.ErrHTTP, username)
		assert.NotErrorIs(t, err, apperrors.ErrUserNotFound, username)
		assert.NotContains(t, err.Error(), "rejected the token", username)
	}
}

func TestListUserEvents_DeadlineExceeded(t *testing.T) {
	server := testutil.NewMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	client := newTestClient(t, server.URL, "")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.ListUserEvents(ctx, "octocat")
	require.ErrorIs(t, err, apperrors.ErrNetworkFailure)
}

func TestRepositoryCallsRequireCredentials(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		owner   string
		wantMsg string
	}{
		{name: "no token", token: "", owner: "acme", wantMsg: "need a token"},
		{name: "no owner", token: "secret", owner: "", wantMsg: "need an owner"},
		{name: "neither", token: "", owner: "", wantMsg: "need a token and an owner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := testutil.NewJSONServer(t, []interface{}{})
			client := newTestClient(t, server.URL, tt.token)

			_, err := client.ListCommitComments(context.Background(), tt.owner, "widget")
			require.ErrorIs(t, err, apperrors.ErrMissingCredentials)
			assert.Contains(t, err.Error(), tt.wantMsg)

			_, err = client.ListAssignedIssues(context.Background(), tt.owner, "widget", "octocat")
			require.ErrorIs(t, err, apperrors.ErrMissingCredentials)

			assert.Equal(t, 0, server.RequestCount(), "no request may be made without credentials")
		})
	}
}

func TestRepositoryCallsRequireRepositoryName(t *testing.T) {
	tests := []struct {
		name  string
		owner string
		repo  string
	}{
		{name: "empty name", owner: "acme", repo: ""},
		{name: "nested name", owner: "acme", repo: "widget/extra"},
		{name: "owner with slash", owner: "acme/x", repo: "widget"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := testutil.NewJSONServer(t, []interface{}{})
			client := newTestClient(t, server.URL, "secret")

			_, err := client.ListCommitComments(context.Background(), tt.owner, tt.repo)
			require.ErrorIs(t, err, apperrors.ErrRepoRequired)

			_, err = client.ListAssignedIssues(context.Background(), tt.owner, tt.repo, "octocat")
			require.ErrorIs(t, err, apperrors.ErrRepoRequired)

			assert.Equal(t, 0, server.RequestCount(), "no request may be made without a repository name")
		})
	}
}

func TestListCommitComments(t *testing.T) {
	server := testutil.NewJSONServer(t, []interface{}{
		testutil.CommitCommentJSON(7, "acme/widget", "octocat", "Looks good"),
	})
	client := newTestClient(t, server.URL, "secret")

	records, err := client.ListCommitComments(context.Background(), "acme", "widget")
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "/repos/acme/widget/comments", server.LastRequest().URL.Path)
	assert.Equal(t, "Bearer secret", server.LastRequest().Header.Get("Authorization"))

	r := records[0]
	assert.Equal(t, events.CommitCommentEvent, r.Type)
	assert.Equal(t, "acme/widget", r.Repo)
	assert.Equal(t, "octocat", r.Actor)

	e, err := events.Decode(r)
	require.NoError(t, err)
	cc, ok := e.(events.CommitComment)
	require.True(t, ok, "got %T", e)
	assert.Equal(t, "Looks good", cc.Body)
	assert.Equal(t, "https://github.com/acme/widget/commit/abc7#commitcomment-7", cc.URL)
}

func TestListCommitComments_RepoNotFound(t *testing.T) {
	server := testutil.NewErrorServer(t, http.StatusNotFound)
	client := newTestClient(t, server.URL, "secret")

	_, err := client.ListCommitComments(context.Background(), "acme", "missing")
	require.ErrorIs(t, err, apperrors.ErrRepoNotFound)
	assert.Contains(t, err.Error(), "repository 'acme/missing' not found")
}

func TestListAssignedIssues(t *testing.T) {
	server := testutil.NewJSONServer(t, []interface{}{
		testutil.IssueJSON(1, "Crash on start", 4, false, "octocat"),
		testutil.IssueJSON(2, "Add feature", 1, true, "octocat"),
		testutil.IssueJSON(3, "Docs typo", 0, false, "octocat", "hubot"),
	})
	client := newTestClient(t, server.URL, "secret")

	records, err := client.ListAssignedIssues(context.Background(), "acme", "widget", "octocat")
	require.NoError(t, err)
	require.Len(t, records, 2, "pull requests must be excluded")

	req := server.LastRequest()
	assert.Equal(t, "/repos/acme/widget/issues", req.URL.Path)
	assert.Equal(t, "octocat", req.URL.Query().Get("assignee"))

	evs, err := events.DecodeAll(records)
	require.NoError(t, err)

	first, ok := evs[0].(events.IssueComment)
	require.True(t, ok, "got %T", evs[0])
	assert.Equal(t, "Crash on start", first.Title)
	assert.Equal(t, 4, first.Comments)
	assert.True(t, first.AssignedTo("octocat"))

	second := evs[1].(events.IssueComment)
	assert.Equal(t, "Docs typo", second.Title)
	assert.Equal(t, []string{"octocat", "hubot"}, second.Assignees)
	assert.Equal(t, events.IssueCommentEvent, second.Type)
	assert.Equal(t, "acme/widget", second.Repo)
}
