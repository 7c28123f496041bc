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
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v68/github"
	apperrors "github.com/sirseerhq/sirseer-activity/internal/errors"
	"github.com/sirseerhq/sirseer-activity/internal/events"
	"github.com/sirseerhq/sirseer-activity/internal/giterror"
	"github.com/sirseerhq/sirseer-activity/pkg/version"
)

// DefaultEndpoint is the public github.com REST API.
const DefaultEndpoint = "https://api.github.com/"

// Options configures a RESTClient. Zero values select github.com defaults.
type Options struct {
	// Endpoint is the REST API base URL, e.g. https://ghe.example.com/api/v3.
	Endpoint string

	// APIVersion is sent as X-GitHub-Api-Version.
	APIVersion string

	// Token is sent as a bearer token when non-empty.
	Token string

	// Transport overrides http.DefaultTransport underneath the header transport.
	Transport http.RoundTripper
}

// RESTClient implements Client on top of go-github.
type RESTClient struct {
	client    *gh.Client
	token     string
	inspector giterror.Inspector
}

// NewRESTClient creates a client for the given options. The only failure is
// an unparsable endpoint.
func NewRESTClient(opts Options) (*RESTClient, error) {
	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if !strings.HasSuffix(endpoint, "/") {
		endpoint += "/"
	}
	baseURL, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid GitHub API endpoint %q: %w", opts.Endpoint, err)
	}

	base := opts.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	client := gh.NewClient(&http.Client{
		Transport: &headerTransport{
			apiVersion: opts.APIVersion,
			base:       base,
		},
	})
	if opts.Token != "" {
		client = client.WithAuthToken(opts.Token)
	}
	client.BaseURL = baseURL
	client.UserAgent = fmt.Sprintf("sirseer-activity/%s", version.Version)

	return &RESTClient{
		client:    client,
		token:     opts.Token,
		inspector: giterror.NewInspector(),
	}, nil
}

// ListUserEvents fetches GET /users/{username}/events.
func (c *RESTClient) ListUserEvents(ctx context.Context, username string) ([]events.Record, error) {
	evs, _, err := c.client.Activity.ListEventsPerformedByUser(ctx, username, false, nil)
	if err != nil {
		return nil, c.mapError(err, apperrors.ErrUserNotFound, fmt.Sprintf("user '%s'", username))
	}

	records := make([]events.Record, 0, len(evs))
	for _, e := range evs {
		records = append(records, convertEvent(e))
	}
	return records, nil
}

// ListCommitComments fetches GET /repos/{owner}/{repo}/comments.
func (c *RESTClient) ListCommitComments(ctx context.Context, owner, repo string) ([]events.Record, error) {
	if err := c.requireRepository(owner, repo); err != nil {
		return nil, err
	}

	comments, _, err := c.client.Repositories.ListComments(ctx, owner, repo, nil)
	if err != nil {
		return nil, c.mapError(err, apperrors.ErrRepoNotFound, fmt.Sprintf("repository '%s/%s'", owner, repo))
	}

	fullName := owner + "/" + repo
	records := make([]events.Record, 0, len(comments))
	for _, cm := range comments {
		payload, err := json.Marshal(struct {
			Comment *gh.RepositoryComment `json:"comment"`
		}{cm})
		if err != nil {
			return nil, fmt.Errorf("failed to encode commit comment: %v: %w", err, apperrors.ErrUnexpected)
		}
		records = append(records, events.Record{
			ID:        fmt.Sprint(cm.GetID()),
			Type:      events.CommitCommentEvent,
			CreatedAt: cm.GetCreatedAt().Time,
			Repo:      fullName,
			Actor:     cm.GetUser().GetLogin(),
			Payload:   payload,
		})
	}
	return records, nil
}

// ListAssignedIssues fetches GET /repos/{owner}/{repo}/issues?assignee={assignee}.
func (c *RESTClient) ListAssignedIssues(ctx context.Context, owner, repo, assignee string) ([]events.Record, error) {
	if err := c.requireRepository(owner, repo); err != nil {
		return nil, err
	}

	issues, _, err := c.client.Issues.ListByRepo(ctx, owner, repo, &gh.IssueListByRepoOptions{
		Assignee: assignee,
	})
	if err != nil {
		return nil, c.mapError(err, apperrors.ErrRepoNotFound, fmt.Sprintf("repository '%s/%s'", owner, repo))
	}

	fullName := owner + "/" + repo
	records := make([]events.Record, 0, len(issues))
	for _, is := range issues {
		if is.IsPullRequest() {
			continue
		}
		payload, err := json.Marshal(struct {
			Issue *gh.Issue `json:"issue"`
		}{is})
		if err != nil {
			return nil, fmt.Errorf("failed to encode issue: %v: %w", err, apperrors.ErrUnexpected)
		}
		records = append(records, events.Record{
			ID:        fmt.Sprint(is.GetID()),
			Type:      events.IssueCommentEvent,
			CreatedAt: is.GetCreatedAt().Time,
			Repo:      fullName,
			Actor:     is.GetUser().GetLogin(),
			Payload:   payload,
		})
	}
	return records, nil
}

// requireRepository enforces the precondition of the repository endpoints:
// a single path segment as repository name, a token and an owner.
func (c *RESTClient) requireRepository(owner, repo string) error {
	if repo == "" || strings.Contains(repo, "/") || strings.Contains(owner, "/") {
		return fmt.Errorf("invalid repository %q/%q: %w", owner, repo, apperrors.ErrRepoRequired)
	}
	return c.requireCredentials(owner)
}

// requireCredentials checks the token and owner needed by repository endpoints.
func (c *RESTClient) requireCredentials(owner string) error {
	var missing []string
	if c.token == "" {
		missing = append(missing, "a token")
	}
	if owner == "" {
		missing = append(missing, "an owner")
	}
	if len(missing) > 0 {
		return fmt.Errorf("repository queries need %s: %w", strings.Join(missing, " and "), apperrors.ErrMissingCredentials)
	}
	return nil
}

// convertEvent converts a go-github event to our record envelope
func convertEvent(e *gh.Event) events.Record {
	r := events.Record{
		ID:        e.GetID(),
		Type:      events.Type(e.GetType()),
		CreatedAt: e.GetCreatedAt().Time,
		Repo:      e.GetRepo().GetName(),
		Actor:     e.GetActor().GetLogin(),
	}
	if e.RawPayload != nil {
		r.Payload = *e.RawPayload
	}
	return r
}

// mapError maps go-github errors to our domain errors with actionable messages
func (c *RESTClient) mapError(err error, notFound error, subject string) error {
	if err == nil {
		return nil
	}

	// Rate limiting is checked first: GitHub reports it with 403, which
	// would otherwise be a generic HTTP error.
	if c.inspector.IsRateLimitError(err) {
		msg := "GitHub API rate limit exceeded"
		if reset := c.inspector.RateLimitReset(err); !reset.IsZero() {
			msg += fmt.Sprintf(" (resets at %s)", reset.Local().Format(time.RFC1123))
		}
		return fmt.Errorf("%s: %w", msg, apperrors.ErrRateLimit)
	}

	if c.inspector.IsNotFoundError(err) {
		return fmt.Errorf("%s not found: %w", subject, notFound)
	}

	if c.inspector.IsAuthError(err) {
		return fmt.Errorf("GitHub rejected the token: %v: %w", err, apperrors.ErrHTTP)
	}

	if c.inspector.IsHTTPError(err) {
		return fmt.Errorf("%v: %w", err, apperrors.ErrHTTP)
	}

	if errors.Is(err, errResponseTooLarge) {
		return fmt.Errorf("response from GitHub exceeded %d bytes: %w", maxResponseBytes, apperrors.ErrUnexpected)
	}

	if c.inspector.IsNetworkError(err) {
		return fmt.Errorf("%v: %w", err, apperrors.ErrNetworkFailure)
	}

	return fmt.Errorf("%v: %w", err, apperrors.ErrUnexpected)
}
