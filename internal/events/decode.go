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

package events

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/go-github/v68/github"
	apperrors "github.com/sirseerhq/sirseer-activity/internal/errors"
)

// Meta holds the fields every variant carries.
type Meta struct {
	Type      Type
	Repo      string
	CreatedAt time.Time
}

// Info returns the common fields of the event.
func (m Meta) Info() Meta { return m }

// Event is a decoded activity item. The concrete type is one of Create,
// Delete, Fork, Gollum, CommitComment, IssueComment, Push, Watch, Issues or
// Unrecognized.
type Event interface {
	Info() Meta
}

// Create is a branch, tag or repository creation. Ref is empty when the
// repository itself was created.
type Create struct {
	Meta
	RefType string
	Ref     string
}

// Delete is a branch or tag deletion.
type Delete struct {
	Meta
	RefType string
	Ref     string
}

// Fork records Repo being forked into Forkee.
type Fork struct {
	Meta
	Forkee string
}

// Gollum is a wiki update touching Pages pages.
type Gollum struct {
	Meta
	Pages int
}

// CommitComment is a comment on a commit.
type CommitComment struct {
	Meta
	URL  string
	Body string
}

// IssueComment summarizes the comment activity on one issue.
type IssueComment struct {
	Meta
	Title     string
	Comments  int
	Assignees []string
}

// AssignedTo reports whether login is among the issue's assignees.
func (ic IssueComment) AssignedTo(login string) bool {
	for _, a := range ic.Assignees {
		if strings.EqualFold(a, login) {
			return true
		}
	}
	return false
}

// Push is a push of Commits commits to Ref.
type Push struct {
	Meta
	Ref     string
	Commits int
}

// Watch is a repository being starred.
type Watch struct {
	Meta
	Action string
}

// Issues is an issue being opened, closed, reopened, etc.
type Issues struct {
	Meta
	Action string
	Number int
	Title  string
}

// Unrecognized is any event without a dedicated variant. It is kept so the
// caller can flag it rather than drop it.
type Unrecognized struct {
	Meta
}

// MalformedError is returned by Decode when a field the variant needs is
// absent or the payload is not valid JSON.
type MalformedError struct {
	Type  Type
	Field string
	Err   error
}

func (e *MalformedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed %s: %s: %v", e.Type, e.Field, e.Err)
	}
	return fmt.Sprintf("malformed %s: missing %s", e.Type, e.Field)
}

// Unwrap lets callers match with errors.Is(err, ErrMalformedEvent).
func (e *MalformedError) Unwrap() error { return apperrors.ErrMalformedEvent }

// Decode converts a record into its variant. Payloads are parsed with
// go-github's typed event structs; every field the variant renders must be
// present or a *MalformedError is returned.
func Decode(r Record) (Event, error) {
	meta := Meta{Type: r.Type, Repo: r.Repo, CreatedAt: r.CreatedAt}

	switch r.Type {
	case CreateEvent, DeleteEvent, ForkEvent, GollumEvent, CommitCommentEvent,
		IssueCommentEvent, PushEvent, WatchEvent, IssuesEvent:
	default:
		return Unrecognized{Meta: meta}, nil
	}

	if meta.Repo == "" {
		return nil, missing(r.Type, "repo.name")
	}
	if meta.CreatedAt.IsZero() {
		return nil, missing(r.Type, "created_at")
	}

	payload, err := parsePayload(r)
	if err != nil {
		return nil, err
	}

	switch p := payload.(type) {
	case *github.CreateEvent:
		if p.RefType == nil {
			return nil, missing(r.Type, "payload.ref_type")
		}
		return Create{Meta: meta, RefType: *p.RefType, Ref: p.GetRef()}, nil

	case *github.DeleteEvent:
		if p.RefType == nil {
			return nil, missing(r.Type, "payload.ref_type")
		}
		if p.Ref == nil {
			return nil, missing(r.Type, "payload.ref")
		}
		return Delete{Meta: meta, RefType: *p.RefType, Ref: *p.Ref}, nil

	case *github.ForkEvent:
		if p.Forkee == nil || p.Forkee.FullName == nil {
			return nil, missing(r.Type, "payload.forkee.full_name")
		}
		return Fork{Meta: meta, Forkee: *p.Forkee.FullName}, nil

	case *github.GollumEvent:
		if p.Pages == nil {
			return nil, missing(r.Type, "payload.pages")
		}
		return Gollum{Meta: meta, Pages: len(p.Pages)}, nil

	case *github.CommitCommentEvent:
		c := p.Comment
		switch {
		case c == nil:
			return nil, missing(r.Type, "payload.comment")
		case c.HTMLURL == nil:
			return nil, missing(r.Type, "payload.comment.html_url")
		case c.Body == nil:
			return nil, missing(r.Type, "payload.comment.body")
		}
		return CommitComment{Meta: meta, URL: *c.HTMLURL, Body: *c.Body}, nil

	case *github.IssueCommentEvent:
		is := p.Issue
		switch {
		case is == nil:
			return nil, missing(r.Type, "payload.issue")
		case is.Title == nil:
			return nil, missing(r.Type, "payload.issue.title")
		case is.Comments == nil:
			return nil, missing(r.Type, "payload.issue.comments")
		}
		return IssueComment{
			Meta:      meta,
			Title:     *is.Title,
			Comments:  *is.Comments,
			Assignees: assigneeLogins(is),
		}, nil

	case *github.PushEvent:
		if p.Ref == nil {
			return nil, missing(r.Type, "payload.ref")
		}
		commits := len(p.Commits)
		if p.Size != nil {
			commits = *p.Size
		}
		return Push{Meta: meta, Ref: *p.Ref, Commits: commits}, nil

	case *github.WatchEvent:
		if p.Action == nil {
			return nil, missing(r.Type, "payload.action")
		}
		return Watch{Meta: meta, Action: *p.Action}, nil

	case *github.IssuesEvent:
		is := p.Issue
		switch {
		case p.Action == nil:
			return nil, missing(r.Type, "payload.action")
		case is == nil:
			return nil, missing(r.Type, "payload.issue")
		case is.Number == nil:
			return nil, missing(r.Type, "payload.issue.number")
		case is.Title == nil:
			return nil, missing(r.Type, "payload.issue.title")
		}
		return Issues{Meta: meta, Action: *p.Action, Number: *is.Number, Title: *is.Title}, nil
	}

	return nil, &MalformedError{Type: r.Type, Field: "payload", Err: fmt.Errorf("unexpected payload type %T", payload)}
}

// DecodeAll decodes every record, stopping at the first malformed one.
func DecodeAll(records []Record) ([]Event, error) {
	out := make([]Event, 0, len(records))
	for _, r := range records {
		e, err := Decode(r)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func parsePayload(r Record) (interface{}, error) {
	if len(r.Payload) == 0 || string(r.Payload) == "null" {
		return nil, missing(r.Type, "payload")
	}
	typ := string(r.Type)
	raw := json.RawMessage(r.Payload)
	ev := &github.Event{Type: &typ, RawPayload: &raw}
	payload, err := ev.ParsePayload()
	if err != nil {
		return nil, &MalformedError{Type: r.Type, Field: "payload", Err: err}
	}
	return payload, nil
}

func assigneeLogins(is *github.Issue) []string {
	var logins []string
	seen := make(map[string]bool)
	add := func(u *github.User) {
		if u == nil || u.Login == nil {
			return
		}
		key := strings.ToLower(*u.Login)
		if !seen[key] {
			seen[key] = true
			logins = append(logins, *u.Login)
		}
	}
	add(is.Assignee)
	for _, u := range is.Assignees {
		add(u)
	}
	return logins
}

func missing(t Type, field string) error {
	return &MalformedError{Type: t, Field: field}
}
