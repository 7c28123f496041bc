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
	"fmt"
	"strings"

	apperrors "github.com/sirseerhq/sirseer-activity/internal/errors"
)

// Type is the discriminator of a GitHub activity event.
type Type string

// All is the wildcard filter that matches every event.
const All Type = "all"

// Known event discriminators.
const (
	CommitCommentEvent            Type = "CommitCommentEvent"
	CreateEvent                   Type = "CreateEvent"
	DeleteEvent                   Type = "DeleteEvent"
	ForkEvent                     Type = "ForkEvent"
	GollumEvent                   Type = "GollumEvent"
	IssueCommentEvent             Type = "IssueCommentEvent"
	IssuesEvent                   Type = "IssuesEvent"
	MemberEvent                   Type = "MemberEvent"
	PublicEvent                   Type = "PublicEvent"
	PullRequestReviewEvent        Type = "PullRequestReviewEvent"
	PullRequestReviewCommentEvent Type = "PullRequestReviewCommentEvent"
	PullRequestReviewThreadEvent  Type = "PullRequestReviewThreadEvent"
	PushEvent                     Type = "PushEvent"
	ReleaseEvent                  Type = "ReleaseEvent"
	SponsorshipEvent              Type = "SponsorshipEvent"
	WatchEvent                    Type = "WatchEvent"
)

var knownTypes = []Type{
	CommitCommentEvent,
	CreateEvent,
	DeleteEvent,
	ForkEvent,
	GollumEvent,
	IssueCommentEvent,
	IssuesEvent,
	MemberEvent,
	PublicEvent,
	PullRequestReviewEvent,
	PullRequestReviewCommentEvent,
	PullRequestReviewThreadEvent,
	PushEvent,
	ReleaseEvent,
	SponsorshipEvent,
	WatchEvent,
}

// Types returns the filterable discriminators, excluding All, in a stable order.
func Types() []Type {
	out := make([]Type, len(knownTypes))
	copy(out, knownTypes)
	return out
}

// ParseType converts a command-line token into a Type. The empty string is
// treated as All. Matching is exact: GitHub discriminators are case-sensitive.
func ParseType(s string) (Type, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == string(All) {
		return All, nil
	}
	t := Type(s)
	if t.Known() {
		return t, nil
	}
	return "", fmt.Errorf("%q is not a supported event type (see 'sirseer-activity types'): %w", s, apperrors.ErrInvalidEventType)
}

// Known reports whether t is one of the enumerated discriminators.
func (t Type) Known() bool {
	for _, k := range knownTypes {
		if t == k {
			return true
		}
	}
	return false
}

// RepoScoped reports whether t can only be queried against a repository.
// These types need a repository name, a token and an owner.
func (t Type) RepoScoped() bool {
	return t == CommitCommentEvent || t == IssueCommentEvent
}

func (t Type) String() string { return string(t) }
