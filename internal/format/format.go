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

// Package format renders decoded activity events as one human-readable line
// each. Rendering is pure: all field validation happens in events.Decode.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirseerhq/sirseer-activity/internal/events"
)

// Timestamp renders t the way GitHub reports it, RFC 3339 in UTC.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// Line returns the summary line for e.
func Line(e events.Event) string {
	m := e.Info()
	ts := Timestamp(m.CreatedAt)

	switch v := e.(type) {
	case events.Create:
		if v.Ref == "" {
			return fmt.Sprintf("Created %s %s on %s", v.RefType, m.Repo, ts)
		}
		return fmt.Sprintf("Created %s %s in %s on %s", v.RefType, v.Ref, m.Repo, ts)
	case events.Delete:
		return fmt.Sprintf("Deleted %s %s from %s on %s", v.RefType, v.Ref, m.Repo, ts)
	case events.Fork:
		return fmt.Sprintf("Forked %s to %s on %s", m.Repo, v.Forkee, ts)
	case events.Gollum:
		return fmt.Sprintf("Created or updated %s in %s", plural(v.Pages, "wiki page"), m.Repo)
	case events.CommitComment:
		return fmt.Sprintf("Commented on %s: %q on %s", v.URL, oneLine(v.Body), ts)
	case events.IssueComment:
		return fmt.Sprintf("Issue %q has %s", v.Title, plural(v.Comments, "comment"))
	case events.Push:
		return fmt.Sprintf("Pushed %s to %s in %s on %s", plural(v.Commits, "commit"), v.Ref, m.Repo, ts)
	case events.Watch:
		return fmt.Sprintf("Starred %s on %s", m.Repo, ts)
	case events.Issues:
		return fmt.Sprintf("%s issue #%d %q in %s on %s", capitalize(v.Action), v.Number, v.Title, m.Repo, ts)
	}

	return fmt.Sprintf("Unrecognized event type %s in %s on %s", m.Type, orUnknown(m.Repo), ts)
}

// Recognized reports whether e has a dedicated rendering.
func Recognized(e events.Event) bool {
	_, unknown := e.(events.Unrecognized)
	return !unknown
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// oneLine collapses whitespace runs so a multi-paragraph comment body stays
// on its line.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func orUnknown(repo string) string {
	if repo == "" {
		return "an unknown repository"
	}
	return repo
}
