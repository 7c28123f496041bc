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

import "strings"

// Filter returns the records whose Type equals t, in their original order.
// All returns records unchanged (same backing array).
func Filter(records []Record, t Type) []Record {
	if t == All {
		return records
	}
	var out []Record
	for _, r := range records {
		if r.Type == t {
			out = append(out, r)
		}
	}
	return out
}

// FilterRepo keeps records belonging to repo. repo is either a full
// "owner/name" or a bare name matched against the name part of each
// record's repository. Matching is case-insensitive, as on GitHub.
// An empty repo returns records unchanged.
func FilterRepo(records []Record, repo string) []Record {
	repo = strings.TrimSpace(repo)
	if repo == "" {
		return records
	}
	var out []Record
	for _, r := range records {
		if repoMatches(r.Repo, repo) {
			out = append(out, r)
		}
	}
	return out
}

func repoMatches(fullName, want string) bool {
	if strings.Contains(want, "/") {
		return strings.EqualFold(fullName, want)
	}
	_, name, ok := strings.Cut(fullName, "/")
	if !ok {
		name = fullName
	}
	return strings.EqualFold(name, want)
}

// AssignedTo keeps decoded issue summaries assigned to login. Events of any
// other variant pass through untouched.
func AssignedTo(evs []Event, login string) []Event {
	var out []Event
	for _, e := range evs {
		ic, ok := e.(IssueComment)
		if !ok || ic.AssignedTo(login) {
			out = append(out, e)
		}
	}
	return out
}
