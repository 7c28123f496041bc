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
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// randomRecords builds n records with types drawn from a small pool that
// includes one discriminator outside the enumeration.
func randomRecords(rng *rand.Rand, n int) []Record {
	pool := []Type{PushEvent, CreateEvent, WatchEvent, ForkEvent, "FutureEvent"}
	out := make([]Record, n)
	for i := range out {
		out[i] = Record{
			ID:        fmt.Sprintf("%d", i),
			Type:      pool[rng.Intn(len(pool))],
			CreatedAt: time.Unix(int64(1700000000+i), 0).UTC(),
			Repo:      "acme/widget",
		}
	}
	return out
}

func TestFilterAllIsIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 0; n < 50; n++ {
		in := randomRecords(rng, n)
		assert.Equal(t, in, Filter(in, All), "n=%d", n)
	}
}

func TestFilterKeepsExactlyMatchingInOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for round := 0; round < 100; round++ {
		in := randomRecords(rng, rng.Intn(40))
		for _, typ := range []Type{PushEvent, CreateEvent, GollumEvent, "FutureEvent"} {
			got := Filter(in, typ)

			var want []Record
			for _, r := range in {
				if r.Type == typ {
					want = append(want, r)
				}
			}
			assert.Equal(t, want, got, "round %d type %s", round, typ)
			for _, r := range got {
				assert.Equal(t, typ, r.Type)
			}
		}
	}
}

func TestFilterEmpty(t *testing.T) {
	assert.Empty(t, Filter(nil, PushEvent))
	assert.Empty(t, Filter([]Record{{Type: WatchEvent}}, PushEvent))
}

func TestFilterRepo(t *testing.T) {
	records := []Record{
		{ID: "1", Repo: "acme/widget"},
		{ID: "2", Repo: "acme/gadget"},
		{ID: "3", Repo: "other/Widget"},
		{ID: "4", Repo: "ACME/WIDGET"},
	}

	tests := []struct {
		name string
		repo string
		want []string
	}{
		{"empty keeps all", "", []string{"1", "2", "3", "4"}},
		{"full name", "acme/widget", []string{"1", "4"}},
		{"bare name matches any owner", "widget", []string{"1", "3", "4"}},
		{"no match", "acme/nothing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ids []string
			for _, r := range FilterRepo(records, tt.repo) {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestAssignedTo(t *testing.T) {
	evs := []Event{
		IssueComment{Title: "mine", Assignees: []string{"Octocat"}},
		IssueComment{Title: "theirs", Assignees: []string{"hubot"}},
		IssueComment{Title: "unassigned"},
		Push{Ref: "refs/heads/main"},
	}

	got := AssignedTo(evs, "octocat")
	if assert.Len(t, got, 2) {
		assert.Equal(t, "mine", got[0].(IssueComment).Title)
		assert.IsType(t, Push{}, got[1])
	}
}
