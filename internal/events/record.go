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
	"time"
)

// Record is the undecoded envelope of one activity item as returned by the
// API client. The payload stays raw until the record survives filtering, so
// a malformed event the user did not ask for never fails the run.
type Record struct {
	ID        string          `json:"id,omitempty"`
	Type      Type            `json:"type"`
	CreatedAt time.Time       `json:"created_at"`
	Repo      string          `json:"repo"`
	Actor     string          `json:"actor,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}
