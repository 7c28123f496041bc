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

// Package output writes rendered activity entries, either as plain text
// lines for a terminal or as NDJSON (Newline Delimited JSON) for scripts.
//
// Both writers implement OutputWriter and write each entry as soon as it
// is given, so nothing accumulates in memory.
//
// Example usage:
//
//	w, err := output.Open(output.FormatJSON, "activity.ndjson", os.Stdout)
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//
//	for _, e := range evs {
//	    if err := w.Write(output.NewEntry(e, format.Line(e))); err != nil {
//	        return err
//	    }
//	}
package output
