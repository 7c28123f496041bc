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

package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirseerhq/sirseer-activity/internal/config"
	apperrors "github.com/sirseerhq/sirseer-activity/internal/errors"
	"github.com/sirseerhq/sirseer-activity/internal/events"
)

// Supported output formats
const (
	FormatText = config.FormatText
	FormatJSON = config.FormatJSON
)

// Entry is one rendered activity item.
type Entry struct {
	Type      events.Type `json:"type"`
	Repo      string      `json:"repo"`
	CreatedAt time.Time   `json:"created_at"`
	Summary   string      `json:"summary"`
}

// NewEntry pairs a decoded event with its rendered summary line.
func NewEntry(e events.Event, summary string) Entry {
	m := e.Info()
	return Entry{
		Type:      m.Type,
		Repo:      m.Repo,
		CreatedAt: m.CreatedAt.UTC(),
		Summary:   summary,
	}
}

// OutputWriter defines the interface for writing activity entries.
// This abstraction keeps the command independent of the output format.
type OutputWriter interface {
	// Write writes a single entry to the output.
	// The entry is written immediately to avoid memory accumulation.
	Write(entry Entry) error

	// Close closes the underlying writer and releases any resources.
	// This should be called when all writing is complete.
	Close() error
}

// New returns a writer for format on w. The caller keeps ownership of w.
func New(format string, w io.Writer) (OutputWriter, error) {
	switch format {
	case "", FormatText:
		return NewTextWriter(w), nil
	case FormatJSON:
		return NewWriter(w), nil
	}
	return nil, fmt.Errorf("%q (use %s or %s): %w", format, FormatText, FormatJSON, apperrors.ErrUnsupportedFormat)
}

// Open returns a writer for format on filename, or on stdout when filename
// is empty. Closing the writer closes the file, never stdout.
func Open(format, filename string, stdout io.Writer) (OutputWriter, error) {
	if filename == "" {
		return New(format, stdout)
	}

	// Validate before creating the file so a bad format leaves nothing behind
	if _, err := New(format, io.Discard); err != nil {
		return nil, err
	}

	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	if format == FormatJSON {
		return &Writer{
			output:    file,
			encoder:   newEncoder(file),
			closeFunc: file.Close,
		}, nil
	}
	return &TextWriter{output: file, closeFunc: file.Close}, nil
}
