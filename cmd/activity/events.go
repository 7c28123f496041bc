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

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirseerhq/sirseer-activity/internal/config"
	apperrors "github.com/sirseerhq/sirseer-activity/internal/errors"
	"github.com/sirseerhq/sirseer-activity/internal/events"
	"github.com/sirseerhq/sirseer-activity/internal/format"
	"github.com/sirseerhq/sirseer-activity/internal/github"
	"github.com/sirseerhq/sirseer-activity/internal/output"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var _ pflag.Value = (*eventTypeValue)(nil)

// eventTypeValue is a pflag.Value that only accepts known event types.
type eventTypeValue struct {
	typ events.Type
	set bool
}

func (v *eventTypeValue) String() string { return string(v.typ) }

func (v *eventTypeValue) Set(s string) error {
	t, err := events.ParseType(s)
	if err != nil {
		return err
	}
	v.typ = t
	v.set = true
	return nil
}

func (v *eventTypeValue) Type() string { return "event-type" }

// eventsOptions holds the flag values of the events command.
type eventsOptions struct {
	repo       string
	eventType  eventTypeValue
	format     string
	outputFile string
	configPath string
	logDir     string
	logLevel   string
}

func (a *app) newEventsCommand() *cobra.Command {
	var opts eventsOptions

	cmd := &cobra.Command{
		Use:   "events <username> [event-type]",
		Short: "List a user's recent GitHub activity",
		Long: `List a user's recent GitHub activity, one line per event.

The event type defaults to "all". Run 'sirseer-activity types' for the list.

CommitCommentEvent and IssueCommentEvent are read from a repository rather
than from the user's public feed. They require --repo and credentials:
  - GITHUB_TOKEN: a personal access token
  - GITHUB_OWNER: the owner of the repository
For the other types, --repo keeps only events of that repository.`,
		Example: `  sirseer-activity events octocat
  sirseer-activity events octocat PushEvent --repo hello-world
  sirseer-activity events octocat IssueCommentEvent -r widget --format json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 2 {
				if opts.eventType.set && opts.eventType.typ != parseOrRaw(args[1]) {
					return fmt.Errorf("event type given both as argument (%s) and --type (%s)", args[1], opts.eventType.typ)
				}
				if err := opts.eventType.Set(args[1]); err != nil {
					return err
				}
			}

			cfg, err := a.loadConfig(cmd, &opts)
			if err != nil {
				return err
			}

			return a.runEvents(cmd.Context(), cfg, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.repo, "repo", "r", "", "Repository name, or owner/name")
	cmd.Flags().VarP(&opts.eventType, "type", "t", "Event type (same as the positional argument)")
	cmd.Flags().StringVar(&opts.format, "format", config.FormatText, "Output format: text or json")
	cmd.Flags().StringVar(&opts.outputFile, "output", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Config file (default: .sirseer-activity.yaml)")
	cmd.Flags().StringVar(&opts.logDir, "log-dir", "", "Directory for the rotating log file")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Console log level: debug, info, warn or error")

	return cmd
}

// parseOrRaw returns the parsed type of s, or the raw string so that a
// comparison against a valid type fails.
func parseOrRaw(s string) events.Type {
	t, err := events.ParseType(s)
	if err != nil {
		return events.Type(s)
	}
	return t
}

// loadConfig loads the config file and applies the flags the user set.
// Flags override environment and file values.
func (a *app) loadConfig(cmd *cobra.Command, opts *eventsOptions) (*config.Config, error) {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Defaults.OutputFormat = opts.format
	}
	if flags.Changed("log-dir") {
		cfg.Logging.Dir = opts.logDir
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = opts.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if !opts.eventType.set {
		if err := opts.eventType.Set(cfg.Defaults.EventType); err != nil {
			return nil, fmt.Errorf("invalid defaults.event_type: %w", err)
		}
	}
	return cfg, nil
}

// runEvents executes the events command
func (a *app) runEvents(ctx context.Context, cfg *config.Config, username string, opts *eventsOptions) error {
	logger, err := a.newLogger(cfg.Logging, a.stderr)
	if err != nil {
		return err
	}
	defer logger.Close()

	typ := opts.eventType.typ
	repo := strings.TrimSpace(opts.repo)
	q := query{username: username, repo: repo}

	// Repository-scoped types are validated before any request is made
	if typ.RepoScoped() {
		if repo == "" {
			logger.Warn(fmt.Sprintf("A repository is required for %s. Use --repo <name>.", typ))
			return &reportedError{err: fmt.Errorf("%s: %w", typ, apperrors.ErrRepoRequired)}
		}
		if !validRepo(repo) {
			logger.Warn(fmt.Sprintf("Invalid repository '%s' for %s. Use --repo <name> or <owner>/<name>.", repo, typ))
			return &reportedError{err: fmt.Errorf("%s: invalid repository %q: %w", typ, repo, apperrors.ErrRepoRequired)}
		}
	}

	creds := cfg.LoadCredentials()
	client, err := a.newClient(cfg, creds)
	if err != nil {
		return reportError(logger.Logger, cfg, q, err)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.GitHub.Timeout)
	defer cancel()

	logger.Debug("Fetching events",
		zap.String("user", username),
		zap.String("type", typ.String()),
		zap.String("repo", repo))

	records, err := fetch(ctx, client, creds, username, repo, typ)
	if err != nil {
		return reportError(logger.Logger, cfg, q, err)
	}

	if len(records) == 0 {
		logger.Info(fmt.Sprintf("No events found for user: %s", username))
		return nil
	}

	filtered := events.Filter(records, typ)
	if repo != "" && !typ.RepoScoped() {
		filtered = events.FilterRepo(filtered, repo)
	}

	evs, err := events.DecodeAll(filtered)
	if err != nil {
		return reportError(logger.Logger, cfg, q, err)
	}
	if typ == events.IssueCommentEvent {
		evs = events.AssignedTo(evs, username)
	}

	if len(evs) == 0 {
		logger.Info(emptyMessage(username, repo, typ))
		return nil
	}

	out, err := output.Open(cfg.Defaults.OutputFormat, opts.outputFile, a.stdout)
	if err != nil {
		return reportError(logger.Logger, cfg, q, err)
	}
	defer out.Close()

	for _, e := range evs {
		if !format.Recognized(e) {
			m := e.Info()
			logger.Warn(fmt.Sprintf("Unrecognized event type %s in %s", m.Type, m.Repo),
				zap.Time("created_at", m.CreatedAt))
		}
		if err := out.Write(output.NewEntry(e, format.Line(e))); err != nil {
			return reportError(logger.Logger, cfg, q, err)
		}
	}

	if err := out.Close(); err != nil {
		return reportError(logger.Logger, cfg, q, err)
	}

	logger.Debug("Listed events", zap.String("user", username), zap.Int("count", len(evs)))
	return nil
}

// fetch dispatches to the endpoint that serves typ.
func fetch(ctx context.Context, client github.Client, creds config.Credentials, username, repo string, typ events.Type) ([]events.Record, error) {
	owner, name := splitRepo(repo, creds.Owner)

	switch typ {
	case events.CommitCommentEvent:
		return client.ListCommitComments(ctx, owner, name)
	case events.IssueCommentEvent:
		return client.ListAssignedIssues(ctx, owner, name, username)
	}
	return client.ListUserEvents(ctx, username)
}

// validRepo reports whether repo is a bare name or an "owner/name" pair
// with both parts present.
func validRepo(repo string) bool {
	owner, name, ok := strings.Cut(repo, "/")
	if !ok {
		return repo != ""
	}
	return owner != "" && name != "" && !strings.Contains(name, "/")
}

// splitRepo splits an "owner/name" repository; a bare name belongs to
// defaultOwner.
func splitRepo(repo, defaultOwner string) (owner, name string) {
	if o, n, ok := strings.Cut(repo, "/"); ok {
		return o, n
	}
	return defaultOwner, repo
}

func emptyMessage(username, repo string, typ events.Type) string {
	msg := fmt.Sprintf("No '%s' events found for user: %s", typ, username)
	if typ == events.All {
		msg = fmt.Sprintf("No events found for user: %s", username)
	}
	if repo != "" && !typ.RepoScoped() {
		msg += fmt.Sprintf(" in repository %s", repo)
	}
	return msg
}
