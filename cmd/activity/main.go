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
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sirseerhq/sirseer-activity/internal/config"
	"github.com/sirseerhq/sirseer-activity/internal/github"
	"github.com/sirseerhq/sirseer-activity/internal/logging"
	"github.com/sirseerhq/sirseer-activity/pkg/version"
	"github.com/spf13/cobra"
)

// app holds the process dependencies so tests can swap the client and logger.
type app struct {
	stdout io.Writer
	stderr io.Writer

	newClient func(cfg *config.Config, creds config.Credentials) (github.Client, error)
	newLogger func(cfg config.LoggingConfig, console io.Writer) (*logging.Logger, error)
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout:    stdout,
		stderr:    stderr,
		newClient: newRESTClient,
		newLogger: logging.New,
	}
}

func newRESTClient(cfg *config.Config, creds config.Credentials) (github.Client, error) {
	return github.NewRESTClient(github.Options{
		Endpoint:   cfg.GitHub.APIEndpoint,
		APIVersion: cfg.GitHub.APIVersion,
		Token:      creds.Token,
	})
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := newApp(os.Stdout, os.Stderr).run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

func (a *app) rootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sirseer-activity",
		Short: "Show a GitHub user's recent activity",
		Long: `SirSeer Activity lists what a GitHub user has been doing: pushes, branches,
forks, stars, wiki edits and issues, one line per event. Public events need no
credentials; commit comments and assigned issues are read from a repository
and need GITHUB_TOKEN and GITHUB_OWNER.`,
		Version:       version.Version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
	}

	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)
	rootCmd.AddCommand(a.newEventsCommand(), newTypesCommand())
	return rootCmd
}

// run executes the CLI with args and returns the process exit code.
func (a *app) run(ctx context.Context, args []string) int {
	rootCmd := a.rootCommand()
	rootCmd.SetArgs(args)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintf(a.stderr, "Error: %v\n", err)
		}
		return mapErrorToExitCode(err)
	}
	return 0
}
