/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/fast-version/pkg/defaults"
	"github.com/NVIDIA/fast-version/pkg/logging"
)

const (
	name           = "fvctl"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	buildVersion = versionDefault
	commit       = "unknown"
	date         = "unknown"
)

// outputFlag and formatFlag are shared by every command that writes a result.
func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
		Sources: cli.EnvVars("FVCTL_OUTPUT"),
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage:   "Output format: yaml, json, table",
		Value:   "yaml",
		Sources: cli.EnvVars("FVCTL_FORMAT"),
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "fast-version CLI",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", buildVersion, commit, date),
		EnableShellCompletion: true,
		Description: `Check numeric version triples against requirements, negotiate protocol
identifiers and compare the scalar and lanes validity backends.

  check      - evaluate versions against a requirement in one of ten domains
  negotiate  - check remote protocol identifiers against the local table
  selfcheck  - sample every domain and compare both backends
  domains    - list the numeric domains and their sentinels`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level: debug, info, warn, error",
				Value:   "info",
				Sources: cli.EnvVars("FVCTL_LOG_LEVEL"),
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Usage:   "Maximum duration of a command",
				Value:   defaults.CLICommandTimeout,
				Sources: cli.EnvVars("FVCTL_TIMEOUT"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, buildVersion, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", buildVersion,
				"commit", commit,
				"date", date)
			return ctx, nil
		},
		Commands: []*cli.Command{
			checkCmd(),
			negotiateCmd(),
			selfCheckCmd(),
			domainsCmd(),
		},
	}
}

// Execute runs fvctl with os.Args and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(exitCode(err))
	}
}

// exitCode is 2 for cancellation and timeouts, 1 for everything else.
func exitCode(err error) int {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return 2
	}
	return 1
}
