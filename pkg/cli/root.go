/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/relver/pkg/logging"
)

const (
	name           = "relver"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// newRootCmd builds the relver command tree. A fresh tree is built per run
// because urfave/cli flags keep parsed state.
func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		EnableShellCompletion: true,
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Usage:                 "Compute the next development and release versions",
		Description: `relver computes the next version of a project from its current version.

Versions are rewritten by a regular expression that must match the whole
current version and a capturing group whose text is incremented, kept or
replaced with a literal. The built-in 3db policy treats the third number
as the branch counter: trunk versions end in .0 and bump the second
number, branch versions bump the third.

dev     - next development version
release - release version for the current development version
plan    - both of the above
parts   - integer components of a version
serve   - HTTP API for all of the above`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars(logging.EnvVarLogLevel),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging (same as --log-level=debug)",
			},
			&cli.StringFlag{
				Name:    "metrics-file",
				Usage:   "Write version generation metrics in Prometheus text format to this file on exit",
				Sources: cli.EnvVars("RELVER_METRICS_FILE"),
			},
		},
		Before: initLogger,
		After:  writeMetrics,
		Commands: []*cli.Command{
			devCmd(),
			releaseCmd(),
			planCmd(),
			partsCmd(),
			serveCmd(),
		},
	}
}

// Execute runs the relver CLI with the process arguments and exits with
// status 1 on error. It is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd().Run(ctx, os.Args)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initLogger configures slog once flags are parsed so --log-level and
// --debug take effect before any command executes.
func initLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	level := cmd.String("log-level")
	if cmd.Bool("debug") {
		level = "debug"
	}
	logging.SetDefaultStructuredLoggerWithLevel(name, version, level)
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", level)
	return ctx, nil
}

func writeMetrics(_ context.Context, cmd *cli.Command) error {
	path := cmd.String("metrics-file")
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("failed to write metrics to %q: %w", path, err)
	}
	slog.Debug("metrics written", "path", path)
	return nil
}
