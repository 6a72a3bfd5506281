// Package cli implements the command-line interface for relver.
//
// # Overview
//
// relver computes the next version of a project from its current version. It
// is meant to run in CI pipelines that tag images, bump VERSION files, or cut
// release branches.
//
// # Commands
//
// dev - Compute the next development version:
//
//	relver dev --type 3db --current 1.2.0-SNAPSHOT [--branch]
//
// release - Compute the release version:
//
//	relver release -c relver.yaml --current-file VERSION
//
// plan - Compute both:
//
//	relver plan -c relver.yaml --image oci://ghcr.io/nvidia/app:1.2.0 -t json
//
// parts - Print the integer components of a version:
//
//	relver parts --current 1.2.0-SNAPSHOT
//
// serve - Run the HTTP API (POST /v1/plan, POST /v1/parts):
//
//	relver serve -c relver.yaml --port 8080
//
// # Configuration
//
// Rules are read from a YAML or JSON file (--config, RELVER_CONFIG):
//
//	devVersionType: 3db
//	releaseVersionRegex: '(\d+)\.(\d+)\.(\d+)(-SNAPSHOT)'
//	releaseVersionGroup: 4
//	releaseVersionReplacement: ""
//
// Flags override file values. A missing replacement means INCREMENT;
// an empty one removes the group text. Unknown keys are rejected.
//
// # Global Flags
//
//	--log-level     Log level: debug, info, warn, error (env LOG_LEVEL)
//	--debug         Shorthand for --log-level=debug
//	--metrics-file  Write Prometheus text metrics on exit
//
// # Output Formats
//
// Every command prints a document with kind, apiVersion and metadata in
// YAML (default), JSON or table format (--format, -t), to stdout or to
// --output, which is replaced atomically.
//
// # Exit Codes
//
//	0  Success, including when nothing is configured
//	1  Any error
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/relver/pkg/cli.version=1.0.0'"
package cli
