// Package logging provides structured logging utilities for relver.
//
// # Overview
//
// This package wraps the standard library slog package with relver defaults
// so the CLI and the version engine log the same way. It supports
// environment-based log level configuration, module/version context
// injection, and source location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: group-by-group rewrite detail, with source location
//   - INFO: computed versions (default)
//   - WARN/WARNING: fallbacks such as an unknown output format
//   - ERROR: failures
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("relver", version)
//	    slog.Info("computed development version", "current", "1.2.0", "next", "1.3.0")
//	}
//
// Setting an explicit level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("relver", "v1.0.0", "debug")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls verbosity when no explicit
// level is given:
//
//	LOG_LEVEL=debug relver dev --config version.yaml --current 1.2.0
//
// # Output Format
//
// All logs are written to stderr in JSON format so stdout stays reserved
// for the computed result:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "computed development version",
//	    "module": "relver",
//	    "version": "v1.0.0",
//	    "next": "1.3.0"
//	}
package logging
