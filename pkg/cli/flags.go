/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"
	"k8s.io/utils/ptr"

	"github.com/NVIDIA/relver/pkg/serializer"
	"github.com/NVIDIA/relver/pkg/source"
	ver "github.com/NVIDIA/relver/pkg/version"
)

const (
	flagConfig             = "config"
	flagCurrent            = "current"
	flagCurrentFile        = "current-file"
	flagImage              = "image"
	flagBranch             = "branch"
	flagType               = "type"
	flagRegex              = "regex"
	flagGroup              = "group"
	flagReplacement        = "replacement"
	flagReleaseRegex       = "release-regex"
	flagReleaseGroup       = "release-group"
	flagReleaseReplacement = "release-replacement"
	flagOutput             = "output"
	flagFormat             = "format"
)

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    flagOutput,
		Aliases: []string{"o"},
		Usage:   "Output file path, replaced atomically (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    flagFormat,
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("Output format (supported: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

func sourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  flagCurrent,
			Usage: "Current version (e.g., 1.2.0-SNAPSHOT)",
		},
		&cli.StringFlag{
			Name:    flagCurrentFile,
			Usage:   "File whose trimmed content is the current version (e.g., VERSION)",
			Sources: cli.EnvVars("RELVER_CURRENT_FILE"),
		},
		&cli.StringFlag{
			Name:  flagImage,
			Usage: "OCI image whose tag is the current version (e.g., oci://ghcr.io/org/app:1.2.0)",
		},
	}
}

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    flagConfig,
		Aliases: []string{"c"},
		Usage:   "Version configuration file (YAML or JSON); flags override its values",
		Sources: cli.EnvVars("RELVER_CONFIG"),
	}
}

func branchFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    flagBranch,
		Usage:   "The current version is on a branch rather than trunk",
		Sources: cli.EnvVars("RELVER_BRANCH"),
	}
}

// devRuleFlags override the development rule of the configuration.
func devRuleFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  flagType,
			Usage: fmt.Sprintf("Development version policy (supported: %s); overrides regex, group and replacement", ver.TypeThreeDigitBranch),
		},
		&cli.StringFlag{
			Name:  flagRegex,
			Usage: "Regex matching the whole current version",
		},
		&cli.IntFlag{
			Name:  flagGroup,
			Usage: "1-based capturing group to rewrite",
		},
		&cli.StringFlag{
			Name:  flagReplacement,
			Usage: fmt.Sprintf("Group replacement: %s, %s or a literal (default: %s)", ver.SentinelIncrement, ver.SentinelGroupText, ver.SentinelIncrement),
		},
	}
}

// releaseRuleFlags override the release rule of the configuration. The
// plan uses prefixed names so they do not collide with the development rule flags.
func releaseRuleFlags(names ruleNames) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  names.regex,
			Usage: "Release regex matching the whole current version",
		},
		&cli.IntFlag{
			Name:  names.group,
			Usage: "1-based capturing group to rewrite for the release version",
		},
		&cli.StringFlag{
			Name:  names.replacement,
			Usage: fmt.Sprintf("Release group replacement: %s, %s or a literal (default: %s)", ver.SentinelIncrement, ver.SentinelGroupText, ver.SentinelIncrement),
		},
	}
}

// parseOutputFormat returns the validated --format value.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String(flagFormat))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, supported values: %v", f, serializer.SupportedFormats())
	}
	return f, nil
}

// resolveCurrent reads the current version from the source flags.
func resolveCurrent(cmd *cli.Command) (*source.Current, error) {
	cur, err := source.Resolve(source.Options{
		Literal: cmd.String(flagCurrent),
		File:    cmd.String(flagCurrentFile),
		Image:   cmd.String(flagImage),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve current version: %w", err)
	}
	slog.Debug("current version resolved", "version", cur.Version, "source", cur.Kind)
	return cur, nil
}

// ruleNames names the flags that override one rule of the configuration.
// An empty name means the command has no such override.
type ruleNames struct {
	regex       string
	group       string
	replacement string
}

var (
	noRule       = ruleNames{}
	plainRule    = ruleNames{regex: flagRegex, group: flagGroup, replacement: flagReplacement}
	prefixedRule = ruleNames{regex: flagReleaseRegex, group: flagReleaseGroup, replacement: flagReleaseReplacement}
)

func (n ruleNames) apply(cmd *cli.Command, regex *string, group *int, replacement **string) {
	if isSet(cmd, n.regex) {
		*regex = cmd.String(n.regex)
	}
	if isSet(cmd, n.group) {
		*group = int(cmd.Int(n.group))
	}
	if isSet(cmd, n.replacement) {
		*replacement = ptr.To(cmd.String(n.replacement))
	}
}

// loadConfig reads the --config file, if any, and applies the rule flags
// that are set on cmd. Flags not set leave file values untouched.
// The result is not validated; callers check the rules they use.
func loadConfig(cmd *cli.Command, dev, release ruleNames) (ver.Config, error) {
	var cfg ver.Config

	if path := cmd.String(flagConfig); path != "" {
		loaded, err := serializer.FromFile[ver.Config](path)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config from %q: %w", path, err)
		}
		cfg = *loaded
		slog.Debug("config loaded", "path", path)
	}

	if isSet(cmd, flagType) {
		cfg.DevVersionType = cmd.String(flagType)
	}
	dev.apply(cmd, &cfg.DevVersionRegex, &cfg.DevVersionGroup, &cfg.DevVersionReplacement)
	release.apply(cmd, &cfg.ReleaseVersionRegex, &cfg.ReleaseVersionGroup, &cfg.ReleaseVersionReplacement)
	return cfg, nil
}

func hasFlag(cmd *cli.Command, name string) bool {
	if name == "" {
		return false
	}
	for _, f := range cmd.Flags {
		for _, n := range f.Names() {
			if n == name {
				return true
			}
		}
	}
	return false
}

func isSet(cmd *cli.Command, name string) bool {
	return hasFlag(cmd, name) && cmd.IsSet(name)
}

// writeResult serializes doc to --output, or stdout when it is not set.
func writeResult(ctx context.Context, cmd *cli.Command, doc any) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	w, err := serializer.NewFileWriterOrStdout(outFormat, cmd.String(flagOutput))
	if err != nil {
		return err
	}

	if err := w.Serialize(ctx, doc); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to write result: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
