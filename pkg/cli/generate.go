/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/relver/pkg/header"
	"github.com/NVIDIA/relver/pkg/source"
	ver "github.com/NVIDIA/relver/pkg/version"
)

// planDocument is the result of dev, release and plan.
type planDocument struct {
	header.Header `json:",inline" yaml:",inline"`
	ver.Plan      `json:",inline" yaml:",inline"`

	Source source.Kind `json:"source" yaml:"source"`
	Images *imagePlan  `json:"images,omitempty" yaml:"images,omitempty"`
}

// imagePlan carries the image references for each computed version when
// the current version was read from an image tag.
type imagePlan struct {
	Current     string `json:"current" yaml:"current"`
	Development string `json:"development,omitempty" yaml:"development,omitempty"`
	Release     string `json:"release,omitempty" yaml:"release,omitempty"`
}

type generateMode int

const (
	modeDevelopment generateMode = iota
	modeRelease
	modePlan
)

// validate checks the rules of cfg that mode computes.
func (m generateMode) validate(cfg ver.Config) error {
	switch m {
	case modeDevelopment:
		return cfg.ValidateDevelopment()
	case modeRelease:
		return cfg.ValidateRelease()
	default:
		return cfg.Validate()
	}
}

func devCmd() *cli.Command {
	flags := append([]cli.Flag{configFlag(), branchFlag()}, sourceFlags()...)
	flags = append(flags, devRuleFlags()...)
	flags = append(flags, outputFlag(), formatFlag())

	return &cli.Command{
		Name:                  "dev",
		EnableShellCompletion: true,
		Usage:                 "Compute the next development version",
		Description: `Compute the next development version from the current version.

With --type 3db, trunk versions (third number 0) bump the second number and
branch versions (--branch, third number > 0) bump the third. Otherwise the
--regex, --group and --replacement rule is applied.

Examples:
  relver dev --type 3db --current 1.2.0-SNAPSHOT
  relver dev --regex '(\d+)\.(\d+)\.(\d+)' --group 3 --current-file VERSION
  relver dev -c relver.yaml --image oci://ghcr.io/nvidia/app:1.4.0 --branch`,
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runGenerate(ctx, cmd, modeDevelopment, plainRule, noRule)
		},
	}
}

func releaseCmd() *cli.Command {
	flags := append([]cli.Flag{configFlag(), branchFlag()}, sourceFlags()...)
	flags = append(flags, releaseRuleFlags(plainRule)...)
	flags = append(flags, outputFlag(), formatFlag())

	return &cli.Command{
		Name:                  "release",
		EnableShellCompletion: true,
		Usage:                 "Compute the release version for the current development version",
		Description: `Compute the release version by applying the release rule
(--regex, --group, --replacement or the releaseVersion* config keys).

Examples:
  relver release --regex '(\d+)\.(\d+)\.(\d+)(-SNAPSHOT)' --group 4 --replacement '' --current 1.2.0-SNAPSHOT
  relver release -c relver.yaml --current-file VERSION -o release.yaml`,
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runGenerate(ctx, cmd, modeRelease, noRule, plainRule)
		},
	}
}

func planCmd() *cli.Command {
	flags := append([]cli.Flag{configFlag(), branchFlag()}, sourceFlags()...)
	flags = append(flags, devRuleFlags()...)
	flags = append(flags, releaseRuleFlags(prefixedRule)...)
	flags = append(flags, outputFlag(), formatFlag())

	return &cli.Command{
		Name:                  "plan",
		EnableShellCompletion: true,
		Usage:                 "Compute both the next development and the release version",
		Description: `Compute the development and release versions for the current version.
Development rule flags are --type, --regex, --group and --replacement;
release rule flags are prefixed with --release-.

Example:
  relver plan --type 3db --release-regex '(\d+)\.(\d+)\.(\d+)(-SNAPSHOT)' \
    --release-group 4 --release-replacement '' --current 1.2.0-SNAPSHOT -t json`,
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runGenerate(ctx, cmd, modePlan, plainRule, prefixedRule)
		},
	}
}

func runGenerate(ctx context.Context, cmd *cli.Command, mode generateMode, dev, release ruleNames) error {
	if _, err := parseOutputFormat(cmd); err != nil {
		return err
	}

	cfg, err := loadConfig(cmd, dev, release)
	if err != nil {
		return err
	}
	if err := mode.validate(cfg); err != nil {
		return fmt.Errorf("invalid version configuration: %w", err)
	}

	cur, err := resolveCurrent(cmd)
	if err != nil {
		return err
	}

	branch := cmd.Bool(flagBranch)
	if cfg.IsEmpty() {
		slog.Info("no configuration, no version will be generated")
	}

	g := ver.NewGenerator(ver.WithLogger(slog.Default()))
	plan := ver.Plan{Current: cur.Version, Branch: branch}

	switch mode {
	case modeDevelopment:
		next, ok, err := g.GenerateDevelopmentVersion(cfg, cur.Version, branch)
		if err != nil {
			return err
		}
		if !ok {
			slog.Info("no development version configuration")
		}
		plan.Development = next
	case modeRelease:
		next, ok, err := g.GenerateReleaseVersion(cfg, cur.Version, branch)
		if err != nil {
			return err
		}
		if !ok {
			slog.Info("no release version configuration")
		}
		plan.Release = next
	case modePlan:
		p, err := g.Plan(cfg, cur.Version, branch)
		if err != nil {
			return err
		}
		plan = *p
	}

	doc := planDocument{Plan: plan, Source: cur.Kind}
	doc.Init(header.KindVersionPlan, version)
	if cur.Image != nil {
		doc.Images = nextImages(cur.Image, plan)
	}

	slog.Debug("version plan computed",
		"current", plan.Current,
		"development", plan.Development,
		"release", plan.Release)

	return writeResult(ctx, cmd, doc)
}

// nextImages tags img with each computed version. Versions that are not
// valid image tags are logged and left out.
func nextImages(img *source.Image, plan ver.Plan) *imagePlan {
	ip := &imagePlan{Current: img.String()}
	tag := func(v string) string {
		if v == "" {
			return ""
		}
		next, err := img.WithTag(v)
		if err != nil {
			slog.Warn("next version cannot be used as an image tag", "version", v, "error", err)
			return ""
		}
		return next.String()
	}
	ip.Development = tag(plan.Development)
	ip.Release = tag(plan.Release)
	return ip
}
