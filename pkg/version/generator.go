// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package version

import (
	"log/slog"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/NVIDIA/relver/pkg/errors"
)

// Generator computes development and release versions from a Config.
// A Generator holds no per-call state and is safe for concurrent use.
type Generator struct {
	logger *slog.Logger
}

// Option is a functional option for configuring Generator instances.
type Option func(*Generator)

// WithLogger returns an Option that sets the logger used for debug output.
// Without it the Generator logs to slog.Default at call time.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGenerator creates a new Generator with the provided options.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) log() *slog.Logger {
	if g.logger != nil {
		return g.logger
	}
	return slog.Default()
}

// GenerateDevelopmentVersion computes the version the line of development
// should carry after current. ok is false when cfg configures no
// development rewrite.
func (g *Generator) GenerateDevelopmentVersion(cfg Config, current string, branch bool) (next string, ok bool, err error) {
	in, ok, err := g.developmentInstruction(cfg, current, branch)
	if err != nil || !ok {
		return g.record(kindDevelopment, current, "", ok, err)
	}
	next, err = in.Apply(current)
	return g.record(kindDevelopment, current, next, true, err)
}

// GenerateReleaseVersion computes the version to release from current.
// ok is false when cfg configures no release rewrite. branch is accepted
// for symmetry with GenerateDevelopmentVersion and is not used.
func (g *Generator) GenerateReleaseVersion(cfg Config, current string, _ bool) (next string, ok bool, err error) {
	if cfg.ReleaseVersionRegex == "" {
		return g.record(kindRelease, current, "", false, nil)
	}
	if cfg.ReleaseVersionGroup < 1 {
		err = invalidVersion(map[string]any{"group": cfg.ReleaseVersionGroup},
			"the release version group index must be >= 1")
		return g.record(kindRelease, current, "", true, err)
	}
	in := Instruction{
		Regex:       cfg.ReleaseVersionRegex,
		Group:       cfg.ReleaseVersionGroup,
		Replacement: replacementOf(cfg.ReleaseVersionReplacement),
	}
	next, err = in.Apply(current)
	return g.record(kindRelease, current, next, true, err)
}

// developmentInstruction resolves the rewrite driven by cfg, applying the
// three-digit-branch checks when that policy is selected.
func (g *Generator) developmentInstruction(cfg Config, current string, branch bool) (Instruction, bool, error) {
	if cfg.IsThreeDigitBranch() {
		parts, err := ExtractIntegerParts(current, ThreeDigitBranchRegex)
		if err != nil {
			return Instruction{}, true, err
		}
		ctx := map[string]any{"version": current, "branch": branch}
		third := parts[2]
		if branch && third == 0 {
			return Instruction{}, true, invalidVersion(ctx,
				"the current version: %s 3rd digit is 0 but this is a branch, branches must have a 3rd digit > 0", current)
		}
		if !branch && third != 0 {
			return Instruction{}, true, invalidVersion(ctx,
				"the current version: %s 3rd digit is NOT 0 but this is a trunk, trunk must have a 3rd digit = 0", current)
		}
		group := 2
		if branch {
			group = 3
		}
		g.log().Debug("three-digit-branch policy selected group", "version", current, "branch", branch, "group", group)
		return Instruction{Regex: ThreeDigitBranchRegex, Group: group, Replacement: Increment()}, true, nil
	}

	if cfg.DevVersionRegex == "" {
		return Instruction{}, false, nil
	}
	if cfg.DevVersionGroup < 1 {
		return Instruction{}, true, invalidVersion(map[string]any{"group": cfg.DevVersionGroup},
			"the dev version group index must be >= 1")
	}
	return Instruction{
		Regex:       cfg.DevVersionRegex,
		Group:       cfg.DevVersionGroup,
		Replacement: replacementOf(cfg.DevVersionReplacement),
	}, true, nil
}

func (g *Generator) record(kind, current, next string, ok bool, err error) (string, bool, error) {
	switch {
	case err != nil:
		versionFailures.WithLabelValues(kind, string(apperrors.CodeOf(err))).Inc()
		g.log().Debug("version generation failed", "kind", kind, "current", current, "error", err)
		return "", false, err
	case !ok:
		versionsSkipped.WithLabelValues(kind).Inc()
		g.log().Debug("no rewrite configured", "kind", kind, "current", current)
		return "", false, nil
	default:
		versionsGenerated.WithLabelValues(kind).Inc()
		g.log().Debug("version generated", "kind", kind, "current", current, "next", next)
		return next, true, nil
	}
}

// Plan holds the versions computed for one current version.
// Absent versions are empty.
type Plan struct {
	Current     string `json:"current" yaml:"current"`
	Branch      bool   `json:"branch" yaml:"branch"`
	Development string `json:"development,omitempty" yaml:"development,omitempty"`
	Release     string `json:"release,omitempty" yaml:"release,omitempty"`
}

// Plan computes the development and release versions concurrently.
// It fails if either computation fails.
func (g *Generator) Plan(cfg Config, current string, branch bool) (*Plan, error) {
	p := &Plan{Current: current, Branch: branch}

	var eg errgroup.Group
	eg.Go(func() error {
		next, _, err := g.GenerateDevelopmentVersion(cfg, current, branch)
		p.Development = next
		return err
	})
	eg.Go(func() error {
		next, _, err := g.GenerateReleaseVersion(cfg, current, branch)
		p.Release = next
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return p, nil
}

var defaultGenerator = NewGenerator()

// GenerateDevelopmentVersion computes the development version using a
// Generator that logs to slog.Default.
func GenerateDevelopmentVersion(cfg Config, current string, branch bool) (string, bool, error) {
	return defaultGenerator.GenerateDevelopmentVersion(cfg, current, branch)
}

// GenerateReleaseVersion computes the release version using a Generator
// that logs to slog.Default.
func GenerateReleaseVersion(cfg Config, current string, branch bool) (string, bool, error) {
	return defaultGenerator.GenerateReleaseVersion(cfg, current, branch)
}
