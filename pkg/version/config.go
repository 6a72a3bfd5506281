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
	"regexp"

	"golang.org/x/text/cases"
)

const (
	// TypeThreeDigitBranch selects the three-digit-branch development policy.
	TypeThreeDigitBranch = "3db"

	// ThreeDigitBranchRegex is the pattern applied by the three-digit-branch
	// policy: three numeric groups separated by non-digits.
	ThreeDigitBranchRegex = `.*(\d+)[^0-9]+(\d+)[^0-9]+(\d+).*`
)

// Config describes how development and release versions are derived from
// the current version. It is read-only to this package.
type Config struct {
	// DevVersionType selects a built-in development policy. Only "3db" is recognized.
	DevVersionType string `json:"devVersionType,omitempty" yaml:"devVersionType,omitempty"`

	DevVersionRegex string `json:"devVersionRegex,omitempty" yaml:"devVersionRegex,omitempty"`
	DevVersionGroup int    `json:"devVersionGroup,omitempty" yaml:"devVersionGroup,omitempty"`
	// DevVersionReplacement is parsed by ParseReplacement. Nil means
	// INCREMENT; an empty string removes the group.
	DevVersionReplacement *string `json:"devVersionReplacement,omitempty" yaml:"devVersionReplacement,omitempty"`

	ReleaseVersionRegex       string  `json:"releaseVersionRegex,omitempty" yaml:"releaseVersionRegex,omitempty"`
	ReleaseVersionGroup       int     `json:"releaseVersionGroup,omitempty" yaml:"releaseVersionGroup,omitempty"`
	ReleaseVersionReplacement *string `json:"releaseVersionReplacement,omitempty" yaml:"releaseVersionReplacement,omitempty"`
}

// IsThreeDigitBranch reports whether DevVersionType selects the
// three-digit-branch policy. The comparison is case-insensitive.
func (c Config) IsThreeDigitBranch() bool {
	// A Caser is stateful, so one is created per call.
	return cases.Fold().String(c.DevVersionType) == TypeThreeDigitBranch
}

// IsEmpty reports whether the config requests neither version.
func (c Config) IsEmpty() bool {
	return !c.IsThreeDigitBranch() && c.DevVersionRegex == "" && c.ReleaseVersionRegex == ""
}

// Validate checks the invariants that do not depend on a version string:
// configured regexes compile and their groups are at least 1.
// Group upper bounds are checked per call, against the match.
func (c Config) Validate() error {
	if err := c.ValidateDevelopment(); err != nil {
		return err
	}
	return c.ValidateRelease()
}

// ValidateDevelopment checks the development rule only.
func (c Config) ValidateDevelopment() error {
	if c.IsThreeDigitBranch() || c.DevVersionRegex == "" {
		return nil
	}
	return validateRule("dev", c.DevVersionRegex, c.DevVersionGroup)
}

// ValidateRelease checks the release rule only.
func (c Config) ValidateRelease() error {
	if c.ReleaseVersionRegex == "" {
		return nil
	}
	return validateRule("release", c.ReleaseVersionRegex, c.ReleaseVersionGroup)
}

func validateRule(kind, regex string, group int) error {
	ctx := map[string]any{"regex": regex, "group": group}
	re, err := regexp.Compile(regex)
	if err != nil {
		return invalidVersion(ctx, "the %s version regex pattern: %s is not valid: %v", kind, regex, err)
	}
	if group < 1 {
		return invalidVersion(ctx, "the %s version group index must be >= 1", kind)
	}
	if n := re.NumSubexp(); group > n {
		ctx["groups"] = n
		return invalidVersion(ctx,
			"the %s version group index: %d must be between 1 and the number of groups in the regex pattern which is: %d",
			kind, group, n)
	}
	return nil
}
