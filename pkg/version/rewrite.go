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
	"strings"
)

// Instruction is a resolved rewrite: the pattern, the 1-based group to
// rewrite and what to put in its place.
type Instruction struct {
	Regex       string      `json:"regex" yaml:"regex"`
	Group       int         `json:"group" yaml:"group"`
	Replacement Replacement `json:"-" yaml:"-"`
}

// Apply rewrites version according to the instruction.
func (in Instruction) Apply(version string) (string, error) {
	return Rewrite(version, in.Group, in.Regex, in.Replacement)
}

// Rewrite matches version against regex as a whole and rebuilds it with
// capturing group targetGroup replaced according to replacement.
//
// Text outside every capturing group is copied byte for byte. The text of
// each group is trimmed, including groups that are not rewritten. Groups
// with an empty span are skipped and do not move the copy boundary.
func Rewrite(version string, targetGroup int, regex string, replacement Replacement) (string, error) {
	re, err := compileFull(regex)
	if err != nil {
		return "", err
	}

	ctx := map[string]any{"version": version, "regex": regex, "group": targetGroup}

	loc := re.FindStringSubmatchIndex(version)
	if loc == nil {
		return "", invalidVersion(ctx,
			"the current version: %s did not match the regex pattern: %s", version, regex)
	}

	numGroups := re.NumSubexp()
	if targetGroup < 1 || targetGroup > numGroups {
		ctx["groups"] = numGroups
		return "", invalidVersion(ctx,
			"the group index: %d must be between 1 and the number of groups in the regex pattern which is: %d",
			targetGroup, numGroups)
	}

	var sb strings.Builder
	sb.Grow(len(version) + 4)

	emitted := 0
	targetSeen := false
	for i := 1; i <= numGroups; i++ {
		start, end := loc[2*i], loc[2*i+1]
		if start == end {
			continue
		}
		if start > emitted {
			sb.WriteString(version[emitted:start])
		}

		text, _ := groupText(version, loc, i)
		if i == targetGroup {
			out, err := replacement.apply(version, i, text)
			if err != nil {
				return "", err
			}
			sb.WriteString(out)
			targetSeen = true
		} else {
			sb.WriteString(text)
		}
		emitted = end
	}

	if !targetSeen {
		return "", invalidVersion(ctx,
			"the target group: %d did not participate in the match of version: %s for the regex pattern: %s",
			targetGroup, version, regex)
	}

	if emitted < len(version) {
		sb.WriteString(version[emitted:])
	}
	return sb.String(), nil
}
