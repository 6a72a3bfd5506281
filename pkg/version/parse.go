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
	"strconv"
	"strings"
)

// compileFull compiles regex so that it only matches an entire input.
// The raw pattern is compiled first so that unbalanced input cannot
// escape the anchoring group.
func compileFull(regex string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(regex)
	if err == nil {
		re, err = regexp.Compile(`\A(?:` + regex + `)\z`)
	}
	if err != nil {
		return nil, invalidVersion(map[string]any{"regex": regex},
			"the regex pattern: %s is not valid: %v", regex, err)
	}
	return re, nil
}

// groupText returns the trimmed text of capturing group i in a submatch
// index slice, and false when the group did not participate.
func groupText(s string, loc []int, i int) (string, bool) {
	start, end := loc[2*i], loc[2*i+1]
	if start < 0 {
		return "", false
	}
	return strings.TrimSpace(s[start:end]), true
}

// ExtractIntegerParts matches version against regex as a whole and returns
// the integer value of every capturing group, in group order.
// It fails when the version does not fully match, the regex has no groups,
// or any group is absent or not an integer.
func ExtractIntegerParts(version, regex string) ([]int, error) {
	re, err := compileFull(regex)
	if err != nil {
		return nil, err
	}

	ctx := map[string]any{"version": version, "regex": regex}

	loc := re.FindStringSubmatchIndex(version)
	if loc == nil {
		return nil, invalidVersion(ctx,
			"the version: %s did not match the regex pattern: %s", version, regex)
	}

	numGroups := re.NumSubexp()
	if numGroups < 1 {
		return nil, invalidVersion(ctx,
			"there were no groups in the version string: %s matching the regex: %s", version, regex)
	}

	parts := make([]int, numGroups)
	for i := 1; i <= numGroups; i++ {
		text, ok := groupText(version, loc, i)
		if !ok {
			ctx["group"] = i
			return nil, invalidVersion(ctx,
				"the version: %s group: %d did not participate in the match for the regex pattern: %s",
				version, i, regex)
		}
		n, err := strconv.Atoi(text)
		if err != nil {
			ctx["group"] = i
			return nil, invalidVersion(ctx,
				"the version: %s group text: %s was not an integer for the regex pattern: %s",
				version, text, regex)
		}
		parts[i-1] = n
	}
	return parts, nil
}
