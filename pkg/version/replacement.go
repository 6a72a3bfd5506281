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
	"math"
	"strconv"
)

const (
	// SentinelIncrement configures a replacement that increments the group.
	SentinelIncrement = "INCREMENT"
	// SentinelGroupText configures a replacement that keeps the group text.
	SentinelGroupText = "GROUP_TEXT"
)

// ReplacementKind identifies the variant of a Replacement.
type ReplacementKind int

const (
	// ReplaceIncrement substitutes the group's integer value plus one.
	ReplaceIncrement ReplacementKind = iota
	// ReplaceKeepOriginal re-emits the group's trimmed text.
	ReplaceKeepOriginal
	// ReplaceLiteral substitutes a fixed string.
	ReplaceLiteral
)

// String returns the name of the replacement kind.
func (k ReplacementKind) String() string {
	switch k {
	case ReplaceIncrement:
		return "increment"
	case ReplaceKeepOriginal:
		return "keep"
	case ReplaceLiteral:
		return "literal"
	default:
		return "unknown"
	}
}

// Replacement is the instruction applied to the target group of a rewrite.
// The zero value increments.
type Replacement struct {
	Kind ReplacementKind
	// Text is the literal substituted when Kind is ReplaceLiteral.
	Text string
}

// Increment returns a Replacement that increments the target group.
func Increment() Replacement {
	return Replacement{Kind: ReplaceIncrement}
}

// KeepOriginal returns a Replacement that leaves the target group unchanged.
func KeepOriginal() Replacement {
	return Replacement{Kind: ReplaceKeepOriginal}
}

// Literal returns a Replacement that substitutes text verbatim.
func Literal(text string) Replacement {
	return Replacement{Kind: ReplaceLiteral, Text: text}
}

// ParseReplacement converts a configured replacement string into a Replacement.
// "INCREMENT" increments, "GROUP_TEXT" keeps the original text, and anything
// else, including the empty string, is a literal. Sentinels are case-sensitive.
func ParseReplacement(s string) Replacement {
	switch s {
	case SentinelIncrement:
		return Increment()
	case SentinelGroupText:
		return KeepOriginal()
	default:
		return Literal(s)
	}
}

// replacementOf parses an optional configured replacement; nil increments.
func replacementOf(s *string) Replacement {
	if s == nil {
		return Increment()
	}
	return ParseReplacement(*s)
}

// String returns the configuration form of the replacement.
func (r Replacement) String() string {
	switch r.Kind {
	case ReplaceIncrement:
		return SentinelIncrement
	case ReplaceKeepOriginal:
		return SentinelGroupText
	default:
		return r.Text
	}
}

// apply returns the text emitted in place of the trimmed group text.
func (r Replacement) apply(version string, group int, groupText string) (string, error) {
	switch r.Kind {
	case ReplaceKeepOriginal:
		return groupText, nil
	case ReplaceLiteral:
		return r.Text, nil
	default:
		n, err := strconv.Atoi(groupText)
		if err != nil || n < 0 {
			return "", nonNumericGroup(map[string]any{
				"version":   version,
				"group":     group,
				"groupText": groupText,
			}, "the group text: %s matching the group: %d was not a valid integer and could not be incremented",
				groupText, group)
		}
		if n == math.MaxInt {
			return "", nonNumericGroup(map[string]any{
				"version":   version,
				"group":     group,
				"groupText": groupText,
			}, "the group text: %s matching the group: %d is the largest supported integer and could not be incremented",
				groupText, group)
		}
		return strconv.Itoa(n + 1), nil
	}
}
