// Package version computes the next development and release versions of an
// artifact from its current version string.
//
// # Overview
//
// A version string carries no structure of its own. All structure comes from
// a caller-supplied regular expression that must match the whole string; its
// capturing groups are the components that can be read or rewritten.
//
// Two operations sit underneath everything:
//
//   - ExtractIntegerParts returns the integer value of every capturing group.
//   - Rewrite rebuilds the string with one group replaced, copying the text
//     outside all groups byte for byte and trimming the text of each group.
//
// # Replacements
//
// The replacement applied to the target group is configured as a string and
// parsed once by ParseReplacement:
//
//   - "INCREMENT" (or unset): the group's integer value plus one
//   - "GROUP_TEXT": the group's text, unchanged
//   - anything else: that literal text, so "" removes the group
//
// # Policies
//
// GenerateDevelopmentVersion and GenerateReleaseVersion resolve a Config into
// at most one rewrite. When DevVersionType is "3db" the development version
// follows the three-digit-branch convention: the third component must be
// zero on trunk and nonzero on a branch; trunk increments the second
// component and a branch increments the third.
//
//	cfg := version.Config{DevVersionType: version.TypeThreeDigitBranch}
//	next, ok, err := version.GenerateDevelopmentVersion(cfg, "1.2.0", false)
//	// next == "1.3.0", ok == true
//
// With an explicit rule:
//
//	cfg := version.Config{
//	    ReleaseVersionRegex:       `(\d+)\.(\d+)\.(\d+)(-SNAPSHOT)`,
//	    ReleaseVersionGroup:       4,
//	    ReleaseVersionReplacement: ptr.To(""),
//	}
//	next, ok, err := version.GenerateReleaseVersion(cfg, "1.2.0-SNAPSHOT", false)
//	// next == "1.2.0"
//
// When a Config has no rule for a version, ok is false and err is nil.
//
// # Error Handling
//
// Every error wraps one of two sentinels and carries a structured code:
//
//   - ErrInvalidVersion (INVALID_VERSION): no full match, bad regex, group
//     index out of range, absent target group, three-digit-branch mismatch
//   - ErrNonNumericGroup (INVALID_ARGUMENT): increment on non-integer text
package version
