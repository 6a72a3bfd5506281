// Package errors provides structured error types for version generation
// failures and for the CLI that surfaces them.
//
// Two codes matter to callers of the version engine:
//
//   - ErrCodeInvalidVersion: the version does not fit the pattern, a group
//     index is out of range, or the three-digit-branch check failed.
//   - ErrCodeInvalidArgument: an increment was requested on a group whose
//     text is not an integer.
//
// Example usage:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodeInvalidVersion,
//	    "version 1.x did not match the regex pattern (\\d+)\\.(\\d+)",
//	    map[string]any{
//	        "version": "1.x",
//	        "regex":   `(\d+)\.(\d+)`,
//	    },
//	)
//
//	if errors.IsCode(err, errors.ErrCodeInvalidVersion) {
//	    // ...
//	}
package errors
