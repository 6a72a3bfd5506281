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
	"errors"
	"fmt"

	apperrors "github.com/NVIDIA/relver/pkg/errors"
)

// Error types for version generation failures.
// Every error returned by this package wraps exactly one of them.
var (
	ErrInvalidVersion  = errors.New("invalid version")
	ErrNonNumericGroup = errors.New("could not increment non-numeric group")
)

func invalidVersion(context map[string]any, format string, args ...any) error {
	return apperrors.WrapWithContext(apperrors.ErrCodeInvalidVersion,
		fmt.Sprintf(format, args...), ErrInvalidVersion, context)
}

func nonNumericGroup(context map[string]any, format string, args ...any) error {
	return apperrors.WrapWithContext(apperrors.ErrCodeInvalidArgument,
		fmt.Sprintf(format, args...), ErrNonNumericGroup, context)
}
