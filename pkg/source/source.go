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

package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	apperrors "github.com/NVIDIA/relver/pkg/errors"
)

// Kind identifies where the current version was read from.
type Kind string

const (
	KindLiteral Kind = "literal"
	KindFile    Kind = "file"
	KindImage   Kind = "image"
)

// maxFileSize bounds version files; anything larger is not a version.
const maxFileSize = 4096

// Options selects exactly one source for the current version.
type Options struct {
	// Literal is the version itself.
	Literal string
	// File is a path whose trimmed content is the version.
	File string
	// Image is an oci:// reference whose tag is the version.
	Image string
}

// Current is a resolved current version.
type Current struct {
	Version string `json:"version" yaml:"version"`
	Kind    Kind   `json:"source" yaml:"source"`
	Image   *Image `json:"image,omitempty" yaml:"image,omitempty"`
}

// Resolve reads the current version from the single source set in opts.
// A literal is used exactly as given, without trimming, since the group
// regex decides what whitespace means.
func Resolve(opts Options) (*Current, error) {
	set := 0
	for _, s := range []string{opts.Literal, opts.File, opts.Image} {
		if s != "" {
			set++
		}
	}
	switch {
	case set == 0:
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest,
			"a current version is required: set one of current, current-file or image")
	case set > 1:
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest,
			"only one of current, current-file or image may be set")
	}

	switch {
	case opts.File != "":
		v, err := FromFile(opts.File)
		if err != nil {
			return nil, err
		}
		return &Current{Version: v, Kind: KindFile}, nil
	case opts.Image != "":
		img, err := ParseImage(opts.Image)
		if err != nil {
			return nil, err
		}
		return &Current{Version: img.Tag, Kind: KindImage, Image: img}, nil
	default:
		return &Current{Version: opts.Literal, Kind: KindLiteral}, nil
	}
}

// FromFile returns the trimmed content of the file at path.
func FromFile(path string) (string, error) {
	ctx := map[string]any{"path": path}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", apperrors.WrapWithContext(apperrors.ErrCodeNotFound, "version file not found", err, ctx)
		}
		return "", apperrors.WrapWithContext(apperrors.ErrCodeInternal, "failed to stat version file", err, ctx)
	}
	if info.IsDir() {
		return "", apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest, "version file is a directory", ctx)
	}
	if info.Size() > maxFileSize {
		return "", apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("version file exceeds %d bytes", maxFileSize), ctx)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", apperrors.WrapWithContext(apperrors.ErrCodeInternal, "failed to read version file", err, ctx)
	}

	v := strings.TrimSpace(string(data))
	if v == "" {
		return "", apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest, "version file is empty", ctx)
	}
	return v, nil
}
