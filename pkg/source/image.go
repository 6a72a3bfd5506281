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
	"fmt"
	"strings"

	"github.com/distribution/reference"

	apperrors "github.com/NVIDIA/relver/pkg/errors"
)

// URIScheme is the URI scheme for image references (e.g., "oci://ghcr.io/org/repo:tag").
const URIScheme = "oci://"

// Image is a parsed, tagged OCI image reference whose tag carries a version.
type Image struct {
	// Registry is the OCI registry host (e.g., "ghcr.io", "localhost:5000").
	Registry string `json:"registry" yaml:"registry"`
	// Repository is the image repository path (e.g., "nvidia/app").
	Repository string `json:"repository" yaml:"repository"`
	// Tag is the image tag, used as the current version.
	Tag string `json:"tag" yaml:"tag"`

	named reference.Named
}

// ParseImage parses an oci:// URI. The reference must carry a tag, since
// the tag is the version being read.
func ParseImage(target string) (*Image, error) {
	if !strings.HasPrefix(target, URIScheme) {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("image reference must start with %s", URIScheme),
			map[string]any{"image": target})
	}

	ref, err := reference.ParseNormalizedNamed(strings.TrimPrefix(target, URIScheme))
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
			"invalid OCI reference", err, map[string]any{"image": target})
	}

	tagged, ok := ref.(reference.Tagged)
	if !ok || tagged.Tag() == "" {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"image reference has no tag to read a version from",
			map[string]any{"image": target})
	}

	return &Image{
		Registry:   reference.Domain(ref),
		Repository: reference.Path(ref),
		Tag:        tagged.Tag(),
		named:      ref,
	}, nil
}

// String returns the full reference string, "oci://registry/repository:tag".
func (i *Image) String() string {
	return URIScheme + i.Reference()
}

// Reference returns the Docker-style image reference without the oci:// scheme.
func (i *Image) Reference() string {
	if i.Tag == "" {
		return fmt.Sprintf("%s/%s", i.Registry, i.Repository)
	}
	return fmt.Sprintf("%s/%s:%s", i.Registry, i.Repository, i.Tag)
}

// WithTag returns a copy of the image tagged with tag. It fails when tag is
// not a valid OCI tag, for example a version carrying "+" build metadata.
func (i *Image) WithTag(tag string) (*Image, error) {
	named := i.named
	if named == nil {
		var err error
		named, err = reference.ParseNormalizedNamed(fmt.Sprintf("%s/%s", i.Registry, i.Repository))
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "invalid OCI reference", err)
		}
	}

	tagged, err := reference.WithTag(reference.TrimNamed(named), tag)
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("version %s is not a valid image tag", tag), err,
			map[string]any{"tag": tag})
	}

	return &Image{
		Registry:   i.Registry,
		Repository: i.Repository,
		Tag:        tagged.Tag(),
		named:      tagged,
	}, nil
}
