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

// Package source resolves the current version that relver computes from.
//
// A version can come from one of three places:
//   - a literal string, used as given
//   - a file such as VERSION, whose trimmed content is the version
//   - an OCI image reference, oci://registry/repository:tag, whose tag is the version
//
// Image references are parsed with github.com/distribution/reference, which
// normalizes Docker Hub names and rejects malformed references:
//
//	cur, err := source.Resolve(source.Options{Image: "oci://ghcr.io/nvidia/app:1.2.0"})
//	// cur.Version == "1.2.0"
//
//	next, err := cur.Image.WithTag("1.3.0")
//	// next.String() == "oci://ghcr.io/nvidia/app:1.3.0"
//
// Errors are pkg/errors structured errors: ErrCodeInvalidRequest for bad
// input and ErrCodeNotFound for a missing version file.
package source
