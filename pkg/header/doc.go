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

// Package header provides the common header of relver result documents.
//
// Every document printed by the relver CLI embeds a Header so consumers can
// tell what they are reading and which tool version produced it:
//
//	kind: VersionPlan
//	apiVersion: relver.nvidia.com/v1alpha1
//	metadata:
//	  id: 3f0c5a9e-6f19-4a53-9d2b-7f8e0b1c2d3e
//	  timestamp: "2025-12-30T10:30:00Z"
//	  version: v0.3.0
//
// # Usage
//
//	var h header.Header
//	h.Init(header.KindVersionPlan, cliVersion)
//
// or with functional options:
//
//	h := header.New(
//	    header.WithKind(header.KindVersionParts),
//	    header.WithMetadata("source", "oci"),
//	)
//
// # Kinds
//
//   - VersionPlan: next development and/or release version
//   - VersionParts: integer components parsed from a version
//
// Consumers should check APIVersion before parsing a document.
package header
