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

// Package defaults provides centralized configuration constants for relver.
//
// It defines the timeouts and limits of the relver HTTP API so the server and
// the CLI flags that configure it agree on the same values.
//
// # Usage
//
//	import "github.com/NVIDIA/relver/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(r.Context(), defaults.VersionHandlerTimeout)
//	defer cancel()
//
// # Guidelines
//
//   - Handlers: 5s, version computation does no I/O
//   - Server shutdown: 30s to match a typical Kubernetes termination grace period
package defaults
