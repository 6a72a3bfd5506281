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

package api

import (
	"github.com/NVIDIA/relver/pkg/header"
	ver "github.com/NVIDIA/relver/pkg/version"
)

// PlanRequest is the body of POST /v1/plan.
type PlanRequest struct {
	// Config overrides the server's default configuration when set.
	Config  *ver.Config `json:"config,omitempty" yaml:"config,omitempty"`
	Current string      `json:"current" yaml:"current"`
	Branch  bool        `json:"branch,omitempty" yaml:"branch,omitempty"`
}

// PlanResponse is the body of a successful POST /v1/plan.
type PlanResponse struct {
	header.Header `json:",inline" yaml:",inline"`
	ver.Plan      `json:",inline" yaml:",inline"`
}

// PartsRequest is the body of POST /v1/parts.
type PartsRequest struct {
	Current string `json:"current" yaml:"current"`
	// Regex defaults to the three-digit-branch pattern.
	Regex string `json:"regex,omitempty" yaml:"regex,omitempty"`
}

// PartsResponse is the body of a successful POST /v1/parts.
type PartsResponse struct {
	header.Header `json:",inline" yaml:",inline"`

	Current string `json:"current" yaml:"current"`
	Regex   string `json:"regex" yaml:"regex"`
	Parts   []int  `json:"parts" yaml:"parts"`
}
