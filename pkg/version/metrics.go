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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	kindDevelopment = "development"
	kindRelease     = "release"
)

var (
	// Version generation metrics, labeled by development or release
	versionsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relver_versions_generated_total",
			Help: "Total number of versions successfully generated",
		},
		[]string{"kind"},
	)
	versionsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relver_versions_skipped_total",
			Help: "Total number of generation requests with no configured rewrite",
		},
		[]string{"kind"},
	)
	versionFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relver_version_failures_total",
			Help: "Total number of failed version generations by error code",
		},
		[]string{"kind", "code"},
	)
)
