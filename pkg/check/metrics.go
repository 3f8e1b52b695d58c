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

package check

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	checkRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fv_check_requests_total",
			Help: "Total number of check evaluations by domain and outcome",
		},
		[]string{"domain", "outcome"},
	)

	checkVersionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fv_check_versions_total",
			Help: "Total number of versions evaluated by domain and result",
		},
		[]string{"domain", "result"},
	)

	checkDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fv_check_duration_seconds",
			Help:    "Check evaluation latency in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00005, 4, 10),
		},
		[]string{"domain"},
	)

	negotiationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fv_negotiations_total",
			Help: "Total number of negotiated remote protocols by outcome",
		},
		[]string{"outcome"},
	)

	selfCheckDisagreements = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fv_selfcheck_disagreements_total",
			Help: "Samples on which the scalar and lanes backends disagreed",
		},
		[]string{"domain", "check"},
	)
)

func recordVersions(domain string, s Summary) {
	checkVersionsTotal.WithLabelValues(domain, "fits").Add(float64(s.Fits))
	checkVersionsTotal.WithLabelValues(domain, "rejected").Add(float64(s.Valid - s.Fits))
	checkVersionsTotal.WithLabelValues(domain, "invalid").Add(float64(s.Invalid))
}
