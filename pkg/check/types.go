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
	"fmt"
	"strings"

	"github.com/NVIDIA/fast-version/pkg/header"
	"github.com/NVIDIA/fast-version/pkg/requirement"
	"github.com/NVIDIA/fast-version/pkg/version"
)

// Backend selects the validity and fits implementation used by Evaluate.
type Backend string

const (
	// BackendDefault uses the build-time default, see version.Backend.
	BackendDefault Backend = ""
	BackendScalar  Backend = "scalar"
	BackendLanes   Backend = "lanes"
)

// ParseBackend resolves a backend name. The empty string and "default"
// select the build-time default.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case BackendDefault, "default":
		return BackendDefault, nil
	case BackendScalar, BackendLanes:
		return b, nil
	default:
		return "", fmt.Errorf("unknown backend %q (supported values: default, scalar, lanes)", s)
	}
}

// Resolved returns the concrete backend name.
func (b Backend) Resolved() string {
	if b == BackendDefault {
		return version.Backend
	}
	return string(b)
}

// Request asks whether each of Versions is valid in Domain and fits the
// requirement built from Requirement.
type Request struct {
	header.Header `json:",inline" yaml:",inline"`

	Domain      version.Domain           `json:"domain" yaml:"domain"`
	Backend     Backend                  `json:"backend,omitempty" yaml:"backend,omitempty"`
	Requirement requirement.SpecDocument `json:"requirement" yaml:"requirement"`
	Versions    []version.Document       `json:"versions" yaml:"versions"`
}

// Bounds is the built requirement with sentinel values shown as-is.
type Bounds struct {
	Lower     version.Document       `json:"lower" yaml:"lower"`
	Upper     version.Document       `json:"upper" yaml:"upper"`
	LowerKind requirement.ClauseKind `json:"lowerKind" yaml:"lowerKind"`
	UpperKind requirement.ClauseKind `json:"upperKind" yaml:"upperKind"`
}

// VersionResult is the outcome for one requested version. Error is set
// when the version could not be parsed or constructed; such a version
// never fits.
type VersionResult struct {
	Version version.Document `json:"version" yaml:"version"`
	Valid   bool             `json:"valid" yaml:"valid"`
	Fits    bool             `json:"fits" yaml:"fits"`
	Error   string           `json:"error,omitempty" yaml:"error,omitempty"`
}

// Summary counts the results of a check.
type Summary struct {
	Total   int `json:"total" yaml:"total"`
	Valid   int `json:"valid" yaml:"valid"`
	Fits    int `json:"fits" yaml:"fits"`
	Invalid int `json:"invalid" yaml:"invalid"`
}

// Result answers a Request. Results keep the order of Request.Versions.
type Result struct {
	header.Header `json:",inline" yaml:",inline"`

	Domain      version.Domain           `json:"domain" yaml:"domain"`
	Backend     string                   `json:"backend" yaml:"backend"`
	Requirement requirement.SpecDocument `json:"requirement" yaml:"requirement"`
	Bounds      Bounds                   `json:"bounds" yaml:"bounds"`
	Results     []VersionResult          `json:"results" yaml:"results"`
	Summary     Summary                  `json:"summary" yaml:"summary"`
}

func boundsOf[N version.Number](r requirement.Requirement[N]) Bounds {
	return Bounds{
		Lower:     version.TripleDocument(r.Lower()),
		Upper:     version.TripleDocument(r.Upper()),
		LowerKind: r.LowerKind(),
		UpperKind: r.UpperKind(),
	}
}

func summarize(results []VersionResult) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Valid {
			s.Valid++
		} else {
			s.Invalid++
		}
		if r.Fits {
			s.Fits++
		}
	}
	return s
}
