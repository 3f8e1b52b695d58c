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

package requirement

import (
	"fmt"

	"github.com/NVIDIA/fast-version/pkg/version"
)

// Requirement is a resolved range: an inclusive lower and upper bound per
// field plus the clause kinds that wrote them. The kinds are informational
// and never affect Fits. A Requirement is immutable once Build returns it.
type Requirement[N version.Number] struct {
	lower     [3]N
	upper     [3]N
	lowerKind ClauseKind
	upperKind ClauseKind
}

// Empty returns the unsatisfiable default: every lower bound at the domain
// maximum and every upper bound at the domain minimum. No valid version
// fits it.
func Empty[N version.Number]() Requirement[N] {
	maxN, minN := version.Max[N](), version.Min[N]()
	return Requirement[N]{
		lower: [3]N{maxN, maxN, maxN},
		upper: [3]N{minN, minN, minN},
	}
}

// unbounded returns the range every triple fits. Composite builds start
// here so that each slot only narrows its own side.
func unbounded[N version.Number]() Requirement[N] {
	maxN, minN := version.Max[N](), version.Min[N]()
	return Requirement[N]{
		lower: [3]N{minN, minN, minN},
		upper: [3]N{maxN, maxN, maxN},
	}
}

// Build resolves s into a Requirement.
//
// A pure spec applies its clause to Empty, so a clause coarser than patch
// leaves the finer lower or upper bounds unsatisfiable: Pure(GreaterMajor(5))
// matches nothing. Use a patch-granularity clause to bound every field.
//
// A composite spec first checks slot roles: neither slot may be strict, the
// lower slot may not hold a lesser clause and the upper slot may not hold a
// greater clause. It then applies lower and upper to the unbounded range.
//
// On failure Build returns Empty and the error; no partial state escapes.
func Build[N version.Number](s Spec[N]) (Requirement[N], error) {
	if !s.composite {
		r := Empty[N]()
		if err := r.apply(s.pure); err != nil {
			return Empty[N](), err
		}
		return r, nil
	}

	if err := checkRoles(s.lower.kind, s.upper.kind); err != nil {
		return Empty[N](), err
	}
	r := unbounded[N]()
	if err := r.apply(s.lower); err != nil {
		return Empty[N](), err
	}
	if err := r.apply(s.upper); err != nil {
		return Empty[N](), err
	}
	return r, nil
}

// MustBuild is like Build but panics on error. Intended for package-level
// requirements built from constants.
func MustBuild[N version.Number](s Spec[N]) Requirement[N] {
	r, err := Build(s)
	if err != nil {
		panic(fmt.Sprintf("requirement: %s: %v", s, err))
	}
	return r
}

// Lower returns the inclusive lower bounds as major, minor, patch.
func (r Requirement[N]) Lower() [3]N { return r.lower }

// Upper returns the inclusive upper bounds as major, minor, patch.
func (r Requirement[N]) Upper() [3]N { return r.upper }

// LowerKind returns the clause kind that last wrote the lower bounds.
func (r Requirement[N]) LowerKind() ClauseKind { return r.lowerKind }

// UpperKind returns the clause kind that last wrote the upper bounds.
func (r Requirement[N]) UpperKind() ClauseKind { return r.upperKind }

// IsEmpty reports whether r still holds the unsatisfiable default bounds.
func (r Requirement[N]) IsEmpty() bool {
	e := Empty[N]()
	return r.lower == e.lower && r.upper == e.upper
}

func (r Requirement[N]) String() string {
	return fmt.Sprintf("[%d.%d.%d, %d.%d.%d] (%s, %s)",
		r.lower[0], r.lower[1], r.lower[2],
		r.upper[0], r.upper[1], r.upper[2],
		r.lowerKind, r.upperKind)
}
