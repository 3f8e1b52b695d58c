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

//go:generate go tool enumer -type=ClauseKind -trimprefix=Clause -transform=kebab -text -output=clausekind_enumer.go

// ClauseKind identifies one of the twelve bound rules. ClauseNone is not a
// rule; it marks a requirement bound no clause has written.
type ClauseKind int

const (
	ClauseNone ClauseKind = iota
	ClauseStrict
	ClauseGreaterMajor
	ClauseGreaterMinor
	ClauseGreaterPatch
	ClauseGreaterOrEqualMajor
	ClauseGreaterOrEqualMinor
	ClauseGreaterOrEqualPatch
	ClauseLesserMajor
	ClauseLesserMinor
	ClauseLesserPatch
	ClauseLesserOrEqualMajor
	ClauseLesserOrEqualMinor
	ClauseLesserOrEqualPatch
)

// Granularity is the field a clause's newest bound targets.
type Granularity int

const (
	GranularityNone Granularity = iota
	GranularityMajor
	GranularityMinor
	GranularityPatch
)

// IsGreater reports whether k writes lower bounds.
func (k ClauseKind) IsGreater() bool {
	return k >= ClauseGreaterMajor && k <= ClauseGreaterOrEqualPatch
}

// IsLesser reports whether k writes upper bounds.
func (k ClauseKind) IsLesser() bool {
	return k >= ClauseLesserMajor && k <= ClauseLesserOrEqualPatch
}

// IsStrict reports whether k pins an exact version.
func (k ClauseKind) IsStrict() bool {
	return k == ClauseStrict
}

// IsRule reports whether k is one of the twelve clause kinds.
func (k ClauseKind) IsRule() bool {
	return k.IsStrict() || k.IsGreater() || k.IsLesser()
}

// Granularity returns how many leading fields a clause of kind k carries.
// Strict carries a whole version and reports GranularityPatch.
func (k ClauseKind) Granularity() Granularity {
	switch k {
	case ClauseGreaterMajor, ClauseGreaterOrEqualMajor, ClauseLesserMajor, ClauseLesserOrEqualMajor:
		return GranularityMajor
	case ClauseGreaterMinor, ClauseGreaterOrEqualMinor, ClauseLesserMinor, ClauseLesserOrEqualMinor:
		return GranularityMinor
	case ClauseStrict, ClauseGreaterPatch, ClauseGreaterOrEqualPatch, ClauseLesserPatch, ClauseLesserOrEqualPatch:
		return GranularityPatch
	default:
		return GranularityNone
	}
}

// Clause is one bound rule over domain N. Build clauses with the
// constructors below; the zero value has kind ClauseNone and is rejected
// by Build.
type Clause[N version.Number] struct {
	kind  ClauseKind
	major N
	minor N
	patch N
}

// Strict pins exactly v.
func Strict[N version.Number](v version.Version[N]) Clause[N] {
	return Clause[N]{kind: ClauseStrict, major: v.Major(), minor: v.Minor(), patch: v.Patch()}
}

// GreaterMajor requires major > m.
func GreaterMajor[N version.Number](m N) Clause[N] {
	return Clause[N]{kind: ClauseGreaterMajor, major: m}
}

// GreaterMinor requires major > m and minor > n.
func GreaterMinor[N version.Number](m, n N) Clause[N] {
	return Clause[N]{kind: ClauseGreaterMinor, major: m, minor: n}
}

// GreaterPatch requires major > m, minor > n and patch > p.
func GreaterPatch[N version.Number](m, n, p N) Clause[N] {
	return Clause[N]{kind: ClauseGreaterPatch, major: m, minor: n, patch: p}
}

// GreaterOrEqualMajor requires major >= m.
func GreaterOrEqualMajor[N version.Number](m N) Clause[N] {
	return Clause[N]{kind: ClauseGreaterOrEqualMajor, major: m}
}

// GreaterOrEqualMinor requires major >= m and minor >= n.
func GreaterOrEqualMinor[N version.Number](m, n N) Clause[N] {
	return Clause[N]{kind: ClauseGreaterOrEqualMinor, major: m, minor: n}
}

// GreaterOrEqualPatch requires major >= m, minor >= n and patch >= p.
func GreaterOrEqualPatch[N version.Number](m, n, p N) Clause[N] {
	return Clause[N]{kind: ClauseGreaterOrEqualPatch, major: m, minor: n, patch: p}
}

// LesserMajor requires major < m.
func LesserMajor[N version.Number](m N) Clause[N] {
	return Clause[N]{kind: ClauseLesserMajor, major: m}
}

// LesserMinor requires major < m and minor < n.
func LesserMinor[N version.Number](m, n N) Clause[N] {
	return Clause[N]{kind: ClauseLesserMinor, major: m, minor: n}
}

// LesserPatch requires major < m, minor < n and patch < p.
func LesserPatch[N version.Number](m, n, p N) Clause[N] {
	return Clause[N]{kind: ClauseLesserPatch, major: m, minor: n, patch: p}
}

// LesserOrEqualMajor requires major <= m.
func LesserOrEqualMajor[N version.Number](m N) Clause[N] {
	return Clause[N]{kind: ClauseLesserOrEqualMajor, major: m}
}

// LesserOrEqualMinor requires major <= m and minor <= n.
func LesserOrEqualMinor[N version.Number](m, n N) Clause[N] {
	return Clause[N]{kind: ClauseLesserOrEqualMinor, major: m, minor: n}
}

// LesserOrEqualPatch requires major <= m, minor <= n and patch <= p.
func LesserOrEqualPatch[N version.Number](m, n, p N) Clause[N] {
	return Clause[N]{kind: ClauseLesserOrEqualPatch, major: m, minor: n, patch: p}
}

// NewClause builds a clause of any kind from raw fields. Fields finer than
// the kind's granularity are ignored. A Strict clause validates its fields
// like version.New.
func NewClause[N version.Number](kind ClauseKind, major, minor, patch N) (Clause[N], error) {
	switch kind.Granularity() {
	case GranularityMajor:
		minor, patch = 0, 0
	case GranularityMinor:
		patch = 0
	case GranularityPatch:
	case GranularityNone:
		return Clause[N]{}, fmt.Errorf("%w: %s", ErrUnknownClause, kind)
	}
	if kind.IsStrict() {
		v, err := version.New(major, minor, patch)
		if err != nil {
			return Clause[N]{}, err
		}
		return Strict(v), nil
	}
	return Clause[N]{kind: kind, major: major, minor: minor, patch: patch}, nil
}

// Kind returns the clause kind.
func (c Clause[N]) Kind() ClauseKind { return c.kind }

// Fields returns the fields the clause carries; fields finer than its
// granularity are zero.
func (c Clause[N]) Fields() [3]N {
	return [3]N{c.major, c.minor, c.patch}
}

// String renders the clause, e.g. "greater-or-equal-minor(1.4)".
func (c Clause[N]) String() string {
	switch c.kind.Granularity() {
	case GranularityMajor:
		return fmt.Sprintf("%s(%d)", c.kind, c.major)
	case GranularityMinor:
		return fmt.Sprintf("%s(%d.%d)", c.kind, c.major, c.minor)
	case GranularityPatch:
		return fmt.Sprintf("%s(%d.%d.%d)", c.kind, c.major, c.minor, c.patch)
	default:
		return c.kind.String()
	}
}
