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
	"strings"

	"github.com/NVIDIA/fast-version/pkg/version"
)

// ClauseDocument is the authored form of a clause, e.g.
//
//	kind: greater-or-equal-minor
//	major: 1
//	minor: 4
type ClauseDocument struct {
	Kind  ClauseKind     `json:"kind" yaml:"kind"`
	Major version.Scalar `json:"major,omitempty" yaml:"major,omitempty"`
	Minor version.Scalar `json:"minor,omitempty" yaml:"minor,omitempty"`
	Patch version.Scalar `json:"patch,omitempty" yaml:"patch,omitempty"`
}

// SpecDocument is the authored form of a Spec. Exactly one of Pure or the
// Lower/Upper pair is set.
type SpecDocument struct {
	Pure  *ClauseDocument `json:"pure,omitempty" yaml:"pure,omitempty"`
	Lower *ClauseDocument `json:"lower,omitempty" yaml:"lower,omitempty"`
	Upper *ClauseDocument `json:"upper,omitempty" yaml:"upper,omitempty"`
}

// ParseClause parses d into a clause of domain N. Fields finer than the
// kind's granularity are ignored.
func ParseClause[N version.Number](d ClauseDocument) (Clause[N], error) {
	g := d.Kind.Granularity()
	if g == GranularityNone {
		return Clause[N]{}, fmt.Errorf("%w: %s", ErrUnknownClause, d.Kind)
	}

	var fields [3]N
	for i, s := range []version.Scalar{d.Major, d.Minor, d.Patch}[:g] {
		if s == "" {
			return Clause[N]{}, fmt.Errorf("%w: %s needs %s", ErrMissingField, d.Kind, Field(i))
		}
		x, err := version.ParseScalar[N](s)
		if err != nil {
			return Clause[N]{}, fmt.Errorf("%s %s: %w", d.Kind, Field(i), err)
		}
		fields[i] = x
	}
	return NewClause(d.Kind, fields[0], fields[1], fields[2])
}

// ParseClauseText parses the form Clause.String renders, e.g.
// "greater-or-equal-minor(1.4)" or "strict(1.1.1)". The number of fields
// must match the kind's granularity.
func ParseClauseText(s string) (ClauseDocument, error) {
	s = strings.TrimSpace(s)
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return ClauseDocument{}, fmt.Errorf("%w: %q is not kind(fields)", ErrInvalidSpec, s)
	}

	kind, err := ClauseKindString(strings.TrimSpace(s[:open]))
	if err != nil {
		return ClauseDocument{}, fmt.Errorf("%w: %q", ErrUnknownClause, s[:open])
	}

	fields := strings.Split(s[open+1:len(s)-1], ".")
	if len(fields) != int(kind.Granularity()) {
		return ClauseDocument{}, fmt.Errorf("%w: %s takes %d fields, got %d",
			ErrInvalidSpec, kind, kind.Granularity(), len(fields))
	}

	d := ClauseDocument{Kind: kind}
	for i, f := range fields {
		x := version.Scalar(strings.TrimSpace(f))
		switch i {
		case 0:
			d.Major = x
		case 1:
			d.Minor = x
		case 2:
			d.Patch = x
		}
	}
	return d, nil
}

// ParseSpec parses d into a Spec of domain N.
func ParseSpec[N version.Number](d SpecDocument) (Spec[N], error) {
	switch {
	case d.Pure != nil && (d.Lower != nil || d.Upper != nil):
		return Spec[N]{}, fmt.Errorf("%w: pure and lower/upper are exclusive", ErrInvalidSpec)
	case d.Pure != nil:
		c, err := ParseClause[N](*d.Pure)
		if err != nil {
			return Spec[N]{}, err
		}
		return Pure(c), nil
	case d.Lower == nil || d.Upper == nil:
		return Spec[N]{}, fmt.Errorf("%w: need pure, or both lower and upper", ErrInvalidSpec)
	}

	lower, err := ParseClause[N](*d.Lower)
	if err != nil {
		return Spec[N]{}, fmt.Errorf("lower: %w", err)
	}
	upper, err := ParseClause[N](*d.Upper)
	if err != nil {
		return Spec[N]{}, fmt.Errorf("upper: %w", err)
	}
	return Composite(lower, upper), nil
}

// Document returns the authored form of c.
func (c Clause[N]) Document() ClauseDocument {
	d := ClauseDocument{Kind: c.kind}
	g := c.kind.Granularity()
	if g >= GranularityMajor {
		d.Major = version.FormatScalar(c.major)
	}
	if g >= GranularityMinor {
		d.Minor = version.FormatScalar(c.minor)
	}
	if g >= GranularityPatch {
		d.Patch = version.FormatScalar(c.patch)
	}
	return d
}

// Document returns the authored form of s.
func (s Spec[N]) Document() SpecDocument {
	if !s.composite {
		d := s.pure.Document()
		return SpecDocument{Pure: &d}
	}
	lower, upper := s.lower.Document(), s.upper.Document()
	return SpecDocument{Lower: &lower, Upper: &upper}
}
