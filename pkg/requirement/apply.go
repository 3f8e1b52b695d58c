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

// apply writes c into r. Every field a clause touches is validated before
// the first write, so a failed apply leaves r unchanged.
func (r *Requirement[N]) apply(c Clause[N]) error {
	one := version.One[N]()
	switch c.kind {
	case ClauseStrict:
		return r.applyStrict(c)
	case ClauseGreaterMajor:
		return r.raiseMajor(c.kind, c.major, one)
	case ClauseGreaterMinor:
		return r.raiseMinor(c.kind, c.major, c.minor, one)
	case ClauseGreaterPatch:
		return r.raisePatch(c.kind, c.major, c.minor, c.patch, one)
	case ClauseGreaterOrEqualMajor:
		return r.raiseMajor(c.kind, c.major, 0)
	case ClauseGreaterOrEqualMinor:
		return r.raiseMinor(c.kind, c.major, c.minor, 0)
	case ClauseGreaterOrEqualPatch:
		return r.raisePatch(c.kind, c.major, c.minor, c.patch, 0)
	case ClauseLesserMajor:
		return r.capMajor(c.kind, c.major, one)
	case ClauseLesserMinor:
		return r.capMinor(c.kind, c.major, c.minor, one)
	case ClauseLesserPatch:
		return r.capPatch(c.kind, c.major, c.minor, c.patch, one)
	case ClauseLesserOrEqualMajor:
		return r.capMajor(c.kind, c.major, 0)
	case ClauseLesserOrEqualMinor:
		return r.capMinor(c.kind, c.major, c.minor, 0)
	case ClauseLesserOrEqualPatch:
		return r.capPatch(c.kind, c.major, c.minor, c.patch, 0)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownClause, c.kind)
	}
}

// applyStrict pins both bounds to the clause's version. The upper kind is
// left as is.
func (r *Requirement[N]) applyStrict(c Clause[N]) error {
	for f, x := range c.Fields() {
		if err := validate(c.kind, Field(f), x); err != nil {
			return err
		}
	}
	r.lower = c.Fields()
	r.upper = c.Fields()
	r.lowerKind = ClauseStrict
	return nil
}

// raiseMajor sets the lower major bound to major+off.
func (r *Requirement[N]) raiseMajor(kind ClauseKind, major, off N) error {
	if err := validate(kind, FieldMajor, major); err != nil {
		return err
	}
	r.lower[FieldMajor] = major + off
	r.lowerKind = kind
	return nil
}

// raiseMinor validates minor, cascades into raiseMajor, then sets the lower
// minor bound.
func (r *Requirement[N]) raiseMinor(kind ClauseKind, major, minor, off N) error {
	if err := validate(kind, FieldMinor, minor); err != nil {
		return err
	}
	if err := r.raiseMajor(kind, major, off); err != nil {
		return err
	}
	r.lower[FieldMinor] = minor + off
	r.lowerKind = kind
	return nil
}

func (r *Requirement[N]) raisePatch(kind ClauseKind, major, minor, patch, off N) error {
	if err := validate(kind, FieldPatch, patch); err != nil {
		return err
	}
	if err := r.raiseMinor(kind, major, minor, off); err != nil {
		return err
	}
	r.lower[FieldPatch] = patch + off
	r.lowerKind = kind
	return nil
}

// capMajor sets the upper major bound to major-off.
func (r *Requirement[N]) capMajor(kind ClauseKind, major, off N) error {
	if err := validate(kind, FieldMajor, major); err != nil {
		return err
	}
	r.upper[FieldMajor] = major - off
	r.upperKind = kind
	return nil
}

func (r *Requirement[N]) capMinor(kind ClauseKind, major, minor, off N) error {
	if err := validate(kind, FieldMinor, minor); err != nil {
		return err
	}
	if err := r.capMajor(kind, major, off); err != nil {
		return err
	}
	r.upper[FieldMinor] = minor - off
	r.upperKind = kind
	return nil
}

func (r *Requirement[N]) capPatch(kind ClauseKind, major, minor, patch, off N) error {
	if err := validate(kind, FieldPatch, patch); err != nil {
		return err
	}
	if err := r.capMinor(kind, major, minor, off); err != nil {
		return err
	}
	r.upper[FieldPatch] = patch - off
	r.upperKind = kind
	return nil
}

// validate rejects a bound that sits on either sentinel, minimum first.
// Offsetting such a value would wrap.
func validate[N version.Number](kind ClauseKind, f Field, x N) error {
	if x == version.Min[N]() {
		return &BoundError{Kind: kind, Field: f, Sentinel: SentinelMin}
	}
	if x == version.Max[N]() {
		return &BoundError{Kind: kind, Field: f, Sentinel: SentinelMax}
	}
	return nil
}
