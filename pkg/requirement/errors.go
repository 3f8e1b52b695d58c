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
	"errors"
	"fmt"
)

var (
	// ErrValueAtSentinel is returned when a clause bound equals the domain
	// minimum or maximum.
	ErrValueAtSentinel = errors.New("value at sentinel")

	// ErrLowerRoleMismatch is returned when a composite lower slot holds a
	// lesser-family clause.
	ErrLowerRoleMismatch = errors.New("lower role mismatch")

	// ErrUpperRoleMismatch is returned when a composite upper slot holds a
	// greater-family clause.
	ErrUpperRoleMismatch = errors.New("upper role mismatch")

	// ErrStrictInComposite is returned when either composite slot holds a
	// strict clause.
	ErrStrictInComposite = errors.New("strict clause in composite")

	// ErrUnknownClause is returned for a clause whose kind is not one of the
	// twelve rules.
	ErrUnknownClause = errors.New("unknown clause kind")

	// ErrMissingField is returned when a clause document omits a field its
	// kind requires.
	ErrMissingField = errors.New("missing clause field")

	// ErrInvalidSpec is returned when a spec document is neither pure nor a
	// complete lower/upper pair.
	ErrInvalidSpec = errors.New("invalid requirement spec")
)

// Field names one of the three version fields.
type Field int

const (
	FieldMajor Field = iota
	FieldMinor
	FieldPatch
)

func (f Field) String() string {
	switch f {
	case FieldMajor:
		return "major"
	case FieldMinor:
		return "minor"
	case FieldPatch:
		return "patch"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

// Sentinel names the domain extreme a bound collided with.
type Sentinel int

const (
	SentinelMin Sentinel = iota
	SentinelMax
)

func (s Sentinel) String() string {
	if s == SentinelMax {
		return "maximum"
	}
	return "minimum"
}

// BoundError reports which clause field sat on which sentinel.
type BoundError struct {
	Kind     ClauseKind
	Field    Field
	Sentinel Sentinel
}

func (e *BoundError) Error() string {
	return fmt.Sprintf("%s: %s %s bound is the domain %s", ErrValueAtSentinel, e.Kind, e.Field, e.Sentinel)
}

// Unwrap lets errors.Is match ErrValueAtSentinel.
func (e *BoundError) Unwrap() error {
	return ErrValueAtSentinel
}
