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

// Wire is the domain-independent encoding of a Requirement. Bounds use
// version.Wire, so sentinel bounds round-trip like any other value. Kinds
// encode as their kebab-case names.
type Wire struct {
	LowerKind ClauseKind   `json:"lowerKind" yaml:"lowerKind"`
	UpperKind ClauseKind   `json:"upperKind" yaml:"upperKind"`
	Lower     version.Wire `json:"lower" yaml:"lower"`
	Upper     version.Wire `json:"upper" yaml:"upper"`
}

// Wire returns the flat encoding of r.
func (r Requirement[N]) Wire() Wire {
	return Wire{
		LowerKind: r.lowerKind,
		UpperKind: r.upperKind,
		Lower:     version.EncodeTriple(r.lower),
		Upper:     version.EncodeTriple(r.upper),
	}
}

// Decode narrows w into domain N. Bounds that do not fit N fail with
// version.ErrValueTooLarge. Kinds must match the side they describe.
//
// The encoding does not record the source domain, so sentinel bounds keep
// their meaning only when w is decoded into the domain that encoded it. An
// open composite from a wider domain carries that domain's Max or Min in
// its unwritten fields and fails to narrow; one from a narrower domain
// decodes into ordinary finite bounds.
func Decode[N version.Number](w Wire) (Requirement[N], error) {
	if err := checkWireKinds(w.LowerKind, w.UpperKind); err != nil {
		return Empty[N](), err
	}
	lower, err := version.DecodeTriple[N](w.Lower)
	if err != nil {
		return Empty[N](), fmt.Errorf("lower bound: %w", err)
	}
	upper, err := version.DecodeTriple[N](w.Upper)
	if err != nil {
		return Empty[N](), fmt.Errorf("upper bound: %w", err)
	}
	return Requirement[N]{
		lower:     lower,
		upper:     upper,
		lowerKind: w.LowerKind,
		upperKind: w.UpperKind,
	}, nil
}

func checkWireKinds(lower, upper ClauseKind) error {
	if !lower.IsAClauseKind() {
		return fmt.Errorf("%w: lower kind %d", ErrUnknownClause, int(lower))
	}
	if !upper.IsAClauseKind() {
		return fmt.Errorf("%w: upper kind %d", ErrUnknownClause, int(upper))
	}
	if lower.IsLesser() {
		return fmt.Errorf("%w: %s recorded as lower kind", ErrLowerRoleMismatch, lower)
	}
	if upper.IsGreater() || upper.IsStrict() {
		return fmt.Errorf("%w: %s recorded as upper kind", ErrUpperRoleMismatch, upper)
	}
	return nil
}
