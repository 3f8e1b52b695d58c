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

// Spec describes a requirement before it is resolved into bounds: either a
// single clause or a lower/upper clause pair.
type Spec[N version.Number] struct {
	composite bool
	pure      Clause[N]
	lower     Clause[N]
	upper     Clause[N]
}

// Pure wraps a single clause.
func Pure[N version.Number](c Clause[N]) Spec[N] {
	return Spec[N]{pure: c}
}

// Composite pairs a clause for the lower bound with one for the upper bound.
func Composite[N version.Number](lower, upper Clause[N]) Spec[N] {
	return Spec[N]{composite: true, lower: lower, upper: upper}
}

// IsComposite reports whether s holds a lower/upper pair.
func (s Spec[N]) IsComposite() bool { return s.composite }

// Clause returns the clause of a pure spec.
func (s Spec[N]) Clause() Clause[N] { return s.pure }

// Lower returns the lower-slot clause of a composite spec.
func (s Spec[N]) Lower() Clause[N] { return s.lower }

// Upper returns the upper-slot clause of a composite spec.
func (s Spec[N]) Upper() Clause[N] { return s.upper }

// Build resolves s. It is shorthand for Build(s).
func (s Spec[N]) Build() (Requirement[N], error) {
	return Build(s)
}

func (s Spec[N]) String() string {
	if s.composite {
		return fmt.Sprintf("composite(%s, %s)", s.lower, s.upper)
	}
	return fmt.Sprintf("pure(%s)", s.pure)
}

// checkRoles validates composite slot placement before anything is applied.
func checkRoles(lower, upper ClauseKind) error {
	switch {
	case lower.IsStrict():
		return fmt.Errorf("%w: lower slot", ErrStrictInComposite)
	case upper.IsStrict():
		return fmt.Errorf("%w: upper slot", ErrStrictInComposite)
	case lower.IsLesser():
		return fmt.Errorf("%w: %s cannot supply a lower bound", ErrLowerRoleMismatch, lower)
	case upper.IsGreater():
		return fmt.Errorf("%w: %s cannot supply an upper bound", ErrUpperRoleMismatch, upper)
	}
	return nil
}
