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

// Package requirement resolves bound clauses into version ranges and tests
// versions against them.
//
// A Clause is one of twelve bound rules: Strict, or Greater, GreaterOrEqual,
// Lesser and LesserOrEqual at major, minor or patch granularity. A Spec holds
// either one clause (Pure) or a lower/upper pair (Composite). Build turns a
// Spec into a Requirement, an inclusive [lower, upper] bound per field:
//
//	spec := requirement.Composite(
//	    requirement.GreaterOrEqualMajor[int32](5),
//	    requirement.LesserMajor[int32](10),
//	)
//	req, err := requirement.Build(spec)
//	if err != nil {
//	    return err
//	}
//	ok := req.Fits(version.MustNew[int32](7, 0, 0)) // true
//
// Finer clauses cascade into coarser ones: GreaterPatch(1, 2, 3) also sets
// the major and minor lower bounds. The reverse does not hold. A Pure spec
// starts from Empty, which no version fits, so Pure(GreaterMajor(5)) leaves
// minor and patch unsatisfiable and matches nothing. A Composite spec starts
// from the unbounded range.
//
// Composite slots are checked before anything is applied. The lower slot
// takes a greater-family clause and the upper slot a lesser-family clause;
// the opposite placement fails with ErrLowerRoleMismatch or
// ErrUpperRoleMismatch, and Strict in either slot fails with
// ErrStrictInComposite.
//
// FitsScalar and FitsLanes are the two range backends. Fits uses lanes
// unless built with -tags purego.
package requirement
