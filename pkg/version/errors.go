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

package version

import "errors"

// Construction errors. New reports exactly one of these, for the first
// offending field in major, minor, patch order, maximum before minimum.
var (
	ErrMajorIsMax = errors.New("major is the domain maximum")
	ErrMajorIsMin = errors.New("major is the domain minimum")
	ErrMinorIsMax = errors.New("minor is the domain maximum")
	ErrMinorIsMin = errors.New("minor is the domain minimum")
	ErrPatchIsMax = errors.New("patch is the domain maximum")
	ErrPatchIsMin = errors.New("patch is the domain minimum")
)

// Boundary errors, raised only when converting encoded or textual values
// into a concrete domain.
var (
	ErrValueTooLarge = errors.New("value too large")
	ErrValueTooSmall = errors.New("value too small")
	ErrInvalidScalar = errors.New("version field is not an integer")
	ErrUnknownDomain = errors.New("unknown numeric domain")
)

// IsConstructionError reports whether err is one of the six construction
// errors returned by New.
func IsConstructionError(err error) bool {
	for _, target := range []error{
		ErrMajorIsMax, ErrMajorIsMin,
		ErrMinorIsMax, ErrMinorIsMin,
		ErrPatchIsMax, ErrPatchIsMin,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
