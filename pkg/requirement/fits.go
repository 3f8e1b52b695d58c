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
	"github.com/NVIDIA/fast-version/pkg/lanes"
	"github.com/NVIDIA/fast-version/pkg/version"
)

// FitsScalar reports whether lower[i] <= ver[i] <= upper[i] for every field,
// stopping at the first field out of range.
func FitsScalar[N version.Number](ver, lower, upper [3]N) bool {
	for i := range ver {
		if ver[i] < lower[i] || ver[i] > upper[i] {
			return false
		}
	}
	return true
}

// FitsLanes answers the same question as FitsScalar in one lane-wise pass.
// The fourth lane of all three vectors holds One, so it always fits.
func FitsLanes[N version.Number](ver, lower, upper [3]N) bool {
	one := version.One[N]()
	v := lanes.Load(ver[0], ver[1], ver[2], one)
	lo := lanes.Load(lower[0], lower[1], lower[2], one)
	hi := lanes.Load(upper[0], upper[1], upper[2], one)
	return v.Ge(lo).And(v.Le(hi)).All()
}

// Fits reports whether v lies within r, using the backend compiled into
// this build.
func (r Requirement[N]) Fits(v version.Version[N]) bool {
	return fits(v.Triple(), r.lower, r.upper)
}

// FitsTriple is Fits for a raw triple that has not been validated.
func (r Requirement[N]) FitsTriple(t [3]N) bool {
	return fits(t, r.lower, r.upper)
}
