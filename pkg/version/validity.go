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

import "github.com/NVIDIA/fast-version/pkg/lanes"

// ValidScalar reports whether no field equals either sentinel, using six
// plain comparisons.
func ValidScalar[N Number](major, minor, patch N) bool {
	maxN, minN := Max[N](), Min[N]()
	return major != maxN && major != minN &&
		minor != maxN && minor != minN &&
		patch != maxN && patch != minN
}

// ValidLanes answers the same question as ValidScalar with one lane-wise
// pass. The fourth lane holds One, which is never a sentinel.
func ValidLanes[N Number](major, minor, patch N) bool {
	v := lanes.Load(major, minor, patch, One[N]())
	notMax := v.Ne(lanes.Splat(Max[N]()))
	notMin := v.Ne(lanes.Splat(Min[N]()))
	return notMax.And(notMin).All()
}
