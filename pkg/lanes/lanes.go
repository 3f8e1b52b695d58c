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

// Package lanes provides fixed-width four-lane integer vectors with
// lane-wise comparisons producing bit masks.
//
// Every comparison evaluates all four lanes unconditionally and folds the
// results into a Mask, so callers get one branch at the end (Mask.All)
// instead of one per field. Vectors are plain arrays and never escape to
// the heap.
package lanes

// Width is the number of lanes in a Vec.
const Width = 4

// Integer is the set of element types a Vec may hold.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Vec is a four-lane vector.
type Vec[N Integer] [Width]N

// Mask holds one bit per lane; bit i set means lane i compared true.
type Mask uint8

// Full has every lane bit set.
const Full Mask = 1<<Width - 1

// Load packs four values into a vector, in lane order.
func Load[N Integer](a, b, c, d N) Vec[N] {
	return Vec[N]{a, b, c, d}
}

// Splat fills every lane with x.
func Splat[N Integer](x N) Vec[N] {
	return Vec[N]{x, x, x, x}
}

// Ne compares lane-wise for inequality.
func (v Vec[N]) Ne(o Vec[N]) Mask {
	return lane(v[0] != o[0], 0) |
		lane(v[1] != o[1], 1) |
		lane(v[2] != o[2], 2) |
		lane(v[3] != o[3], 3)
}

// Eq compares lane-wise for equality.
func (v Vec[N]) Eq(o Vec[N]) Mask {
	return v.Ne(o) ^ Full
}

// Ge reports, per lane, whether v is greater than or equal to o.
func (v Vec[N]) Ge(o Vec[N]) Mask {
	return lane(v[0] >= o[0], 0) |
		lane(v[1] >= o[1], 1) |
		lane(v[2] >= o[2], 2) |
		lane(v[3] >= o[3], 3)
}

// Le reports, per lane, whether v is less than or equal to o.
func (v Vec[N]) Le(o Vec[N]) Mask {
	return lane(v[0] <= o[0], 0) |
		lane(v[1] <= o[1], 1) |
		lane(v[2] <= o[2], 2) |
		lane(v[3] <= o[3], 3)
}

// And intersects two masks.
func (m Mask) And(o Mask) Mask {
	return m & o
}

// All reports whether every lane is set.
func (m Mask) All() bool {
	return m&Full == Full
}

// Any reports whether at least one lane is set.
func (m Mask) Any() bool {
	return m&Full != 0
}

// Lane reports whether lane i is set.
func (m Mask) Lane(i int) bool {
	return i >= 0 && i < Width && m&(1<<uint(i)) != 0
}

func lane(b bool, i uint) Mask {
	var m Mask
	if b {
		m = 1 << i
	}
	return m
}
