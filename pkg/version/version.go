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

import (
	"cmp"
	"fmt"
)

// Version is a (major, minor, patch) triple over one numeric domain.
// A Version obtained from New or TryNew never holds the domain's minimum or
// maximum in any field. Versions are values; copy them freely.
type Version[N Number] struct {
	major N
	minor N
	patch N
}

// New creates a Version, checking each field against both sentinels.
// Fields are checked in major, minor, patch order, maximum before minimum,
// and the first violation is returned as one of the Err*Is* errors.
func New[N Number](major, minor, patch N) (Version[N], error) {
	maxN, minN := Max[N](), Min[N]()

	switch {
	case major == maxN:
		return Version[N]{}, ErrMajorIsMax
	case major == minN:
		return Version[N]{}, ErrMajorIsMin
	case minor == maxN:
		return Version[N]{}, ErrMinorIsMax
	case minor == minN:
		return Version[N]{}, ErrMinorIsMin
	case patch == maxN:
		return Version[N]{}, ErrPatchIsMax
	case patch == minN:
		return Version[N]{}, ErrPatchIsMin
	}

	return Version[N]{major: major, minor: minor, patch: patch}, nil
}

// TryNew creates a Version using a single validity check across all three
// fields. It reports false, with no detail, when any field is a sentinel.
func TryNew[N Number](major, minor, patch N) (Version[N], bool) {
	if !Valid(major, minor, patch) {
		return Version[N]{}, false
	}
	return Version[N]{major: major, minor: minor, patch: patch}, true
}

// MustNew is like New but panics on error. Use it for compile-time known
// versions only.
func MustNew[N Number](major, minor, patch N) Version[N] {
	v, err := New(major, minor, patch)
	if err != nil {
		panic(fmt.Sprintf("version.MustNew(%v, %v, %v): %v", major, minor, patch, err))
	}
	return v
}

// FromTriple creates a Version from a [major, minor, patch] array.
func FromTriple[N Number](t [3]N) (Version[N], error) {
	return New(t[0], t[1], t[2])
}

// Major returns the major field.
func (v Version[N]) Major() N { return v.major }

// Minor returns the minor field.
func (v Version[N]) Minor() N { return v.minor }

// Patch returns the patch field.
func (v Version[N]) Patch() N { return v.patch }

// Triple returns the fields as a [major, minor, patch] array.
func (v Version[N]) Triple() [3]N {
	return [3]N{v.major, v.minor, v.patch}
}

// IsValid reports whether v is free of sentinel values. Only the zero value
// of an unsigned domain can fail this after construction.
func (v Version[N]) IsValid() bool {
	return Valid(v.major, v.minor, v.patch)
}

// String returns the version as "major.minor.patch".
func (v Version[N]) String() string {
	return fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.patch)
}

// Compare returns -1, 0 or +1 ordering v against other lexicographically.
func (v Version[N]) Compare(other Version[N]) int {
	return CompareTriples(v.Triple(), other.Triple())
}

// Equals reports field-wise equality.
func (v Version[N]) Equals(other Version[N]) bool {
	return v == other
}

// IsNewer reports whether v orders strictly after other.
func (v Version[N]) IsNewer(other Version[N]) bool {
	return v.Compare(other) > 0
}

// EqualsOrNewer reports whether v orders at or after other.
func (v Version[N]) EqualsOrNewer(other Version[N]) bool {
	return v.Compare(other) >= 0
}

// CompareTriples orders raw triples lexicographically. It is total over
// every input, sentinels included.
func CompareTriples[N Number](a, b [3]N) int {
	if c := cmp.Compare(a[0], b[0]); c != 0 {
		return c
	}
	if c := cmp.Compare(a[1], b[1]); c != 0 {
		return c
	}
	return cmp.Compare(a[2], b[2])
}
