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

import "fmt"

// Wire is the flat numeric encoding of a triple, shared by all ten domains.
// Each field is widened to 64 unsigned bits: unsigned values by value,
// signed values by zig-zag encoding, so every domain of width b occupies
// exactly [0, 2^b-1].
type Wire struct {
	Major uint64 `json:"major" yaml:"major"`
	Minor uint64 `json:"minor" yaml:"minor"`
	Patch uint64 `json:"patch" yaml:"patch"`
}

// Widen encodes x as a 64-bit unsigned value.
func Widen[N Number](x N) uint64 {
	if Signed[N]() {
		s := int64(x)
		return uint64(s<<1) ^ uint64(s>>63)
	}
	return uint64(x)
}

// Narrow decodes w into N. It fails with ErrValueTooLarge when w is beyond
// the largest encoding N can hold; it never truncates.
func Narrow[N Number](w uint64) (N, error) {
	if bits := Bits[N](); bits < 64 && w > uint64(1)<<bits-1 {
		return 0, fmt.Errorf("%w: %d does not fit %s", ErrValueTooLarge, w, DomainOf[N]())
	}
	if Signed[N]() {
		return N(int64(w>>1) ^ -int64(w&1)), nil
	}
	return N(w), nil
}

// EncodeTriple widens a raw triple. Sentinels are encoded like any other
// value, so requirement bounds round-trip unchanged.
func EncodeTriple[N Number](t [3]N) Wire {
	return Wire{
		Major: Widen(t[0]),
		Minor: Widen(t[1]),
		Patch: Widen(t[2]),
	}
}

// DecodeTriple narrows every field of w into N, reporting the first field
// that does not fit.
func DecodeTriple[N Number](w Wire) ([3]N, error) {
	var t [3]N
	for i, f := range []struct {
		name  string
		value uint64
	}{
		{"major", w.Major},
		{"minor", w.Minor},
		{"patch", w.Patch},
	} {
		x, err := Narrow[N](f.value)
		if err != nil {
			return [3]N{}, fmt.Errorf("%s: %w", f.name, err)
		}
		t[i] = x
	}
	return t, nil
}

// Wire returns the flat encoding of v.
func (v Version[N]) Wire() Wire {
	return EncodeTriple(v.Triple())
}

// Decode narrows w into N and constructs a Version from it. Narrowing
// failures wrap ErrValueTooLarge; sentinel fields fail like New.
func Decode[N Number](w Wire) (Version[N], error) {
	t, err := DecodeTriple[N](w)
	if err != nil {
		return Version[N]{}, err
	}
	return FromTriple(t)
}
