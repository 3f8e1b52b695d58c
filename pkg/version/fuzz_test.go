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
	"math"
	"testing"
)

// FuzzValidity checks that both validity backends and both constructors
// agree for arbitrary triples in a narrow and a wide domain.
func FuzzValidity(f *testing.F) {
	// Seed corpus with sentinels, neighbours and interior values
	f.Add(uint64(1), uint64(1), uint64(1))
	f.Add(uint64(0), uint64(0), uint64(0))
	f.Add(uint64(math.MaxUint64), uint64(1), uint64(1))
	f.Add(uint64(1), uint64(math.MaxUint64-1), uint64(2))
	f.Add(uint64(255), uint64(254), uint64(128))
	f.Add(uint64(127), uint64(128), uint64(129))

	f.Fuzz(func(t *testing.T, major, minor, patch uint64) {
		checkAgreement(t, major, minor, patch)
		checkAgreement(t, uint8(major), uint8(minor), uint8(patch))
		checkAgreement(t, int8(major), int8(minor), int8(patch))
		checkAgreement(t, int64(major), int64(minor), int64(patch))
	})
}

func checkAgreement[N Number](t *testing.T, major, minor, patch N) {
	t.Helper()
	scalar := ValidScalar(major, minor, patch)
	if ValidLanes(major, minor, patch) != scalar {
		t.Fatalf("%s: backends disagree on %v.%v.%v", DomainOf[N](), major, minor, patch)
	}
	_, err := New(major, minor, patch)
	_, ok := TryNew(major, minor, patch)
	if (err == nil) != scalar || ok != scalar {
		t.Fatalf("%s: constructors disagree on %v.%v.%v: err=%v ok=%v", DomainOf[N](), major, minor, patch, err, ok)
	}
}

// FuzzNarrow checks that narrowing either fails with ErrValueTooLarge or
// round-trips exactly.
func FuzzNarrow(f *testing.F) {
	f.Add(uint64(0))
	f.Add(uint64(255))
	f.Add(uint64(256))
	f.Add(uint64(math.MaxUint32))
	f.Add(uint64(math.MaxUint64))

	f.Fuzz(func(t *testing.T, w uint64) {
		if x, err := Narrow[int16](w); err == nil && Widen(x) != w {
			t.Fatalf("int16: Widen(Narrow(%d)) = %d", w, Widen(x))
		}
		if x, err := Narrow[uint32](w); err == nil && Widen(x) != w {
			t.Fatalf("uint32: Widen(Narrow(%d)) = %d", w, Widen(x))
		}
		if x, err := Narrow[int64](w); err != nil || Widen(x) != w {
			t.Fatalf("int64: Narrow(%d) = %d, %v", w, x, err)
		}
	})
}
