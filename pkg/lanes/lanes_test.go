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

package lanes

import (
	"math"
	"testing"
)

func TestVecComparisons(t *testing.T) {
	tests := []struct {
		name string
		a    Vec[int8]
		b    Vec[int8]
		ne   Mask
		ge   Mask
		le   Mask
	}{
		{
			name: "identical",
			a:    Load[int8](1, 2, 3, 4),
			b:    Load[int8](1, 2, 3, 4),
			ne:   0,
			ge:   Full,
			le:   Full,
		},
		{
			name: "mixed",
			a:    Load[int8](math.MinInt8, 5, 0, math.MaxInt8),
			b:    Load[int8](0, 5, -1, math.MaxInt8),
			ne:   0b0101,
			ge:   0b1110,
			le:   0b1011,
		},
		{
			name: "all greater",
			a:    Splat[int8](10),
			b:    Splat[int8](-10),
			ne:   Full,
			ge:   Full,
			le:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Ne(tt.b); got != tt.ne {
				t.Errorf("Ne() = %04b, want %04b", got, tt.ne)
			}
			if got := tt.a.Eq(tt.b); got != tt.ne^Full {
				t.Errorf("Eq() = %04b, want %04b", got, tt.ne^Full)
			}
			if got := tt.a.Ge(tt.b); got != tt.ge {
				t.Errorf("Ge() = %04b, want %04b", got, tt.ge)
			}
			if got := tt.a.Le(tt.b); got != tt.le {
				t.Errorf("Le() = %04b, want %04b", got, tt.le)
			}
		})
	}
}

func TestMask(t *testing.T) {
	if !Full.All() {
		t.Error("Full.All() = false")
	}
	if Mask(0b0111).All() {
		t.Error("three lanes reported as all")
	}
	if Mask(0).Any() {
		t.Error("empty mask reported as any")
	}
	if got := Mask(0b1100).And(0b0110); got != 0b0100 {
		t.Errorf("And() = %04b, want 0100", got)
	}
	m := Mask(0b1010)
	for i, want := range []bool{false, true, false, true} {
		if m.Lane(i) != want {
			t.Errorf("Lane(%d) = %v, want %v", i, m.Lane(i), want)
		}
	}
	if m.Lane(Width) || m.Lane(-1) {
		t.Error("out of range lane reported as set")
	}
}

func TestUnsignedExtremes(t *testing.T) {
	v := Load[uint64](0, 1, math.MaxUint64-1, math.MaxUint64)
	if got := v.Ne(Splat[uint64](math.MaxUint64)); got != 0b0111 {
		t.Errorf("Ne(max) = %04b, want 0111", got)
	}
	if got := v.Ne(Splat[uint64](0)); got != 0b1110 {
		t.Errorf("Ne(min) = %04b, want 1110", got)
	}
}
