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
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimits(t *testing.T) {
	checkLimits(t, int8(math.MinInt8), int8(math.MaxInt8), 8, true)
	checkLimits(t, int16(math.MinInt16), int16(math.MaxInt16), 16, true)
	checkLimits(t, int32(math.MinInt32), int32(math.MaxInt32), 32, true)
	checkLimits(t, int64(math.MinInt64), int64(math.MaxInt64), 64, true)
	checkLimits(t, int(math.MinInt), int(math.MaxInt), strconv.IntSize, true)
	checkLimits(t, uint8(0), uint8(math.MaxUint8), 8, false)
	checkLimits(t, uint16(0), uint16(math.MaxUint16), 16, false)
	checkLimits(t, uint32(0), uint32(math.MaxUint32), 32, false)
	checkLimits(t, uint64(0), uint64(math.MaxUint64), 64, false)
	checkLimits(t, uint(0), uint(math.MaxUint), strconv.IntSize, false)
}

func checkLimits[N Number](t *testing.T, wantMin, wantMax N, wantBits uint, wantSigned bool) {
	t.Helper()
	d := DomainOf[N]()
	assert.Equal(t, wantMin, Min[N](), "%s min", d)
	assert.Equal(t, wantMax, Max[N](), "%s max", d)
	assert.Equal(t, N(1), One[N](), "%s one", d)
	assert.Equal(t, wantBits, Bits[N](), "%s bits", d)
	assert.Equal(t, wantSigned, Signed[N](), "%s signed", d)
	assert.True(t, d.IsValid(), "%s valid", d)
}

type build uint16

func TestDomainOf_NamedTypes(t *testing.T) {
	assert.Equal(t, DomainUint16, DomainOf[build]())
	assert.Equal(t, build(math.MaxUint16), Max[build]())
}

func TestParseDomain(t *testing.T) {
	tests := []struct {
		in      string
		want    Domain
		wantErr bool
	}{
		{"u64", DomainUint64, false},
		{"U8", DomainUint8, false},
		{"isize", DomainInt, false},
		{"int16", DomainInt16, false},
		{" uint ", DomainUint, false},
		{"byte", DomainUint8, false},
		{"u128", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDomain(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownDomain))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDomainInfo(t *testing.T) {
	assert.Len(t, Domains(), 10)
	for _, d := range Domains() {
		info, err := d.Info()
		require.NoError(t, err, d)
		assert.Equal(t, d, info.Domain)
	}

	info, err := DomainInt8.Info()
	require.NoError(t, err)
	assert.Equal(t, Scalar("-128"), info.Min)
	assert.Equal(t, Scalar("127"), info.Max)

	info, err = DomainUint64.Info()
	require.NoError(t, err)
	assert.Equal(t, Scalar("18446744073709551615"), info.Max)

	_, err = Domain("f32").Info()
	assert.ErrorIs(t, err, ErrUnknownDomain)
}
