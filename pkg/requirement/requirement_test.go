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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/fast-version/pkg/version"
)

func TestBuild_StrictPure(t *testing.T) {
	req, err := Build(Pure(Strict(version.MustNew[int32](1, 1, 1))))
	require.NoError(t, err)

	assert.True(t, req.Fits(version.MustNew[int32](1, 1, 1)))
	assert.False(t, req.Fits(version.MustNew[int32](1, 1, 2)))
	assert.False(t, req.Fits(version.MustNew[int32](1, 0, 1)))
	assert.False(t, req.Fits(version.MustNew[int32](2, 1, 1)))

	assert.Equal(t, ClauseStrict, req.LowerKind())
	assert.Equal(t, ClauseNone, req.UpperKind())
	assert.Equal(t, [3]int32{1, 1, 1}, req.Lower())
	assert.Equal(t, [3]int32{1, 1, 1}, req.Upper())
}

func TestBuild_StrictPureUnsigned(t *testing.T) {
	req := MustBuild(Pure(Strict(version.MustNew[uint64](1, 1, 1))))

	assert.True(t, req.FitsTriple([3]uint64{1, 1, 1}))
	assert.False(t, req.FitsTriple([3]uint64{1, 1, 2}))
	assert.False(t, req.FitsTriple([3]uint64{1, 0, 1}))
	assert.False(t, req.FitsTriple([3]uint64{2, 1, 1}))
}

func TestBuild_CompositeMajorRange(t *testing.T) {
	req, err := Build(Composite(GreaterOrEqualMajor[int32](5), LesserMajor[int32](10)))
	require.NoError(t, err)

	tests := []struct {
		v    version.Version[int32]
		want bool
	}{
		{version.MustNew[int32](7, 0, 0), true},
		{version.MustNew[int32](5, 0, 0), true},
		{version.MustNew[int32](9, 100, -3), true},
		{version.MustNew[int32](4, 9, 9), false},
		{version.MustNew[int32](10, 0, 0), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, req.Fits(tt.v), "Fits(%s)", tt.v)
	}

	assert.Equal(t, ClauseGreaterOrEqualMajor, req.LowerKind())
	assert.Equal(t, ClauseLesserMajor, req.UpperKind())
	assert.Equal(t, [3]int32{5, version.Min[int32](), version.Min[int32]()}, req.Lower())
	assert.Equal(t, [3]int32{9, version.Max[int32](), version.Max[int32]()}, req.Upper())
}

func TestBuild_CoarsePureMatchesNothing(t *testing.T) {
	req, err := Build(Pure(GreaterMajor[int32](5)))
	require.NoError(t, err)

	for _, v := range []version.Version[int32]{
		version.MustNew[int32](6, 0, 0),
		version.MustNew[int32](6, 1, 1),
		version.MustNew[int32](100, 100, 100),
		version.MustNew[int32](version.Max[int32]()-1, version.Max[int32]()-1, version.Max[int32]()-1),
	} {
		assert.False(t, req.Fits(v), "Fits(%s)", v)
	}
	assert.Equal(t, int32(6), req.Lower()[0])
	assert.Equal(t, version.Max[int32](), req.Lower()[1])
}

func TestBuild_Cascade(t *testing.T) {
	tests := []struct {
		name      string
		clause    Clause[int16]
		wantLower [3]int16
		wantUpper [3]int16
	}{
		{"greater patch", GreaterPatch[int16](1, 2, 3), [3]int16{2, 3, 4}, [3]int16{-32768, -32768, -32768}},
		{"greater or equal patch", GreaterOrEqualPatch[int16](1, 2, 3), [3]int16{1, 2, 3}, [3]int16{-32768, -32768, -32768}},
		{"greater minor", GreaterMinor[int16](1, 2), [3]int16{2, 3, 32767}, [3]int16{-32768, -32768, -32768}},
		{"lesser patch", LesserPatch[int16](5, 6, 7), [3]int16{32767, 32767, 32767}, [3]int16{4, 5, 6}},
		{"lesser or equal minor", LesserOrEqualMinor[int16](5, 6), [3]int16{32767, 32767, 32767}, [3]int16{5, 6, -32768}},
		{"lesser major", LesserMajor[int16](-5), [3]int16{32767, 32767, 32767}, [3]int16{-6, -32768, -32768}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := Build(Pure(tt.clause))
			require.NoError(t, err)
			assert.Equal(t, tt.wantLower, req.Lower())
			assert.Equal(t, tt.wantUpper, req.Upper())
			if tt.clause.Kind().IsGreater() {
				assert.Equal(t, tt.clause.Kind(), req.LowerKind())
			} else {
				assert.Equal(t, tt.clause.Kind(), req.UpperKind())
			}
		})
	}
}

func TestBuild_ValueAtSentinel(t *testing.T) {
	maxU8, maxI8, minI8 := version.Max[uint8](), version.Max[int8](), version.Min[int8]()

	tests := []struct {
		name     string
		build    func() error
		field    Field
		sentinel Sentinel
	}{
		{"u8 greater major max", buildErr(Pure(GreaterMajor(maxU8))), FieldMajor, SentinelMax},
		{"u8 greater major min", buildErr(Pure(GreaterMajor[uint8](0))), FieldMajor, SentinelMin},
		{"i8 greater major max", buildErr(Pure(GreaterMajor(maxI8))), FieldMajor, SentinelMax},
		{"i8 greater major min", buildErr(Pure(GreaterMajor(minI8))), FieldMajor, SentinelMin},
		{"i8 lesser major min", buildErr(Pure(LesserMajor(minI8))), FieldMajor, SentinelMin},
		{"i8 lesser or equal minor max", buildErr(Pure(LesserOrEqualMinor(1, maxI8))), FieldMinor, SentinelMax},
		{"patch before major", buildErr(Pure(GreaterPatch(maxI8, 1, minI8))), FieldPatch, SentinelMin},
		{"minor before major", buildErr(Pure(GreaterOrEqualMinor(minI8, maxI8))), FieldMinor, SentinelMax},
		{"cascade reaches major", buildErr(Pure(LesserPatch(maxI8, 1, 1))), FieldMajor, SentinelMax},
		{"strict zero value", buildErr(Pure(Strict(version.Version[uint8]{}))), FieldMajor, SentinelMin},
		{"composite upper", buildErr(Composite(GreaterMajor[int8](1), LesserOrEqualPatch(1, 1, maxI8))), FieldPatch, SentinelMax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()
			require.ErrorIs(t, err, ErrValueAtSentinel)

			var be *BoundError
			require.True(t, errors.As(err, &be))
			assert.Equal(t, tt.field, be.Field)
			assert.Equal(t, tt.sentinel, be.Sentinel)
		})
	}
}

func buildErr[N version.Number](s Spec[N]) func() error {
	return func() error {
		req, err := Build(s)
		if err != nil && !req.IsEmpty() {
			return errors.New("failed build leaked partial bounds")
		}
		return err
	}
}

func TestBuild_RolePlacement(t *testing.T) {
	greater := []Clause[int64]{
		GreaterMajor[int64](1), GreaterMinor[int64](1, 1), GreaterPatch[int64](1, 1, 1),
		GreaterOrEqualMajor[int64](1), GreaterOrEqualMinor[int64](1, 1), GreaterOrEqualPatch[int64](1, 1, 1),
	}
	lesser := []Clause[int64]{
		LesserMajor[int64](9), LesserMinor[int64](9, 9), LesserPatch[int64](9, 9, 9),
		LesserOrEqualMajor[int64](9), LesserOrEqualMinor[int64](9, 9), LesserOrEqualPatch[int64](9, 9, 9),
	}
	strict := Strict(version.MustNew[int64](3, 3, 3))

	for _, lo := range greater {
		for _, hi := range lesser {
			_, err := Build(Composite(lo, hi))
			assert.NoError(t, err, "Composite(%s, %s)", lo, hi)

			_, err = Build(Composite(hi, lo))
			assert.ErrorIs(t, err, ErrLowerRoleMismatch, "Composite(%s, %s)", hi, lo)
		}
		for _, other := range greater {
			_, err := Build(Composite(lo, other))
			assert.ErrorIs(t, err, ErrUpperRoleMismatch, "Composite(%s, %s)", lo, other)
		}
	}

	for _, c := range append(append([]Clause[int64]{strict}, greater...), lesser...) {
		_, err := Build(Composite(strict, c))
		assert.ErrorIs(t, err, ErrStrictInComposite, "Composite(strict, %s)", c)

		_, err = Build(Composite(c, strict))
		assert.ErrorIs(t, err, ErrStrictInComposite, "Composite(%s, strict)", c)
	}
}

func TestBuild_UnknownClause(t *testing.T) {
	_, err := Build(Pure(Clause[uint32]{}))
	assert.ErrorIs(t, err, ErrUnknownClause)

	_, err = Build(Composite(GreaterMajor[uint32](1), Clause[uint32]{}))
	assert.ErrorIs(t, err, ErrUnknownClause)
}

func TestMustBuild_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustBuild(Pure(GreaterMajor(version.Max[uint16]())))
	})
	assert.NotPanics(t, func() {
		MustBuild(Composite(GreaterMajor[uint16](1), LesserMajor[uint16](3)))
	})
}

func TestEmpty(t *testing.T) {
	e := Empty[uint8]()
	assert.True(t, e.IsEmpty())
	assert.Equal(t, [3]uint8{255, 255, 255}, e.Lower())
	assert.Equal(t, [3]uint8{0, 0, 0}, e.Upper())
	assert.False(t, e.Fits(version.MustNew[uint8](1, 1, 1)))
	assert.Equal(t, "[255.255.255, 0.0.0] (none, none)", e.String())
}
