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
	"testing"

	"pgregory.net/rapid"

	"github.com/NVIDIA/fast-version/pkg/version"
)

// fieldGen draws uniform values mixed with sentinels and their neighbours.
func fieldGen[N version.Number](base *rapid.Generator[N]) *rapid.Generator[N] {
	maxN, minN, one := version.Max[N](), version.Min[N](), version.One[N]()
	return rapid.OneOf(
		base,
		rapid.SampledFrom([]N{maxN, minN, maxN - 1, minN + 1, one, 0, one + one}),
	)
}

func tripleGen[N version.Number](base *rapid.Generator[N]) *rapid.Generator[[3]N] {
	gen := fieldGen(base)
	return rapid.Custom(func(t *rapid.T) [3]N {
		return [3]N{gen.Draw(t, "major"), gen.Draw(t, "minor"), gen.Draw(t, "patch")}
	})
}

func TestFits_BackendsAgree(t *testing.T) {
	t.Run("i8", func(t *testing.T) { checkFits(t, rapid.Int8()) })
	t.Run("i16", func(t *testing.T) { checkFits(t, rapid.Int16()) })
	t.Run("i32", func(t *testing.T) { checkFits(t, rapid.Int32()) })
	t.Run("i64", func(t *testing.T) { checkFits(t, rapid.Int64()) })
	t.Run("isize", func(t *testing.T) { checkFits(t, rapid.Int()) })
	t.Run("u8", func(t *testing.T) { checkFits(t, rapid.Uint8()) })
	t.Run("u16", func(t *testing.T) { checkFits(t, rapid.Uint16()) })
	t.Run("u32", func(t *testing.T) { checkFits(t, rapid.Uint32()) })
	t.Run("u64", func(t *testing.T) { checkFits(t, rapid.Uint64()) })
	t.Run("usize", func(t *testing.T) { checkFits(t, rapid.Uint()) })
}

func checkFits[N version.Number](t *testing.T, base *rapid.Generator[N]) {
	gen := tripleGen(base)
	rapid.Check(t, func(t *rapid.T) {
		ver := gen.Draw(t, "version")
		lower := gen.Draw(t, "lower")
		upper := gen.Draw(t, "upper")

		want := true
		for i := range ver {
			want = want && lower[i] <= ver[i] && ver[i] <= upper[i]
		}
		if got := FitsScalar(ver, lower, upper); got != want {
			t.Fatalf("FitsScalar(%v, %v, %v) = %v, want %v", ver, lower, upper, got, want)
		}
		if got := FitsLanes(ver, lower, upper); got != want {
			t.Fatalf("FitsLanes(%v, %v, %v) = %v, want %v", ver, lower, upper, got, want)
		}

		req := Requirement[N]{lower: lower, upper: upper}
		if got := req.FitsTriple(ver); got != want {
			t.Fatalf("FitsTriple(%v) = %v, want %v", ver, got, want)
		}
	})
}

func TestFits_StrictMatchesOnlyItself(t *testing.T) {
	gen := tripleGen(rapid.Int16())
	rapid.Check(t, func(t *rapid.T) {
		pin, err := version.FromTriple(gen.Draw(t, "pin"))
		if err != nil {
			t.Skip("pin is not a valid version")
		}
		other, err := version.FromTriple(gen.Draw(t, "other"))
		if err != nil {
			t.Skip("other is not a valid version")
		}

		req := MustBuild(Pure(Strict(pin)))
		if got := req.Fits(other); got != other.Equals(pin) {
			t.Fatalf("Strict(%s).Fits(%s) = %v", pin, other, got)
		}
		if !req.Fits(pin) {
			t.Fatalf("Strict(%s) rejects itself", pin)
		}
	})
}

func TestFits_CompositePatchRange(t *testing.T) {
	gen := tripleGen(rapid.Int32())
	rapid.Check(t, func(t *rapid.T) {
		lo, hi, v := gen.Draw(t, "lo"), gen.Draw(t, "hi"), gen.Draw(t, "v")
		req, err := Build(Composite(
			GreaterOrEqualPatch(lo[0], lo[1], lo[2]),
			LesserOrEqualPatch(hi[0], hi[1], hi[2]),
		))
		if err != nil {
			if version.ValidScalar(lo[0], lo[1], lo[2]) && version.ValidScalar(hi[0], hi[1], hi[2]) {
				t.Fatalf("Build rejected non-sentinel bounds %v..%v: %v", lo, hi, err)
			}
			return
		}
		want := FitsScalar(v, lo, hi)
		if got := req.FitsTriple(v); got != want {
			t.Fatalf("[%v, %v].FitsTriple(%v) = %v, want %v", lo, hi, v, got, want)
		}
	})
}

func TestFits_CoarsePureRejectsEveryVersion(t *testing.T) {
	gen := tripleGen(rapid.Uint16())
	kinds := []ClauseKind{
		ClauseGreaterMajor, ClauseGreaterMinor,
		ClauseGreaterOrEqualMajor, ClauseGreaterOrEqualMinor,
		ClauseLesserMajor, ClauseLesserMinor,
		ClauseLesserOrEqualMajor, ClauseLesserOrEqualMinor,
	}
	rapid.Check(t, func(t *rapid.T) {
		kind := rapid.SampledFrom(kinds).Draw(t, "kind")
		b := gen.Draw(t, "bound")
		c, err := NewClause(kind, b[0], b[1], b[2])
		if err != nil {
			t.Fatalf("NewClause(%s) error = %v", kind, err)
		}
		req, err := Build(Pure(c))
		if err != nil {
			return
		}
		v, err := version.FromTriple(gen.Draw(t, "version"))
		if err != nil {
			t.Skip("not a valid version")
		}
		if req.Fits(v) {
			t.Fatalf("Pure(%s) fits %s", c, v)
		}
	})
}
