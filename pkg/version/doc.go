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

// Package version provides a generic (major, minor, patch) version triple
// over ten fixed-width integer domains.
//
// # Overview
//
// Each field is an integer of one domain: int8, int16, int32, int64, int,
// uint8, uint16, uint32, uint64 or uint. The minimum and maximum of the
// domain are reserved sentinels meaning "invalid", so a constructed Version
// never contains either:
//
//   - uint8 versions use 1..254 per field
//   - int16 versions use -32767..32766 per field
//
// Versions are ordered lexicographically and compared field-wise for
// equality.
//
// # Usage
//
// Construct with full diagnostics:
//
//	v, err := version.New[uint16](1, 2, 3)
//	if errors.Is(err, version.ErrMinorIsMin) {
//	    // minor was 0
//	}
//
// Construct on a hot path, without diagnostics:
//
//	v, ok := version.TryNew[uint64](major, minor, patch)
//
// Compare:
//
//	if current.EqualsOrNewer(required) {
//	    fmt.Println("version requirement met")
//	}
//
// # Backends
//
// Validity is answered by two interchangeable functions, ValidScalar and
// ValidLanes. They must agree for every input in every domain. Valid and
// TryNew use the lanes backend by default; building with -tags purego
// selects the scalar backend. Backend reports which one is compiled in.
//
// # Encoding
//
// Wire widens every field to uint64 (zig-zag for signed domains) so one
// encoding serves all domains. Narrow and Decode reverse it, failing with
// ErrValueTooLarge when a stored value does not fit the target domain.
// Document and Scalar carry the same triple as decimal text for YAML and
// JSON files.
//
// # Error Handling
//
// New returns exactly one of:
//
//   - ErrMajorIsMax, ErrMajorIsMin
//   - ErrMinorIsMax, ErrMinorIsMin
//   - ErrPatchIsMax, ErrPatchIsMin
//
// For constant initialization, use MustNew which panics on error:
//
//	var Baseline = version.MustNew[uint64](1, 1, 1)
package version
