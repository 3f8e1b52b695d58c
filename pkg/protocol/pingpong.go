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

package protocol

import (
	"github.com/NVIDIA/fast-version/pkg/requirement"
	"github.com/NVIDIA/fast-version/pkg/version"
)

// PingPongName is the name of the built-in round-trip protocol.
const PingPongName = "PingPong"

var pingPong = NewIdentifier(
	MustName(PingPongName),
	version.MustNew[Number](1, 1, 1),
	requirement.MustBuild(requirement.Pure(requirement.Strict(version.MustNew[Number](1, 1, 1)))),
)

// PingPong returns the built-in identifier: version 1.1.1, accepting
// exactly 1.1.1.
func PingPong() Identifier {
	return pingPong
}
