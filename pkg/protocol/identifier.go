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
	"fmt"

	"github.com/NVIDIA/fast-version/pkg/requirement"
	"github.com/NVIDIA/fast-version/pkg/version"
)

// Number is the version domain every protocol identifier uses.
type Number = uint64

// Identifier names a protocol, the version a node speaks and the range of
// peer versions it accepts.
type Identifier struct {
	Name        Name
	Version     version.Version[Number]
	Requirement requirement.Requirement[Number]
}

// NewIdentifier builds an identifier from an already validated name,
// version and requirement.
func NewIdentifier(name Name, v version.Version[Number], req requirement.Requirement[Number]) Identifier {
	return Identifier{Name: name, Version: v, Requirement: req}
}

// Accepts reports whether a peer speaking v satisfies id's requirement.
func (id Identifier) Accepts(v version.Version[Number]) bool {
	return id.Requirement.Fits(v)
}

// Compatible reports whether id and peer name the same protocol and each
// accepts the other's version.
func (id Identifier) Compatible(peer Identifier) bool {
	return id.Check(peer) == OutcomeCompatible
}

// Check classifies id against peer. Names are compared first, then id's
// requirement, then the peer's.
func (id Identifier) Check(peer Identifier) Outcome {
	switch {
	case id.Name != peer.Name:
		return OutcomeNameMismatch
	case !id.Accepts(peer.Version):
		return OutcomeLocalRejects
	case !peer.Accepts(id.Version):
		return OutcomeRemoteRejects
	default:
		return OutcomeCompatible
	}
}

// Key identifies the (name, version) pair, e.g. "PingPong/1.1.1".
func (id Identifier) Key() string {
	return fmt.Sprintf("%s/%s", id.Name, id.Version)
}

func (id Identifier) String() string {
	return fmt.Sprintf("%s %s", id.Key(), id.Requirement)
}

// Outcome is the result of checking two identifiers against each other.
type Outcome string

const (
	OutcomeCompatible    Outcome = "compatible"
	OutcomeNameMismatch  Outcome = "name-mismatch"
	OutcomeLocalRejects  Outcome = "local-rejects"
	OutcomeRemoteRejects Outcome = "remote-rejects"
	OutcomeUnknown       Outcome = "unknown-protocol"
)
