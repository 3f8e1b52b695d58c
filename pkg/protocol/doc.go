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

// Package protocol identifies versioned protocols and negotiates them
// between nodes.
//
// An Identifier couples a validated Name with the version a node speaks
// and the requirement it places on peers. Two identifiers are compatible
// when their names match and each one's requirement fits the other's
// version. All identifiers use the uint64 domain.
//
// A Table holds the protocols of one node and negotiates a peer's list
// against them. PingPong is the built-in round-trip protocol.
package protocol
