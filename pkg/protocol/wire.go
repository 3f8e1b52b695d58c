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

// Wire is the exchanged form of an Identifier.
type Wire struct {
	Name        string           `json:"name" yaml:"name"`
	Version     version.Wire     `json:"version" yaml:"version"`
	Requirement requirement.Wire `json:"requirement" yaml:"requirement"`
}

// Wire returns the exchanged form of id.
func (id Identifier) Wire() Wire {
	return Wire{
		Name:        id.Name.String(),
		Version:     id.Version.Wire(),
		Requirement: id.Requirement.Wire(),
	}
}

// Decode validates every part of w.
func Decode(w Wire) (Identifier, error) {
	name, err := NewName(w.Name)
	if err != nil {
		return Identifier{}, err
	}
	v, err := version.Decode[Number](w.Version)
	if err != nil {
		return Identifier{}, fmt.Errorf("%s version: %w", name, err)
	}
	req, err := requirement.Decode[Number](w.Requirement)
	if err != nil {
		return Identifier{}, fmt.Errorf("%s requirement: %w", name, err)
	}
	return NewIdentifier(name, v, req), nil
}

// Document is the authored form of an Identifier:
//
//	name: PingPong
//	version: {major: 1, minor: 1, patch: 1}
//	requirement:
//	  pure: {kind: strict, major: 1, minor: 1, patch: 1}
type Document struct {
	Name        string                   `json:"name" yaml:"name"`
	Version     version.Document         `json:"version" yaml:"version"`
	Requirement requirement.SpecDocument `json:"requirement" yaml:"requirement"`
}

// ParseDocument validates d and builds its requirement.
func ParseDocument(d Document) (Identifier, error) {
	name, err := NewName(d.Name)
	if err != nil {
		return Identifier{}, err
	}
	v, err := version.ParseDocument[Number](d.Version)
	if err != nil {
		return Identifier{}, fmt.Errorf("%s version: %w", name, err)
	}
	spec, err := requirement.ParseSpec[Number](d.Requirement)
	if err != nil {
		return Identifier{}, fmt.Errorf("%s requirement: %w", name, err)
	}
	req, err := requirement.Build(spec)
	if err != nil {
		return Identifier{}, fmt.Errorf("%s requirement: %w", name, err)
	}
	return NewIdentifier(name, v, req), nil
}
