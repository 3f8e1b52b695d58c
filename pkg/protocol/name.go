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
	"errors"
	"fmt"
	"strings"
)

// NameMinLength is the shortest accepted protocol name, len("basic").
const NameMinLength = len("basic")

const nameAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var (
	// ErrNameTooShort is returned for names shorter than NameMinLength.
	ErrNameTooShort = errors.New("protocol name too short")

	// ErrInvalidCharacter is returned for names containing anything but
	// ASCII letters and digits.
	ErrInvalidCharacter = errors.New("invalid character in protocol name")
)

// Name is a validated protocol name. Names are case-sensitive.
type Name struct {
	value string
}

// NewName validates s as a protocol name. The error lists every offending
// character.
func NewName(s string) (Name, error) {
	if len(s) < NameMinLength {
		return Name{}, fmt.Errorf("%w: %q has length %d, need %d", ErrNameTooShort, s, len(s), NameMinLength)
	}

	var invalid strings.Builder
	for _, r := range s {
		if !strings.ContainsRune(nameAlphabet, r) {
			invalid.WriteRune(r)
		}
	}
	if invalid.Len() > 0 {
		return Name{}, fmt.Errorf("%w: %q", ErrInvalidCharacter, invalid.String())
	}
	return Name{value: s}, nil
}

// MustName is like NewName but panics on error.
func MustName(s string) Name {
	n, err := NewName(s)
	if err != nil {
		panic(err)
	}
	return n
}

func (n Name) String() string { return n.value }

// IsZero reports whether n was never validated.
func (n Name) IsZero() bool { return n.value == "" }

// MarshalText implements encoding.TextMarshaler.
func (n Name) MarshalText() ([]byte, error) {
	return []byte(n.value), nil
}

// UnmarshalText validates text as a protocol name.
func (n *Name) UnmarshalText(text []byte) error {
	parsed, err := NewName(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
