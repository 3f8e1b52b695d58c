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
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Scalar is one version field in decimal text, as found in documents.
// Keeping it textual lets a single document shape carry any domain, from
// negative i8 values up to the full u64 range.
type Scalar string

// FormatScalar renders x in decimal.
func FormatScalar[N Number](x N) Scalar {
	if Signed[N]() {
		return Scalar(strconv.FormatInt(int64(x), 10))
	}
	return Scalar(strconv.FormatUint(uint64(x), 10))
}

// ParseScalar converts s into N. Out of range text fails with
// ErrValueTooLarge or ErrValueTooSmall; anything that is not a base-10
// integer fails with ErrInvalidScalar.
func ParseScalar[N Number](s Scalar) (N, error) {
	text := strings.TrimSpace(string(s))
	if text == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidScalar)
	}

	bits := int(Bits[N]())
	if Signed[N]() {
		x, err := strconv.ParseInt(text, 10, bits)
		if err != nil {
			return 0, scalarError[N](text, err)
		}
		return N(x), nil
	}

	x, err := strconv.ParseUint(text, 10, bits)
	if err != nil {
		return 0, scalarError[N](text, err)
	}
	return N(x), nil
}

func scalarError[N Number](text string, err error) error {
	negative := strings.HasPrefix(text, "-")
	switch {
	case errors.Is(err, strconv.ErrRange) && negative:
		return fmt.Errorf("%w: %s is below the %s minimum", ErrValueTooSmall, text, DomainOf[N]())
	case errors.Is(err, strconv.ErrRange):
		return fmt.Errorf("%w: %s exceeds the %s maximum", ErrValueTooLarge, text, DomainOf[N]())
	case negative && !Signed[N]() && isDigits(text[1:]):
		return fmt.Errorf("%w: %s is below the %s minimum", ErrValueTooSmall, text, DomainOf[N]())
	default:
		return fmt.Errorf("%w: %q", ErrInvalidScalar, text)
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// MarshalJSON writes s as a JSON number.
func (s Scalar) MarshalJSON() ([]byte, error) {
	text := strings.TrimSpace(string(s))
	if text == "" {
		return []byte("null"), nil
	}
	if _, err := strconv.ParseFloat(text, 64); err != nil {
		return json.Marshal(text)
	}
	return []byte(text), nil
}

// UnmarshalJSON accepts a JSON number or a string holding one.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = ""
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidScalar, data)
	}
	*s = Scalar(n.String())
	return nil
}

// MarshalYAML writes s as a YAML integer.
func (s Scalar) MarshalYAML() (any, error) {
	text := strings.TrimSpace(string(s))
	if !isDigits(strings.TrimPrefix(text, "-")) {
		return text, nil
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: text}, nil
}

// UnmarshalYAML accepts any YAML scalar.
func (s *Scalar) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: expected a scalar", ErrInvalidScalar, node.Line)
	}
	*s = Scalar(strings.TrimSpace(node.Value))
	return nil
}

// Document is the textual form of a triple used in YAML and JSON
// documents.
type Document struct {
	Major Scalar `json:"major" yaml:"major"`
	Minor Scalar `json:"minor" yaml:"minor"`
	Patch Scalar `json:"patch" yaml:"patch"`
}

// String returns the document as "major.minor.patch".
func (d Document) String() string {
	return fmt.Sprintf("%s.%s.%s", d.Major, d.Minor, d.Patch)
}

// ParseText splits "major.minor.patch" into a Document. The fields are
// checked later, by ParseTriple or ParseDocument.
func ParseText(s string) (Document, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 3 {
		return Document{}, fmt.Errorf("%w: %q is not major.minor.patch", ErrInvalidScalar, s)
	}
	return Document{
		Major: Scalar(parts[0]),
		Minor: Scalar(parts[1]),
		Patch: Scalar(parts[2]),
	}, nil
}

// TripleDocument renders a raw triple, sentinels included.
func TripleDocument[N Number](t [3]N) Document {
	return Document{
		Major: FormatScalar(t[0]),
		Minor: FormatScalar(t[1]),
		Patch: FormatScalar(t[2]),
	}
}

// Document returns the textual form of v.
func (v Version[N]) Document() Document {
	return TripleDocument(v.Triple())
}

// ParseTriple converts every field of d into N without sentinel checks.
func ParseTriple[N Number](d Document) ([3]N, error) {
	var t [3]N
	for i, f := range []struct {
		name  string
		value Scalar
	}{
		{"major", d.Major},
		{"minor", d.Minor},
		{"patch", d.Patch},
	} {
		x, err := ParseScalar[N](f.value)
		if err != nil {
			return [3]N{}, fmt.Errorf("%s: %w", f.name, err)
		}
		t[i] = x
	}
	return t, nil
}

// ParseDocument converts d into a Version, failing like New when a field
// is a sentinel.
func ParseDocument[N Number](d Document) (Version[N], error) {
	t, err := ParseTriple[N](d)
	if err != nil {
		return Version[N]{}, err
	}
	return FromTriple(t)
}
