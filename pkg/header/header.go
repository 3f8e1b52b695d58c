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

package header

import (
	"fmt"
	"time"
)

// APIVersion is the schema version stamped on every document.
const APIVersion = "fastversion.nvidia.com/v1"

// Kind represents the type of a fast-version document.
type Kind string

const (
	KindCheckRequest     Kind = "CheckRequest"
	KindCheckResult      Kind = "CheckResult"
	KindNegotiateResult  Kind = "NegotiateResult"
	KindProtocolList     Kind = "ProtocolList"
	KindSelfCheckReport  Kind = "SelfCheckReport"
	KindDomainList       Kind = "DomainList"
	KindNegotiateRequest Kind = "NegotiateRequest"
	KindPeerAnnouncement Kind = "PeerAnnouncement"
	KindPeerList         Kind = "PeerList"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is one of the recognized kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindCheckRequest, KindCheckResult, KindNegotiateRequest, KindNegotiateResult,
		KindProtocolList, KindSelfCheckReport, KindDomainList,
		KindPeerAnnouncement, KindPeerList:
		return true
	default:
		return false
	}
}

// Option is a functional option for configuring Header instances.
type Option func(*Header)

// WithMetadata returns an Option that adds a metadata key-value pair.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// WithKind returns an Option that sets the Kind field of the Header.
func WithKind(kind Kind) Option {
	return func(h *Header) {
		h.Kind = kind
	}
}

// WithAPIVersion returns an Option that sets the APIVersion field.
func WithAPIVersion(version string) Option {
	return func(h *Header) {
		h.APIVersion = version
	}
}

// New creates a Header stamped with APIVersion and the given options.
func New(opts ...Option) *Header {
	h := &Header{
		APIVersion: APIVersion,
		Metadata:   make(map[string]string),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Header carries the kind, schema version and free-form metadata of a
// request or result document. Documents embed it inline.
type Header struct {
	// Kind is the document type.
	Kind Kind `json:"kind,omitempty" yaml:"kind,omitempty"`

	// APIVersion is the document schema version.
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`

	// Metadata holds key-value pairs such as timestamp and tool version.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Init stamps h with kind, APIVersion, the current UTC timestamp and, when
// set, the producing tool's version.
func (h *Header) Init(kind Kind, version string) {
	h.Kind = kind
	h.APIVersion = APIVersion
	h.Metadata = map[string]string{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if version != "" {
		h.Metadata["version"] = version
	}
}

// Expect checks that an incoming document declares kind. An empty kind or
// API version is accepted so hand-written requests can omit them.
func (h *Header) Expect(kind Kind) error {
	if h.Kind != "" && h.Kind != kind {
		return fmt.Errorf("unexpected kind %q, want %q", h.Kind, kind)
	}
	if h.APIVersion != "" && h.APIVersion != APIVersion {
		return fmt.Errorf("unsupported apiVersion %q, want %q", h.APIVersion, APIVersion)
	}
	return nil
}
