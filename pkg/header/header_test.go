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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	h := New(WithKind(KindCheckResult), WithMetadata("domain", "u16"))
	assert.Equal(t, KindCheckResult, h.Kind)
	assert.Equal(t, APIVersion, h.APIVersion)
	assert.Equal(t, "u16", h.Metadata["domain"])

	h = New(WithAPIVersion("v0"), WithMetadata("a", "b"))
	assert.Equal(t, "v0", h.APIVersion)
}

func TestInit(t *testing.T) {
	var h Header
	h.Init(KindSelfCheckReport, "v1.2.3")

	assert.Equal(t, KindSelfCheckReport, h.Kind)
	assert.Equal(t, "v1.2.3", h.Metadata["version"])
	_, err := time.Parse(time.RFC3339, h.Metadata["timestamp"])
	require.NoError(t, err)

	h.Init(KindDomainList, "")
	_, ok := h.Metadata["version"]
	assert.False(t, ok)
}

func TestKind_IsValid(t *testing.T) {
	for _, k := range []Kind{
		KindCheckRequest, KindCheckResult, KindNegotiateRequest, KindNegotiateResult,
		KindProtocolList, KindSelfCheckReport, KindDomainList, KindPeerAnnouncement, KindPeerList,
	} {
		assert.True(t, k.IsValid(), k.String())
	}
	assert.False(t, Kind("Recipe").IsValid())
	assert.False(t, Kind("").IsValid())
}

func TestExpect(t *testing.T) {
	tests := []struct {
		name    string
		h       Header
		wantErr bool
	}{
		{"empty", Header{}, false},
		{"matching", Header{Kind: KindCheckRequest, APIVersion: APIVersion}, false},
		{"wrong kind", Header{Kind: KindCheckResult}, true},
		{"wrong version", Header{Kind: KindCheckRequest, APIVersion: "v2"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.h.Expect(KindCheckRequest)
			assert.Equal(t, tt.wantErr, err != nil, "Expect() error = %v", err)
		})
	}
}
