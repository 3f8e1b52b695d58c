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

package check

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/NVIDIA/fast-version/pkg/defaults"
	fverrors "github.com/NVIDIA/fast-version/pkg/errors"
	"github.com/NVIDIA/fast-version/pkg/header"
	"github.com/NVIDIA/fast-version/pkg/protocol"
	"github.com/NVIDIA/fast-version/pkg/version"
)

// NegotiateRequest carries the protocols a remote node speaks.
type NegotiateRequest struct {
	header.Header `json:",inline" yaml:",inline"`

	Protocols []protocol.Document `json:"protocols" yaml:"protocols"`
}

// MatchResult is the negotiation outcome for one remote protocol.
// LocalVersion is empty when the name is unknown locally.
type MatchResult struct {
	Name          string           `json:"name" yaml:"name"`
	RemoteVersion version.Document `json:"remoteVersion" yaml:"remoteVersion"`
	LocalVersion  version.Document `json:"localVersion,omitzero" yaml:"localVersion,omitempty"`
	Outcome       protocol.Outcome `json:"outcome" yaml:"outcome"`
}

// NegotiateResult answers a NegotiateRequest, one match per remote
// protocol in request order.
type NegotiateResult struct {
	header.Header `json:",inline" yaml:",inline"`

	Matches    []MatchResult `json:"matches" yaml:"matches"`
	Compatible int           `json:"compatible" yaml:"compatible"`
}

// ProtocolInfo describes one local protocol.
type ProtocolInfo struct {
	Name        string           `json:"name" yaml:"name"`
	Version     version.Document `json:"version" yaml:"version"`
	Requirement string           `json:"requirement" yaml:"requirement"`
	Bounds      Bounds           `json:"bounds" yaml:"bounds"`
}

// ProtocolList lists the protocols of a table.
type ProtocolList struct {
	header.Header `json:",inline" yaml:",inline"`

	Protocols []ProtocolInfo `json:"protocols" yaml:"protocols"`
}

// ParseProtocols parses and builds every document. The first failure is
// returned as an INVALID_REQUEST error naming its index.
func ParseProtocols(docs []protocol.Document) ([]protocol.Identifier, error) {
	if len(docs) == 0 {
		return nil, fverrors.New(fverrors.ErrCodeInvalidRequest, "at least one protocol is required")
	}
	if len(docs) > defaults.RegistryMaxProtocols {
		return nil, fverrors.NewWithContext(fverrors.ErrCodeInvalidRequest,
			fmt.Sprintf("too many protocols: %d", len(docs)),
			map[string]any{"limit": defaults.RegistryMaxProtocols})
	}

	ids := make([]protocol.Identifier, 0, len(docs))
	for i, d := range docs {
		id, err := protocol.ParseDocument(d)
		if err != nil {
			return nil, fverrors.WrapWithContext(fverrors.ErrCodeInvalidRequest, "invalid protocol", err,
				map[string]any{"index": i, "name": d.Name})
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Negotiate checks each remote protocol of req against the local table.
func Negotiate(ctx context.Context, local *protocol.Table, req *NegotiateRequest) (*NegotiateResult, error) {
	if req == nil {
		return nil, fverrors.New(fverrors.ErrCodeInvalidRequest, "negotiate request is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, fverrors.WrapContext("negotiation", err)
	}
	if err := req.Expect(header.KindNegotiateRequest); err != nil {
		return nil, fverrors.Wrap(fverrors.ErrCodeInvalidRequest, "invalid negotiate request", err)
	}

	remote, err := ParseProtocols(req.Protocols)
	if err != nil {
		return nil, err
	}

	res := &NegotiateResult{Matches: make([]MatchResult, 0, len(remote))}
	for _, m := range local.Negotiate(remote) {
		mr := MatchResult{
			Name:          m.Remote.Name.String(),
			RemoteVersion: m.Remote.Version.Document(),
			Outcome:       m.Outcome,
		}
		if m.Outcome != protocol.OutcomeUnknown {
			mr.LocalVersion = m.Local.Version.Document()
		}
		if m.Outcome == protocol.OutcomeCompatible {
			res.Compatible++
		}
		negotiationsTotal.WithLabelValues(string(m.Outcome)).Inc()
		res.Matches = append(res.Matches, mr)
	}
	res.Init(header.KindNegotiateResult, "")

	slog.Debug("negotiated protocols", "remote", len(remote), "compatible", res.Compatible)
	return res, nil
}

// ListProtocols describes every protocol in t, sorted by name.
func ListProtocols(t *protocol.Table) *ProtocolList {
	list := &ProtocolList{Protocols: protocolInfos(t.List())}
	list.Init(header.KindProtocolList, "")
	return list
}

func protocolInfos(ids []protocol.Identifier) []ProtocolInfo {
	infos := make([]ProtocolInfo, 0, len(ids))
	for _, id := range ids {
		infos = append(infos, ProtocolInfo{
			Name:        id.Name.String(),
			Version:     id.Version.Document(),
			Requirement: id.Requirement.String(),
			Bounds:      boundsOf(id.Requirement),
		})
	}
	return infos
}
