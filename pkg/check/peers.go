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
	"errors"
	"log/slog"
	"time"

	fverrors "github.com/NVIDIA/fast-version/pkg/errors"
	"github.com/NVIDIA/fast-version/pkg/header"
	"github.com/NVIDIA/fast-version/pkg/protocol"
	"github.com/NVIDIA/fast-version/pkg/registry"
)

// AnnounceRequest registers the protocols a peer speaks. An empty ID asks
// the registry to assign one.
type AnnounceRequest struct {
	header.Header `json:",inline" yaml:",inline"`

	ID        string              `json:"id,omitempty" yaml:"id,omitempty"`
	Protocols []protocol.Document `json:"protocols" yaml:"protocols"`
}

// PeerInfo describes one live announcement.
type PeerInfo struct {
	ID          string         `json:"id" yaml:"id"`
	Protocols   []ProtocolInfo `json:"protocols" yaml:"protocols"`
	AnnouncedAt time.Time      `json:"announcedAt" yaml:"announcedAt"`
	ExpiresAt   time.Time      `json:"expiresAt" yaml:"expiresAt"`
}

// PeerList is returned by announcements, lookups and compatibility
// queries.
type PeerList struct {
	header.Header `json:",inline" yaml:",inline"`

	Peers []PeerInfo `json:"peers" yaml:"peers"`
}

// Announce validates req and stores it in reg.
func Announce(reg *registry.Registry, req *AnnounceRequest) (*PeerList, error) {
	if req == nil {
		return nil, fverrors.New(fverrors.ErrCodeInvalidRequest, "announce request is required")
	}
	if err := req.Expect(header.KindPeerAnnouncement); err != nil {
		return nil, fverrors.Wrap(fverrors.ErrCodeInvalidRequest, "invalid announce request", err)
	}

	ids, err := ParseProtocols(req.Protocols)
	if err != nil {
		return nil, err
	}

	p, err := reg.Announce(req.ID, ids)
	if err != nil {
		return nil, fverrors.Wrap(fverrors.ErrCodeInvalidRequest, "announcement rejected", err)
	}

	slog.Info("peer announced", "peer", p.ID, "protocols", len(p.Protocols), "expires", p.ExpiresAt)
	return peerList(peerInfo(p)), nil
}

// LookupPeer returns the live announcement for id.
func LookupPeer(reg *registry.Registry, id string) (*PeerList, error) {
	p, err := reg.Peer(id)
	if err != nil {
		if errors.Is(err, registry.ErrPeerNotFound) {
			return nil, fverrors.WrapWithContext(fverrors.ErrCodeNotFound, "peer not found", err,
				map[string]any{"id": id})
		}
		return nil, fverrors.Wrap(fverrors.ErrCodeInternal, "peer lookup failed", err)
	}
	return peerList(peerInfo(p)), nil
}

// ListPeers returns every live announcement sorted by ID.
func ListPeers(reg *registry.Registry) *PeerList {
	peers := reg.Peers()
	infos := make([]PeerInfo, 0, len(peers))
	for _, p := range peers {
		infos = append(infos, peerInfo(p))
	}
	return peerList(infos...)
}

// CompatiblePeers returns the live peers with at least one protocol local
// accepts. Each peer lists only its accepted protocols.
func CompatiblePeers(reg *registry.Registry, local *protocol.Table) *PeerList {
	matches := reg.Compatible(local)
	infos := make([]PeerInfo, 0, len(matches))
	for _, m := range matches {
		info := PeerInfo{ID: m.PeerID, Protocols: protocolInfos(m.Protocols)}
		if p, err := reg.Peer(m.PeerID); err == nil {
			info.AnnouncedAt = p.AnnouncedAt
			info.ExpiresAt = p.ExpiresAt
		}
		infos = append(infos, info)
	}
	return peerList(infos...)
}

func peerInfo(p registry.Peer) PeerInfo {
	return PeerInfo{
		ID:          p.ID,
		Protocols:   protocolInfos(p.Protocols),
		AnnouncedAt: p.AnnouncedAt.UTC(),
		ExpiresAt:   p.ExpiresAt.UTC(),
	}
}

func peerList(peers ...PeerInfo) *PeerList {
	if peers == nil {
		peers = []PeerInfo{}
	}
	list := &PeerList{Peers: peers}
	list.Init(header.KindPeerList, "")
	return list
}
