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

package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/NVIDIA/fast-version/pkg/defaults"
	"github.com/NVIDIA/fast-version/pkg/protocol"
)

var (
	// ErrPeerNotFound is returned for an unknown or expired peer.
	ErrPeerNotFound = errors.New("peer not found")

	// ErrNoProtocols is returned when an announcement lists no protocols.
	ErrNoProtocols = errors.New("announcement lists no protocols")

	// ErrTooManyProtocols is returned when an announcement exceeds the
	// configured protocol limit.
	ErrTooManyProtocols = errors.New("announcement lists too many protocols")
)

// Peer is one announcement.
type Peer struct {
	ID          string
	Protocols   []protocol.Identifier
	AnnouncedAt time.Time
	ExpiresAt   time.Time
}

// Match lists the protocols of one peer that a local table accepts.
type Match struct {
	PeerID    string
	Protocols []protocol.Identifier
}

// Registry keeps peer announcements until their TTL lapses. It is safe for
// concurrent use.
type Registry struct {
	peers        *cache.Cache
	ttl          time.Duration
	maxProtocols int
	now          func() time.Time
}

// Option configures a Registry.
type Option func(*Registry)

// WithTTL sets how long an announcement stays valid.
func WithTTL(ttl time.Duration) Option {
	return func(r *Registry) {
		if ttl > 0 {
			r.ttl = ttl
		}
	}
}

// WithMaxProtocols caps the protocols one announcement may carry.
func WithMaxProtocols(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.maxProtocols = n
		}
	}
}

// New returns an empty registry. Expired peers are purged every
// cleanupInterval; a non-positive interval disables the purge loop, and
// expired peers are then only hidden.
func New(cleanupInterval time.Duration, opts ...Option) *Registry {
	r := &Registry{
		ttl:          defaults.RegistryPeerTTL,
		maxProtocols: defaults.RegistryMaxProtocols,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.peers = cache.New(r.ttl, cleanupInterval)
	r.peers.OnEvicted(func(id string, _ any) {
		slog.Debug("peer evicted", "peer", id)
	})
	return r
}

// TTL returns the announcement lifetime.
func (r *Registry) TTL() time.Duration { return r.ttl }

// Announce stores protocols for id, replacing any previous announcement and
// restarting its TTL. An empty id is replaced by a random UUID.
func (r *Registry) Announce(id string, protocols []protocol.Identifier) (Peer, error) {
	if len(protocols) == 0 {
		return Peer{}, ErrNoProtocols
	}
	if len(protocols) > r.maxProtocols {
		return Peer{}, fmt.Errorf("%w: %d > %d", ErrTooManyProtocols, len(protocols), r.maxProtocols)
	}

	id = strings.TrimSpace(id)
	if id == "" {
		id = uuid.New().String()
	}

	now := r.now()
	p := Peer{
		ID:          id,
		Protocols:   slices.Clone(protocols),
		AnnouncedAt: now,
		ExpiresAt:   now.Add(r.ttl),
	}
	r.peers.Set(id, p, cache.DefaultExpiration)

	slog.Debug("peer announced", "peer", id, "protocols", len(protocols))
	return p, nil
}

// Peer returns the live announcement for id.
func (r *Registry) Peer(id string) (Peer, error) {
	v, ok := r.peers.Get(id)
	if !ok {
		return Peer{}, fmt.Errorf("%w: %s", ErrPeerNotFound, id)
	}
	return v.(Peer), nil
}

// Remove forgets id. It reports whether id was live.
func (r *Registry) Remove(id string) bool {
	_, ok := r.peers.Get(id)
	r.peers.Delete(id)
	return ok
}

// Peers returns every live announcement sorted by ID.
func (r *Registry) Peers() []Peer {
	items := r.peers.Items()
	peers := make([]Peer, 0, len(items))
	for _, item := range items {
		peers = append(peers, item.Object.(Peer))
	}
	slices.SortFunc(peers, func(a, b Peer) int {
		return strings.Compare(a.ID, b.ID)
	})
	return peers
}

// Len returns the number of stored announcements, which may include
// expired ones not yet purged.
func (r *Registry) Len() int {
	return r.peers.ItemCount()
}

// Compatible returns, for each live peer with at least one protocol local
// accepts, the accepted protocols. Peers are sorted by ID.
func (r *Registry) Compatible(local *protocol.Table) []Match {
	var matches []Match
	for _, p := range r.Peers() {
		if ok := local.Compatible(p.Protocols); len(ok) > 0 {
			matches = append(matches, Match{PeerID: p.ID, Protocols: ok})
		}
	}
	return matches
}
