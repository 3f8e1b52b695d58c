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
	"slices"
	"strings"
	"sync"
)

var (
	// ErrDuplicate is returned when a name is registered twice.
	ErrDuplicate = errors.New("protocol already registered")

	// ErrUnknownProtocol is returned when a name has no registration.
	ErrUnknownProtocol = errors.New("unknown protocol")
)

// Table holds the protocols a node speaks, keyed by name. It is safe for
// concurrent use.
type Table struct {
	mu        sync.RWMutex
	protocols map[Name]Identifier
}

// NewTable returns a table holding ids. It fails on a duplicate name.
func NewTable(ids ...Identifier) (*Table, error) {
	t := &Table{protocols: make(map[Name]Identifier, len(ids))}
	for _, id := range ids {
		if err := t.Register(id); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Register adds id. A name can be registered once.
func (t *Table) Register(id Identifier) error {
	if id.Name.IsZero() {
		return fmt.Errorf("%w: empty name", ErrNameTooShort)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if existing, ok := t.protocols[id.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, existing.Key())
	}
	t.protocols[id.Name] = id
	return nil
}

// Lookup returns the identifier registered under name.
func (t *Table) Lookup(name string) (Identifier, error) {
	n, err := NewName(name)
	if err != nil {
		return Identifier{}, err
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	id, ok := t.protocols[n]
	if !ok {
		return Identifier{}, fmt.Errorf("%w: %s", ErrUnknownProtocol, name)
	}
	return id, nil
}

// List returns every registered identifier sorted by name.
func (t *Table) List() []Identifier {
	t.mu.RLock()
	ids := make([]Identifier, 0, len(t.protocols))
	for _, id := range t.protocols {
		ids = append(ids, id)
	}
	t.mu.RUnlock()

	slices.SortFunc(ids, func(a, b Identifier) int {
		return strings.Compare(a.Name.String(), b.Name.String())
	})
	return ids
}

// Len returns the number of registered protocols.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.protocols)
}

// Match is the negotiation result for one remote protocol.
type Match struct {
	Remote  Identifier
	Local   Identifier
	Outcome Outcome
}

// Negotiate checks every remote identifier against the local protocol of
// the same name. The result has one entry per remote, in order.
func (t *Table) Negotiate(remote []Identifier) []Match {
	t.mu.RLock()
	defer t.mu.RUnlock()

	matches := make([]Match, 0, len(remote))
	for _, r := range remote {
		local, ok := t.protocols[r.Name]
		if !ok {
			matches = append(matches, Match{Remote: r, Outcome: OutcomeUnknown})
			continue
		}
		matches = append(matches, Match{Remote: r, Local: local, Outcome: local.Check(r)})
	}
	return matches
}

// Compatible returns the remote identifiers every local protocol of the same
// name accepts and is accepted by.
func (t *Table) Compatible(remote []Identifier) []Identifier {
	var out []Identifier
	for _, m := range t.Negotiate(remote) {
		if m.Outcome == OutcomeCompatible {
			out = append(out, m.Remote)
		}
	}
	return out
}
