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

package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/NVIDIA/fast-version/pkg/check"
	"github.com/NVIDIA/fast-version/pkg/defaults"
	fverrors "github.com/NVIDIA/fast-version/pkg/errors"
	"github.com/NVIDIA/fast-version/pkg/protocol"
	"github.com/NVIDIA/fast-version/pkg/registry"
	"github.com/NVIDIA/fast-version/pkg/serializer"
	"github.com/NVIDIA/fast-version/pkg/server"
)

// service holds the state behind the fvd routes: the node's own protocols
// and the peers that announced theirs.
type service struct {
	table    *protocol.Table
	registry *registry.Registry
}

func newService(peerTTL time.Duration, local ...protocol.Identifier) (*service, error) {
	if len(local) == 0 {
		local = []protocol.Identifier{protocol.PingPong()}
	}
	table, err := protocol.NewTable(local...)
	if err != nil {
		return nil, err
	}
	return &service{
		table:    table,
		registry: registry.New(defaults.RegistryCleanupInterval, registry.WithTTL(peerTTL)),
	}, nil
}

func (s *service) routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/check":            s.handleCheck,
		"/v1/negotiate":        s.handleNegotiate,
		"/v1/protocols":        s.handleProtocols,
		"/v1/domains":          s.handleDomains,
		"/v1/peers":            s.handlePeers,
		"/v1/peers/compatible": s.handleCompatiblePeers,
	}
}

// handleCheck handles POST /v1/check.
func (s *service) handleCheck(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodPost) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.CheckHandlerTimeout)
	defer cancel()

	var req check.Request
	if !decodeBody(w, r, &req) {
		return
	}

	evalCtx, evalCancel := context.WithTimeout(ctx, defaults.CheckEvaluateTimeout)
	defer evalCancel()

	res, err := check.Evaluate(evalCtx, &req)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to evaluate versions", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, res)
}

// handleNegotiate handles POST /v1/negotiate. A request with no compatible
// protocol is answered with 409 and the per-protocol outcomes.
func (s *service) handleNegotiate(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodPost) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.NegotiateHandlerTimeout)
	defer cancel()

	var req check.NegotiateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	res, err := check.Negotiate(ctx, s.table, &req)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to negotiate protocols", nil)
		return
	}

	if res.Compatible == 0 {
		server.WriteErrorFromErr(w, r,
			fverrors.New(fverrors.ErrCodeIncompatible, "no compatible protocol"),
			"", map[string]any{"matches": res.Matches})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, res)
}

// handleProtocols handles GET /v1/protocols.
func (s *service) handleProtocols(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet) {
		return
	}
	serializer.RespondJSON(w, http.StatusOK, check.ListProtocols(s.table))
}

// handleDomains handles GET /v1/domains.
func (s *service) handleDomains(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet) {
		return
	}
	serializer.RespondJSON(w, http.StatusOK, check.ListDomains())
}

// handlePeers handles POST /v1/peers (announce) and GET /v1/peers with an
// optional ?id= lookup.
func (s *service) handlePeers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var req check.AnnounceRequest
		if !decodeBody(w, r, &req) {
			return
		}
		list, err := check.Announce(s.registry, &req)
		if err != nil {
			server.WriteErrorFromErr(w, r, err, "Failed to announce peer", nil)
			return
		}
		serializer.RespondJSON(w, http.StatusCreated, list)

	case http.MethodGet:
		id := strings.TrimSpace(r.URL.Query().Get("id"))
		if id == "" {
			serializer.RespondJSON(w, http.StatusOK, check.ListPeers(s.registry))
			return
		}
		list, err := check.LookupPeer(s.registry, id)
		if err != nil {
			server.WriteErrorFromErr(w, r, err, "Failed to look up peer", nil)
			return
		}
		serializer.RespondJSON(w, http.StatusOK, list)

	default:
		allowMethods(w, r, http.MethodGet, http.MethodPost)
	}
}

// handleCompatiblePeers handles GET /v1/peers/compatible.
func (s *service) handleCompatiblePeers(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet) {
		return
	}
	serializer.RespondJSON(w, http.StatusOK, check.CompatiblePeers(s.registry, s.table))
}

// allowMethods writes 405 with an Allow header unless r uses one of
// methods.
func allowMethods(w http.ResponseWriter, r *http.Request, methods ...string) bool {
	for _, m := range methods {
		if r.Method == m {
			return true
		}
	}
	w.Header().Set("Allow", strings.Join(methods, ", "))
	server.WriteError(w, r, http.StatusMethodNotAllowed, fverrors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{"method": r.Method})
	return false
}

// decodeBody reads a JSON or YAML document, chosen by Content-Type, into v.
// It writes the error response and returns false on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Body == nil || r.ContentLength == 0 {
		server.WriteError(w, r, http.StatusBadRequest, fverrors.ErrCodeInvalidRequest,
			"Request body is required", false, nil)
		return false
	}

	format := serializer.FormatJSON
	if strings.Contains(r.Header.Get("Content-Type"), "yaml") {
		format = serializer.FormatYAML
	}

	reader, err := serializer.NewReader(format, r.Body)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to read request body", nil)
		return false
	}
	defer reader.Close()

	if err := reader.Deserialize(v); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			server.WriteError(w, r, http.StatusRequestEntityTooLarge, fverrors.ErrCodeInvalidRequest,
				"Request body too large", false, map[string]any{"limit": maxErr.Limit})
		case errors.Is(err, io.EOF):
			server.WriteError(w, r, http.StatusBadRequest, fverrors.ErrCodeInvalidRequest,
				"Request body is required", false, nil)
		default:
			server.WriteError(w, r, http.StatusBadRequest, fverrors.ErrCodeInvalidRequest,
				"Invalid request body", false, map[string]any{"error": err.Error(), "format": string(format)})
		}
		return false
	}
	return true
}
