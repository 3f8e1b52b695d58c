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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/NVIDIA/fast-version/pkg/check"
	fverrors "github.com/NVIDIA/fast-version/pkg/errors"
	"github.com/NVIDIA/fast-version/pkg/header"
	"github.com/NVIDIA/fast-version/pkg/protocol"
	"github.com/NVIDIA/fast-version/pkg/server"
)

const pingPong111 = `{"name":"PingPong","version":{"major":1,"minor":1,"patch":1},` +
	`"requirement":{"pure":{"kind":"strict","major":1,"minor":1,"patch":1}}}`

const pingPong112 = `{"name":"PingPong","version":{"major":1,"minor":1,"patch":2},` +
	`"requirement":{"pure":{"kind":"strict","major":1,"minor":1,"patch":2}}}`

func newTestService(t *testing.T) *service {
	t.Helper()
	svc, err := newService(time.Minute)
	if err != nil {
		t.Fatalf("newService() error = %v", err)
	}
	return svc
}

func do(h http.HandlerFunc, method, path, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) server.ErrorResponse {
	t.Helper()
	var resp server.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error body %q: %v", w.Body.String(), err)
	}
	return resp
}

// TestConstants verifies package constants are properly defined
func TestConstants(t *testing.T) {
	if name != "fvd" {
		t.Errorf("name = %q, want %q", name, "fvd")
	}

	if versionDefault != "dev" {
		t.Errorf("versionDefault = %q, want %q", versionDefault, "dev")
	}

	if version == "" || commit == "" || date == "" {
		t.Error("build variables should not be empty")
	}
}

func TestRoutes(t *testing.T) {
	routes := newTestService(t).routes()

	for _, path := range []string{
		"/v1/check", "/v1/negotiate", "/v1/protocols",
		"/v1/domains", "/v1/peers", "/v1/peers/compatible",
	} {
		if h, ok := routes[path]; !ok || h == nil {
			t.Errorf("expected %s route to exist", path)
		}
	}
	if len(routes) != 6 {
		t.Errorf("expected exactly 6 routes, got %d", len(routes))
	}
}

func TestCheckEndpoint(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name        string
		body        string
		contentType string
		wantStatus  int
		wantCode    fverrors.ErrorCode
	}{
		{
			name:        "json composite range",
			body:        `{"domain":"i32","requirement":{"lower":{"kind":"greater-or-equal-major","major":5},"upper":{"kind":"lesser-major","major":10}},"versions":[{"major":7,"minor":0,"patch":0}]}`,
			contentType: "application/json",
			wantStatus:  http.StatusOK,
		},
		{
			name:        "yaml strict",
			body:        "kind: CheckRequest\ndomain: u8\nrequirement:\n  pure: {kind: strict, major: 1, minor: 1, patch: 1}\nversions:\n  - {major: 1, minor: 1, patch: 1}\n",
			contentType: "application/yaml",
			wantStatus:  http.StatusOK,
		},
		{
			name:        "empty body",
			body:        "",
			contentType: "application/json",
			wantStatus:  http.StatusBadRequest,
			wantCode:    fverrors.ErrCodeInvalidRequest,
		},
		{
			name:        "invalid json",
			body:        `{invalid}`,
			contentType: "application/json",
			wantStatus:  http.StatusBadRequest,
			wantCode:    fverrors.ErrCodeInvalidRequest,
		},
		{
			name:        "unknown domain",
			body:        `{"domain":"u128","requirement":{"pure":{"kind":"strict","major":1,"minor":1,"patch":1}},"versions":[{"major":1,"minor":1,"patch":1}]}`,
			contentType: "application/json",
			wantStatus:  http.StatusBadRequest,
			wantCode:    fverrors.ErrCodeInvalidRequest,
		},
		{
			name:        "strict in composite",
			body:        `{"domain":"u16","requirement":{"lower":{"kind":"strict","major":1,"minor":1,"patch":1}},"versions":[{"major":1,"minor":1,"patch":1}]}`,
			contentType: "application/json",
			wantStatus:  http.StatusBadRequest,
			wantCode:    fverrors.ErrCodeInvalidRequirement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(svc.handleCheck, http.MethodPost, "/v1/check", tt.contentType, tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d; body: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.wantCode != "" {
				if got := decodeError(t, w).Code; got != string(tt.wantCode) {
					t.Errorf("expected code %s, got %s", tt.wantCode, got)
				}
				return
			}

			var res check.Result
			if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
				t.Fatalf("failed to decode result: %v", err)
			}
			if res.Kind != header.KindCheckResult {
				t.Errorf("expected kind %s, got %s", header.KindCheckResult, res.Kind)
			}
			if len(res.Results) != 1 || !res.Results[0].Fits {
				t.Errorf("expected one fitting version, got %+v", res.Results)
			}
		})
	}
}

func TestCheckEndpoint_ClientGone(t *testing.T) {
	svc := newTestService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	body := `{"domain":"i32","requirement":{"lower":{"kind":"greater-or-equal-major","major":5},"upper":{"kind":"lesser-major","major":10}},"versions":[{"major":7,"minor":0,"patch":0}]}`
	req := httptest.NewRequestWithContext(ctx, http.MethodPost, "/v1/check", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	svc.handleCheck(w, req)

	if w.Code != server.StatusClientClosedRequest {
		t.Fatalf("status = %d, want %d; body %s", w.Code, server.StatusClientClosedRequest, w.Body.String())
	}
	resp := decodeError(t, w)
	if resp.Code != string(fverrors.ErrCodeCanceled) || resp.Retryable {
		t.Errorf("error = %+v, want non-retryable %s", resp, fverrors.ErrCodeCanceled)
	}
}

func TestEndpointMethods(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		path    string
		handler http.HandlerFunc
		method  string
		allow   string
	}{
		{"/v1/check", svc.handleCheck, http.MethodGet, "POST"},
		{"/v1/negotiate", svc.handleNegotiate, http.MethodPut, "POST"},
		{"/v1/protocols", svc.handleProtocols, http.MethodPost, "GET"},
		{"/v1/domains", svc.handleDomains, http.MethodDelete, "GET"},
		{"/v1/peers", svc.handlePeers, http.MethodDelete, "GET, POST"},
		{"/v1/peers/compatible", svc.handleCompatiblePeers, http.MethodPost, "GET"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := do(tt.handler, tt.method, tt.path, "", "")
			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("expected status %d, got %d", http.StatusMethodNotAllowed, w.Code)
			}
			if got := w.Header().Get("Allow"); got != tt.allow {
				t.Errorf("expected Allow %q, got %q", tt.allow, got)
			}
		})
	}
}

func TestNegotiateEndpoint(t *testing.T) {
	svc := newTestService(t)

	t.Run("compatible", func(t *testing.T) {
		w := do(svc.handleNegotiate, http.MethodPost, "/v1/negotiate", "application/json",
			`{"protocols":[`+pingPong111+`]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d; body: %s", w.Code, w.Body.String())
		}
		var res check.NegotiateResult
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatal(err)
		}
		if res.Compatible != 1 || res.Matches[0].Outcome != protocol.OutcomeCompatible {
			t.Errorf("unexpected result %+v", res)
		}
	})

	t.Run("incompatible", func(t *testing.T) {
		w := do(svc.handleNegotiate, http.MethodPost, "/v1/negotiate", "application/json",
			`{"protocols":[`+pingPong112+`]}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected status 409, got %d; body: %s", w.Code, w.Body.String())
		}
		resp := decodeError(t, w)
		if resp.Code != string(fverrors.ErrCodeIncompatible) {
			t.Errorf("expected code INCOMPATIBLE, got %s", resp.Code)
		}
		if _, ok := resp.Details["matches"]; !ok {
			t.Error("expected matches in error details")
		}
	})

	t.Run("invalid protocol name", func(t *testing.T) {
		w := do(svc.handleNegotiate, http.MethodPost, "/v1/negotiate", "application/json",
			`{"protocols":[{"name":"p-p","version":{"major":1,"minor":1,"patch":1},"requirement":{}}]}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", w.Code)
		}
	})
}

func TestProtocolsAndDomainsEndpoints(t *testing.T) {
	svc := newTestService(t)

	w := do(svc.handleProtocols, http.MethodGet, "/v1/protocols", "", "")
	var protocols check.ProtocolList
	if err := json.Unmarshal(w.Body.Bytes(), &protocols); err != nil {
		t.Fatal(err)
	}
	if len(protocols.Protocols) != 1 || protocols.Protocols[0].Name != protocol.PingPongName {
		t.Errorf("unexpected protocols %+v", protocols.Protocols)
	}

	w = do(svc.handleDomains, http.MethodGet, "/v1/domains", "", "")
	var domains check.DomainList
	if err := json.Unmarshal(w.Body.Bytes(), &domains); err != nil {
		t.Fatal(err)
	}
	if len(domains.Domains) != 10 {
		t.Errorf("expected 10 domains, got %d", len(domains.Domains))
	}
}

func TestPeersEndpoints(t *testing.T) {
	svc := newTestService(t)

	w := do(svc.handlePeers, http.MethodPost, "/v1/peers", "application/json",
		`{"id":"node-a","protocols":[`+pingPong111+`]}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d; body: %s", w.Code, w.Body.String())
	}

	w = do(svc.handlePeers, http.MethodPost, "/v1/peers", "application/json",
		`{"id":"node-b","protocols":[`+pingPong112+`]}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}

	t.Run("lookup", func(t *testing.T) {
		w := do(svc.handlePeers, http.MethodGet, "/v1/peers?id=node-b", "", "")
		var list check.PeerList
		if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
			t.Fatal(err)
		}
		if len(list.Peers) != 1 || list.Peers[0].ID != "node-b" {
			t.Errorf("unexpected peers %+v", list.Peers)
		}
	})

	t.Run("lookup missing", func(t *testing.T) {
		w := do(svc.handlePeers, http.MethodGet, "/v1/peers?id=node-z", "", "")
		if w.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		w := do(svc.handlePeers, http.MethodGet, "/v1/peers", "", "")
		var list check.PeerList
		if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
			t.Fatal(err)
		}
		if len(list.Peers) != 2 {
			t.Errorf("expected 2 peers, got %d", len(list.Peers))
		}
	})

	t.Run("compatible", func(t *testing.T) {
		w := do(svc.handleCompatiblePeers, http.MethodGet, "/v1/peers/compatible", "", "")
		var list check.PeerList
		if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
			t.Fatal(err)
		}
		if len(list.Peers) != 1 || list.Peers[0].ID != "node-a" {
			t.Errorf("expected only node-a to be compatible, got %+v", list.Peers)
		}
	})

	t.Run("announce without protocols", func(t *testing.T) {
		w := do(svc.handlePeers, http.MethodPost, "/v1/peers", "application/json", `{"id":"node-c"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", w.Code)
		}
	})
}

func TestRoutesBehindServer(t *testing.T) {
	s := server.New(server.WithHandler(newTestService(t).routes()))

	req := httptest.NewRequest(http.MethodGet, "/v1/protocols", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if w.Header().Get("X-Request-Id") == "" {
		t.Error("expected middleware to set X-Request-Id")
	}
}
