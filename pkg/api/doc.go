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

// Package api wires the fast-version service layer into the fvd HTTP
// server.
//
// Usage:
//
//	import (
//	    "log"
//	    "github.com/NVIDIA/fast-version/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application endpoints (with rate limiting):
//   - POST /v1/check            - Evaluate versions against a requirement (JSON/YAML body)
//   - POST /v1/negotiate        - Negotiate remote protocols against the local table
//   - GET  /v1/protocols        - List local protocols
//   - GET  /v1/domains          - List numeric domains and their sentinels
//   - POST /v1/peers            - Announce a peer's protocols
//   - GET  /v1/peers[?id=]      - List live peers or look one up
//   - GET  /v1/peers/compatible - List peers with a protocol the local table accepts
//
// System endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// Negotiation answers 409 INCOMPATIBLE when no remote protocol is
// compatible; the per-protocol outcomes are in the error details. A check
// that outlives its deadline answers 504 TIMEOUT, and one whose client
// disconnected is logged with status 499 CANCELED.
//
// Example check request:
//
//	curl -X POST http://localhost:8080/v1/check \
//	  -H "Content-Type: application/yaml" \
//	  --data-binary @- <<EOF
//	domain: i32
//	requirement:
//	  lower: {kind: greater-or-equal-major, major: 5}
//	  upper: {kind: lesser-major, major: 10}
//	versions:
//	  - {major: 7, minor: 0, patch: 0}
//	EOF
//
// # Configuration
//
// See pkg/server for the environment variables. LOG_LEVEL sets the log
// level.
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/fast-version/pkg/api.version=1.0.0'"
package api
