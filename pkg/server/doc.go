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

// Package server provides the HTTP server shared by fast-version services.
//
// A Server owns the listener, the route table and a middleware chain applied
// to every API route:
//
//   - Prometheus metrics labeled by registered route
//   - API version negotiation via Accept and X-API-Version
//   - Request ID tracking with X-Request-Id
//   - Panic recovery
//   - Token bucket rate limiting (golang.org/x/time/rate)
//   - Request body size limits
//   - Debug request logging via log/slog
//
// The /health, /ready and /metrics endpoints are served without the chain.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("fvd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/check": handleCheck,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Run blocks until SIGINT, SIGTERM or ctx cancellation and then drains
// connections within Config.ShutdownTimeout.
//
// # Configuration
//
// NewConfig reads the environment:
//
//	PORT                      listen port (default 8080)
//	RATE_LIMIT                requests per second (default 100)
//	RATE_LIMIT_BURST          bucket size (default 200)
//	PEER_TTL_SECONDS          peer announcement lifetime (default 300)
//	SHUTDOWN_TIMEOUT_SECONDS  graceful shutdown limit (default 30)
//
// # Errors
//
// Every error reply has the same shape:
//
//	{
//	  "code": "INVALID_REQUIREMENT",
//	  "message": "requirement cannot be built",
//	  "details": {"error": "..."},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-22T12:00:00Z",
//	  "retryable": false
//	}
//
// WriteErrorFromErr maps a pkg/errors StructuredError to its status with
// HTTPStatusFromCode.
package server
