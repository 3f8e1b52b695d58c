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

package defaults

import "time"

// Handler timeouts for HTTP request processing.
const (
	// CheckHandlerTimeout is the timeout for a batch check request.
	CheckHandlerTimeout = 10 * time.Second

	// CheckEvaluateTimeout is the internal timeout for evaluating a batch.
	// Should be less than CheckHandlerTimeout to allow error handling.
	CheckEvaluateTimeout = 8 * time.Second

	// NegotiateHandlerTimeout is the timeout for protocol negotiation
	// requests.
	NegotiateHandlerTimeout = 5 * time.Second
)

// Check limits for batch evaluation and backend self-check.
const (
	// CheckMaxVersions caps the versions a single check request may carry.
	CheckMaxVersions = 4096

	// CheckConcurrency bounds the goroutines evaluating one batch.
	CheckConcurrency = 8

	// CheckChunkSize is the number of versions one goroutine evaluates.
	CheckChunkSize = 256

	// SelfCheckSamples is the default number of random triples drawn per
	// domain by the backend self-check.
	SelfCheckSamples = 10000

	// SelfCheckTimeout bounds a full self-check run.
	SelfCheckTimeout = 2 * time.Minute
)

// Registry timings for announced peers.
const (
	// RegistryPeerTTL is how long an announcement stays valid.
	RegistryPeerTTL = 5 * time.Minute

	// RegistryCleanupInterval is how often expired peers are purged.
	RegistryCleanupInterval = 1 * time.Minute

	// RegistryMaxProtocols caps the protocols one peer may announce.
	RegistryMaxProtocols = 64
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second

	// ServerMaxBodyBytes caps request bodies.
	ServerMaxBodyBytes = 1 << 20
)

// HTTP client timeouts for outbound requests.
const (
	// HTTPClientTimeout is the default total timeout for HTTP requests.
	HTTPClientTimeout = 30 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for reading response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second

	// HTTPIdleConnTimeout is the timeout for idle connections in the pool.
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPKeepAlive is the keep-alive duration for connections.
	HTTPKeepAlive = 30 * time.Second

	// HTTPExpectContinueTimeout is the timeout for Expect: 100-continue.
	HTTPExpectContinueTimeout = 1 * time.Second
)

// CLI timeouts for command-line operations.
const (
	// CLICommandTimeout is the default timeout for a single fvctl command.
	CLICommandTimeout = 1 * time.Minute
)
