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

package errors

import (
	"context"
	"errors"
	"fmt"
)

// ErrorCode classifies a failure for callers and for the HTTP status
// mapping in pkg/server.
type ErrorCode string

// Codes raised by the check, server and cli packages. The core packages
// (version, requirement, protocol) return plain sentinel errors and never
// use these.
const (
	// ErrCodeNotFound: an unknown route, or a peer id the registry does not hold.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeTimeout: a check, self-check or negotiation ran past its deadline.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeCanceled: the caller gave up first, usually a client disconnect
	// or an interrupted fvctl run.
	ErrCodeCanceled ErrorCode = "CANCELED"
	// ErrCodeInternal: a recovered handler panic or an unclassified failure.
	ErrCodeInternal ErrorCode = "INTERNAL"
	// ErrCodeInvalidRequest: a request body, header kind, domain, backend or
	// peer announcement that cannot be used.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	// ErrCodeRateLimitExceeded: rejected by the server's token bucket.
	ErrCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"
	// ErrCodeMethodNotAllowed: the route exists but not for this method.
	ErrCodeMethodNotAllowed ErrorCode = "METHOD_NOT_ALLOWED"
	// ErrCodeUnavailable: the server is starting or shutting down.
	//
	// Note: this value is aligned with the public API error contract.
	ErrCodeUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
	// ErrCodeInvalidVersion: a version triple that fails construction or
	// does not fit its domain.
	ErrCodeInvalidVersion ErrorCode = "INVALID_VERSION"
	// ErrCodeInvalidRequirement: a clause or requirement spec in a check
	// request that cannot be built.
	ErrCodeInvalidRequirement ErrorCode = "INVALID_REQUIREMENT"
	// ErrCodeIncompatible: negotiation found no protocol both sides accept.
	ErrCodeIncompatible ErrorCode = "INCOMPATIBLE"
)

// StructuredError provides structured error information for better observability.
// It includes an error code for programmatic handling, a human-readable message,
// the underlying cause, and optional context for debugging.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New creates a new StructuredError with the given code and message.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
	}
}

// NewWithContext creates a new StructuredError with context information.
func NewWithContext(code ErrorCode, message string, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Context: context,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapWithContext wraps an error with additional context information.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// WrapContext wraps a failure of ctx-bound work. A deadline becomes
// ErrCodeTimeout, a cancellation ErrCodeCanceled, anything else
// ErrCodeInternal. The cause stays in the chain for errors.Is.
func WrapContext(message string, cause error) *StructuredError {
	switch {
	case errors.Is(cause, context.DeadlineExceeded):
		return Wrap(ErrCodeTimeout, message+": timed out", cause)
	case errors.Is(cause, context.Canceled):
		return Wrap(ErrCodeCanceled, message+": canceled", cause)
	default:
		return Wrap(ErrCodeInternal, message, cause)
	}
}

// CodeOf returns the code of the first StructuredError in err's chain, or
// ErrCodeInternal when there is none.
func CodeOf(err error) ErrorCode {
	var se *StructuredError
	if errors.As(err, &se) {
		return se.Code
	}
	return ErrCodeInternal
}
