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

package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	fverrors "github.com/NVIDIA/fast-version/pkg/errors"
	"github.com/NVIDIA/fast-version/pkg/serializer"
)

// StatusClientClosedRequest is reported, and counted in metrics, when the
// client went away before the handler finished.
const StatusClientClosedRequest = 499

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Code      string         `json:"code" yaml:"code"`
	Message   string         `json:"message" yaml:"message"`
	Details   map[string]any `json:"details,omitempty" yaml:"details,omitempty"`
	RequestID string         `json:"requestId" yaml:"requestId"`
	Timestamp time.Time      `json:"timestamp" yaml:"timestamp"`
	Retryable bool           `json:"retryable" yaml:"retryable"`
}

// WriteError writes an ErrorResponse. The request ID comes from the
// request context, or is generated when the middleware did not run.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code fverrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID := RequestID(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	serializer.RespondJSON(w, statusCode, ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	})
}

// WriteErrorFromErr maps err to a response. A StructuredError supplies the
// code, message and context; anything else is reported as INTERNAL with
// fallbackMessage. The cause, if any, is added to details as "error".
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string, details map[string]any) {
	var se *fverrors.StructuredError
	if errors.As(err, &se) {
		merged := mergeDetails(se.Context, details)
		if se.Cause != nil {
			merged = mergeDetails(merged, map[string]any{"error": se.Cause.Error()})
		}
		WriteError(w, r, HTTPStatusFromCode(se.Code), se.Code, se.Message, retryableFromCode(se.Code), merged)
		return
	}

	merged := details
	if err != nil {
		merged = mergeDetails(details, map[string]any{"error": err.Error()})
	}
	WriteError(w, r, http.StatusInternalServerError, fverrors.ErrCodeInternal, fallbackMessage,
		retryableFromCode(fverrors.ErrCodeInternal), merged)
}

// HTTPStatusFromCode maps an error code to its HTTP status.
func HTTPStatusFromCode(code fverrors.ErrorCode) int {
	switch code {
	case fverrors.ErrCodeInvalidRequest, fverrors.ErrCodeInvalidVersion, fverrors.ErrCodeInvalidRequirement:
		return http.StatusBadRequest
	case fverrors.ErrCodeNotFound:
		return http.StatusNotFound
	case fverrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case fverrors.ErrCodeIncompatible:
		return http.StatusConflict
	case fverrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case fverrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case fverrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case fverrors.ErrCodeCanceled:
		return StatusClientClosedRequest
	default:
		return http.StatusInternalServerError
	}
}

func retryableFromCode(code fverrors.ErrorCode) bool {
	switch code {
	case fverrors.ErrCodeTimeout, fverrors.ErrCodeUnavailable,
		fverrors.ErrCodeRateLimitExceeded, fverrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails returns a copy of a with b's entries on top, or nil when
// both are empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
