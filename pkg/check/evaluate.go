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
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/fast-version/pkg/defaults"
	fverrors "github.com/NVIDIA/fast-version/pkg/errors"
	"github.com/NVIDIA/fast-version/pkg/header"
	"github.com/NVIDIA/fast-version/pkg/requirement"
	"github.com/NVIDIA/fast-version/pkg/version"
)

// Evaluate builds the requirement of req in its domain and checks every
// version against it. Versions that fail to parse or construct are
// reported per entry and never fail the request. Request-level problems
// are returned as *errors.StructuredError.
func Evaluate(ctx context.Context, req *Request) (result *Result, err error) {
	start := time.Now()
	domainLabel := "unknown"
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = string(fverrors.CodeOf(err))
		}
		checkRequestsTotal.WithLabelValues(domainLabel, outcome).Inc()
		checkDuration.WithLabelValues(domainLabel).Observe(time.Since(start).Seconds())
	}()

	if req == nil {
		return nil, fverrors.New(fverrors.ErrCodeInvalidRequest, "check request is required")
	}
	if err := req.Expect(header.KindCheckRequest); err != nil {
		return nil, fverrors.Wrap(fverrors.ErrCodeInvalidRequest, "invalid check request header", err)
	}

	domain, err := version.ParseDomain(string(req.Domain))
	if err != nil {
		return nil, fverrors.Wrap(fverrors.ErrCodeInvalidRequest, "invalid domain", err)
	}
	domainLabel = domain.String()

	switch n := len(req.Versions); {
	case n == 0:
		return nil, fverrors.New(fverrors.ErrCodeInvalidRequest, "at least one version is required")
	case n > defaults.CheckMaxVersions:
		return nil, fverrors.NewWithContext(fverrors.ErrCodeInvalidRequest,
			fmt.Sprintf("too many versions: %d", n),
			map[string]any{"limit": defaults.CheckMaxVersions})
	}

	backend, err := ParseBackend(string(req.Backend))
	if err != nil {
		return nil, fverrors.Wrap(fverrors.ErrCodeInvalidRequest, "invalid backend", err)
	}

	switch domain {
	case version.DomainInt8:
		result, err = evaluate[int8](ctx, req, backend)
	case version.DomainInt16:
		result, err = evaluate[int16](ctx, req, backend)
	case version.DomainInt32:
		result, err = evaluate[int32](ctx, req, backend)
	case version.DomainInt64:
		result, err = evaluate[int64](ctx, req, backend)
	case version.DomainInt:
		result, err = evaluate[int](ctx, req, backend)
	case version.DomainUint8:
		result, err = evaluate[uint8](ctx, req, backend)
	case version.DomainUint16:
		result, err = evaluate[uint16](ctx, req, backend)
	case version.DomainUint32:
		result, err = evaluate[uint32](ctx, req, backend)
	case version.DomainUint64:
		result, err = evaluate[uint64](ctx, req, backend)
	case version.DomainUint:
		result, err = evaluate[uint](ctx, req, backend)
	default:
		return nil, fverrors.New(fverrors.ErrCodeInvalidRequest, fmt.Sprintf("unsupported domain %q", domain))
	}
	if err != nil {
		return nil, err
	}

	result.Domain = domain
	recordVersions(domainLabel, result.Summary)
	slog.Debug("check evaluated",
		"domain", domainLabel,
		"backend", result.Backend,
		"total", result.Summary.Total,
		"fits", result.Summary.Fits,
		"invalid", result.Summary.Invalid,
		"duration", time.Since(start),
	)
	return result, nil
}

func evaluate[N version.Number](ctx context.Context, req *Request, backend Backend) (*Result, error) {
	spec, err := requirement.ParseSpec[N](req.Requirement)
	if err != nil {
		return nil, fverrors.Wrap(fverrors.ErrCodeInvalidRequirement, "invalid requirement document", err)
	}
	built, err := requirement.Build(spec)
	if err != nil {
		return nil, fverrors.WrapWithContext(fverrors.ErrCodeInvalidRequirement, "requirement cannot be built", err,
			map[string]any{"requirement": spec.String()})
	}

	results := make([]VersionResult, len(req.Versions))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(defaults.CheckConcurrency)

	for lo := 0; lo < len(req.Versions); lo += defaults.CheckChunkSize {
		hi := min(lo+defaults.CheckChunkSize, len(req.Versions))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for i := lo; i < hi; i++ {
				results[i] = checkOne(built, req.Versions[i], backend)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fverrors.WrapContext("check evaluation", err)
	}

	res := &Result{
		Backend:     backend.Resolved(),
		Requirement: req.Requirement,
		Bounds:      boundsOf(built),
		Results:     results,
		Summary:     summarize(results),
	}
	res.Init(header.KindCheckResult, "")
	return res, nil
}

func checkOne[N version.Number](r requirement.Requirement[N], doc version.Document, backend Backend) VersionResult {
	out := VersionResult{Version: doc}

	t, err := version.ParseTriple[N](doc)
	if err != nil {
		out.Error = err.Error()
		return out
	}

	switch backend {
	case BackendScalar:
		out.Valid = version.ValidScalar(t[0], t[1], t[2])
		out.Fits = out.Valid && requirement.FitsScalar(t, r.Lower(), r.Upper())
	case BackendLanes:
		out.Valid = version.ValidLanes(t[0], t[1], t[2])
		out.Fits = out.Valid && requirement.FitsLanes(t, r.Lower(), r.Upper())
	default:
		out.Valid = version.Valid(t[0], t[1], t[2])
		out.Fits = out.Valid && r.FitsTriple(t)
	}

	if !out.Valid {
		// New reports which field hit which sentinel.
		if _, err := version.FromTriple(t); err != nil {
			out.Error = err.Error()
		}
	}
	return out
}
