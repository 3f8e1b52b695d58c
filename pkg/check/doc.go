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

// Package check is the service layer shared by the fvd server and the
// fvctl CLI.
//
// Evaluate takes a Request naming a numeric domain, a requirement document
// and a batch of versions. It dispatches to the generic engine for that
// domain, builds the requirement once and checks the batch in chunks on an
// errgroup. Bad versions are reported per entry; a bad domain or
// requirement fails the whole request with a structured error code.
//
//	req := &check.Request{
//	    Domain: version.DomainUint16,
//	    Requirement: requirement.SpecDocument{
//	        Lower: &requirement.ClauseDocument{Kind: requirement.ClauseGreaterOrEqualMajor, Major: "5"},
//	        Upper: &requirement.ClauseDocument{Kind: requirement.ClauseLesserMajor, Major: "10"},
//	    },
//	    Versions: []version.Document{{Major: "7", Minor: "1", Patch: "1"}},
//	}
//	res, err := check.Evaluate(ctx, req)
//
// Negotiate checks remote protocol documents against a local
// protocol.Table. SelfCheck samples every domain and reports whether the
// scalar and lanes backends agree.
//
// Evaluations, negotiations and self-check disagreements are exported as
// Prometheus metrics with the fv_ prefix.
package check
