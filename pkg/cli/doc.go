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

// Package cli implements fvctl, the fast-version command-line interface.
//
// # Commands
//
// check - Evaluate versions against a requirement:
//
//	fvctl check -d i32 --lower 'greater-or-equal-major(5)' --upper 'lesser-major(10)' 7.0.0 10.0.0
//	fvctl check -f request.yaml [--fail-on-mismatch]
//
// negotiate - Check remote protocol identifiers against the local table:
//
//	fvctl negotiate -f remote.yaml [--local protocols.yaml] [--fail-on-incompatible]
//
// selfcheck - Compare the scalar and lanes backends on random samples:
//
//	fvctl selfcheck [-n 100000] [-d u8 -d i64] [--seed 42]
//
// domains - List the numeric domains and their sentinels:
//
//	fvctl domains --format table
//
// # Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//	--log-level    Log level (default: info)
//	--timeout      Maximum duration of a command (default: 1m)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// Documents given to -f may be local paths, http(s) URLs or - for stdin.
//
// # Environment Variables
//
//	FVCTL_OUTPUT, FVCTL_FORMAT, FVCTL_LOG_LEVEL, FVCTL_TIMEOUT
//	FVCTL_DOMAIN, FVCTL_BACKEND            check defaults
//	FVCTL_LOCAL_PROTOCOLS                  negotiate local table
//	FVCTL_SELFCHECK_SAMPLES, FVCTL_SELFCHECK_SEED
//	LOG_LEVEL                              overrides --log-level
//
// # Exit Codes
//
//	0  Success
//	1  General error, mismatch or incompatibility
//	2  Context canceled or timeout
package cli
