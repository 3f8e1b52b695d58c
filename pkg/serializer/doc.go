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

// Package serializer encodes and decodes check documents and results as
// JSON, YAML or a flat text table.
//
// # Formats
//
// JSON and YAML are read and written. Table output flattens a value into
// dotted keys named after its JSON tags and is write-only:
//
//	FIELD                      VALUE
//	-----                      -----
//	kind                       CheckResult
//	results.[0].fits           true
//	results.[0].version        1.4.2
//
// Values that marshal themselves as text, such as versions and clause
// kinds, are shown as a single cell.
//
// # Usage - Encoding
//
//	w, err := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//
//	if err := w.Serialize(ctx, result); err != nil {
//	    return err
//	}
//
// # Usage - Decoding
//
// FromFile accepts a local path, an http(s) URL or "-" for stdin:
//
//	req, err := serializer.FromFile[check.Request](ctx, "request.yaml")
//
// # Format Detection
//
//   - .json → JSON
//   - .yaml, .yml → YAML
//   - .table, .txt → Table
//   - Other → YAML, which also parses JSON
//
// # HTTP
//
// RespondJSON is the response writer used by the server. HttpReader fetches
// remote documents with bounded timeouts and body size.
package serializer
