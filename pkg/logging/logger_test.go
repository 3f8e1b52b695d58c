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

package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{" info ", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"Warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLogLevel(tt.in); got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStructuredLogger_Attributes(t *testing.T) {
	var buf bytes.Buffer
	logger := newStructuredLogger(&buf, "fvd", "v1.2.3", slog.LevelInfo)

	logger.Debug("hidden")
	logger.Info("check evaluated", "domain", "u16", "fits", 3)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected one JSON line, got %q: %v", buf.String(), err)
	}
	if entry["module"] != "fvd" || entry["version"] != "v1.2.3" {
		t.Errorf("missing module/version: %v", entry)
	}
	if entry["domain"] != "u16" {
		t.Errorf("domain = %v", entry["domain"])
	}
	if _, ok := entry["source"]; ok {
		t.Error("info logger should not add source")
	}
}

func TestStructuredLogger_DebugSource(t *testing.T) {
	var buf bytes.Buffer
	logger := newStructuredLogger(&buf, "fvctl", "dev", slog.LevelDebug)
	logger.Debug("lanes backend selected")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatal(err)
	}
	if _, ok := entry["source"]; !ok {
		t.Errorf("debug logger should add source: %v", entry)
	}
}

func TestSetDefaultStructuredLoggerWithLevel_EnvWins(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	t.Setenv(EnvLogLevel, "error")
	SetDefaultStructuredLoggerWithLevel("fvd", "dev", "debug")
	if slog.Default().Enabled(t.Context(), slog.LevelWarn) {
		t.Error("LOG_LEVEL=error should disable warn")
	}
}

func TestNewLogLogger(t *testing.T) {
	if l := NewLogLogger(slog.LevelInfo, false); l.Flags() != 0 {
		t.Errorf("Flags() = %d, want 0", l.Flags())
	}
}
