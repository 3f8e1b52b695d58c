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
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
)

// EnvLogLevel names the environment variable that overrides the log level.
const EnvLogLevel = "LOG_LEVEL"

// SetDefaultStructuredLogger installs a JSON logger for name and version as
// the slog default. The level comes from LOG_LEVEL, or info.
func SetDefaultStructuredLogger(name, version string) {
	SetDefaultStructuredLoggerWithLevel(name, version, os.Getenv(EnvLogLevel))
}

// SetDefaultStructuredLoggerWithLevel is like SetDefaultStructuredLogger
// with an explicit level. A non-empty LOG_LEVEL still wins.
func SetDefaultStructuredLoggerWithLevel(name, version, level string) {
	if env := os.Getenv(EnvLogLevel); env != "" {
		level = env
	}
	slog.SetDefault(NewStructuredLogger(name, version, level))
}

// NewStructuredLogger returns a JSON logger writing to stderr with module
// and version attributes. Debug loggers include the source location.
func NewStructuredLogger(name, version, level string) *slog.Logger {
	return newStructuredLogger(os.Stderr, name, version, ParseLogLevel(level))
}

func newStructuredLogger(w io.Writer, name, version string, level slog.Level) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
	})
	return slog.New(h).With("module", name, "version", version)
}

// ParseLogLevel maps a case-insensitive level name to a slog level.
// Unknown or empty names map to info.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogLogger returns a standard library logger that writes through the
// default slog logger at level. With addPrefix the standard flags are kept.
func NewLogLogger(level slog.Level, addPrefix bool) *log.Logger {
	l := slog.NewLogLogger(slog.Default().Handler(), level)
	if !addPrefix {
		l.SetFlags(0)
	}
	return l
}
