// Package logging configures slog for fvd and fvctl.
//
// Both binaries write JSON records to stderr. Every record carries the
// binary name as "module" and its build version as "version"; debug level
// adds the source location.
//
// # Setup
//
// Binaries install the default logger once, before doing anything else:
//
//	func Serve() error {
//	    logging.SetDefaultStructuredLogger("fvd", version)
//	    ...
//	}
//
// fvctl passes its --log-level flag through:
//
//	logging.SetDefaultStructuredLoggerWithLevel("fvctl", version, cmd.String("log-level"))
//
// After that, packages log through slog directly:
//
//	slog.Info("check evaluated", "domain", req.Domain, "fits", summary.Fits)
//	slog.Debug("peer evicted", "peer", id)
//
// NewStructuredLogger returns a logger without installing it, and
// NewLogLogger adapts slog for APIs that take a *log.Logger, such as
// http.Server.ErrorLog.
//
// # Levels
//
// ParseLogLevel accepts debug, info, warn (or warning) and error in any
// case. Anything else is info. LOG_LEVEL overrides the level given to
// SetDefaultStructuredLogger:
//
//	LOG_LEVEL=debug fvctl selfcheck --samples 100
//
// A record at debug level looks like:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "DEBUG",
//	    "source": {"function": "registry.(*Registry).Announce", "file": "registry.go", "line": 135},
//	    "msg": "peer announced",
//	    "module": "fvd",
//	    "version": "v1.0.0",
//	    "peer": "node-a",
//	    "protocols": 1
//	}
//
// The version and requirement packages never log. Logging happens in
// server middleware, check summaries, registry events and CLI commands.
package logging
