// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Boundary packages wrap core failures so callers and the HTTP layer can
// classify them without inspecting message text:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInvalidRequirement,
//	    "failed to build requirement",
//	    buildErr,
//	    map[string]any{
//	        "domain": "u16",
//	        "slot":   "lower",
//	    },
//	)
//
// Work bound to a context reports its failure through WrapContext, so a
// deadline reads as TIMEOUT and a client that went away as CANCELED rather
// than INTERNAL. CodeOf recovers the code from any error chain.
package errors
