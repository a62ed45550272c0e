// Package errors provides structured error handling for tactica.
//
// The package provides:
//   - Structured errors with codes, messages, and metadata
//   - Error context preservation through wrapping
//   - Validation error helpers for component configs
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("action not found")
//	err := errors.InvalidArgumentf("invalid upcast level: %d", level)
//
// Adding metadata:
//
//	err := errors.NotFound("action not found").
//	    WithMeta("action_id", actionID)
//
// Wrapping errors:
//
//	if err := repo.Load(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load cooldown ledger")
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
// # Validation Errors
//
// Using the validation builder for component configs:
//
//	vb := errors.NewValidationBuilder()
//	if c.Catalog == nil {
//	    vb.RequiredField("Catalog")
//	}
//	return vb.Build()
//
// Note that domain-level failures of an action invocation (unknown action,
// on cooldown, insufficient budget, ...) are NOT errors in this sense: they
// surface as a FailureReason on the ActionExecutionResult. This package is
// for programmatic errors - bad configs, misuse of an API, storage failures.
package errors
