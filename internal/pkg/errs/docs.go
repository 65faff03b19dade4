// Package errs provides standardized error types for the rate engine.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrValueIsInvalid)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() resolving to the sentinel
//
// Callers classify failures with errors.Is against the sentinels, which keeps
// HTTP status mapping and batch error reporting uniform across handlers.
package errs
