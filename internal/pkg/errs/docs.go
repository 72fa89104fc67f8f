// Package errs provides the standardized error types used across the
// marketplace service.
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - a struct type carrying the error details
//   - constructors with and without an underlying cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// The taxonomy mirrors how failures surface at the API boundary: validation
// failures (required/invalid/out of range), missing objects, authorization
// failures (ActorNotAllowedError), and concurrency conflicts
// (ConflictError, which carries the state observed after the failed write
// so the caller can re-sync instead of silently overwriting).
package errs
