// Package errs provides standardized error types for the bloqnet application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the four error classes the managers report:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     malformed or forbidden input (HTTP 400)
//   - ObjectNotFoundError: a referenced id is absent (HTTP 404)
//   - ConflictError: a state-machine precondition is violated (HTTP 409)
//   - IntegrityFaultError: an internal invariant breach (HTTP 500)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// HTTPStatus translates any of these errors into the status code the HTTP
// layer passes through verbatim, keeping status-code selection with the
// managers rather than the router.
package errs
