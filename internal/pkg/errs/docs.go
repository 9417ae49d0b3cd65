// Package errs provides standardized error types for the food ordering backend.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes one error type per error kind the core reports:
//   - ObjectNotFoundError: a referenced entity does not exist
//   - ForbiddenError: the actor lacks the ownership or role an operation requires
//   - StateIsInvalidError: the operation is not valid for the entity's current status
//   - ValueIsInvalidError, ValueIsRequiredError, ValueIsOutOfRangeError: malformed input
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Transport adapters classify failures with errors.Is against the sentinels, so
// every kind keeps a stable response category regardless of where it was raised.
package errs
