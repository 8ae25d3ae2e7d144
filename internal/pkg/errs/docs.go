// Package errs provides standardized error types for the food ordering application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a numeric value is outside allowed bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - NotAuthorizedError: For when an actor lacks the role or identity a mutation requires
//   - ConflictError: For when a mutation loses a race or attempts an illegal state transition
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The sentinel errors let callers classify failures with errors.Is without
// depending on concrete types, which is how the HTTP adapter maps domain
// failures to status codes.
package errs
