// Package errs provides standardized error types for the procurement application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes general-purpose error types:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value is invalid
//   - ValueIsOutOfRangeError: for when a value is outside its allowed bounds
//   - ObjectNotFoundError: for when an object cannot be found
//
// and the order-lifecycle taxonomy:
//   - IllegalTransitionError: status transition outside the legal edges
//   - ReconciliationRequiredError: connected order marked delivered before reconciliation
//   - QuantityExceedsOrderedError: cumulative receipt above the ordered quantity
//   - IncompleteMappingError: reconciliation decisions not covering all catalog items
//   - StaleStateError: optimistic-concurrency conflict, caller must re-read and retry
//   - InvalidStateError: action attempted on an entity whose status forbids it
//
// Each error type follows a consistent pattern:
//   - a sentinel error variable (e.g. ErrStaleState)
//   - a struct type with fields for error details
//   - constructor functions, with and without cause where a cause makes sense
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
package errs
