// Package oaserrors provides structured error types for the oasgraph library.
//
// Import path: github.com/oasgraph/oasgraph/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and
// [errors.As], allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Types
//
// The package provides four core error types:
//
//   - [TypeMismatchError]: a value supplied to a typed attribute or list is
//     neither the expected node type, a coercible mapping, nor an
//     already-canonical node
//   - [ConstructionError]: a raw mapping could not be turned into the
//     expected node type (missing required field, or a field's own invariant
//     check failed); the underlying cause is preserved
//   - [InvariantViolationError]: a node-specific required-field rule failed
//     at construction time
//   - [UnknownStatusCodeError]: a status code with no registered HTTP reason
//     phrase was used where a reason phrase is required
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrTypeMismatch]: Matches any [TypeMismatchError]
//   - [ErrConstruction]: Matches any [ConstructionError]
//   - [ErrInvariant]: Matches any [InvariantViolationError]
//   - [ErrUnknownStatusCode]: Matches any [UnknownStatusCodeError]
//
// # Usage Examples
//
// Check the error category with errors.Is():
//
//	resp, err := graph.NewResponse(999)
//	if errors.Is(err, oaserrors.ErrUnknownStatusCode) {
//	    // Handle unrecognized status code
//	}
//
// Extract error details with errors.As():
//
//	var cerr *oaserrors.ConstructionError
//	if errors.As(err, &cerr) {
//	    fmt.Printf("failed to build %s from %v\n", cerr.TypeName, cerr.Input)
//	}
//
// # Error Chaining
//
// ConstructionError supports error chaining via the Cause field and Unwrap(),
// so the invariant failure that aborted a coercion can be found through the
// standard error chain:
//
//	var verr *oaserrors.InvariantViolationError
//	if errors.As(err, &verr) {
//	    fmt.Printf("field %s: %s\n", verr.Field, verr.Message)
//	}
package oaserrors
