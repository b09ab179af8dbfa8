// Package errors provides structured error handling for the caverns game.
//
// It provides:
//   - Structured errors with codes, messages, and metadata
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("monster template not found")
//	err := errors.InvalidArgumentf("unknown action: %q", action)
//
// Adding metadata:
//
//	err := errors.NotFound("combat session not found").
//	    WithMeta("session_id", sessionID)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load monster template")
//	}
//
// Changing error semantics:
//
//	if err := catalogRepo.Get(ctx, input); err != nil {
//	    if errors.IsNotFound(err) {
//	        return errors.WrapWithCodef(err, errors.CodeInvalidArgument,
//	            "zone names unknown monster %q", name)
//	    }
//	    return errors.Wrap(err, "catalog lookup failed")
//	}
//
// # Error Checking
//
// Type checking:
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
// Extracting information:
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	errors.ValidateEnum("action", string(input.Action), validActions, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return domain-specific errors (NotFound, AlreadyExists)
//   - Include relevant IDs in metadata
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Check preconditions and return FailedPrecondition errors
//   - Wrap repository errors with business context
//
// CLI layer:
//   - Re-prompt on InvalidArgument instead of failing
//   - Extract user-friendly messages for display
//
// # Error Codes
//
// The following error codes are available:
//   - NotFound: Resource not found
//   - InvalidArgument: Invalid input provided
//   - AlreadyExists: Resource already exists
//   - FailedPrecondition: Operation requirements not met
//   - Aborted: Operation aborted
//   - OutOfRange: Value out of valid range
//   - Unimplemented: Feature not implemented
//   - Internal: Internal error
//   - Canceled: Operation canceled
package errors
