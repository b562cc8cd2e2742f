// Package errors provides structured error types for the variant library.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). The Error type includes the context a caller needs to
// diagnose a failed operation: the offending Go type, the requested and
// active discriminants for access failures, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseAccess, errors.KindBadAccess).
//		Requested(0).
//		Actual(1).
//		Detail("requested alternative 0, active alternative 1").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.BadAccess(0, 1)
//	err := errors.NotAlternative(errors.PhaseAccess, "string")
//
// All errors implement the standard error interface and support
// errors.Is/As.
package errors
