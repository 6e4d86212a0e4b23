// Package errors provides structured error types for the variant library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the Go type involved, the alternative list of the
// variant, a human-readable detail and an optional cause.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseAccess, errors.KindBadAccess).
//		GoType("float64").
//		Alternatives("int", "float64", "float32").
//		Detail("variant holds int").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.BadAccess("float64", "int")
//	err := errors.DuplicateAlternative("int", 0, 2)
//
// BadAccess is the only error a variant returns at run time. The remaining
// kinds describe ill-formed instantiations or calls (a type that is not an
// alternative, a value with no convertible alternative, an incomplete
// visitor); those are raised as panics carrying an *Error.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
