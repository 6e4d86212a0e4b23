// Package variant provides type-safe tagged unions: a value that holds
// exactly one alternative from a fixed, ordered list of Go types.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	variant/             Generated Variant1..Variant6, construction, access, visitation
//	├── alt/             Alternative lists: exact and convertible type resolution
//	├── lifecycle/       Per-alternative copy, move, assign and destroy tables
//	├── layout/          Packed storage layout of an alternative list
//	├── errors/          Structured error types
//	├── internal/        Dispatch tables used by visitation
//	└── cmd/             variantgen code generator, explore CLI
//
// # Quick Start
//
//	v := variant.New3[int, float64, string](42)
//
//	n, err := v.Get0()   // *int pointing at 42
//	_, err = v.Get1()    // errors.Is(err, errors.ErrBadAccess)
//
//	s := variant.Match3(&v,
//	    func(i int) string { return "int" },
//	    func(f float64) string { return "float" },
//	    func(s string) string { return s },
//	)
//
// # Construction
//
// NewN resolves the alternative from the static type of its argument. An
// exact type match wins; otherwise the earliest-declared alternative the
// value converts to is used. Numeric conversions are allowed, as are
// conversions to interface alternatives and between named types sharing an
// underlying type. A value that converts to no alternative panics.
//
// The zero value of a variant holds the zero value of its first alternative.
//
// # Value Semantics
//
// Alternatives may customize their lifecycle by implementing hooks on the
// pointer receiver:
//
//   - lifecycle.Cloner[T]: deep copy used by Clone and Assign
//   - lifecycle.Mover[T]: transfer used by Move and MoveAssign
//   - lifecycle.Assigner[T]: in-place assignment between equal alternatives
//   - lifecycle.Dropper: destructor run by Destroy, SetN and cross-alternative assignment
//
// A plain Go assignment copies a variant bitwise and runs no hooks. Use
// Clone or Assign when the alternatives need value semantics.
//
// # Errors
//
// Accessing an alternative that is not live returns an *errors.Error that
// matches errors.ErrBadAccess. Misuse that a compiler would reject in a
// language with variadic generics (a type that is not an alternative,
// duplicate alternatives, a nil handler) panics with an *errors.Error.
//
// # Thread Safety
//
// Variants are plain values and are not synchronized. The per-instantiation
// caches behind Alternatives and the lifecycle tables are safe for
// concurrent use.
package variant

//go:generate go run ./cmd/variantgen -config variantgen.yaml
