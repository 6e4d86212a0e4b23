// Package alt describes the ordered list of alternative types a variant can
// hold.
//
// A Set answers three questions about the list:
//
//   - ExactIndex: where does a type appear literally?
//   - ConvertibleIndex: which alternative should a value of some type be
//     stored as?
//   - At: which type lives at an index?
//
// # Conversion precedence
//
// ConvertibleIndex prefers an exact match. Otherwise it picks the
// earliest-declared alternative the type converts to, reading the list left
// to right. A type is considered convertible to an alternative when it is
// assignable to it (which covers interface alternatives), when both are
// numeric, or when both share a kind and Go permits the conversion (named
// and unnamed forms of the same underlying type). Conversions that change
// meaning rather than representation are never used: integers and byte
// slices do not become strings, slices do not become arrays.
//
// A Set rejects empty and duplicate lists. Sets for generated variants are
// built once per instantiation through Lookup and shared.
package alt
