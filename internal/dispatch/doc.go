// Package dispatch routes a runtime discriminant to compile-time typed code.
//
// A caller builds a short table of entries, one per alternative, each of
// which reinterprets a slot pointer as its alternative type and calls a
// typed handler. Invoke checks that the table is complete and calls the
// entry for the live discriminant.
//
// This package is internal to the variant package.
package dispatch
