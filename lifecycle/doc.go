// Package lifecycle holds the per-alternative operation tables that give a
// variant its value semantics.
//
// Every alternative gets a Row of five operations over untyped slot
// pointers: copy-construct, move-construct, copy-assign, move-assign and
// destroy. A Table is the list of rows for one variant instantiation,
// indexed by discriminant, so selecting the operation for the live
// alternative is a slice index rather than a type switch.
//
// Alternatives customise their semantics by implementing hooks on the
// pointer receiver:
//
//	Cloner[T]   Clone() T     deep copy (default: plain assignment)
//	Mover[T]    Move() T      transfer out, leaving a moved-from value
//	                          (default: transfer and reset to zero)
//	Assigner[T] Assign(src T) assign into a live value
//	                          (default: destroy, then construct)
//	Dropper     Drop()        release resources (default: nothing)
//
// Destroy always resets the slot to the zero value after Drop, so a slot
// that is not live never keeps references alive.
package lifecycle
