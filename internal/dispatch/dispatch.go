package dispatch

import (
	"reflect"
	"unsafe"

	"github.com/wippyai/variant/errors"
)

// Entry is a handler bound to one alternative's slot.
type Entry[R any] func(slot unsafe.Pointer) R

// Bind adapts a typed handler to an Entry. A nil handler yields a nil Entry,
// which Invoke rejects.
func Bind[T, R any](fn func(T) R) Entry[R] {
	if fn == nil {
		return nil
	}
	return func(slot unsafe.Pointer) R {
		return fn(*(*T)(slot))
	}
}

// BindRef adapts a handler taking a pointer to the live value.
func BindRef[T, R any](fn func(*T) R) Entry[R] {
	if fn == nil {
		return nil
	}
	return func(slot unsafe.Pointer) R {
		return fn((*T)(slot))
	}
}

// Invoke calls table[disc] on slot. Every entry must be set; a missing
// entry panics even when it is not the live one.
func Invoke[R any](table []Entry[R], disc int, slot unsafe.Pointer, types func(int) reflect.Type) R {
	for i, e := range table {
		if e == nil {
			name := ""
			if types != nil {
				name = types(i).String()
			}
			panic(errors.IncompleteVisitor(i, name))
		}
	}
	return table[disc](slot)
}
