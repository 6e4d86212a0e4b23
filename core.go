package variant

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/wippyai/variant/alt"
	"github.com/wippyai/variant/errors"
	"github.com/wippyai/variant/internal/dispatch"
	"github.com/wippyai/variant/lifecycle"
)

// cell is the storage view every generated variant exposes to the shared
// construction, lifecycle and dispatch code.
type cell interface {
	index() int
	setIndex(i int)
	slot(i int) unsafe.Pointer
	ops() *lifecycle.Table
	Alternatives() *alt.Set
}

// Union is implemented by pointers to every generated variant.
type Union interface {
	cell

	// Index returns the discriminant of the live alternative.
	Index() int

	// Value returns the live value as an interface.
	Value() any
}

// construct stores value as the alternative its static type resolves to.
// The variant must be freshly zeroed.
func construct[V any](c cell, value V) {
	set := c.Alternatives()
	from := reflect.TypeFor[V]()
	i, ok := set.ConvertibleIndex(from)
	if !ok {
		panic(errors.NoConversion(from.String(), set.Names()))
	}

	if set.At(i) == from {
		*(*V)(c.slot(i)) = value
	} else {
		src := reflect.ValueOf(&value).Elem()
		reflect.NewAt(set.At(i), c.slot(i)).Elem().Set(set.Convert(src, i))
	}
	c.setIndex(i)
}

// emplace destroys the live value and stores x as alternative i.
func emplace[T any](c cell, i int, x T) {
	cur := c.index()
	c.ops().Row(cur).Destroy(c.slot(cur))
	*(*T)(c.slot(i)) = x
	c.setIndex(i)
}

func get[T any](c cell, i int) (*T, error) {
	if cur := c.index(); cur != i {
		set := c.Alternatives()
		err := errors.BadAccess(set.At(i).String(), set.At(cur).String())
		err.Alternatives = set.Names()
		return nil, err
	}
	return (*T)(c.slot(i)), nil
}

// assign makes dst hold a copy (or the moved value) of src. When the live
// alternatives differ, dst's old value is destroyed before the new one is
// constructed in its slot.
func assign(dst, src cell, move bool) {
	if dst == src {
		return
	}

	i, j := dst.index(), src.index()
	row := dst.ops().Row(j)
	if i == j {
		if move {
			row.MoveAssign(dst.slot(j), src.slot(j))
		} else {
			row.CopyAssign(dst.slot(j), src.slot(j))
		}
		return
	}

	dst.ops().Row(i).Destroy(dst.slot(i))
	if move {
		row.MoveConstruct(dst.slot(j), src.slot(j))
	} else {
		row.CopyConstruct(dst.slot(j), src.slot(j))
	}
	dst.setIndex(j)
}

// destroy ends the live value's lifetime and leaves the zero variant.
func destroy(c cell) {
	i := c.index()
	c.ops().Row(i).Destroy(c.slot(i))
	c.setIndex(0)
}

func visit[R any](c cell, table []dispatch.Entry[R]) R {
	i := c.index()
	return dispatch.Invoke(table, i, c.slot(i), c.Alternatives().At)
}

// nilVisitor is the error raised when AcceptN is given no visitor.
func nilVisitor(c cell) *errors.Error {
	return errors.New(errors.PhaseVisit, errors.KindIncompleteVisitor).
		Alternatives(c.Alternatives().Names()...).
		Detail("nil visitor").
		Build()
}

func format(u Union) string {
	return fmt.Sprintf("%s(%v)", u.Alternatives().At(u.Index()), u.Value())
}
