package lifecycle

import (
	"reflect"
	"sync"
	"unsafe"

	"go.uber.org/zap"
)

// Row holds the operations of one alternative. Pointers address slots of
// the alternative's type; dst slots for construction hold the zero value.
type Row struct {
	Type          reflect.Type
	CopyConstruct func(dst, src unsafe.Pointer)
	MoveConstruct func(dst, src unsafe.Pointer)
	CopyAssign    func(dst, src unsafe.Pointer)
	MoveAssign    func(dst, src unsafe.Pointer)
	Destroy       func(p unsafe.Pointer)
}

// Table is the operation table of one variant instantiation.
type Table struct {
	rows []Row
}

var tables = sync.Map{} // reflect.Type of the owner -> *Table

// NewTable builds a table from row constructors, one per alternative.
func NewTable(rows ...func() Row) *Table {
	t := &Table{rows: make([]Row, len(rows))}
	for i, build := range rows {
		t.rows[i] = build()
	}
	return t
}

// For returns the shared table of the owner type V, building it on first
// use.
func For[V any](rows ...func() Row) *Table {
	owner := reflect.TypeFor[V]()
	if t, ok := tables.Load(owner); ok {
		return t.(*Table)
	}

	actual, loaded := tables.LoadOrStore(owner, NewTable(rows...))
	if !loaded {
		Logger().Debug("operation table built",
			zap.Stringer("owner", owner),
			zap.Int("rows", len(rows)))
	}
	return actual.(*Table)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns the operations of alternative i.
func (t *Table) Row(i int) *Row {
	return &t.rows[i]
}

// RowFor builds the row of alternative type T, probing its hooks once.
func RowFor[T any]() Row {
	probe := any(new(T))
	_, assigner := probe.(Assigner[T])
	_, dropper := probe.(Dropper)

	r := Row{Type: reflect.TypeFor[T]()}

	destroy := func(p *T) {}
	if dropper {
		destroy = func(p *T) { any(p).(Dropper).Drop() }
	}
	destroySlot := func(p unsafe.Pointer) {
		slot := (*T)(p)
		destroy(slot)
		var zero T
		*slot = zero
	}
	r.Destroy = destroySlot

	clone := CloneOf[T]
	r.CopyConstruct = func(dst, src unsafe.Pointer) {
		*(*T)(dst) = clone((*T)(src))
	}

	move := MoveOf[T]
	r.MoveConstruct = func(dst, src unsafe.Pointer) {
		*(*T)(dst) = move((*T)(src))
	}

	if assigner {
		r.CopyAssign = func(dst, src unsafe.Pointer) {
			any((*T)(dst)).(Assigner[T]).Assign(clone((*T)(src)))
		}
		r.MoveAssign = func(dst, src unsafe.Pointer) {
			any((*T)(dst)).(Assigner[T]).Assign(move((*T)(src)))
		}
	} else {
		r.CopyAssign = func(dst, src unsafe.Pointer) {
			v := clone((*T)(src))
			destroySlot(dst)
			*(*T)(dst) = v
		}
		r.MoveAssign = func(dst, src unsafe.Pointer) {
			v := move((*T)(src))
			destroySlot(dst)
			*(*T)(dst) = v
		}
	}

	return r
}

// CloneOf returns a copy of *src, through its Cloner hook when T has one.
func CloneOf[T any](src *T) T {
	if c, ok := any(src).(Cloner[T]); ok {
		return c.Clone()
	}
	return *src
}

// MoveOf transfers *src out, through its Mover hook when T has one.
// Without a hook the source is reset to its zero value.
func MoveOf[T any](src *T) T {
	if m, ok := any(src).(Mover[T]); ok {
		return m.Move()
	}
	v := *src
	var zero T
	*src = zero
	return v
}
