package alt

import (
	"reflect"
	"strings"
	"sync"

	"github.com/wippyai/variant/errors"
	"github.com/wippyai/variant/layout"
	"go.uber.org/zap"
)

// Set is an immutable, ordered list of distinct alternative types.
type Set struct {
	index map[reflect.Type]int
	types []reflect.Type
	names []string
}

var (
	sets = sync.Map{} // reflect.Type of the owner -> *Set
	calc = layout.NewCalculator()
)

// NewSet validates the alternative list and builds its lookup index.
func NewSet(types ...reflect.Type) (*Set, error) {
	if len(types) == 0 {
		return nil, errors.EmptySet()
	}

	s := &Set{
		index: make(map[reflect.Type]int, len(types)),
		types: make([]reflect.Type, len(types)),
		names: make([]string, len(types)),
	}
	for i, t := range types {
		if t == nil {
			return nil, errors.InvalidInput(errors.PhaseDefine, "nil alternative type")
		}
		if first, dup := s.index[t]; dup {
			err := errors.DuplicateAlternative(t.String(), first, i)
			err.Alternatives = typeNames(types)
			return nil, err
		}
		s.index[t] = i
		s.types[i] = t
		s.names[i] = t.String()
	}
	return s, nil
}

// Lookup returns the shared set for the owner type V, building it on first
// use. An invalid list is a programming error and panics with an
// *errors.Error.
func Lookup[V any](types ...reflect.Type) *Set {
	owner := reflect.TypeFor[V]()
	if s, ok := sets.Load(owner); ok {
		return s.(*Set)
	}

	s, err := NewSet(types...)
	if err != nil {
		panic(err)
	}
	actual, loaded := sets.LoadOrStore(owner, s)
	if !loaded {
		Logger().Debug("alternative set built",
			zap.Stringer("owner", owner),
			zap.Strings("alternatives", s.names))
	}
	return actual.(*Set)
}

// Len returns the number of alternatives.
func (s *Set) Len() int {
	return len(s.types)
}

// At returns the alternative type at index i.
func (s *Set) At(i int) reflect.Type {
	return s.types[i]
}

// Types returns a copy of the alternative list.
func (s *Set) Types() []reflect.Type {
	out := make([]reflect.Type, len(s.types))
	copy(out, s.types)
	return out
}

// Names returns the alternative type names in declaration order.
func (s *Set) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// ExactIndex returns the position of t in the list.
func (s *Set) ExactIndex(t reflect.Type) (int, bool) {
	i, ok := s.index[t]
	return i, ok
}

// ConvertibleIndex returns the alternative a value of type t is stored as:
// the exact match if there is one, else the earliest convertible alternative.
func (s *Set) ConvertibleIndex(t reflect.Type) (int, bool) {
	if t == nil {
		return 0, false
	}
	if i, ok := s.index[t]; ok {
		return i, true
	}
	for i, alt := range s.types {
		if Convertible(t, alt) {
			return i, true
		}
	}
	return 0, false
}

// Convert converts v to the alternative at index i. The caller must have
// resolved i through ConvertibleIndex for v's type.
func (s *Set) Convert(v reflect.Value, i int) reflect.Value {
	target := s.types[i]
	if v.Type() == target {
		return v
	}
	return v.Convert(target)
}

// Layout returns the packed union layout of the alternatives.
func (s *Set) Layout() layout.Info {
	return calc.Union(s.types...)
}

// SlotLayout returns the layout of a variant holding one slot per
// alternative.
func (s *Set) SlotLayout() layout.Info {
	return calc.Slots(s.types...)
}

func (s *Set) String() string {
	return "variant<" + strings.Join(s.names, ", ") + ">"
}

// Convertible reports whether a value of type from may be stored as an
// alternative of type to.
func Convertible(from, to reflect.Type) bool {
	if from == to || from.AssignableTo(to) {
		return true
	}
	if !from.ConvertibleTo(to) {
		return false
	}

	fk, tk := from.Kind(), to.Kind()
	switch {
	case isNumeric(fk) && isNumeric(tk):
		return true
	case isComplex(fk) && isComplex(tk):
		return true
	case fk != tk:
		// int -> string, []byte -> string, slice -> array and friends
		return false
	case fk == reflect.Interface:
		return from.Implements(to)
	default:
		return true
	}
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func isComplex(k reflect.Kind) bool {
	return k == reflect.Complex64 || k == reflect.Complex128
}

func typeNames(types []reflect.Type) []string {
	names := make([]string, len(types))
	for i, t := range types {
		if t == nil {
			names[i] = "nil"
			continue
		}
		names[i] = t.String()
	}
	return names
}
