package alt

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/variant/errors"
)

type celsius float64

type marker int

type label string

func (l label) String() string { return string(l) }

type named struct{ X int }

type twin struct{ X int }

func typesOf(vals ...any) []reflect.Type {
	out := make([]reflect.Type, len(vals))
	for i, v := range vals {
		out[i] = reflect.TypeOf(v)
	}
	return out
}

func mustSet(t *testing.T, types ...reflect.Type) *Set {
	t.Helper()
	s, err := NewSet(types...)
	require.NoError(t, err)
	return s
}

func TestNewSetRejectsIllFormedLists(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := NewSet()
		require.Error(t, err)
		assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseDefine, Kind: errors.KindEmptySet})
	})

	t.Run("duplicate", func(t *testing.T) {
		_, err := NewSet(typesOf(0, 1.5, 0)...)
		require.Error(t, err)
		var e *errors.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, errors.KindDuplicateAlternative, e.Kind)
		assert.Equal(t, "int", e.GoType)
		assert.Equal(t, []string{"int", "float64", "int"}, e.Alternatives)
	})

	t.Run("nil type", func(t *testing.T) {
		_, err := NewSet(reflect.TypeFor[int](), nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseDefine, Kind: errors.KindInvalidInput})
	})
}

func TestExactIndex(t *testing.T) {
	s := mustSet(t, typesOf(0, 0.0, float32(0))...)

	tests := []struct {
		typ    reflect.Type
		want   int
		wantOK bool
	}{
		{reflect.TypeFor[int](), 0, true},
		{reflect.TypeFor[float64](), 1, true},
		{reflect.TypeFor[float32](), 2, true},
		{reflect.TypeFor[string](), 0, false},
		{reflect.TypeFor[marker](), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			got, ok := s.ExactIndex(tt.typ)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestAt(t *testing.T) {
	s := mustSet(t, typesOf(0, 0.0, float32(0))...)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, reflect.TypeFor[int](), s.At(0))
	assert.Equal(t, reflect.TypeFor[float64](), s.At(1))
	assert.Equal(t, reflect.TypeFor[float32](), s.At(2))
	assert.Equal(t, []string{"int", "float64", "float32"}, s.Names())
	assert.Equal(t, "variant<int, float64, float32>", s.String())
	assert.Panics(t, func() { s.At(3) })
}

func TestTypesReturnsCopy(t *testing.T) {
	s := mustSet(t, typesOf(0, "")...)
	types := s.Types()
	types[0] = reflect.TypeFor[bool]()
	assert.Equal(t, reflect.TypeFor[int](), s.At(0))
}

func TestConvertibleIndex(t *testing.T) {
	tests := []struct {
		name   string
		alts   []reflect.Type
		from   reflect.Type
		want   int
		wantOK bool
	}{
		{
			name: "exact match wins over earlier conversion",
			alts: []reflect.Type{
				reflect.TypeFor[int](), reflect.TypeFor[[]int](),
				reflect.TypeFor[[]float32](), reflect.TypeFor[float32](),
			},
			from: reflect.TypeFor[float32](), want: 3, wantOK: true,
		},
		{
			name: "earliest convertible wins",
			alts: []reflect.Type{reflect.TypeFor[marker](), reflect.TypeFor[float32]()},
			from: reflect.TypeFor[int](), want: 0, wantOK: true,
		},
		{
			name: "earliest convertible wins reversed",
			alts: []reflect.Type{reflect.TypeFor[float32](), reflect.TypeFor[marker]()},
			from: reflect.TypeFor[int](), want: 0, wantOK: true,
		},
		{
			name: "numeric widening",
			alts: []reflect.Type{reflect.TypeFor[string](), reflect.TypeFor[float64]()},
			from: reflect.TypeFor[int32](), want: 1, wantOK: true,
		},
		{
			name: "named float",
			alts: []reflect.Type{reflect.TypeFor[bool](), reflect.TypeFor[celsius]()},
			from: reflect.TypeFor[float64](), want: 1, wantOK: true,
		},
		{
			name: "interface alternative",
			alts: []reflect.Type{reflect.TypeFor[int](), reflect.TypeFor[fmt.Stringer]()},
			from: reflect.TypeFor[label](), want: 1, wantOK: true,
		},
		{
			name: "error interface",
			alts: []reflect.Type{reflect.TypeFor[int](), reflect.TypeFor[error]()},
			from: reflect.TypeFor[*errors.Error](), want: 1, wantOK: true,
		},
		{
			name: "int never becomes string",
			alts: []reflect.Type{reflect.TypeFor[string](), reflect.TypeFor[bool]()},
			from: reflect.TypeFor[int](), wantOK: false,
		},
		{
			name: "bytes never become string",
			alts: []reflect.Type{reflect.TypeFor[string]()},
			from: reflect.TypeFor[[]byte](), wantOK: false,
		},
		{
			name: "named string",
			alts: []reflect.Type{reflect.TypeFor[int](), reflect.TypeFor[label]()},
			from: reflect.TypeFor[string](), want: 1, wantOK: true,
		},
		{
			name: "struct with identical underlying type",
			alts: []reflect.Type{reflect.TypeFor[string](), reflect.TypeFor[twin]()},
			from: reflect.TypeFor[named](), want: 1, wantOK: true,
		},
		{
			name: "complex",
			alts: []reflect.Type{reflect.TypeFor[float64](), reflect.TypeFor[complex128]()},
			from: reflect.TypeFor[complex64](), want: 1, wantOK: true,
		},
		{
			name: "nil type",
			alts: []reflect.Type{reflect.TypeFor[int]()},
			from: nil, wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustSet(t, tt.alts...)
			got, ok := s.ConvertibleIndex(tt.from)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestConvert(t *testing.T) {
	s := mustSet(t, typesOf(marker(0), float32(0))...)

	i, ok := s.ConvertibleIndex(reflect.TypeFor[int]())
	require.True(t, ok)
	v := s.Convert(reflect.ValueOf(12), i)
	assert.Equal(t, marker(12), v.Interface())

	v = s.Convert(reflect.ValueOf(float32(3.5)), 1)
	assert.Equal(t, float32(3.5), v.Interface())
}

type owner1 struct{}

type owner2 struct{}

func TestLookupCachesPerOwner(t *testing.T) {
	a := Lookup[owner1](typesOf(0, "")...)
	b := Lookup[owner1](typesOf(0, "")...)
	assert.Same(t, a, b)

	c := Lookup[owner2](typesOf(true)...)
	assert.NotSame(t, a, c)
	assert.Equal(t, 1, c.Len())
}

func TestLookupPanicsOnDuplicates(t *testing.T) {
	type dupOwner struct{}
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(*errors.Error)
		require.True(t, ok)
		assert.Equal(t, errors.KindDuplicateAlternative, err.Kind)
	}()
	Lookup[dupOwner](typesOf(1, 2)...)
}

func TestLayout(t *testing.T) {
	s := mustSet(t, typesOf(int32(0), 0.0, float32(0))...)
	info := s.Layout()
	assert.Equal(t, uintptr(8), info.PayloadSize)
	assert.Equal(t, uintptr(8), info.Align)

	slots := s.SlotLayout()
	assert.Equal(t, uintptr(1), slots.DiscSize)
	assert.GreaterOrEqual(t, slots.Size, info.Size)
}

func TestLayoutSameNamedTypes(t *testing.T) {
	small := func() reflect.Type {
		type T struct{ a byte }
		return reflect.TypeFor[T]()
	}()
	large := func() reflect.Type {
		type T struct{ a, b, c int64 }
		return reflect.TypeFor[T]()
	}()
	require.Equal(t, small.String(), large.String())

	a := mustSet(t, small)
	b := mustSet(t, large)
	assert.Equal(t, small.Size(), a.Layout().PayloadSize)
	assert.Equal(t, large.Size(), b.Layout().PayloadSize)
	assert.Equal(t, uintptr(32), b.Layout().Size)
}
