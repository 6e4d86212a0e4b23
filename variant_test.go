package variant

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wippyai/variant/errors"
)

type celsius float64

// buffer deep-copies its backing slice.
type buffer struct{ data []int }

func (b *buffer) Clone() buffer { return buffer{data: slices.Clone(b.data)} }

// handle counts how often it is dropped.
type handle struct {
	drops *int
	id    int
}

func (h *handle) Drop() {
	if h.drops != nil {
		*h.drops++
	}
}

// token clears its valid marker when moved from.
type token struct {
	id    int
	valid bool
}

func (t *token) Move() token {
	out := *t
	t.valid = false
	return out
}

// counter is assigned in place and records each assignment.
type counter struct {
	assigns *int
	n       int
}

func (c *counter) Assign(src counter) {
	*c.assigns++
	c.n = src.n
}

type describer struct{}

func (describer) Visit0(i int) string     { return "int" }
func (describer) Visit1(s string) string  { return "string:" + s }
func (describer) Visit2(f float64) string { return "float64" }

func panicError(t *testing.T, fn func()) (e *errors.Error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		var ok bool
		e, ok = r.(*errors.Error)
		require.True(t, ok, "panic value %T is not *errors.Error", r)
	}()
	fn()
	return nil
}

func TestZeroValue(t *testing.T) {
	var v Variant2[int, string]
	assert.Equal(t, 0, v.Index())

	p, err := v.Get0()
	require.NoError(t, err)
	assert.Equal(t, 0, *p)
}

func TestRoundTrip(t *testing.T) {
	var v Variant3[int, string, buffer]

	v.Set0(7)
	p0, err := v.Get0()
	require.NoError(t, err)
	assert.Equal(t, 7, *p0)
	assert.True(t, Holds[int](&v))

	v.Set1("seven")
	p1, err := v.Get1()
	require.NoError(t, err)
	assert.Equal(t, "seven", *p1)
	assert.Equal(t, 1, v.Index())
	assert.False(t, Holds[int](&v))

	v.Set2(buffer{data: []int{7}})
	p2, err := v.Get2()
	require.NoError(t, err)
	assert.Equal(t, []int{7}, p2.data)
	assert.Equal(t, buffer{data: []int{7}}, v.Value())
}

func TestBadAccess(t *testing.T) {
	v := New3[int, float64, float32](42)

	p, err := v.Get0()
	require.NoError(t, err)
	assert.Equal(t, 42, *p)

	_, err = v.Get1()
	assert.ErrorIs(t, err, errors.ErrBadAccess)

	var e *errors.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "float64", e.GoType)
	assert.Equal(t, []string{"int", "float64", "float32"}, e.Alternatives)

	_, err = Get[float32](&v)
	assert.ErrorIs(t, err, errors.ErrBadAccess)
}

func TestNewResolution(t *testing.T) {
	t.Run("exact match wins", func(t *testing.T) {
		v := New2[float64, int](7)
		assert.Equal(t, 1, v.Index())
		assert.Equal(t, 7, v.Value())
	})

	t.Run("earliest convertible wins", func(t *testing.T) {
		v := New2[celsius, float32](42)
		assert.Equal(t, 0, v.Index())
		assert.Equal(t, celsius(42), v.Value())
	})

	t.Run("numeric conversion", func(t *testing.T) {
		v := New2[string, float64](int8(3))
		assert.Equal(t, 1, v.Index())
		assert.Equal(t, 3.0, v.Value())
	})

	t.Run("interface alternative", func(t *testing.T) {
		v := New2[bool, any]("s")
		assert.Equal(t, 1, v.Index())
		assert.Equal(t, "s", v.Value())
	})

	t.Run("no conversion panics", func(t *testing.T) {
		e := panicError(t, func() { New2[int, float64]("x") })
		assert.Equal(t, errors.KindNoConversion, e.Kind)
		assert.Equal(t, errors.PhaseConstruct, e.Phase)
		assert.Equal(t, "string", e.GoType)
	})

	t.Run("int does not become string", func(t *testing.T) {
		e := panicError(t, func() { New1[string](65) })
		assert.Equal(t, errors.KindNoConversion, e.Kind)
	})
}

func TestDuplicateAlternativesPanic(t *testing.T) {
	e := panicError(t, func() { New2[int, int](1) })
	assert.Equal(t, errors.KindDuplicateAlternative, e.Kind)
	assert.Equal(t, errors.PhaseDefine, e.Phase)
}

func TestGetByType(t *testing.T) {
	v := New2[int, string]("hi")

	p, err := Get[string](&v)
	require.NoError(t, err)
	*p = "changed"
	assert.Equal(t, "changed", *MustGet[string](&v))

	assert.Panics(t, func() { MustGet[int](&v) })

	e := panicError(t, func() { _, _ = Get[bool](&v) })
	assert.Equal(t, errors.KindNotAlternative, e.Kind)
	assert.Equal(t, "bool", e.GoType)
}

func TestCloneIsDeep(t *testing.T) {
	v := New2[int, buffer](buffer{data: []int{1, 2}})
	c := v.Clone()

	p, err := c.Get1()
	require.NoError(t, err)
	p.data[0] = 99

	orig, err := v.Get1()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, orig.data)
	assert.Equal(t, 1, c.Index())
}

func TestMove(t *testing.T) {
	t.Run("mover hook", func(t *testing.T) {
		v := New2[int, token](token{id: 7, valid: true})
		m := v.Move()

		got, err := m.Get1()
		require.NoError(t, err)
		assert.Equal(t, token{id: 7, valid: true}, *got)

		src, err := v.Get1()
		require.NoError(t, err)
		assert.Equal(t, token{id: 7, valid: false}, *src)
	})

	t.Run("default zeroes source", func(t *testing.T) {
		v := New2[int, string]("s")
		m := v.Move()
		assert.Equal(t, "s", m.Value())
		assert.Equal(t, 1, v.Index())
		assert.Equal(t, "", v.Value())
	})
}

func TestAssign(t *testing.T) {
	t.Run("across alternatives drops old value once", func(t *testing.T) {
		drops := 0
		a := New2[int, handle](5)
		b := New2[int, handle](handle{id: 1, drops: &drops})

		b.Assign(&a)
		assert.Equal(t, 1, drops)
		assert.Equal(t, 0, b.Index())

		p, err := b.Get0()
		require.NoError(t, err)
		assert.Equal(t, 5, *p)

		_, err = b.Get1()
		assert.ErrorIs(t, err, errors.ErrBadAccess)
		assert.Equal(t, 5, a.Value())
	})

	t.Run("same alternative uses assigner", func(t *testing.T) {
		x, y := 0, 0
		a := New2[int, counter](counter{n: 1, assigns: &x})
		b := New2[int, counter](counter{n: 2, assigns: &y})

		b.Assign(&a)
		assert.Equal(t, 0, x)
		assert.Equal(t, 1, y)
		got, err := b.Get1()
		require.NoError(t, err)
		assert.Equal(t, 1, got.n)
	})

	t.Run("same alternative without assigner drops then copies", func(t *testing.T) {
		drops := 0
		a := New2[int, handle](handle{id: 2})
		b := New2[int, handle](handle{id: 1, drops: &drops})

		b.Assign(&a)
		assert.Equal(t, 1, drops)
		got, err := b.Get1()
		require.NoError(t, err)
		assert.Equal(t, 2, got.id)
	})

	t.Run("clone hook on assign", func(t *testing.T) {
		a := New2[int, buffer](buffer{data: []int{1}})
		b := New2[int, buffer](3)

		b.Assign(&a)
		p, err := b.Get1()
		require.NoError(t, err)
		p.data[0] = 5
		assert.Equal(t, buffer{data: []int{1}}, a.Value())
	})

	t.Run("self assignment", func(t *testing.T) {
		drops := 0
		v := New2[int, handle](handle{id: 1, drops: &drops})
		v.Assign(&v)
		v.MoveAssign(&v)
		assert.Equal(t, 0, drops)
		assert.Equal(t, handle{id: 1, drops: &drops}, v.Value())
	})
}

func TestMoveAssign(t *testing.T) {
	a := New2[int, string]("x")
	b := New2[int, string](1)

	b.MoveAssign(&a)
	assert.Equal(t, "x", b.Value())
	assert.Equal(t, 1, a.Index())
	assert.Equal(t, "", a.Value())

	c := New2[int, token](token{id: 3, valid: true})
	d := New2[int, token](token{id: 4, valid: true})
	d.MoveAssign(&c)
	assert.Equal(t, token{id: 3, valid: true}, d.Value())
	assert.Equal(t, token{id: 3, valid: false}, c.Value())
}

func TestMoveAssignAcrossAlternativesDropsOnce(t *testing.T) {
	drops := 0
	a := New2[int, handle](5)
	b := New2[int, handle](handle{id: 1, drops: &drops})

	b.MoveAssign(&a)
	assert.Equal(t, 1, drops)
	assert.Equal(t, 0, b.Index())
	assert.Equal(t, 5, b.Value())

	_, err := b.Get1()
	assert.ErrorIs(t, err, errors.ErrBadAccess)
	assert.Equal(t, 0, a.Index())
	assert.Equal(t, 0, a.Value(), "moved-from int is zeroed")
}

func TestDestroy(t *testing.T) {
	drops := 0
	v := New2[int, handle](handle{id: 1, drops: &drops})

	v.Destroy()
	assert.Equal(t, 1, drops)
	assert.Equal(t, 0, v.Index())
	assert.Equal(t, 0, v.Value())

	v.Destroy()
	assert.Equal(t, 1, drops)
}

func TestSetDropsLiveValue(t *testing.T) {
	drops := 0
	v := New2[int, handle](handle{id: 1, drops: &drops})

	v.Set0(3)
	assert.Equal(t, 1, drops)
	assert.Equal(t, 3, v.Value())

	v.Set1(handle{id: 2, drops: &drops})
	v.Set1(handle{id: 3})
	assert.Equal(t, 2, drops)
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name string
		v    Variant3[int, string, float64]
		want string
	}{
		{"first", New3[int, string, float64](1), "int"},
		{"second", New3[int, string, float64]("a"), "string:a"},
		{"third", New3[int, string, float64](2.5), "float64"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			d := describer{}
			got := Match3(&tt.v,
				func(i int) string { calls++; return d.Visit0(i) },
				func(s string) string { calls++; return d.Visit1(s) },
				func(f float64) string { calls++; return d.Visit2(f) },
			)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, 1, calls)

			assert.Equal(t, tt.want, Accept3[int, string, float64, string](&tt.v, d))
		})
	}
}

func TestMatchIncompleteVisitor(t *testing.T) {
	v := New2[int, string](1)
	ran := false

	e := panicError(t, func() {
		Match2[int, string, bool](&v, func(int) bool { ran = true; return true }, nil)
	})
	assert.False(t, ran)
	assert.Equal(t, errors.KindIncompleteVisitor, e.Kind)
	assert.Equal(t, errors.PhaseVisit, e.Phase)
	assert.Equal(t, 1, e.Value)
	assert.Equal(t, "string", e.GoType)
}

func TestAcceptNilVisitor(t *testing.T) {
	v := New3[int, string, float64](1)

	e := panicError(t, func() {
		Accept3[int, string, float64, string](&v, nil)
	})
	assert.Equal(t, errors.KindIncompleteVisitor, e.Kind)
	assert.Equal(t, errors.PhaseVisit, e.Phase)
	assert.Equal(t, []string{"int", "string", "float64"}, e.Alternatives)
}

func TestMatchRef(t *testing.T) {
	v := New2[int, string](21)

	got := MatchRef2(&v,
		func(p *int) int { *p *= 2; return *p },
		func(p *string) int { return len(*p) },
	)
	assert.Equal(t, 42, got)
	assert.Equal(t, 42, v.Value())
}

func TestLayout(t *testing.T) {
	v := New2[int8, int64](int8(1))
	info := v.Layout()
	assert.Equal(t, uintptr(16), info.Size)
	assert.Equal(t, uintptr(8), info.Align)
	assert.Equal(t, uintptr(1), info.DiscSize)
	assert.Equal(t, uintptr(8), info.PayloadOffset)
	assert.Equal(t, uintptr(8), info.PayloadSize)
}

func TestString(t *testing.T) {
	v := New2[int, string](42)
	assert.Equal(t, "int(42)", v.String())

	v.Set1("hi")
	assert.Equal(t, "string(hi)", v.String())
}

func TestAlternativesShared(t *testing.T) {
	var a, b Variant3[int, string, float64]
	assert.Same(t, a.Alternatives(), b.Alternatives())
	assert.Equal(t, "variant<int, string, float64>", a.Alternatives().String())
	assert.Same(t, a.ops(), b.ops())
	assert.Equal(t, 3, a.ops().Len())
}

type loggedA struct{}

type loggedB struct{}

func TestSetLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(zap.NewNop())

	v := New2[loggedA, loggedB](loggedB{})
	v.Destroy()

	assert.Equal(t, 1, logs.FilterMessage("alternative set built").Len())
	assert.Equal(t, 1, logs.FilterMessage("operation table built").Len())
}

func TestCloneAndMoveDoNotAllocate(t *testing.T) {
	v := New3[int, string, float64]("text")

	clones := testing.AllocsPerRun(100, func() {
		c := v.Clone()
		_ = c
	})
	assert.Zero(t, clones)

	moves := testing.AllocsPerRun(100, func() {
		m := v.Move()
		_ = m
	})
	assert.Zero(t, moves)
}
