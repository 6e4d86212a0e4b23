package variant

import (
	"reflect"

	"github.com/wippyai/variant/errors"
)

// Get returns a pointer to the live value of u if it holds a T. It returns
// an error matching errors.ErrBadAccess when another alternative is live.
// T must be one of u's alternatives; any other type panics.
func Get[T any](u Union) (*T, error) {
	set := u.Alternatives()
	t := reflect.TypeFor[T]()
	i, ok := set.ExactIndex(t)
	if !ok {
		panic(errors.NotAlternative(errors.PhaseAccess, t.String(), set.Names()))
	}
	return get[T](u, i)
}

// MustGet is like Get but panics on a bad access.
func MustGet[T any](u Union) *T {
	p, err := Get[T](u)
	if err != nil {
		panic(err)
	}
	return p
}

// Holds reports whether the live alternative of u is T.
func Holds[T any](u Union) bool {
	i, ok := u.Alternatives().ExactIndex(reflect.TypeFor[T]())
	return ok && i == u.Index()
}
