package main

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/variant/alt"
	"github.com/wippyai/variant/errors"
	"github.com/wippyai/variant/layout"
)

var namedTypes = map[string]reflect.Type{
	"bool":         reflect.TypeFor[bool](),
	"int":          reflect.TypeFor[int](),
	"int8":         reflect.TypeFor[int8](),
	"int16":        reflect.TypeFor[int16](),
	"int32":        reflect.TypeFor[int32](),
	"rune":         reflect.TypeFor[rune](),
	"int64":        reflect.TypeFor[int64](),
	"uint":         reflect.TypeFor[uint](),
	"uint8":        reflect.TypeFor[uint8](),
	"byte":         reflect.TypeFor[byte](),
	"uint16":       reflect.TypeFor[uint16](),
	"uint32":       reflect.TypeFor[uint32](),
	"uint64":       reflect.TypeFor[uint64](),
	"uintptr":      reflect.TypeFor[uintptr](),
	"float32":      reflect.TypeFor[float32](),
	"float64":      reflect.TypeFor[float64](),
	"complex64":    reflect.TypeFor[complex64](),
	"complex128":   reflect.TypeFor[complex128](),
	"string":       reflect.TypeFor[string](),
	"[]byte":       reflect.TypeFor[[]byte](),
	"any":          reflect.TypeFor[any](),
	"error":        reflect.TypeFor[error](),
	"fmt.Stringer": reflect.TypeFor[fmt.Stringer](),
}

// resolution is the outcome of storing a literal into a variant.
type resolution struct {
	set    *alt.Set
	input  reflect.Value
	stored reflect.Value
	layout layout.Info
	index  int
	exact  bool
}

func parseType(name string) (reflect.Type, error) {
	name = strings.TrimSpace(name)
	if t, ok := namedTypes[name]; ok {
		return t, nil
	}
	return nil, errors.New(errors.PhaseDefine, errors.KindInvalidInput).
		GoType(name).
		Detail("unknown type").
		Build()
}

// parseAlternatives parses a comma-separated alternative list.
func parseAlternatives(list string) (*alt.Set, error) {
	var types []reflect.Type
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		t, err := parseType(name)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return alt.NewSet(types...)
}

// parseLiteral reads a Go literal and gives it its default type. A
// conversion such as uint8(7) or float32(1.5) fixes the type explicitly.
func parseLiteral(lit string) (reflect.Value, error) {
	lit = strings.TrimSpace(lit)

	if open := strings.IndexByte(lit, '('); open > 0 && strings.HasSuffix(lit, ")") {
		t, err := parseType(lit[:open])
		if err != nil {
			return reflect.Value{}, err
		}
		v, err := parseLiteral(lit[open+1 : len(lit)-1])
		if err != nil {
			return reflect.Value{}, err
		}
		if !v.Type().ConvertibleTo(t) {
			return reflect.Value{}, errors.New(errors.PhaseConstruct, errors.KindNoConversion).
				GoType(v.Type().String()).
				Detail("cannot convert %s to %s", lit, t).
				Build()
		}
		return v.Convert(t), nil
	}

	switch {
	case lit == "true" || lit == "false":
		return reflect.ValueOf(lit == "true"), nil
	case strings.HasPrefix(lit, `"`) || strings.HasPrefix(lit, "`"):
		s, err := strconv.Unquote(lit)
		if err != nil {
			return reflect.Value{}, errors.Wrap(errors.PhaseConstruct, errors.KindInvalidInput, err, "string literal "+lit)
		}
		return reflect.ValueOf(s), nil
	case strings.HasPrefix(lit, "'"):
		s, err := strconv.Unquote(lit)
		r := []rune(s)
		if err != nil || len(r) != 1 {
			return reflect.Value{}, errors.InvalidInput(errors.PhaseConstruct, "rune literal "+lit)
		}
		return reflect.ValueOf(r[0]), nil
	}

	if i, err := strconv.ParseInt(lit, 0, 64); err == nil {
		return reflect.ValueOf(int(i)), nil
	}
	if f, err := strconv.ParseFloat(lit, 64); err == nil {
		return reflect.ValueOf(f), nil
	}
	return reflect.Value{}, errors.InvalidInput(errors.PhaseConstruct, "unrecognized literal "+lit)
}

// resolve picks the alternative a literal would be stored as.
func resolve(alternatives, literal string) (*resolution, error) {
	r, err := resolveLiteral(alternatives, literal)
	if err != nil {
		Logger().Debug("resolution failed",
			zap.String("alternatives", alternatives),
			zap.String("literal", literal),
			zap.Error(err))
		return nil, err
	}
	Logger().Debug("resolved literal",
		zap.Stringer("alternatives", r.set),
		zap.Stringer("type", r.input.Type()),
		zap.Int("index", r.index),
		zap.Bool("exact", r.exact))
	return r, nil
}

func resolveLiteral(alternatives, literal string) (*resolution, error) {
	set, err := parseAlternatives(alternatives)
	if err != nil {
		return nil, err
	}
	v, err := parseLiteral(literal)
	if err != nil {
		return nil, err
	}

	i, ok := set.ConvertibleIndex(v.Type())
	if !ok {
		return nil, errors.NoConversion(v.Type().String(), set.Names())
	}
	_, exact := set.ExactIndex(v.Type())

	return &resolution{
		set:    set,
		input:  v,
		stored: set.Convert(v, i),
		layout: set.Layout(),
		index:  i,
		exact:  exact,
	}, nil
}

func (r *resolution) match() string {
	if r.exact {
		return "exact"
	}
	return "converted"
}

func (r *resolution) lines() [][2]string {
	return [][2]string{
		{"alternatives", r.set.String()},
		{"value", fmt.Sprintf("%v (%s)", r.input, r.input.Type())},
		{"resolved", fmt.Sprintf("%d %s (%s)", r.index, r.set.At(r.index), r.match())},
		{"stored", fmt.Sprintf("%v", r.stored)},
		{"layout", fmt.Sprintf("size=%d align=%d disc=%d payload=%d@%d",
			r.layout.Size, r.layout.Align, r.layout.DiscSize, r.layout.PayloadSize, r.layout.PayloadOffset)},
	}
}

func (r *resolution) String() string {
	var b strings.Builder
	for _, l := range r.lines() {
		fmt.Fprintf(&b, "%-13s %s\n", l[0]+":", l[1])
	}
	return b.String()
}
