package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDefine    Phase = "define"    // alternative list validation
	PhaseConstruct Phase = "construct" // value construction
	PhaseAccess    Phase = "access"    // typed access
	PhaseVisit     Phase = "visit"     // visitor dispatch
	PhaseGenerate  Phase = "generate"  // code generation
)

// Kind categorizes the error
type Kind string

const (
	KindBadAccess            Kind = "bad_access"
	KindNotAlternative       Kind = "not_alternative"
	KindNoConversion         Kind = "no_conversion"
	KindDuplicateAlternative Kind = "duplicate_alternative"
	KindEmptySet             Kind = "empty_set"
	KindIncompleteVisitor    Kind = "incomplete_visitor"
	KindInvalidInput         Kind = "invalid_input"
	KindInvalidConfig        Kind = "invalid_config"
)

// ErrBadAccess matches every error returned by typed access on a variant
// that does not hold the requested alternative.
var ErrBadAccess = &Error{Phase: PhaseAccess, Kind: KindBadAccess}

// Error is the structured error type used throughout the library
type Error struct {
	Value        any
	Cause        error
	Phase        Phase
	Kind         Kind
	GoType       string
	Detail       string
	Alternatives []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Alternatives) > 0 {
		b.WriteString(" in variant<")
		b.WriteString(strings.Join(e.Alternatives, ", "))
		b.WriteByte('>')
	}

	if e.GoType != "" {
		b.WriteString(": Go type ")
		b.WriteString(e.GoType)
	}

	if e.Detail != "" {
		if e.GoType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// Alternatives sets the alternative list of the variant involved
func (b *Builder) Alternatives(names ...string) *Builder {
	b.err.Alternatives = names
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// BadAccess creates the error returned when typed access asks for an
// alternative other than the live one.
func BadAccess(requested, live string) *Error {
	return &Error{
		Phase:  PhaseAccess,
		Kind:   KindBadAccess,
		GoType: requested,
		Detail: fmt.Sprintf("variant holds %s", live),
	}
}

// NotAlternative creates the error raised when a type is not among the
// declared alternatives.
func NotAlternative(phase Phase, goType string, alternatives []string) *Error {
	return &Error{
		Phase:        phase,
		Kind:         KindNotAlternative,
		GoType:       goType,
		Alternatives: alternatives,
		Detail:       "not a declared alternative",
	}
}

// NoConversion creates the error raised when a value converts to none of
// the alternatives.
func NoConversion(goType string, alternatives []string) *Error {
	return &Error{
		Phase:        PhaseConstruct,
		Kind:         KindNoConversion,
		GoType:       goType,
		Alternatives: alternatives,
		Detail:       "no alternative accepts this type",
	}
}

// DuplicateAlternative creates the error for an alternative listed twice
func DuplicateAlternative(goType string, first, second int) *Error {
	return &Error{
		Phase:  PhaseDefine,
		Kind:   KindDuplicateAlternative,
		GoType: goType,
		Detail: fmt.Sprintf("declared at index %d and %d", first, second),
		Value:  second,
	}
}

// EmptySet creates the error for a variant without alternatives
func EmptySet() *Error {
	return &Error{
		Phase:  PhaseDefine,
		Kind:   KindEmptySet,
		Detail: "a variant needs at least one alternative",
	}
}

// IncompleteVisitor creates the error for a visitor missing the handler of
// an alternative.
func IncompleteVisitor(index int, goType string) *Error {
	return &Error{
		Phase:  PhaseVisit,
		Kind:   KindIncompleteVisitor,
		GoType: goType,
		Detail: fmt.Sprintf("no handler for alternative %d", index),
		Value:  index,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// InvalidConfig creates a configuration error
func InvalidConfig(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseGenerate,
		Kind:   KindInvalidConfig,
		Detail: detail,
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
