package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseSchema    Phase = "schema"    // alternative list validation
	PhaseConstruct Phase = "construct" // building a new stored value
	PhaseAccess    Phase = "access"    // reading the stored value
	PhaseAssign    Phase = "assign"    // replacing the stored value
	PhaseTeardown  Phase = "teardown"  // destroying the stored value
)

// Kind categorizes the error
type Kind string

const (
	KindBadAccess           Kind = "bad_access"
	KindNotAlternative      Kind = "not_alternative"
	KindOutOfRange          Kind = "out_of_range"
	KindDuplicate           Kind = "duplicate_alternative"
	KindEmptySchema         Kind = "empty_schema"
	KindTooManyAlternatives Kind = "too_many_alternatives"
	KindSchemaMismatch      Kind = "schema_mismatch"
	KindConstructFailed     Kind = "construct_failed"
	KindMissingCase         Kind = "missing_case"
	KindUnknownCase         Kind = "unknown_case"
)

// noIndex is the sentinel discriminant of an empty container.
const noIndex = ^uint32(0)

// Error is the structured error type used throughout the library
type Error struct {
	Cause     error
	Phase     Phase
	Kind      Kind
	GoType    string
	Detail    string
	Requested uint32
	Actual    uint32
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

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

// Requested sets the discriminant the caller asked for
func (b *Builder) Requested(i uint32) *Builder {
	b.err.Requested = i
	return b
}

// Actual sets the discriminant the container held
func (b *Builder) Actual(i uint32) *Builder {
	b.err.Actual = i
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

// indexString renders a discriminant, naming the empty sentinel.
func indexString(i uint32) string {
	if i == noIndex {
		return "none (empty)"
	}
	return fmt.Sprintf("%d", i)
}

// BadAccess creates an access error carrying the requested and active
// discriminants. The message always encodes both.
func BadAccess(requested, actual uint32) *Error {
	return &Error{
		Phase:     PhaseAccess,
		Kind:      KindBadAccess,
		Requested: requested,
		Actual:    actual,
		Detail:    fmt.Sprintf("requested alternative %s, active alternative %s", indexString(requested), indexString(actual)),
	}
}

// NotAlternative creates an error for a type outside the schema's list
func NotAlternative(phase Phase, goType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotAlternative,
		GoType: goType,
		Detail: "type is not an alternative of this schema",
	}
}

// OutOfRange creates an error for a position outside [0, N)
func OutOfRange(phase Phase, index uint32, numAlts int) *Error {
	return &Error{
		Phase:     phase,
		Kind:      KindOutOfRange,
		Requested: index,
		Detail:    fmt.Sprintf("position %d out of range (%d alternatives)", index, numAlts),
	}
}

// Duplicate creates a schema validation error for a repeated type
func Duplicate(goType string, first, second int) *Error {
	return &Error{
		Phase:  PhaseSchema,
		Kind:   KindDuplicate,
		GoType: goType,
		Detail: fmt.Sprintf("alternative appears at positions %d and %d", first, second),
	}
}

// EmptySchema creates a schema validation error for an empty list
func EmptySchema() *Error {
	return &Error{
		Phase:  PhaseSchema,
		Kind:   KindEmptySchema,
		Detail: "a schema needs at least one alternative",
	}
}

// TooManyAlternatives creates a schema validation error for a list whose
// positions would collide with the empty sentinel
func TooManyAlternatives(numAlts int) *Error {
	return &Error{
		Phase:  PhaseSchema,
		Kind:   KindTooManyAlternatives,
		Detail: fmt.Sprintf("%d alternatives exceed the discriminant range", numAlts),
	}
}

// SchemaMismatch creates an error for an operation across two schemas
func SchemaMismatch(phase Phase) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindSchemaMismatch,
		Detail: "source and destination use different schemas",
	}
}

// ConstructFailed wraps a failure from an alternative's validator or copier
func ConstructFailed(goType string, cause error) *Error {
	return &Error{
		Phase:  PhaseConstruct,
		Kind:   KindConstructFailed,
		GoType: goType,
		Cause:  cause,
	}
}

// MissingCase creates a bridge error for a WIT case with no registered type
func MissingCase(name string) *Error {
	return &Error{
		Phase:  PhaseSchema,
		Kind:   KindMissingCase,
		Detail: fmt.Sprintf("no alternative registered for case %q", name),
	}
}

// UnknownCase creates a bridge error for a registered name the WIT variant lacks
func UnknownCase(name string) *Error {
	return &Error{
		Phase:  PhaseSchema,
		Kind:   KindUnknownCase,
		Detail: fmt.Sprintf("case %q does not exist in the WIT variant", name),
	}
}
