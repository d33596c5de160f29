package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseEncode Phase = "encode" // values to wire bytes
	PhaseDecode Phase = "decode" // wire bytes to values
	PhaseParse  Phase = "parse"  // signature / type-string parsing
)

// Kind categorizes the error
type Kind string

const (
	// KindOutOfBounds: a read, or a derived offset/length, would access
	// bytes beyond the declared buffer length. Never policy-suppressed.
	KindOutOfBounds Kind = "out_of_bounds"

	// KindInvalidEncoding: a value or structural rule violation under the
	// strict policy (bad padding, boolean not 0/1, enum out of range,
	// misplaced tail offset, trailing bytes).
	KindInvalidEncoding Kind = "invalid_encoding"

	// KindResourceLimit: nesting depth, array length, or total element
	// count exceeded a configured ceiling. Never policy-suppressed.
	KindResourceLimit Kind = "resource_limit"

	// KindTypeMismatch: the caller's value tree does not match the type
	// tree during encode. Programmer error, not adversarial input.
	KindTypeMismatch Kind = "type_mismatch"

	KindInvalidInput Kind = "invalid_input"
	KindUnsupported  Kind = "unsupported"
)

// Error is the structured error type used throughout the codec
type Error struct {
	Value   any
	Cause   error
	Phase   Phase
	Kind    Kind
	GoType  string
	AbiType string
	Detail  string
	Path    []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.GoType != "" || e.AbiType != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.AbiType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", ABI type ")
			b.WriteString(e.AbiType)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("ABI type ")
			b.WriteString(e.AbiType)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.AbiType != "" {
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

// Path sets the value path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// AbiType sets the ABI type name
func (b *Builder) AbiType(t string) *Builder {
	b.err.AbiType = t
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

// OutOfBounds creates an out of bounds error for a read past the region end
func OutOfBounds(phase Phase, path []string, offset, length, end int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Path:   path,
		Detail: fmt.Sprintf("read of %d bytes at offset %d exceeds region end %d", length, offset, end),
		Value:  offset,
	}
}

// InvalidEncoding creates a strict-policy violation error
func InvalidEncoding(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidEncoding,
		Path:   path,
		Detail: detail,
	}
}

// ResourceLimit creates a safety-ceiling violation error
func ResourceLimit(phase Phase, path []string, what string, got, limit int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindResourceLimit,
		Path:   path,
		Detail: fmt.Sprintf("%s %d exceeds limit %d", what, got, limit),
		Value:  got,
	}
}

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, path []string, goType, abiType string) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindTypeMismatch,
		Path:    path,
		GoType:  goType,
		AbiType: abiType,
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

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
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
