package resolve

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the fatal failure classes of a generation run.
var (
	// ErrUnknownType indicates a reference to an unregistered type id.
	ErrUnknownType = errors.New("resolve: unknown type id")
	// ErrUnsupportedField indicates a field shape with no wrapper form.
	ErrUnsupportedField = errors.New("resolve: unsupported field")
	// ErrLoadFailed indicates the schema could not be compiled or decoded.
	ErrLoadFailed = errors.New("resolve: schema load failed")
)

// LookupError reports a field (or list element, or requested file) that
// references a type id missing from the resolver's indexes. It usually
// means the referenced declaration is imported, nested, or simply absent.
type LookupError struct {
	// Ref is what the id was expected to name ("struct", "enum", "file").
	Ref string
	// ID is the unresolved id.
	ID TypeID
	// Decl is the declaration being resolved when the lookup failed.
	Decl string
	// Field is the field being resolved when the lookup failed.
	Field string
}

// Error implements the error interface.
func (e *LookupError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "resolve: unknown %s id %s", e.Ref, e.ID)

	if e.Decl != "" && e.Field != "" {
		fmt.Fprintf(&b, " referenced by field %s.%s", e.Decl, e.Field)
	} else if e.Decl != "" {
		fmt.Fprintf(&b, " referenced by %s", e.Decl)
	}

	return b.String()
}

// Is reports whether the target matches the sentinel for LookupError.
func (e *LookupError) Is(target error) bool {
	return target == ErrUnknownType
}

// UnsupportedFieldError reports a field whose schema shape cannot be
// expressed as a wrapper method (currently: group fields).
type UnsupportedFieldError struct {
	Decl   string
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *UnsupportedFieldError) Error() string {
	return fmt.Sprintf("resolve: field %s.%s: %s", e.Decl, e.Field, e.Reason)
}

// Is reports whether the target matches the sentinel for UnsupportedFieldError.
func (e *UnsupportedFieldError) Is(target error) bool {
	return target == ErrUnsupportedField
}

// CompileError reports a failed external schema compiler invocation.
type CompileError struct {
	// Compiler is the binary that was invoked.
	Compiler string
	// Path is the schema file passed to it.
	Path string
	// Stderr holds the compiler's captured standard error, trimmed.
	Stderr string
	// Cause is the underlying process error.
	Cause error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "resolve: compiling %s with %s", e.Path, e.Compiler)

	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}

	if e.Stderr != "" {
		b.WriteString(": ")
		b.WriteString(e.Stderr)
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *CompileError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel for CompileError.
func (e *CompileError) Is(target error) bool {
	return target == ErrLoadFailed
}

// IsLookupError reports whether the error is a LookupError.
func IsLookupError(err error) bool {
	var lookupErr *LookupError
	return errors.As(err, &lookupErr)
}

// IsLoadError reports whether the error belongs to the load failure class:
// the schema could not be compiled or its request stream decoded.
func IsLoadError(err error) bool {
	return errors.Is(err, ErrLoadFailed)
}
