package diagnostic

import (
	"errors"
	"strings"

	"capnp-wrapper-generator/internal/common"
)

// Diagnostics holds all findings from a schema check.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic represents a single finding.
type Diagnostic struct {
	// Severity of the finding.
	Severity Severity
	// Message is the human-readable description.
	Message string
	// Decl names the schema declaration this relates to (if any).
	Decl string
	// Field names the field within Decl this relates to (if any).
	Field string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error finding.
func (d *Diagnostics) AddError(message, decl, field string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Message:  message,
		Decl:     decl,
		Field:    field,
	})
}

// AddWarning adds a warning finding.
func (d *Diagnostics) AddWarning(message, decl, field string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Message:  message,
		Decl:     decl,
		Field:    field,
	})
}

// HasErrors returns true if there are any error findings.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// IsEmpty returns true if there are no findings at all.
func (d *Diagnostics) IsEmpty() bool {
	return len(d.Errors) == 0 && len(d.Warnings) == 0
}

// All returns errors followed by warnings.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings))
	out = append(out, d.Errors...)
	out = append(out, d.Warnings...)

	return out
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}

// Error returns a combined error from all error findings, or nil if there
// are none.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted finding string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Decl != "" {
		prefix = append(prefix, "["+d.Decl+"]")
	}

	if d.Field != "" {
		prefix = append(prefix, d.Field)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + d.Message
	}

	return d.Message
}
