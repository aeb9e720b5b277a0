package errors

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation failure.
//
// Fields:
//   - Field: Name of the invalid field or setting
//   - Message: Description of what's wrong
//   - ValidKeys: List of valid options (for enum-like fields)
//
// Example:
//
//	return &ValidationError{
//	    Field:     "format",
//	    Message:   "unknown output format \"html\"",
//	    ValidKeys: []string{"table", "markdown", "json"},
//	}
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string

	// Message describes what is wrong with the field.
	Message string

	// ValidKeys lists valid options for enum-like fields.
	ValidKeys []string
}

// Error implements the error interface.
//
// Returns:
//   - string: "field: message (valid: a, b)" or a subset when fields are empty
func (e *ValidationError) Error() string {
	var b strings.Builder
	if e.Field != "" {
		b.WriteString(e.Field)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	if len(e.ValidKeys) > 0 {
		b.WriteString(fmt.Sprintf(" (valid: %s)", strings.Join(e.ValidKeys, ", ")))
	}
	return b.String()
}

// ValidationErrors aggregates multiple validation failures into one error.
type ValidationErrors []*ValidationError

// Error implements the error interface, one failure per line.
func (e ValidationErrors) Error() string {
	lines := make([]string, 0, len(e))
	for _, ve := range e {
		lines = append(lines, "  - "+ve.Error())
	}
	return "configuration validation failed:\n" + strings.Join(lines, "\n")
}

// Unwrap exposes the individual failures to errors.Is/As.
func (e ValidationErrors) Unwrap() []error {
	errs := make([]error, 0, len(e))
	for _, ve := range e {
		errs = append(errs, ve)
	}
	return errs
}
