package config

import (
	stderrors "errors"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ajxudir/spmoutdated/pkg/errors"
	"github.com/ajxudir/spmoutdated/pkg/output"
)

var unknownFieldPattern = regexp.MustCompile(`line (\d+): field (\S+) not found`)

// Validate checks field values.
//
// Returns:
//   - error: errors.ValidationErrors listing every invalid field, or nil
func (c *Config) Validate() error {
	var errs errors.ValidationErrors

	if _, err := output.ParseFormat(c.Format); err != nil {
		var ve *errors.ValidationError
		if stderrors.As(err, &ve) {
			errs = append(errs, ve)
		}
	}
	if c.Concurrency < 1 {
		errs = append(errs, &errors.ValidationError{
			Field:   "concurrency",
			Message: fmt.Sprintf("must be at least 1, got %d", c.Concurrency),
		})
	}
	if c.TimeoutSeconds < 0 {
		errs = append(errs, &errors.ValidationError{
			Field:   "timeout_seconds",
			Message: fmt.Sprintf("must not be negative, got %d", c.TimeoutSeconds),
		})
	}
	if strings.TrimSpace(c.GitCommand) == "" {
		errs = append(errs, &errors.ValidationError{
			Field:   "git_command",
			Message: "must not be empty",
		})
	} else if !strings.Contains(c.GitCommand, "{{location}}") {
		errs = append(errs, &errors.ValidationError{
			Field:   "git_command",
			Message: "must contain the {{location}} placeholder",
		})
	}
	for i, name := range c.Ignore {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, &errors.ValidationError{
				Field:   fmt.Sprintf("ignore[%d]", i),
				Message: "package identity must not be empty",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateConfigFile validates raw YAML without loading it.
//
// It reports syntax errors, unknown keys and invalid values.
//
// Parameters:
//   - data: YAML configuration data as bytes
//
// Returns:
//   - error: errors.ValidationErrors, or nil when the file is valid
func ValidateConfigFile(data []byte) error {
	_, err := Parse(data)
	return err
}

// decodeErrors converts a yaml decode error into validation errors.
func decodeErrors(err error) error {
	var typeErr *yaml.TypeError
	if !stderrors.As(err, &typeErr) {
		return errors.ValidationErrors{{
			Message: fmt.Sprintf("YAML syntax error: %v", err),
		}}
	}

	var errs errors.ValidationErrors
	for _, msg := range typeErr.Errors {
		m := unknownFieldPattern.FindStringSubmatch(msg)
		if m == nil {
			errs = append(errs, &errors.ValidationError{Message: msg})
			continue
		}
		field := m[2]
		message := fmt.Sprintf("unknown field (line %s)", m[1])
		if suggestion := suggestSimilarField(field); suggestion != "" {
			message += fmt.Sprintf(" (did you mean '%s'?)", suggestion)
		}
		errs = append(errs, &errors.ValidationError{
			Field:     field,
			Message:   message,
			ValidKeys: knownFields,
		})
	}
	return errs
}

// suggestSimilarField maps kebab-case and camelCase spellings to a known key.
func suggestSimilarField(field string) string {
	var b strings.Builder
	for i, r := range field {
		switch {
		case r == '-':
			b.WriteRune('_')
		case r >= 'A' && r <= 'Z':
			if i > 0 {
				b.WriteRune('_')
			}
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteRune(r)
		}
	}
	candidate := b.String()
	for _, known := range knownFields {
		if known == candidate {
			return known
		}
	}
	return ""
}
