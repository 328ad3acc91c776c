package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/muurk/numedit/internal/notation"
	"github.com/muurk/numedit/internal/numeric"
)

// ValidationError reports one invalid field of a preset.
type ValidationError struct {
	Field   string // YAML key of the offending field
	Message string // Human-readable error message
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "Validation Error: " + e.Message
	}
	return fmt.Sprintf("Validation Error: %s: %s", e.Field, e.Message)
}

// NewValidationError creates a validation error for a field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ValidatePresetName validates a preset name.
// Names are 1-32 characters of letters, digits, '-' and '_'.
func ValidatePresetName(name string) error {
	if name == "" {
		return NewValidationError("name", "preset name cannot be empty")
	}
	if len(name) > 32 {
		return NewValidationError("name", fmt.Sprintf("preset name too long (max 32 chars): %d chars", len(name)))
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' {
			return NewValidationError("name", fmt.Sprintf("preset name contains invalid character %q", r))
		}
	}
	return nil
}

// ValidateDecimal validates an optional decimal literal field.
func ValidateDecimal(field, text string) error {
	if text == "" {
		return nil
	}
	if _, err := numeric.Parse(text); err != nil {
		return NewValidationError(field, fmt.Sprintf("not a decimal number: %q", text))
	}
	return nil
}

// ValidateGroupSeparator validates the glyph used between digit groups.
// It may not be something that also appears inside a decimal numeral.
func ValidateGroupSeparator(sep string) error {
	if sep == "" {
		return nil
	}
	if strings.ContainsAny(sep, "0123456789.-+") {
		return NewValidationError("group_separator", fmt.Sprintf("%q would be confused with the numeral", sep))
	}
	return nil
}

// ValidatePreset validates a complete preset.
// Returns a slice of validation errors (empty if valid).
func ValidatePreset(p *Preset) []error {
	if p == nil {
		return []error{NewValidationError("", "preset is missing")}
	}

	var errs []error

	if _, err := notation.ParseMode(p.Mode); err != nil {
		errs = append(errs, NewValidationError("mode", err.Error()))
	}

	for _, f := range []struct{ name, value string }{
		{"min", p.Min},
		{"max", p.Max},
		{"increment", p.Increment},
		{"initial", p.Initial},
	} {
		if err := ValidateDecimal(f.name, f.value); err != nil {
			errs = append(errs, err)
		}
	}

	if p.Min != "" && p.Max != "" {
		lo, errLo := numeric.Parse(p.Min)
		hi, errHi := numeric.Parse(p.Max)
		if errLo == nil && errHi == nil && lo.Cmp(hi) > 0 {
			errs = append(errs, NewValidationError("max", fmt.Sprintf("maximum %s is below minimum %s", p.Max, p.Min)))
		}
	}

	if p.Increment != "" {
		if inc, err := numeric.Parse(p.Increment); err == nil && inc.Sign() < 0 {
			errs = append(errs, NewValidationError("increment", "increment cannot be negative"))
		}
	}

	if err := ValidateGroupSeparator(p.GroupSeparator); err != nil {
		errs = append(errs, err)
	}

	return errs
}
