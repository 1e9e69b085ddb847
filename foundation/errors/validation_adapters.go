package errors

import (
	"errors"
	"sort"
	"strings"

	play "github.com/go-playground/validator/v10"
)

type FieldViolation struct {
	Field  string
	Reason string
}

// ValidationError carries every field that failed validation.
type ValidationError struct {
	Violations []FieldViolation
}

func (e ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Reason)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ValidationFields builds a ValidationError from a field->reason map.
// Violations are sorted by field so the message is stable.
func ValidationFields(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	out := make([]FieldViolation, 0, len(fields))
	for f, r := range fields {
		out = append(out, FieldViolation{Field: f, Reason: r})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return ValidationError{Violations: out}
}

// FromPlayground adapts go-playground/validator errors.
// The field path is the struct namespace without its root type, e.g. "Log.Env".
func FromPlayground(err play.ValidationErrors, tagToReason map[string]string) ValidationError {
	violations := make([]FieldViolation, 0, len(err))
	for _, fe := range err {
		tag := fe.Tag()
		reason := tagToReason[tag]
		if reason == "" {
			reason = "invalid"
		}

		field := fe.StructNamespace()
		if i := strings.Index(field, "."); i >= 0 && i+1 < len(field) {
			field = field[i+1:]
		}
		if field == "" {
			field = fe.Field()
		}

		violations = append(violations, FieldViolation{Field: field, Reason: reason})
	}
	return ValidationError{Violations: violations}
}

// AsValidation unwraps a ValidationError from err.
func AsValidation(err error) (ValidationError, bool) {
	var ve ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return ValidationError{}, false
}
