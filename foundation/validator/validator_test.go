package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "github.com/Mireles-OConnor/CLI-project/foundation/errors"
	"github.com/Mireles-OConnor/CLI-project/foundation/validator"
)

type entry struct {
	Name  string `validate:"required,contact_name,excludesall=0x7C,max=16"`
	Phone string `validate:"required,phone_display"`
}

type settings struct {
	Save struct {
		Attempts int `validate:"min=1,max=10"`
	}
	Env string `validate:"oneof=development debug production"`
}

// reasons runs Check and returns field -> reason.
func reasons(t *testing.T, v any) map[string]string {
	t.Helper()
	var err error
	require.NotPanics(t, func() { err = validator.Check(v) })
	if err == nil {
		return nil
	}
	ve, ok := ferrors.AsValidation(err)
	require.True(t, ok, "expected ValidationError, got %T", err)
	out := make(map[string]string, len(ve.Violations))
	for _, fv := range ve.Violations {
		out[fv.Field] = fv.Reason
	}
	return out
}

func TestCheck_Valid(t *testing.T) {
	assert.Nil(t, reasons(t, entry{Name: "Alice", Phone: "555-1234"}))
	assert.Nil(t, reasons(t, entry{Name: "Mary Ann", Phone: "555-123-4567"}))

	var s settings
	s.Env = "production"
	s.Save.Attempts = 3
	assert.Nil(t, reasons(t, s))
}

func TestCheck_Required(t *testing.T) {
	res := reasons(t, entry{})
	assert.Equal(t, "required", res["Name"])
	assert.Equal(t, "required", res["Phone"])
}

func TestCheck_PhoneDisplay(t *testing.T) {
	for _, phone := range []string{"5551234", "(555) 123-4567", "555-12-34", "12"} {
		res := reasons(t, entry{Name: "Alice", Phone: phone})
		assert.Equal(t, "invalid_phone", res["Phone"], "phone %q", phone)
	}
}

func TestCheck_ContactName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		code string
	}{
		{name: "untrimmed", in: " Alice", code: "invalid_name"},
		{name: "double space", in: "Mary  Ann", code: "invalid_name"},
		{name: "newline", in: "Mary\nAnn", code: "invalid_name"},
		{name: "delimiter", in: "A|B", code: "should_not_contain"},
		{name: "too long", in: "Abcdefghijklmnopq", code: "too_long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := reasons(t, entry{Name: tt.in, Phone: "555-1234"})
			assert.Equal(t, tt.code, res["Name"])
		})
	}
}

func TestCheck_NestedFieldPath(t *testing.T) {
	res := reasons(t, settings{Env: "staging"})
	assert.Equal(t, map[string]string{
		"Save.Attempts": "too_short",
		"Env":           "invalid_choice",
	}, res)
}

func TestCheck_NonStruct(t *testing.T) {
	err := validator.Check(123)
	ve, ok := ferrors.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, []ferrors.FieldViolation{{Field: "_error", Reason: "validation_failed"}}, ve.Violations)
}
