package validator

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/Mireles-OConnor/CLI-project/foundation/contactutil"
	ferrors "github.com/Mireles-OConnor/CLI-project/foundation/errors"
	"github.com/Mireles-OConnor/CLI-project/foundation/textutil"
)

var v *validator.Validate

func init() {
	v = validator.New()
	mustRegister("phone_display", func(fl validator.FieldLevel) bool {
		return contactutil.IsDisplayPhone(fl.Field().String())
	})
	mustRegister("contact_name", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		out, err := textutil.CanonicalizeStrict(s, textutil.CanonicalPolicy{MaxRunes: len(s) + 1})
		return err == nil && out == s
	})
}

func mustRegister(tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Check validates i and returns an errors.ValidationError with nested field paths.
func Check(i any) error {
	err := v.Struct(i)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		return ferrors.FromPlayground(errs, tagMap)
	}
	return ferrors.ValidationFields(map[string]string{"_error": "validation_failed"})
}
