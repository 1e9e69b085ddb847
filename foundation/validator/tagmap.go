package validator

var tagMap = map[string]string{
	"required":      "required",
	"omitempty":     "optional",
	"phone_display": "invalid_phone",
	"contact_name":  "invalid_name",
	"oneof":         "invalid_choice",
	"excludesall":   "should_not_contain",
	"max":           "too_long",
	"min":           "too_short",
	"gt":            "too_small",
	"lt":            "too_large",
	"gte":           "too_small_or_equal",
	"lte":           "too_large_or_equal",
	"gtefield":      "too_small",
	"len":           "invalid_length",
	"numeric":       "only_numbers_allowed",
	"boolean":       "invalid_boolean",
}
