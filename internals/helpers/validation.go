package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// One validator instance for the whole app.
var Validate = validator.New()

// MapValidationErrors converts validator errors to the field→messages shape
// consumed by JsonValidationError.
func MapValidationErrors(err error) map[string][]string {
	out := map[string][]string{}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "this field is required"
		case "email":
			msg = "must be a valid email address"
		case "min":
			msg = "must be at least " + fe.Param() + " characters"
		case "max":
			msg = "must be at most " + fe.Param() + " characters"
		case "oneof":
			msg = "must be one of: " + fe.Param()
		case "url":
			msg = "must be a valid URL"
		case "uuid":
			msg = "must be a valid UUID"
		default:
			msg = "invalid value"
		}
		out[field] = append(out[field], msg)
	}
	return out
}
