// Package validate wraps go-playground/validator to produce field-keyed
// error maps, the shape the registration forms surface inline.
package validate

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var global = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report errors under the JSON field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct validates v against its `validate` tags and returns a map of
// JSON field name to message. An empty map means the value is valid.
func Struct(v any) map[string]string {
	errs := map[string]string{}
	err := global.Struct(v)
	if err == nil {
		return errs
	}
	vErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["_"] = "invalid input"
		return errs
	}
	for _, ve := range vErrors {
		errs[ve.Field()] = message(ve)
	}
	return errs
}

func message(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Enter a valid email address"
	case "min":
		return "Too short (minimum " + ve.Param() + ")"
	case "max":
		return "Too long (maximum " + ve.Param() + ")"
	case "len":
		return "Must be exactly " + ve.Param() + " characters"
	case "numeric":
		return "Digits only"
	case "oneof":
		return "Must be one of: " + strings.ReplaceAll(ve.Param(), " ", ", ")
	case "gt", "gte":
		return "Value is too small"
	case "lt", "lte":
		return "Value is too large"
	}
	return "Invalid value"
}
