package application

import (
	"reflect"
	"strings"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator configures a validator that reports field names by their
// JSON tag so messages match the wire shape of the request DTOs.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateStruct checks a request DTO against its validate tags and maps
// failures onto the domain validation error.
func ValidateStruct(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return shared.NewValidationError("INVALID_REQUEST", err.Error())
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, e.Field()+": "+validationMessage(e))
	}
	return shared.NewValidationError("INVALID_REQUEST", strings.Join(messages, "; "))
}

// validationMessage returns a human-readable message for a failed tag.
func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "this field is required"
	case "max":
		if e.Type().Kind() == reflect.String {
			return "must be at most " + e.Param() + " characters"
		}
		return "must be at most " + e.Param()
	case "min":
		if e.Type().Kind() == reflect.String {
			return "must be at least " + e.Param() + " characters"
		}
		return "must be at least " + e.Param()
	case "email":
		return "invalid email format"
	case "oneof":
		return "must be one of: " + e.Param()
	default:
		return "invalid value"
	}
}
