package serverutils

import (
	"fmt"
	"strings"

	"proofly-be/internal/pkg/apperrors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest checks a bound DTO against its `validate` tags and turns
// failures into a field-keyed validation error.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	invalid, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.Validation("Invalid request body")
	}

	fields := make(map[string]string, len(invalid))
	for _, fe := range invalid {
		name := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			fields[name] = "This field is required"
		case "email":
			fields[name] = "Please enter a valid email"
		default:
			fields[name] = fmt.Sprintf("Failed validation: %s", fe.Tag())
		}
	}
	return apperrors.ValidationFields("Validation failed", fields)
}
