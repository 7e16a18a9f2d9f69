package usecase

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/avirani/leadscore/internal/entity"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s %s", v.Field, v.Message)
}

var validate = newValidator()

// newValidator reports field names from the json tag so validation details
// match the wire format.
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

// ValidateCaptureLeadInput checks a submission against the form's field
// constraints. Consent is not checked here; it has its own gate in the
// capture flow.
func ValidateCaptureLeadInput(input CaptureLeadInput) []ValidationError {
	var errors []ValidationError

	if err := validate.Struct(input); err != nil {
		if fieldErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range fieldErrors {
				errors = append(errors, ValidationError{Field: fe.Field(), Message: messageFor(fe)})
			}
		} else {
			errors = append(errors, ValidationError{Field: "input", Message: "could not be validated"})
		}
	}

	// oneof cannot express values containing spaces, so the two status enums
	// are checked by hand.
	if input.MaritalStatus != "" && !containsValue(entity.MaritalStatuses, input.MaritalStatus) {
		errors = append(errors, ValidationError{
			Field:   "maritalStatus",
			Message: "must be one of: " + strings.Join(entity.MaritalStatuses, ", "),
		})
	}
	if input.EmploymentStatus != "" && !containsValue(entity.EmploymentStatuses, input.EmploymentStatus) {
		errors = append(errors, ValidationError{
			Field:   "employmentStatus",
			Message: "must be one of: " + strings.Join(entity.EmploymentStatuses, ", "),
		})
	}

	return errors
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	default:
		return "is invalid"
	}
}

func containsValue(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
