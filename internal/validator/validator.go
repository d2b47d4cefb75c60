package validator

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"apnajourney_backend/internal/apperrors"
)

// ValidationError carries the per-field failures of one request.
type ValidationError struct {
	Errors []apperrors.FieldError
}

// Error implements the standard error interface.
func (e *ValidationError) Error() string {
	var errMsgs []string
	for _, fe := range e.Errors {
		errMsgs = append(errMsgs, fmt.Sprintf("field '%s': %s", fe.Field, fe.Message))
	}
	return "Validation failed: " + strings.Join(errMsgs, "; ")
}

// Validator wraps go-playground/validator.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator with the custom domain rules registered.
func New() *Validator {
	v := validator.New()

	// Report field names from json tags so clients see the names they
	// actually sent, not the Go struct field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomRules(v)

	return &Validator{
		validate: v,
	}
}

// Validate checks the struct and returns *ValidationError on failure.
// Field order in the result is stable.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make([]apperrors.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, apperrors.FieldError{
			Field:   fe.Field(),
			Message: v.getErrorMessage(fe),
		})
	}
	sort.Slice(fields, func(a, b int) bool { return fields[a].Field < fields[b].Field })

	return &ValidationError{Errors: fields}
}

func (v *Validator) getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map {
			return fmt.Sprintf("Must be at least %s items/characters long", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map {
			return fmt.Sprintf("Must be at most %s items/characters long", fe.Param())
		}
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.Replace(fe.Param(), " ", ", ", -1))
	case "url":
		return "Must be a valid URL"
	case "future":
		return "Expiry date must be in the future"
	case "indian-phone":
		return "Must be a valid 10-digit phone number"
	case "job-category":
		return "Unknown job category"
	case "job-type":
		return "Unknown job type"
	case "district":
		return "Unknown district"
	case "news-category":
		return "Unknown news category"
	case "news-language":
		return "Language must be english or hindi"
	case "inquiry-type":
		return "Unknown inquiry type"
	default:
		return fmt.Sprintf("Invalid value (failed on '%s' tag)", fe.Tag())
	}
}
