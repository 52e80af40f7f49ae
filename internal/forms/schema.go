// Package forms implements the in-memory state behind the entry forms:
// bounded field arrays, the month value grid and the multi-step entry
// wizard. All validation happens here, field by field, before anything
// is sent to the backend.
package forms

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Errors maps a field name to a message the user can act on.
type Errors map[string]string

// Empty reports whether there are no validation errors.
func (e Errors) Empty() bool {
	return len(e) == 0
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report errors under the form field name, not the Go field name
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})

	return v
}

// Validate checks a schema struct against its validate tags and returns
// the field errors. A nil return means the struct is valid.
func Validate(s any) Errors {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrors := Errors{}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldError := range validationErrors {
			fieldErrors[fieldError.Field()] = message(fieldError)
		}

		return fieldErrors
	}

	fieldErrors["form"] = err.Error()
	return fieldErrors
}

func message(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "this field is required"
	case "oneof":
		return "this value is not allowed"
	case "max":
		return fmt.Sprintf("must not be longer than %s characters", err.Param())
	case "email":
		return "must be a valid email address"
	default:
		return "this value is invalid"
	}
}
