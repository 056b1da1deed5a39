package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the struct tags of a request body.
// The returned messages name the JSON field and the failed rule.
func Validate(req any) []string {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, describe(fe))
	}
	return messages
}

// ValidationMessage joins Validate output into a single message, empty when valid
func ValidationMessage(name string, req any) string {
	messages := Validate(req)
	if len(messages) == 0 {
		return ""
	}
	return fmt.Sprintf("%s is invalid: %s", name, strings.Join(messages, ", "))
}

func describe(fe validator.FieldError) string {
	field := jsonName(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "max":
		return fmt.Sprintf("The field %s must be a string with a maximum length of %s.", field, fe.Param())
	case "min":
		return fmt.Sprintf("Please enter a %s value bigger than %s", field, fe.Param())
	default:
		return fmt.Sprintf("The %s field failed %s validation.", field, fe.Tag())
	}
}

// jsonName lowercases the leading rune and rewrites the ID suffix: CategoryID -> categoryId
func jsonName(field string) string {
	if strings.HasSuffix(field, "ID") {
		field = strings.TrimSuffix(field, "ID") + "Id"
	}
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}
