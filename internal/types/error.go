package types

import (
	"errors"
	"fmt"
	"net/http"
)

// Error types carried by CustomError.Type
const (
	TypeNotFound     = "notFound"
	TypeConflict     = "conflict"
	TypeValidation   = "validation"
	TypeUnauthorized = "unauthorized"
)

// CustomError is a domain error that the API boundary maps onto an HTTP status.
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// NotFound reports a referenced entity that does not exist
func NotFound(message string) *CustomError {
	return &CustomError{Code: http.StatusNotFound, Message: message, Type: TypeNotFound}
}

// Conflict reports a uniqueness violation
func Conflict(message string) *CustomError {
	return &CustomError{Code: http.StatusConflict, Message: message, Type: TypeConflict}
}

// Validation reports a malformed request
func Validation(message string) *CustomError {
	return &CustomError{Code: http.StatusBadRequest, Message: message, Type: TypeValidation}
}

// Unauthorized reports a missing or rejected bearer token
func Unauthorized(message string) *CustomError {
	return &CustomError{Code: http.StatusUnauthorized, Message: message, Type: TypeUnauthorized}
}

// AsCustomError unwraps err into a CustomError when it carries one
func AsCustomError(err error) (*CustomError, bool) {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// IsNotFound reports whether err carries a not found CustomError
func IsNotFound(err error) bool {
	ce, ok := AsCustomError(err)
	return ok && ce.Type == TypeNotFound
}

// IsConflict reports whether err carries a conflict CustomError
func IsConflict(err error) bool {
	ce, ok := AsCustomError(err)
	return ok && ce.Type == TypeConflict
}
