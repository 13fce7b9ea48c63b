package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeNotFound   = "NOT_FOUND"
	CodeValidation = "VALIDATION_ERROR"
	CodeConflict   = "CONFLICT"
)

// Error is a domain failure that knows its HTTP status.
type Error struct {
	Status  int
	Code    string
	Message string
	Fields  map[string][]string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, CodeNotFound, message)
}

// Validation reports a rejected write; field is optional.
func Validation(field, message string) *Error {
	e := New(http.StatusUnprocessableEntity, CodeValidation, message)
	if field != "" {
		e.Fields = map[string][]string{field: {message}}
	}
	return e
}

// Conflict uses code as the error_code when given (e.g. ATTEMPT_COMPLETED).
func Conflict(code, message string) *Error {
	if code == "" {
		code = CodeConflict
	}
	return New(http.StatusConflict, code, message)
}

// As unwraps err into *Error.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func IsNotFound(err error) bool {
	e, ok := As(err)
	return ok && e.Status == http.StatusNotFound
}

func IsValidation(err error) bool {
	e, ok := As(err)
	return ok && e.Status == http.StatusUnprocessableEntity
}

func IsConflict(err error) bool {
	e, ok := As(err)
	return ok && e.Status == http.StatusConflict
}
