package apperror

import (
	"errors"

	"github.com/cmlabs-hris/prms-backend-go/internal/pkg/validator"
)

type Code string

const (
	CodeValidation           Code = "validation"
	CodeNotFound             Code = "not_found"
	CodeConflict             Code = "conflict"
	CodeConfigurationMissing Code = "configuration_missing"
	CodeUnauthorized         Code = "unauthorized"
	CodeForbidden            Code = "forbidden"
	CodeUnavailable          Code = "unavailable"
	CodeInternal             Code = "internal"
)

type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Is lets sentinel errors built with New match by code through errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Message == "" && t.Code == e.Code
}

// Kind returns a message-less error usable as an errors.Is target for a whole code.
func Kind(code Code) *Error {
	return &Error{Code: code}
}

func GetCode(err error) Code {
	if err == nil {
		return ""
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return CodeValidation
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}

	return CodeInternal
}
