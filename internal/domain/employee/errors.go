package employee

import "github.com/cmlabs-hris/prms-backend-go/internal/pkg/apperror"

var (
	ErrEmployeeNotFound = apperror.New(apperror.CodeNotFound, "employee not found")
	ErrEmailExists      = apperror.New(apperror.CodeConflict, "email already registered")
	ErrInvalidStatus    = apperror.New(apperror.CodeValidation, "status must be one of active, on-leave, terminated")
	ErrAvatarRequired   = apperror.New(apperror.CodeValidation, "avatar file is required")
)
