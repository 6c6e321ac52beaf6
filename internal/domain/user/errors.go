package user

import "github.com/cmlabs-hris/prms-backend-go/internal/pkg/apperror"

var (
	ErrUserNotFound            = apperror.New(apperror.CodeNotFound, "user not found")
	ErrInvalidRole             = apperror.New(apperror.CodeValidation, "role must be one of admin, hr, employee")
	ErrInsufficientPermissions = apperror.New(apperror.CodeForbidden, "insufficient permissions")
)
