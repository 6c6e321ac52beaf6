package timesheet

import "github.com/cmlabs-hris/prms-backend-go/internal/pkg/apperror"

var (
	ErrInvalidStatus = apperror.New(apperror.CodeValidation, "status must be one of pending, approved, rejected")
)
