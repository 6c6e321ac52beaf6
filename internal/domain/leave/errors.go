package leave

import "github.com/cmlabs-hris/prms-backend-go/internal/pkg/apperror"

var (
	ErrLeaveRequestNotFound         = apperror.New(apperror.CodeNotFound, "leave request not found")
	ErrLeaveRequestAlreadyProcessed = apperror.New(apperror.CodeConflict, "leave request already processed")
	ErrInvalidStatusTransition      = apperror.New(apperror.CodeValidation, "leave status can only change from Pending to Approved or Rejected")
	ErrInvalidStatus                = apperror.New(apperror.CodeValidation, "status must be one of Pending, Approved, Rejected")
)
