package payroll

import "github.com/cmlabs-hris/prms-backend-go/internal/pkg/apperror"

var (
	ErrPayrollRecordNotFound = apperror.New(apperror.CodeNotFound, "payroll record not found")
	ErrInvalidPeriod         = apperror.New(apperror.CodeValidation, "period must be in YYYY-MM format")
	ErrInvalidGross          = apperror.New(apperror.CodeValidation, "gross income must be between 0 and 10000000000000 cents")
)
