package payroll

import (
	"github.com/cmlabs-hris/prms-backend-go/internal/pkg/money"
	"github.com/cmlabs-hris/prms-backend-go/internal/pkg/validator"
)

type BatchRequest struct {
	Period string `json:"period,omitempty"`
}

func (r *BatchRequest) Validate() error {
	if r.Period == "" {
		return nil
	}
	if _, ok := validator.IsValidPeriod(r.Period); !ok {
		return ErrInvalidPeriod
	}
	return nil
}

type BatchResponse struct {
	Period    string `json:"period"`
	Processed int    `json:"processed"`
}

type RecordResponse struct {
	Record
	BasicSalaryDisplay string `json:"basic_salary_display"`
	DeductionsDisplay  string `json:"deductions_display"`
	BonusesDisplay     string `json:"bonuses_display"`
	NetSalaryDisplay   string `json:"net_salary_display"`
}

func NewRecordResponse(r Record) RecordResponse {
	return RecordResponse{
		Record:             r,
		BasicSalaryDisplay: money.Format(r.BasicSalary),
		DeductionsDisplay:  money.Format(r.Deductions),
		BonusesDisplay:     money.Format(r.Bonuses),
		NetSalaryDisplay:   money.Format(r.NetSalary),
	}
}

type TaxRequest struct {
	GrossIncome int64  `json:"gross_income"`
	State       string `json:"state"`
}

func (r *TaxRequest) Validate() error {
	var errs validator.ValidationErrors
	if !money.Valid(r.GrossIncome) {
		errs.Add("gross_income", ErrInvalidGross.Error())
	}
	if len(r.State) > 64 {
		errs.Add("state", "state must not exceed 64 characters")
	}
	return errs.Err()
}
