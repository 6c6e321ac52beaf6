package benefit

import "github.com/cmlabs-hris/prms-backend-go/internal/pkg/validator"

// UpdateRequest is a partial enrollment; nil fields keep their current value.
type UpdateRequest struct {
	Benefit         *string `json:"benefit,omitempty"`
	HealthInsurance *bool   `json:"health_insurance,omitempty"`
	Retirement      *bool   `json:"retirement,omitempty"`
	PaidTimeOff     *int    `json:"paid_time_off,omitempty"`
	Coverage        *string `json:"coverage,omitempty"`
	Status          *string `json:"status,omitempty"`
	Cost            *int64  `json:"cost,omitempty"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PaidTimeOff != nil && (*r.PaidTimeOff < 0 || *r.PaidTimeOff > 365) {
		errs.Add("paid_time_off", "paid_time_off must be between 0 and 365 days")
	}
	if r.Cost != nil && *r.Cost < 0 {
		errs.Add("cost", "cost must not be negative")
	}
	if r.Benefit != nil && len(*r.Benefit) > 100 {
		errs.Add("benefit", "benefit must not exceed 100 characters")
	}

	return errs.Err()
}

// TypeKey is the upsert key the request targets.
func (r *UpdateRequest) TypeKey() string {
	if r.Benefit == nil {
		return CoreKey
	}
	return Key(*r.Benefit)
}
