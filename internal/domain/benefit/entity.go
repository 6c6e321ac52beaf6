package benefit

import "strings"

// CoreKey identifies the enrollment that has no named benefit type.
const CoreKey = "core"

// Enrollment is an employee's participation in one benefit. Cost is in cents.
type Enrollment struct {
	ID              string `json:"id"`
	EmployeeID      string `json:"employee_id"`
	Benefit         string `json:"benefit,omitempty"`
	HealthInsurance bool   `json:"health_insurance"`
	Retirement      bool   `json:"retirement"`
	PaidTimeOff     int    `json:"paid_time_off"`
	Coverage        string `json:"coverage,omitempty"`
	Status          string `json:"status,omitempty"`
	Cost            int64  `json:"cost"`
}

// Key returns the normalized benefit type used for upserts.
func Key(benefit string) string {
	k := strings.ToLower(strings.TrimSpace(benefit))
	if k == "" {
		return CoreKey
	}
	return k
}

func (e Enrollment) Key() string {
	return Key(e.Benefit)
}

// Apply merges the non-nil fields of req into e.
func (e *Enrollment) Apply(req UpdateRequest) {
	if req.Benefit != nil {
		e.Benefit = strings.TrimSpace(*req.Benefit)
	}
	if req.HealthInsurance != nil {
		e.HealthInsurance = *req.HealthInsurance
	}
	if req.Retirement != nil {
		e.Retirement = *req.Retirement
	}
	if req.PaidTimeOff != nil {
		e.PaidTimeOff = *req.PaidTimeOff
	}
	if req.Coverage != nil {
		e.Coverage = *req.Coverage
	}
	if req.Status != nil {
		e.Status = *req.Status
	}
	if req.Cost != nil {
		e.Cost = *req.Cost
	}
}
