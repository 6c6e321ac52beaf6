package leave

import "github.com/cmlabs-hris/prms-backend-go/internal/pkg/validator"

// SubmitRequest is the input of a new leave request. Status is accepted for
// compatibility with older clients but always ignored.
type SubmitRequest struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Reason       string `json:"reason"`
	Type         string `json:"type,omitempty"`
	Status       string `json:"status,omitempty"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("employee_id", r.EmployeeID)

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs.Add("start_date", "start_date must be in YYYY-MM-DD format")
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs.Add("end_date", "end_date must be in YYYY-MM-DD format")
	}
	if startOK && endOK && end.Before(start) {
		errs.Add("end_date", "end_date must not be before start_date")
	}

	if len(r.Reason) > 1000 {
		errs.Add("reason", "reason must not exceed 1000 characters")
	}

	return errs.Err()
}

type UpdateStatusRequest struct {
	Status       string `json:"status"`
	ApproverName string `json:"approver_name,omitempty"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("status", r.Status)
	if !validator.IsEmpty(r.Status) {
		if _, err := ParseStatus(r.Status); err != nil {
			errs.Add("status", err.Error())
		}
	}

	return errs.Err()
}

// LeaveRequestResponse adds the requested day count at the API boundary.
type LeaveRequestResponse struct {
	LeaveRequest
	Days float64 `json:"days"`
}

func NewLeaveRequestResponse(l LeaveRequest) LeaveRequestResponse {
	days, _ := l.Days()
	return LeaveRequestResponse{LeaveRequest: l, Days: days}
}

func NewLeaveRequestResponses(requests []LeaveRequest) []LeaveRequestResponse {
	out := make([]LeaveRequestResponse, len(requests))
	for i, l := range requests {
		out[i] = NewLeaveRequestResponse(l)
	}
	return out
}
