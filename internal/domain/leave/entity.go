package leave

import "time"

// Status values double as display labels, so their casing is part of the API.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// DefaultType is used when a request does not name a leave type.
const DefaultType = "Personal Leave"

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return Status(s), nil
	}
	return "", ErrInvalidStatus
}

// Terminal reports whether no further transition is allowed.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// CanTransition implements Pending -> {Approved, Rejected}.
func (s Status) CanTransition(to Status) bool {
	return s == StatusPending && to.Terminal()
}

type LeaveRequest struct {
	ID           string     `json:"id"`
	EmployeeID   string     `json:"employee_id"`
	EmployeeName string     `json:"employee_name"`
	StartDate    string     `json:"start_date"`
	EndDate      string     `json:"end_date"`
	Reason       string     `json:"reason"`
	Status       Status     `json:"status"`
	ApproverName string     `json:"approver_name,omitempty"`
	Type         string     `json:"type"`
	SubmittedAt  time.Time  `json:"submitted_at"`
	DecidedAt    *time.Time `json:"decided_at,omitempty"`
}

// Days returns the inclusive calendar day count of the request.
func (l LeaveRequest) Days() (float64, error) {
	start, err := time.Parse("2006-01-02", l.StartDate)
	if err != nil {
		return 0, err
	}
	end, err := time.Parse("2006-01-02", l.EndDate)
	if err != nil {
		return 0, err
	}
	return CalculateDays(start, end)
}
