package timesheet

import "strings"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusPending, StatusApproved, StatusRejected:
		return st, nil
	}
	return "", ErrInvalidStatus
}

// DayStatus tracks approval of a single day independently of the sheet.
type DayStatus string

const (
	DayApproved DayStatus = "approved"
	DayPending  DayStatus = "pending"
	DayNone     DayStatus = "none"
)

type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

type DayEntry struct {
	Status DayStatus `json:"status"`
	Hours  float64   `json:"hours"`
}

type Timesheet struct {
	ID          string               `json:"id"`
	EmployeeID  string               `json:"employee_id"`
	Date        string               `json:"date"`
	HoursWorked float64              `json:"hours_worked"`
	Status      Status               `json:"status"`
	Week        string               `json:"week,omitempty"`
	Days        map[Weekday]DayEntry `json:"days,omitempty"`
	TotalHours  float64              `json:"total_hours,omitempty"`
}

// Clone returns a copy that shares no map with t.
func (t Timesheet) Clone() Timesheet {
	if t.Days != nil {
		days := make(map[Weekday]DayEntry, len(t.Days))
		for k, v := range t.Days {
			days[k] = v
		}
		t.Days = days
	}
	return t
}

// ApprovedHours counts hours that may be paid. When a per-day breakdown is
// present only approved days count; otherwise the whole sheet counts once approved.
func (t Timesheet) ApprovedHours() float64 {
	if len(t.Days) > 0 {
		var total float64
		for _, d := range t.Days {
			if d.Status == DayApproved {
				total += d.Hours
			}
		}
		return total
	}
	if t.Status != StatusApproved {
		return 0
	}
	if t.TotalHours > 0 {
		return t.TotalHours
	}
	return t.HoursWorked
}

// HasPendingWork reports whether anything on the sheet still awaits approval.
func (t Timesheet) HasPendingWork() bool {
	if t.Status == StatusPending && len(t.Days) == 0 {
		return true
	}
	for _, d := range t.Days {
		if d.Status == DayPending {
			return true
		}
	}
	return false
}
