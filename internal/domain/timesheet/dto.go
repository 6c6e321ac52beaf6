package timesheet

import (
	"fmt"

	"github.com/cmlabs-hris/prms-backend-go/internal/pkg/validator"
)

type SubmitRequest struct {
	EmployeeID  string               `json:"employee_id"`
	Date        string               `json:"date,omitempty"`
	HoursWorked float64              `json:"hours_worked,omitempty"`
	Status      string               `json:"status,omitempty"`
	Week        string               `json:"week,omitempty"`
	Days        map[Weekday]DayEntry `json:"days,omitempty"`
	TotalHours  float64              `json:"total_hours,omitempty"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("employee_id", r.EmployeeID)

	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs.Add("date", "date must be in YYYY-MM-DD format")
		}
	}
	if r.HoursWorked < 0 || r.HoursWorked > maxPeriodHours {
		errs.Add("hours_worked", "hours_worked must be between 0 and 744")
	}
	if r.TotalHours < 0 {
		errs.Add("total_hours", "total_hours must not be negative")
	}
	if r.Status != "" {
		if _, err := ParseStatus(r.Status); err != nil {
			errs.Add("status", err.Error())
		}
	}

	for day, entry := range r.Days {
		field := fmt.Sprintf("days.%s", day)
		if !validator.IsInSlice(string(day), weekdayNames()) {
			errs.Add(field, "unknown weekday")
			continue
		}
		switch entry.Status {
		case DayApproved, DayPending, DayNone:
		default:
			errs.Add(field, "status must be one of approved, pending, none")
		}
		if entry.Hours < 0 || entry.Hours > 24 {
			errs.Add(field, "hours must be between 0 and 24")
		}
	}

	return errs.Err()
}

// maxPeriodHours is the number of hours in a 31 day month.
const maxPeriodHours = 744

func weekdayNames() []string {
	names := make([]string, len(Weekdays))
	for i, d := range Weekdays {
		names[i] = string(d)
	}
	return names
}

// WithoutApprovals returns a copy of r that approves nothing: an approved
// sheet becomes pending and approved days become pending.
func (r SubmitRequest) WithoutApprovals() SubmitRequest {
	if st, err := ParseStatus(r.Status); err == nil && st == StatusApproved {
		r.Status = string(StatusPending)
	}
	if r.Days != nil {
		days := make(map[Weekday]DayEntry, len(r.Days))
		for k, v := range r.Days {
			if v.Status == DayApproved {
				v.Status = DayPending
			}
			days[k] = v
		}
		r.Days = days
	}
	return r
}
