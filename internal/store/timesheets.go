package store

import (
	"github.com/cmlabs-hris/prms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/prms-backend-go/internal/domain/timesheet"
)

// SubmitTimesheet stores a timesheet for a known employee. Date defaults to
// today and status to pending; week, days and total hours are kept as given.
func (s *Store) SubmitTimesheet(req timesheet.SubmitRequest) (timesheet.Timesheet, error) {
	if err := req.Validate(); err != nil {
		return timesheet.Timesheet{}, err
	}

	status := timesheet.StatusPending
	if req.Status != "" {
		status, _ = timesheet.ParseStatus(req.Status)
	}

	var created timesheet.Timesheet
	err := s.commit(func() (ChangeKind, string, error) {
		if s.employeeIndex(req.EmployeeID) < 0 {
			return "", "", employee.ErrEmployeeNotFound
		}

		created = timesheet.Timesheet{
			ID:          s.newID("timesheet"),
			EmployeeID:  req.EmployeeID,
			Date:        req.Date,
			HoursWorked: req.HoursWorked,
			Status:      status,
			Week:        req.Week,
			Days:        req.Days,
			TotalHours:  req.TotalHours,
		}.Clone()
		if created.Date == "" {
			created.Date = s.today()
		}

		s.data.Timesheets = append(s.data.Timesheets, created)
		return ChangeTimesheetSubmitted, created.ID, nil
	})
	if err != nil {
		return timesheet.Timesheet{}, err
	}
	return created.Clone(), nil
}

// Timesheets returns the timesheets of one employee, or all when employeeID is empty.
func (s *Store) Timesheets(employeeID string) []timesheet.Timesheet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []timesheet.Timesheet{}
	for _, t := range s.data.Timesheets {
		if employeeID == "" || t.EmployeeID == employeeID {
			out = append(out, t.Clone())
		}
	}
	return out
}
