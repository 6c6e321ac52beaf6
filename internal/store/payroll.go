package store

import (
	"fmt"

	"github.com/cmlabs-hris/prms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/prms-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/prms-backend-go/internal/pkg/validator"
)

// ProcessBatchPayroll creates one record per active salaried employee that has
// none for period ("YYYY-MM"; empty means the current month). Overtime comes
// from approved timesheet hours dated inside the period. It returns the number
// of records created; re-running a period creates none.
func (s *Store) ProcessBatchPayroll(period string) (int, error) {
	if period == "" {
		period = s.now().Format(payroll.PeriodLayout)
	}
	if _, ok := validator.IsValidPeriod(period); !ok {
		return 0, payroll.ErrInvalidPeriod
	}

	var created []string
	err := s.commitChange(func() (Change, error) {
		done := make(map[string]bool)
		for _, r := range s.data.Payrolls {
			if r.Period == period {
				done[r.EmployeeID] = true
			}
		}

		now := s.now()
		for _, e := range s.data.Employees {
			if e.Status != employee.StatusActive || e.BaseSalary <= 0 || done[e.ID] {
				continue
			}

			var hours float64
			var pending bool
			for _, t := range s.data.Timesheets {
				if t.EmployeeID != e.ID || !payroll.InPeriod(t.Date, period) {
					continue
				}
				hours += t.ApprovedHours()
				pending = pending || t.HasPendingWork()
			}

			record := payroll.Compute(e.ID, e.Name, period, e.BaseSalary, hours, pending)
			record.ID = s.newID("payroll")
			record.ProcessedAt = now
			s.data.Payrolls = append(s.data.Payrolls, record)
			created = append(created, record.ID)
		}

		if len(created) == 0 {
			return Change{}, nil
		}
		return Change{Kind: ChangePayrollProcessed, EntityID: period, Created: created}, nil
	})
	if err != nil {
		return 0, fmt.Errorf("process payroll %s: %w", period, err)
	}
	return len(created), nil
}

func (s *Store) GetPayroll(id string) (payroll.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.data.Payrolls {
		if r.ID == id {
			return r, nil
		}
	}
	return payroll.Record{}, payroll.ErrPayrollRecordNotFound
}

// Payrolls returns the records of one period, or all when period is empty.
func (s *Store) Payrolls(period string) []payroll.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []payroll.Record{}
	for _, r := range s.data.Payrolls {
		if period == "" || r.Period == period {
			out = append(out, r)
		}
	}
	return out
}
