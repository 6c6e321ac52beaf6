package store

import (
	"github.com/cmlabs-hris/prms-backend-go/internal/domain/benefit"
	"github.com/cmlabs-hris/prms-backend-go/internal/domain/employee"
)

// UpdateBenefits upserts the enrollment identified by employeeID and the
// benefit type of req. Fields absent from req keep their current value.
func (s *Store) UpdateBenefits(employeeID string, req benefit.UpdateRequest) (benefit.Enrollment, error) {
	if err := req.Validate(); err != nil {
		return benefit.Enrollment{}, err
	}

	var saved benefit.Enrollment
	err := s.commit(func() (ChangeKind, string, error) {
		if s.employeeIndex(employeeID) < 0 {
			return "", "", employee.ErrEmployeeNotFound
		}

		key := req.TypeKey()
		for i, b := range s.data.Benefits {
			if b.EmployeeID == employeeID && b.Key() == key {
				b.Apply(req)
				s.data.Benefits[i] = b
				saved = b
				return ChangeBenefitsUpdated, b.ID, nil
			}
		}

		saved = benefit.Enrollment{
			ID:         s.newID("benefit"),
			EmployeeID: employeeID,
		}
		saved.Apply(req)
		s.data.Benefits = append(s.data.Benefits, saved)
		return ChangeBenefitsUpdated, saved.ID, nil
	})
	if err != nil {
		return benefit.Enrollment{}, err
	}
	return saved, nil
}

// Benefits returns the enrollments of one employee, or all when employeeID is empty.
func (s *Store) Benefits(employeeID string) []benefit.Enrollment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []benefit.Enrollment{}
	for _, b := range s.data.Benefits {
		if employeeID == "" || b.EmployeeID == employeeID {
			out = append(out, b)
		}
	}
	return out
}
