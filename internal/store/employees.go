package store

import (
	"strings"

	"github.com/cmlabs-hris/prms-backend-go/internal/domain/employee"
)

// AddEmployee validates req and appends a new employee with defaults for
// status, join date and image.
func (s *Store) AddEmployee(req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	status := employee.StatusActive
	if req.Status != "" {
		status, _ = employee.ParseStatus(req.Status)
	}

	var created employee.Employee
	err := s.commit(func() (ChangeKind, string, error) {
		if s.emailTaken(req.Email, "") {
			return "", "", employee.ErrEmailExists
		}

		created = employee.Employee{
			ID:         s.newID("emp"),
			Name:       strings.TrimSpace(req.Name),
			Position:   strings.TrimSpace(req.Position),
			Department: strings.TrimSpace(req.Department),
			Email:      strings.TrimSpace(req.Email),
			Phone:      strings.TrimSpace(req.Phone),
			Status:     status,
			JoinDate:   req.JoinDate,
			ImageURL:   req.ImageURL,
			BaseSalary: req.BaseSalary,
		}
		if created.JoinDate == "" {
			created.JoinDate = s.today()
		}
		if created.ImageURL == "" {
			created.ImageURL = employee.PlaceholderImageURL
		}

		s.data.Employees = append(s.data.Employees, created)
		return ChangeEmployeeCreated, created.ID, nil
	})
	if err != nil {
		return employee.Employee{}, err
	}
	return created, nil
}

// UpdateEmployee applies the non-nil fields of req.
func (s *Store) UpdateEmployee(id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	var updated employee.Employee
	err := s.commit(func() (ChangeKind, string, error) {
		i := s.employeeIndex(id)
		if i < 0 {
			return "", "", employee.ErrEmployeeNotFound
		}
		if req.Email != nil && s.emailTaken(*req.Email, id) {
			return "", "", employee.ErrEmailExists
		}

		e := s.data.Employees[i]
		if req.Name != nil {
			e.Name = strings.TrimSpace(*req.Name)
		}
		if req.Position != nil {
			e.Position = strings.TrimSpace(*req.Position)
		}
		if req.Department != nil {
			e.Department = strings.TrimSpace(*req.Department)
		}
		if req.Email != nil {
			e.Email = strings.TrimSpace(*req.Email)
		}
		if req.Phone != nil {
			e.Phone = strings.TrimSpace(*req.Phone)
		}
		if req.Status != nil {
			e.Status, _ = employee.ParseStatus(*req.Status)
		}
		if req.ImageURL != nil {
			e.ImageURL = *req.ImageURL
			if e.ImageURL == "" {
				e.ImageURL = employee.PlaceholderImageURL
			}
		}
		if req.BaseSalary != nil {
			e.BaseSalary = *req.BaseSalary
		}

		s.data.Employees[i] = e
		updated = e
		return ChangeEmployeeUpdated, id, nil
	})
	if err != nil {
		return employee.Employee{}, err
	}
	return updated, nil
}

// SetEmployeeImage replaces the image URL of an employee.
func (s *Store) SetEmployeeImage(id, url string) (employee.Employee, error) {
	var updated employee.Employee
	err := s.commit(func() (ChangeKind, string, error) {
		i := s.employeeIndex(id)
		if i < 0 {
			return "", "", employee.ErrEmployeeNotFound
		}
		s.data.Employees[i].ImageURL = url
		updated = s.data.Employees[i]
		return ChangeEmployeeAvatarSaved, id, nil
	})
	return updated, err
}

// DeleteEmployee removes an employee. Leave requests, timesheets and other
// records that reference it are kept.
func (s *Store) DeleteEmployee(id string) error {
	return s.commit(func() (ChangeKind, string, error) {
		i := s.employeeIndex(id)
		if i < 0 {
			return "", "", employee.ErrEmployeeNotFound
		}
		s.data.Employees = append(s.data.Employees[:i:i], s.data.Employees[i+1:]...)
		return ChangeEmployeeDeleted, id, nil
	})
}

func (s *Store) GetEmployee(id string) (employee.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.employeeIndex(id)
	if i < 0 {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return s.data.Employees[i], nil
}

func (s *Store) Employees() []employee.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]employee.Employee(nil), s.data.Employees...)
}

// employeeIndex must be called with the lock held.
func (s *Store) employeeIndex(id string) int {
	for i, e := range s.data.Employees {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) emailTaken(email, exceptID string) bool {
	email = strings.TrimSpace(email)
	for _, e := range s.data.Employees {
		if e.ID != exceptID && strings.EqualFold(e.Email, email) {
			return true
		}
	}
	return false
}
