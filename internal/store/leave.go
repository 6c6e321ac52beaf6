package store

import (
	"strings"

	"github.com/cmlabs-hris/prms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/prms-backend-go/internal/domain/leave"
)

// SubmitLeaveRequest records a new request. The stored status is always
// Pending, whatever the caller sent.
func (s *Store) SubmitLeaveRequest(req leave.SubmitRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	var created leave.LeaveRequest
	err := s.commit(func() (ChangeKind, string, error) {
		i := s.employeeIndex(req.EmployeeID)
		if i < 0 {
			return "", "", employee.ErrEmployeeNotFound
		}

		created = leave.LeaveRequest{
			ID:           s.newID("leave"),
			EmployeeID:   req.EmployeeID,
			EmployeeName: strings.TrimSpace(req.EmployeeName),
			StartDate:    req.StartDate,
			EndDate:      req.EndDate,
			Reason:       strings.TrimSpace(req.Reason),
			Status:       leave.StatusPending,
			Type:         strings.TrimSpace(req.Type),
			SubmittedAt:  s.now(),
		}
		if created.EmployeeName == "" {
			created.EmployeeName = s.data.Employees[i].Name
		}
		if created.Type == "" {
			created.Type = leave.DefaultType
		}

		s.data.LeaveRequests = append(s.data.LeaveRequests, created)
		return ChangeLeaveSubmitted, created.ID, nil
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return created, nil
}

// UpdateLeaveStatus decides a pending request. approverName is recorded only
// when non-empty. On any error the collection is left unchanged.
func (s *Store) UpdateLeaveStatus(id string, status leave.Status, approverName string) (leave.LeaveRequest, error) {
	if _, err := leave.ParseStatus(string(status)); err != nil {
		return leave.LeaveRequest{}, err
	}

	var updated leave.LeaveRequest
	err := s.commit(func() (ChangeKind, string, error) {
		i := s.leaveIndex(id)
		if i < 0 {
			return "", "", leave.ErrLeaveRequestNotFound
		}

		current := s.data.LeaveRequests[i]
		if current.Status.Terminal() {
			return "", "", leave.ErrLeaveRequestAlreadyProcessed
		}
		if !current.Status.CanTransition(status) {
			return "", "", leave.ErrInvalidStatusTransition
		}

		now := s.now()
		current.Status = status
		current.DecidedAt = &now
		if name := strings.TrimSpace(approverName); name != "" {
			current.ApproverName = name
		}

		s.data.LeaveRequests[i] = current
		updated = cloneLeave(current)
		return ChangeLeaveStatusUpdated, id, nil
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return updated, nil
}

func (s *Store) GetLeaveRequest(id string) (leave.LeaveRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.leaveIndex(id)
	if i < 0 {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return cloneLeave(s.data.LeaveRequests[i]), nil
}

func (s *Store) leaveIndex(id string) int {
	for i, l := range s.data.LeaveRequests {
		if l.ID == id {
			return i
		}
	}
	return -1
}

// LeaveRequests returns the requests of one employee, or all when employeeID is empty.
func (s *Store) LeaveRequests(employeeID string) []leave.LeaveRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []leave.LeaveRequest{}
	for _, l := range s.data.LeaveRequests {
		if employeeID == "" || l.EmployeeID == employeeID {
			out = append(out, cloneLeave(l))
		}
	}
	return out
}
