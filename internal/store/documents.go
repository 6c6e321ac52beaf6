package store

import (
	"strings"

	"github.com/cmlabs-hris/prms-backend-go/internal/domain/document"
	"github.com/cmlabs-hris/prms-backend-go/internal/domain/employee"
)

func (s *Store) AddDocument(req document.CreateRequest) (document.Document, error) {
	if err := req.Validate(); err != nil {
		return document.Document{}, err
	}

	var created document.Document
	err := s.commit(func() (ChangeKind, string, error) {
		if s.employeeIndex(req.EmployeeID) < 0 {
			return "", "", employee.ErrEmployeeNotFound
		}
		created = document.Document{
			ID:         s.newID("doc"),
			EmployeeID: req.EmployeeID,
			Name:       strings.TrimSpace(req.Name),
			Type:       req.Type,
			UploadDate: s.today(),
			URL:        req.URL,
		}
		s.data.Documents = append(s.data.Documents, created)
		return ChangeDocumentAdded, created.ID, nil
	})
	if err != nil {
		return document.Document{}, err
	}
	return created, nil
}

// Documents returns the documents of one employee, or all when employeeID is empty.
func (s *Store) Documents(employeeID string) []document.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []document.Document{}
	for _, d := range s.data.Documents {
		if employeeID == "" || d.EmployeeID == employeeID {
			out = append(out, d)
		}
	}
	return out
}
