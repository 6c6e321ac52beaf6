package document

import (
	"strings"

	"github.com/cmlabs-hris/prms-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	URL        string `json:"url"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("employee_id", r.EmployeeID)
	errs.Required("name", r.Name)
	errs.Required("url", r.URL)
	if len(r.Name) > 255 {
		errs.Add("name", "name must not exceed 255 characters")
	}
	if r.URL != "" && !strings.HasPrefix(r.URL, "/") && !strings.HasPrefix(r.URL, "http://") && !strings.HasPrefix(r.URL, "https://") {
		errs.Add("url", "url must be an absolute path or http(s) URL")
	}

	return errs.Err()
}
