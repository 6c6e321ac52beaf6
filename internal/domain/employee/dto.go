package employee

import (
	"github.com/cmlabs-hris/prms-backend-go/internal/pkg/money"
	"github.com/cmlabs-hris/prms-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name       string `json:"name"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Status     string `json:"status,omitempty"`
	JoinDate   string `json:"join_date,omitempty"`
	ImageURL   string `json:"image_url,omitempty"`
	BaseSalary int64  `json:"base_salary,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("name", r.Name)
	if len(r.Name) > 255 {
		errs.Add("name", "name must not exceed 255 characters")
	}

	errs.Required("email", r.Email)
	if !validator.IsEmpty(r.Email) && !validator.IsValidEmail(r.Email) {
		errs.Add("email", "email must be a valid email address")
	}

	if !validator.IsEmpty(r.Phone) && !validator.IsValidPhoneNumber(r.Phone) {
		errs.Add("phone", "phone must be a 10 digit number, e.g. (123) 456-7890")
	}

	if r.Status != "" {
		if _, err := ParseStatus(r.Status); err != nil {
			errs.Add("status", err.Error())
		}
	}

	if r.JoinDate != "" {
		if _, ok := validator.IsValidDate(r.JoinDate); !ok {
			errs.Add("join_date", "join_date must be in YYYY-MM-DD format")
		}
	}

	if !money.Valid(r.BaseSalary) {
		errs.Add("base_salary", baseSalaryRangeMessage)
	}

	return errs.Err()
}

const baseSalaryRangeMessage = "base_salary must be between 0 and 10000000000000 cents"

// UpdateEmployeeRequest carries a partial update; nil fields are left untouched.
type UpdateEmployeeRequest struct {
	Name       *string `json:"name,omitempty"`
	Position   *string `json:"position,omitempty"`
	Department *string `json:"department,omitempty"`
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Status     *string `json:"status,omitempty"`
	ImageURL   *string `json:"image_url,omitempty"`
	BaseSalary *int64  `json:"base_salary,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs.Add("name", "name must not be empty")
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs.Add("email", "email must be a valid email address")
	}
	if r.Phone != nil && !validator.IsEmpty(*r.Phone) && !validator.IsValidPhoneNumber(*r.Phone) {
		errs.Add("phone", "phone must be a 10 digit number, e.g. (123) 456-7890")
	}
	if r.Status != nil {
		if _, err := ParseStatus(*r.Status); err != nil {
			errs.Add("status", err.Error())
		}
	}
	if r.BaseSalary != nil && !money.Valid(*r.BaseSalary) {
		errs.Add("base_salary", baseSalaryRangeMessage)
	}

	return errs.Err()
}

// EmployeeResponse adds display fields at the API boundary.
type EmployeeResponse struct {
	Employee
	StatusLabel       string `json:"status_label"`
	BaseSalaryDisplay string `json:"base_salary_display"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		Employee:          e,
		StatusLabel:       e.Status.Label(),
		BaseSalaryDisplay: money.Format(e.BaseSalary),
	}
}
