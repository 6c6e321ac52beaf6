package fixtures

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/prms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/prms-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/prms-backend-go/internal/store"
)

func strPtr(s string) *string { return &s }

// Employees returns the three demo employees. Salaries are monthly, in cents.
func Employees() []employee.Employee {
	return []employee.Employee{
		{
			ID:         "emp-001",
			Name:       "John Doe",
			Position:   "Software Engineer",
			Department: "Engineering",
			Email:      "john.doe@example.com",
			Phone:      "(123) 456-7890",
			Status:     employee.StatusActive,
			JoinDate:   "2023-01-15",
			ImageURL:   employee.PlaceholderImageURL,
			BaseSalary: 750000,
		},
		{
			ID:         "emp-002",
			Name:       "Jane Smith",
			Position:   "HR Manager",
			Department: "Human Resources",
			Email:      "jane.smith@example.com",
			Phone:      "(234) 567-8901",
			Status:     employee.StatusActive,
			JoinDate:   "2022-05-10",
			ImageURL:   employee.PlaceholderImageURL,
			BaseSalary: 680000,
		},
		{
			ID:         "emp-003",
			Name:       "David Johnson",
			Position:   "Financial Analyst",
			Department: "Finance",
			Email:      "david.johnson@example.com",
			Phone:      "(345) 678-9012",
			Status:     employee.StatusOnLeave,
			JoinDate:   "2022-08-22",
			ImageURL:   employee.PlaceholderImageURL,
			BaseSalary: 620000,
		},
	}
}

// Data is the initial store content: the demo employees and empty collections.
func Data() store.Data {
	d := store.EmptyData()
	d.Employees = Employees()
	return d
}

// Accounts returns the demo sign-in accounts without password hashes. The
// employee account is linked to John Doe.
func Accounts() []user.User {
	return []user.User{
		{ID: "user-admin", Email: "admin@company.com", Name: "System Admin", Role: user.RoleAdmin},
		{ID: "user-hr", Email: "hr@company.com", Name: "Jane Smith", Role: user.RoleHR, EmployeeID: strPtr("emp-002")},
		{ID: "user-employee", Email: "employee@company.com", Name: "John Doe", Role: user.RoleEmployee, EmployeeID: strPtr("emp-001")},
	}
}

// SeedAccounts stores the demo accounts with passwordHash.
func SeedAccounts(ctx context.Context, repo user.UserRepository, passwordHash string) error {
	for _, u := range Accounts() {
		u.PasswordHash = passwordHash
		if _, err := repo.Upsert(ctx, u); err != nil {
			return fmt.Errorf("seed account %s: %w", u.Email, err)
		}
	}
	return nil
}
