package user

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access including user management
	RoleHR       Role = "hr"       // Manages employees, leave, payroll
	RoleEmployee Role = "employee" // Self service
)

func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleAdmin, RoleHR, RoleEmployee:
		return r, nil
	}
	return "", ErrInvalidRole
}

func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         Role

	// Linked employee record, if any
	EmployeeID *string
}

// IsAdmin checks if user is an administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanApprove checks if user can decide leave requests
func (u *User) CanApprove() bool {
	return HasPermission(u.Role, PermissionLeaveApprove)
}
