package user

type Permission string

const (
	PermissionViewOwnProfile Permission = "profile.view_own"

	// Employees
	PermissionEmployeeViewAll Permission = "employee.view_all"
	PermissionEmployeeManage  Permission = "employee.manage"

	// Leave
	PermissionLeaveCreate  Permission = "leave.create"
	PermissionLeaveViewAll Permission = "leave.view_all"
	PermissionLeaveApprove Permission = "leave.approve"

	// Timesheets
	PermissionTimesheetSubmit  Permission = "timesheet.submit"
	PermissionTimesheetViewAll Permission = "timesheet.view_all"

	// Benefits
	PermissionBenefitsView   Permission = "benefits.view"
	PermissionBenefitsManage Permission = "benefits.manage"

	// Payroll
	PermissionPayrollView    Permission = "payroll.view"
	PermissionPayrollProcess Permission = "payroll.process"
	PermissionPayrollExport  Permission = "payroll.export"

	// Documents
	PermissionDocumentView   Permission = "document.view"
	PermissionDocumentUpload Permission = "document.upload"

	PermissionReportsView Permission = "reports.view"
	PermissionUserManage  Permission = "user.manage"
)

var hrPermissions = []Permission{
	PermissionViewOwnProfile,
	PermissionEmployeeViewAll,
	PermissionEmployeeManage,
	PermissionLeaveCreate,
	PermissionLeaveViewAll,
	PermissionLeaveApprove,
	PermissionTimesheetSubmit,
	PermissionTimesheetViewAll,
	PermissionBenefitsView,
	PermissionBenefitsManage,
	PermissionPayrollView,
	PermissionPayrollProcess,
	PermissionPayrollExport,
	PermissionDocumentView,
	PermissionDocumentUpload,
	PermissionReportsView,
}

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: append([]Permission{PermissionUserManage}, hrPermissions...),
	RoleHR:    hrPermissions,
	RoleEmployee: {
		PermissionViewOwnProfile,
		PermissionEmployeeViewAll,
		PermissionLeaveCreate,
		PermissionTimesheetSubmit,
		PermissionBenefitsView,
		PermissionDocumentView,
		PermissionDocumentUpload,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
