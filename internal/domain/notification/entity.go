package notification

import (
	"time"
)

// NotificationType represents the type of notification
type NotificationType string

const (
	TypeEmployeeAdded      NotificationType = "employee_added"
	TypeEmployeeUpdated    NotificationType = "employee_updated"
	TypeEmployeeRemoved    NotificationType = "employee_removed"
	TypeLeaveRequest       NotificationType = "leave_request"
	TypeLeaveApproved      NotificationType = "leave_approved"
	TypeLeaveRejected      NotificationType = "leave_rejected"
	TypeTimesheetSubmitted NotificationType = "timesheet_submitted"
	TypeBenefitsUpdated    NotificationType = "benefits_updated"
	TypePayrollProcessed   NotificationType = "payroll_processed"
	TypeDocumentUploaded   NotificationType = "document_uploaded"
)

// Notification represents a notification entity
type Notification struct {
	ID          string
	RecipientID string
	Type        NotificationType
	Title       string
	Message     string
	Data        map[string]string
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time
}
