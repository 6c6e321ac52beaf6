package notification

import "github.com/cmlabs-hris/prms-backend-go/internal/pkg/apperror"

// Notification domain errors
var (
	ErrNotificationNotFound = apperror.New(apperror.CodeNotFound, "notification not found")
	ErrQueueFull            = apperror.New(apperror.CodeUnavailable, "notification queue is full")
)
