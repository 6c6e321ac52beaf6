package notification

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/cmlabs-hris/prms-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/prms-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/prms-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/prms-backend-go/internal/store"
)

// Watcher turns store changes into notifications for the users concerned.
// Changes are handed to a goroutine so store listeners never wait on I/O.
type Watcher struct {
	store  *store.Store
	users  user.UserRepository
	svc    notification.Service
	logger *slog.Logger

	mu      sync.Mutex
	stopped bool
	changes chan store.Change
	sub     *store.Subscription
	wg      sync.WaitGroup
	once    sync.Once
}

func NewWatcher(s *store.Store, users user.UserRepository, svc notification.Service, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		store:   s,
		users:   users,
		svc:     svc,
		logger:  logger.With(slog.String("component", "notification_watcher")),
		changes: make(chan store.Change, 256),
	}
}

func (w *Watcher) Start() {
	w.sub = w.store.Subscribe(func(c store.Change) {
		w.mu.Lock()
		defer w.mu.Unlock()
		if w.stopped {
			return
		}
		select {
		case w.changes <- c:
		default:
			w.logger.Warn("change dropped, watcher is behind", slog.String("change", string(c.Kind)), slog.String("entity_id", c.EntityID))
		}
	})
	w.wg.Add(1)
	go w.run()
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for c := range w.changes {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		w.handle(ctx, c)
		cancel()
	}
}

// Stop unsubscribes and waits until already received changes are handled.
func (w *Watcher) Stop() {
	w.once.Do(func() {
		if w.sub != nil {
			w.sub.Unsubscribe()
		}
		w.mu.Lock()
		w.stopped = true
		close(w.changes)
		w.mu.Unlock()
		w.wg.Wait()
	})
}

func (w *Watcher) handle(ctx context.Context, c store.Change) {
	reqs, err := w.requestsFor(ctx, c)
	if err != nil {
		w.logger.Warn("cannot build notifications", slog.String("change", string(c.Kind)), slog.String("entity_id", c.EntityID), slog.String("error", err.Error()))
		return
	}
	for _, req := range reqs {
		if err := w.svc.QueueNotification(ctx, req); err != nil {
			w.logger.Error("failed to queue notification", slog.String("recipient", req.RecipientID), slog.String("error", err.Error()))
		}
	}
}

func (w *Watcher) requestsFor(ctx context.Context, c store.Change) ([]notification.CreateNotificationRequest, error) {
	switch c.Kind {
	case store.ChangeEmployeeCreated, store.ChangeEmployeeUpdated:
		emp, err := w.store.GetEmployee(c.EntityID)
		if err != nil {
			return nil, err
		}
		typ, title := notification.TypeEmployeeUpdated, "Employee updated"
		if c.Kind == store.ChangeEmployeeCreated {
			typ, title = notification.TypeEmployeeAdded, "Employee added"
		}
		return w.toPermitted(ctx, user.PermissionEmployeeManage, typ, title,
			fmt.Sprintf("%s (%s)", emp.Name, emp.Email),
			map[string]string{"employee_id": emp.ID})

	case store.ChangeEmployeeDeleted:
		return w.toPermitted(ctx, user.PermissionEmployeeManage, notification.TypeEmployeeRemoved, "Employee removed",
			fmt.Sprintf("Employee %s was removed", c.EntityID),
			map[string]string{"employee_id": c.EntityID})

	case store.ChangeLeaveSubmitted:
		req, err := w.store.GetLeaveRequest(c.EntityID)
		if err != nil {
			return nil, err
		}
		msg := fmt.Sprintf("%s requested %s from %s to %s", req.EmployeeName, req.Type, req.StartDate, req.EndDate)
		if days, err := req.Days(); err == nil {
			msg += fmt.Sprintf(" (%s)", dayCount(days))
		}
		return w.toPermitted(ctx, user.PermissionLeaveApprove, notification.TypeLeaveRequest, "New leave request", msg,
			map[string]string{"leave_id": req.ID, "employee_id": req.EmployeeID})

	case store.ChangeLeaveStatusUpdated:
		req, err := w.store.GetLeaveRequest(c.EntityID)
		if err != nil {
			return nil, err
		}
		typ, title := notification.TypeLeaveRejected, "Leave request rejected"
		if req.Status == leave.StatusApproved {
			typ, title = notification.TypeLeaveApproved, "Leave request approved"
		}
		msg := fmt.Sprintf("Your %s from %s to %s was %s", req.Type, req.StartDate, req.EndDate, req.Status)
		if req.ApproverName != "" {
			msg += " by " + req.ApproverName
		}
		return w.toEmployees(ctx, []string{req.EmployeeID}, typ, title, msg,
			map[string]string{"leave_id": req.ID, "status": string(req.Status)})

	case store.ChangeTimesheetSubmitted:
		for _, t := range w.store.Timesheets("") {
			if t.ID != c.EntityID {
				continue
			}
			return w.toPermitted(ctx, user.PermissionTimesheetViewAll, notification.TypeTimesheetSubmitted, "Timesheet submitted",
				fmt.Sprintf("Timesheet for %s (%.1f hours) submitted by %s", t.Date, t.HoursWorked, w.employeeName(t.EmployeeID)),
				map[string]string{"timesheet_id": t.ID, "employee_id": t.EmployeeID})
		}
		return nil, fmt.Errorf("timesheet %s not found", c.EntityID)

	case store.ChangeBenefitsUpdated:
		for _, b := range w.store.Benefits("") {
			if b.ID != c.EntityID {
				continue
			}
			return w.toEmployees(ctx, []string{b.EmployeeID}, notification.TypeBenefitsUpdated, "Benefits updated",
				fmt.Sprintf("Your %s enrollment was updated", b.Key()),
				map[string]string{"benefit_id": b.ID})
		}
		return nil, fmt.Errorf("benefit enrollment %s not found", c.EntityID)

	case store.ChangePayrollProcessed:
		// Only the employees paid by this run; earlier runs of the period already notified theirs.
		employeeIDs := make([]string, 0, len(c.Created))
		for _, id := range c.Created {
			r, err := w.store.GetPayroll(id)
			if err != nil {
				return nil, err
			}
			employeeIDs = append(employeeIDs, r.EmployeeID)
		}
		data := map[string]string{"period": c.EntityID}
		hr, err := w.toPermitted(ctx, user.PermissionPayrollProcess, notification.TypePayrollProcessed, "Payroll processed",
			fmt.Sprintf("Payroll for %s: %d new records", c.EntityID, len(c.Created)), data)
		if err != nil {
			return nil, err
		}
		staff, err := w.toEmployees(ctx, employeeIDs, notification.TypePayrollProcessed, "Payslip available",
			fmt.Sprintf("Your payslip for %s is available", c.EntityID), data)
		if err != nil {
			return nil, err
		}
		return append(hr, staff...), nil

	case store.ChangeDocumentAdded:
		for _, d := range w.store.Documents("") {
			if d.ID != c.EntityID {
				continue
			}
			data := map[string]string{"document_id": d.ID, "employee_id": d.EmployeeID}
			return w.toEmployees(ctx, []string{d.EmployeeID}, notification.TypeDocumentUploaded, "Document uploaded",
				fmt.Sprintf("%s was added to your documents", d.Name), data)
		}
		return nil, fmt.Errorf("document %s not found", c.EntityID)
	}

	return nil, nil
}

func (w *Watcher) employeeName(id string) string {
	if emp, err := w.store.GetEmployee(id); err == nil {
		return emp.Name
	}
	return id
}

func (w *Watcher) toPermitted(ctx context.Context, perm user.Permission, typ notification.NotificationType, title, msg string, data map[string]string) ([]notification.CreateNotificationRequest, error) {
	users, err := w.users.List(ctx)
	if err != nil {
		return nil, err
	}
	var reqs []notification.CreateNotificationRequest
	for _, u := range users {
		if user.HasPermission(u.Role, perm) {
			reqs = append(reqs, newRequest(u.ID, typ, title, msg, data))
		}
	}
	return reqs, nil
}

// toEmployees addresses the accounts linked to the given employees. Employees
// without an account are skipped.
func (w *Watcher) toEmployees(ctx context.Context, employeeIDs []string, typ notification.NotificationType, title, msg string, data map[string]string) ([]notification.CreateNotificationRequest, error) {
	users, err := w.users.List(ctx)
	if err != nil {
		return nil, err
	}
	wanted := make(map[string]bool, len(employeeIDs))
	for _, id := range employeeIDs {
		wanted[id] = true
	}
	var reqs []notification.CreateNotificationRequest
	for _, u := range users {
		if u.EmployeeID != nil && wanted[*u.EmployeeID] {
			reqs = append(reqs, newRequest(u.ID, typ, title, msg, data))
		}
	}
	return reqs, nil
}

func newRequest(recipient string, typ notification.NotificationType, title, msg string, data map[string]string) notification.CreateNotificationRequest {
	copied := make(map[string]string, len(data))
	for k, v := range data {
		copied[k] = v
	}
	return notification.CreateNotificationRequest{
		RecipientID: recipient,
		Type:        typ,
		Title:       title,
		Message:     msg,
		Data:        copied,
	}
}

func dayCount(days float64) string {
	if days == 1 {
		return "1 day"
	}
	return strconv.FormatFloat(days, 'f', -1, 64) + " days"
}
