package http

import (
	"net/http"

	"github.com/cmlabs-hris/prms-backend-go/internal/domain/timesheet"
	"github.com/cmlabs-hris/prms-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/prms-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/prms-backend-go/internal/service/realtime"
)

type TimesheetHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct{}

func NewTimesheetHandler() TimesheetHandler {
	return &timesheetHandlerImpl{}
}

func (h *timesheetHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsOrUnauthorized(w, r)
	if !ok {
		return
	}
	employeeID, err := scopeEmployee(claims, user.PermissionTimesheetViewAll)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, realtime.MustProvider(r.Context()).Store().Timesheets(employeeID))
}

func (h *timesheetHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsOrUnauthorized(w, r)
	if !ok {
		return
	}

	var req timesheet.SubmitRequest
	if !decodeJSON(w, r, &req, "Submit timesheet") {
		return
	}
	own, err := scopeEmployee(claims, user.PermissionTimesheetViewAll)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	// Only managers may record approved hours; they feed payroll overtime.
	if own != "" {
		req.EmployeeID = own
		req = req.WithoutApprovals()
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := realtime.MustProvider(r.Context()).SubmitTimesheet(req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Timesheet submitted successfully", created)
}
