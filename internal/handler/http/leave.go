package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/prms-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/prms-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/prms-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/prms-backend-go/internal/service/realtime"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct{}

func NewLeaveHandler() LeaveHandler {
	return &leaveHandlerImpl{}
}

// List returns every request for approvers and the caller's own otherwise.
func (h *leaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsOrUnauthorized(w, r)
	if !ok {
		return
	}
	employeeID, err := scopeEmployee(claims, user.PermissionLeaveViewAll)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requests := realtime.MustProvider(r.Context()).Store().LeaveRequests(employeeID)
	response.Success(w, leave.NewLeaveRequestResponses(requests))
}

// Submit files a leave request. Callers without leave.view_all may only file for themselves.
func (h *leaveHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsOrUnauthorized(w, r)
	if !ok {
		return
	}

	var req leave.SubmitRequest
	if !decodeJSON(w, r, &req, "Submit leave") {
		return
	}

	own, err := scopeEmployee(claims, user.PermissionLeaveViewAll)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if own != "" {
		req.EmployeeID = own
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := realtime.MustProvider(r.Context()).SubmitLeaveRequest(req)
	if err != nil {
		slog.Error("Submit leave error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave request submitted successfully", leave.NewLeaveRequestResponse(created))
}

// UpdateStatus approves or rejects a pending request. The approver defaults to the caller's name.
func (h *leaveHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsOrUnauthorized(w, r)
	if !ok {
		return
	}

	var req leave.UpdateStatusRequest
	if !decodeJSON(w, r, &req, "Update leave status") {
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	approver := req.ApproverName
	if approver == "" {
		approver = claims.Name
	}
	status, _ := leave.ParseStatus(req.Status)

	updated, err := realtime.MustProvider(r.Context()).UpdateLeaveStatus(chi.URLParam(r, "id"), status, approver)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request "+string(updated.Status), leave.NewLeaveRequestResponse(updated))
}
