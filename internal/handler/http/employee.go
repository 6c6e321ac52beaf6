package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/prms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/prms-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/prms-backend-go/internal/service/file"
	"github.com/cmlabs-hris/prms-backend-go/internal/service/realtime"
	"github.com/go-chi/chi/v5"
)

const maxMultipartMemory = 10 << 20

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	UploadAvatar(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	fileService file.FileService
}

func NewEmployeeHandler(fileService file.FileService) EmployeeHandler {
	return &employeeHandlerImpl{fileService: fileService}
}

func toEmployeeResponses(list []employee.Employee) []employee.EmployeeResponse {
	out := make([]employee.EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, employee.NewEmployeeResponse(e))
	}
	return out
}

func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	p := realtime.MustProvider(r.Context())
	response.Success(w, toEmployeeResponses(p.Store().Employees()))
}

func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	p := realtime.MustProvider(r.Context())
	emp, err := p.Store().GetEmployee(chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, employee.NewEmployeeResponse(emp))
}

func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if !decodeJSON(w, r, &req, "Create employee") {
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	emp, err := realtime.MustProvider(r.Context()).AddEmployee(req)
	if err != nil {
		slog.Error("Create employee error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Employee added successfully", employee.NewEmployeeResponse(emp))
}

func (h *employeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest
	if !decodeJSON(w, r, &req, "Update employee") {
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	emp, err := realtime.MustProvider(r.Context()).UpdateEmployee(chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee updated successfully", employee.NewEmployeeResponse(emp))
}

func (h *employeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := realtime.MustProvider(r.Context()).DeleteEmployee(chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}

// UploadAvatar stores the "avatar" form file and points the employee's image at it.
func (h *employeeHandlerImpl) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s := realtime.MustProvider(r.Context()).Store()
	if _, err := s.GetEmployee(id); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}
	f, header, err := r.FormFile("avatar")
	if err != nil {
		response.HandleError(w, employee.ErrAvatarRequired)
		return
	}
	defer f.Close()

	upload, err := h.fileService.UploadAvatar(r.Context(), id, f, header.Filename)
	if err != nil {
		slog.Error("Upload avatar error", "employee_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	emp, err := s.SetEmployeeImage(id, upload.URL)
	if err != nil {
		_ = h.fileService.DeleteFile(r.Context(), upload.Key)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Avatar updated successfully", employee.NewEmployeeResponse(emp))
}
