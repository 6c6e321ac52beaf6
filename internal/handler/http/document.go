package http

import (
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/cmlabs-hris/prms-backend-go/internal/domain/document"
	"github.com/cmlabs-hris/prms-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/prms-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/prms-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/prms-backend-go/internal/service/file"
	"github.com/cmlabs-hris/prms-backend-go/internal/service/realtime"
)

type DocumentHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Upload(w http.ResponseWriter, r *http.Request)
}

type documentHandlerImpl struct {
	fileService file.FileService
}

func NewDocumentHandler(fileService file.FileService) DocumentHandler {
	return &documentHandlerImpl{fileService: fileService}
}

func (h *documentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsOrUnauthorized(w, r)
	if !ok {
		return
	}
	employeeID, err := scopeEmployee(claims, user.PermissionEmployeeManage)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if q := r.URL.Query().Get("employee_id"); q != "" && employeeID == "" {
		employeeID = q
	}
	response.Success(w, realtime.MustProvider(r.Context()).Store().Documents(employeeID))
}

// Upload accepts a multipart form with "file" plus optional employee_id, name and type.
func (h *documentHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsOrUnauthorized(w, r)
	if !ok {
		return
	}
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	employeeID, err := scopeEmployee(claims, user.PermissionEmployeeManage)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if employeeID == "" {
		employeeID = r.FormValue("employee_id")
	}

	f, header, err := r.FormFile("file")
	if err != nil {
		response.HandleError(w, document.ErrFileRequired)
		return
	}
	defer f.Close()

	req := document.CreateRequest{
		EmployeeID: employeeID,
		Name:       r.FormValue("name"),
		Type:       r.FormValue("type"),
	}
	if req.Name == "" {
		req.Name = header.Filename
	}
	if req.Type == "" {
		req.Type = strings.ToUpper(strings.TrimPrefix(filepath.Ext(header.Filename), "."))
	}

	var errs validator.ValidationErrors
	errs.Required("employee_id", req.EmployeeID)
	if err := errs.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	p := realtime.MustProvider(r.Context())
	if _, err := p.Store().GetEmployee(req.EmployeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	upload, err := h.fileService.UploadDocument(r.Context(), req.EmployeeID, f, header.Filename)
	if err != nil {
		slog.Error("Upload document error", "employee_id", req.EmployeeID, "error", err)
		response.HandleError(w, err)
		return
	}
	req.URL = upload.URL

	created, err := p.AddDocument(req)
	if err != nil {
		_ = h.fileService.DeleteFile(r.Context(), upload.Key)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Document uploaded successfully", created)
}
