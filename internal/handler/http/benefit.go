package http

import (
	"net/http"

	"github.com/cmlabs-hris/prms-backend-go/internal/domain/benefit"
	"github.com/cmlabs-hris/prms-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/prms-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/prms-backend-go/internal/service/realtime"
	"github.com/go-chi/chi/v5"
)

type BenefitHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type benefitHandlerImpl struct{}

func NewBenefitHandler() BenefitHandler {
	return &benefitHandlerImpl{}
}

// List returns all enrollments for benefit managers, the caller's own otherwise.
func (h *benefitHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsOrUnauthorized(w, r)
	if !ok {
		return
	}
	employeeID, err := scopeEmployee(claims, user.PermissionBenefitsManage)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, realtime.MustProvider(r.Context()).Store().Benefits(employeeID))
}

func (h *benefitHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req benefit.UpdateRequest
	if !decodeJSON(w, r, &req, "Update benefits") {
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	enrollment, err := realtime.MustProvider(r.Context()).UpdateBenefits(chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Benefits updated successfully", enrollment)
}
