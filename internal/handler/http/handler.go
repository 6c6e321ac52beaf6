package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/prms-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/prms-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/prms-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/prms-backend-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/prms-backend-go/internal/pkg/jwt"
)

var errNoLinkedEmployee = apperror.New(apperror.CodeForbidden, "your account is not linked to an employee record")

// claimsOrUnauthorized writes a 401 and reports false when the request
// carries no usable access token claims.
func claimsOrUnauthorized(w http.ResponseWriter, r *http.Request) (jwt.Claims, bool) {
	claims, err := jwt.ClaimsFromContext(r.Context())
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return jwt.Claims{}, false
	}
	return claims, true
}

// clientGone reports whether the caller abandoned the request; handlers
// return without writing in that case.
func clientGone(r *http.Request) bool {
	return r.Context().Err() != nil
}

// scopeEmployee returns "" when the caller may see every employee's rows for
// viewAll, otherwise the caller's own employee id.
func scopeEmployee(claims jwt.Claims, viewAll user.Permission) (string, error) {
	if user.HasPermission(claims.Role, viewAll) {
		return "", nil
	}
	if claims.EmployeeID == nil {
		return "", errNoLinkedEmployee
	}
	return *claims.EmployeeID, nil
}

// decodeJSON writes a 400 and reports false when the body is not valid JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any, op string) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		slog.Error(op+" decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return false
	}
	return true
}

// getIntQueryParam gets an int query parameter with a default value
func getIntQueryParam(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return intVal
}

// getBoolQueryParam gets a bool query parameter with a default value
func getBoolQueryParam(r *http.Request, key string, defaultVal bool) bool {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}
	return val == "true" || val == "1"
}
