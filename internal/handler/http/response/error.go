package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/prms-backend-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/prms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch apperror.GetCode(err) {
	case apperror.CodeValidation:
		ValidationError(w, map[string]string{"error": err.Error()})
	case apperror.CodeNotFound:
		NotFound(w, err.Error())
	case apperror.CodeConflict:
		Conflict(w, err.Error())
	case apperror.CodeUnauthorized:
		Unauthorized(w, err.Error())
	case apperror.CodeForbidden:
		Forbidden(w, err.Error())
	case apperror.CodeConfigurationMissing:
		ServiceUnavailable(w, "CONFIGURATION_MISSING", err.Error())
	case apperror.CodeUnavailable:
		ServiceUnavailable(w, "SERVICE_UNAVAILABLE", err.Error())

	default:
		slog.Error("unhandled error", slog.String("error", err.Error()))
		InternalServerError(w, "An unexpected error occurred")
	}
}
