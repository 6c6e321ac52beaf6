package auth

import "github.com/cmlabs-hris/prms-backend-go/internal/pkg/apperror"

var (
	ErrInvalidCredentials  = apperror.New(apperror.CodeUnauthorized, "invalid email or password")
	ErrInvalidToken        = apperror.New(apperror.CodeUnauthorized, "invalid or expired token")
	ErrRefreshTokenRevoked = apperror.New(apperror.CodeUnauthorized, "refresh token has been revoked")
	ErrEmailNotVerified    = apperror.New(apperror.CodeUnauthorized, "google account email is not verified")
	ErrUnknownAccount      = apperror.New(apperror.CodeForbidden, "no account is registered for this email")
	ErrOAuthStateMismatch  = apperror.New(apperror.CodeUnauthorized, "oauth state mismatch")
)
