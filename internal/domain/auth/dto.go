package auth

import (
	"github.com/cmlabs-hris/prms-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/prms-backend-go/internal/pkg/validator"
)

const MinPasswordLength = 6

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	// Email
	errs.Required("email", r.Email)
	if len(r.Email) > 254 {
		errs.Add("email", "email must not exceed 254 characters")
	}
	if !validator.IsEmpty(r.Email) && !validator.IsValidEmail(r.Email) {
		errs.Add("email", "email must be a valid email address, e.g. user@example.com")
	}

	// Password
	if validator.IsEmpty(r.Password) {
		errs.Add("password", "password is required")
	} else if len(r.Password) < MinPasswordLength {
		errs.Add("password", "password must be at least 6 characters long")
	} else if len(r.Password) > 255 {
		errs.Add("password", "password must not exceed 255 characters")
	}

	return errs.Err()
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r *RefreshTokenRequest) Validate() error {
	var errs validator.ValidationErrors
	errs.Required("refresh_token", r.RefreshToken)
	return errs.Err()
}

type TokenResponse struct {
	AccessToken           string    `json:"access_token"`
	AccessTokenExpiresIn  int64     `json:"access_token_expires_in"`
	RefreshToken          string    `json:"refresh_token"`
	RefreshTokenExpiresIn int64     `json:"refresh_token_expires_in"`
	Role                  user.Role `json:"role"`
	Name                  string    `json:"name"`
}

type AccessTokenResponse struct {
	AccessToken          string `json:"access_token"`
	AccessTokenExpiresIn int64  `json:"access_token_expires_in"`
}
