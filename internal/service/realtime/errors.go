package realtime

import "github.com/cmlabs-hris/prms-backend-go/internal/pkg/apperror"

var (
	ErrConfigurationMissing = apperror.New(apperror.CodeConfigurationMissing, "required configuration is missing")
	ErrConnectInProgress    = apperror.New(apperror.CodeConflict, "a connection attempt is already in progress")
	ErrAlreadyConnected     = apperror.New(apperror.CodeConflict, "already connected")
	ErrHandshakeFailed      = apperror.New(apperror.CodeUnavailable, "connection handshake failed")
	ErrProviderMissing      = apperror.New(apperror.CodeInternal, "realtime provider is not installed in this context")
)
