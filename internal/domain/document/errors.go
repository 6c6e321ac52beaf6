package document

import "github.com/cmlabs-hris/prms-backend-go/internal/pkg/apperror"

var (
	ErrDocumentNotFound    = apperror.New(apperror.CodeNotFound, "document not found")
	ErrFileRequired        = apperror.New(apperror.CodeValidation, "file is required")
	ErrUnsupportedFileType = apperror.New(apperror.CodeValidation, "file type is not supported")
	ErrFileTooLarge        = apperror.New(apperror.CodeValidation, "file exceeds the maximum upload size")
)
