package apperror

import "net/http"

const (
	CodeInternalError     = "INTERNAL_ERROR"
	CodeValidationError   = "VALIDATION_ERROR"
	CodeCartEmpty         = "CART_EMPTY"
	CodeCatalogLoadError  = "CATALOG_LOAD_ERROR"
	CodeInvalidTransition = "INVALID_TRANSITION"
	CodeBadRequest        = "BAD_REQUEST"
)

// AppError is the error type services return; handlers map it to an HTTP
// response via ToHTTP. Details is optional structured payload (for example
// the per-field validation map).
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    any
}

func (e *AppError) Error() string {
	return e.Message
}

func New(status int, code, message string) *AppError {
	return &AppError{
		HTTPStatus: status,
		Code:       code,
		Message:    message,
	}
}

func NewWithDetails(status int, code, message string, details any) *AppError {
	return &AppError{
		HTTPStatus: status,
		Code:       code,
		Message:    message,
		Details:    details,
	}
}

func Internal(message string) *AppError {
	return New(http.StatusInternalServerError, CodeInternalError, message)
}
