package order

import (
	"net/http"

	"go-storefront-api/internal/checkout"
	"go-storefront-api/internal/pkg/apperror"
)

var (
	// ErrCartEmpty blocks checkout on a cart with no resolvable lines; a
	// zero-value order is never produced.
	ErrCartEmpty = apperror.New(http.StatusConflict, apperror.CodeCartEmpty, "cart is empty")
)

// NewValidationError wraps the per-field violations so the handler can
// surface them inline. Never fatal; the buyer corrects the form and
// resubmits.
func NewValidationError(result checkout.ValidationResult) *apperror.AppError {
	return apperror.NewWithDetails(
		http.StatusUnprocessableEntity,
		apperror.CodeValidationError,
		"checkout form is invalid",
		result,
	)
}
