package order

import (
	"net/http"

	"go-storefront-api/internal/checkout"
	"go-storefront-api/internal/pkg/apperror"
	"go-storefront-api/internal/pkg/response"
	"go-storefront-api/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(svc Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{service: svc, logger: logger.Named("order.handler")}
}

// Checkout validates the submitted buyer form and turns the session's cart
// into an immutable order.
// POST /checkout
func (h *Handler) Checkout(c *gin.Context) {
	sess := session.FromContext(c)

	var form checkout.BuyerForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.logger.Warn("checkout body unreadable", zap.Error(err))
		response.Error(c, http.StatusBadRequest, apperror.CodeBadRequest, "request body is not a valid checkout form", err.Error())
		return
	}

	ord, err := h.service.Checkout(c.Request.Context(), sess, form)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusCreated, "order placed", ord)
}
