package catalog

import (
	"net/http"

	"go-storefront-api/internal/pkg/apperror"
	"go-storefront-api/internal/pkg/response"

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
	return &Handler{service: svc, logger: logger.Named("catalog.handler")}
}

// List returns the browsable catalog, optionally filtered by ?search=.
// GET /products
func (h *Handler) List(c *gin.Context) {
	term := c.Query("search")

	items, err := h.service.Search(c.Request.Context(), term)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "", toListResponse(items))
}

// Refresh triggers a fresh catalog fetch attempt.
// POST /products/refresh
func (h *Handler) Refresh(c *gin.Context) {
	if err := h.service.Refresh(c.Request.Context()); err != nil {
		h.logger.Warn("catalog refresh failed", zap.Error(err))
		response.Error(c, http.StatusServiceUnavailable, apperror.CodeCatalogLoadError, "catalog refresh failed", nil)
		return
	}

	snap := h.service.Snapshot()
	response.Success(c, http.StatusOK, "catalog refreshed", toListResponse(snap.Items))
}
