package cart

import (
	"net/http"
	"strconv"

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
	return &Handler{service: svc, logger: logger.Named("cart.handler")}
}

// storeFromContext pulls the session's cart store placed there by the
// session middleware.
func storeFromContext(c *gin.Context) *Store {
	v, ok := c.Get("session_cart")
	if !ok {
		return nil
	}
	store, _ := v.(*Store)
	return store
}

func parseProductID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeBadRequest, "product id must be an integer", nil)
		return 0, false
	}
	return id, true
}

// Detail returns cart lines plus the live price summary.
// GET /cart
func (h *Handler) Detail(c *gin.Context) {
	store := storeFromContext(c)

	res, err := h.service.Detail(c.Request.Context(), store)
	if err != nil {
		h.logger.Warn("cart detail unavailable", zap.String("session_id", c.GetString("session_id")), zap.Error(err))
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "", res)
}

// Count returns the total number of units in the cart.
// GET /cart/count
func (h *Handler) Count(c *gin.Context) {
	store := storeFromContext(c)
	response.Success(c, http.StatusOK, "", h.service.Count(store))
}

// Increment adds one unit of the product to the cart.
// POST /cart/items/:productId/increment
func (h *Handler) Increment(c *gin.Context) {
	store := storeFromContext(c)

	id, ok := parseProductID(c)
	if !ok {
		return
	}

	h.service.Increment(store, id)
	response.Success(c, http.StatusOK, "", CartCountResponse{Count: store.Count()})
}

// Decrement removes one unit of the product; removing the last unit drops
// the line entirely, and an unknown product is a no-op.
// POST /cart/items/:productId/decrement
func (h *Handler) Decrement(c *gin.Context) {
	store := storeFromContext(c)

	id, ok := parseProductID(c)
	if !ok {
		return
	}

	h.service.Decrement(store, id)
	response.Success(c, http.StatusOK, "", CartCountResponse{Count: store.Count()})
}

// Clear empties the cart.
// DELETE /cart
func (h *Handler) Clear(c *gin.Context) {
	store := storeFromContext(c)
	h.service.Clear(store)
	response.Success(c, http.StatusOK, "cart cleared", nil)
}
