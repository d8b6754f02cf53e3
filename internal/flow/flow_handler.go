package flow

import (
	"net/http"

	"go-storefront-api/internal/pkg/apperror"
	"go-storefront-api/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{logger: logger.Named("flow.handler")}
}

// machineFromContext pulls the session's flow machine placed there by the
// session middleware.
func machineFromContext(c *gin.Context) *Machine {
	v, ok := c.Get("session_flow")
	if !ok {
		return nil
	}
	m, _ := v.(*Machine)
	return m
}

// Current reports the active view and, in confirmation, the held order.
// GET /flow
func (h *Handler) Current(c *gin.Context) {
	state, order := machineFromContext(c).Current()
	response.Success(c, http.StatusOK, "", StateResponse{State: state, Order: order})
}

// RequestCheckout moves the session from browsing to the cart view.
// POST /flow/checkout
func (h *Handler) RequestCheckout(c *gin.Context) {
	h.transition(c, func(m *Machine) error { return m.RequestCheckout() })
}

// RequestReturn moves the session from the cart view back to browsing.
// POST /flow/return
func (h *Handler) RequestReturn(c *gin.Context) {
	h.transition(c, func(m *Machine) error { return m.RequestReturn() })
}

// StartNewOrder leaves the confirmation view, discarding the shown order.
// POST /flow/new-order
func (h *Handler) StartNewOrder(c *gin.Context) {
	h.transition(c, func(m *Machine) error { return m.StartNewOrder() })
}

func (h *Handler) transition(c *gin.Context, move func(*Machine) error) {
	m := machineFromContext(c)

	if err := move(m); err != nil {
		state, _ := m.Current()
		h.logger.Debug("view transition rejected",
			zap.String("session_id", c.GetString("session_id")),
			zap.String("state", string(state)),
		)
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	state, order := m.Current()
	response.Success(c, http.StatusOK, "", StateResponse{State: state, Order: order})
}
