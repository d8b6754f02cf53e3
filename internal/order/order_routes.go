package order

import (
	"go-storefront-api/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	// Checkout replays are cheap to make accidentally (double-click,
	// client retry); the idempotency layer absorbs them when Redis is
	// around.
	r.POST("/checkout",
		middleware.Idempotency(rdb),
		handler.Checkout,
	)
}
