package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	idempotencyHeader = "Idempotency-Key"
	idempotencyTTL    = 24 * time.Hour
)

type cachedWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *cachedWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the cached response for a repeated Idempotency-Key so
// a double-submitted checkout cannot place two orders. Pass-through when
// Redis is not configured or the client sent no key.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	logger := zap.L().Named("middleware.idempotency")

	return func(c *gin.Context) {
		key := c.GetHeader(idempotencyHeader)
		if rdb == nil || key == "" {
			c.Next()
			return
		}

		// Scope keys per session so clients cannot replay each other.
		cacheKey := "idem:" + c.GetString("session_id") + ":" + key

		if cached, err := rdb.Get(c.Request.Context(), cacheKey).Bytes(); err == nil {
			logger.Debug("idempotent replay", zap.String("key", key))
			c.Data(http.StatusOK, "application/json", cached)
			c.Abort()
			return
		} else if err != redis.Nil {
			logger.Warn("idempotency lookup failed", zap.Error(err))
		}

		w := &cachedWriter{ResponseWriter: c.Writer}
		c.Writer = w
		c.Next()

		if c.Writer.Status() >= 200 && c.Writer.Status() < 300 {
			if err := rdb.Set(c.Request.Context(), cacheKey, w.body.Bytes(), idempotencyTTL).Err(); err != nil {
				logger.Warn("idempotency cache write failed", zap.Error(err))
			}
		}
	}
}
