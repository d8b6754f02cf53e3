package middleware

import (
	"go-storefront-api/internal/session"

	"github.com/gin-gonic/gin"
)

const sessionCookie = "storefront_session"

// Session resolves (or mints) the caller's browsing session and parks its
// pieces in the context under the keys the feature handlers read.
func Session(mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(sessionCookie)

		st := mgr.GetOrCreate(id)
		if st.ID != id {
			// New session: cookie for the rest of this browse/checkout
			// cycle. Nothing persists beyond the process.
			c.SetCookie(sessionCookie, st.ID, 0, "/", "", false, true)
		}

		c.Set(session.ContextKey, st)
		c.Set("session_id", st.ID)
		c.Set("session_cart", st.Cart)
		c.Set("session_flow", st.Flow)
		c.Next()
	}
}
