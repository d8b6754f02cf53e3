package flow

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	views := r.Group("/flow")
	{
		views.GET("", handler.Current)
		views.POST("/checkout", handler.RequestCheckout)
		views.POST("/return", handler.RequestReturn)
		views.POST("/new-order", handler.StartNewOrder)
	}
}
