package roles

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, r *Router) {
	handler := NewHandler(r)

	view := router.Group("/view")
	{
		view.GET("", handler.GetView)
		view.PUT("", handler.SetView)
	}
}
