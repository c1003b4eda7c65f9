package identity

import (
	"github.com/gin-gonic/gin"

	"github.com/carbonsentinel/api/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup, gate *Gate) {
	handler := NewHandler(gate)

	auth := router.Group("/auth")
	{
		auth.POST("/session", handler.CreateSession)
		auth.DELETE("/session", middleware.Auth(), handler.DeleteSession)
		auth.GET("/me", middleware.Auth(), handler.Me)
	}
}
