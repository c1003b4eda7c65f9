package sensors

import (
	"github.com/gin-gonic/gin"

	"github.com/carbonsentinel/api/internal/config"
)

func RegisterRoutes(router *gin.RouterGroup, feed *Feed, cfg *config.Config) {
	handler := NewHandler(feed, cfg)

	group := router.Group("/sensors")
	{
		group.GET("/readings", handler.GetReadings)
	}
}
