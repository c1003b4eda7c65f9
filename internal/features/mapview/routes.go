package mapview

import (
	"github.com/gin-gonic/gin"

	"github.com/carbonsentinel/api/internal/config"
	"github.com/carbonsentinel/api/internal/features/reports"
	"github.com/carbonsentinel/api/internal/features/sensors"
)

func RegisterRoutes(router *gin.RouterGroup, store *reports.Store, feed *sensors.Feed, cfg *config.Config) {
	handler := NewHandler(store, feed, cfg)

	group := router.Group("/map")
	{
		group.GET("/points", handler.GetPoints)
	}
}
