package reports

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/carbonsentinel/api/internal/features/location"
	"github.com/carbonsentinel/api/internal/middleware"
	"github.com/carbonsentinel/api/internal/pkg/logger"
	"github.com/carbonsentinel/api/internal/pkg/ratelimit"
)

func RegisterRoutes(router *gin.RouterGroup, store *Store, locator *location.Resolver) {
	handler := NewHandler(store, locator, logger.Component("reports"))

	submitLimiter := ratelimit.New(10, time.Minute)
	submitLimiter.StartCleanup(5 * time.Minute)

	group := router.Group("/reports")
	group.Use(middleware.OptionalAuth())
	{
		group.POST("", ratelimit.Middleware(submitLimiter), handler.Submit)
		group.GET("", handler.List)
		// Authorization happens in the store; an anonymous caller gets 403
		// from the policy, not 401 from the transport.
		group.PATCH("/:id/status", handler.ToggleStatus)
	}
}
