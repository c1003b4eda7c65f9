package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/carbonsentinel/api/internal/config"
	"github.com/carbonsentinel/api/internal/features/identity"
	"github.com/carbonsentinel/api/internal/features/location"
	"github.com/carbonsentinel/api/internal/features/mapview"
	"github.com/carbonsentinel/api/internal/features/reports"
	"github.com/carbonsentinel/api/internal/features/roles"
	"github.com/carbonsentinel/api/internal/features/sensors"
)

// Deps are the core components the HTTP surface exposes. Everything is
// constructed in main and injected here; no package-level singletons.
type Deps struct {
	Gate       *identity.Gate
	RoleRouter *roles.Router
	Store      *reports.Store
	Feed       *sensors.Feed
	Locator    *location.Resolver
}

func SetupRoutes(router *gin.Engine, cfg *config.Config, deps Deps) {
	// API v1 group
	api := router.Group("/api/v1")

	identity.RegisterRoutes(api, deps.Gate)
	roles.RegisterRoutes(api, deps.RoleRouter)
	reports.RegisterRoutes(api, deps.Store, deps.Locator)
	sensors.RegisterRoutes(api, deps.Feed, cfg)
	mapview.RegisterRoutes(api, deps.Store, deps.Feed, cfg)
}
