// ================== cmd/api/main.go ==================
//
// @title Carbon Sentinel API
// @version 1.0
// @description Citizen carbon hotspot reporting with a live air-quality map overlay
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer <token>"
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	docs "github.com/carbonsentinel/api/docs"
	"github.com/carbonsentinel/api/internal/config"
	"github.com/carbonsentinel/api/internal/features/identity"
	"github.com/carbonsentinel/api/internal/features/location"
	"github.com/carbonsentinel/api/internal/features/reports"
	"github.com/carbonsentinel/api/internal/features/roles"
	"github.com/carbonsentinel/api/internal/features/sensors"
	"github.com/carbonsentinel/api/internal/middleware"
	"github.com/carbonsentinel/api/internal/pkg/logger"
	"github.com/carbonsentinel/api/internal/pkg/response"
	"github.com/carbonsentinel/api/internal/routes"
)

func main() {
	// Load config
	cfg := config.Load()

	// Configure Swagger metadata at runtime
	docs.SwaggerInfo.Title = "Carbon Sentinel API"
	docs.SwaggerInfo.Description = "Citizen carbon hotspot reporting with a live air-quality map overlay"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = "localhost:" + cfg.Port
	docs.SwaggerInfo.BasePath = "/api/v1"
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Identity provider (Firebase Admin SDK)
	provider, err := identity.NewFirebaseProvider(context.Background(), cfg)
	if err != nil {
		log.Fatal("Failed to initialize identity provider:", err)
	}

	// Core components
	gate := identity.NewGate(provider, logger.Component("identity"))
	roleRouter := roles.NewRouter()
	store := reports.NewStore(roleRouter)
	feed := sensors.NewFeed(cfg.FeedBaseURL, logger.Component("sensors"))

	var locator *location.Resolver
	if cfg.LocationLookupURL != "" {
		locator = location.NewResolver(location.NewHTTPProvider(cfg.LocationLookupURL))
	}

	// One identity subscription per session; torn down exactly once on exit.
	identityLog := logger.Component("identity")
	unsubscribe := gate.Subscribe(func(p *identity.Principal) {
		if p == nil {
			identityLog.Info("session is anonymous")
			return
		}
		identityLog.Info("session principal: %s", p.Label())
	})
	defer unsubscribe()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.FrontendURL))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, map[string]interface{}{
			"status": "ok",
			"time":   time.Now().Unix(),
		})
	})

	// Swagger documentation
	router.GET(
		"/swagger/*any",
		ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("/swagger/doc.json"),
			ginSwagger.DeepLinking(true),
			ginSwagger.DefaultModelsExpandDepth(-1),
			ginSwagger.DocExpansion("none"),
		),
	)

	// Register all routes
	routes.SetupRoutes(router, cfg, routes.Deps{
		Gate:       gate,
		RoleRouter: roleRouter,
		Store:      store,
		Feed:       feed,
		Locator:    locator,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server:", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if locator != nil {
		locator.Invalidate()
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
