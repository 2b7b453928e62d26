package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ralphreevencarandang/contract-reader/internal/config"
	"github.com/ralphreevencarandang/contract-reader/internal/handler"
	"github.com/ralphreevencarandang/contract-reader/internal/middleware"
	"github.com/ralphreevencarandang/contract-reader/internal/web"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	reviewH *handler.ReviewHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// Review API
	api := r.Group("/api")
	api.POST("/review", reviewH.Review)

	// Embedded single-page UI for everything else
	web.RegisterStaticRoutes(r)

	return r
}
