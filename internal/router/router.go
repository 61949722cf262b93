package router

import (
	"github.com/gin-gonic/gin"

	"sentsplit/internal/config"
	"sentsplit/internal/handler"
	"sentsplit/internal/metrics"
	"sentsplit/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	m *metrics.Metrics,
	uploadH *handler.UploadHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics(m))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	if cfg.Metrics.Enabled {
		r.GET(cfg.Metrics.Path, gin.WrapH(m.Handler()))
	}

	r.POST("/upload", uploadH.Upload)
	r.POST("/upload/math", uploadH.UploadMath)

	return r
}
