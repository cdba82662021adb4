package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/oncare/care-report-api/api/health"
	"github.com/oncare/care-report-api/api/journal"
	"github.com/oncare/care-report-api/api/transcribe"
	"github.com/oncare/care-report-api/api/types"
	"github.com/oncare/care-report-api/api/version"
	"github.com/oncare/care-report-api/api/weekly"
	_ "github.com/oncare/care-report-api/docs/swagger"
	"github.com/oncare/care-report-api/pkg/config"
	apperrors "github.com/oncare/care-report-api/pkg/errors"
)

// Rate limit groups, keyed into rate_limiting.endpoints
const (
	LimitTranscribe = "transcribe"
	LimitReports    = "reports"
	LimitDownloads  = "downloads"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, cfg *config.Config, limiter *RateLimiter) error {
	if deps == nil || deps.Transcriber == nil || deps.Reports == nil {
		return apperrors.New(apperrors.ErrCodeConfigRequired, "handler dependencies are not configured")
	}

	// Public routes (no rate limiting)
	version.RegisterRoutes(engine, deps)
	health.RegisterRoutes(engine, cfg.Monitoring.HealthPath, deps)

	if cfg.Monitoring.Enabled {
		path := cfg.Monitoring.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		engine.GET(path, gin.WrapH(promhttp.Handler()))
	}

	// Swagger documentation
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	engine.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.NoRoute(NotFoundHandler())

	limit := func(group string) gin.HandlerFunc {
		if !cfg.RateLimiting.Enabled {
			return func(c *gin.Context) { c.Next() }
		}
		l := cfg.RateLimiting.Endpoints[group]
		return limiter.PerClient(group, l.RPS, l.Burst)
	}

	// Raw audio gets its own, larger body limit
	transcribeGroup := engine.Group("/transcribe")
	transcribeGroup.Use(RequestSizeLimitWithSize(cfg.Transcription.MaxUploadBytes), limit(LimitTranscribe))
	transcribe.RegisterRoutes(transcribeGroup, deps)

	reports, downloads := limit(LimitReports), limit(LimitDownloads)

	journalGroup := engine.Group("/generate-journal-docx")
	journalGroup.Use(RequestSizeLimitWithSize(cfg.Server.MaxBodyBytes))
	journal.RegisterRoutes(journalGroup, deps, reports, downloads)

	weeklyGroup := engine.Group("/generate-weekly-report")
	weeklyGroup.Use(RequestSizeLimitWithSize(cfg.Server.MaxBodyBytes))
	weekly.RegisterRoutes(weeklyGroup, deps, reports, downloads)

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  types.StatusError,
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
