package weekly

import (
	"github.com/gin-gonic/gin"

	"github.com/oncare/care-report-api/api/types"
)

// RegisterRoutes registers weekly report routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, generateMiddleware, downloadMiddleware gin.HandlerFunc) {
	router.POST("", generateMiddleware, Generate(deps))
	router.POST("/download-weekly-docx-url", downloadMiddleware, DownloadDocxURL(deps))
	router.POST("/download-weekly-pdf-url", downloadMiddleware, DownloadPDFURL(deps))
}
