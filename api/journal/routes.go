package journal

import (
	"github.com/gin-gonic/gin"

	"github.com/oncare/care-report-api/api/types"
)

// RegisterRoutes registers journal routes. The generate route and the download routes are
// limited separately.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, generateMiddleware, downloadMiddleware gin.HandlerFunc) {
	router.POST("", generateMiddleware, Generate(deps))
	router.POST("/convert-journal-pdf", generateMiddleware, ConvertPDF(deps))
	router.POST("/download-docx-url", downloadMiddleware, DownloadDocxURL(deps))
	router.POST("/download-pdf-url", downloadMiddleware, DownloadPDFURL(deps))
}
