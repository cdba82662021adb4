package transcribe

import (
	"github.com/gin-gonic/gin"

	"github.com/oncare/care-report-api/api/types"
)

// RegisterRoutes registers the transcription route on the group
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("", Post(deps))
}
