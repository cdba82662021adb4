package version

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oncare/care-report-api/api/types"
)

// Name is reported by the root endpoint
const Name = "Care Report API"

// Get handles version requests
// @Summary      Service info
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       / [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        Name,
			"version":     deps.Version,
			"description": "Audio transcription and care report generation",
			"status":      "running",
		})
	}
}
