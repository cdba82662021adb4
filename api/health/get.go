package health

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oncare/care-report-api/api/types"
	apperrors "github.com/oncare/care-report-api/pkg/errors"
)

const checkTimeout = 5 * time.Second

// Get handles health check requests
// @Summary      Service health
// @Description  Probes every configured collaborator (ffmpeg, converter, object storage, speech backend).
// @Tags         health
// @Produce      json
// @Success      200 {object} types.HealthResponse "All collaborators healthy"
// @Failure      503 {object} types.HealthResponse "At least one collaborator unhealthy"
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := types.HealthResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusHealthy, Message: "all services healthy"},
			Version:      deps.Version,
			Timestamp:    time.Now().UTC().Format(time.RFC3339),
			Services:     checkServices(c.Request.Context(), deps.HealthChecks),
		}

		var down []string
		for name, s := range response.Services {
			if s.Status != types.StatusHealthy {
				down = append(down, name)
			}
		}
		if len(down) == 0 {
			c.JSON(http.StatusOK, response)
			return
		}

		sort.Strings(down)
		appErr := apperrors.ServiceDown(down)
		response.Status = types.StatusUnhealthy
		response.Message = appErr.Message
		response.Error = string(appErr.Code)
		c.JSON(appErr.GetHTTPCode(), response)
	}
}

// checkServices runs each check with its own timeout
func checkServices(ctx context.Context, checks []types.HealthCheck) map[string]types.ServiceStatus {
	out := make(map[string]types.ServiceStatus, len(checks))
	for _, hc := range checks {
		checkCtx, cancel := context.WithTimeout(ctx, checkTimeout)
		err := hc.Check(checkCtx)
		cancel()

		if err != nil {
			out[hc.Name] = types.ServiceStatus{Status: types.StatusUnhealthy, Error: err.Error()}
			continue
		}
		out[hc.Name] = types.ServiceStatus{Status: types.StatusHealthy}
	}
	return out
}
