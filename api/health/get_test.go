package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oncare/care-report-api/api/types"
)

func ok(ctx context.Context) error { return nil }

func TestGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		checks         []types.HealthCheck
		expectedStatus int
		expectedBody   string
		expectedError  map[string]string
		expectedCode   string
	}{
		{
			name:           "no checks configured",
			expectedStatus: http.StatusOK,
			expectedBody:   types.StatusHealthy,
		},
		{
			name: "all healthy",
			checks: []types.HealthCheck{
				{Name: "ffmpeg", Check: ok},
				{Name: "storage", Check: ok},
			},
			expectedStatus: http.StatusOK,
			expectedBody:   types.StatusHealthy,
		},
		{
			name: "converter missing",
			checks: []types.HealthCheck{
				{Name: "ffmpeg", Check: ok},
				{Name: "converter", Check: func(ctx context.Context) error { return errors.New("libreoffice not found") }},
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   types.StatusUnhealthy,
			expectedError:  map[string]string{"converter": "libreoffice not found"},
			expectedCode:   "SERVICE_DOWN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

			Get(&types.Dependencies{HealthChecks: tt.checks, Version: "1.2.3"})(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response types.HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedBody, response.Status)
			assert.Equal(t, "1.2.3", response.Version)
			assert.Equal(t, tt.expectedCode, response.Error)
			assert.Len(t, response.Services, len(tt.checks))
			for name, msg := range tt.expectedError {
				assert.Equal(t, msg, response.Services[name].Error)
			}
		})
	}
}
