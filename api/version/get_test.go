package version

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oncare/care-report-api/api/types"
)

func TestGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Get(&types.Dependencies{Version: "0.3.0"})(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	expected := map[string]interface{}{
		"name":    "Care Report API",
		"version": "0.3.0",
		"status":  "running",
	}
	for key, expectedValue := range expected {
		assert.Equal(t, expectedValue, response[key], "Key: %s", key)
	}
}
