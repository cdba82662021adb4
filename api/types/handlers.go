package types

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	apperrors "github.com/oncare/care-report-api/pkg/errors"
)

// Handler utility functions shared by every route package

// BindJSONOrError attempts to bind JSON request body to target struct
// Returns false and sends error response if binding fails
func BindJSONOrError(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  StatusError,
			Message: "Invalid request body",
			Error:   string(apperrors.ErrCodeValidation),
			Details: err.Error(),
		})
		return false
	}
	return true
}

// SendError maps err to its status code and writes the error body.
// It is the one place a request-terminal error is logged.
func SendError(c *gin.Context, log zerolog.Logger, err error) {
	status := apperrors.GetHTTPCode(err)
	resp := ErrorResponse{
		Status:  StatusError,
		Message: "Internal server error",
		Error:   string(apperrors.GetCode(err)),
	}
	event := log.Error()
	if status < http.StatusInternalServerError {
		event = log.Warn()
	}

	if appErr, ok := apperrors.As(err); ok {
		resp.Message = appErr.Message
		if details := publicDetails(appErr.Details); len(details) > 0 {
			resp.Details = details
		}
		if len(appErr.Details) > 0 {
			event = event.Interface("details", appErr.Details)
		}
	}

	event.Err(err).
		Str("code", resp.Error).
		Int("status", status).
		Str("path", c.Request.URL.Path).
		Str("request_id", c.GetString(RequestIDKey)).
		Msg("request failed")

	c.JSON(status, resp)
}

// clientDetailKeys are the error details safe to return to callers.
// Temp paths, converter output and raw model replies stay in the log.
var clientDetailKeys = []string{"asset", "key", "field", "reason", "service", "services", "chunks"}

func publicDetails(details map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{})
	for _, k := range clientDetailKeys {
		if v, ok := details[k]; ok {
			out[k] = v
		}
	}
	return out
}

// SendBadRequest sends a standardized bad request response
func SendBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Status: StatusError, Message: message, Error: string(apperrors.ErrCodeInvalidInput)})
}

// SendSuccess sends a standardized success response with data
func SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// RequestIDKey is the gin context key holding the request id
const RequestIDKey = "request_id"
