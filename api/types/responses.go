package types

// Status constants for API responses
const (
	StatusOK        = "ok"
	StatusError     = "error"
	StatusDegraded  = "degraded"
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`  // One of the Status constants above
	Message string `json:"message"` // Human-readable message
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`   // Error code
	Details interface{} `json:"details,omitempty"` // Additional error details
}

// ServiceStatus is the health of one collaborator
type ServiceStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	BaseResponse
	Error     string                   `json:"error,omitempty"` // SERVICE_DOWN when unhealthy
	Version   string                   `json:"version,omitempty"`
	Timestamp string                   `json:"timestamp"`
	Services  map[string]ServiceStatus `json:"services,omitempty"`
}
