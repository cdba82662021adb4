package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode represents a structured error code
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigInvalid  ErrorCode = "CONFIG_INVALID"
	ErrCodeConfigRequired ErrorCode = "CONFIG_REQUIRED"

	// Validation errors
	ErrCodeValidation   ErrorCode = "VALIDATION"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"

	// External service errors
	ErrCodeExternalService ErrorCode = "EXTERNAL_SERVICE"
	ErrCodeAPIRateLimit    ErrorCode = "API_RATE_LIMIT"

	// Internal errors
	ErrCodeInternal    ErrorCode = "INTERNAL"
	ErrCodeServiceDown ErrorCode = "SERVICE_DOWN"

	// Transcription pipeline
	ErrCodeEmptyInput      ErrorCode = "EMPTY_INPUT"
	ErrCodeStorage         ErrorCode = "STORAGE_ERROR"
	ErrCodeTranscription   ErrorCode = "TRANSCRIPTION_ERROR"
	ErrCodeEmptyTranscript ErrorCode = "EMPTY_TRANSCRIPT"

	// Document pipeline
	ErrCodeNarrativeFormat ErrorCode = "NARRATIVE_FORMAT_ERROR"
	ErrCodeRender          ErrorCode = "RENDER_ERROR"
	ErrCodePersist         ErrorCode = "PERSIST_ERROR"
	ErrCodeConversion      ErrorCode = "CONVERSION_ERROR"
	ErrCodePublish         ErrorCode = "PUBLISH_ERROR"
)

// AppError represents a structured application error
type AppError struct {
	Code     ErrorCode              `json:"code"`
	Message  string                 `json:"message"`
	Details  map[string]interface{} `json:"details,omitempty"`
	Cause    error                  `json:"-"`
	HTTPCode int                    `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// GetHTTPCode returns the appropriate HTTP status code
func (e *AppError) GetHTTPCode() int {
	if e.HTTPCode != 0 {
		return e.HTTPCode
	}
	return getDefaultHTTPCode(e.Code)
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: getDefaultHTTPCode(code),
	}
}

// Newf creates a new AppError with formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		HTTPCode: getDefaultHTTPCode(code),
	}
}

// Wrap wraps an existing error with an AppError
func Wrap(cause error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Cause:    cause,
		HTTPCode: getDefaultHTTPCode(code),
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(cause error, code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Cause:    cause,
		HTTPCode: getDefaultHTTPCode(code),
	}
}

// getDefaultHTTPCode returns the default HTTP status code for an error code.
// Pipeline errors are all server-side failures of the request.
func getDefaultHTTPCode(code ErrorCode) int {
	switch code {
	case ErrCodeValidation, ErrCodeInvalidInput, ErrCodeMissingField:
		return http.StatusBadRequest
	case ErrCodeAPIRateLimit:
		return http.StatusTooManyRequests
	case ErrCodeServiceDown:
		return http.StatusServiceUnavailable
	case ErrCodeExternalService:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Common error constructors

// ValidationError creates a validation error
func ValidationError(field string, reason string) *AppError {
	return New(ErrCodeValidation, fmt.Sprintf("validation failed for field '%s': %s", field, reason)).
		WithDetail("field", field).
		WithDetail("reason", reason)
}

// MissingFieldError creates a missing field error
func MissingFieldError(field string) *AppError {
	return New(ErrCodeMissingField, fmt.Sprintf("required field '%s' is missing", field)).
		WithDetail("field", field)
}

// ConfigError creates a configuration error
func ConfigError(key string, reason string) *AppError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("configuration error for '%s': %s", key, reason)).
		WithDetail("key", key).
		WithDetail("reason", reason)
}

// ServiceDown reports collaborators that failed their health checks
func ServiceDown(services []string) *AppError {
	return Newf(ErrCodeServiceDown, "%d service(s) unhealthy", len(services)).
		WithDetail("services", services)
}

// EmptyInput reports a zero-length audio upload
func EmptyInput() *AppError {
	return New(ErrCodeEmptyInput, "received empty audio data")
}

// StorageError reports a temp write that could not be confirmed on disk
func StorageError(path string, cause error) *AppError {
	return Wrap(cause, ErrCodeStorage, "failed to persist audio data").
		WithDetail("path", path)
}

// TranscriptionError wraps any failure while decoding, chunking or transcribing
func TranscriptionError(cause error) *AppError {
	return Wrap(cause, ErrCodeTranscription, "audio transcription failed")
}

// EmptyTranscript reports that every chunk transcribed to nothing
func EmptyTranscript(chunks int) *AppError {
	return New(ErrCodeEmptyTranscript, "speech recognition result is empty").
		WithDetail("chunks", chunks)
}

// NarrativeFormatError reports a completion that is not the requested JSON
func NarrativeFormatError(cause error, raw string) *AppError {
	return Wrap(cause, ErrCodeNarrativeFormat, "narrative backend returned malformed JSON").
		WithDetail("raw", raw)
}

// RenderError reports a template fill failure
func RenderError(template string, cause error) *AppError {
	return Wrap(cause, ErrCodeRender, "failed to render document template").
		WithDetail("template", template)
}

// PersistError reports a failure to save a rendered document
func PersistError(path string, cause error) *AppError {
	return Wrap(cause, ErrCodePersist, "failed to save rendered document").
		WithDetail("path", path)
}

// ConversionError reports a failed docx to pdf conversion
func ConversionError(source string, cause error, output string) *AppError {
	e := Wrap(cause, ErrCodeConversion, "failed to convert document to pdf").
		WithDetail("source", source)
	if output != "" {
		e.WithDetail("output", output)
	}
	return e
}

// PublishError reports a failed upload or link issuance for one asset
func PublishError(asset, key string, cause error) *AppError {
	return Wrapf(cause, ErrCodePublish, "failed to publish %s", asset).
		WithDetail("asset", asset).
		WithDetail("key", key)
}

// ExternalServiceError creates an external service error
func ExternalServiceError(service string, cause error) *AppError {
	return Wrapf(cause, ErrCodeExternalService, "external service '%s' error", service).
		WithDetail("service", service)
}

// As returns the first AppError in the chain of err
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Is checks if an error is of a specific type
func Is(err error, code ErrorCode) bool {
	if appErr, ok := As(err); ok {
		return appErr.Code == code
	}
	return false
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if appErr, ok := As(err); ok {
		return appErr.Code
	}
	return ErrCodeInternal
}

// GetHTTPCode extracts the HTTP status code from an error
func GetHTTPCode(err error) int {
	if appErr, ok := As(err); ok {
		return appErr.GetHTTPCode()
	}
	return http.StatusInternalServerError
}
