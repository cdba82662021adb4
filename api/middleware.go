package api

import (
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/oncare/care-report-api/api/types"
	"github.com/oncare/care-report-api/pkg/config"
	apperrors "github.com/oncare/care-report-api/pkg/errors"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

// clientLimiter holds a rate limiter and its last accessed time
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

// CORS applies the security section's CORS settings
func CORS(cfg config.SecurityConfig) gin.HandlerFunc {
	origins := strings.Join(cfg.CORSOrigins, ", ")
	if origins == "" {
		origins = "*"
	}
	methods := strings.Join(cfg.CORSMethods, ", ")
	headers := strings.Join(cfg.CORSHeaders, ", ")

	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", origins)
		c.Header("Access-Control-Allow-Methods", methods)
		c.Header("Access-Control-Allow-Headers", headers)
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// RequestSizeLimitWithSize rejects bodies over maxBytes. A declared Content-Length over the
// limit is refused up front; streamed bodies are cut by http.MaxBytesReader.
// A non-positive maxBytes disables the limit.
func RequestSizeLimitWithSize(maxBytes int64) gin.HandlerFunc {
	if maxBytes <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodPost ||
			c.Request.Method == http.MethodPut ||
			c.Request.Method == http.MethodPatch {
			if c.Request.ContentLength > maxBytes {
				c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "Request body too large",
					Error:   string(apperrors.ErrCodeInvalidInput),
					Details: gin.H{"limit_bytes": maxBytes},
				})
				return
			}
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

// RequestLogger assigns a request id and writes one access log line per request
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(types.RequestIDKey, id)
		c.Header(RequestIDHeader, id)

		c.Next()

		status := c.Writer.Status()
		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}
		event.
			Str("request_id", id).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}

// RateLimiter keeps one token bucket per route group and client
type RateLimiter struct {
	limiters *sync.Map
	stop     chan struct{}
	once     sync.Once
	stopOnce sync.Once
}

// NewRateLimiter creates an empty limiter registry
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{limiters: &sync.Map{}, stop: make(chan struct{})}
}

// PerClient limits each client IP to rps requests per second with the given burst within group
func (r *RateLimiter) PerClient(group string, rps int, burst int) gin.HandlerFunc {
	r.once.Do(func() {
		go cleanupOldRateLimiters(r.limiters, r.stop)
	})
	if rps <= 0 {
		rps = 1
	}
	if burst <= 0 {
		burst = 1
	}

	return func(c *gin.Context) {
		key := group + "|" + c.ClientIP()

		v, _ := r.limiters.LoadOrStore(key, newClientLimiter(rps, burst))
		cl := v.(*clientLimiter)
		cl.lastSeen.Store(time.Now().UnixNano())

		if !cl.limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Rate limit exceeded. Please slow down your requests.",
				Error:   string(apperrors.ErrCodeAPIRateLimit),
			})
			return
		}
		c.Next()
	}
}

// Stop ends the idle limiter cleanup loop
func (r *RateLimiter) Stop() {
	r.stopOnce.Do(func() { close(r.stop) })
}

func newClientLimiter(rps, burst int) *clientLimiter {
	cl := &clientLimiter{limiter: rate.NewLimiter(rate.Limit(rps), burst)}
	cl.lastSeen.Store(time.Now().UnixNano())
	return cl
}

func cleanupOldRateLimiters(rateLimiters *sync.Map, cleanupStop chan struct{}) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			evictIdle(rateLimiters, time.Now(), 10*time.Minute)
		case <-cleanupStop:
			return
		}
	}
}

func evictIdle(rateLimiters *sync.Map, now time.Time, idle time.Duration) int {
	evicted := 0
	rateLimiters.Range(func(key, value interface{}) bool {
		cl := value.(*clientLimiter)
		if now.Sub(time.Unix(0, cl.lastSeen.Load())) > idle {
			rateLimiters.Delete(key)
			evicted++
		}
		return true
	})
	return evicted
}
