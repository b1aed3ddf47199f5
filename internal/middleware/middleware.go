package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/metrics"
)

// ErrRequestTooLarge answers bodies above the configured limit
var ErrRequestTooLarge = apperrors.NewCustomError(apperrors.ErrPayloadTooLarge, "request body is too large")

// BodyLimit rejects requests whose declared length exceeds maxBytes and caps
// reads of the rest, so a chunked body cannot grow past the limit either.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			HandleAPIError(c, ErrRequestTooLarge)
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// NoSniff stops browsers from guessing a content type other than the one served
func NoSniff() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Next()
	}
}

// RequestLogger logs every completed request
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		event := log.Info()
		switch {
		case status >= 500:
			event = log.Error()
		case status >= 400:
			event = log.Warn()
		}
		if p, ok := PrincipalFrom(c); ok {
			event = event.Str("role", p.Role.String()).Int64("accountID", p.ID)
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("route", c.FullPath()).
			Int("status", status).
			Str("ip", c.ClientIP()).
			Dur("duration", time.Since(start)).
			Msg("Request handled")
	}
}

// Metrics records request counts and latency per route pattern
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		done := m.Begin()
		c.Next()
		done(c.Request.Method, c.FullPath(), c.Writer.Status())
	}
}
