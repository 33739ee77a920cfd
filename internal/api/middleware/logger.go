package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rohit/delimfmt/internal/domain/errors"
	"github.com/rohit/delimfmt/pkg/logger"
	"github.com/rs/zerolog"
)

// Logger returns a gin middleware for logging requests
func Logger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		// Process request
		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()

		reqLog := log
		if requestID := GetRequestID(c); requestID != "" {
			reqLog = logger.WithRequestID(log, requestID)
		}

		event := reqLog.Info()
		if statusCode >= 400 {
			event = reqLog.Warn()
		}
		if statusCode >= 500 {
			event = reqLog.Error()
		}

		if raw != "" {
			path = path + "?" + raw
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Int("body_size", c.Writer.Size()).
			Msg("HTTP request")
	}
}

// Recovery returns a gin middleware for recovering from panics
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Interface("error", err).
					Str("path", c.Request.URL.Path).
					Str("method", c.Request.Method).
					Msg("Panic recovered")

				appErr := errors.ErrInternalError("internal server error")
				c.AbortWithStatusJSON(appErr.StatusCode, gin.H{"error": appErr})
			}
		}()
		c.Next()
	}
}
