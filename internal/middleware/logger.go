package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"findmygym/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RequestLogger writes one line per request.
func RequestLogger(logger *zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		event := logger.Info()
		switch {
		case status >= http.StatusInternalServerError:
			event = logger.Error()
		case status >= http.StatusBadRequest:
			event = logger.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Int64("user_id", c.GetInt64("user_id")).
			Str("request_id", requestID(c)).
			Msg("http request")
	}
}

// ErrorLogger logs request errors and recovers from panics with a 500 envelope.
func ErrorLogger(logger *zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("%v", recovered)
				logRequestError(logger, c, start, "panic", err, debug.Stack())
				response.Abort(c, http.StatusInternalServerError, response.CodeInternal, "Internal server error")
				return
			}

			for _, ginErr := range c.Errors {
				logRequestError(logger, c, start, fmt.Sprintf("%v", ginErr.Type), ginErr.Err, nil)
			}
		}()

		c.Next()
	}
}

func logRequestError(logger *zerolog.Logger, c *gin.Context, start time.Time, errType string, err error, stack []byte) {
	event := logger.Error().
		Err(err).
		Str("type", errType).
		Int("status", c.Writer.Status()).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Str("query", c.Request.URL.RawQuery).
		Str("client_ip", c.ClientIP()).
		Int64("user_id", c.GetInt64("user_id")).
		Str("request_id", requestID(c)).
		Dur("latency", time.Since(start))
	if stack != nil {
		event = event.Bytes("stack", stack)
	}
	event.Msg("request error")
}
