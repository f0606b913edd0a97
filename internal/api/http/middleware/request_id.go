package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type requestIDKey struct{}

const (
	RequestIDHeader = "X-Request-Id"
	// GinRequestIDKey holds the id in the gin context.
	GinRequestIDKey = "request_id"
)

// quietPaths are served without an access log line. Health checks hit them often.
var quietPaths = map[string]bool{"/health": true, "/healthz": true}

// RequestIDMiddleware tags each request with the incoming X-Request-Id or a
// fresh UUID, echoes it on the response and writes one access log line.
// Server errors log at error level and client errors at warn.
func RequestIDMiddleware(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := strings.TrimSpace(c.GetHeader(RequestIDHeader))
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Set(GinRequestIDKey, rid)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), requestIDKey{}, rid))
		c.Writer.Header().Set(RequestIDHeader, rid)

		start := time.Now()
		c.Next()

		path := c.Request.URL.Path
		if quietPaths[path] {
			return
		}

		status := c.Writer.Status()
		fields := []any{
			"id", rid,
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"client", c.ClientIP(),
			"latency", time.Since(start),
		}
		switch {
		case status >= 500:
			log.Errorw("request", fields...)
		case status >= 400:
			log.Warnw("request", fields...)
		default:
			log.Infow("request", fields...)
		}
	}
}

// GetRequestID returns the request id stored by RequestIDMiddleware, or "".
func GetRequestID(ctx context.Context) string {
	rid, _ := ctx.Value(requestIDKey{}).(string)
	return rid
}
