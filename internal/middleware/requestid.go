package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/kanban-backend/internal/pkg/logger"
)

const RequestIDHeader = "X-Request-Id"

type RequestLogger struct {
	log *logger.Logger
}

func NewRequestLogger(baseLog *logger.Logger) *RequestLogger {
	return &RequestLogger{log: baseLog.With("middleware", "RequestLogger")}
}

// Handler assigns each request an id (honoring one supplied by the caller)
// and emits a single structured line per request.
func (rl *RequestLogger) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Writer.Header().Set(RequestIDHeader, requestID)
		c.Set("request_id", requestID)

		start := time.Now()
		c.Next()

		rl.log.Info("request handled",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
