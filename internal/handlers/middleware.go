package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-Id"
	requestIDKey    = "requestId"
)

// requestLogger tags each request with an id (reusing the caller's when
// given) and logs the outcome once the handler chain has run.
func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()

	reqID := c.GetHeader(requestIDHeader)
	if reqID == "" {
		reqID = uuid.NewString()
	}
	c.Set(requestIDKey, reqID)
	c.Header(requestIDHeader, reqID)

	c.Next()

	if h.log != nil {
		h.log.Infow("http_request",
			"request_id", reqID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}
