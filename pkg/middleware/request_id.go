package middleware

import (
	"time"

	"sekor-bkc/pkg/logger"
	"sekor-bkc/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-ID"

// RequestLogger reads or generates the request id, exposes it on the response
// and in the request context logger, and logs the completed request.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqID := c.GetHeader(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.New().String()
		}

		child := log.
			With(logger.FieldRequestID, reqID).
			With(logger.FieldMethod, c.Request.Method).
			With(logger.FieldPath, c.Request.URL.Path).
			With(logger.FieldClientIP, c.ClientIP())

		c.Set(response.RequestIDKey, reqID)
		c.Header(HeaderRequestID, reqID)
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), child))

		c.Next()

		evt := child.Zerolog().Info().
			Int(logger.FieldStatus, c.Writer.Status()).
			Float64(logger.FieldLatency, float64(time.Since(start).Microseconds())/1000)
		if userID := c.GetString(UserIDKey); userID != "" {
			evt = evt.Str(logger.FieldUserID, userID)
		}
		evt.Msg("request completed")
	}
}
