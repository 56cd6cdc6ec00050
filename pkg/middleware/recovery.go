package middleware

import (
	"net/http"

	"sekor-bkc/pkg/logger"
	"sekor-bkc/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery turns a handler panic into the standard 500 envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.FromContext(c.Request.Context()).Error("panic recovered: %v", recovered)
		response.Abort(c, http.StatusInternalServerError, response.CodeInternal, "Internal server error")
	})
}
