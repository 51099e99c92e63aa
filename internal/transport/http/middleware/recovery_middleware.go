package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/logmycode/logmycode/pkg/logger"
)

const maxStackTraceSize = 4096

// RecoveryMiddleware returns a gin middleware that recovers from handler
// panics, logs them with a truncated stack trace, and answers with the
// generic 500 body.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()
				if len(stack) > maxStackTraceSize {
					stack = stack[:maxStackTraceSize]
				}

				fields := []logger.Field{
					logger.Any("panic", r),
					logger.Method(c.Request.Method),
					logger.Path(c.Request.URL.Path),
					logger.ClientIP(c.ClientIP()),
					logger.ByteString("stacktrace", stack),
				}
				if requestID := GetRequestID(c); requestID != "" {
					fields = append(fields, logger.RequestID(requestID))
				}
				logger.Get().Error("Panic recovered", fields...)

				if c.IsAborted() {
					return
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal Server Error",
				})
			}
		}()

		c.Next()
	}
}
