package middleware

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorLogger logs requests that ended in a 5xx or carry gin errors, and
// turns a panic into a JSON 500 without leaking the panic value.
func ErrorLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error": gin.H{
						"code":    "INTERNAL",
						"message": "Internal server error",
						"details": gin.H{"request_id": requestID(c)},
					},
				})
				logFailure(c, start, "panic", fmt.Sprint(recovered), debug.Stack())
				return
			}

			for _, ginErr := range c.Errors {
				logFailure(c, start, errorType(ginErr.Type), ginErr.Error(), nil)
			}
			if len(c.Errors) == 0 && c.Writer.Status() >= http.StatusInternalServerError {
				logFailure(c, start, "http_error", http.StatusText(c.Writer.Status()), nil)
			}
		}()

		c.Next()
	}
}

func errorType(t gin.ErrorType) string {
	switch t {
	case gin.ErrorTypeBind:
		return "bind"
	case gin.ErrorTypeRender:
		return "render"
	case gin.ErrorTypePublic:
		return "public"
	default:
		return "private"
	}
}

func logFailure(c *gin.Context, start time.Time, kind, message string, stack []byte) {
	line := fmt.Sprintf(
		"request_error type=%s status=%d method=%s path=%s client_ip=%s request_id=%s latency=%s error=%q",
		kind,
		c.Writer.Status(),
		c.Request.Method,
		c.Request.URL.Path,
		c.ClientIP(),
		requestID(c),
		time.Since(start),
		message,
	)
	if len(stack) > 0 {
		line += "\n" + string(stack)
	}
	log.Print(line)
}
