package middleware

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorLogger logs failed requests and recovers from panics with a JSON
// error body instead of a dropped connection.
func ErrorLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("%v", recovered)
				logRequestError(c, start, "panic", err.Error(), debug.Stack())

				c.JSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error": gin.H{
						"code":    "INTERNAL_SERVER_ERROR",
						"message": "Internal Server Error",
					},
				})
				c.Abort()
				return
			}

			if len(c.Errors) == 0 {
				if c.Writer.Status() >= http.StatusInternalServerError {
					logRequestError(c, start, "http_error", fmt.Sprintf("status=%d", c.Writer.Status()), nil)
				}
				return
			}

			for _, err := range c.Errors {
				logRequestError(c, start, fmt.Sprintf("%v", err.Type), err.Error(), nil)
			}
		}()

		c.Next()
	}
}

func logRequestError(c *gin.Context, start time.Time, errType string, message string, stack []byte) {
	log.Printf(
		"request_error type=%s status=%d method=%s path=%s query=%s client_ip=%s role=%s latency=%s error=%q stack=%s",
		errType,
		c.Writer.Status(),
		c.Request.Method,
		c.Request.URL.Path,
		c.Request.URL.RawQuery,
		c.ClientIP(),
		c.GetString("role"),
		time.Since(start),
		message,
		string(stack),
	)
}
