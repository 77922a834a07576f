package middleware

import (
	"net/http"
	"time"

	"github.com/andrewshostak/esports-notifier/errs"
	"github.com/gin-contrib/timeout"
	"github.com/gin-gonic/gin"
)

// Timeout answers 408 when the handler does not finish in t. A non-positive t disables the limit.
func Timeout(t time.Duration) gin.HandlerFunc {
	if t <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return timeout.New(
		timeout.WithTimeout(t),
		timeout.WithResponse(timeoutResponse),
	)
}

func timeoutResponse(c *gin.Context) {
	c.JSON(http.StatusRequestTimeout, gin.H{"error": "timeout", "code": errs.CodeTimeout})
}
