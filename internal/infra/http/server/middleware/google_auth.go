package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"
)

// TokenValidator checks a Google-signed OIDC token. idtoken.Validate is used in production.
type TokenValidator func(ctx context.Context, token string, audience string) (*idtoken.Payload, error)

// ValidateGoogleAuth accepts requests carrying an OIDC token issued for audience, as attached by
// Cloud Scheduler. A non-empty serviceAccount additionally pins the token's email claim.
func ValidateGoogleAuth(audience string, serviceAccount string, validate TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorization)
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}

		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token format"})
			return
		}

		payload, err := validate(c.Request.Context(), token, audience)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": fmt.Sprintf("invalid google token: %s", err.Error())})
			return
		}

		if serviceAccount != "" {
			email, _ := payload.Claims["email"].(string)
			if email != serviceAccount {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "token is issued for another service account"})
				return
			}
		}

		c.Next()
	}
}
