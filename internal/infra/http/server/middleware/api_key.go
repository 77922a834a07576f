package middleware

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"
)

const authorization = "Authorization"

func APIKeyAuth(hashedAPIKeys []string, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader(authorization)

		if !isValidAPIKey(apiKey, hashedAPIKeys, secret) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid api key"})
			return
		}

		c.Next()
	}
}

// HashAPIKey returns the value to put into HASHED_API_KEYS for a plain api key.
func HashAPIKey(apiKey string, secret string) string {
	h := hmac.New(sha512.New, []byte(secret))
	h.Write([]byte(apiKey))

	return hex.EncodeToString(h.Sum(nil))
}

func isValidAPIKey(apiKey string, hashedAPIKeys []string, secret string) bool {
	if apiKey == "" {
		return false
	}

	sha := []byte(HashAPIKey(apiKey, secret))
	for _, hashedAPIKey := range hashedAPIKeys {
		if hmac.Equal(sha, []byte(hashedAPIKey)) {
			return true
		}
	}

	return false
}
