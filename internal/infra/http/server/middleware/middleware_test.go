package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/andrewshostak/esports-notifier/internal/infra/http/server/middleware"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"google.golang.org/api/idtoken"
)

func TestAPIKeyAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	secret := gofakeit.Password(true, true, true, false, false, 32)
	apiKey := gofakeit.UUID()
	hashed := []string{middleware.HashAPIKey(gofakeit.UUID(), secret), middleware.HashAPIKey(apiKey, secret)}

	tests := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{name: "it rejects a request without api key", expectedStatus: http.StatusUnauthorized},
		{name: "it rejects an unknown api key", header: gofakeit.UUID(), expectedStatus: http.StatusUnauthorized},
		{name: "success - it passes a known api key", header: apiKey, expectedStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(middleware.APIKeyAuth(hashed, secret))
			r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestValidateGoogleAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	audience := "https://notifier.example.com"
	serviceAccount := "scheduler@project.iam.gserviceaccount.com"

	validator := func(_ context.Context, token string, aud string) (*idtoken.Payload, error) {
		if aud != audience {
			return nil, errors.New("audience mismatch")
		}

		switch token {
		case "scheduler-token":
			return &idtoken.Payload{Audience: aud, Claims: map[string]interface{}{"email": serviceAccount}}, nil
		case "other-token":
			return &idtoken.Payload{Audience: aud, Claims: map[string]interface{}{"email": "someone@example.com"}}, nil
		default:
			return nil, errors.New("idtoken: invalid token")
		}
	}

	tests := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{name: "it rejects a request without authorization header", expectedStatus: http.StatusUnauthorized},
		{name: "it rejects a non bearer token", header: "Basic abc", expectedStatus: http.StatusUnauthorized},
		{name: "it rejects an invalid token", header: "Bearer garbage", expectedStatus: http.StatusUnauthorized},
		{name: "it rejects a token of another service account", header: "Bearer other-token", expectedStatus: http.StatusForbidden},
		{name: "success - it passes a scheduler token", header: "Bearer scheduler-token", expectedStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(middleware.ValidateGoogleAuth(audience, serviceAccount, validator))
			r.POST("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestTimeout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		limit          time.Duration
		expectedStatus int
	}{
		{name: "it answers request timeout when handler is too slow", limit: 10 * time.Millisecond, expectedStatus: http.StatusRequestTimeout},
		{name: "success - it lets handler finish when limit is disabled", limit: 0, expectedStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/", middleware.Timeout(tt.limit), func(c *gin.Context) {
				time.Sleep(100 * time.Millisecond)
				c.Status(http.StatusNoContent)
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
