package server

import (
	"net/http"

	"github.com/andrewshostak/esports-notifier/config"
	"github.com/andrewshostak/esports-notifier/internal/adapters/http/server/handler"
	"github.com/andrewshostak/esports-notifier/internal/infra/http/server/middleware"
	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"
)

type Handlers struct {
	SubscriptionHandler *handler.SubscriptionHandler
	TriggerHandler      *handler.TriggerHandler
}

func NewServer(cfg config.Server, handlers Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	registerRoutes(r, cfg, handlers)

	return r
}

func registerRoutes(r *gin.Engine, cfg config.Server, handlers Handlers) {
	v1 := r.Group("/v1")
	apiKey := v1.Group("").
		Use(middleware.APIKeyAuth(cfg.App.HashedAPIKeys, cfg.App.SecretKey)).
		Use(middleware.Timeout(cfg.App.Timeout))

	googleAuth := v1.Group("").
		Use(middleware.ValidateGoogleAuth(cfg.GoogleCloud.TriggerAudience, cfg.GoogleCloud.TriggerServiceAccount, idtoken.Validate)).
		Use(middleware.Timeout(cfg.App.TriggersTimeout))

	apiKey.POST("/subscriptions", handlers.SubscriptionHandler.Create)
	apiKey.DELETE("/subscriptions", handlers.SubscriptionHandler.Delete)
	apiKey.GET("/subscriptions", handlers.SubscriptionHandler.List)

	googleAuth.POST("/triggers/poll", handlers.TriggerHandler.Poll)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
