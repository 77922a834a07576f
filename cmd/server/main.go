package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/andrewshostak/esports-notifier/config"
	"github.com/andrewshostak/esports-notifier/internal/adapters/http/server/handler"
	"github.com/andrewshostak/esports-notifier/internal/app/subscription"
	"github.com/andrewshostak/esports-notifier/internal/infra/bootstrap"
	"github.com/andrewshostak/esports-notifier/internal/infra/http/server"
	loggerinternal "github.com/andrewshostak/esports-notifier/internal/infra/logger"
	"github.com/andrewshostak/esports-notifier/internal/infra/scheduler"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

func main() {
	rootCmd := &cobra.Command{
		Use:   "run",
		Short: "Server starts the http api and the poll scheduler",
		RunE:  startServer,
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func startServer(_ *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	cfg := config.Parse[config.Server]()

	logger, closeLogger, err := loggerinternal.FromConfig(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	core, closeCore, err := bootstrap.NewCore(ctx, cfg.Core, logger)
	if err != nil {
		logger.Error().Err(err).Msg("failed to initialize")
		return err
	}
	defer closeCore()

	subscriptionService := subscription.NewSubscriptionService(core.Store, logger)

	subscriptionHandler := handler.NewSubscriptionHandler(subscriptionService)
	triggerHandler := handler.NewTriggerHandler(core.Orchestrator)

	sched, err := scheduler.NewScheduler(core.Orchestrator, logger, cfg.Poll)
	if err != nil {
		logger.Error().Err(err).Msg("failed to create scheduler")
		return err
	}

	gin.SetMode(gin.ReleaseMode)
	r := server.NewServer(cfg, server.Handlers{
		SubscriptionHandler: subscriptionHandler,
		TriggerHandler:      triggerHandler,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.App.Port),
		Handler: r,
	}

	sched.Start()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Str("port", cfg.App.Port).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info().Msg("shutting down")
	case err := <-serverErr:
		if err != nil {
			logger.Error().Err(err).Msg("server stopped")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shut down server")
	}

	if err := sched.Stop(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to stop scheduler")
	}

	return nil
}
