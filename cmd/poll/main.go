package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/andrewshostak/esports-notifier/config"
	"github.com/andrewshostak/esports-notifier/internal/infra/bootstrap"
	loggerinternal "github.com/andrewshostak/esports-notifier/internal/infra/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "run",
		Short: "Runs one poll cycle over all watched teams and exits",
		RunE:  run,
	}

	rootCmd.Flags().Bool("fail-on-error", false, "exit with non-zero status when any team fails")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	failOnError, err := cmd.Flags().GetBool("fail-on-error")
	if err != nil {
		return err
	}

	_ = godotenv.Load()

	cfg := config.Parse[config.PollOnce]()

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

	report := core.Orchestrator.Poll(ctx)

	failed := 0
	for _, team := range report.Teams {
		event := logger.Info()
		if team.Err != nil {
			failed++
			event = logger.Error().Err(team.Err)
		}

		event.
			Str("team", team.Team).
			Int("candidates", team.Candidates).
			Int("matched", team.Matched).
			Int("new", team.New).
			Int("delivered", team.Delivered).
			Int("failed", team.Failed).
			Msg("team polled")
	}

	if failOnError && failed > 0 {
		return errors.New("some teams failed to poll")
	}

	return nil
}
