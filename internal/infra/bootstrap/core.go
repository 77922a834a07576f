// Package bootstrap wires the poll pipeline from configuration. It is shared by the server and
// the one-shot poll command.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"

	"github.com/andrewshostak/esports-notifier/config"
	"github.com/andrewshostak/esports-notifier/internal/adapters/http/client/hltv"
	"github.com/andrewshostak/esports-notifier/internal/adapters/http/client/pandascore"
	"github.com/andrewshostak/esports-notifier/internal/adapters/http/client/webhook"
	"github.com/andrewshostak/esports-notifier/internal/adapters/lock"
	"github.com/andrewshostak/esports-notifier/internal/adapters/storage/jsonfile"
	"github.com/andrewshostak/esports-notifier/internal/adapters/storage/memory"
	"github.com/andrewshostak/esports-notifier/internal/adapters/storage/postgres"
	"github.com/andrewshostak/esports-notifier/internal/app/extract"
	"github.com/andrewshostak/esports-notifier/internal/app/notify"
	"github.com/andrewshostak/esports-notifier/internal/app/poll"
	"github.com/andrewshostak/esports-notifier/internal/app/store"
	pginfra "github.com/andrewshostak/esports-notifier/internal/infra/postgres"
	"github.com/rs/zerolog"
)

type Core struct {
	Store        *store.Store
	Orchestrator *poll.Orchestrator
}

// NewCore builds every collaborator and loads persisted state. The returned closer releases
// database and redis connections.
func NewCore(ctx context.Context, cfg config.Core, logger *zerolog.Logger) (*Core, func(), error) {
	closers := make([]func(), 0)
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	storage, closeStorage, err := newStorage(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	closers = append(closers, closeStorage)

	s := store.NewStore(storage, logger)
	if err := s.Load(ctx); err != nil {
		closeAll()
		return nil, nil, err
	}

	upstream, err := newUpstream(cfg.Upstream, logger)
	if err != nil {
		closeAll()
		return nil, nil, err
	}

	locker, closeLocker, err := newLocker(ctx, cfg.Redis, logger)
	if err != nil {
		closeAll()
		return nil, nil, err
	}
	closers = append(closers, closeLocker)

	deliveryClient := webhook.NewWebhookClient(&http.Client{}, logger, cfg.Delivery)

	orchestrator := poll.NewOrchestrator(
		extract.NewExtractor(upstream, logger),
		s,
		notify.NewNotifier(deliveryClient, cfg.Delivery.Concurrency, logger),
		locker,
		logger,
		cfg.Poll,
	)

	return &Core{Store: s, Orchestrator: orchestrator}, closeAll, nil
}

func newStorage(cfg config.Core, logger *zerolog.Logger) (store.Storage, func(), error) {
	switch cfg.Storage.Kind {
	case config.StorageFile:
		return jsonfile.NewStorage(cfg.Storage.FilePath), func() {}, nil
	case config.StorageMemory:
		return memory.NewStorage(), func() {}, nil
	case config.StoragePostgres:
		db, err := pginfra.EstablishDatabaseConnection(cfg.PG, logger)
		if err != nil {
			return nil, nil, err
		}

		closer := func() {
			sqlDB, err := db.DB()
			if err != nil {
				return
			}
			if err := sqlDB.Close(); err != nil {
				logger.Error().Err(err).Msg("failed to close database connection")
			}
		}

		return postgres.NewStorage(db), closer, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage kind %q", cfg.Storage.Kind)
	}
}

func newUpstream(cfg config.Upstream, logger *zerolog.Logger) (extract.Upstream, error) {
	httpClient := &http.Client{Timeout: cfg.Timeout}

	switch cfg.Kind {
	case config.UpstreamHTML:
		return hltv.NewHLTVClient(httpClient, logger, cfg), nil
	case config.UpstreamAPI:
		if cfg.APIToken == "" {
			return nil, fmt.Errorf("UPSTREAM_API_TOKEN is required for %s upstream", cfg.Kind)
		}
		return pandascore.NewPandaScoreClient(httpClient, logger, cfg), nil
	default:
		return nil, fmt.Errorf("unknown upstream kind %q", cfg.Kind)
	}
}

func newLocker(ctx context.Context, cfg config.Redis, logger *zerolog.Logger) (poll.Locker, func(), error) {
	if cfg.Addr == "" {
		return lock.NewLocalLocker(), func() {}, nil
	}

	client := lock.NewRedisClient(cfg)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	closer := func() {
		if err := client.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close redis connection")
		}
	}

	return lock.NewRedisLocker(client, logger, cfg), closer, nil
}
