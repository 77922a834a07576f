package poll

import (
	"context"
	"fmt"
	"time"

	"github.com/andrewshostak/esports-notifier/config"
	"github.com/andrewshostak/esports-notifier/internal/app/models"
	"github.com/andrewshostak/esports-notifier/internal/app/team"
	"golang.org/x/sync/errgroup"
)

type Orchestrator struct {
	extractor Extractor
	store     Store
	notifier  Notifier
	locker    Locker
	logger    Logger
	config    config.Poll
}

func NewOrchestrator(
	extractor Extractor,
	store Store,
	notifier Notifier,
	locker Locker,
	logger Logger,
	config config.Poll,
) *Orchestrator {
	return &Orchestrator{
		extractor: extractor,
		store:     store,
		notifier:  notifier,
		locker:    locker,
		logger:    logger,
		config:    config,
	}
}

// Poll runs one cycle over every watched team. A failing team never affects the others;
// its error is kept in its report.
func (o *Orchestrator) Poll(ctx context.Context) models.CycleReport {
	report := models.CycleReport{StartedAt: time.Now().UTC()}

	if err := o.store.Refresh(ctx); err != nil {
		o.logger.Error().Err(err).Msg("polling teams known to this process")
	}

	watched := o.store.WatchedTeams()
	report.Teams = make([]models.TeamReport, len(watched))

	g := errgroup.Group{}
	g.SetLimit(max(o.config.TeamConcurrency, 1))

	for i, w := range watched {
		g.Go(func() error {
			report.Teams[i] = o.PollTeam(ctx, w)
			return nil
		})
	}

	_ = g.Wait()

	report.FinishedAt = time.Now().UTC()

	o.logger.Info().
		Int("teams", len(report.Teams)).
		Dur("duration", report.FinishedAt.Sub(report.StartedAt)).
		Msg("poll cycle finished")

	return report
}

// PollTeam extracts candidates for the team, notifies current subscribers of every unseen match
// and commits the match id once all deliveries were attempted. Seen sets are refreshed under the
// team lock, so matches committed by another process holding the same lock are not sent again.
func (o *Orchestrator) PollTeam(ctx context.Context, watched models.WatchedTeam) models.TeamReport {
	report := models.TeamReport{Team: watched.Name}

	unlock, err := o.lock(ctx, watched.Key)
	if err != nil {
		o.logger.Error().Err(err).Str("team", watched.Name).Msg("skipping team")
		report.Err = err
		return report
	}

	defer unlock()

	if err := o.store.Refresh(ctx); err != nil {
		o.logger.Error().Err(err).Str("team", watched.Name).Msg("skipping team")
		report.Err = err
		return report
	}

	candidates, err := o.extractor.Extract(ctx, watched.Name)
	if err != nil {
		o.logger.Error().Err(err).Str("team", watched.Name).Msg("failed to extract matches")
		report.Err = fmt.Errorf("failed to extract matches: %w", err)
		return report
	}

	report.Candidates = len(candidates)

	matched := team.Filter(candidates, watched.Key)
	report.Matched = len(matched)

	for _, candidate := range matched {
		if !o.store.IsNew(watched.Key, candidate.ID) {
			continue
		}

		report.New++
		o.logger.Info().Str("team", watched.Name).Str("match_id", candidate.ID).Msg("new match found")

		results := o.notifier.FanOut(ctx, o.store.SubscriptionsByTeam(watched.Key), candidate)
		for _, result := range results {
			if result.Status == models.Delivered {
				report.Delivered++
			} else {
				report.Failed++
			}
		}

		if err := o.store.Commit(ctx, watched.Key, candidate.ID); err != nil {
			o.logger.Error().Err(err).
				Str("team", watched.Name).
				Str("match_id", candidate.ID).
				Msg("seen match is not persisted and may be notified again after restart")
			report.Err = err
		}
	}

	o.logger.Debug().
		Str("team", watched.Name).
		Int("candidates", report.Candidates).
		Int("matched", report.Matched).
		Int("new", report.New).
		Int("delivered", report.Delivered).
		Int("failed", report.Failed).
		Msg("team polled")

	return report
}

func (o *Orchestrator) lock(ctx context.Context, key string) (func(), error) {
	if o.config.LockTimeout <= 0 {
		return o.locker.Lock(ctx, key)
	}

	lockCtx, cancel := context.WithTimeout(ctx, o.config.LockTimeout)
	defer cancel()

	return o.locker.Lock(lockCtx, key)
}
