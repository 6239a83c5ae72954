package application

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/petition-tracker/internal/domain"
	"github.com/bnema/petition-tracker/internal/ports"
)

const DefaultPollConcurrency = 8

type PollOptions struct {
	Concurrency int
	Logger      *zap.Logger
}

// PollService copies petitions and their signature counts from the
// parliament service into the record store.
type PollService struct {
	upstream    ports.ParliamentAPI
	store       ports.PetitionStore
	clock       ports.Clock
	logger      *zap.Logger
	concurrency int
	newRunID    func() string
}

func NewPollService(upstream ports.ParliamentAPI, store ports.PetitionStore, clock ports.Clock, opts PollOptions) *PollService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultPollConcurrency
	}

	return &PollService{
		upstream:    upstream,
		store:       store,
		clock:       clock,
		logger:      logger,
		concurrency: concurrency,
		newRunID:    uuid.NewString,
	}
}

// PollAll records a snapshot of every open petition in the store. A failing
// petition is reported in the result and does not stop the run.
func (s *PollService) PollAll(ctx context.Context) (PollResult, error) {
	result := PollResult{RunID: s.newRunID(), StartedAt: s.clock.Now()}
	logger := s.logger.With(zap.String("run_id", result.RunID))

	targets, err := s.store.PollTargets(ctx)
	if err != nil {
		return result, fmt.Errorf("list poll targets: %w", err)
	}
	logger.Info("poll started", zap.Int("targets", len(targets)))

	result.Recorded, result.Failed = s.track(ctx, logger, targets)
	result.Elapsed = s.clock.Now().Sub(result.StartedAt)
	if err := ctx.Err(); err != nil {
		return result, err
	}

	logger.Info("poll finished",
		zap.Int("recorded", len(result.Recorded)),
		zap.Int("failed", len(result.Failed)),
		zap.Duration("elapsed", result.Elapsed),
	)

	return result, nil
}

// Populate walks the upstream listing for a state and starts tracking every
// petition the store does not know yet. MaxPages <= 0 walks every page.
func (s *PollService) Populate(ctx context.Context, cmd PopulateCommand) (PopulateResult, error) {
	result := PopulateResult{RunID: s.newRunID()}
	logger := s.logger.With(zap.String("run_id", result.RunID), zap.String("state", stateName(cmd.State)))

	var unseen []domain.PetitionID
	for page := 1; cmd.MaxPages <= 0 || page <= cmd.MaxPages; page++ {
		ids, more, err := s.upstream.ListPage(ctx, cmd.State, page)
		if err != nil {
			return result, fmt.Errorf("list upstream petitions: %w", err)
		}
		result.Pages++
		result.Seen += len(ids)

		for _, id := range ids {
			known, err := s.store.HasPetition(ctx, id)
			if err != nil {
				return result, err
			}
			if known {
				result.Skipped++
				continue
			}
			unseen = append(unseen, id)
		}

		if !more {
			break
		}
	}

	logger.Info("populating petitions", zap.Int("pages", result.Pages), zap.Int("new", len(unseen)))
	result.Added, result.Failed = s.track(ctx, logger, unseen)
	if err := ctx.Err(); err != nil {
		return result, err
	}

	return result, nil
}

func (s *PollService) track(ctx context.Context, logger *zap.Logger, ids []domain.PetitionID) ([]domain.PetitionID, []PollFailure) {
	var (
		mu       sync.Mutex
		recorded []domain.PetitionID
		failed   []PollFailure
	)

	var group errgroup.Group
	group.SetLimit(s.concurrency)
	for _, id := range ids {
		group.Go(func() error {
			err := s.pollOne(ctx, id)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				logger.Warn("poll petition failed", zap.Int64("petition_id", int64(id)), zap.Error(err))
				failed = append(failed, PollFailure{PetitionID: id, Err: err})
				return nil
			}
			recorded = append(recorded, id)
			return nil
		})
	}
	// Failures are collected in failed, so Wait never returns an error.
	_ = group.Wait()

	sort.Slice(recorded, func(i, j int) bool { return recorded[i] < recorded[j] })
	sort.Slice(failed, func(i, j int) bool { return failed[i].PetitionID < failed[j].PetitionID })

	return recorded, failed
}

func (s *PollService) pollOne(ctx context.Context, id domain.PetitionID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	started := time.Now()
	snapshot, err := s.upstream.FetchPetition(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.SavePetition(ctx, snapshot.Petition); err != nil {
		return err
	}
	if err := s.store.AddRecord(ctx, snapshot.Record); err != nil {
		return err
	}

	s.logger.Debug("petition recorded",
		zap.Int64("petition_id", int64(id)),
		zap.Int64("signatures", snapshot.Record.Total),
		zap.Duration("elapsed", time.Since(started)),
	)

	return nil
}

func stateName(state domain.PetitionState) string {
	if state == "" {
		return "all"
	}
	return string(state)
}
