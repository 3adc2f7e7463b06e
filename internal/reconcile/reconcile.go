package reconcile

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/panelmart/internal/config"
	"github.com/GlebRadaev/panelmart/internal/domain"
)

// stuckAfter is how long an intent may sit in remote_done before the sweep
// picks it up. Keeps the sweeper from racing a request that is still inside
// its own commit.
const stuckAfter = 30 * time.Second

const batchLimit = 100

type IntentRepo interface {
	FindStuck(ctx context.Context, olderThan time.Duration, limit int) ([]domain.ProvisionIntent, error)
}

type Committer interface {
	CommitIntent(ctx context.Context, intent domain.ProvisionIntent) error
}

var inflightIntents sync.Map

// Service periodically re-commits intents whose remote call succeeded but
// whose local commit never landed. It never replays remote calls.
type Service struct {
	intentRepo    IntentRepo
	committer     Committer
	workerPool    WorkerPoolI
	sweepInterval time.Duration
}

func New(cfg *config.Config, intentRepo IntentRepo, committer Committer) *Service {
	return &Service{
		intentRepo:    intentRepo,
		committer:     committer,
		workerPool:    NewWorkerPool(10),
		sweepInterval: cfg.SweepInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Reconcile service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping reconciler")
			s.workerPool.Close()
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	intents, err := s.intentRepo.FindStuck(ctx, stuckAfter, batchLimit)
	if err != nil {
		zap.L().Error("Failed to fetch stuck intents", zap.Error(err))
		return
	}
	if len(intents) == 0 {
		return
	}

	zap.L().Warn("found intents with remote state ahead of local state",
		zap.Int("count", len(intents)),
	)

	var g errgroup.Group
	for _, intent := range intents {
		intent := intent

		if _, loaded := inflightIntents.LoadOrStore(intent.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer inflightIntents.Delete(intent.ID)
				return s.recommit(ctx, intent)
			})
			if err != nil {
				inflightIntents.Delete(intent.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error scheduling intent recommits", zap.Error(err))
	}
}

func (s *Service) recommit(ctx context.Context, intent domain.ProvisionIntent) error {
	if err := s.committer.CommitIntent(ctx, intent); err != nil {
		zap.L().Error("intent recommit failed, will retry next sweep",
			zap.String("intentID", intent.ID.String()),
			zap.String("username", intent.Username),
			zap.Int("panelID", intent.PanelID),
			zap.Error(err),
		)
		return err
	}
	zap.L().Info("intent recommitted",
		zap.String("intentID", intent.ID.String()),
		zap.String("username", intent.Username),
		zap.Int("panelID", intent.PanelID),
		zap.String("cost", intent.Cost.StringFixed(2)),
	)
	return nil
}
