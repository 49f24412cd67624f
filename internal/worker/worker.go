package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/cipettelens/cipettelens/internal/models"
)

// Collector runs one collection and persists the result.
type Collector interface {
	CollectAndSave(ctx context.Context) (*models.CIMetrics, error)
}

// CacheSweeper removes expired cache entries and reports how many.
type CacheSweeper interface {
	SweepCache() int
}

// CollectWorker triggers collection runs on a fixed interval and sweeps
// the repository cache between runs. A collection failure is logged, not
// fatal: the next tick tries again.
type CollectWorker struct {
	interval time.Duration
	service  Collector
	sweeper  CacheSweeper
	logger   *zap.Logger
}

// NewCollectWorker creates a worker. The sweeper may be nil when cache
// maintenance is not wanted.
func NewCollectWorker(
	interval time.Duration,
	service Collector,
	sweeper CacheSweeper,
	logger *zap.Logger,
) *CollectWorker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CollectWorker{
		interval: interval,
		service:  service,
		sweeper:  sweeper,
		logger:   logger,
	}
}

// Start runs one collection immediately, then one per interval until the
// context is cancelled.
func (w *CollectWorker) Start(ctx context.Context) error {
	w.collect(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.collect(ctx)
			if w.sweeper != nil {
				if removed := w.sweeper.SweepCache(); removed > 0 {
					w.logger.Debug("swept expired cache entries", zap.Int("removed", removed))
				}
			}
		}
	}
}

func (w *CollectWorker) collect(ctx context.Context) {
	metrics, err := w.service.CollectAndSave(ctx)
	if err != nil {
		w.logger.Error("collection run failed", zap.Error(err))
		return
	}
	w.logger.Info("collection run completed",
		zap.Int("repositories", len(metrics.Repositories)),
	)
}
