// Package orphansweep deletes worker rows left behind when an incident
// submission failed after its worker was created.
package orphansweep

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/robfig/cron/v3"

	"tikkeul/internal/metrics"
	"tikkeul/internal/pkg/logger"
	"tikkeul/internal/ports"
)

type Sweeper struct {
	repo  ports.OrphanRepository
	grace time.Duration
	clock clockwork.Clock
}

func New(repo ports.OrphanRepository, grace time.Duration, clock clockwork.Clock) *Sweeper {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Sweeper{repo: repo, grace: grace, clock: clock}
}

// SweepOnce deletes orphans older than the grace period.
func (s *Sweeper) SweepOnce(ctx context.Context) (int64, error) {
	cutoff := s.clock.Now().Add(-s.grace)
	n, err := s.repo.DeleteOrphanWorkers(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		metrics.OrphanWorkersSweptTotal.Add(float64(n))
		logger.Infof(ctx, "orphan sweep: deleted %d workers created before %s", n, cutoff.Format(time.RFC3339))
	}
	return n, nil
}

// Run sweeps on schedule until ctx is done. An empty schedule disables the
// sweeper.
func (s *Sweeper) Run(ctx context.Context, schedule string) error {
	if schedule == "" {
		logger.Infof(ctx, "orphan sweep disabled")
		return nil
	}
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		if _, err := s.SweepOnce(ctx); err != nil {
			logger.Errorf(ctx, "orphan sweep failed: %v", err)
		}
	})
	if err != nil {
		return err
	}
	c.Start()
	logger.Infof(ctx, "orphan sweep scheduled (%s, grace %s)", schedule, s.grace)
	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}
