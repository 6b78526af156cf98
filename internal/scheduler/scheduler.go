package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/AnshXGrind/ZeroMercy-Vibecraft/internal/domain"
)

type eventExpirer interface {
	DeactivateExpired(ctx context.Context) ([]*domain.Event, error)
}

// Scheduler периодически закрывает регистрацию на события с
// прошедшей датой.
type Scheduler struct {
	eventService eventExpirer
	interval     time.Duration
	logger       logger.Logger
}

func New(
	eventService eventExpirer,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		eventService: eventService,
		interval:     interval,
		logger:       logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	expired, err := s.eventService.DeactivateExpired(ctx)
	if err != nil {
		s.logger.Error("failed to deactivate expired events",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, e := range expired {
		s.logger.Info("event expired",
			logger.String("event_id", e.ID),
			logger.String("title", e.Title),
		)
	}
}
