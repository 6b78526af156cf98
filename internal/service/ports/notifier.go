package ports

import (
	"context"

	"github.com/AnshXGrind/ZeroMercy-Vibecraft/internal/domain"
)

// OpsNotifier шлёт уведомления в служебный канал организаторов.
type OpsNotifier interface {
	NotifyRegistrationCreated(ctx context.Context, reg *domain.Registration, event *domain.Event)
	NotifyRegistrationCancelled(ctx context.Context, reg *domain.Registration, event *domain.Event)
	NotifyEventsDeactivated(ctx context.Context, events []*domain.Event)
}
