package ports

import (
	"context"

	"github.com/AnshXGrind/ZeroMercy-Vibecraft/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
	List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error)
	Update(ctx context.Context, id string, input domain.UpdateEventInput) (*domain.Event, error)
	Deactivate(ctx context.Context, id string) error
	DeactivatePast(ctx context.Context) ([]*domain.Event, error)
}
