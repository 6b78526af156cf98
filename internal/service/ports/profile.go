package ports

import (
	"context"

	"github.com/AnshXGrind/ZeroMercy-Vibecraft/internal/domain"
)

type ProfileRepo interface {
	Create(ctx context.Context, p *domain.Profile) error
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	Update(ctx context.Context, id string, input domain.UpdateProfileInput) (*domain.Profile, error)
}
