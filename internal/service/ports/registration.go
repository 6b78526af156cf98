package ports

import (
	"context"

	"github.com/AnshXGrind/ZeroMercy-Vibecraft/internal/domain"
)

type RegistrationRepo interface {
	// Create атомарно проверяет вместимость, инкрементирует счётчик
	// участников и вставляет запись в одной транзакции.
	Create(ctx context.Context, r *domain.Registration) error
	GetActiveByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Registration, error)
	GetByIDForUser(ctx context.Context, id, userID string) (*domain.RegistrationWithEvent, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.RegistrationWithEvent, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.RegistrationWithProfile, error)
	Cancel(ctx context.Context, id, userID string) error
	UpdatePayment(ctx context.Context, id, userID string, status domain.PaymentStatus, transactionID *string) (*domain.Registration, error)
}
