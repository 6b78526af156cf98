package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/AnshXGrind/ZeroMercy-Vibecraft/internal/domain"
	"github.com/AnshXGrind/ZeroMercy-Vibecraft/internal/service/ports"
)

type RegistrationService struct {
	regRepo     ports.RegistrationRepo
	eventRepo   ports.EventRepo
	profileRepo ports.ProfileRepo
	notifier    ports.OpsNotifier
	logger      logger.Logger
}

func NewRegistrationService(
	regRepo ports.RegistrationRepo,
	eventRepo ports.EventRepo,
	profileRepo ports.ProfileRepo,
	notifier ports.OpsNotifier,
	logger logger.Logger,
) *RegistrationService {
	return &RegistrationService{
		regRepo:     regRepo,
		eventRepo:   eventRepo,
		profileRepo: profileRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// Register проверяет предусловия в фиксированном порядке: событие
// существует, активно, есть места, нет активной регистрации. Проверка
// дубликата здесь — ранний отказ; гонку закрывает уникальный индекс,
// нарушение которого репозиторий переводит в ErrAlreadyRegistered.
func (s *RegistrationService) Register(ctx context.Context, userID, eventID string) (*domain.CreatedRegistration, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	if !event.IsActive {
		return nil, domain.ErrEventNotActive
	}
	if event.IsFull() {
		return nil, domain.ErrEventFull
	}

	existing, err := s.regRepo.GetActiveByEventAndUser(ctx, eventID, userID)
	if err != nil && !errors.Is(err, domain.ErrRegistrationNotFound) {
		return nil, fmt.Errorf("check existing registration: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrAlreadyRegistered
	}

	paymentStatus := domain.PaymentStatusPending
	if event.Fee == 0 {
		paymentStatus = domain.PaymentStatusCompleted
	}

	reg := &domain.Registration{
		ID:            uuid.New().String(),
		UserID:        userID,
		EventID:       eventID,
		Status:        domain.RegistrationStatusRegistered,
		PaymentStatus: paymentStatus,
		CreatedAt:     time.Now().UTC(),
	}
	if err = s.regRepo.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}

	s.logger.Info("registration created",
		logger.String("registration_id", reg.ID),
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
		logger.String("payment_status", string(paymentStatus)),
	)

	go s.notifier.NotifyRegistrationCreated(context.WithoutCancel(ctx), reg, event)

	return &domain.CreatedRegistration{
		Registration: *reg,
		EventTitle:   event.Title,
		EventFee:     event.Fee,
	}, nil
}

func (s *RegistrationService) ListMine(ctx context.Context, userID string) ([]*domain.RegistrationWithEvent, error) {
	return s.regRepo.ListByUser(ctx, userID)
}

// Get отдаёт регистрацию только владельцу: фильтр по user_id зашит в
// запрос, чужая запись выглядит как отсутствующая.
func (s *RegistrationService) Get(ctx context.Context, userID, registrationID string) (*domain.RegistrationWithEvent, error) {
	return s.regRepo.GetByIDForUser(ctx, registrationID, userID)
}

func (s *RegistrationService) Cancel(ctx context.Context, userID, registrationID string) (string, error) {
	rw, err := s.regRepo.GetByIDForUser(ctx, registrationID, userID)
	if err != nil {
		return "", fmt.Errorf("get registration: %w", err)
	}

	if !rw.Active() {
		return "", domain.ErrRegistrationNotActive
	}
	if rw.Event.DateTime.Before(time.Now()) {
		return "", domain.ErrEventStarted
	}

	if err = s.regRepo.Cancel(ctx, registrationID, userID); err != nil {
		return "", fmt.Errorf("cancel registration: %w", err)
	}

	s.logger.Info("registration cancelled",
		logger.String("registration_id", registrationID),
		logger.String("event_id", rw.EventID),
		logger.String("user_id", userID),
	)

	go s.notifier.NotifyRegistrationCancelled(context.WithoutCancel(ctx), &rw.Registration, &rw.Event)

	return rw.Event.Title, nil
}

// UpdatePayment намеренно не ограничивает переходы между платёжными
// статусами: обновления приходят и от платёжных вебхуков.
func (s *RegistrationService) UpdatePayment(ctx context.Context, userID, registrationID string, status domain.PaymentStatus, transactionID *string) (*domain.Registration, error) {
	if !domain.ValidPaymentStatus(status) {
		return nil, fmt.Errorf("%w: unknown payment status %q", domain.ErrValidation, status)
	}

	reg, err := s.regRepo.UpdatePayment(ctx, registrationID, userID, status, transactionID)
	if err != nil {
		return nil, fmt.Errorf("update payment: %w", err)
	}

	s.logger.Info("payment status updated",
		logger.String("registration_id", registrationID),
		logger.String("payment_status", string(status)),
	)

	return reg, nil
}

// ListForEvent доступен только администраторам; роль каждый раз
// перечитывается из профиля, а не берётся из запроса.
func (s *RegistrationService) ListForEvent(ctx context.Context, userID, eventID string) ([]*domain.RegistrationWithProfile, error) {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, domain.ErrAdminRequired
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if !profile.IsAdmin() {
		return nil, domain.ErrAdminRequired
	}

	return s.regRepo.ListByEvent(ctx, eventID)
}
