package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/AnshXGrind/ZeroMercy-Vibecraft/internal/domain"
	"github.com/AnshXGrind/ZeroMercy-Vibecraft/internal/service/ports"
)

type EventService struct {
	repo        ports.EventRepo
	profileRepo ports.ProfileRepo
	notifier    ports.OpsNotifier
}

func NewEventService(repo ports.EventRepo, profileRepo ports.ProfileRepo, notifier ports.OpsNotifier) *EventService {
	return &EventService{
		repo:        repo,
		profileRepo: profileRepo,
		notifier:    notifier,
	}
}

func (s *EventService) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	return s.repo.List(ctx, filter)
}

func (s *EventService) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	return s.repo.GetDetails(ctx, id)
}

func (s *EventService) Create(ctx context.Context, userID string, input domain.CreateEventInput) (*domain.Event, error) {
	if err := s.requireAdmin(ctx, userID); err != nil {
		return nil, err
	}

	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.Description == "" {
		return nil, fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	if !domain.ValidCategory(input.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, input.Category)
	}
	if input.DateTime.IsZero() {
		return nil, fmt.Errorf("%w: date_time is required", domain.ErrValidation)
	}
	if input.Fee < 0 {
		return nil, fmt.Errorf("%w: fee must be non-negative", domain.ErrValidation)
	}
	if input.MaxParticipants != nil && *input.MaxParticipants <= 0 {
		return nil, fmt.Errorf("%w: max_participants must be positive", domain.ErrValidation)
	}

	event := &domain.Event{
		ID:              uuid.New().String(),
		Title:           input.Title,
		Description:     input.Description,
		Category:        input.Category,
		DateTime:        input.DateTime,
		Venue:           input.Venue,
		MaxParticipants: input.MaxParticipants,
		Fee:             input.Fee,
		ImageURL:        input.ImageURL,
		IsActive:        true,
		CreatedBy:       userID,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *EventService) Update(ctx context.Context, userID, id string, input domain.UpdateEventInput) (*domain.Event, error) {
	if err := s.requireAdmin(ctx, userID); err != nil {
		return nil, err
	}

	if input.Category != nil && !domain.ValidCategory(*input.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, *input.Category)
	}
	if input.Fee != nil && *input.Fee < 0 {
		return nil, fmt.Errorf("%w: fee must be non-negative", domain.ErrValidation)
	}
	if input.MaxParticipants != nil && *input.MaxParticipants <= 0 {
		return nil, fmt.Errorf("%w: max_participants must be positive", domain.ErrValidation)
	}

	event, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	return event, nil
}

// Deactivate — мягкое удаление: событие перестаёт принимать
// регистрации, но остаётся в каталоге по прямой ссылке.
func (s *EventService) Deactivate(ctx context.Context, userID, id string) error {
	if err := s.requireAdmin(ctx, userID); err != nil {
		return err
	}

	return s.repo.Deactivate(ctx, id)
}

func (s *EventService) requireAdmin(ctx context.Context, userID string) error {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return domain.ErrAdminRequired
		}
		return fmt.Errorf("get profile: %w", err)
	}
	if !profile.IsAdmin() {
		return domain.ErrAdminRequired
	}
	return nil
}

// DeactivateExpired вызывается планировщиком: события с прошедшей
// датой перестают принимать новые регистрации.
func (s *EventService) DeactivateExpired(ctx context.Context) ([]*domain.Event, error) {
	events, err := s.repo.DeactivatePast(ctx)
	if err != nil {
		return nil, fmt.Errorf("deactivate past events: %w", err)
	}

	if len(events) > 0 {
		go s.notifier.NotifyEventsDeactivated(context.WithoutCancel(ctx), events)
	}

	return events, nil
}
