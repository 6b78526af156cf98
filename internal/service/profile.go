package service

import (
	"context"
	"fmt"

	"github.com/AnshXGrind/ZeroMercy-Vibecraft/internal/domain"
	"github.com/AnshXGrind/ZeroMercy-Vibecraft/internal/service/ports"
)

type ProfileService struct {
	repo ports.ProfileRepo
}

func NewProfileService(repo ports.ProfileRepo) *ProfileService {
	return &ProfileService{repo: repo}
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	return s.repo.GetByID(ctx, userID)
}

// Create заводит профиль для собственного identity. Роль всегда user:
// админа назначают напрямую в базе, через API это сделать нельзя.
func (s *ProfileService) Create(ctx context.Context, userID string, input domain.CreateProfileInput) (*domain.Profile, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	profile := &domain.Profile{
		ID:      userID,
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		College: input.College,
		Role:    domain.RoleUser,
	}

	if err := s.repo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}

	return profile, nil
}

func (s *ProfileService) Update(ctx context.Context, userID string, input domain.UpdateProfileInput) (*domain.Profile, error) {
	if input.Name != nil && *input.Name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", domain.ErrValidation)
	}

	profile, err := s.repo.Update(ctx, userID, input)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	return profile, nil
}
