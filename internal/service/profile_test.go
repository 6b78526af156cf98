package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/AnshXGrind/ZeroMercy-Vibecraft/internal/domain"
	"github.com/AnshXGrind/ZeroMercy-Vibecraft/internal/service/ports/mocks"
)

func strPtr(s string) *string { return &s }

func TestProfileService_Create_Success(t *testing.T) {
	repo := mocks.NewMockProfileRepo(t)
	svc := NewProfileService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	profile, err := svc.Create(context.Background(), "u1", domain.CreateProfileInput{
		Name:    "Asha",
		College: strPtr("NIT Trichy"),
	})

	require.NoError(t, err)
	assert.Equal(t, "u1", profile.ID)
	// Роль через API всегда user, админа назначают в базе.
	assert.Equal(t, domain.RoleUser, profile.Role)
}

func TestProfileService_Create_NameRequired(t *testing.T) {
	repo := mocks.NewMockProfileRepo(t)
	svc := NewProfileService(repo)

	_, err := svc.Create(context.Background(), "u1", domain.CreateProfileInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestProfileService_Create_Duplicate(t *testing.T) {
	repo := mocks.NewMockProfileRepo(t)
	svc := NewProfileService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrProfileExists)

	_, err := svc.Create(context.Background(), "u1", domain.CreateProfileInput{Name: "Asha"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProfileExists)
}

func TestProfileService_Get_NotFound(t *testing.T) {
	repo := mocks.NewMockProfileRepo(t)
	svc := NewProfileService(repo)

	repo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.ErrProfileNotFound)

	_, err := svc.Get(context.Background(), "ghost")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestProfileService_Update_Success(t *testing.T) {
	repo := mocks.NewMockProfileRepo(t)
	svc := NewProfileService(repo)

	updated := &domain.Profile{ID: "u1", Name: "Asha R", Role: domain.RoleUser}
	repo.EXPECT().Update(mock.Anything, "u1", mock.Anything).Return(updated, nil)

	profile, err := svc.Update(context.Background(), "u1", domain.UpdateProfileInput{
		Name: strPtr("Asha R"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Asha R", profile.Name)
}

func TestProfileService_Update_EmptyName(t *testing.T) {
	repo := mocks.NewMockProfileRepo(t)
	svc := NewProfileService(repo)

	_, err := svc.Update(context.Background(), "u1", domain.UpdateProfileInput{
		Name: strPtr(""),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
