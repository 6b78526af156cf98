package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/AnshXGrind/ZeroMercy-Vibecraft/internal/domain"
	"github.com/AnshXGrind/ZeroMercy-Vibecraft/internal/service/ports/mocks"
)

func newEventService(t *testing.T) (*mocks.MockEventRepo, *mocks.MockProfileRepo, *mocks.MockOpsNotifier, *EventService) {
	t.Helper()
	repo := mocks.NewMockEventRepo(t)
	profileRepo := mocks.NewMockProfileRepo(t)
	notifier := mocks.NewMockOpsNotifier(t)
	return repo, profileRepo, notifier, NewEventService(repo, profileRepo, notifier)
}

func adminProfile() *domain.Profile {
	return &domain.Profile{ID: "a1", Name: "Org", Role: domain.RoleAdmin}
}

func validCreateInput() domain.CreateEventInput {
	return domain.CreateEventInput{
		Title:       "Hackathon",
		Description: "24h build sprint",
		Category:    domain.CategoryTechnical,
		DateTime:    time.Now().Add(72 * time.Hour),
		Venue:       "Main Auditorium",
		Fee:         250,
	}
}

func TestEventService_Create_Success(t *testing.T) {
	repo, profileRepo, _, svc := newEventService(t)

	profileRepo.EXPECT().GetByID(mock.Anything, "a1").Return(adminProfile(), nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.Create(context.Background(), "a1", validCreateInput())

	require.NoError(t, err)
	assert.Equal(t, "Hackathon", event.Title)
	assert.Equal(t, "a1", event.CreatedBy)
	assert.True(t, event.IsActive)
	assert.NotEmpty(t, event.ID)
}

func TestEventService_Create_NonAdmin(t *testing.T) {
	_, profileRepo, _, svc := newEventService(t)

	user := &domain.Profile{ID: "u1", Name: "Student", Role: domain.RoleUser}
	profileRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)

	_, err := svc.Create(context.Background(), "u1", validCreateInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAdminRequired)
}

func TestEventService_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.CreateEventInput)
	}{
		{"missing title", func(in *domain.CreateEventInput) { in.Title = "" }},
		{"missing description", func(in *domain.CreateEventInput) { in.Description = "" }},
		{"unknown category", func(in *domain.CreateEventInput) { in.Category = "rave" }},
		{"zero date", func(in *domain.CreateEventInput) { in.DateTime = time.Time{} }},
		{"negative fee", func(in *domain.CreateEventInput) { in.Fee = -1 }},
		{"non-positive capacity", func(in *domain.CreateEventInput) { in.MaxParticipants = intPtr(0) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, profileRepo, _, svc := newEventService(t)
			profileRepo.EXPECT().GetByID(mock.Anything, "a1").Return(adminProfile(), nil)

			input := validCreateInput()
			tc.mutate(&input)

			_, err := svc.Create(context.Background(), "a1", input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestEventService_Update_Success(t *testing.T) {
	repo, profileRepo, _, svc := newEventService(t)

	title := "Hackathon 2.0"
	updated := &domain.Event{ID: "e1", Title: title}

	profileRepo.EXPECT().GetByID(mock.Anything, "a1").Return(adminProfile(), nil)
	repo.EXPECT().Update(mock.Anything, "e1", mock.Anything).Return(updated, nil)

	event, err := svc.Update(context.Background(), "a1", "e1", domain.UpdateEventInput{Title: &title})

	require.NoError(t, err)
	assert.Equal(t, "Hackathon 2.0", event.Title)
}

func TestEventService_Update_NonAdmin(t *testing.T) {
	_, profileRepo, _, svc := newEventService(t)

	user := &domain.Profile{ID: "u1", Role: domain.RoleUser}
	profileRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)

	title := "nope"
	_, err := svc.Update(context.Background(), "u1", "e1", domain.UpdateEventInput{Title: &title})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAdminRequired)
}

func TestEventService_Update_BadCategory(t *testing.T) {
	_, profileRepo, _, svc := newEventService(t)

	profileRepo.EXPECT().GetByID(mock.Anything, "a1").Return(adminProfile(), nil)

	bad := domain.EventCategory("rave")
	_, err := svc.Update(context.Background(), "a1", "e1", domain.UpdateEventInput{Category: &bad})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Deactivate_Success(t *testing.T) {
	repo, profileRepo, _, svc := newEventService(t)

	profileRepo.EXPECT().GetByID(mock.Anything, "a1").Return(adminProfile(), nil)
	repo.EXPECT().Deactivate(mock.Anything, "e1").Return(nil)

	err := svc.Deactivate(context.Background(), "a1", "e1")

	require.NoError(t, err)
}

func TestEventService_Deactivate_NotFound(t *testing.T) {
	repo, profileRepo, _, svc := newEventService(t)

	profileRepo.EXPECT().GetByID(mock.Anything, "a1").Return(adminProfile(), nil)
	repo.EXPECT().Deactivate(mock.Anything, "missing").Return(domain.ErrEventNotFound)

	err := svc.Deactivate(context.Background(), "a1", "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_List_PassesFilter(t *testing.T) {
	repo, _, _, svc := newEventService(t)

	filter := domain.EventFilter{Category: "technical", Search: "robo"}
	events := []*domain.Event{{ID: "e1", Title: "Robo Wars"}}
	repo.EXPECT().List(mock.Anything, filter).Return(events, nil)

	result, err := svc.List(context.Background(), filter)

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestEventService_DeactivateExpired_Notifies(t *testing.T) {
	repo, _, notifier, svc := newEventService(t)

	expired := []*domain.Event{
		{ID: "e1", Title: "Old Fest"},
		{ID: "e2", Title: "Older Fest"},
	}
	repo.EXPECT().DeactivatePast(mock.Anything).Return(expired, nil)
	notifier.EXPECT().NotifyEventsDeactivated(mock.Anything, expired).Return()

	result, err := svc.DeactivateExpired(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestEventService_DeactivateExpired_NoneExpired(t *testing.T) {
	repo, _, _, svc := newEventService(t)

	repo.EXPECT().DeactivatePast(mock.Anything).Return(nil, nil)

	result, err := svc.DeactivateExpired(context.Background())

	require.NoError(t, err)
	assert.Empty(t, result)
}
