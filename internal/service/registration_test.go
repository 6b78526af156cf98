package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/AnshXGrind/ZeroMercy-Vibecraft/internal/domain"
	"github.com/AnshXGrind/ZeroMercy-Vibecraft/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newRegistrationService(t *testing.T) (*mocks.MockRegistrationRepo, *mocks.MockEventRepo, *mocks.MockProfileRepo, *mocks.MockOpsNotifier, *RegistrationService) {
	t.Helper()
	regRepo := mocks.NewMockRegistrationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	profileRepo := mocks.NewMockProfileRepo(t)
	notifier := mocks.NewMockOpsNotifier(t)
	svc := NewRegistrationService(regRepo, eventRepo, profileRepo, notifier, newTestLogger(t))
	return regRepo, eventRepo, profileRepo, notifier, svc
}

func intPtr(v int) *int { return &v }

func futureEvent(id string, fee float64) *domain.Event {
	return &domain.Event{
		ID:       id,
		Title:    "Robo Wars",
		Category: domain.CategoryTechnical,
		DateTime: time.Now().Add(48 * time.Hour),
		Fee:      fee,
		IsActive: true,
	}
}

func TestRegistrationService_Register_FreeEvent(t *testing.T) {
	regRepo, eventRepo, _, notifier, svc := newRegistrationService(t)

	event := futureEvent("e1", 0)
	event.MaxParticipants = intPtr(1)
	event.CurrentParticipants = 0

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	regRepo.EXPECT().GetActiveByEventAndUser(mock.Anything, "e1", "u1").
		Return(nil, domain.ErrRegistrationNotFound)
	regRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyRegistrationCreated(mock.Anything, mock.Anything, event).Return()

	created, err := svc.Register(context.Background(), "u1", "e1")

	require.NoError(t, err)
	assert.Equal(t, domain.RegistrationStatusRegistered, created.Registration.Status)
	assert.Equal(t, domain.PaymentStatusCompleted, created.Registration.PaymentStatus)
	assert.Equal(t, "Robo Wars", created.EventTitle)
	assert.Zero(t, created.EventFee)
	assert.NotEmpty(t, created.Registration.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestRegistrationService_Register_PaidEvent(t *testing.T) {
	regRepo, eventRepo, _, notifier, svc := newRegistrationService(t)

	event := futureEvent("e2", 500)

	eventRepo.EXPECT().GetByID(mock.Anything, "e2").Return(event, nil)
	regRepo.EXPECT().GetActiveByEventAndUser(mock.Anything, "e2", "u1").
		Return(nil, domain.ErrRegistrationNotFound)
	regRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyRegistrationCreated(mock.Anything, mock.Anything, event).Return()

	created, err := svc.Register(context.Background(), "u1", "e2")

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPending, created.Registration.PaymentStatus)
	assert.Equal(t, 500.0, created.EventFee)

	time.Sleep(50 * time.Millisecond)
}

func TestRegistrationService_Register_EventNotFound(t *testing.T) {
	_, eventRepo, _, _, svc := newRegistrationService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Register(context.Background(), "u1", "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestRegistrationService_Register_InactiveEvent(t *testing.T) {
	_, eventRepo, _, _, svc := newRegistrationService(t)

	// Неактивное событие отклоняется до проверки мест и дубликатов.
	event := futureEvent("e1", 0)
	event.IsActive = false
	event.MaxParticipants = intPtr(100)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, err := svc.Register(context.Background(), "u1", "e1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotActive)
}

func TestRegistrationService_Register_EventFull(t *testing.T) {
	_, eventRepo, _, _, svc := newRegistrationService(t)

	event := futureEvent("e1", 0)
	event.MaxParticipants = intPtr(1)
	event.CurrentParticipants = 1

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, err := svc.Register(context.Background(), "u2", "e1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventFull)
}

func TestRegistrationService_Register_UnlimitedCapacity(t *testing.T) {
	regRepo, eventRepo, _, notifier, svc := newRegistrationService(t)

	event := futureEvent("e1", 0)
	event.MaxParticipants = nil
	event.CurrentParticipants = 100500

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	regRepo.EXPECT().GetActiveByEventAndUser(mock.Anything, "e1", "u1").
		Return(nil, domain.ErrRegistrationNotFound)
	regRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyRegistrationCreated(mock.Anything, mock.Anything, event).Return()

	_, err := svc.Register(context.Background(), "u1", "e1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestRegistrationService_Register_AlreadyRegistered(t *testing.T) {
	regRepo, eventRepo, _, _, svc := newRegistrationService(t)

	event := futureEvent("e1", 0)
	existing := &domain.Registration{
		ID:      "r1",
		UserID:  "u1",
		EventID: "e1",
		Status:  domain.RegistrationStatusRegistered,
	}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	regRepo.EXPECT().GetActiveByEventAndUser(mock.Anything, "e1", "u1").Return(existing, nil)

	_, err := svc.Register(context.Background(), "u1", "e1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
}

func TestRegistrationService_Register_DuplicateRace(t *testing.T) {
	regRepo, eventRepo, _, _, svc := newRegistrationService(t)

	// Предварительная проверка прошла, но вставка упёрлась в уникальный
	// индекс: конкурентный запрос успел раньше.
	event := futureEvent("e1", 0)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	regRepo.EXPECT().GetActiveByEventAndUser(mock.Anything, "e1", "u1").
		Return(nil, domain.ErrRegistrationNotFound)
	regRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrAlreadyRegistered)

	_, err := svc.Register(context.Background(), "u1", "e1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
}

func TestRegistrationService_Register_FullRace(t *testing.T) {
	regRepo, eventRepo, _, _, svc := newRegistrationService(t)

	event := futureEvent("e1", 0)
	event.MaxParticipants = intPtr(10)
	event.CurrentParticipants = 9

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	regRepo.EXPECT().GetActiveByEventAndUser(mock.Anything, "e1", "u1").
		Return(nil, domain.ErrRegistrationNotFound)
	regRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEventFull)

	_, err := svc.Register(context.Background(), "u1", "e1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventFull)
}

func TestRegistrationService_ListMine(t *testing.T) {
	regRepo, _, _, _, svc := newRegistrationService(t)

	regs := []*domain.RegistrationWithEvent{
		{Registration: domain.Registration{ID: "r2", UserID: "u1"}},
		{Registration: domain.Registration{ID: "r1", UserID: "u1"}},
	}
	regRepo.EXPECT().ListByUser(mock.Anything, "u1").Return(regs, nil)

	result, err := svc.ListMine(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestRegistrationService_Get_ForeignReturnsNotFound(t *testing.T) {
	regRepo, _, _, _, svc := newRegistrationService(t)

	// Чужая регистрация неотличима от несуществующей.
	regRepo.EXPECT().GetByIDForUser(mock.Anything, "r1", "intruder").
		Return(nil, domain.ErrRegistrationNotFound)

	_, err := svc.Get(context.Background(), "intruder", "r1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRegistrationNotFound)
}

func TestRegistrationService_Cancel_Success(t *testing.T) {
	regRepo, _, _, notifier, svc := newRegistrationService(t)

	rw := &domain.RegistrationWithEvent{
		Registration: domain.Registration{
			ID:      "r1",
			UserID:  "u1",
			EventID: "e1",
			Status:  domain.RegistrationStatusRegistered,
		},
		Event: *futureEvent("e1", 0),
	}

	regRepo.EXPECT().GetByIDForUser(mock.Anything, "r1", "u1").Return(rw, nil)
	regRepo.EXPECT().Cancel(mock.Anything, "r1", "u1").Return(nil)
	notifier.EXPECT().NotifyRegistrationCancelled(mock.Anything, mock.Anything, mock.Anything).Return()

	title, err := svc.Cancel(context.Background(), "u1", "r1")

	require.NoError(t, err)
	assert.Equal(t, "Robo Wars", title)

	time.Sleep(50 * time.Millisecond)
}

func TestRegistrationService_Cancel_PastEvent(t *testing.T) {
	regRepo, _, _, _, svc := newRegistrationService(t)

	rw := &domain.RegistrationWithEvent{
		Registration: domain.Registration{
			ID:     "r1",
			UserID: "u1",
			Status: domain.RegistrationStatusRegistered,
		},
		Event: domain.Event{
			ID:       "e1",
			DateTime: time.Now().Add(-time.Hour),
			IsActive: true,
		},
	}

	regRepo.EXPECT().GetByIDForUser(mock.Anything, "r1", "u1").Return(rw, nil)

	_, err := svc.Cancel(context.Background(), "u1", "r1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventStarted)
}

func TestRegistrationService_Cancel_NotFound(t *testing.T) {
	regRepo, _, _, _, svc := newRegistrationService(t)

	regRepo.EXPECT().GetByIDForUser(mock.Anything, "r1", "u1").
		Return(nil, domain.ErrRegistrationNotFound)

	_, err := svc.Cancel(context.Background(), "u1", "r1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRegistrationNotFound)
}

func TestRegistrationService_Cancel_AlreadyCancelled(t *testing.T) {
	regRepo, _, _, _, svc := newRegistrationService(t)

	rw := &domain.RegistrationWithEvent{
		Registration: domain.Registration{
			ID:     "r1",
			UserID: "u1",
			Status: domain.RegistrationStatusCancelled,
		},
		Event: *futureEvent("e1", 0),
	}

	regRepo.EXPECT().GetByIDForUser(mock.Anything, "r1", "u1").Return(rw, nil)

	_, err := svc.Cancel(context.Background(), "u1", "r1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRegistrationNotActive)
}

func TestRegistrationService_UpdatePayment_Success(t *testing.T) {
	regRepo, _, _, _, svc := newRegistrationService(t)

	txn := "txn_123"
	updated := &domain.Registration{
		ID:            "r1",
		UserID:        "u1",
		PaymentStatus: domain.PaymentStatusCompleted,
		TransactionID: &txn,
	}

	regRepo.EXPECT().UpdatePayment(mock.Anything, "r1", "u1", domain.PaymentStatusCompleted, &txn).
		Return(updated, nil)

	result, err := svc.UpdatePayment(context.Background(), "u1", "r1", domain.PaymentStatusCompleted, &txn)

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, result.PaymentStatus)
	require.NotNil(t, result.TransactionID)
	assert.Equal(t, "txn_123", *result.TransactionID)
}

func TestRegistrationService_UpdatePayment_UnknownStatus(t *testing.T) {
	_, _, _, _, svc := newRegistrationService(t)

	_, err := svc.UpdatePayment(context.Background(), "u1", "r1", "refunded", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRegistrationService_UpdatePayment_NotFound(t *testing.T) {
	regRepo, _, _, _, svc := newRegistrationService(t)

	regRepo.EXPECT().UpdatePayment(mock.Anything, "r1", "intruder", domain.PaymentStatusCompleted, (*string)(nil)).
		Return(nil, domain.ErrRegistrationNotFound)

	_, err := svc.UpdatePayment(context.Background(), "intruder", "r1", domain.PaymentStatusCompleted, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRegistrationNotFound)
}

func TestRegistrationService_ListForEvent_Admin(t *testing.T) {
	regRepo, _, profileRepo, _, svc := newRegistrationService(t)

	admin := &domain.Profile{ID: "a1", Name: "Org", Role: domain.RoleAdmin}
	regs := []*domain.RegistrationWithProfile{
		{Registration: domain.Registration{ID: "r1", UserID: "u1", EventID: "e1"}},
	}

	profileRepo.EXPECT().GetByID(mock.Anything, "a1").Return(admin, nil)
	regRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return(regs, nil)

	result, err := svc.ListForEvent(context.Background(), "a1", "e1")

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestRegistrationService_ListForEvent_NonAdmin(t *testing.T) {
	_, _, profileRepo, _, svc := newRegistrationService(t)

	user := &domain.Profile{ID: "u1", Name: "Student", Role: domain.RoleUser}
	profileRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)

	_, err := svc.ListForEvent(context.Background(), "u1", "e1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAdminRequired)
}

func TestRegistrationService_ListForEvent_NoProfile(t *testing.T) {
	_, _, profileRepo, _, svc := newRegistrationService(t)

	profileRepo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.ErrProfileNotFound)

	_, err := svc.ListForEvent(context.Background(), "ghost", "e1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAdminRequired)
}

func TestRegistrationService_ListForEvent_ProfileLookupError(t *testing.T) {
	_, _, profileRepo, _, svc := newRegistrationService(t)

	profileRepo.EXPECT().GetByID(mock.Anything, "u1").Return(nil, errors.New("db down"))

	_, err := svc.ListForEvent(context.Background(), "u1", "e1")

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrAdminRequired)
}
