package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/AnshXGrind/ZeroMercy-Vibecraft/internal/auth"
	"github.com/AnshXGrind/ZeroMercy-Vibecraft/internal/domain"
	"github.com/AnshXGrind/ZeroMercy-Vibecraft/internal/handler/dto"
	hmocks "github.com/AnshXGrind/ZeroMercy-Vibecraft/internal/handler/mocks"
	"github.com/AnshXGrind/ZeroMercy-Vibecraft/internal/middleware"
)

const testSecret = "test-secret"

func signToken(t *testing.T, userID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func setupRouter(t *testing.T) (*hmocks.MockEventSvc, *hmocks.MockRegistrationSvc, *hmocks.MockProfileSvc, http.Handler) {
	t.Helper()
	eventSvc := hmocks.NewMockEventSvc(t)
	regSvc := hmocks.NewMockRegistrationSvc(t)
	profileSvc := hmocks.NewMockProfileSvc(t)

	h := NewHandler(eventSvc, regSvc, profileSvc)
	authRequired := middleware.Auth(auth.NewJWTVerifier(testSecret))

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.POST("/events", authRequired, h.CreateEvent)
		api.PUT("/events/:id", authRequired, h.UpdateEvent)
		api.DELETE("/events/:id", authRequired, h.DeactivateEvent)

		registrations := api.Group("/registrations", authRequired)
		{
			registrations.POST("", h.Register)
			registrations.GET("", h.ListMyRegistrations)
			registrations.GET("/:id", h.GetRegistration)
			registrations.DELETE("/:id", h.CancelRegistration)
			registrations.PATCH("/:id/payment", h.UpdatePayment)
			registrations.GET("/event/:id", h.ListEventRegistrations)
		}

		profile := api.Group("/profile", authRequired)
		{
			profile.GET("/me", h.GetMyProfile)
			profile.POST("", h.CreateProfile)
			profile.PUT("", h.UpdateProfile)
		}
	}

	return eventSvc, regSvc, profileSvc, r
}

func doRequest(t *testing.T, r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// --- Events ---

func TestHandler_ListEvents_Public(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	events := []*domain.Event{
		{ID: uuid.New().String(), Title: "Robo Wars", Category: domain.CategoryTechnical, IsActive: true},
	}
	eventSvc.EXPECT().List(mock.Anything, domain.EventFilter{Category: "technical"}).Return(events, nil)

	w := doRequest(t, r, http.MethodGet, "/api/events?category=technical", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Robo Wars", resp[0].Title)
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/events/not-a-uuid", "", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	eventSvc.EXPECT().GetDetails(mock.Anything, id).Return(nil, domain.ErrEventNotFound)

	w := doRequest(t, r, http.MethodGet, "/api/events/"+id, "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CreateEvent_NoToken(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/events", "", dto.CreateEventRequest{})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_CreateEvent_BadToken(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/events", "garbage", dto.CreateEventRequest{})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_CreateEvent_NonAdmin(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	eventSvc.EXPECT().Create(mock.Anything, "u1", mock.Anything).Return(nil, domain.ErrAdminRequired)

	body := dto.CreateEventRequest{
		Title:       "Hackathon",
		Description: "24h build sprint",
		Category:    "technical",
		DateTime:    time.Now().Add(72 * time.Hour).Format(time.RFC3339),
	}
	w := doRequest(t, r, http.MethodPost, "/api/events", signToken(t, "u1"), body)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CreateEvent_Success(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	event := &domain.Event{
		ID:       uuid.New().String(),
		Title:    "Hackathon",
		Category: domain.CategoryTechnical,
		IsActive: true,
	}
	eventSvc.EXPECT().Create(mock.Anything, "a1", mock.Anything).Return(event, nil)

	body := dto.CreateEventRequest{
		Title:       "Hackathon",
		Description: "24h build sprint",
		Category:    "technical",
		DateTime:    time.Now().Add(72 * time.Hour).Format(time.RFC3339),
		Fee:         250,
	}
	w := doRequest(t, r, http.MethodPost, "/api/events", signToken(t, "a1"), body)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Hackathon", resp.Title)
}

func TestHandler_CreateEvent_BadDate(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := dto.CreateEventRequest{
		Title:       "Hackathon",
		Description: "24h build sprint",
		Category:    "technical",
		DateTime:    "next friday",
	}
	w := doRequest(t, r, http.MethodPost, "/api/events", signToken(t, "a1"), body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Registrations ---

func TestHandler_Register_Success(t *testing.T) {
	_, regSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	created := &domain.CreatedRegistration{
		Registration: domain.Registration{
			ID:            uuid.New().String(),
			UserID:        "u1",
			EventID:       eventID,
			Status:        domain.RegistrationStatusRegistered,
			PaymentStatus: domain.PaymentStatusCompleted,
			CreatedAt:     time.Now(),
		},
		EventTitle: "Robo Wars",
	}
	regSvc.EXPECT().Register(mock.Anything, "u1", eventID).Return(created, nil)

	w := doRequest(t, r, http.MethodPost, "/api/registrations", signToken(t, "u1"),
		dto.RegisterRequest{EventID: eventID})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CreatedRegistrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "registered", resp.Registration.Status)
	assert.Equal(t, "Robo Wars", resp.Event.Title)
}

func TestHandler_Register_MissingEventID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/registrations", signToken(t, "u1"),
		map[string]string{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Register_Conflict(t *testing.T) {
	_, regSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	regSvc.EXPECT().Register(mock.Anything, "u1", eventID).Return(nil, domain.ErrAlreadyRegistered)

	w := doRequest(t, r, http.MethodPost, "/api/registrations", signToken(t, "u1"),
		dto.RegisterRequest{EventID: eventID})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Register_EventFull(t *testing.T) {
	_, regSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	regSvc.EXPECT().Register(mock.Anything, "u1", eventID).Return(nil, domain.ErrEventFull)

	w := doRequest(t, r, http.MethodPost, "/api/registrations", signToken(t, "u1"),
		dto.RegisterRequest{EventID: eventID})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Register_InactiveEvent(t *testing.T) {
	_, regSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	regSvc.EXPECT().Register(mock.Anything, "u1", eventID).Return(nil, domain.ErrEventNotActive)

	w := doRequest(t, r, http.MethodPost, "/api/registrations", signToken(t, "u1"),
		dto.RegisterRequest{EventID: eventID})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetRegistration_ForeignIsNotFound(t *testing.T) {
	_, regSvc, _, r := setupRouter(t)

	regID := uuid.New().String()
	regSvc.EXPECT().Get(mock.Anything, "intruder", regID).Return(nil, domain.ErrRegistrationNotFound)

	w := doRequest(t, r, http.MethodGet, "/api/registrations/"+regID, signToken(t, "intruder"), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CancelRegistration_Success(t *testing.T) {
	_, regSvc, _, r := setupRouter(t)

	regID := uuid.New().String()
	regSvc.EXPECT().Cancel(mock.Anything, "u1", regID).Return("Robo Wars", nil)

	w := doRequest(t, r, http.MethodDelete, "/api/registrations/"+regID, signToken(t, "u1"), nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CancelledResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Robo Wars", resp.Event)
}

func TestHandler_CancelRegistration_PastEvent(t *testing.T) {
	_, regSvc, _, r := setupRouter(t)

	regID := uuid.New().String()
	regSvc.EXPECT().Cancel(mock.Anything, "u1", regID).Return("", domain.ErrEventStarted)

	w := doRequest(t, r, http.MethodDelete, "/api/registrations/"+regID, signToken(t, "u1"), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdatePayment_Success(t *testing.T) {
	_, regSvc, _, r := setupRouter(t)

	regID := uuid.New().String()
	txn := "txn_123"
	updated := &domain.Registration{
		ID:            regID,
		UserID:        "u1",
		PaymentStatus: domain.PaymentStatusCompleted,
		TransactionID: &txn,
	}
	regSvc.EXPECT().UpdatePayment(mock.Anything, "u1", regID, domain.PaymentStatusCompleted, &txn).
		Return(updated, nil)

	w := doRequest(t, r, http.MethodPatch, "/api/registrations/"+regID+"/payment", signToken(t, "u1"),
		dto.UpdatePaymentRequest{PaymentStatus: "completed", TransactionID: &txn})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_UpdatePayment_UnknownStatus(t *testing.T) {
	_, regSvc, _, r := setupRouter(t)

	regID := uuid.New().String()
	regSvc.EXPECT().UpdatePayment(mock.Anything, "u1", regID, domain.PaymentStatus("refunded"), (*string)(nil)).
		Return(nil, domain.ErrValidation)

	w := doRequest(t, r, http.MethodPatch, "/api/registrations/"+regID+"/payment", signToken(t, "u1"),
		dto.UpdatePaymentRequest{PaymentStatus: "refunded"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListEventRegistrations_NonAdmin(t *testing.T) {
	_, regSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	regSvc.EXPECT().ListForEvent(mock.Anything, "u1", eventID).Return(nil, domain.ErrAdminRequired)

	w := doRequest(t, r, http.MethodGet, "/api/registrations/event/"+eventID, signToken(t, "u1"), nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_ListEventRegistrations_Admin(t *testing.T) {
	_, regSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	regs := []*domain.RegistrationWithProfile{
		{
			Registration: domain.Registration{
				ID:        uuid.New().String(),
				UserID:    "u1",
				EventID:   eventID,
				Status:    domain.RegistrationStatusRegistered,
				CreatedAt: time.Now(),
			},
			Participant: domain.Profile{ID: "u1", Name: "Asha"},
		},
	}
	regSvc.EXPECT().ListForEvent(mock.Anything, "a1", eventID).Return(regs, nil)

	w := doRequest(t, r, http.MethodGet, "/api/registrations/event/"+eventID, signToken(t, "a1"), nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.RegistrationWithProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Asha", resp[0].Participant.Name)
}

func TestHandler_ListMyRegistrations_Success(t *testing.T) {
	_, regSvc, _, r := setupRouter(t)

	regs := []*domain.RegistrationWithEvent{
		{
			Registration: domain.Registration{
				ID:      uuid.New().String(),
				UserID:  "u1",
				Status:  domain.RegistrationStatusCancelled,
				EventID: uuid.New().String(),
			},
			Event: domain.Event{Title: "Robo Wars"},
		},
	}
	regSvc.EXPECT().ListMine(mock.Anything, "u1").Return(regs, nil)

	w := doRequest(t, r, http.MethodGet, "/api/registrations", signToken(t, "u1"), nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.RegistrationWithEventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "cancelled", resp[0].Status)
}

// --- Profiles ---

func TestHandler_GetMyProfile_Success(t *testing.T) {
	_, _, profileSvc, r := setupRouter(t)

	profile := &domain.Profile{ID: "u1", Name: "Asha", Role: domain.RoleUser}
	profileSvc.EXPECT().Get(mock.Anything, "u1").Return(profile, nil)

	w := doRequest(t, r, http.MethodGet, "/api/profile/me", signToken(t, "u1"), nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Asha", resp.Name)
}

func TestHandler_CreateProfile_Duplicate(t *testing.T) {
	_, _, profileSvc, r := setupRouter(t)

	profileSvc.EXPECT().Create(mock.Anything, "u1", mock.Anything).Return(nil, domain.ErrProfileExists)

	w := doRequest(t, r, http.MethodPost, "/api/profile", signToken(t, "u1"),
		dto.CreateProfileRequest{Name: "Asha"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_UpdateProfile_Success(t *testing.T) {
	_, _, profileSvc, r := setupRouter(t)

	name := "Asha R"
	profile := &domain.Profile{ID: "u1", Name: name, Role: domain.RoleUser}
	profileSvc.EXPECT().Update(mock.Anything, "u1", mock.Anything).Return(profile, nil)

	w := doRequest(t, r, http.MethodPut, "/api/profile", signToken(t, "u1"),
		dto.UpdateProfileRequest{Name: &name})

	assert.Equal(t, http.StatusOK, w.Code)
}
