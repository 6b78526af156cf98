package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/AnshXGrind/ZeroMercy-Vibecraft/internal/domain"
	"github.com/AnshXGrind/ZeroMercy-Vibecraft/internal/handler/dto"
	"github.com/AnshXGrind/ZeroMercy-Vibecraft/internal/middleware"
)

type EventSvc interface {
	List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error)
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
	Create(ctx context.Context, userID string, input domain.CreateEventInput) (*domain.Event, error)
	Update(ctx context.Context, userID, id string, input domain.UpdateEventInput) (*domain.Event, error)
	Deactivate(ctx context.Context, userID, id string) error
}

type RegistrationSvc interface {
	Register(ctx context.Context, userID, eventID string) (*domain.CreatedRegistration, error)
	ListMine(ctx context.Context, userID string) ([]*domain.RegistrationWithEvent, error)
	Get(ctx context.Context, userID, registrationID string) (*domain.RegistrationWithEvent, error)
	Cancel(ctx context.Context, userID, registrationID string) (string, error)
	UpdatePayment(ctx context.Context, userID, registrationID string, status domain.PaymentStatus, transactionID *string) (*domain.Registration, error)
	ListForEvent(ctx context.Context, userID, eventID string) ([]*domain.RegistrationWithProfile, error)
}

type ProfileSvc interface {
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	Create(ctx context.Context, userID string, input domain.CreateProfileInput) (*domain.Profile, error)
	Update(ctx context.Context, userID string, input domain.UpdateProfileInput) (*domain.Profile, error)
}

type Handler struct {
	eventService        EventSvc
	registrationService RegistrationSvc
	profileService      ProfileSvc
}

func NewHandler(eventService EventSvc, registrationService RegistrationSvc, profileService ProfileSvc) *Handler {
	return &Handler{
		eventService:        eventService,
		registrationService: registrationService,
		profileService:      profileService,
	}
}

// Events

func (h *Handler) ListEvents(c *ginext.Context) {
	filter := domain.EventFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}

	events, err := h.eventService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	details, err := h.eventService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) CreateEvent(c *ginext.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	dateTime, err := time.Parse(time.RFC3339, req.DateTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date_time format, expected RFC3339",
		})
		return
	}

	input := domain.CreateEventInput{
		Title:           req.Title,
		Description:     req.Description,
		Category:        domain.EventCategory(req.Category),
		DateTime:        dateTime,
		Venue:           req.Venue,
		MaxParticipants: req.MaxParticipants,
		Fee:             req.Fee,
		ImageURL:        req.ImageURL,
	}

	event, err := h.eventService.Create(c.Request.Context(), userID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateEventInput{
		Title:           req.Title,
		Description:     req.Description,
		Venue:           req.Venue,
		MaxParticipants: req.MaxParticipants,
		Fee:             req.Fee,
		ImageURL:        req.ImageURL,
		IsActive:        req.IsActive,
	}
	if req.Category != nil {
		category := domain.EventCategory(*req.Category)
		input.Category = &category
	}
	if req.DateTime != nil {
		dateTime, err := time.Parse(time.RFC3339, *req.DateTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid date_time format, expected RFC3339",
			})
			return
		}
		input.DateTime = &dateTime
	}

	event, err := h.eventService.Update(c.Request.Context(), userID, id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) DeactivateEvent(c *ginext.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	if err := h.eventService.Deactivate(c.Request.Context(), userID, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"message": "Event deactivated"})
}

// Registrations

func (h *Handler) Register(c *ginext.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	created, err := h.registrationService.Register(c.Request.Context(), userID, req.EventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCreatedRegistrationResponse(created))
}

func (h *Handler) ListMyRegistrations(c *ginext.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	regs, err := h.registrationService.ListMine(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RegistrationWithEventResponse, 0, len(regs))
	for _, r := range regs {
		resp = append(resp, dto.ToRegistrationWithEventResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetRegistration(c *ginext.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid registration id"})
		return
	}

	reg, err := h.registrationService.Get(c.Request.Context(), userID, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRegistrationWithEventResponse(reg))
}

func (h *Handler) CancelRegistration(c *ginext.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid registration id"})
		return
	}

	eventTitle, err := h.registrationService.Cancel(c.Request.Context(), userID, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CancelledResponse{
		Message: "Registration cancelled successfully",
		Event:   eventTitle,
	})
}

func (h *Handler) UpdatePayment(c *ginext.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid registration id"})
		return
	}

	var req dto.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	reg, err := h.registrationService.UpdatePayment(
		c.Request.Context(), userID, id,
		domain.PaymentStatus(req.PaymentStatus), req.TransactionID,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{
		"message":      "Payment status updated",
		"registration": dto.ToRegistrationResponse(reg),
	})
}

func (h *Handler) ListEventRegistrations(c *ginext.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	regs, err := h.registrationService.ListForEvent(c.Request.Context(), userID, eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RegistrationWithProfileResponse, 0, len(regs))
	for _, r := range regs {
		resp = append(resp, dto.ToRegistrationWithProfileResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

// Profiles

func (h *Handler) GetMyProfile(c *ginext.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.Get(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

func (h *Handler) CreateProfile(c *ginext.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req dto.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	profile, err := h.profileService.Create(c.Request.Context(), userID, domain.CreateProfileInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		College: req.College,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProfileResponse(profile))
}

func (h *Handler) UpdateProfile(c *ginext.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	profile, err := h.profileService.Update(c.Request.Context(), userID, domain.UpdateProfileInput{
		Name:    req.Name,
		Phone:   req.Phone,
		College: req.College,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

func (h *Handler) userID(c *ginext.Context) (string, bool) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return "", false
	}
	return identity.ID, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrProfileNotFound),
		errors.Is(err, domain.ErrRegistrationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrEventFull),
		errors.Is(err, domain.ErrAlreadyRegistered),
		errors.Is(err, domain.ErrProfileExists):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrEventNotActive),
		errors.Is(err, domain.ErrEventStarted),
		errors.Is(err, domain.ErrRegistrationNotActive),
		errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAdminRequired):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
