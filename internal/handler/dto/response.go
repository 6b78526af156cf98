package dto

import (
	"time"

	"github.com/AnshXGrind/ZeroMercy-Vibecraft/internal/domain"
)

type EventResponse struct {
	ID                  string  `json:"id"`
	Title               string  `json:"title"`
	Description         string  `json:"description"`
	Category            string  `json:"category"`
	DateTime            string  `json:"date_time"`
	Venue               string  `json:"venue,omitempty"`
	MaxParticipants     *int    `json:"max_participants"`
	CurrentParticipants int     `json:"current_participants"`
	Fee                 float64 `json:"fee"`
	ImageURL            *string `json:"image_url,omitempty"`
	IsActive            bool    `json:"is_active"`
	CreatedAt           string  `json:"created_at"`
}

type CreatorResponse struct {
	Name    string `json:"name"`
	College string `json:"college,omitempty"`
}

type EventDetailsResponse struct {
	EventResponse
	Creator *CreatorResponse `json:"creator,omitempty"`
}

type RegistrationResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	EventID       string  `json:"event_id"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	TransactionID *string `json:"transaction_id,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

type RegistrationWithEventResponse struct {
	RegistrationResponse
	Event EventResponse `json:"event"`
}

type ParticipantResponse struct {
	Name    string  `json:"name"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	College *string `json:"college,omitempty"`
}

type RegistrationWithProfileResponse struct {
	RegistrationResponse
	Participant ParticipantResponse `json:"participant"`
}

type CreatedRegistrationResponse struct {
	Message      string               `json:"message"`
	Registration RegistrationResponse `json:"registration"`
	Event        EventBrief           `json:"event"`
}

type EventBrief struct {
	Title string  `json:"title"`
	Fee   float64 `json:"fee"`
}

type CancelledResponse struct {
	Message string `json:"message"`
	Event   string `json:"event"`
}

type ProfileResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	College   *string `json:"college,omitempty"`
	Role      string  `json:"role"`
	CreatedAt string  `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:                  e.ID,
		Title:               e.Title,
		Description:         e.Description,
		Category:            string(e.Category),
		DateTime:            e.DateTime.Format(time.RFC3339),
		Venue:               e.Venue,
		MaxParticipants:     e.MaxParticipants,
		CurrentParticipants: e.CurrentParticipants,
		Fee:                 e.Fee,
		ImageURL:            e.ImageURL,
		IsActive:            e.IsActive,
		CreatedAt:           e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	resp := EventDetailsResponse{EventResponse: ToEventResponse(&d.Event)}
	if d.Creator != nil {
		resp.Creator = &CreatorResponse{
			Name:    d.Creator.Name,
			College: d.Creator.College,
		}
	}
	return resp
}

func ToRegistrationResponse(r *domain.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:            r.ID,
		UserID:        r.UserID,
		EventID:       r.EventID,
		Status:        string(r.Status),
		PaymentStatus: string(r.PaymentStatus),
		TransactionID: r.TransactionID,
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
	}
}

func ToRegistrationWithEventResponse(rw *domain.RegistrationWithEvent) RegistrationWithEventResponse {
	return RegistrationWithEventResponse{
		RegistrationResponse: ToRegistrationResponse(&rw.Registration),
		Event:                ToEventResponse(&rw.Event),
	}
}

func ToRegistrationWithProfileResponse(rp *domain.RegistrationWithProfile) RegistrationWithProfileResponse {
	return RegistrationWithProfileResponse{
		RegistrationResponse: ToRegistrationResponse(&rp.Registration),
		Participant: ParticipantResponse{
			Name:    rp.Participant.Name,
			Email:   rp.Participant.Email,
			Phone:   rp.Participant.Phone,
			College: rp.Participant.College,
		},
	}
}

func ToCreatedRegistrationResponse(cr *domain.CreatedRegistration) CreatedRegistrationResponse {
	return CreatedRegistrationResponse{
		Message:      "Successfully registered",
		Registration: ToRegistrationResponse(&cr.Registration),
		Event: EventBrief{
			Title: cr.EventTitle,
			Fee:   cr.EventFee,
		},
	}
}

func ToProfileResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Phone:     p.Phone,
		College:   p.College,
		Role:      string(p.Role),
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}
