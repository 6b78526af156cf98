package domain

import "time"

type EventCategory string

const (
	CategoryCompetition EventCategory = "competition"
	CategoryWorkshop    EventCategory = "workshop"
	CategoryCultural    EventCategory = "cultural"
	CategorySports      EventCategory = "sports"
	CategoryTechnical   EventCategory = "technical"
	CategoryOther       EventCategory = "other"
)

func ValidCategory(c EventCategory) bool {
	switch c {
	case CategoryCompetition, CategoryWorkshop, CategoryCultural,
		CategorySports, CategoryTechnical, CategoryOther:
		return true
	}
	return false
}

type Event struct {
	ID                  string        `json:"id"`
	Title               string        `json:"title"`
	Description         string        `json:"description"`
	Category            EventCategory `json:"category"`
	DateTime            time.Time     `json:"date_time"`
	Venue               string        `json:"venue,omitempty"`
	MaxParticipants     *int          `json:"max_participants"`
	CurrentParticipants int           `json:"current_participants"`
	Fee                 float64       `json:"fee"`
	ImageURL            *string       `json:"image_url,omitempty"`
	IsActive            bool          `json:"is_active"`
	CreatedBy           string        `json:"created_by"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

// nil max_participants означает неограниченное число мест.
func (e *Event) HasCapacityLimit() bool {
	return e.MaxParticipants != nil
}

func (e *Event) IsFull() bool {
	return e.HasCapacityLimit() && e.CurrentParticipants >= *e.MaxParticipants
}

// EventDetails дополняет событие публичными полями профиля создателя.
type EventDetails struct {
	Event   Event         `json:"event"`
	Creator *CreatorBrief `json:"creator,omitempty"`
}

type CreatorBrief struct {
	Name    string `json:"name"`
	College string `json:"college,omitempty"`
}

type EventFilter struct {
	Category string
	Search   string
}

type CreateEventInput struct {
	Title           string
	Description     string
	Category        EventCategory
	DateTime        time.Time
	Venue           string
	MaxParticipants *int
	Fee             float64
	ImageURL        *string
}

// UpdateEventInput перечисляет явно разрешённые к изменению поля;
// nil означает "не трогать".
type UpdateEventInput struct {
	Title           *string
	Description     *string
	Category        *EventCategory
	DateTime        *time.Time
	Venue           *string
	MaxParticipants *int
	Fee             *float64
	ImageURL        *string
	IsActive        *bool
}
